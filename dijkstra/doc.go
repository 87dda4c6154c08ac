// Package dijkstra provides Dijkstra's shortest-path algorithm on graphs
// with non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports early stop at a target, distance caps, and “impassable” edge thresholds.
//   - OnSettle and OnRelax hooks expose every step for replay.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:
//     Returned if the Source string is empty when calling Dijkstra.
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Dijkstra.
//   - ErrVertexNotFound:
//     Returned if the source or target vertex does not exist in the graph.
//   - ErrNegativeWeight:
//     Wrapped by *WeightError if any edge has a negative weight (detected by an O(E) pre-scan).
//   - ErrBadMaxDistance, ErrBadInfThreshold:
//     Raised (via panic) by the option constructors for invalid values.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - opts:    zero or more functional options, including:
//	      • Source(string):                required, the starting vertex ID.
//	      • Target(string):                stop once this vertex is settled.
//	      • WithMaxDistance(float64):      explore only vertices with distance ≤ given value.
//	      • WithInfEdgeThreshold(float64): skip any edge whose weight ≥ threshold.
//	      • WithOnSettle / WithOnRelax:    observation hooks.
//	  - Result.Dist:     minimal distance from Source, or +Inf if unreachable.
//	  - Result.Prev:     immediate predecessor on one shortest path.
//	  - Result.PrevEdge: the edge used from Prev, which matters for parallel edges.
//
// Thread safety:
//
//   - core.Graph guards itself, but a graph mutated during a run yields a
//     result for no single version of it. Run on a Clone when editing concurrently.
package dijkstra
