// Package flow computes maximum flows on graphs represented by *core.Graph.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²) in the worst case.
//
//   - Memory: O(V + E) for the residual arcs and BFS queues.
//
// # Graph Support
//
//   - Edge weights are capacities and must be non-negative (EdgeError otherwise).
//   - Directed edges carry flow From→To; undirected edges either way.
//   - Parallel edges add their capacities; self-loops carry nothing.
//
// # Determinism
//
// Residual arcs leaving a vertex are scanned in ascending target id order, so
// the sequence of augmenting paths is reproducible. OnAugment observes each
// of them, which is how the step tracer replays a run.
//
// # Result
//
// Result.Edges gives the flow through every edge, oriented in the direction
// it travels; Result.SourceSide is the source side of a minimum cut.
package flow
