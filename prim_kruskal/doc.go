// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// on an undirected *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V (i.e., spans the graph) and the sum of weights of edges in T is minimized.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph, opts ...Option) (*Result, error)
//
//   - Strategy: Sort all edges by weight, then iterate from smallest to largest. Use a Disjoint-Set (Union-Find)
//     to merge components, rejecting edges whose endpoints are already connected. Stop once |V|−1 edges have been added.
//
//   - Determinism: graph.Edges() returns edges in insertion order and the sort is stable.
//
//   - Prim(g *core.Graph, root string, opts ...Option) (*Result, error)
//
//   - Strategy: Grow a single tree starting from root. Maintain a min-heap of candidate edges
//     that leave the current tree; pop the cheapest, reject it if its far end is already spanned.
//
//   - Determinism: weight ties are broken by push order, and arcs are pushed in target-id order.
//
// Hooks
//
//	OnConsider, OnAccept and OnReject observe every decision, which is what
//	the step tracer uses to replay the run frame by frame.
//
// Error Conditions
//
//	- ErrInvalidGraph
//	    - Graph is nil, OR graph.Directed() == true.
//
//	- ErrEmptyRoot (Prim only)
//	    - root == "" (no starting vertex specified).
//
//	- core.ErrNodeNotFound (Prim only)
//	    - root does not exist in the graph.
//
//	- ErrDisconnected
//	    - |V| > 1 but the graph is not fully connected. The partial Result is
//	      still returned.
//
// Negative weights are accepted: an MST is well defined for them.
package prim_kruskal
