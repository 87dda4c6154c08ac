// Package dfs implements depth‑first search traversal and topological sort
// on a core.Graph.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order, per‑arc, tree‑edge and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over disconnected components
//   - TopologicalSort: computes a linear ordering of vertices in a directed
//     acyclic graph (DAG), returning a *CycleError naming the offending
//     cycle when one exists.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (visitation markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post‑order, discovery order, Depth, Parent, TreeEdges
//
// Complexity:
//
//   - DFS:             Time O(V+E·log d), Memory O(V)
//   - TopologicalSort: Time O(V+E·log d), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrUndirectedGraph      TopologicalSort on an undirected graph
//   - ErrCycleDetected        cycle discovered (wrapped by *CycleError)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
