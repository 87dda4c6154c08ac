// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent / ParentEdge: predecessor and discovering edge in the BFS tree
//   - Hooks at every stage, so a caller can replay the search frame by frame:
//   - OnEnqueue (vertex discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - OnExamine (each arc of the visited vertex, seen or not)
//   - OnFinish  (all arcs of the vertex examined)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph.Arcs orders arcs by target id, then edge insertion order, so
//	the visit sequence is fully reproducible. Directed edges are followed only
//	From→To; undirected edges both ways.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d) (arcs are sorted per vertex)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "1",
//	    bfs.WithContext(ctx),
//	    bfs.WithOnExamine(func(from string, arc core.Arc, seen bool) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
