// Package graphstudio is an interactive graph editor engine with animated
// algorithm playback.
//
// The module is organised in layers:
//
//	core/        graph model: nodes, edges, control points, snapshots
//	history/     undo/redo of whole-graph snapshots
//	selection/   selected node and edge ids, pruned on deletion
//	geometry/    edge curves for parallel edges and self-loops, arrows
//	viewport/    screen/world transform, zoom about the cursor, fit
//	step/        algorithm frames and the recorder that builds them
//	playback/    step sequencer with a replaceable ticker
//	editor/      the controller tying all of the above to pointer gestures
//	converters/  edge-list, adjacency-matrix, JSON and YAML documents
//	svg/         static export of a graph or a highlighted frame
//
// Algorithms live one per package with per-event hooks (bfs, dfs,
// dijkstra, bellmanford, prim_kruskal, flow, euler). The algorithms
// package turns those hooks into frames, runner is the boundary the
// editor talks to, and server exposes it over HTTP.
//
//	go install github.com/katalvlaran/graphstudio/cmd/graphstudio@latest
//	graphstudio serve
package graphstudio
