// Package algorithms turns graph algorithm runs into highlight frames.
//
// Each supported runner.Algorithm has a tracer that runs the hookable
// implementation from its own package (bfs, dfs, dijkstra, bellmanford,
// prim_kruskal, flow, euler) and translates every hook event into a
// step.Step through a step.Recorder.
//
// Palette:
//
//   - step.ColorProcessed   (#10b981) finished nodes, accepted edges, final paths.
//   - step.ColorActive      (#3b82f6) the node being processed.
//   - step.ColorConsidering (#f59e0b) candidates under examination, queued nodes.
//   - step.ColorRejected    (#ef4444) rejected edges, unreachable nodes, errors.
//
// Distance-based tracers label nodes with their tentative distance ("∞" for
// unreached); the flow tracer labels edges "flow/capacity".
//
// Request handling:
//
//   - An empty graph yields exactly one "graph is empty" step.
//   - A missing or unknown start node falls back to the first node.
//   - A source or target that names an unknown node is a *PreconditionError.
//   - Graph-shape problems (negative weights for Dijkstra, a directed graph
//     for an MST, a cycle for a topological sort, odd degrees for Hierholzer)
//     are explained by a final red step rather than an error.
//
// Run is safe for concurrent use: every call builds its own core.Graph from
// the request snapshot.
package algorithms
