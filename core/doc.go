// Package core provides the editable, thread-safe in-memory Graph behind the
// graphstudio editor, together with the value types (Node, Edge, Snapshot)
// that every other package exchanges.
//
// The Graph G = (V,E) is positional: every node carries world coordinates and
// an optional label, every edge carries a float weight and, once the user has
// bent it, a sticky manual control point.
//
//   - Parallel edges and self-loops are always permitted; AddEdge never dedups.
//   - Node ids come from a strictly increasing counter that is never reused,
//     not even after deletions, Clear or Restore.
//   - Edge ids are "e{from}-{to}-{n}" with a monotonic n.
//   - Directedness is a graph-wide mode and is locked while edges exist
//     (SetDirected returns ErrDirectednessLocked).
//   - Iteration is deterministic: Nodes() and Edges() return insertion order,
//     which is also the order used to assign parallel-edge offsets.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(x, y float64) string                       // O(1) amortized
//	AddNodeWithID(id string, x, y float64, label string) error
//	UpdateNodePosition(id string, x, y float64) bool   // O(deg(v))
//	MoveNodes(deltas []NodeDelta) int                  // O(Σdeg)
//	UpdateNodeLabel(id, label string) bool
//	DeleteNode(id string) bool                         // O(deg(v)+V)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (string, error) // O(1) amortized
//	UpdateEdgeWeight(id string, w float64) bool
//	SetEdgeControlPoint(id string, p *Point) bool
//	DeleteEdge(id string) bool                         // O(E)
//	DeleteMany(nodeIDs, edgeIDs []string) bool
//
//	// Mode & snapshots
//	SetDirected(flag bool) error
//	Snapshot() Snapshot                                // O(V+E) deep copy
//	Restore(s Snapshot)                                // O(V+E)
//	Subgraph(nodeIDs []string) Snapshot
//	Clear()
//
// Mutations on unknown ids are no-ops reported through a bool result; errors
// are reserved for inputs that cannot be applied at all.
//
// Errors:
//
//	ErrEmptyNodeID         – zero-length node ID
//	ErrDuplicateNode       – AddNodeWithID with an id already present
//	ErrNodeNotFound        – AddEdge endpoint does not exist
//	ErrDirectednessLocked  – SetDirected while edges exist
package core
