// Package selection tracks which nodes and edges are selected.
//
// Node and edge selections are mutually exclusive: adding to one clears the
// other, in single and multi mode alike. Ids are validated against a Source
// and can be pruned after structural mutations so the sets never hold stale
// ids.
package selection

import (
	"math"
	"sort"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/geometry"
)

// Source is the read-only graph view the index validates against.
// *core.Graph satisfies it.
type Source interface {
	HasNode(id string) bool
	HasEdge(id string) bool
	Nodes() []core.Node
	Edges() []core.Edge
}

// Index holds the two id sets. It is not safe for concurrent use; the
// editor serialises access.
type Index struct {
	src   Source
	nodes map[string]struct{}
	edges map[string]struct{}
}

// New returns an empty Index bound to src.
func New(src Source) *Index {
	return &Index{
		src:   src,
		nodes: make(map[string]struct{}),
		edges: make(map[string]struct{}),
	}
}

// SelectNode selects id. Without multi it replaces both sets with {id};
// with multi it toggles id and clears the edge set.
// Unknown ids are ignored.
func (x *Index) SelectNode(id string, multi bool) {
	if !x.src.HasNode(id) {
		return
	}
	toggle(&x.nodes, &x.edges, id, multi)
}

// SelectEdge is SelectNode for edges.
func (x *Index) SelectEdge(id string, multi bool) {
	if !x.src.HasEdge(id) {
		return
	}
	toggle(&x.edges, &x.nodes, id, multi)
}

func toggle(set, other *map[string]struct{}, id string, multi bool) {
	*other = make(map[string]struct{})
	if !multi {
		*set = map[string]struct{}{id: {}}
		return
	}
	if _, ok := (*set)[id]; ok {
		delete(*set, id)
		return
	}
	(*set)[id] = struct{}{}
}

// SelectRegion replaces the selection with every node inside the rectangle
// (x, y, w, h) in world coordinates, borders inclusive, plus every edge with
// both endpoints among those nodes. Negative sizes are normalised. A
// zero-area rectangle yields an empty selection.
//
// Complexity: O(V+E), single pass.
func (x *Index) SelectRegion(rx, ry, w, h float64) {
	x.Clear()
	r := geometry.NewRect(rx, ry, w, h)
	if r.Empty() {
		return
	}
	for _, n := range x.src.Nodes() {
		if r.Contains(n.Pos()) {
			x.nodes[n.ID] = struct{}{}
		}
	}
	for _, e := range x.src.Edges() {
		_, okFrom := x.nodes[e.From]
		_, okTo := x.nodes[e.To]
		if okFrom && okTo {
			x.edges[e.ID] = struct{}{}
		}
	}
}

// SetNodes replaces the node set with the known ids among ids and leaves
// the edge set alone.
func (x *Index) SetNodes(ids []string) {
	x.nodes = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if x.src.HasNode(id) {
			x.nodes[id] = struct{}{}
		}
	}
}

// SetEdges replaces the edge set with the known ids among ids.
func (x *Index) SetEdges(ids []string) {
	x.edges = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if x.src.HasEdge(id) {
			x.edges[id] = struct{}{}
		}
	}
}

// Clear empties both sets.
func (x *Index) Clear() {
	x.nodes = make(map[string]struct{})
	x.edges = make(map[string]struct{})
}

// Prune drops ids that no longer exist in the source.
func (x *Index) Prune() {
	for id := range x.nodes {
		if !x.src.HasNode(id) {
			delete(x.nodes, id)
		}
	}
	for id := range x.edges {
		if !x.src.HasEdge(id) {
			delete(x.edges, id)
		}
	}
}

// HasNode reports whether node id is selected.
func (x *Index) HasNode(id string) bool {
	_, ok := x.nodes[id]
	return ok
}

// HasEdge reports whether edge id is selected.
func (x *Index) HasEdge(id string) bool {
	_, ok := x.edges[id]
	return ok
}

// NodeIDs returns the selected node ids sorted.
func (x *Index) NodeIDs() []string { return sortedKeys(x.nodes) }

// EdgeIDs returns the selected edge ids sorted.
func (x *Index) EdgeIDs() []string { return sortedKeys(x.edges) }

// Len returns the total number of selected ids.
func (x *Index) Len() int { return len(x.nodes) + len(x.edges) }

// Empty reports whether nothing is selected.
func (x *Index) Empty() bool { return x.Len() == 0 }

// NodeAt returns the topmost node (last in insertion order) whose centre is
// within radius of p.
func (x *Index) NodeAt(p core.Point, radius float64) (string, bool) {
	nodes := x.src.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		if math.Hypot(nodes[i].X-p.X, nodes[i].Y-p.Y) <= radius {
			return nodes[i].ID, true
		}
	}
	return "", false
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
