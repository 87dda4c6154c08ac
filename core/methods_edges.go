// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/UpdateEdgeWeight/SetEdgeControlPoint/
//       DeleteEdge/DeleteMany plus lookups and traversal helpers. Also: nextEdgeID().
// Determinism:
//   - Edges(), IncidentEdges() and OutEdges() follow edge insertion order.
//   - Neighbors() is unique and sorted ascending.
//   - nextEdgeID() is "e{from}-{to}-{n}" with monotonic n.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// edgeIDPrefix starts every generated edge id.
const edgeIDPrefix = "e"

// AddEdge creates a new edge from→to with the given weight and returns its id.
// A second edge between the same pair, or an edge from a node to itself, is
// always a new edge. The edge inherits the current graph mode as Directed.
//
// Steps:
//  1. Validate that both endpoints exist (ErrNodeNotFound otherwise).
//  2. Generate the id from the endpoints and the edge counter.
//  3. Store the edge, append to edgeOrder, link incidence (loops once).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return "", fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	e := &Edge{ID: g.nextEdgeID(from, to), From: from, To: to, Weight: weight, Directed: g.directed}
	g.insertEdge(e)
	return e.ID, nil
}

// UpdateEdgeWeight sets the weight of edge id.
func (g *Graph) UpdateEdgeWeight(id string, weight float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return false
	}
	e.Weight = weight
	return true
}

// SetEdgeControlPoint pins the control point of edge id to p, or clears it
// when p is nil so the edge returns to automatic layout.
func (g *Graph) SetEdgeControlPoint(id string, p *Point) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return false
	}
	if p == nil {
		e.ControlPoint = nil
		return true
	}
	cp := *p
	e.ControlPoint = &cp
	return true
}

// DeleteEdge removes edge id.
// Complexity: O(E) for order bookkeeping.
func (g *Graph) DeleteEdge(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.deleteEdgeLocked(id)
}

// DeleteMany removes edgeIDs first and then nodeIDs (cascading), as one
// atomic mutation. Ids already gone, including edges removed by an earlier
// cascade, are skipped. Reports whether anything was removed.
func (g *Graph) DeleteMany(nodeIDs, edgeIDs []string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	changed := false
	for _, id := range edgeIDs {
		changed = g.deleteEdgeLocked(id) || changed
	}
	for _, id := range nodeIDs {
		changed = g.deleteNodeLocked(id) || changed
	}
	return changed
}

// HasEdge reports whether edge id exists.
func (g *Graph) HasEdge(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[id]
	return ok
}

// Edge returns a copy of edge id.
func (g *Graph) Edge(id string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}
	return e.clone(), true
}

// Edges returns copies of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id].clone())
	}
	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// IncidentEdges returns every edge touching id, in insertion order.
// A self-loop appears once.
func (g *Graph) IncidentEdges(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.collect(id, func(*Edge) bool { return true })
}

// OutEdges returns the edges that can be traversed leaving id: outgoing edges
// in a directed graph, every incident edge otherwise.
func (g *Graph) OutEdges(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.collect(id, func(e *Edge) bool { return !e.Directed || e.From == id })
}

// Arc is one traversable edge seen from a node.
type Arc struct {
	EdgeID string
	To     string
	Weight float64
}

// Arcs returns the edges leaving id as arcs, ordered by target id and then by
// edge insertion order. Undirected edges are traversable from both ends.
//
// Complexity: O(d·log d).
func (g *Graph) Arcs(id string) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Arc, 0, len(g.incidence[id]))
	for _, eid := range g.incidence[id] {
		e := g.edges[eid]
		if e.Directed && e.From != id {
			continue
		}
		out = append(out, Arc{EdgeID: e.ID, To: e.Other(id), Weight: e.Weight})
	}
	slices.SortStableFunc(out, func(a, b Arc) int { return strings.Compare(a.To, b.To) })
	return out
}

// Neighbors returns the unique ids reachable from id over one edge, sorted.
//
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set := make(map[string]struct{})
	for _, eid := range g.incidence[id] {
		e := g.edges[eid]
		if e.Directed && e.From != id {
			continue
		}
		set[e.Other(id)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for nb := range set {
		out = append(out, nb)
	}
	sort.Strings(out)
	return out
}

// collect filters incidence[id] by keep. Caller holds the read lock.
func (g *Graph) collect(id string, keep func(*Edge) bool) []Edge {
	ids := g.incidence[id]
	out := make([]Edge, 0, len(ids))
	for _, eid := range ids {
		if e := g.edges[eid]; keep(e) {
			out = append(out, e.clone())
		}
	}
	return out
}

// nextEdgeID returns a fresh "e{from}-{to}-{n}". Caller holds the write lock.
func (g *Graph) nextEdgeID(from, to string) string {
	for {
		g.edgeSeq++
		id := edgeIDPrefix + from + "-" + to + "-" + strconv.FormatUint(g.edgeSeq, 10)
		if _, taken := g.edges[id]; !taken {
			return id
		}
	}
}

// insertEdge stores e and links incidence. Caller holds the write lock.
func (g *Graph) insertEdge(e *Edge) {
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.incidence[e.From] = append(g.incidence[e.From], e.ID)
	if !e.IsLoop() {
		g.incidence[e.To] = append(g.incidence[e.To], e.ID)
	}
}

// deleteEdgeLocked unlinks id. Caller holds the write lock.
func (g *Graph) deleteEdgeLocked(id string) bool {
	e, ok := g.edges[id]
	if !ok {
		return false
	}
	match := func(v string) bool { return v == id }
	g.incidence[e.From] = slices.DeleteFunc(g.incidence[e.From], match)
	if !e.IsLoop() {
		g.incidence[e.To] = slices.DeleteFunc(g.incidence[e.To], match)
	}
	delete(g.edges, id)
	g.edgeOrder = slices.DeleteFunc(g.edgeOrder, match)
	return true
}
