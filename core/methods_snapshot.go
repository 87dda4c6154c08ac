// File: methods_snapshot.go
// Role: Graph-wide mode and whole-graph operations: SetDirected, Snapshot,
//       Restore, Subgraph, Clone, Clear.
// Determinism:
//   - Snapshot order equals insertion order; Restore preserves snapshot order.
//   - Counters are carried forward, never rewound, so ids stay unique across
//     undo/redo and reloads.
// Concurrency:
//   - Snapshot/Subgraph take the read lock; Restore/Clear/SetDirected the write lock.

package core

// Directed reports the graph edge mode.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.directed
}

// SetDirected switches the edge mode. It succeeds while the graph has no
// edges, or when flag equals the current mode; otherwise the graph is left
// unchanged and ErrDirectednessLocked is returned.
func (g *Graph) SetDirected(flag bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if flag == g.directed {
		return nil
	}
	if len(g.edges) > 0 {
		return ErrDirectednessLocked
	}
	g.directed = flag
	return nil
}

// Snapshot returns a deep, independent copy of the graph.
// Complexity: O(V+E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Snapshot{
		Nodes:    make([]Node, 0, len(g.nodeOrder)),
		Edges:    make([]Edge, 0, len(g.edgeOrder)),
		Directed: g.directed,
	}
	for _, id := range g.nodeOrder {
		s.Nodes = append(s.Nodes, *g.nodes[id])
	}
	for _, id := range g.edgeOrder {
		s.Edges = append(s.Edges, g.edges[id].clone())
	}
	return s
}

// Restore replaces the whole graph with a copy of s.
//
// Sanitising rules keep the model invariants intact for any input:
//   - nodes with an empty or repeated id are dropped;
//   - edges whose endpoint is missing are dropped;
//   - edges with an empty or repeated id get a generated one;
//   - every edge takes Directed from s.Directed.
//
// Complexity: O(V+E).
func (g *Graph) Restore(s Snapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetLocked()
	g.directed = s.Directed

	for _, n := range s.Nodes {
		if n.ID == "" {
			continue
		}
		if _, dup := g.nodes[n.ID]; dup {
			continue
		}
		nn := n
		g.insertNode(&nn)
	}
	for _, e := range s.Edges {
		if _, ok := g.nodes[e.From]; !ok {
			continue
		}
		if _, ok := g.nodes[e.To]; !ok {
			continue
		}
		ne := e.clone()
		ne.Directed = s.Directed
		if _, dup := g.edges[ne.ID]; ne.ID == "" || dup {
			ne.ID = g.nextEdgeID(ne.From, ne.To)
		}
		g.insertEdge(&ne)
	}
}

// Subgraph returns the snapshot induced by nodeIDs: those nodes plus every
// edge with both endpoints inside the set. Unknown ids are ignored.
func (g *Graph) Subgraph(nodeIDs []string) Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keep := make(map[string]struct{}, len(nodeIDs))
	for _, id := range nodeIDs {
		keep[id] = struct{}{}
	}
	s := Snapshot{Nodes: []Node{}, Edges: []Edge{}, Directed: g.directed}
	for _, id := range g.nodeOrder {
		if _, ok := keep[id]; ok {
			s.Nodes = append(s.Nodes, *g.nodes[id])
		}
	}
	for _, id := range g.edgeOrder {
		e := g.edges[id]
		_, okFrom := keep[e.From]
		_, okTo := keep[e.To]
		if okFrom && okTo {
			s.Edges = append(s.Edges, e.clone())
		}
	}
	return s
}

// Clone returns an independent Graph with the same content and counters.
func (g *Graph) Clone() *Graph {
	s := g.Snapshot()

	g.mu.RLock()
	nodeSeq, edgeSeq := g.nodeSeq, g.edgeSeq
	g.mu.RUnlock()

	c := FromSnapshot(s)
	c.nodeSeq, c.edgeSeq = nodeSeq, edgeSeq
	return c
}

// Clear removes every node and edge. The mode and the id counters are kept.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

// resetLocked empties the catalogs. Caller holds the write lock.
func (g *Graph) resetLocked() {
	g.nodes = make(map[string]*Node)
	g.nodeOrder = nil
	g.edges = make(map[string]*Edge)
	g.edgeOrder = nil
	g.incidence = make(map[string][]string)
}
