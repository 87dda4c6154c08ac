// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/AddNodeWithID/UpdateNodePosition/
//       MoveNodes/UpdateNodeLabel/DeleteNode plus lookups. Also: nextNodeID().
// Determinism:
//   - Nodes() returns insertion order.
//   - nextNodeID() is strictly increasing and skips ids already taken.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"slices"
	"strconv"
)

// AddNode appends a node at world position (x, y) and returns its id.
// The id is the next counter value in decimal; ids present because of an
// import or restore are skipped, and a deleted id is never handed out again.
// The label defaults to the id.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(x, y float64) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextNodeID()
	g.insertNode(&Node{ID: id, X: x, Y: y, Label: id})
	return id
}

// AddNodeWithID inserts a node with a caller-chosen id, as importers do.
func (g *Graph) AddNodeWithID(id string, x, y float64, label string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; ok {
		return ErrDuplicateNode
	}
	g.insertNode(&Node{ID: id, X: x, Y: y, Label: label})
	return nil
}

// UpdateNodePosition moves node id to (x, y). Every incident edge with a
// manual control point is shifted by half of the node delta per incident
// endpoint, so a self-loop moves by the full delta.
// Returns false (and changes nothing) when id is unknown.
//
// Complexity: O(deg(v)).
func (g *Graph) UpdateNodePosition(id string, x, y float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	delta := Point{X: x - n.X, Y: y - n.Y}
	half := delta.Scale(0.5)

	var e *Edge
	for _, eid := range g.incidence[id] {
		e = g.edges[eid]
		if e.ControlPoint == nil {
			continue
		}
		if e.IsLoop() {
			*e.ControlPoint = e.ControlPoint.Add(delta)
			continue
		}
		*e.ControlPoint = e.ControlPoint.Add(half)
	}
	n.X, n.Y = x, y
	return true
}

// MoveNodes applies a batch of relative moves. For a bent edge whose both
// endpoints move, the control point shifts by the average of the two deltas;
// with one moving endpoint it shifts by half of that delta; otherwise it
// stays. Repeated ids accumulate. Unknown ids are ignored.
// Returns the number of distinct nodes moved.
//
// Complexity: O(Σ deg(v)) over moved nodes.
func (g *Graph) MoveNodes(deltas []NodeDelta) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	moved := make(map[string]Point, len(deltas))
	for _, d := range deltas {
		if _, ok := g.nodes[d.ID]; !ok {
			continue
		}
		moved[d.ID] = moved[d.ID].Add(Point{X: d.DX, Y: d.DY})
	}
	if len(moved) == 0 {
		return 0
	}

	seen := make(map[string]struct{})
	for id := range moved {
		for _, eid := range g.incidence[id] {
			if _, dup := seen[eid]; dup {
				continue
			}
			seen[eid] = struct{}{}
			e := g.edges[eid]
			if e.ControlPoint == nil {
				continue
			}
			df, okFrom := moved[e.From]
			dt, okTo := moved[e.To]
			var shift Point
			switch {
			case okFrom && okTo:
				shift = df.Add(dt).Scale(0.5)
			case okFrom:
				shift = df.Scale(0.5)
			default:
				shift = dt.Scale(0.5)
			}
			*e.ControlPoint = e.ControlPoint.Add(shift)
		}
	}

	for id, d := range moved {
		n := g.nodes[id]
		n.X += d.X
		n.Y += d.Y
	}
	return len(moved)
}

// UpdateNodeLabel sets the display label of node id.
func (g *Graph) UpdateNodeLabel(id, label string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.Label = label
	return true
}

// DeleteNode removes node id and cascades every edge that references it.
//
// Complexity: O(deg(v)·E + V) worst case for order bookkeeping.
func (g *Graph) DeleteNode(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.deleteNodeLocked(id)
}

// HasNode reports whether node id exists.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Node returns a copy of node id.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns copies of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, *g.nodes[id])
	}
	return out
}

// NodeIDs returns node ids in insertion order.
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.nodeOrder)
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// nextNodeID advances the counter until it yields a free id.
// Caller must hold the write lock.
func (g *Graph) nextNodeID() string {
	for {
		g.nodeSeq++
		id := strconv.FormatUint(g.nodeSeq, 10)
		if _, taken := g.nodes[id]; !taken {
			return id
		}
	}
}

// insertNode stores n and lifts nodeSeq past a numeric id, so an imported
// id is never handed out again once deleted. Caller must hold the write lock.
func (g *Graph) insertNode(n *Node) {
	g.nodes[n.ID] = n
	g.nodeOrder = append(g.nodeOrder, n.ID)
	if v, err := strconv.ParseUint(n.ID, 10, 64); err == nil && v > g.nodeSeq {
		g.nodeSeq = v
	}
}

// deleteNodeLocked removes id and its incident edges. Caller holds the write lock.
func (g *Graph) deleteNodeLocked(id string) bool {
	if _, ok := g.nodes[id]; !ok {
		return false
	}
	for _, eid := range slices.Clone(g.incidence[id]) {
		g.deleteEdgeLocked(eid)
	}
	delete(g.incidence, id)
	delete(g.nodes, id)
	g.nodeOrder = slices.DeleteFunc(g.nodeOrder, func(v string) bool { return v == id })
	return true
}
