// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, a *CycleError wrapping ErrCycleDetected is
// returned.
//
// Complexity:
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/graphstudio/core"
)

// CycleError reports the cycle that made a topological order impossible.
type CycleError struct {
	// Nodes lists the cycle's vertices in edge order; the last one has an
	// edge back to the first.
	Nodes []string
	// Edges lists the ids of the cycle's edges, parallel to Nodes.
	Edges []string
}

// Error implements error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCycleDetected, strings.Join(e.Nodes, " → "))
}

// Unwrap lets errors.Is match ErrCycleDetected.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort.
type topoOptions struct {
	ctx    context.Context // allows cancellation; defaults to Background
	onDone func(id string) // called when a vertex is finished
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background(), onDone: func(string) {}}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnFinish returns a TopoOption whose fn observes vertices as they are
// finished, which is the reverse of the final order.
func WithOnFinish(fn func(id string)) TopoOption {
	return func(o *topoOptions) {
		if fn != nil {
			o.onDone = fn
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	opts  topoOptions    // traversal options
	state map[string]int // visitation state: White, Gray, Black
	stack []string       // current gray path
	via   []string       // edge ids along stack (via[i] enters stack[i+1])
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are tried in insertion order and arcs in ascending target order, so
// the result is deterministic.
// If g is nil, returns ErrGraphNil.
// If g is undirected, returns ErrUndirectedGraph.
// If a cycle is detected, returns *CycleError.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed graphs are supported
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	// 3. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 4. Initialize sorter state
	verts := g.NodeIDs()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	// 5. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 6. Reverse post-order to produce topological order
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Mark as in-progress (Gray)
	t.state[id] = Gray
	t.stack = append(t.stack, id)

	// 3. Explore each outgoing arc
	for _, arc := range t.graph.Arcs(id) {
		switch t.state[arc.To] {
		case Gray:
			// back edge: the cycle is the gray path from arc.To to id
			return t.cycle(arc)
		case White:
			t.via = append(t.via, arc.EdgeID)
			if err := t.visit(arc.To); err != nil {
				return err
			}
			t.via = t.via[:len(t.via)-1]
		}
	}

	// 4. Mark as fully explored (Black) and record in post-order list
	t.state[id] = Black
	t.stack = t.stack[:len(t.stack)-1]
	t.order = append(t.order, id)
	t.opts.onDone(id)

	return nil
}

// cycle builds the CycleError closed by back edge arc.
func (t *topoSorter) cycle(arc core.Arc) error {
	i := slices.Index(t.stack, arc.To)
	nodes := slices.Clone(t.stack[i:])
	edges := append(slices.Clone(t.via[i:]), arc.EdgeID)

	return &CycleError{Nodes: nodes, Edges: edges}
}
