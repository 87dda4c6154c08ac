// Package euler finds Eulerian circuits and trails on a core.Graph with
// Hierholzer's algorithm.
//
// A circuit uses every edge exactly once and returns to its start; a trail
// uses every edge exactly once between two distinct odd (undirected) or
// unbalanced (directed) vertices. Parallel edges and self-loops are ordinary
// edges here.
//
// Determinism: unused arcs are taken in ascending target id order
// (core.Graph.Arcs), so the walk is reproducible.
//
// Complexity: O(V + E·log d) time, O(V + E) memory.
package euler

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/graphstudio/core"
)

var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("euler: graph is nil")

	// ErrNoEdges indicates a graph without edges; there is nothing to walk.
	ErrNoEdges = errors.New("euler: graph has no edges")

	// ErrNotEulerian indicates that the degrees or the connectivity rule out
	// any Eulerian circuit or trail.
	ErrNotEulerian = errors.New("euler: graph is not eulerian")

	// ErrInvalidStart indicates a start vertex that cannot begin the walk.
	ErrInvalidStart = errors.New("euler: invalid start vertex")
)

// Kind tells a circuit from a trail.
type Kind int

const (
	// Circuit starts and ends at the same vertex.
	Circuit Kind = iota + 1
	// Trail starts and ends at different vertices.
	Trail
)

// String returns "circuit" or "trail".
func (k Kind) String() string {
	switch k {
	case Circuit:
		return "circuit"
	case Trail:
		return "trail"
	}
	return "unknown"
}

// Options configures Hierholzer.
type Options struct {
	Ctx context.Context

	// OnTraverse observes every edge the walk consumes, in consumption order.
	OnTraverse func(from string, arc core.Arc)

	// OnBacktrack observes a vertex being appended to the final sequence.
	OnBacktrack func(id string)
}

// Option configures Options.
type Option func(*Options)

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnTraverse installs the traverse hook.
func WithOnTraverse(fn func(from string, arc core.Arc)) Option {
	return func(o *Options) { o.OnTraverse = fn }
}

// WithOnBacktrack installs the backtrack hook.
func WithOnBacktrack(fn func(id string)) Option {
	return func(o *Options) { o.OnBacktrack = fn }
}

// Result is an Eulerian walk.
type Result struct {
	Kind Kind
	// Nodes lists the visited vertices; len(Nodes) == len(Edges)+1.
	Nodes []string
	// Edges lists edge ids in walk order.
	Edges []string
}

// Classify checks the degree conditions and returns the walk kind and the
// vertex the walk must (trail) or may (circuit) start from. For a circuit
// the suggested start is the first vertex, in insertion order, with an edge.
//
// Classify does not check connectivity; Hierholzer does.
func Classify(g *core.Graph) (Kind, string, error) {
	if g == nil {
		return 0, "", ErrNilGraph
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return 0, "", ErrNoEdges
	}

	// balance is out-in for directed graphs, degree parity for undirected.
	balance := make(map[string]int)
	touched := make(map[string]bool)
	for _, e := range edges {
		touched[e.From], touched[e.To] = true, true
		if g.Directed() {
			balance[e.From]++
			balance[e.To]--
		} else {
			balance[e.From] ^= 1
			balance[e.To] ^= 1
		}
	}

	var first, begin string
	var odd int
	for _, id := range g.NodeIDs() {
		if !touched[id] {
			continue
		}
		if first == "" {
			first = id
		}
		b := balance[id]
		switch {
		case b == 0:
		case b == 1:
			odd++
			if begin == "" {
				begin = id
			}
		case g.Directed() && b == -1:
			odd++
		default:
			return 0, "", fmt.Errorf("%w: vertex %q is unbalanced by %d", ErrNotEulerian, id, b)
		}
	}

	switch {
	case odd == 0:
		return Circuit, first, nil
	case odd == 2:
		return Trail, begin, nil
	}
	return 0, "", fmt.Errorf("%w: %d vertices of odd degree", ErrNotEulerian, odd)
}

// Hierholzer returns an Eulerian circuit or trail of g.
//
// start may be empty to let Classify pick. A non-empty start must be a
// vertex with edges for a circuit, or the required endpoint for a trail
// (either odd vertex when undirected); otherwise ErrInvalidStart.
func Hierholzer(g *core.Graph, start string, opts ...Option) (*Result, error) {
	o := Options{Ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	kind, suggested, err := Classify(g)
	if err != nil {
		return nil, err
	}
	if start == "" {
		start = suggested
	} else if !validStart(g, kind, start, suggested) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStart, start)
	}

	arcs := make(map[string][]core.Arc)
	next := make(map[string]int)
	used := make(map[string]bool)

	type frame struct{ node, via string }
	stack := []frame{{node: start}}
	res := &Result{Kind: kind}

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		u := top.node
		list, ok := arcs[u]
		if !ok {
			list = g.Arcs(u)
			arcs[u] = list
		}
		i := next[u]
		for i < len(list) && used[list[i].EdgeID] {
			i++
		}
		next[u] = i

		if i == len(list) {
			// no more edges: backtrack
			stack = stack[:len(stack)-1]
			res.Nodes = append(res.Nodes, u)
			if top.via != "" {
				res.Edges = append(res.Edges, top.via)
			}
			if o.OnBacktrack != nil {
				o.OnBacktrack(u)
			}
			continue
		}

		a := list[i]
		used[a.EdgeID] = true
		if o.OnTraverse != nil {
			o.OnTraverse(u, a)
		}
		stack = append(stack, frame{node: a.To, via: a.EdgeID})
	}

	if len(res.Edges) != g.EdgeCount() {
		return nil, fmt.Errorf("%w: edges span more than one component", ErrNotEulerian)
	}
	slices.Reverse(res.Nodes)
	slices.Reverse(res.Edges)

	return res, nil
}

// validStart reports whether start can begin a walk of the given kind.
func validStart(g *core.Graph, kind Kind, start, suggested string) bool {
	if !g.HasNode(start) {
		return false
	}
	if kind == Circuit {
		return degree(g, start) > 0
	}
	if g.Directed() {
		return start == suggested
	}
	return degree(g, start)%2 == 1
}

// degree counts incident edges, self-loops twice.
func degree(g *core.Graph, id string) int {
	deg := 0
	for _, e := range g.IncidentEdges(id) {
		deg++
		if e.IsLoop() {
			deg++
		}
	}
	return deg
}
