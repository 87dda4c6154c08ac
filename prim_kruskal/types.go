// Package prim_kruskal defines configuration options, hooks, results and
// sentinel errors for MST computation.
package prim_kruskal

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphstudio/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or directed.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected graph")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. The Result returned alongside
// holds the partial tree (Prim) or forest (Kruskal).
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute for a Method it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Candidate is an edge as seen by the algorithm. For Prim, From is the
// endpoint already in the tree; for Kruskal it is the stored From.
type Candidate struct {
	EdgeID   string
	From, To string
	Weight   float64
}

// MSTOptions configures which MST algorithm to run, the start vertex for
// Prim, cancellation, and the observation hooks.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string

	// Ctx is checked once per candidate edge.
	Ctx context.Context

	// OnConsider is called for every candidate taken from the heap (Prim)
	// or the sorted list (Kruskal).
	OnConsider func(c Candidate)

	// OnAccept is called when c joins the tree; total includes c.
	OnAccept func(c Candidate, total float64)

	// OnReject is called when c would close a cycle.
	OnReject func(c Candidate)
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm and ignore by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(opts *MSTOptions) {
		if ctx != nil {
			opts.Ctx = ctx
		}
	}
}

// WithOnConsider installs the consider hook.
func WithOnConsider(fn func(c Candidate)) Option {
	return func(opts *MSTOptions) {
		if fn != nil {
			opts.OnConsider = fn
		}
	}
}

// WithOnAccept installs the accept hook.
func WithOnAccept(fn func(c Candidate, total float64)) Option {
	return func(opts *MSTOptions) {
		if fn != nil {
			opts.OnAccept = fn
		}
	}
}

// WithOnReject installs the reject hook.
func WithOnReject(fn func(c Candidate)) Option {
	return func(opts *MSTOptions) {
		if fn != nil {
			opts.OnReject = fn
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = "" (ignored by Kruskal)
//	– Ctx    = context.Background()
//	– no-op hooks.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:     MethodKruskal,
		Ctx:        context.Background(),
		OnConsider: func(Candidate) {},
		OnAccept:   func(Candidate, float64) {},
		OnReject:   func(Candidate) {},
	}
}

// Result is a spanning tree (or, with ErrDisconnected, a partial one).
type Result struct {
	// Edges lists the accepted edges in acceptance order.
	Edges []core.Edge
	// Total is the sum of their weights.
	Total float64
	// Spanned lists the vertices covered by Edges plus the Prim root, in
	// the order they joined.
	Spanned []string
}

// Compute selects and runs the MST algorithm based on the Method option.
//
//	– MethodKruskal: calls Kruskal(graph, opts...).
//	– MethodPrim:    calls Prim(graph, Root, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph, opts...)
	case MethodPrim:
		return Prim(graph, o.Root, opts...)
	default:
		return nil, ErrUnknownMethod
	}
}

// build applies opts over the defaults.
func build(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
