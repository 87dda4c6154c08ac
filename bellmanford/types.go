// Package bellmanford defines options, results and errors for the
// Bellman-Ford single-source shortest-path algorithm.
package bellmanford

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle detected")

	// ErrNoPath is returned by Result.PathTo for an unreachable vertex.
	ErrNoPath = errors.New("bellmanford: no path")
)

// CycleError reports the relaxation that was still possible after |V|-1
// passes. Wraps ErrNegativeCycle.
type CycleError struct {
	From, To string
	EdgeID   string
}

// Error implements error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: edge %s %s→%s still relaxes", ErrNegativeCycle, e.EdgeID, e.From, e.To)
}

// Unwrap lets errors.Is match ErrNegativeCycle.
func (e *CycleError) Unwrap() error { return ErrNegativeCycle }

// Relaxation describes one improvement of a tentative distance.
type Relaxation struct {
	From, To string
	EdgeID   string
	Weight   float64
	Old, New float64
}

// Options configures BellmanFord.
type Options struct {
	// Ctx is checked once per pass.
	Ctx context.Context

	// OnPass is called at the start of pass i (1-based) of total = |V|-1.
	OnPass func(i, total int)

	// OnRelax is called for every successful relaxation.
	OnRelax func(r Relaxation)

	// OnConverged is called when a pass changes nothing before the last one.
	OnConverged func(pass int)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnPass:      func(int, int) {},
		OnRelax:     func(Relaxation) {},
		OnConverged: func(int) {},
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPass installs the pass hook.
func WithOnPass(fn func(i, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// WithOnRelax installs the relaxation hook.
func WithOnRelax(fn func(r Relaxation)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnConverged installs the early-convergence hook.
func WithOnConverged(fn func(pass int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnConverged = fn
		}
	}
}

// Result holds distances and the predecessor tree.
type Result struct {
	Source string
	// Dist maps every vertex to its distance; unreachable vertices hold +Inf.
	Dist map[string]float64
	// Prev and PrevEdge describe the last relaxation that improved each vertex.
	Prev     map[string]string
	PrevEdge map[string]string
	// Passes is the number of passes actually run.
	Passes int
}

// Reached reports whether id has a finite distance.
func (r *Result) Reached(id string) bool {
	d, ok := r.Dist[id]
	return ok && !math.IsInf(d, 1)
}

// PathTo returns the vertices and edge ids from Source to id.
func (r *Result) PathTo(id string) (nodes, edges []string, err error) {
	if !r.Reached(id) {
		return nil, nil, fmt.Errorf("%w: %q", ErrNoPath, id)
	}
	for cur := id; ; {
		nodes = append(nodes, cur)
		if cur == r.Source {
			break
		}
		edges = append(edges, r.PrevEdge[cur])
		cur = r.Prev[cur]
	}
	slices.Reverse(nodes)
	slices.Reverse(edges)
	return nodes, edges, nil
}
