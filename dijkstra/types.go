// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes edges in increasing order of distance from the source vertex.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– Target:           optional vertex; the search stops once it is settled.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– OnSettle/OnRelax: observation hooks, called synchronously.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph (as *WeightError).
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphstudio/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath is returned by Result.PathTo for an unreachable vertex.
	ErrNoPath = errors.New("dijkstra: no path")
)

// WeightError names the first negative edge found by the pre-scan.
type WeightError struct {
	EdgeID   string
	From, To string
	Weight   float64
}

// Error implements error.
func (e *WeightError) Error() string {
	return fmt.Sprintf("%v: edge %s %s→%s weight=%g", ErrNegativeWeight, e.EdgeID, e.From, e.To, e.Weight)
}

// Unwrap lets errors.Is match ErrNegativeWeight.
func (e *WeightError) Unwrap() error { return ErrNegativeWeight }

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance must be ≥ 0 and defaults to +Inf (no cap).
// InfEdgeThreshold must be > 0 and defaults to +Inf (no obstacles).
type Options struct {
	Ctx              context.Context // cancellation, checked once per settled vertex
	Source           string          // The ID of the source vertex
	Target           string          // Optional early-stop vertex
	MaxDistance      float64         // Maximum distance to explore
	InfEdgeThreshold float64         // Weight threshold above which edges are non-traversable

	// OnSettle is called when id receives its final distance. via is the
	// edge it was reached by, empty for the source.
	OnSettle func(id string, dist float64, via string)

	// OnRelax is called when arc from an already settled vertex improves the
	// tentative distance of arc.To from old (possibly +Inf) to dist.
	OnRelax func(from string, arc core.Arc, old, dist float64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// Target makes Dijkstra stop as soon as id is settled.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
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

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(maxDist float64) Option {
	return func(o *Options) {
		if maxDist < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = maxDist
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle installs the settle hook.
func WithOnSettle(fn func(id string, dist float64, via string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax installs the relax hook.
func WithOnRelax(fn func(from string, arc core.Arc, old, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:           <as passed> (no validation here; validated in Dijkstra).
//   - Target:           none (settle every reachable vertex).
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - Hooks:            no-ops.
func DefaultOptions(source string) Options {
	return Options{
		Ctx:              context.Background(),
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		OnSettle:         func(string, float64, string) {},
		OnRelax:          func(string, core.Arc, float64, float64) {},
	}
}

// Result holds the shortest-path tree computed by Dijkstra.
type Result struct {
	// Source is the start vertex.
	Source string
	// Dist maps every vertex to its distance; unreachable vertices hold +Inf.
	// When Target is set the distances of unsettled vertices are tentative.
	Dist map[string]float64
	// Prev maps each reached vertex (except Source) to its predecessor.
	Prev map[string]string
	// PrevEdge maps each reached vertex (except Source) to the edge from Prev.
	PrevEdge map[string]string
	// Settled lists vertices in the order their distance became final.
	Settled []string
}

// Reached reports whether id has a finite distance.
func (r *Result) Reached(id string) bool {
	d, ok := r.Dist[id]
	return ok && !math.IsInf(d, 1)
}

// PathTo returns the vertices and edge ids from Source to id.
// Returns ErrNoPath if id was not reached.
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
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return nodes, edges, nil
}
