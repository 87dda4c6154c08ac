// Package builder generates sample graphs for the editor: cycles, paths,
// stars, wheels, complete and bipartite graphs, grids and random graphs.
//
// Every constructor places its nodes so the result renders without a
// separate layout pass, uses ids "1", "2", ... unless WithIDScheme says
// otherwise, and emits edges in a documented, deterministic order. Random
// constructors are reproducible under WithSeed.
//
//	s, err := builder.Build([]builder.Option{builder.WithSeed(7)},
//		builder.Wheel(6))
package builder

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/katalvlaran/graphstudio/core"
)

// Sentinel errors.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a core rejection.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// Layout defaults, world units.
const (
	DefaultCenterX = 400.0
	DefaultCenterY = 300.0
	DefaultRadius  = 220.0
	DefaultSpacing = 120.0
)

// Constructor adds one topology to g.
type Constructor func(g *core.Graph, cfg config) error

type config struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn WeightFn
	directed bool

	cx, cy  float64
	radius  float64
	spacing float64

	leftPrefix  string
	rightPrefix string
}

// Option customises Build.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:        func(i int) string { return strconv.Itoa(i + 1) },
		weightFn:    DefaultWeightFn,
		cx:          DefaultCenterX,
		cy:          DefaultCenterY,
		radius:      DefaultRadius,
		spacing:     DefaultSpacing,
		leftPrefix:  "L",
		rightPrefix: "R",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme sets the node id generator (index → id). Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

// WithRand provides the RNG for random constructors and weights. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed is WithRand with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithDirected builds a directed graph.
func WithDirected(d bool) Option {
	return func(c *config) { c.directed = d }
}

// WithCenter moves the centre of circular layouts.
func WithCenter(x, y float64) Option {
	return func(c *config) { c.cx, c.cy = x, y }
}

// WithRadius sets the circle radius; non-positive values are ignored.
func WithRadius(r float64) Option {
	return func(c *config) {
		if r > 0 {
			c.radius = r
		}
	}
}

// WithSpacing sets the distance between neighbours in grid, path and
// bipartite layouts; non-positive values are ignored.
func WithSpacing(d float64) Option {
	return func(c *config) {
		if d > 0 {
			c.spacing = d
		}
	}
}

// WithPartitionPrefix sets the id prefixes of CompleteBipartite. Empty
// values keep "L" and "R".
func WithPartitionPrefix(left, right string) Option {
	return func(c *config) {
		if left != "" {
			c.leftPrefix = left
		}
		if right != "" {
			c.rightPrefix = right
		}
	}
}

// Build runs cons in order on an empty graph and returns its snapshot.
func Build(opts []Option, cons ...Constructor) (core.Snapshot, error) {
	cfg := newConfig(opts...)
	g := core.NewGraph(core.WithDirected(cfg.directed))
	for i, fn := range cons {
		if fn == nil {
			return core.Snapshot{}, fmt.Errorf("builder: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return core.Snapshot{}, fmt.Errorf("builder: %w", err)
		}
	}
	return g.Snapshot(), nil
}

// addNode wraps core rejections with the constructor name.
func addNode(g *core.Graph, method, id string, x, y float64) error {
	if err := g.AddNodeWithID(id, x, y, ""); err != nil {
		return fmt.Errorf("%s: add node %s: %v: %w", method, id, err, ErrConstructFailed)
	}
	return nil
}

// addEdge draws the weight and adds u→v.
func addEdge(g *core.Graph, cfg config, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: add edge %s→%s: %v: %w", method, u, v, err, ErrConstructFailed)
	}
	return nil
}
