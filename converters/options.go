// File: options.go
// Role: Functional options for the text importers and the node layouts.
// Determinism:
//   - Circle and grid layouts depend only on node order and the canvas.
//   - Random layout is reproducible for a fixed seed.

package converters

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/graphstudio/core"
)

// ErrUnknownLayout is returned by ParseLayout.
var ErrUnknownLayout = errors.New("converters: unknown layout")

// Layout places imported nodes.
type Layout string

// Supported layouts.
const (
	LayoutCircle Layout = "circle"
	LayoutGrid   Layout = "grid"
	LayoutRandom Layout = "random"
)

// Layout constants.
const (
	DefaultCanvasWidth  = 1280.0
	DefaultCanvasHeight = 800.0

	// circleFill is the share of the smaller half-extent used as radius.
	circleFill = 0.7
	// gridSpacing and gridOrigin are in world units.
	gridSpacing = 150.0
	gridOrigin  = 100.0
	// randomMargin keeps random nodes off the canvas border.
	randomMargin = 50.0
)

// ParseLayout maps a name to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case LayoutCircle, LayoutGrid, LayoutRandom:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// Options configures the importers.
type Options struct {
	// Directed is copied to the snapshot and to every imported edge.
	Directed bool
	// Weighted controls the default weight of an edge-list line without a
	// weight token: 1 when true, 0 when false.
	Weighted bool
	// IndexBase is the id of the first matrix row (0 or 1).
	IndexBase int

	Layout Layout
	Width  float64
	Height float64
	Seed   uint64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns undirected, weighted, 1-based, circle layout.
func DefaultOptions() Options {
	return Options{
		Weighted:  true,
		IndexBase: 1,
		Layout:    LayoutCircle,
		Width:     DefaultCanvasWidth,
		Height:    DefaultCanvasHeight,
		Seed:      1,
	}
}

// WithDirected marks the imported graph as directed.
func WithDirected(d bool) Option {
	return func(o *Options) { o.Directed = d }
}

// WithWeighted sets the default weight policy of the edge-list importer.
func WithWeighted(w bool) Option {
	return func(o *Options) { o.Weighted = w }
}

// WithIndexBase sets the id of the first matrix row. Values other than 0
// and 1 panic.
func WithIndexBase(base int) Option {
	if base != 0 && base != 1 {
		panic("converters: WithIndexBase: base must be 0 or 1")
	}
	return func(o *Options) { o.IndexBase = base }
}

// WithLayout selects the node placement.
func WithLayout(l Layout) Option {
	return func(o *Options) { o.Layout = l }
}

// WithCanvas sets the area the layout fills. Non-positive sizes are ignored.
func WithCanvas(width, height float64) Option {
	return func(o *Options) {
		if width > 0 && height > 0 {
			o.Width, o.Height = width, height
		}
	}
}

// WithSeed fixes the random layout.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// place assigns X and Y to every node in order.
//
// Complexity: O(V).
func place(nodes []core.Node, o Options) {
	n := len(nodes)
	if n == 0 {
		return
	}
	switch o.Layout {
	case LayoutGrid:
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		for i := range nodes {
			nodes[i].X = gridOrigin + float64(i%cols)*gridSpacing
			nodes[i].Y = gridOrigin + float64(i/cols)*gridSpacing
		}
	case LayoutRandom:
		rng := rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15))
		w := math.Max(o.Width-2*randomMargin, 1)
		h := math.Max(o.Height-2*randomMargin, 1)
		for i := range nodes {
			nodes[i].X = randomMargin + rng.Float64()*w
			nodes[i].Y = randomMargin + rng.Float64()*h
		}
	default:
		cx, cy := o.Width/2, o.Height/2
		r := math.Min(cx, cy) * circleFill
		step := 2 * math.Pi / float64(n)
		for i := range nodes {
			nodes[i].X = cx + r*math.Cos(float64(i)*step)
			nodes[i].Y = cy + r*math.Sin(float64(i)*step)
		}
	}
}
