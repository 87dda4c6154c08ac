// Package geometry turns graph state into drawable edge curves.
//
// Everything here is a pure function of its inputs: the interactive canvas and
// the SVG exporter call the same Layout and therefore draw identical shapes.
//
// Layout rules:
//
//   - Non-loop edges are grouped by PairKey (sorted endpoint ids joined by "-"),
//     regardless of direction. Member i of a group of n gets the offset factor
//     i − (n−1)/2 and its quadratic control point is the segment midpoint moved
//     along the unit normal by factor·CurveStep.
//   - The normal is taken from the canonical orientation of the pair (smaller
//     id → larger id), so A→B and B→A members never land on the same curve.
//   - A manual control point replaces the computed one entirely.
//   - A self-loop is a fixed cubic above its node with symmetric control
//     points at (±LoopOffset, −LoopOffset); grouping never affects it.
//   - Labels sit at the curve midpoint 0.25·P0 + 0.5·P1 + 0.25·P2
//     (LoopLabelLift above the node for loops).
//   - Arrowheads stop NodeRadius before the target along the end tangent.
package geometry

import (
	"math"

	"github.com/katalvlaran/graphstudio/core"
)

// Default layout constants, in world units.
const (
	CurveStep     = 40.0
	NodeRadius    = 20.0
	LoopOffset    = 50.0
	LoopLabelLift = 60.0
	ArrowLength   = 10.0
	ArrowWidth    = 10.0
)

// Kind tells which Bezier form a Curve uses.
type Kind int

const (
	// KindQuadratic is Start–Control–End.
	KindQuadratic Kind = iota
	// KindSelfLoop is the cubic Start–Control–Control2–End.
	KindSelfLoop
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindSelfLoop {
		return "self-loop"
	}
	return "quadratic"
}

// Arrow is a filled triangle whose Tip touches the target glyph.
type Arrow struct {
	Tip   core.Point
	Left  core.Point
	Right core.Point
	// Angle is the direction of the end tangent, in radians.
	Angle float64
}

// Curve is the renderable shape of one edge.
type Curve struct {
	EdgeID   string
	Kind     Kind
	Start    core.Point
	Control  core.Point
	Control2 core.Point
	End      core.Point
	// Offset is the signed distance of Control from the midpoint along the
	// pair normal; zero for loops, single edges and manual control points.
	Offset float64
	// Manual is true when Control came from the edge's own control point.
	Manual bool
	Label  core.Point
	Arrow  *Arrow
}

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	Min core.Point
	Max core.Point
}

// NewRect builds a rectangle from an origin and a signed size, normalising
// negative widths and heights.
func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Min: core.Point{X: math.Min(x, x+w), Y: math.Min(y, y+h)},
		Max: core.Point{X: math.Max(x, x+w), Y: math.Max(y, y+h)},
	}
}

// Width returns Max.X-Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y-Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports a zero-area rectangle.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p core.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Options tunes Layout. Zero values are replaced by the package constants.
type Options struct {
	CurveStep     float64
	NodeRadius    float64
	LoopOffset    float64
	LoopLabelLift float64
	ArrowLength   float64
	ArrowWidth    float64
	// Arrows forces arrowheads on every edge (graph-wide directed mode).
	Arrows bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the package constants.
func DefaultOptions() Options {
	return Options{
		CurveStep:     CurveStep,
		NodeRadius:    NodeRadius,
		LoopOffset:    LoopOffset,
		LoopLabelLift: LoopLabelLift,
		ArrowLength:   ArrowLength,
		ArrowWidth:    ArrowWidth,
	}
}

// WithCurveStep overrides the parallel-edge spacing.
func WithCurveStep(step float64) Option {
	return func(o *Options) {
		if step > 0 {
			o.CurveStep = step
		}
	}
}

// WithNodeRadius overrides the node glyph radius used for arrow placement.
func WithNodeRadius(r float64) Option {
	return func(o *Options) {
		if r > 0 {
			o.NodeRadius = r
		}
	}
}

// WithLoopOffset overrides the self-loop control distance.
func WithLoopOffset(d float64) Option {
	return func(o *Options) {
		if d > 0 {
			o.LoopOffset = d
		}
	}
}

// WithArrows draws arrowheads on every edge when on is true.
func WithArrows(on bool) Option {
	return func(o *Options) { o.Arrows = on }
}
