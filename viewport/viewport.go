// Package viewport holds the pan/zoom state of the canvas and converts
// between world and screen coordinates.
//
//	screen = world·Scale + Pan
//	world  = (screen − Pan) / Scale
//
// Wheel zoom multiplies or divides Scale by ZoomFactor, clamps it to
// [MinScale, MaxScale] and re-solves Pan so that the world point under the
// cursor stays under the cursor.
package viewport

import (
	"math"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/geometry"
)

// Zoom limits.
const (
	ZoomFactor = 1.1
	MinScale   = 0.1
	MaxScale   = 5.0
)

// Viewport is a value type; the zero value is not usable, call New.
type Viewport struct {
	Scale float64    `json:"scale"`
	Pan   core.Point `json:"pan"`
}

// New returns the identity transform.
func New() Viewport {
	return Viewport{Scale: 1}
}

// WorldToScreen maps a world point to the screen.
func (v Viewport) WorldToScreen(p core.Point) core.Point {
	return p.Scale(v.Scale).Add(v.Pan)
}

// ScreenToWorld maps a screen point to the world.
func (v Viewport) ScreenToWorld(p core.Point) core.Point {
	return p.Sub(v.Pan).Scale(1 / v.Scale)
}

// Zoom applies one wheel notch at the cursor. Negative deltaY zooms in,
// positive zooms out, zero is ignored.
func (v *Viewport) Zoom(cursor core.Point, deltaY float64) {
	switch {
	case deltaY < 0:
		v.ZoomTo(cursor, v.Scale*ZoomFactor)
	case deltaY > 0:
		v.ZoomTo(cursor, v.Scale/ZoomFactor)
	}
}

// ZoomTo sets Scale (clamped) keeping the world point under cursor fixed.
func (v *Viewport) ZoomTo(cursor core.Point, scale float64) {
	anchor := v.ScreenToWorld(cursor)
	v.Scale = Clamp(scale)
	v.Pan = cursor.Sub(anchor.Scale(v.Scale))
}

// PanBy accumulates a drag delta given in screen units.
func (v *Viewport) PanBy(dx, dy float64) {
	v.Pan = v.Pan.Add(core.Point{X: dx, Y: dy})
}

// Reset restores the identity transform.
func (v *Viewport) Reset() {
	*v = New()
}

// Visible returns the world rectangle shown by a screen of the given size.
func (v Viewport) Visible(width, height float64) geometry.Rect {
	return geometry.Rect{
		Min: v.ScreenToWorld(core.Point{}),
		Max: v.ScreenToWorld(core.Point{X: width, Y: height}),
	}
}

// FitTo frames r inside a screen of the given size with margin pixels on
// every side. An empty r only recentres.
func (v *Viewport) FitTo(r geometry.Rect, width, height, margin float64) {
	center := r.Min.Add(r.Max).Scale(0.5)
	if r.Width() > 0 && r.Height() > 0 {
		sx := (width - 2*margin) / r.Width()
		sy := (height - 2*margin) / r.Height()
		v.Scale = Clamp(math.Min(sx, sy))
	}
	v.Pan = core.Point{X: width / 2, Y: height / 2}.Sub(center.Scale(v.Scale))
}

// Clamp limits s to [MinScale, MaxScale].
func Clamp(s float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, s))
}
