package geometry

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphstudio/core"
)

// PairKey returns the canonical key of the unordered pair {a, b}.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "-" + b
}

// Layout computes one Curve per edge whose endpoints are both present in
// nodes, preserving edge order. Group indices follow edge order.
//
// Complexity: O(V+E).
func Layout(nodes []core.Node, edges []core.Edge, opts ...Option) []Curve {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pos := make(map[string]core.Point, len(nodes))
	for _, n := range nodes {
		pos[n.ID] = n.Pos()
	}

	// First pass: group sizes and each member's index.
	size := make(map[string]int)
	index := make([]int, len(edges))
	for i, e := range edges {
		if e.IsLoop() || !hasBoth(pos, e) {
			continue
		}
		k := PairKey(e.From, e.To)
		index[i] = size[k]
		size[k]++
	}

	out := make([]Curve, 0, len(edges))
	for i, e := range edges {
		if !hasBoth(pos, e) {
			continue
		}
		var c Curve
		if e.IsLoop() {
			c = selfLoop(e, pos[e.From], o)
		} else {
			c = quadratic(e, pos, index[i], size[PairKey(e.From, e.To)], o)
		}
		if e.Directed || o.Arrows {
			c.Arrow = arrowFor(c, o)
		}
		out = append(out, c)
	}
	return out
}

// FromSnapshot lays out s, drawing arrows when s is directed.
func FromSnapshot(s core.Snapshot, opts ...Option) []Curve {
	return Layout(s.Nodes, s.Edges, append([]Option{WithArrows(s.Directed)}, opts...)...)
}

// ByEdge indexes curves by edge id.
func ByEdge(curves []Curve) map[string]Curve {
	m := make(map[string]Curve, len(curves))
	for _, c := range curves {
		m[c.EdgeID] = c
	}
	return m
}

// OffsetFactor returns i − (n−1)/2.
func OffsetFactor(i, n int) float64 {
	return float64(i) - float64(n-1)/2
}

func hasBoth(pos map[string]core.Point, e core.Edge) bool {
	_, okFrom := pos[e.From]
	_, okTo := pos[e.To]
	return okFrom && okTo
}

func quadratic(e core.Edge, pos map[string]core.Point, i, n int, o Options) Curve {
	p0, p2 := pos[e.From], pos[e.To]
	c := Curve{EdgeID: e.ID, Kind: KindQuadratic, Start: p0, End: p2}

	switch {
	case e.ControlPoint != nil:
		c.Control = *e.ControlPoint
		c.Manual = true
	default:
		mid := p0.Add(p2).Scale(0.5)
		c.Offset = OffsetFactor(i, n) * o.CurveStep
		c.Control = mid.Add(pairNormal(e, pos).Scale(c.Offset))
	}
	c.Control2 = c.Control
	c.Label = QuadPoint(c.Start, c.Control, c.End, 0.5)
	return c
}

// pairNormal is the unit normal of the segment lo→hi where lo<hi by id.
func pairNormal(e core.Edge, pos map[string]core.Point) core.Point {
	lo, hi := e.From, e.To
	if hi < lo {
		lo, hi = hi, lo
	}
	d := pos[hi].Sub(pos[lo])
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return core.Point{}
	}
	return core.Point{X: -d.Y / l, Y: d.X / l}
}

func selfLoop(e core.Edge, p core.Point, o Options) Curve {
	return Curve{
		EdgeID:   e.ID,
		Kind:     KindSelfLoop,
		Start:    p,
		Control:  core.Point{X: p.X - o.LoopOffset, Y: p.Y - o.LoopOffset},
		Control2: core.Point{X: p.X + o.LoopOffset, Y: p.Y - o.LoopOffset},
		End:      p,
		Label:    core.Point{X: p.X, Y: p.Y - o.LoopLabelLift},
	}
}

// arrowFor places the head on the end tangent, NodeRadius before End.
func arrowFor(c Curve, o Options) *Arrow {
	t := EndTangent(c)
	l := math.Hypot(t.X, t.Y)
	if l == 0 {
		return nil
	}
	u := t.Scale(1 / l)
	tip := c.End.Sub(u.Scale(o.NodeRadius))
	base := tip.Sub(u.Scale(o.ArrowLength))
	perp := core.Point{X: -u.Y, Y: u.X}.Scale(o.ArrowWidth / 2)
	return &Arrow{
		Tip:   tip,
		Left:  base.Add(perp),
		Right: base.Sub(perp),
		Angle: math.Atan2(u.Y, u.X),
	}
}

// EndTangent returns the (unnormalised) direction of c at t=1, falling back
// to the chord when the last control point coincides with End.
func EndTangent(c Curve) core.Point {
	last := c.Control
	if c.Kind == KindSelfLoop {
		last = c.Control2
	}
	if t := c.End.Sub(last); t.X != 0 || t.Y != 0 {
		return t
	}
	return c.End.Sub(c.Start)
}

// QuadPoint evaluates the quadratic Bezier p0,p1,p2 at t.
func QuadPoint(p0, p1, p2 core.Point, t float64) core.Point {
	u := 1 - t
	return p0.Scale(u * u).Add(p1.Scale(2 * u * t)).Add(p2.Scale(t * t))
}

// CubicPoint evaluates the cubic Bezier p0..p3 at t.
func CubicPoint(p0, p1, p2, p3 core.Point, t float64) core.Point {
	u := 1 - t
	return p0.Scale(u * u * u).
		Add(p1.Scale(3 * u * u * t)).
		Add(p2.Scale(3 * u * t * t)).
		Add(p3.Scale(t * t * t))
}

// At evaluates c at t ∈ [0,1].
func (c Curve) At(t float64) core.Point {
	if c.Kind == KindSelfLoop {
		return CubicPoint(c.Start, c.Control, c.Control2, c.End, t)
	}
	return QuadPoint(c.Start, c.Control, c.End, t)
}

// DistanceTo approximates the distance from p to c by sampling.
func (c Curve) DistanceTo(p core.Point) float64 {
	const samples = 32
	best := math.Inf(1)
	for i := 0; i <= samples; i++ {
		q := c.At(float64(i) / samples)
		best = math.Min(best, math.Hypot(q.X-p.X, q.Y-p.Y))
	}
	return best
}

// PathData renders c as an SVG path "d" attribute.
func (c Curve) PathData() string {
	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, c.Start)
	if c.Kind == KindSelfLoop {
		b.WriteString(" C ")
		writePoint(&b, c.Control)
		b.WriteString(", ")
		writePoint(&b, c.Control2)
		b.WriteString(", ")
	} else {
		b.WriteString(" Q ")
		writePoint(&b, c.Control)
		b.WriteByte(' ')
	}
	writePoint(&b, c.End)
	return b.String()
}

// Bounds returns the bounding box of nodes grown by pad on every side.
// An empty slice yields the zero Rect.
func Bounds(nodes []core.Node, pad float64) Rect {
	if len(nodes) == 0 {
		return Rect{}
	}
	r := Rect{Min: nodes[0].Pos(), Max: nodes[0].Pos()}
	for _, n := range nodes[1:] {
		r.Min.X = math.Min(r.Min.X, n.X)
		r.Min.Y = math.Min(r.Min.Y, n.Y)
		r.Max.X = math.Max(r.Max.X, n.X)
		r.Max.Y = math.Max(r.Max.Y, n.Y)
	}
	r.Min = r.Min.Sub(core.Point{X: pad, Y: pad})
	r.Max = r.Max.Add(core.Point{X: pad, Y: pad})
	return r
}

// Groups returns edge ids grouped by PairKey, loops excluded, with keys sorted.
func Groups(edges []core.Edge) ([]string, map[string][]string) {
	m := make(map[string][]string)
	for _, e := range edges {
		if e.IsLoop() {
			continue
		}
		k := PairKey(e.From, e.To)
		m[k] = append(m[k], e.ID)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, m
}

// FormatCoord prints v with at most two decimals.
func FormatCoord(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func writePoint(b *strings.Builder, p core.Point) {
	b.WriteString(FormatCoord(p.X))
	b.WriteByte(' ')
	b.WriteString(FormatCoord(p.Y))
}
