// Package svg writes a graph as a standalone SVG document.
//
// Edges are drawn from the same curves the interactive canvas uses
// (geometry.Layout), so an export looks like the screen: parallel edges
// fan out, self-loops arc above their node and manual control points are
// honoured. The view box is the node bounding box grown by a padding.
package svg

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/editor"
	"github.com/katalvlaran/graphstudio/geometry"
	"github.com/katalvlaran/graphstudio/step"
)

// Export defaults.
const (
	DefaultPadding    = 50.0
	DefaultBackground = "#0d1117"

	nodeStroke  = "#1e293b"
	labelFill   = "#e2e8f0"
	labelHalo   = "#0f172a"
	badgeFill   = "#fbbf24"
	emptyMarkup = `<svg xmlns="http://www.w3.org/2000/svg"></svg>`
)

// Options configures Render.
type Options struct {
	Padding    float64
	Background string
	Geometry   []geometry.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns padding 50 on a dark background.
func DefaultOptions() Options {
	return Options{Padding: DefaultPadding, Background: DefaultBackground}
}

// WithPadding sets the margin around the node bounding box.
func WithPadding(p float64) Option {
	return func(o *Options) {
		if p >= 0 {
			o.Padding = p
		}
	}
}

// WithBackground sets the page colour; "" draws none.
func WithBackground(c string) Option {
	return func(o *Options) { o.Background = c }
}

// WithGeometry forwards layout options.
func WithGeometry(opts ...geometry.Option) Option {
	return func(o *Options) { o.Geometry = append(o.Geometry, opts...) }
}

type nodeMark struct {
	pos   core.Point
	label string
	badge string
	fill  step.Color
}

type edgeMark struct {
	curve  geometry.Curve
	stroke step.Color
	width  float64
	label  string
}

// Render writes s with the default palette.
func Render(w io.Writer, s core.Snapshot, opts ...Option) error {
	o := gather(opts)
	nodes := make([]nodeMark, len(s.Nodes))
	for i, n := range s.Nodes {
		nodes[i] = nodeMark{pos: n.Pos(), label: n.DisplayLabel(), fill: editor.NodeFill}
	}
	curves := geometry.FromSnapshot(s, o.Geometry...)
	weights := make(map[string]float64, len(s.Edges))
	for _, e := range s.Edges {
		weights[e.ID] = e.Weight
	}
	edges := make([]edgeMark, len(curves))
	for i, c := range curves {
		edges[i] = edgeMark{curve: c, stroke: editor.EdgeStroke, width: 2, label: editor.FormatWeight(weights[c.EdgeID])}
	}
	return write(w, nodes, edges, o)
}

// RenderFrame writes an editor frame, keeping its step colours and labels.
func RenderFrame(w io.Writer, f editor.Frame, opts ...Option) error {
	o := gather(opts)
	nodes := make([]nodeMark, len(f.Nodes))
	for i, n := range f.Nodes {
		nodes[i] = nodeMark{pos: n.Pos(), label: n.DisplayLabel(), badge: n.Badge, fill: n.Fill}
	}
	edges := make([]edgeMark, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = edgeMark{curve: e.Curve, stroke: e.Stroke, width: e.Width, label: e.Label}
	}
	return write(w, nodes, edges, o)
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func write(w io.Writer, nodes []nodeMark, edges []edgeMark, o Options) error {
	bw := bufio.NewWriter(w)
	if len(nodes) == 0 {
		bw.WriteString(emptyMarkup)
		return bw.Flush()
	}

	pts := make([]core.Node, len(nodes))
	for i, n := range nodes {
		pts[i] = core.Node{X: n.pos.X, Y: n.pos.Y}
	}
	box := geometry.Bounds(pts, o.Padding)
	x, y := geometry.FormatCoord(box.Min.X), geometry.FormatCoord(box.Min.Y)
	wd, ht := geometry.FormatCoord(box.Width()), geometry.FormatCoord(box.Height())

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s"`, x, y, wd, ht, wd, ht)
	if o.Background != "" {
		fmt.Fprintf(bw, ` style="background-color: %s;"`, html.EscapeString(o.Background))
	}
	bw.WriteString(">\n")
	if o.Background != "" {
		fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n", x, y, wd, ht, html.EscapeString(o.Background))
	}

	for _, e := range edges {
		fmt.Fprintf(bw, `<path d="%s" stroke="%s" stroke-width="%s" fill="none"/>`+"\n",
			e.curve.PathData(), e.stroke, geometry.FormatCoord(e.width))
		if a := e.curve.Arrow; a != nil {
			fmt.Fprintf(bw, `<polygon points="%s %s, %s %s, %s %s" fill="%s"/>`+"\n",
				geometry.FormatCoord(a.Tip.X), geometry.FormatCoord(a.Tip.Y),
				geometry.FormatCoord(a.Left.X), geometry.FormatCoord(a.Left.Y),
				geometry.FormatCoord(a.Right.X), geometry.FormatCoord(a.Right.Y),
				e.stroke)
		}
		lx, ly := geometry.FormatCoord(e.curve.Label.X), geometry.FormatCoord(e.curve.Label.Y)
		label := html.EscapeString(e.label)
		// Halo first, then the readable copy on top.
		fmt.Fprintf(bw, `<text x="%s" y="%s" font-family="sans-serif" font-size="12" fill="%s" text-anchor="middle" font-weight="bold" stroke="%s" stroke-width="3" paint-order="stroke">%s</text>`+"\n",
			lx, ly, labelFill, labelHalo, label)
		fmt.Fprintf(bw, `<text x="%s" y="%s" font-family="sans-serif" font-size="12" fill="%s" text-anchor="middle" font-weight="bold">%s</text>`+"\n",
			lx, ly, labelFill, label)
	}

	for _, n := range nodes {
		cx, cy := geometry.FormatCoord(n.pos.X), geometry.FormatCoord(n.pos.Y)
		fmt.Fprintf(bw, `<g><circle cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="2"/>`,
			cx, cy, geometry.FormatCoord(geometry.NodeRadius), n.fill, nodeStroke)
		fmt.Fprintf(bw, `<text x="%s" y="%s" dy="5" font-family="sans-serif" font-size="14" fill="white" text-anchor="middle" font-weight="bold">%s</text>`,
			cx, cy, html.EscapeString(n.label))
		if n.badge != "" {
			fmt.Fprintf(bw, `<text x="%s" y="%s" font-family="sans-serif" font-size="12" fill="%s" text-anchor="middle">%s</text>`,
				cx, geometry.FormatCoord(n.pos.Y-geometry.NodeRadius-8), badgeFill, html.EscapeString(n.badge))
		}
		bw.WriteString("</g>\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
