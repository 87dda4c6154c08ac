package editor

import (
	"strconv"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/geometry"
	"github.com/katalvlaran/graphstudio/step"
	"github.com/katalvlaran/graphstudio/viewport"
)

// Default palette.
const (
	NodeFill         step.Color = "#3b82f6"
	NodeFillSelected step.Color = "#2563eb"
	NodeFillSource   step.Color = "#f59e0b"
	EdgeStroke       step.Color = "#475569"
	EdgeSelected     step.Color = "#60a5fa"
)

// NodeView is one node as it should be drawn.
type NodeView struct {
	core.Node
	Fill     step.Color
	Selected bool
	// Badge is the transient label of the current step, if any.
	Badge string
}

// EdgeView is one edge as it should be drawn.
type EdgeView struct {
	core.Edge
	Curve    geometry.Curve
	Stroke   step.Color
	Width    float64
	Selected bool
	// Label is the weight, followed by the step label in parentheses.
	Label string
}

// Frame is a read-only render model of the whole canvas.
type Frame struct {
	Nodes    []NodeView
	Edges    []EdgeView
	Directed bool
	Viewport viewport.Viewport

	// StepIndex is -1 when no step is shown.
	StepIndex   int
	StepCount   int
	Description string

	// Rubber is the edge being drawn (world), nil otherwise.
	Rubber *[2]core.Point
	// Box is the region being selected (world), nil otherwise.
	Box *geometry.Rect
}

// Frame resolves colours, labels and curves for the current state.
// Priority per element: step highlight, drawing source, selection, default.
func (e *Editor) Frame() Frame {
	st, cur, hasStep := e.player.Snapshot()

	e.mu.Lock()
	defer e.mu.Unlock()

	nodes := e.graph.Nodes()
	edges := e.graph.Edges()
	curves := geometry.ByEdge(e.layoutLocked())

	f := Frame{
		Nodes:     make([]NodeView, 0, len(nodes)),
		Edges:     make([]EdgeView, 0, len(edges)),
		Directed:  e.graph.Directed(),
		Viewport:  e.view,
		StepIndex: st.Index,
		StepCount: st.Len,
	}
	if hasStep {
		f.Description = cur.Description
	}

	source := ""
	switch g := e.gesture.(type) {
	case DrawingEdge:
		source = g.SourceID
		if n, ok := e.graph.Node(g.SourceID); ok {
			f.Rubber = &[2]core.Point{n.Pos(), g.Cursor}
		}
	case BoxSelecting:
		r := g.Rect()
		f.Box = &r
	}

	for _, n := range nodes {
		v := NodeView{Node: n, Fill: NodeFill, Selected: e.sel.HasNode(n.ID)}
		hl, lit := cur.NodeColor(n.ID)
		switch {
		case hasStep && lit:
			v.Fill = hl
		case n.ID == source:
			v.Fill = NodeFillSource
		case v.Selected:
			v.Fill = NodeFillSelected
		}
		if hasStep {
			v.Badge, _ = cur.NodeLabel(n.ID)
		}
		f.Nodes = append(f.Nodes, v)
	}

	for _, ed := range edges {
		c, ok := curves[ed.ID]
		if !ok {
			continue
		}
		v := EdgeView{Edge: ed, Curve: c, Stroke: EdgeStroke, Width: 2, Selected: e.sel.HasEdge(ed.ID)}
		hl, lit := cur.EdgeColor(ed.ID)
		switch {
		case hasStep && lit:
			v.Stroke = hl
			v.Width = 4
		case v.Selected:
			v.Stroke = EdgeSelected
			v.Width = 3
		}
		v.Label = FormatWeight(ed.Weight)
		if hasStep {
			if l, ok := cur.EdgeLabel(ed.ID); ok {
				v.Label += " (" + l + ")"
			}
		}
		f.Edges = append(f.Edges, v)
	}
	return f
}

// FormatWeight prints a weight without trailing zeros.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
