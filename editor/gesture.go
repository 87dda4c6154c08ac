package editor

import (
	"math"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/geometry"
)

// Gesture returns the current pointer state.
func (e *Editor) Gesture() Gesture {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gesture
}

// HitTest reports what lies under a screen point: a control handle of a
// selected edge, then a node, then an edge.
func (e *Editor) HitTest(screen core.Point) Hit {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hitLocked(e.view.ScreenToWorld(screen))
}

func (e *Editor) hitLocked(p core.Point) Hit {
	tol := e.opts.EdgeTolerance
	curves := e.layoutLocked()

	for _, c := range curves {
		if c.Kind == geometry.KindQuadratic && e.sel.HasEdge(c.EdgeID) && dist(c.Control, p) <= tol {
			return Hit{Kind: HitControl, ID: c.EdgeID}
		}
	}
	if id, ok := e.sel.NodeAt(p, e.geometryLocked().NodeRadius); ok {
		return Hit{Kind: HitNode, ID: id}
	}
	best, bestID := math.Inf(1), ""
	for _, c := range curves {
		if d := c.DistanceTo(p); d <= tol && d < best {
			best, bestID = d, c.EdgeID
		}
	}
	if bestID != "" {
		return Hit{Kind: HitEdge, ID: bestID}
	}
	return Hit{}
}

// PointerDown starts or advances a gesture.
//
//   - secondary button deletes the hit element in any mode;
//   - middle button pans in any mode;
//   - pointer mode: handle → bend, node → select and drag, edge → select,
//     empty+shift → box select, empty → clear selection and pan;
//   - node mode: empty → add node;
//   - edge mode: first node → start drawing, second node → add edge,
//     empty → cancel drawing;
//   - delete mode: delete the hit element.
func (e *Editor) PointerDown(ev PointerEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	world := e.view.ScreenToWorld(ev.Screen)
	hit := e.hitLocked(world)

	switch ev.Button {
	case ButtonSecondary:
		e.deleteHitLocked(hit)
		return
	case ButtonMiddle:
		e.gesture = Panning{Last: ev.Screen}
		return
	}

	switch e.mode {
	case ModePointer:
		e.pointerDownLocked(ev, world, hit)
	case ModeNode:
		if hit.Kind == HitNone {
			e.addNodeLocked(world)
		}
	case ModeEdge:
		e.edgeToolLocked(world, hit)
	case ModeDelete:
		e.deleteHitLocked(hit)
	}
}

func (e *Editor) pointerDownLocked(ev PointerEvent, world core.Point, hit Hit) {
	switch hit.Kind {
	case HitControl:
		e.gesture = &DraggingControlPoint{EdgeID: hit.ID}
	case HitNode:
		switch {
		case ev.Shift:
			e.sel.SelectNode(hit.ID, true)
		case !e.sel.HasNode(hit.ID):
			e.sel.SelectNode(hit.ID, false)
		}
		if ids := e.sel.NodeIDs(); len(ids) > 0 && e.sel.HasNode(hit.ID) {
			e.gesture = &DraggingNodes{IDs: ids, Last: world}
		}
	case HitEdge:
		e.sel.SelectEdge(hit.ID, ev.Shift)
	default:
		if ev.Shift {
			e.gesture = BoxSelecting{Origin: world, Current: world}
			return
		}
		e.sel.Clear()
		e.gesture = Panning{Last: ev.Screen}
	}
}

func (e *Editor) edgeToolLocked(world core.Point, hit Hit) {
	drawing, active := e.gesture.(DrawingEdge)
	switch {
	case hit.Kind == HitNode && active:
		_, _ = e.addEdgeLocked(drawing.SourceID, hit.ID, 1)
		e.gesture = Idle{}
	case hit.Kind == HitNode:
		e.gesture = DrawingEdge{SourceID: hit.ID, Cursor: world}
	default:
		e.gesture = Idle{}
	}
}

func (e *Editor) deleteHitLocked(hit Hit) {
	switch hit.Kind {
	case HitNode:
		e.mutate("delete_node", func() bool { return e.graph.DeleteNode(hit.ID) })
	case HitEdge, HitControl:
		e.mutate("delete_edge", func() bool { return e.graph.DeleteEdge(hit.ID) })
	}
}

// PointerMove feeds one intermediate position to the active gesture.
// Drags save history once, on their first effective move.
func (e *Editor) PointerMove(ev PointerEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	world := e.view.ScreenToWorld(ev.Screen)
	switch g := e.gesture.(type) {
	case DrawingEdge:
		g.Cursor = world
		e.gesture = g
	case BoxSelecting:
		g.Current = world
		e.gesture = g
	case Panning:
		d := ev.Screen.Sub(g.Last)
		e.view.PanBy(d.X, d.Y)
		e.gesture = Panning{Last: ev.Screen}
	case *DraggingNodes:
		d := world.Sub(g.Last)
		if d.X == 0 && d.Y == 0 {
			return
		}
		if !g.saved {
			e.hist.Save(e.graph.Snapshot())
			g.saved = true
		}
		deltas := make([]core.NodeDelta, len(g.IDs))
		for i, id := range g.IDs {
			deltas[i] = core.NodeDelta{ID: id, DX: d.X, DY: d.Y}
		}
		e.graph.MoveNodes(deltas)
		g.Last = world
	case *DraggingControlPoint:
		if !g.saved {
			e.hist.Save(e.graph.Snapshot())
			g.saved = true
		}
		e.graph.SetEdgeControlPoint(g.EdgeID, &world)
	}
}

// PointerUp finishes the active gesture. A box selection is applied here;
// edge drawing survives until the second click.
func (e *Editor) PointerUp(ev PointerEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch g := e.gesture.(type) {
	case DrawingEdge:
		return
	case BoxSelecting:
		g.Current = e.view.ScreenToWorld(ev.Screen)
		r := g.Rect()
		e.sel.SelectRegion(r.Min.X, r.Min.Y, r.Width(), r.Height())
	}
	e.gesture = Idle{}
}

// Cancel drops any gesture in progress. Moves already applied by a drag stay
// and remain undoable as one step.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gesture = Idle{}
}

// Escape cancels the gesture, returns to pointer mode and clears the selection.
func (e *Editor) Escape() { e.SetMode(ModePointer) }

func (e *Editor) geometryLocked() geometry.Options {
	o := geometry.DefaultOptions()
	for _, opt := range e.opts.Geometry {
		opt(&o)
	}
	return o
}

func (e *Editor) layoutLocked() []geometry.Curve {
	opts := make([]geometry.Option, 0, len(e.opts.Geometry)+1)
	opts = append(opts, geometry.WithArrows(e.graph.Directed()))
	opts = append(opts, e.opts.Geometry...)
	return geometry.Layout(e.graph.Nodes(), e.graph.Edges(), opts...)
}

func dist(a, b core.Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }
