// Package editor is the owned state container of an interactive graph
// editing session. It ties the graph model to undo history, selection, the
// viewport, step playback and the pointer gesture machine.
//
// Structural mutations go through one path: snapshot, mutate, and if the
// graph actually changed, push the snapshot onto history and prune the
// selection. Selection, viewport and playback changes never touch history.
//
// An Editor serialises its own methods with a mutex; the playback ticker is
// the only autonomous actor and lives inside the Sequencer.
package editor

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/geometry"
	"github.com/katalvlaran/graphstudio/history"
	"github.com/katalvlaran/graphstudio/playback"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/selection"
	"github.com/katalvlaran/graphstudio/step"
	"github.com/katalvlaran/graphstudio/viewport"
)

// ErrNoRunner is returned by RunAlgorithm without a configured runner.
var ErrNoRunner = errors.New("editor: no algorithm runner configured")

// Editor holds one editing session.
type Editor struct {
	mu sync.Mutex

	log    *slog.Logger
	opts   Options
	graph  *core.Graph
	hist   *history.Manager
	sel    *selection.Index
	view   viewport.Viewport
	player *playback.Sequencer

	mode    Mode
	gesture Gesture
	lastRun string
}

// New returns an empty editor in pointer mode.
func New(opts ...Option) *Editor {
	o := Options{EdgeTolerance: 8}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	pOpts := []playback.Option{playback.WithSpeed(o.PlaybackSpeed)}
	if o.Clock != nil {
		pOpts = append(pOpts, playback.WithClock(o.Clock))
	}
	if o.OnPlayback != nil {
		pOpts = append(pOpts, playback.WithOnChange(o.OnPlayback))
	}

	g := core.NewGraph()
	return &Editor{
		log:     o.Logger,
		opts:    o,
		graph:   g,
		hist:    history.New(history.WithLimit(o.HistoryLimit)),
		sel:     selection.New(g),
		view:    viewport.New(),
		player:  playback.New(pOpts...),
		gesture: Idle{},
	}
}

// Close stops playback.
func (e *Editor) Close() { e.player.Close() }

// mutate runs fn as one structural mutation. Caller holds e.mu.
func (e *Editor) mutate(op string, fn func() bool) bool {
	before := e.graph.Snapshot()
	if !fn() {
		return false
	}
	e.hist.Save(before)
	e.sel.Prune()
	e.log.Debug("graph mutated",
		slog.String("op", op),
		slog.Int("nodes", e.graph.NodeCount()),
		slog.Int("edges", e.graph.EdgeCount()),
	)
	return true
}

// AddNode adds a node at world (x, y).
func (e *Editor) AddNode(x, y float64) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addNodeLocked(core.Point{X: x, Y: y})
}

// AddNodeAt adds a node under the screen point (sx, sy).
func (e *Editor) AddNodeAt(sx, sy float64) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addNodeLocked(e.view.ScreenToWorld(core.Point{X: sx, Y: sy}))
}

func (e *Editor) addNodeLocked(p core.Point) string {
	var id string
	e.mutate("add_node", func() bool {
		id = e.graph.AddNode(p.X, p.Y)
		return true
	})
	return id
}

// AddEdge connects from→to.
func (e *Editor) AddEdge(from, to string, weight float64) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addEdgeLocked(from, to, weight)
}

func (e *Editor) addEdgeLocked(from, to string, weight float64) (string, error) {
	var (
		id  string
		err error
	)
	e.mutate("add_edge", func() bool {
		id, err = e.graph.AddEdge(from, to, weight)
		return err == nil
	})
	return id, err
}

// DeleteNode removes a node and its edges.
func (e *Editor) DeleteNode(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mutate("delete_node", func() bool { return e.graph.DeleteNode(id) })
}

// DeleteEdge removes an edge.
func (e *Editor) DeleteEdge(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mutate("delete_edge", func() bool { return e.graph.DeleteEdge(id) })
}

// DeleteSelected removes the selected edges, then the selected nodes, then
// clears the selection.
func (e *Editor) DeleteSelected() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	nodes, edges := e.sel.NodeIDs(), e.sel.EdgeIDs()
	ok := e.mutate("delete_selected", func() bool { return e.graph.DeleteMany(nodes, edges) })
	e.sel.Clear()
	return ok
}

// SetDirected switches the graph mode while it has no edges. A rejected
// switch returns core.ErrDirectednessLocked and records nothing.
func (e *Editor) SetDirected(flag bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.graph.Directed() == flag {
		return nil
	}
	var err error
	e.mutate("set_directed", func() bool {
		err = e.graph.SetDirected(flag)
		return err == nil
	})
	if err != nil {
		e.log.Debug("set directed rejected", slog.Bool("directed", flag), slog.String("error", err.Error()))
	}
	return err
}

// UpdateNodeLabel renames a node.
func (e *Editor) UpdateNodeLabel(id, label string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mutate("update_label", func() bool { return e.graph.UpdateNodeLabel(id, label) })
}

// UpdateEdgeWeight changes an edge weight.
func (e *Editor) UpdateEdgeWeight(id string, w float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mutate("update_weight", func() bool { return e.graph.UpdateEdgeWeight(id, w) })
}

// MoveNode places a node at world (x, y) as one undoable step.
func (e *Editor) MoveNode(id string, x, y float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mutate("move_node", func() bool { return e.graph.UpdateNodePosition(id, x, y) })
}

// ResetControlPoint returns an edge to automatic layout.
func (e *Editor) ResetControlPoint(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if edge, ok := e.graph.Edge(id); !ok || edge.ControlPoint == nil {
		return false
	}
	return e.mutate("reset_control_point", func() bool { return e.graph.SetEdgeControlPoint(id, nil) })
}

// ClearGraph empties the graph (undoable) and resets playback, selection,
// gesture and viewport. Clearing an empty graph records no history.
func (e *Editor) ClearGraph() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mutate("clear", func() bool {
		if e.graph.NodeCount() == 0 {
			return false
		}
		e.graph.Clear()
		return true
	})
	e.player.Reset()
	e.sel.Clear()
	e.gesture = Idle{}
	e.view.Reset()
}

// LoadGraph replaces the graph with s (undoable) and drops loaded steps.
func (e *Editor) LoadGraph(s core.Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mutate("load", func() bool {
		if e.graph.NodeCount() == 0 && len(s.Nodes) == 0 && e.graph.Directed() == s.Directed {
			return false
		}
		e.graph.Restore(s)
		return true
	})
	e.sel.Clear()
	e.gesture = Idle{}
	e.player.Reset()
}

// Undo restores the previous snapshot and clears the selection.
func (e *Editor) Undo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.hist.Undo(e.graph.Snapshot())
	if !ok {
		return false
	}
	e.restoreLocked(s)
	return true
}

// Redo mirrors Undo.
func (e *Editor) Redo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.hist.Redo(e.graph.Snapshot())
	if !ok {
		return false
	}
	e.restoreLocked(s)
	return true
}

func (e *Editor) restoreLocked(s core.Snapshot) {
	e.graph.Restore(s)
	e.sel.Clear()
	e.gesture = Idle{}
}

// CanUndo reports whether Undo would change anything.
func (e *Editor) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (e *Editor) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hist.CanRedo()
}

// SelectNode selects a node (toggle with multi).
func (e *Editor) SelectNode(id string, multi bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.SelectNode(id, multi)
}

// SelectEdge selects an edge (toggle with multi).
func (e *Editor) SelectEdge(id string, multi bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.SelectEdge(id, multi)
}

// SelectRegion selects by world rectangle.
func (e *Editor) SelectRegion(x, y, w, h float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.SelectRegion(x, y, w, h)
}

// ClearSelection empties the selection.
func (e *Editor) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.Clear()
}

// Selection returns the selected node and edge ids, sorted.
func (e *Editor) Selection() (nodes, edges []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sel.NodeIDs(), e.sel.EdgeIDs()
}

// SetMode switches the tool, cancelling the gesture and the selection.
func (e *Editor) SetMode(m Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = m
	e.gesture = Idle{}
	e.sel.Clear()
}

// Mode returns the active tool.
func (e *Editor) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Zoom applies one wheel notch at a screen point.
func (e *Editor) Zoom(sx, sy, deltaY float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.view.Zoom(core.Point{X: sx, Y: sy}, deltaY)
}

// PanBy moves the viewport by a screen delta.
func (e *Editor) PanBy(dx, dy float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.view.PanBy(dx, dy)
}

// Viewport returns the current transform.
func (e *Editor) Viewport() viewport.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view
}

// FitView frames all nodes inside a screen of the given size.
func (e *Editor) FitView(width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.view.FitTo(geometry.Bounds(e.graph.Nodes(), 0), width, height, 50)
}

// Snapshot returns a copy of the current graph.
func (e *Editor) Snapshot() core.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.graph.Snapshot()
}

// ExportData returns the subgraph induced by the selected nodes, or the
// whole graph when no node is selected.
func (e *Editor) ExportData() core.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ids := e.sel.NodeIDs(); len(ids) > 0 {
		return e.graph.Subgraph(ids)
	}
	return e.graph.Snapshot()
}

// Player exposes the step sequencer for transport controls.
func (e *Editor) Player() *playback.Sequencer { return e.player }

// LoadSteps replaces the step list directly.
func (e *Editor) LoadSteps(name string, steps []step.Step) {
	e.mu.Lock()
	e.lastRun = name
	e.mu.Unlock()
	e.player.Load(steps)
}

// LastRun returns the name reported by the last successful run.
func (e *Editor) LastRun() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastRun
}

// RunAlgorithm sends the current graph to the configured runner. On success
// the returned steps replace the loaded ones; on failure the previous steps
// stay loaded and the error is returned.
func (e *Editor) RunAlgorithm(ctx context.Context, req runner.Request) error {
	if e.opts.Runner == nil {
		return ErrNoRunner
	}
	req.Graph = e.Snapshot()

	resp, err := e.opts.Runner.Run(ctx, req)
	if err != nil {
		e.log.Warn("algorithm run failed",
			slog.String("algorithm", string(req.Algorithm)),
			slog.String("error", err.Error()),
		)
		return err
	}
	e.LoadSteps(resp.Name, resp.Steps)
	e.log.Info("algorithm loaded",
		slog.String("algorithm", resp.Name),
		slog.Int("steps", len(resp.Steps)),
	)
	return nil
}
