package step

import "maps"

// Overlay decorates a single emitted frame without touching recorder state.
type Overlay func(*Step)

// Node highlights node id in this frame only.
func Node(id string, c Color) Overlay {
	return func(s *Step) { s.HighlightNodes[id] = c }
}

// Edge highlights edge id in this frame only.
func Edge(id string, c Color) Overlay {
	return func(s *Step) { s.HighlightEdges[id] = c }
}

// EdgeText labels edge id in this frame only.
func EdgeText(id, label string) Overlay {
	return func(s *Step) {
		if s.EdgeLabels == nil {
			s.EdgeLabels = make(map[string]string)
		}
		s.EdgeLabels[id] = label
	}
}

// Recorder accumulates persistent highlight layers and emits full frames.
//
// Persistent state (SetNode, SetEdge, SetNodeLabel, SetEdgeLabel) carries
// over to every later frame; overlays passed to Emit apply to one frame and
// win over persistent colours.
type Recorder struct {
	steps      []Step
	nodes      map[string]Color
	edges      map[string]Color
	nodeLabels map[string]string
	edgeLabels map[string]string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		nodes:      make(map[string]Color),
		edges:      make(map[string]Color),
		nodeLabels: make(map[string]string),
		edgeLabels: make(map[string]string),
	}
}

// SetNode paints node id for all later frames.
func (r *Recorder) SetNode(id string, c Color) { r.nodes[id] = c }

// SetEdge paints edge id for all later frames.
func (r *Recorder) SetEdge(id string, c Color) { r.edges[id] = c }

// UnsetNode removes the persistent colour of node id.
func (r *Recorder) UnsetNode(id string) { delete(r.nodes, id) }

// UnsetEdge removes the persistent colour of edge id.
func (r *Recorder) UnsetEdge(id string) { delete(r.edges, id) }

// SetNodeLabel labels node id for all later frames.
func (r *Recorder) SetNodeLabel(id, label string) { r.nodeLabels[id] = label }

// SetEdgeLabel labels edge id for all later frames.
func (r *Recorder) SetEdgeLabel(id, label string) { r.edgeLabels[id] = label }

// ResetColors drops every persistent colour, keeping labels.
func (r *Recorder) ResetColors() {
	clear(r.nodes)
	clear(r.edges)
}

// Emit appends a frame built from the persistent layers plus overlays.
func (r *Recorder) Emit(description string, overlays ...Overlay) {
	s := Step{
		HighlightNodes: maps.Clone(r.nodes),
		HighlightEdges: maps.Clone(r.edges),
		Description:    description,
	}
	if len(r.nodeLabels) > 0 {
		s.NodeLabels = maps.Clone(r.nodeLabels)
	}
	if len(r.edgeLabels) > 0 {
		s.EdgeLabels = maps.Clone(r.edgeLabels)
	}
	for _, o := range overlays {
		o(&s)
	}
	r.steps = append(r.steps, s)
}

// Len returns the number of frames emitted so far.
func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns the recorded frames. The recorder must not be reused after.
func (r *Recorder) Steps() []Step {
	if r.steps == nil {
		return []Step{}
	}
	return r.steps
}
