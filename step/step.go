// Package step defines the highlight frames produced by algorithm runs and
// consumed read-only by the playback sequencer and the renderer.
//
// A missing map entry means "no highlight"; there is no sentinel colour.
package step

import "maps"

// Color is a CSS hex colour.
type Color string

// Palette shared by every tracer.
const (
	ColorProcessed   Color = "#10b981"
	ColorActive      Color = "#3b82f6"
	ColorConsidering Color = "#f59e0b"
	ColorRejected    Color = "#ef4444"
)

// Step is one frame of algorithm state.
type Step struct {
	HighlightNodes map[string]Color  `json:"highlightNodes" yaml:"highlightNodes"`
	HighlightEdges map[string]Color  `json:"highlightEdges" yaml:"highlightEdges"`
	NodeLabels     map[string]string `json:"nodeLabels,omitempty" yaml:"nodeLabels,omitempty"`
	EdgeLabels     map[string]string `json:"edgeLabels,omitempty" yaml:"edgeLabels,omitempty"`
	Description    string            `json:"description" yaml:"description"`
}

// NodeColor returns the highlight of node id, if any.
func (s Step) NodeColor(id string) (Color, bool) {
	c, ok := s.HighlightNodes[id]
	return c, ok
}

// EdgeColor returns the highlight of edge id, if any.
func (s Step) EdgeColor(id string) (Color, bool) {
	c, ok := s.HighlightEdges[id]
	return c, ok
}

// NodeLabel returns the transient label of node id, if any.
func (s Step) NodeLabel(id string) (string, bool) {
	l, ok := s.NodeLabels[id]
	return l, ok
}

// EdgeLabel returns the transient label of edge id, if any.
func (s Step) EdgeLabel(id string) (string, bool) {
	l, ok := s.EdgeLabels[id]
	return l, ok
}

// Clone returns a deep copy of s.
func (s Step) Clone() Step {
	return Step{
		HighlightNodes: maps.Clone(s.HighlightNodes),
		HighlightEdges: maps.Clone(s.HighlightEdges),
		NodeLabels:     maps.Clone(s.NodeLabels),
		EdgeLabels:     maps.Clone(s.EdgeLabels),
		Description:    s.Description,
	}
}

// CloneAll deep-copies a step list.
func CloneAll(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))
	for i := range steps {
		out[i] = steps[i].Clone()
	}
	return out
}
