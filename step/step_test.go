package step_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstudio/step"
)

func TestLookupsReportAbsence(t *testing.T) {
	s := step.Step{
		HighlightNodes: map[string]step.Color{"a": step.ColorActive},
		NodeLabels:     map[string]string{"a": "∞"},
	}
	c, ok := s.NodeColor("a")
	assert.True(t, ok)
	assert.Equal(t, step.ColorActive, c)

	_, ok = s.NodeColor("b")
	assert.False(t, ok)
	_, ok = s.EdgeColor("e")
	assert.False(t, ok, "nil map means no highlight")
	l, ok := s.NodeLabel("a")
	assert.True(t, ok)
	assert.Equal(t, "∞", l)
	_, ok = s.EdgeLabel("e")
	assert.False(t, ok)
}

func TestWireFormat(t *testing.T) {
	raw := `{"highlightNodes":{"1":"#10b981"},"highlightEdges":{"e1":"#f59e0b"},"edgeLabels":{"e1":"3/5"},"description":"d"}`
	var s step.Step
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, step.ColorProcessed, s.HighlightNodes["1"])
	assert.Equal(t, "3/5", s.EdgeLabels["e1"])
	assert.Nil(t, s.NodeLabels)
}

func TestRecorder_PersistentAndOverlay(t *testing.T) {
	r := step.NewRecorder()
	r.SetNode("a", step.ColorProcessed)
	r.Emit("first", step.Node("b", step.ColorActive), step.Edge("e", step.ColorConsidering))
	r.SetNodeLabel("a", "0")
	r.Emit("second", step.Node("a", step.ColorActive), step.EdgeText("e", "x"))

	steps := r.Steps()
	require.Len(t, steps, 2)

	assert.Equal(t, map[string]step.Color{"a": step.ColorProcessed, "b": step.ColorActive}, steps[0].HighlightNodes)
	assert.Equal(t, map[string]step.Color{"e": step.ColorConsidering}, steps[0].HighlightEdges)
	assert.Nil(t, steps[0].NodeLabels)

	assert.Equal(t, map[string]step.Color{"a": step.ColorActive}, steps[1].HighlightNodes, "overlay wins, b was transient")
	assert.Empty(t, steps[1].HighlightEdges)
	assert.Equal(t, "0", steps[1].NodeLabels["a"])
	assert.Equal(t, "x", steps[1].EdgeLabels["e"])
}

func TestRecorder_FramesAreIndependent(t *testing.T) {
	r := step.NewRecorder()
	r.SetEdge("e", step.ColorProcessed)
	r.Emit("one")
	r.UnsetEdge("e")
	r.ResetColors()
	r.Emit("two")

	steps := r.Steps()
	assert.Equal(t, step.ColorProcessed, steps[0].HighlightEdges["e"])
	assert.Empty(t, steps[1].HighlightEdges)
	assert.NotNil(t, steps[1].HighlightEdges, "frames always carry both highlight maps")
}

func TestCloneAll(t *testing.T) {
	in := []step.Step{{HighlightNodes: map[string]step.Color{"a": step.ColorActive}}}
	out := step.CloneAll(in)
	out[0].HighlightNodes["a"] = step.ColorRejected
	assert.Equal(t, step.ColorActive, in[0].HighlightNodes["a"])
	assert.Nil(t, step.CloneAll(nil))
	assert.NotNil(t, step.NewRecorder().Steps())
}
