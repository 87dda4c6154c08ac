package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/history"
)

// apply runs one structural mutation the way the editor does.
func apply(g *core.Graph, h *history.Manager, mutate func(*core.Graph)) {
	h.Save(g.Snapshot())
	mutate(g)
}

func undo(g *core.Graph, h *history.Manager) bool {
	s, ok := h.Undo(g.Snapshot())
	if ok {
		g.Restore(s)
	}
	return ok
}

func redo(g *core.Graph, h *history.Manager) bool {
	s, ok := h.Redo(g.Snapshot())
	if ok {
		g.Restore(s)
	}
	return ok
}

func TestUndoRedo_Roundtrip(t *testing.T) {
	mutations := map[string]func(*core.Graph){
		"add node":   func(g *core.Graph) { g.AddNode(5, 5) },
		"add edge":   func(g *core.Graph) { _, _ = g.AddEdge("A", "B", 3) },
		"delete":     func(g *core.Graph) { g.DeleteNode("A") },
		"move":       func(g *core.Graph) { g.UpdateNodePosition("B", 1, 2) },
		"relabel":    func(g *core.Graph) { g.UpdateNodeLabel("A", "x") },
		"bend":       func(g *core.Graph) { g.SetEdgeControlPoint(g.Edges()[0].ID, &core.Point{X: 3, Y: 4}) },
		"delete all": func(g *core.Graph) { g.DeleteMany([]string{"A", "B"}, nil) },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			g := core.NewGraph()
			require.NoError(t, g.AddNodeWithID("A", 0, 0, ""))
			require.NoError(t, g.AddNodeWithID("B", 10, 0, ""))
			_, err := g.AddEdge("A", "B", 1)
			require.NoError(t, err)
			h := history.New()

			s := g.Snapshot()
			apply(g, h, mutate)
			after := g.Snapshot()

			require.True(t, undo(g, h))
			assert.Equal(t, s, g.Snapshot())
			require.True(t, redo(g, h))
			assert.Equal(t, after, g.Snapshot())
		})
	}
}

func TestNewMutationClearsFuture(t *testing.T) {
	g := core.NewGraph()
	h := history.New()
	apply(g, h, func(g *core.Graph) { g.AddNode(0, 0) })
	apply(g, h, func(g *core.Graph) { g.AddNode(1, 1) })
	require.True(t, undo(g, h))
	assert.True(t, h.CanRedo())

	apply(g, h, func(g *core.Graph) { g.AddNode(2, 2) })
	assert.False(t, h.CanRedo())
	assert.False(t, redo(g, h))
}

func TestEmptyStacksAreNoops(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(0, 0)
	h := history.New()
	before := g.Snapshot()

	assert.False(t, undo(g, h))
	assert.False(t, redo(g, h))
	assert.Equal(t, before, g.Snapshot())
	past, future := h.Depth()
	assert.Zero(t, past)
	assert.Zero(t, future)
}

func TestSnapshotsAreIndependent(t *testing.T) {
	h := history.New()
	s := core.Snapshot{Nodes: []core.Node{{ID: "1"}}}
	h.Save(s)
	s.Nodes[0].ID = "mutated"

	got, ok := h.Undo(core.Snapshot{})
	require.True(t, ok)
	assert.Equal(t, "1", got.Nodes[0].ID)
}

func TestLimitDropsOldest(t *testing.T) {
	h := history.New(history.WithLimit(2))
	for i := 0; i < 5; i++ {
		h.Save(core.Snapshot{Nodes: []core.Node{{ID: string(rune('a' + i))}}})
	}
	past, _ := h.Depth()
	assert.Equal(t, 2, past)

	s, _ := h.Undo(core.Snapshot{})
	assert.Equal(t, "e", s.Nodes[0].ID)
	s, _ = h.Undo(core.Snapshot{})
	assert.Equal(t, "d", s.Nodes[0].ID)
	assert.False(t, h.CanUndo())
}

func TestReset(t *testing.T) {
	h := history.New()
	h.Save(core.Snapshot{})
	h.Reset()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
