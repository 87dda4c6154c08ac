package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstudio/core"
)

func TestSetDirected_LockedWhileEdgesExist(t *testing.T) {
	g := buildPair(t)
	require.NoError(t, g.SetDirected(true), "empty edge set: allowed")
	assert.True(t, g.Directed())

	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	assert.ErrorIs(t, g.SetDirected(false), core.ErrDirectednessLocked)
	assert.True(t, g.Directed(), "graph remains directed")
	assert.NoError(t, g.SetDirected(true), "same value is not a change")
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	g := buildPair(t)
	eid, _ := g.AddEdge("A", "B", 1)
	g.SetEdgeControlPoint(eid, &core.Point{X: 5, Y: 5})

	s := g.Snapshot()
	s.Nodes[0].X = 1000
	s.Edges[0].ControlPoint.Y = 1000

	n, _ := g.Node("A")
	e, _ := g.Edge(eid)
	assert.Equal(t, 0.0, n.X)
	assert.Equal(t, 5.0, e.ControlPoint.Y)

	c := s.Clone()
	c.Edges[0].ControlPoint.X = -1
	assert.Equal(t, 5.0, s.Edges[0].ControlPoint.X)
}

func TestRestore_RoundTrip(t *testing.T) {
	g := buildPair(t, core.WithDirected(true))
	g.AddEdge("A", "B", 2)
	g.AddEdge("B", "A", 3)
	s := g.Snapshot()

	h := core.FromSnapshot(s)
	assert.Equal(t, s, h.Snapshot())
	assert.True(t, h.Directed())
}

func TestRestore_Sanitises(t *testing.T) {
	g := core.NewGraph()
	g.Restore(core.Snapshot{
		Nodes: []core.Node{{ID: "a"}, {ID: "a", X: 9}, {ID: ""}, {ID: "b"}},
		Edges: []core.Edge{
			{ID: "x", From: "a", To: "b", Weight: 1},
			{ID: "x", From: "b", To: "a", Weight: 2},
			{ID: "", From: "a", To: "a"},
			{ID: "dangling", From: "a", To: "ghost"},
		},
		Directed: true,
	})

	assert.Equal(t, []string{"a", "b"}, g.NodeIDs())
	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, "x", edges[0].ID)
	assert.NotEqual(t, "x", edges[1].ID)
	assert.NotEmpty(t, edges[2].ID)
	for _, e := range edges {
		assert.True(t, e.Directed)
	}
}

func TestSubgraph(t *testing.T) {
	g := buildPair(t)
	require.NoError(t, g.AddNodeWithID("C", 0, 0, ""))
	ab, _ := g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)

	s := g.Subgraph([]string{"B", "A", "ghost"})
	require.Len(t, s.Nodes, 2)
	assert.Equal(t, "A", s.Nodes[0].ID, "insertion order, not argument order")
	require.Len(t, s.Edges, 1)
	assert.Equal(t, ab, s.Edges[0].ID)
}

func TestClone_ContinuesCounters(t *testing.T) {
	g := buildPair(t)
	g.AddNode(0, 0)
	g.AddEdge("A", "B", 1)

	c := g.Clone()
	assert.Equal(t, g.Snapshot(), c.Snapshot())
	assert.Equal(t, g.AddNode(0, 0), c.AddNode(0, 0))
	id1, _ := g.AddEdge("A", "B", 1)
	id2, _ := c.AddEdge("A", "B", 1)
	assert.Equal(t, id1, id2)
}

func TestClear(t *testing.T) {
	g := buildPair(t, core.WithDirected(true))
	g.AddEdge("A", "B", 1)
	g.Clear()
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.Directed(), "mode survives Clear")
	assert.NoError(t, g.SetDirected(false))
}
