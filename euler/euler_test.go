package euler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/euler"
)

func build(t testing.TB, directed bool, ids []string, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, id := range ids {
		require.NoError(t, g.AddNodeWithID(id, 0, 0, ""))
	}
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 1)
		require.NoError(t, err)
	}
	return g
}

// assertWalk checks that res uses every edge of g once and that
// consecutive nodes are joined by the listed edge.
func assertWalk(t *testing.T, g *core.Graph, res *euler.Result) {
	t.Helper()
	require.Len(t, res.Nodes, len(res.Edges)+1)
	assert.ElementsMatch(t, func() []string {
		var ids []string
		for _, e := range g.Edges() {
			ids = append(ids, e.ID)
		}
		return ids
	}(), res.Edges)
	for i, id := range res.Edges {
		e, ok := g.Edge(id)
		require.True(t, ok)
		a, b := res.Nodes[i], res.Nodes[i+1]
		if g.Directed() {
			assert.Equal(t, [2]string{e.From, e.To}, [2]string{a, b})
		} else {
			assert.True(t, (e.From == a && e.To == b) || (e.From == b && e.To == a), "edge %s joins %s-%s", id, a, b)
		}
	}
}

func TestClassify(t *testing.T) {
	_, _, err := euler.Classify(nil)
	assert.ErrorIs(t, err, euler.ErrNilGraph)

	_, _, err = euler.Classify(build(t, false, []string{"A"}))
	assert.ErrorIs(t, err, euler.ErrNoEdges)

	kind, start, err := euler.Classify(build(t, false, []string{"Z", "A", "B", "C"},
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"}))
	require.NoError(t, err)
	assert.Equal(t, euler.Circuit, kind)
	assert.Equal(t, "A", start, "isolated Z is skipped")

	kind, start, err = euler.Classify(build(t, false, []string{"A", "B", "C"},
		[2]string{"A", "B"}, [2]string{"B", "C"}))
	require.NoError(t, err)
	assert.Equal(t, euler.Trail, kind)
	assert.Equal(t, "A", start)

	_, _, err = euler.Classify(build(t, false, []string{"A", "B", "C", "D"},
		[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"A", "D"}))
	assert.ErrorIs(t, err, euler.ErrNotEulerian)

	_, _, err = euler.Classify(build(t, true, []string{"A", "B", "C"},
		[2]string{"A", "B"}, [2]string{"A", "C"}))
	assert.ErrorIs(t, err, euler.ErrNotEulerian)
}

func TestHierholzer_UndirectedCircuitWithLoopAndParallel(t *testing.T) {
	g := build(t, false, []string{"A", "B", "C"},
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"B", "B"}, [2]string{"A", "B"}, [2]string{"A", "B"})
	// degrees: A=4, B=6 (loop counts 2), C=2

	res, err := euler.Hierholzer(g, "")
	require.NoError(t, err)
	assert.Equal(t, euler.Circuit, res.Kind)
	assert.Equal(t, res.Nodes[0], res.Nodes[len(res.Nodes)-1])
	assertWalk(t, g, res)
}

func TestHierholzer_Trail(t *testing.T) {
	g := build(t, false, []string{"1", "2", "3", "4"},
		[2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "1"}, [2]string{"3", "4"})
	// odd vertices: 3 and 4

	res, err := euler.Hierholzer(g, "")
	require.NoError(t, err)
	assert.Equal(t, euler.Trail, res.Kind)
	assert.Equal(t, "3", res.Nodes[0])
	assert.Equal(t, "4", res.Nodes[len(res.Nodes)-1])
	assertWalk(t, g, res)

	res, err = euler.Hierholzer(g, "4")
	require.NoError(t, err)
	assert.Equal(t, "4", res.Nodes[0])
	assertWalk(t, g, res)

	_, err = euler.Hierholzer(g, "1")
	assert.ErrorIs(t, err, euler.ErrInvalidStart)
}

func TestHierholzer_Directed(t *testing.T) {
	g := build(t, true, []string{"A", "B", "C", "D"},
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"A", "D"}, [2]string{"D", "A"})

	var traversed []string
	res, err := euler.Hierholzer(g, "B", euler.WithOnTraverse(func(from string, a core.Arc) {
		traversed = append(traversed, from+">"+a.To)
	}))
	require.NoError(t, err)
	assertWalk(t, g, res)
	assert.Equal(t, []string{"B>C", "C>A", "A>B", "A>D", "D>A"}, traversed)
	assert.Equal(t, []string{"B", "C", "A", "D", "A", "B"}, res.Nodes)
}

func TestHierholzer_Disconnected(t *testing.T) {
	g := build(t, false, []string{"A", "B", "C", "D"},
		[2]string{"A", "B"}, [2]string{"B", "A"}, [2]string{"C", "D"}, [2]string{"D", "C"})
	_, err := euler.Hierholzer(g, "")
	assert.ErrorIs(t, err, euler.ErrNotEulerian)
}

func TestHierholzer_StartWithoutEdges(t *testing.T) {
	g := build(t, false, []string{"A", "B", "Z"}, [2]string{"A", "B"}, [2]string{"B", "A"})
	_, err := euler.Hierholzer(g, "Z")
	assert.ErrorIs(t, err, euler.ErrInvalidStart)
	_, err = euler.Hierholzer(g, "missing")
	assert.ErrorIs(t, err, euler.ErrInvalidStart)
}

func TestHierholzer_Cancel(t *testing.T) {
	g := build(t, false, []string{"A", "B"}, [2]string{"A", "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := euler.Hierholzer(g, "", euler.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
