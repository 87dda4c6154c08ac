package dijkstra_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/dijkstra"
)

type wedge struct {
	u, v string
	w    float64
}

// build creates a graph with the endpoints of edges as nodes, in first-seen order.
func build(t testing.TB, directed bool, edges ...wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for _, e := range edges {
		for _, id := range []string{e.u, e.v} {
			if !g.HasNode(id) {
				require.NoError(t, g.AddNodeWithID(id, 0, 0, ""))
			}
		}
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	return g
}

func triangle(t testing.TB) *core.Graph {
	return build(t, false, wedge{"A", "B", 1}, wedge{"B", "C", 2}, wedge{"A", "C", 5})
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := triangle(t)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("Z"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := build(t, true, wedge{"A", "B", 1}, wedge{"B", "C", -2})
	_, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	var we *dijkstra.WeightError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, "B", we.From)
	assert.Equal(t, "C", we.To)
	assert.Equal(t, -2.0, we.Weight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
}

func TestDijkstra_Triangle(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"))
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3}, res.Dist)
	assert.Equal(t, []string{"A", "B", "C"}, res.Settled)

	nodes, edges, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, nodes)
	assert.Len(t, edges, 2)

	nodes, edges, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nodes)
	assert.Empty(t, edges)
}

func TestDijkstra_FractionalWeightsAndDirection(t *testing.T) {
	g := build(t, true,
		wedge{"A", "B", 2.5}, wedge{"A", "C", 0.5}, wedge{"C", "B", 0.75}, wedge{"D", "A", 1})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	assert.InDelta(t, 1.25, res.Dist["B"], 1e-12)
	assert.Equal(t, "C", res.Prev["B"])
	assert.True(t, math.IsInf(res.Dist["D"], 1))
	assert.False(t, res.Reached("D"))

	_, _, err = res.PathTo("D")
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_ParallelEdgesPickCheapest(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 4}, wedge{"A", "B", 1})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Dist["B"])
	e, ok := g.Edge(res.PrevEdge["B"])
	require.True(t, ok)
	assert.Equal(t, 1.0, e.Weight)
}

func TestDijkstra_TargetStopsEarly(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 1}, wedge{"B", "C", 1}, wedge{"C", "D", 1})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.Target("B"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, res.Settled)
	assert.False(t, res.Reached("C"), "B's arcs are never relaxed")
}

func TestDijkstra_Limits(t *testing.T) {
	g := build(t, false, wedge{"A", "B", 1}, wedge{"B", "C", 10}, wedge{"A", "D", 3})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	assert.True(t, res.Reached("D"))
	assert.False(t, res.Reached("C"))

	res, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Settled)
}

func TestDijkstra_Hooks(t *testing.T) {
	var log []string
	_, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"),
		dijkstra.WithOnSettle(func(id string, d float64, via string) {
			log = append(log, fmt.Sprintf("settle %s=%g via=%t", id, d, via != ""))
		}),
		dijkstra.WithOnRelax(func(from string, a core.Arc, old, d float64) {
			log = append(log, fmt.Sprintf("relax %s->%s %g->%g", from, a.To, old, d))
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"settle A=0 via=false",
		"relax A->B +Inf->1",
		"relax A->C +Inf->5",
		"settle B=1 via=true",
		"relax B->C 5->3",
		"settle C=3 via=true",
	}, log)
}

func TestDijkstra_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
