package bellmanford_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstudio/bellmanford"
	"github.com/katalvlaran/graphstudio/core"
)

type wedge struct {
	u, v string
	w    float64
}

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

func TestBellmanFord_Validation(t *testing.T) {
	_, err := bellmanford.BellmanFord(nil, "A")
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)

	_, err = bellmanford.BellmanFord(core.NewGraph(), "A")
	assert.ErrorIs(t, err, bellmanford.ErrVertexNotFound)
}

func TestBellmanFord_NegativeEdgeDirected(t *testing.T) {
	g := build(t, true, wedge{"S", "A", 4}, wedge{"S", "B", 5}, wedge{"B", "A", -3}, wedge{"A", "C", 1}, wedge{"X", "S", 1})
	res, err := bellmanford.BellmanFord(g, "S")
	require.NoError(t, err)

	assert.Equal(t, 2.0, res.Dist["A"])
	assert.Equal(t, 3.0, res.Dist["C"])
	assert.False(t, res.Reached("X"))

	nodes, edges, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "A", "C"}, nodes)
	assert.Len(t, edges, 3)

	_, _, err = res.PathTo("X")
	assert.ErrorIs(t, err, bellmanford.ErrNoPath)
}

func TestBellmanFord_HooksAndConvergence(t *testing.T) {
	g := build(t, true, wedge{"A", "B", 1}, wedge{"B", "C", 2}, wedge{"C", "D", 3})

	var log []string
	res, err := bellmanford.BellmanFord(g, "A",
		bellmanford.WithOnPass(func(i, total int) { log = append(log, fmt.Sprintf("pass %d/%d", i, total)) }),
		bellmanford.WithOnRelax(func(r bellmanford.Relaxation) {
			log = append(log, fmt.Sprintf("%s %g->%g", r.To, r.Old, r.New))
		}),
		bellmanford.WithOnConverged(func(p int) { log = append(log, fmt.Sprintf("converged %d", p)) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"pass 1/3", "B +Inf->1", "C +Inf->3", "D +Inf->6",
		"pass 2/3", "converged 2",
	}, log)
	assert.Equal(t, 2, res.Passes)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := build(t, true, wedge{"A", "B", 1}, wedge{"B", "C", -2}, wedge{"C", "B", 1})
	res, err := bellmanford.BellmanFord(g, "A")
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
	require.NotNil(t, res)

	var ce *bellmanford.CycleError
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, []string{"B", "C"}, ce.To)
}

func TestBellmanFord_UndirectedNegativeEdgeIsCycle(t *testing.T) {
	g := build(t, false, wedge{"A", "B", -1})
	_, err := bellmanford.BellmanFord(g, "A")
	assert.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestBellmanFord_UnreachableCycleIgnored(t *testing.T) {
	g := build(t, true, wedge{"A", "B", 1}, wedge{"X", "Y", -1}, wedge{"Y", "X", -1})
	_, err := bellmanford.BellmanFord(g, "A")
	assert.NoError(t, err)
}

func TestBellmanFord_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := build(t, true, wedge{"A", "B", 1})
	_, err := bellmanford.BellmanFord(g, "A", bellmanford.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
