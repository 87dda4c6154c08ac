package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/flow"
)

type wedge struct {
	u, v string
	w    float64
}

func build(t testing.TB, directed bool, edges ...wedge) (*core.Graph, []string) {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		for _, id := range []string{e.u, e.v} {
			if !g.HasNode(id) {
				require.NoError(t, g.AddNodeWithID(id, 0, 0, ""))
			}
		}
		id, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return g, ids
}

func TestEdmondsKarp_Validation(t *testing.T) {
	g, _ := build(t, true, wedge{"s", "t", 1})
	ctx := context.Background()

	_, err := flow.EdmondsKarp(ctx, g, "x", "t", nil)
	assert.ErrorIs(t, err, flow.ErrSourceNotFound)
	_, err = flow.EdmondsKarp(ctx, g, "s", "x", nil)
	assert.ErrorIs(t, err, flow.ErrSinkNotFound)
	_, err = flow.EdmondsKarp(ctx, g, "s", "s", nil)
	assert.ErrorIs(t, err, flow.ErrSameSourceSink)

	neg, ids := build(t, true, wedge{"s", "t", -1})
	_, err = flow.EdmondsKarp(ctx, neg, "s", "t", nil)
	var ee flow.EdgeError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, ids[0], ee.EdgeID)
}

func TestEdmondsKarp_ClassicNetwork(t *testing.T) {
	// CLRS-style network, max flow 23.
	g, ids := build(t, true,
		wedge{"s", "a", 16}, wedge{"s", "c", 13}, wedge{"a", "b", 12}, wedge{"c", "a", 4},
		wedge{"b", "c", 9}, wedge{"c", "d", 14}, wedge{"d", "b", 7}, wedge{"b", "t", 20}, wedge{"d", "t", 4})

	var augs []flow.Augmentation
	res, err := flow.EdmondsKarp(context.Background(), g, "s", "t", &flow.FlowOptions{
		OnAugment: func(a flow.Augmentation) { augs = append(augs, a) },
	})
	require.NoError(t, err)
	assert.Equal(t, 23.0, res.Value)
	assert.Equal(t, len(augs), res.Augmentations)
	assert.Equal(t, 23.0, augs[len(augs)-1].Total)
	assert.Equal(t, []string{"s", "a", "b", "t"}, augs[0].Nodes)
	assert.Len(t, augs[0].Edges, 3)

	// conservation at every inner vertex
	net := map[string]float64{}
	for _, ef := range res.Edges {
		assert.LessOrEqual(t, ef.Flow, ef.Capacity)
		net[ef.From] -= ef.Flow
		net[ef.To] += ef.Flow
	}
	for _, v := range []string{"a", "b", "c", "d"} {
		assert.InDelta(t, 0, net[v], 1e-9, v)
	}
	assert.Equal(t, 23.0, net["t"])
	assert.Len(t, res.Edges, len(ids))

	// the min cut separates {s,a,c,d} from {b,t}
	assert.ElementsMatch(t, []string{"s", "a", "c", "d"}, res.SourceSide)
}

func TestEdmondsKarp_UndirectedEdgesCarryEitherWay(t *testing.T) {
	g, ids := build(t, false, wedge{"s", "a", 3}, wedge{"t", "a", 2}, wedge{"s", "t", 1})
	res, err := flow.EdmondsKarp(context.Background(), g, "s", "t", nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Value)

	ta := res.Edges[ids[1]]
	assert.Equal(t, "a", ta.From, "flow runs against the stored orientation")
	assert.Equal(t, "t", ta.To)
	assert.Equal(t, 2.0, ta.Flow)
}

func TestEdmondsKarp_ParallelEdgesAndLoops(t *testing.T) {
	g, _ := build(t, true, wedge{"s", "t", 2}, wedge{"s", "t", 3}, wedge{"s", "s", 10})
	res, err := flow.EdmondsKarp(context.Background(), g, "s", "t", nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Value)
}

func TestEdmondsKarp_NoPath(t *testing.T) {
	g, _ := build(t, true, wedge{"t", "s", 5})
	res, err := flow.EdmondsKarp(context.Background(), g, "s", "t", nil)
	require.NoError(t, err)
	assert.Zero(t, res.Value)
	assert.Equal(t, []string{"s"}, res.SourceSide)
}

func TestEdmondsKarp_Cancel(t *testing.T) {
	g, _ := build(t, true, wedge{"s", "t", 5})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := flow.EdmondsKarp(ctx, g, "s", "t", nil)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Zero(t, res.Value)
}
