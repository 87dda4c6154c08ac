package algorithms

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/flow"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/step"
)

// flowLabel renders "flow/capacity".
func flowLabel(f, capacity float64) string {
	return number(math.Abs(f)) + "/" + number(capacity)
}

// traceFordFulkerson records Edmonds-Karp augmentations. Every edge is
// labelled flow/capacity; the final frame shows a minimum cut in red.
// Source defaults to the first node and the sink to the last one.
func traceFordFulkerson(ctx context.Context, g *core.Graph, req runner.Request, rec *step.Recorder) error {
	source, err := sourceNode(g, runner.FordFulkerson, req.Source)
	if err != nil {
		return err
	}
	sink, err := targetNode(g, runner.FordFulkerson, req.Target)
	if err != nil {
		return err
	}
	if sink == "" {
		ids := g.NodeIDs()
		sink = ids[len(ids)-1]
	}
	if source == sink {
		return &PreconditionError{Algorithm: runner.FordFulkerson, Reason: fmt.Sprintf("source and sink are both %q", source)}
	}

	edges := g.Edges()
	byID := make(map[string]core.Edge, len(edges))
	net := make(map[string]float64, len(edges))
	for _, e := range edges {
		byID[e.ID] = e
		rec.SetEdgeLabel(e.ID, flowLabel(0, e.Weight))
	}
	rec.Emit(fmt.Sprintf("Find the maximum flow from %s to %s. Every edge starts with flow 0.", source, sink),
		step.Node(source, step.ColorActive),
		step.Node(sink, step.ColorConsidering))

	res, err := flow.EdmondsKarp(ctx, g, source, sink, &flow.FlowOptions{
		OnAugment: func(a flow.Augmentation) {
			for i, id := range a.Edges {
				e := byID[id]
				if e.From == a.Nodes[i] {
					net[id] += a.Amount
				} else {
					net[id] -= a.Amount
				}
				rec.SetEdgeLabel(id, flowLabel(net[id], e.Weight))
				if math.Abs(net[id]) > 0 {
					rec.SetEdge(id, step.ColorProcessed)
				} else {
					rec.UnsetEdge(id)
				}
			}
			overlays := append(paintNodes(a.Nodes, step.ColorConsidering), paintEdges(a.Edges, step.ColorConsidering)...)
			rec.Emit(fmt.Sprintf("Augmenting path %s carries %s. Total flow: %s.",
				arrow(a.Nodes), number(a.Amount), number(a.Total)), overlays...)
		},
	})
	var ee flow.EdgeError
	if errors.As(err, &ee) {
		rec.Emit(fmt.Sprintf("Edge (%s, %s) has negative capacity %s. Capacities must be non-negative.",
			ee.From, ee.To, number(ee.Cap)), step.Edge(ee.EdgeID, step.ColorRejected))
		return nil
	}
	if err != nil {
		return err
	}

	rec.ResetColors()
	for _, id := range res.SourceSide {
		rec.SetNode(id, step.ColorProcessed)
	}
	for _, e := range edges {
		ef := res.Edges[e.ID]
		rec.SetEdgeLabel(e.ID, flowLabel(ef.Flow, ef.Capacity))
		if ef.Flow > 0 {
			rec.SetEdge(e.ID, step.ColorProcessed)
		}
		if cut(e, res.SourceSide) {
			rec.SetEdge(e.ID, step.ColorRejected)
		}
	}
	rec.Emit(fmt.Sprintf("Maximum flow from %s to %s: %s. Green nodes are still reachable from %s; the red edges form a minimum cut.",
		source, sink, number(res.Value), source))
	return nil
}

// cut reports whether e crosses from side to the rest in a direction that
// can carry flow.
func cut(e core.Edge, side []string) bool {
	from, to := slices.Contains(side, e.From), slices.Contains(side, e.To)
	if from == to {
		return false
	}
	return from || !e.Directed
}
