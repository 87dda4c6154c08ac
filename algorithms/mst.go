package algorithms

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/prim_kruskal"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/step"
)

// tracePrim records Prim's algorithm grown from the start node. Accepted
// edges stay green and show their weight.
func tracePrim(ctx context.Context, g *core.Graph, req runner.Request, rec *step.Recorder) error {
	if g.Directed() {
		rec.Emit("Prim's algorithm needs an undirected graph. Switch the graph to undirected first.")
		return nil
	}
	root := startNode(g, req.StartNode)
	rec.Emit(fmt.Sprintf("Start Prim from node %s and push its edges into the priority queue.", root),
		step.Node(root, step.ColorActive))

	res, err := prim_kruskal.Prim(g, root,
		prim_kruskal.WithContext(ctx),
		prim_kruskal.WithOnAccept(func(c prim_kruskal.Candidate, total float64) {
			rec.Emit(fmt.Sprintf("Add edge (%s, %s) with weight %s to the tree. Running total: %s.",
				c.From, c.To, number(c.Weight), number(total)),
				step.Node(c.From, step.ColorProcessed),
				step.Node(c.To, step.ColorActive),
				step.Edge(c.EdgeID, step.ColorConsidering),
				step.EdgeText(c.EdgeID, number(c.Weight)))
			rec.SetEdge(c.EdgeID, step.ColorProcessed)
		}),
	)
	if errors.Is(err, prim_kruskal.ErrDisconnected) {
		for _, id := range g.NodeIDs() {
			if !slices.Contains(res.Spanned, id) {
				rec.SetNode(id, step.ColorRejected)
			}
		}
		rec.Emit(fmt.Sprintf("The graph is disconnected, so no spanning tree covers every node. Partial tree weight: %s.",
			number(res.Total)))
		return nil
	}
	if err != nil {
		return err
	}

	for _, id := range g.NodeIDs() {
		rec.SetNode(id, step.ColorProcessed)
	}
	rec.Emit(fmt.Sprintf("Prim complete. Minimum spanning tree weight: %s.", number(res.Total)))
	return nil
}

// traceKruskal records Kruskal's algorithm: every candidate edge in weight
// order, then its acceptance or rejection.
func traceKruskal(ctx context.Context, g *core.Graph, _ runner.Request, rec *step.Recorder) error {
	if g.Directed() {
		rec.Emit("Kruskal's algorithm needs an undirected graph. Switch the graph to undirected first.")
		return nil
	}

	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		}
		return 0
	})
	order := make([]string, len(edges))
	for i, e := range edges {
		order[i] = fmt.Sprintf("(%s, %s)=%s", e.From, e.To, number(e.Weight))
	}
	rec.Emit("Sort the edges by increasing weight: " + strings.Join(order, ", ") + ".")

	res, err := prim_kruskal.Kruskal(g,
		prim_kruskal.WithContext(ctx),
		prim_kruskal.WithOnConsider(func(c prim_kruskal.Candidate) {
			rec.Emit(fmt.Sprintf("Consider edge (%s, %s) with weight %s.", c.From, c.To, number(c.Weight)),
				step.Node(c.From, step.ColorConsidering),
				step.Node(c.To, step.ColorConsidering),
				step.Edge(c.EdgeID, step.ColorConsidering))
		}),
		prim_kruskal.WithOnAccept(func(c prim_kruskal.Candidate, total float64) {
			rec.SetEdge(c.EdgeID, step.ColorProcessed)
			rec.Emit(fmt.Sprintf("Accept edge (%s, %s): it joins two components. Running total: %s.",
				c.From, c.To, number(total)),
				step.Node(c.From, step.ColorProcessed),
				step.Node(c.To, step.ColorProcessed))
		}),
		prim_kruskal.WithOnReject(func(c prim_kruskal.Candidate) {
			rec.Emit(fmt.Sprintf("Skip edge (%s, %s): it would close a cycle.", c.From, c.To),
				step.Node(c.From, step.ColorRejected),
				step.Node(c.To, step.ColorRejected),
				step.Edge(c.EdgeID, step.ColorRejected))
		}),
	)
	disconnected := errors.Is(err, prim_kruskal.ErrDisconnected)
	if err != nil && !disconnected {
		return err
	}

	for _, id := range g.NodeIDs() {
		rec.SetNode(id, step.ColorProcessed)
	}
	if disconnected {
		rec.Emit(fmt.Sprintf("The graph is disconnected. Minimum spanning forest weight: %s.", number(res.Total)))
		return nil
	}
	rec.Emit(fmt.Sprintf("Kruskal complete. Minimum spanning tree weight: %s.", number(res.Total)))
	return nil
}
