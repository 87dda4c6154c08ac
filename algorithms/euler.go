package algorithms

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/euler"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/step"
)

// traceHierholzer records Hierholzer's walk. Walked edges turn orange,
// nodes turn green as they are appended to the tour, and the final frame
// numbers the edges in tour order.
func traceHierholzer(ctx context.Context, g *core.Graph, req runner.Request, rec *step.Recorder) error {
	kind, suggested, err := euler.Classify(g)
	switch {
	case errors.Is(err, euler.ErrNoEdges):
		rec.Emit("The graph has no edges, so there is nothing to walk.")
		return nil
	case errors.Is(err, euler.ErrNotEulerian):
		rec.Emit(fmt.Sprintf("No Eulerian circuit or trail exists: %s. The red nodes break that rule.", degreeRule(g)),
			paintNodes(unbalanced(g), step.ColorRejected)...)
		return nil
	case err != nil:
		return err
	}

	walked := make(map[string]bool)
	started := false
	walk := func(start string) (*euler.Result, error) {
		return euler.Hierholzer(g, start,
			euler.WithContext(ctx),
			euler.WithOnTraverse(func(from string, a core.Arc) {
				if !started {
					started = true
					rec.Emit(fmt.Sprintf("Start Hierholzer's %s from node %s.", kind, from), step.Node(from, step.ColorActive))
				}
				walked[a.EdgeID] = true
				rec.SetEdge(a.EdgeID, step.ColorConsidering)
				rec.Emit(fmt.Sprintf("Walk %s → %s along an unused edge.", from, a.To), step.Node(a.To, step.ColorActive))
			}),
			euler.WithOnBacktrack(func(id string) {
				rec.SetNode(id, step.ColorProcessed)
				rec.Emit(fmt.Sprintf("Node %s has no unused edges left; add it to the tour.", id))
			}),
		)
	}

	start := req.StartNode
	res, err := walk(start)
	if errors.Is(err, euler.ErrInvalidStart) {
		rec.Emit(fmt.Sprintf("Node %s cannot start an Eulerian %s; starting from %s instead.", start, kind, suggested),
			step.Node(suggested, step.ColorActive))
		res, err = walk(suggested)
	}
	if errors.Is(err, euler.ErrNotEulerian) {
		var rest []string
		for _, e := range g.Edges() {
			if !walked[e.ID] {
				rest = append(rest, e.ID)
			}
		}
		rec.Emit("The edges span more than one component, so no single walk covers them. The red edges were never reached.",
			paintEdges(rest, step.ColorRejected)...)
		return nil
	}
	if err != nil {
		return err
	}

	rec.ResetColors()
	for i, id := range res.Edges {
		rec.SetEdge(id, step.ColorProcessed)
		rec.SetEdgeLabel(id, strconv.Itoa(i+1))
	}
	for _, id := range res.Nodes {
		rec.SetNode(id, step.ColorProcessed)
	}
	rec.Emit(fmt.Sprintf("Eulerian %s found: %s.", res.Kind, arrow(res.Nodes)))
	return nil
}

func degreeRule(g *core.Graph) string {
	if g.Directed() {
		return "every node needs equal in- and out-degree, except the two ends of a trail"
	}
	return "at most two nodes may have odd degree"
}

// unbalanced lists nodes whose degree rules out an Eulerian walk on their
// own: odd degree when undirected, in-degree different from out-degree when
// directed.
func unbalanced(g *core.Graph) []string {
	balance := make(map[string]int)
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		if g.Directed() {
			balance[e.From]++
			balance[e.To]--
		} else {
			balance[e.From] ^= 1
			balance[e.To] ^= 1
		}
	}
	var out []string
	for _, id := range g.NodeIDs() {
		if balance[id] != 0 {
			out = append(out, id)
		}
	}
	return out
}
