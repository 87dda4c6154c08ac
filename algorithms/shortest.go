package algorithms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphstudio/bellmanford"
	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/dijkstra"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/step"
)

// relaxed is one distance improvement waiting to be shown.
type relaxed struct {
	to, edge    string
	weight      float64
	old, latest float64
}

// dijkstraTrace groups the relaxations of each settled node into one frame.
type dijkstraTrace struct {
	rec      *step.Recorder
	settled  []string
	prevEdge map[string]string
	cur      string
	pending  []relaxed
}

// others paints every settled node except skip blue.
func (t *dijkstraTrace) others(skip string) []step.Overlay {
	out := make([]step.Overlay, 0, len(t.settled))
	for _, id := range t.settled {
		if id != skip {
			out = append(out, step.Node(id, step.ColorActive))
		}
	}
	return out
}

func (t *dijkstraTrace) settle(id string, dist float64, via string) {
	t.flush()
	t.cur = id
	t.prevEdge[id] = via
	t.settled = append(t.settled, id)

	overlays := append(t.others(id), step.Node(id, step.ColorProcessed))
	if via != "" {
		overlays = append(overlays, step.Edge(via, step.ColorProcessed))
	}
	t.rec.Emit(fmt.Sprintf("Select node %s with the smallest distance %s and mark it done.", id, number(dist)), overlays...)
}

func (t *dijkstraTrace) relax(_ string, a core.Arc, old, dist float64) {
	t.rec.SetNodeLabel(a.To, number(dist))
	t.pending = append(t.pending, relaxed{to: a.To, edge: a.EdgeID, weight: a.Weight, old: old, latest: dist})
}

// flush emits the pending relaxations of the current node, if any.
func (t *dijkstraTrace) flush() {
	if len(t.pending) == 0 {
		return
	}
	overlays := t.others(t.cur)
	parts := make([]string, 0, len(t.pending))
	for _, r := range t.pending {
		overlays = append(overlays,
			step.Node(r.to, step.ColorConsidering),
			step.Edge(r.edge, step.ColorConsidering),
			step.EdgeText(r.edge, number(r.weight)))
		parts = append(parts, fmt.Sprintf("%s: %s → %s (edge weight %s)", r.to, number(r.old), number(r.latest), number(r.weight)))
	}
	overlays = append(overlays, step.Node(t.cur, step.ColorProcessed))
	if via := t.prevEdge[t.cur]; via != "" {
		overlays = append(overlays, step.Edge(via, step.ColorProcessed))
	}
	t.rec.Emit(fmt.Sprintf("Update the neighbors of %s: %s.", t.cur, strings.Join(parts, ", ")), overlays...)
	t.pending = nil
}

// traceDijkstra records Dijkstra's algorithm. Node labels carry tentative
// distances; a target stops the search once it is settled.
func traceDijkstra(ctx context.Context, g *core.Graph, req runner.Request, rec *step.Recorder) error {
	source, err := sourceNode(g, runner.Dijkstra, req.Source)
	if err != nil {
		return err
	}
	target, err := targetNode(g, runner.Dijkstra, req.Target)
	if err != nil {
		return err
	}

	negative := false
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			negative = true
			rec.Emit(fmt.Sprintf("Edge (%s, %s) has negative weight %s. Dijkstra does not support negative weights; try Bellman-Ford.",
				e.From, e.To, number(e.Weight)), step.Edge(e.ID, step.ColorRejected))
		}
	}
	if negative {
		return nil
	}

	for _, id := range g.NodeIDs() {
		rec.SetNodeLabel(id, infinity)
	}
	rec.SetNodeLabel(source, "0")
	rec.Emit(fmt.Sprintf("Initialize Dijkstra from %s: distance %s = 0, every other node = ∞.", source, source),
		step.Node(source, step.ColorActive))

	t := &dijkstraTrace{rec: rec, prevEdge: make(map[string]string)}
	opts := []dijkstra.Option{
		dijkstra.Source(source),
		dijkstra.WithContext(ctx),
		dijkstra.WithOnSettle(t.settle),
		dijkstra.WithOnRelax(t.relax),
	}
	if target != "" {
		opts = append(opts, dijkstra.Target(target))
	}
	res, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		return err
	}
	t.flush()

	rec.ResetColors()
	if target != "" {
		nodes, edges, err := res.PathTo(target)
		if err != nil {
			for _, id := range g.NodeIDs() {
				if !res.Reached(id) {
					rec.SetNode(id, step.ColorRejected)
				}
			}
			rec.Emit(fmt.Sprintf("No path from %s to %s. The graph may be disconnected.", source, target))
			return nil
		}
		overlays := append(t.others(""), paintNodes(nodes, step.ColorProcessed)...)
		overlays = append(overlays, paintEdges(edges, step.ColorProcessed)...)
		rec.Emit(fmt.Sprintf("Shortest path from %s to %s: %s, total length %s.",
			source, target, arrow(nodes), number(res.Dist[target])), overlays...)
		return nil
	}

	for _, id := range g.NodeIDs() {
		if res.Reached(id) {
			rec.SetNode(id, step.ColorProcessed)
		} else {
			rec.SetNode(id, step.ColorRejected)
		}
		if via := res.PrevEdge[id]; via != "" {
			rec.SetEdge(via, step.ColorProcessed)
		}
	}
	rec.Emit(fmt.Sprintf("Dijkstra from %s complete: shortest distances to every reachable node.", source))
	return nil
}

// traceBellmanFord records the Bellman-Ford passes, every successful
// relaxation, early convergence and negative cycles.
func traceBellmanFord(ctx context.Context, g *core.Graph, req runner.Request, rec *step.Recorder) error {
	source, err := sourceNode(g, runner.BellmanFord, req.Source)
	if err != nil {
		return err
	}
	target, err := targetNode(g, runner.BellmanFord, req.Target)
	if err != nil {
		return err
	}

	for _, id := range g.NodeIDs() {
		rec.SetNodeLabel(id, infinity)
	}
	rec.SetNodeLabel(source, "0")
	rec.Emit(fmt.Sprintf("Initialize: distance %s = 0, every other node = ∞.", source),
		step.Node(source, step.ColorProcessed))

	res, err := bellmanford.BellmanFord(g, source,
		bellmanford.WithContext(ctx),
		bellmanford.WithOnPass(func(i, total int) {
			rec.Emit(fmt.Sprintf("Pass %d / %d.", i, total))
		}),
		bellmanford.WithOnRelax(func(r bellmanford.Relaxation) {
			rec.SetNodeLabel(r.To, number(r.New))
			rec.Emit(fmt.Sprintf("Update %s: %s → %s (via %s, weight %s).",
				r.To, number(r.Old), number(r.New), r.From, number(r.Weight)),
				step.Node(r.From, step.ColorActive),
				step.Node(r.To, step.ColorProcessed),
				step.Edge(r.EdgeID, step.ColorProcessed))
		}),
		bellmanford.WithOnConverged(func(int) {
			rec.Emit("No distance changed. The algorithm converged early.")
		}),
	)
	var ce *bellmanford.CycleError
	if errors.As(err, &ce) {
		rec.Emit(fmt.Sprintf("Negative cycle detected at edge (%s → %s). Shortest paths are undefined.", ce.From, ce.To),
			step.Node(ce.From, step.ColorRejected),
			step.Node(ce.To, step.ColorRejected),
			step.Edge(ce.EdgeID, step.ColorRejected))
		return nil
	}
	if err != nil {
		return err
	}

	if target != "" {
		nodes, edges, err := res.PathTo(target)
		if err != nil {
			rec.Emit(fmt.Sprintf("No path from %s to %s.", source, target),
				step.Node(source, step.ColorProcessed),
				step.Node(target, step.ColorRejected))
			return nil
		}
		overlays := append(paintNodes(nodes, step.ColorProcessed), paintEdges(edges, step.ColorProcessed)...)
		rec.Emit(fmt.Sprintf("Done. The shortest path from %s to %s is %s with length %s.",
			source, target, arrow(nodes), number(res.Dist[target])), overlays...)
		return nil
	}

	var reached []string
	for _, id := range g.NodeIDs() {
		if res.Reached(id) {
			reached = append(reached, id)
		}
	}
	rec.Emit(fmt.Sprintf("Done. Shortest distances from %s to every node are computed.", source),
		paintNodes(reached, step.ColorProcessed)...)
	return nil
}
