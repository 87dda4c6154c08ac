// Package bellmanford implements the Bellman-Ford shortest-path algorithm
// on a core.Graph. Unlike Dijkstra it accepts negative weights and reports
// a negative cycle reachable from the source.
//
// Edges are relaxed in insertion order; an undirected edge is relaxed in
// both directions, From→To first. As a consequence a single negative
// undirected edge is itself a negative cycle.
//
// Complexity:
//
//   - Time:   O(V·E), usually less thanks to early convergence.
//   - Memory: O(V + E)
package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphstudio/core"
)

// arc is one relaxable direction of an edge.
type arc struct {
	from, to, id string
	w            float64
}

// BellmanFord computes shortest distances from source.
//
// On a negative cycle the returned Result holds the distances after the last
// pass and the error is a *CycleError.
func BellmanFord(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, source)
	}

	ids := g.NodeIDs()
	res := &Result{
		Source:   source,
		Dist:     make(map[string]float64, len(ids)),
		Prev:     make(map[string]string, len(ids)),
		PrevEdge: make(map[string]string, len(ids)),
	}
	for _, v := range ids {
		res.Dist[v] = math.Inf(1)
	}
	res.Dist[source] = 0

	arcs := arcsOf(g)
	total := len(ids) - 1
	for i := 1; i <= total; i++ {
		select {
		case <-cfg.Ctx.Done():
			return res, cfg.Ctx.Err()
		default:
		}

		res.Passes = i
		cfg.OnPass(i, total)
		if !relaxAll(res, arcs, cfg.OnRelax) {
			cfg.OnConverged(i)
			break
		}
	}

	// One extra sweep: any further improvement proves a negative cycle.
	for _, a := range arcs {
		du := res.Dist[a.from]
		if !math.IsInf(du, 1) && du+a.w < res.Dist[a.to] {
			return res, &CycleError{From: a.from, To: a.to, EdgeID: a.id}
		}
	}

	return res, nil
}

// relaxAll runs one pass over arcs and reports whether anything changed.
func relaxAll(res *Result, arcs []arc, onRelax func(Relaxation)) bool {
	changed := false
	for _, a := range arcs {
		du := res.Dist[a.from]
		if math.IsInf(du, 1) {
			continue
		}
		old := res.Dist[a.to]
		if du+a.w >= old {
			continue
		}
		res.Dist[a.to] = du + a.w
		res.Prev[a.to] = a.from
		res.PrevEdge[a.to] = a.id
		changed = true
		onRelax(Relaxation{From: a.from, To: a.to, EdgeID: a.id, Weight: a.w, Old: old, New: du + a.w})
	}
	return changed
}

// arcsOf expands g's edges into relaxable directions.
func arcsOf(g *core.Graph) []arc {
	edges := g.Edges()
	out := make([]arc, 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, arc{from: e.From, to: e.To, id: e.ID, w: e.Weight})
		if !e.Directed && !e.IsLoop() {
			out = append(out, arc{from: e.To, to: e.From, id: e.ID, w: e.Weight})
		}
	}
	return out
}
