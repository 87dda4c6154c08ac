// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties in the heap are broken by vertex id, so settle order is deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/graphstudio/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g, or until Options.Target is settled.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source and Target if set (ErrVertexNotFound).
//  4. No edge in g can have negative weight (*WeightError, ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate Source and Target exist in the graph
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasNode(cfg.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	// 5) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, &WeightError{EdgeID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
		}
	}

	ids := g.NodeIDs()
	V := len(ids)
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source:   cfg.Source,
			Dist:     make(map[string]float64, V),
			Prev:     make(map[string]string, V),
			PrevEdge: make(map[string]string, V),
			Settled:  make([]string, 0, V),
		},
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	r.init(ids)
	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	g       *core.Graph     // The input graph; read-only within Dijkstra.
	options Options         // Configuration options (Source, thresholds, hooks).
	res     *Result         // Distances, predecessors and settle order.
	visited map[string]bool // Tracks if a vertex's distance is finalized.
	pq      nodePQ          // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init(ids []string) {
	for _, v := range ids {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops vertices in distance order, settles them and relaxes their arcs.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		select {
		case <-cfg.Ctx.Done():
			return cfg.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > cfg.MaxDistance {
			break
		}

		r.visited[u] = true
		r.res.Settled = append(r.res.Settled, u)
		cfg.OnSettle(u, item.dist, r.res.PrevEdge[u])

		if u == cfg.Target {
			break
		}
		r.relax(u)
	}

	return nil
}

// relax improves the tentative distance of every unsettled neighbor of u.
func (r *runner) relax(u string) {
	du := r.res.Dist[u]
	for _, arc := range r.g.Arcs(u) {
		v := arc.To
		if r.visited[v] {
			continue
		}
		if arc.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := du + arc.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		old := r.res.Dist[v]
		if newDist >= old {
			continue
		}

		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		r.res.PrevEdge[v] = arc.EdgeID
		r.options.OnRelax(u, arc, old, newDist)

		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a heap entry holding a vertex and its tentative distance.
type nodeItem struct {
	id   string  // vertex ID
	dist float64 // distance from source
}

// nodePQ implements heap.Interface as a min-heap on dist, then id.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
