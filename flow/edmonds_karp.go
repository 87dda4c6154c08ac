package flow

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/graphstudio/core"
)

// arc is one direction of the residual network. Arcs come in pairs:
// arcs[i^1] is the reverse of arcs[i].
type arc struct {
	to     string
	edgeID string
	cap    float64 // remaining residual capacity
}

// network is the residual graph built from a core.Graph.
type network struct {
	arcs []arc
	out  map[string][]int // vertex → arc indices, ordered by target id
	base []float64        // initial capacity per arc
}

// EdmondsKarp computes the maximum flow from source to sink using
// breadth-first (shortest) augmenting paths.
//
// Edge weights are capacities. A directed edge carries flow From→To only; an
// undirected edge carries it either way, up to its capacity. Self-loops are
// ignored and parallel edges add up.
//
// Steps:
//  1. Validate source, sink and capacities.
//  2. Build the paired residual arcs.
//  3. Repeatedly BFS for a path with positive residual capacity, push the
//     bottleneck, report it through OnAugment.
//  4. Derive per-edge flow and the source side of a minimum cut.
//
// Complexity:
//   - Time:   O(V · E²)
//   - Memory: O(V + E)
//
// Cancellation returns ctx.Err() with the flow found so far.
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink string, opts *FlowOptions) (*Result, error) {
	eps := 1e-9
	var onAugment func(Augmentation)
	logger := slog.New(slog.DiscardHandler)
	if opts != nil {
		if opts.Epsilon > 0 {
			eps = opts.Epsilon
		}
		onAugment = opts.OnAugment
		if opts.Logger != nil {
			logger = opts.Logger
		}
	}

	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasNode(sink) {
		return nil, ErrSinkNotFound
	}
	if source == sink {
		return nil, ErrSameSourceSink
	}

	edges := g.Edges()
	net, err := buildNetwork(edges, eps)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for {
		select {
		case <-ctx.Done():
			res.Edges = net.edgeFlows(edges, eps)
			return res, ctx.Err()
		default:
		}

		path := net.shortestPath(source, sink, eps)
		if path == nil {
			break
		}

		bottle := math.Inf(1)
		for _, i := range path {
			bottle = min(bottle, net.arcs[i].cap)
		}
		aug := Augmentation{Nodes: []string{source}, Amount: bottle}
		for _, i := range path {
			net.arcs[i].cap -= bottle
			net.arcs[i^1].cap += bottle
			aug.Nodes = append(aug.Nodes, net.arcs[i].to)
			aug.Edges = append(aug.Edges, net.arcs[i].edgeID)
		}
		res.Value += bottle
		res.Augmentations++
		aug.Total = res.Value

		logger.Debug("augmenting path",
			slog.Any("path", aug.Nodes),
			slog.Float64("amount", bottle),
			slog.Float64("total", res.Value))
		if onAugment != nil {
			onAugment(aug)
		}
	}

	res.Edges = net.edgeFlows(edges, eps)
	res.SourceSide = net.reachable(source, eps)

	return res, nil
}

// buildNetwork turns edges into paired residual arcs.
func buildNetwork(edges []core.Edge, eps float64) (*network, error) {
	net := &network{
		arcs: make([]arc, 0, 2*len(edges)),
		out:  make(map[string][]int),
		base: make([]float64, 0, 2*len(edges)),
	}
	for _, e := range edges {
		if e.Weight < -eps {
			return nil, EdgeError{EdgeID: e.ID, From: e.From, To: e.To, Cap: e.Weight}
		}
		if e.IsLoop() {
			continue
		}
		c := max(e.Weight, 0)
		back := 0.0
		if !e.Directed {
			back = c
		}
		i := len(net.arcs)
		net.arcs = append(net.arcs, arc{to: e.To, edgeID: e.ID, cap: c}, arc{to: e.From, edgeID: e.ID, cap: back})
		net.base = append(net.base, c, back)
		net.out[e.From] = append(net.out[e.From], i)
		net.out[e.To] = append(net.out[e.To], i+1)
	}
	for v, idx := range net.out {
		slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(net.arcs[a].to, net.arcs[b].to) })
		net.out[v] = idx
	}
	return net, nil
}

// shortestPath returns the arc indices of a fewest-arc path with positive
// residual capacity, or nil.
func (n *network) shortestPath(source, sink string, eps float64) []int {
	via := map[string]int{source: -1}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, i := range n.out[u] {
			a := n.arcs[i]
			if a.cap <= eps {
				continue
			}
			if _, seen := via[a.to]; seen {
				continue
			}
			via[a.to] = i
			if a.to == sink {
				var path []int
				for cur := sink; cur != source; {
					j := via[cur]
					path = append(path, j)
					cur = n.arcs[j^1].to
				}
				slices.Reverse(path)
				return path
			}
			queue = append(queue, a.to)
		}
	}
	return nil
}

// reachable lists the vertices reachable from source in BFS order.
func (n *network) reachable(source string, eps float64) []string {
	seen := map[string]bool{source: true}
	order := []string{source}
	for k := 0; k < len(order); k++ {
		for _, i := range n.out[order[k]] {
			a := n.arcs[i]
			if a.cap > eps && !seen[a.to] {
				seen[a.to] = true
				order = append(order, a.to)
			}
		}
	}
	return order
}

// edgeFlows derives per-edge flow from the residual capacities.
func (n *network) edgeFlows(edges []core.Edge, eps float64) map[string]EdgeFlow {
	out := make(map[string]EdgeFlow, len(edges))
	pushed := make(map[string]float64, len(edges))
	for i := 0; i < len(n.arcs); i += 2 {
		// forward arc flow minus its share used backwards
		pushed[n.arcs[i].edgeID] += n.base[i] - n.arcs[i].cap
	}
	for _, e := range edges {
		f := pushed[e.ID]
		ef := EdgeFlow{EdgeID: e.ID, From: e.From, To: e.To, Flow: f, Capacity: e.Weight}
		if f < -eps {
			ef.From, ef.To, ef.Flow = e.To, e.From, -f
		}
		if math.Abs(ef.Flow) <= eps {
			ef.Flow = 0
		}
		out[e.ID] = ef
	}
	return out
}
