package prim_kruskal

import (
	"slices"

	"github.com/katalvlaran/graphstudio/core"
)

// Kruskal computes a Minimum Spanning Tree (or forest) using Kruskal's
// algorithm.
//
// Steps:
//  1. Validate input graph (nil or directed → ErrInvalidGraph).
//  2. Stable-sort all edges by weight, so ties keep insertion order.
//  3. Initialize a union-find with path halving and union by rank.
//  4. For each edge: consider it, then accept it when its endpoints lie in
//     different components, otherwise reject it (self-loops included).
//  5. Stop once |V|-1 edges are accepted. Fewer than that means the graph
//     is disconnected: the forest is returned with ErrDisconnected.
//
// Complexity:
//   - Time: O(E log E + α(V)·E)
//   - Space: O(V + E)
func Kruskal(graph *core.Graph, opts ...Option) (*Result, error) {
	if graph == nil || graph.Directed() {
		return nil, ErrInvalidGraph
	}
	o := build(opts)

	vertices := graph.NodeIDs()
	edges := graph.Edges()
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		}
		return 0
	})

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, vid := range vertices {
		parent[vid] = vid
	}

	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	union := func(u, v string) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
		return true
	}

	res := &Result{Edges: make([]core.Edge, 0, len(vertices)), Spanned: make([]string, 0, len(vertices))}
	spanned := make(map[string]bool, len(vertices))
	span := func(ids ...string) {
		for _, id := range ids {
			if !spanned[id] {
				spanned[id] = true
				res.Spanned = append(res.Spanned, id)
			}
		}
	}

	for _, e := range edges {
		if len(vertices) > 0 && len(res.Edges) == len(vertices)-1 {
			break
		}
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		c := Candidate{EdgeID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
		o.OnConsider(c)
		if !union(e.From, e.To) {
			o.OnReject(c)
			continue
		}
		res.Edges = append(res.Edges, e)
		res.Total += e.Weight
		span(e.From, e.To)
		o.OnAccept(c, res.Total)
	}

	if len(vertices) > 1 && len(res.Edges) < len(vertices)-1 {
		return res, ErrDisconnected
	}

	return res, nil
}
