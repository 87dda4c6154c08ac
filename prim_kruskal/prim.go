package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphstudio/core"
)

// Prim computes a Minimum Spanning Tree by growing it from root.
//
// Steps:
//  1. Validate input graph (nil or directed → ErrInvalidGraph).
//  2. Validate root (empty → ErrEmptyRoot, missing → core.ErrNodeNotFound).
//  3. Push every arc of root into a min-heap keyed by (weight, push order).
//  4. Pop the cheapest candidate; if its far end is already spanned it is
//     rejected, otherwise accepted and the far end's arcs are pushed.
//  5. When the heap drains before all vertices are spanned, return the
//     partial tree with ErrDisconnected.
//
// Self-loops and parallel edges are valid input; a loop is always rejected.
//
// Complexity:
//   - Time: O(E log E)
//   - Space: O(V + E)
func Prim(graph *core.Graph, root string, opts ...Option) (*Result, error) {
	if graph == nil || graph.Directed() {
		return nil, ErrInvalidGraph
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !graph.HasNode(root) {
		return nil, fmt.Errorf("%w: %q", core.ErrNodeNotFound, root)
	}
	o := build(opts)

	n := graph.NodeCount()
	visited := make(map[string]bool, n)
	res := &Result{Edges: make([]core.Edge, 0, n-1), Spanned: make([]string, 0, n)}
	pq := &edgePQ{}
	heap.Init(pq)

	var seq int
	grow := func(v string) {
		visited[v] = true
		res.Spanned = append(res.Spanned, v)
		for _, a := range graph.Arcs(v) {
			if visited[a.To] {
				continue
			}
			seq++
			heap.Push(pq, &edgeItem{c: Candidate{EdgeID: a.EdgeID, From: v, To: a.To, Weight: a.Weight}, seq: seq})
		}
	}
	grow(root)

	for pq.Len() > 0 && len(res.Spanned) < n {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		c := heap.Pop(pq).(*edgeItem).c
		o.OnConsider(c)
		if visited[c.To] {
			o.OnReject(c)
			continue
		}
		e, _ := graph.Edge(c.EdgeID)
		res.Edges = append(res.Edges, e)
		res.Total += c.Weight
		o.OnAccept(c, res.Total)
		grow(c.To)
	}

	if len(res.Spanned) < n {
		return res, ErrDisconnected
	}

	return res, nil
}

// edgeItem is a heap entry; seq breaks weight ties in push order.
type edgeItem struct {
	c   Candidate
	seq int
}

// edgePQ implements heap.Interface as a min-heap on (weight, seq).
type edgePQ []*edgeItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].c.Weight != pq[j].c.Weight {
		return pq[i].c.Weight < pq[j].c.Weight
	}
	return pq[i].seq < pq[j].seq
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(*edgeItem)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1] // smallest element after heap adjustments
	*pq = old[:n-1]  // shrink slice

	return item
}
