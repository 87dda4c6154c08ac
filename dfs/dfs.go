// Package dfs implements depth‑first search (single‑source and forest) on core.Graph.
// Directed edges are followed From→To only, undirected edges both ways;
// arcs are explored in ascending target id order (core.Graph.Arcs).
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre‑order), OnExamine (each arc), OnTreeEdge (descend), OnExit (post‑order)
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E·log d) (arcs are sorted per vertex), plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphstudio/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth‑first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components, starting with startID when it exists
// and continuing with the remaining vertices in insertion order; otherwise, it
// starts only from startID.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single‑source mode: verify startID
	hasStart := g.HasNode(startID)
	if !dopts.FullTraversal && !hasStart {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// 4. Initialize result with capacity hint
	n := g.NodeCount()
	res := &DFSResult{
		Order:     make([]string, 0, n),
		Discovery: make([]string, 0, n),
		Depth:     make(map[string]int, n),
		Parent:    make(map[string]string, n),
		TreeEdges: make([]string, 0, n),
		Visited:   make(map[string]bool, n),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	roots := []string{startID}
	if dopts.FullTraversal {
		roots = g.NodeIDs()
		if hasStart {
			roots = append([]string{startID}, roots...)
		}
	}
	for _, v := range roots {
		if res.Visited[v] {
			continue
		}
		if err := walker.traverse(v, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits vertex id at given depth, recursing along its arcs.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Discovery = append(w.res.Discovery, id)

	// 3. Pre‑order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			// abort and clear post‑order
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 4. Explore each arc unless the depth limit stops us here
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, arc := range w.graph.Arcs(id) {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(arc.To) {
				w.res.SkippedNeighbors++
				continue
			}

			seen := w.res.Visited[arc.To]
			if w.opts.OnExamine != nil {
				w.opts.OnExamine(id, arc, seen)
			}
			if seen {
				continue
			}

			if w.opts.OnTreeEdge != nil {
				w.opts.OnTreeEdge(id, arc)
			}
			w.res.Parent[arc.To] = id
			w.res.TreeEdges = append(w.res.TreeEdges, arc.EdgeID)
			if err := w.traverse(arc.To, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post‑order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
