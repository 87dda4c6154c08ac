package algorithms

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphstudio/bfs"
	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/dfs"
	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/step"
)

// traceBFS records a breadth-first traversal.
//
// Persistent layers: queued nodes orange, finished nodes green. The node
// being expanded is blue for the frames it is current.
func traceBFS(ctx context.Context, g *core.Graph, req runner.Request, rec *step.Recorder) error {
	start := startNode(g, req.StartNode)

	var cur, via string
	res, err := bfs.BFS(g, start,
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(id string, depth int) {
			rec.SetNode(id, step.ColorConsidering)
			if depth == 0 {
				rec.Emit(fmt.Sprintf("Start BFS from node %s.", id))
				return
			}
			rec.Emit(fmt.Sprintf("Add %s to the queue.", id),
				step.Node(cur, step.ColorActive),
				step.Edge(via, step.ColorProcessed))
		}),
		bfs.WithOnDequeue(func(id string, _ int) {
			cur = id
			rec.UnsetNode(id)
			rec.Emit(fmt.Sprintf("Visit node %s.", id), step.Node(id, step.ColorActive))
		}),
		bfs.WithOnExamine(func(from string, a core.Arc, seen bool) {
			via = a.EdgeID
			c := step.ColorRejected
			if seen {
				c = step.ColorConsidering
			}
			rec.Emit(fmt.Sprintf("Check neighbor %s of %s.", a.To, from),
				step.Node(from, step.ColorActive),
				step.Node(a.To, c),
				step.Edge(a.EdgeID, step.ColorConsidering))
		}),
		bfs.WithOnFinish(func(id string) {
			rec.SetNode(id, step.ColorProcessed)
			rec.Emit(fmt.Sprintf("Finished node %s.", id))
		}),
	)
	if err != nil {
		return err
	}

	rec.ResetColors()
	for _, id := range res.Order {
		rec.SetNode(id, step.ColorProcessed)
	}
	rec.Emit(fmt.Sprintf("BFS complete. Visit order: %s.", arrow(res.Order)))
	return nil
}

// traceDFS records a depth-first traversal from the start node.
// Visited nodes and tree edges stay green once reached.
func traceDFS(ctx context.Context, g *core.Graph, req runner.Request, rec *step.Recorder) error {
	start := startNode(g, req.StartNode)
	rec.Emit(fmt.Sprintf("Start DFS from node %s.", start), step.Node(start, step.ColorConsidering))

	res, err := dfs.DFS(g, start,
		dfs.WithContext(ctx),
		dfs.WithOnVisit(func(id string, depth int) error {
			rec.SetNode(id, step.ColorProcessed)
			rec.Emit(fmt.Sprintf("Visit node %s at depth %d.", id, depth), step.Node(id, step.ColorActive))
			return nil
		}),
		dfs.WithOnExamine(func(from string, a core.Arc, seen bool) {
			if seen {
				return
			}
			rec.Emit(fmt.Sprintf("Examine neighbor %s of %s.", a.To, from),
				step.Node(from, step.ColorActive),
				step.Node(a.To, step.ColorConsidering),
				step.Edge(a.EdgeID, step.ColorConsidering))
		}),
		dfs.WithOnTreeEdge(func(_ string, a core.Arc) {
			rec.SetEdge(a.EdgeID, step.ColorProcessed)
		}),
		dfs.WithOnExit(func(id string) error {
			rec.Emit(fmt.Sprintf("All neighbors of %s explored; backtrack.", id))
			return nil
		}),
	)
	if err != nil {
		return err
	}

	rec.Emit(fmt.Sprintf("DFS complete. Visit order: %s.", arrow(res.Discovery)))
	return nil
}

// traceTopological records a DFS-based topological sort. Nodes turn green
// as they finish; the final frame labels each node with its position.
func traceTopological(ctx context.Context, g *core.Graph, _ runner.Request, rec *step.Recorder) error {
	if !g.Directed() {
		rec.Emit("Topological sort needs a directed graph. Switch the graph to directed first.",
			paintNodes(g.NodeIDs(), step.ColorRejected)...)
		return nil
	}
	rec.Emit("Start topological sort: explore depth-first and record each node when it finishes.")

	finished := 0
	order, err := dfs.TopologicalSort(g,
		dfs.WithCancelContext(ctx),
		dfs.WithOnFinish(func(id string) {
			rec.SetNode(id, step.ColorProcessed)
			rec.Emit(fmt.Sprintf("Node %s finished; it goes before the %d node(s) finished earlier.", id, finished),
				step.Node(id, step.ColorActive))
			finished++
		}),
	)

	var ce *dfs.CycleError
	if errors.As(err, &ce) {
		rec.ResetColors()
		overlays := append(paintNodes(ce.Nodes, step.ColorRejected), paintEdges(ce.Edges, step.ColorRejected)...)
		rec.Emit(fmt.Sprintf("Cycle found: %s → %s. A graph with a cycle has no topological order.",
			arrow(ce.Nodes), ce.Nodes[0]), overlays...)
		return nil
	}
	if err != nil {
		return err
	}

	for i, id := range order {
		rec.SetNodeLabel(id, strconv.Itoa(i+1))
	}
	rec.Emit(fmt.Sprintf("Topological order: %s.", arrow(order)))
	return nil
}
