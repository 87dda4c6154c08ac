package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstudio/runner"
	"github.com/katalvlaran/graphstudio/step"
)

const (
	green  = step.ColorProcessed
	blue   = step.ColorActive
	orange = step.ColorConsidering
	red    = step.ColorRejected
)

type colors = map[string]step.Color

func TestBFS_Frames(t *testing.T) {
	g := graph(false, []string{"A", "B"}, edge{"e1", "A", "B", 1})
	steps := run(t, runner.Request{Algorithm: runner.BFS, Graph: g, StartNode: "A"})

	assert.Equal(t, []string{
		"Start BFS from node A.",
		"Visit node A.",
		"Check neighbor B of A.",
		"Add B to the queue.",
		"Finished node A.",
		"Visit node B.",
		"Check neighbor A of B.",
		"Finished node B.",
		"BFS complete. Visit order: A → B.",
	}, descriptions(steps))

	assert.Equal(t, colors{"A": orange}, steps[0].HighlightNodes)
	assert.Equal(t, colors{"A": blue}, steps[1].HighlightNodes)
	assert.Equal(t, colors{"A": blue, "B": red}, steps[2].HighlightNodes, "undiscovered neighbor")
	assert.Equal(t, colors{"e1": orange}, steps[2].HighlightEdges)
	assert.Equal(t, colors{"A": blue, "B": orange}, steps[3].HighlightNodes)
	assert.Equal(t, colors{"e1": green}, steps[3].HighlightEdges)
	assert.Equal(t, colors{"A": green, "B": orange}, steps[4].HighlightNodes)
	assert.Empty(t, steps[4].HighlightEdges)
	assert.Equal(t, colors{"A": orange, "B": blue}, steps[6].HighlightNodes, "already discovered neighbor")
	assert.Equal(t, colors{"A": green, "B": green}, last(steps).HighlightNodes)
}

func TestBFS_UnknownStartFallsBackToFirstNode(t *testing.T) {
	g := graph(true, []string{"A", "B"}, edge{"e1", "A", "B", 1})
	steps := run(t, runner.Request{Algorithm: runner.BFS, Graph: g, StartNode: "zzz"})
	assert.Equal(t, "Start BFS from node A.", steps[0].Description)
}

func TestDFS_Frames(t *testing.T) {
	g := graph(false, []string{"A", "B", "C"}, edge{"e1", "A", "B", 1}, edge{"e2", "A", "C", 1})
	steps := run(t, runner.Request{Algorithm: runner.DFS, Graph: g})

	assert.Equal(t, []string{
		"Start DFS from node A.",
		"Visit node A at depth 0.",
		"Examine neighbor B of A.",
		"Visit node B at depth 1.",
		"All neighbors of B explored; backtrack.",
		"Examine neighbor C of A.",
		"Visit node C at depth 1.",
		"All neighbors of C explored; backtrack.",
		"All neighbors of A explored; backtrack.",
		"DFS complete. Visit order: A → B → C.",
	}, descriptions(steps))

	assert.Equal(t, colors{"A": blue, "B": orange}, steps[2].HighlightNodes)
	assert.Equal(t, colors{"e1": orange}, steps[2].HighlightEdges)
	assert.Equal(t, colors{"A": green, "B": blue}, steps[3].HighlightNodes)
	assert.Equal(t, colors{"e1": green}, steps[3].HighlightEdges, "tree edge stays green")
	assert.Equal(t, colors{"A": green, "B": green, "C": green}, last(steps).HighlightNodes)
	assert.Equal(t, colors{"e1": green, "e2": green}, last(steps).HighlightEdges)
}

func TestTopological_Frames(t *testing.T) {
	g := graph(true, []string{"A", "B", "C", "D"},
		edge{"ab", "A", "B", 1}, edge{"ac", "A", "C", 1}, edge{"bd", "B", "D", 1}, edge{"cd", "C", "D", 1})
	steps := run(t, runner.Request{Algorithm: runner.Topological, Graph: g})

	require.Len(t, steps, 6)
	assert.Equal(t, "Node D finished; it goes before the 0 node(s) finished earlier.", steps[1].Description)
	assert.Equal(t, "Node A finished; it goes before the 3 node(s) finished earlier.", steps[4].Description)

	final := last(steps)
	assert.Equal(t, "Topological order: A → C → B → D.", final.Description)
	assert.Equal(t, map[string]string{"A": "1", "C": "2", "B": "3", "D": "4"}, final.NodeLabels)
	assert.Equal(t, colors{"A": green, "B": green, "C": green, "D": green}, final.HighlightNodes)
}

func TestTopological_CycleAndUndirected(t *testing.T) {
	g := graph(true, []string{"A", "B"}, edge{"ab", "A", "B", 1}, edge{"ba", "B", "A", 1})
	steps := run(t, runner.Request{Algorithm: runner.Topological, Graph: g})
	final := last(steps)
	assert.Contains(t, final.Description, "Cycle found")
	assert.Equal(t, colors{"A": red, "B": red}, final.HighlightNodes)
	assert.Equal(t, colors{"ab": red, "ba": red}, final.HighlightEdges)

	g.Directed = false
	g.Edges = g.Edges[:1]
	steps = run(t, runner.Request{Algorithm: runner.Topological, Graph: g})
	require.Len(t, steps, 1)
	assert.Contains(t, steps[0].Description, "directed graph")
}

func triangle() []edge {
	return []edge{{"e1", "A", "B", 1}, {"e2", "B", "C", 2}, {"e3", "A", "C", 5}}
}

func TestDijkstra_Frames(t *testing.T) {
	g := graph(false, []string{"A", "B", "C"}, triangle()...)
	steps := run(t, runner.Request{Algorithm: runner.Dijkstra, Graph: g, Source: "A"})

	assert.Equal(t, []string{
		"Initialize Dijkstra from A: distance A = 0, every other node = ∞.",
		"Select node A with the smallest distance 0 and mark it done.",
		"Update the neighbors of A: B: ∞ → 1 (edge weight 1), C: ∞ → 5 (edge weight 5).",
		"Select node B with the smallest distance 1 and mark it done.",
		"Update the neighbors of B: C: 5 → 3 (edge weight 2).",
		"Select node C with the smallest distance 3 and mark it done.",
		"Dijkstra from A complete: shortest distances to every reachable node.",
	}, descriptions(steps))

	assert.Equal(t, map[string]string{"A": "0", "B": "∞", "C": "∞"}, steps[0].NodeLabels)

	relaxA := steps[2]
	assert.Equal(t, map[string]string{"A": "0", "B": "1", "C": "5"}, relaxA.NodeLabels)
	assert.Equal(t, colors{"A": green, "B": orange, "C": orange}, relaxA.HighlightNodes)
	assert.Equal(t, colors{"e1": orange, "e3": orange}, relaxA.HighlightEdges)
	assert.Equal(t, map[string]string{"e1": "1", "e3": "5"}, relaxA.EdgeLabels)

	settleC := steps[5]
	assert.Equal(t, colors{"A": blue, "B": blue, "C": green}, settleC.HighlightNodes)
	assert.Equal(t, colors{"e2": green}, settleC.HighlightEdges)
	assert.Nil(t, settleC.EdgeLabels, "weight labels are per frame")

	final := last(steps)
	assert.Equal(t, map[string]string{"A": "0", "B": "1", "C": "3"}, final.NodeLabels)
	assert.Equal(t, colors{"A": green, "B": green, "C": green}, final.HighlightNodes)
	assert.Equal(t, colors{"e1": green, "e2": green}, final.HighlightEdges)
}

func TestDijkstra_TargetPath(t *testing.T) {
	g := graph(false, []string{"A", "B", "C"}, triangle()...)
	steps := run(t, runner.Request{Algorithm: runner.Dijkstra, Graph: g, Source: "A", Target: "C"})

	require.Len(t, steps, 7)
	final := last(steps)
	assert.Equal(t, "Shortest path from A to C: A → B → C, total length 3.", final.Description)
	assert.Equal(t, colors{"A": green, "B": green, "C": green}, final.HighlightNodes)
	assert.Equal(t, colors{"e1": green, "e2": green}, final.HighlightEdges)
}

func TestDijkstra_UnreachableTargetAndNegativeWeight(t *testing.T) {
	g := graph(true, []string{"A", "B", "C"}, edge{"e1", "A", "B", 1})
	steps := run(t, runner.Request{Algorithm: runner.Dijkstra, Graph: g, Source: "A", Target: "C"})
	final := last(steps)
	assert.Equal(t, "No path from A to C. The graph may be disconnected.", final.Description)
	assert.Equal(t, colors{"C": red}, final.HighlightNodes)
	assert.Equal(t, "∞", final.NodeLabels["C"])

	g = graph(true, []string{"A", "B"}, edge{"e1", "A", "B", -1})
	steps = run(t, runner.Request{Algorithm: runner.Dijkstra, Graph: g})
	require.Len(t, steps, 1)
	assert.Contains(t, steps[0].Description, "negative weight -1")
	assert.Equal(t, colors{"e1": red}, steps[0].HighlightEdges)
}

func TestBellmanFord_Frames(t *testing.T) {
	g := graph(true, []string{"A", "B", "C"},
		edge{"e1", "A", "B", 4}, edge{"e2", "A", "C", 2}, edge{"e3", "C", "B", -1})
	steps := run(t, runner.Request{Algorithm: runner.BellmanFord, Graph: g, Source: "A"})

	assert.Equal(t, []string{
		"Initialize: distance A = 0, every other node = ∞.",
		"Pass 1 / 2.",
		"Update B: ∞ → 4 (via A, weight 4).",
		"Update C: ∞ → 2 (via A, weight 2).",
		"Update B: 4 → 1 (via C, weight -1).",
		"Pass 2 / 2.",
		"No distance changed. The algorithm converged early.",
		"Done. Shortest distances from A to every node are computed.",
	}, descriptions(steps))

	assert.Equal(t, colors{"A": green}, steps[0].HighlightNodes)
	assert.Equal(t, colors{"C": blue, "B": green}, steps[4].HighlightNodes)
	assert.Equal(t, colors{"e3": green}, steps[4].HighlightEdges)
	assert.Equal(t, map[string]string{"A": "0", "B": "1", "C": "2"}, last(steps).NodeLabels)
	assert.Equal(t, colors{"A": green, "B": green, "C": green}, last(steps).HighlightNodes)
}

func TestBellmanFord_NegativeCycleAndNoPath(t *testing.T) {
	g := graph(true, []string{"A", "B"}, edge{"e1", "A", "B", 1}, edge{"e2", "B", "A", -2})
	final := last(run(t, runner.Request{Algorithm: runner.BellmanFord, Graph: g, Source: "A"}))
	assert.Contains(t, final.Description, "Negative cycle detected at edge (A → B)")
	assert.Equal(t, colors{"A": red, "B": red}, final.HighlightNodes)
	assert.Equal(t, colors{"e1": red}, final.HighlightEdges)

	g = graph(true, []string{"A", "B", "C"}, edge{"e1", "A", "B", 1})
	final = last(run(t, runner.Request{Algorithm: runner.BellmanFord, Graph: g, Source: "A", Target: "C"}))
	assert.Equal(t, "No path from A to C.", final.Description)
	assert.Equal(t, colors{"A": green, "C": red}, final.HighlightNodes)
}

func TestPrim_Frames(t *testing.T) {
	g := graph(false, []string{"A", "B", "C"}, triangle()...)
	steps := run(t, runner.Request{Algorithm: runner.Prim, Graph: g, StartNode: "A"})

	assert.Equal(t, []string{
		"Start Prim from node A and push its edges into the priority queue.",
		"Add edge (A, B) with weight 1 to the tree. Running total: 1.",
		"Add edge (B, C) with weight 2 to the tree. Running total: 3.",
		"Prim complete. Minimum spanning tree weight: 3.",
	}, descriptions(steps))

	assert.Equal(t, colors{"A": green, "B": blue}, steps[1].HighlightNodes)
	assert.Equal(t, colors{"e1": orange}, steps[1].HighlightEdges)
	assert.Equal(t, map[string]string{"e1": "1"}, steps[1].EdgeLabels)
	assert.Equal(t, colors{"e1": green, "e2": orange}, steps[2].HighlightEdges)
	assert.Equal(t, colors{"e1": green, "e2": green}, last(steps).HighlightEdges)
}

func TestPrim_DirectedAndDisconnected(t *testing.T) {
	g := graph(true, []string{"A", "B"}, edge{"e1", "A", "B", 1})
	steps := run(t, runner.Request{Algorithm: runner.Prim, Graph: g})
	require.Len(t, steps, 1)
	assert.Contains(t, steps[0].Description, "undirected")

	g = graph(false, []string{"A", "B", "C"}, edge{"e1", "A", "B", 1})
	final := last(run(t, runner.Request{Algorithm: runner.Prim, Graph: g}))
	assert.Contains(t, final.Description, "disconnected")
	assert.Equal(t, colors{"C": red}, final.HighlightNodes)
	assert.Equal(t, colors{"e1": green}, final.HighlightEdges)
}

func TestKruskal_Frames(t *testing.T) {
	g := graph(false, []string{"A", "B", "C"},
		edge{"e1", "A", "B", 1}, edge{"e2", "A", "B", 2}, edge{"e3", "B", "C", 3})
	steps := run(t, runner.Request{Algorithm: runner.Kruskal, Graph: g})

	assert.Equal(t, []string{
		"Sort the edges by increasing weight: (A, B)=1, (A, B)=2, (B, C)=3.",
		"Consider edge (A, B) with weight 1.",
		"Accept edge (A, B): it joins two components. Running total: 1.",
		"Consider edge (A, B) with weight 2.",
		"Skip edge (A, B): it would close a cycle.",
		"Consider edge (B, C) with weight 3.",
		"Accept edge (B, C): it joins two components. Running total: 4.",
		"Kruskal complete. Minimum spanning tree weight: 4.",
	}, descriptions(steps))

	rejected := steps[4]
	assert.Equal(t, colors{"A": red, "B": red}, rejected.HighlightNodes)
	assert.Equal(t, colors{"e1": green, "e2": red}, rejected.HighlightEdges)
	assert.Equal(t, colors{"e1": green, "e3": green}, last(steps).HighlightEdges)
}

func TestFordFulkerson_Frames(t *testing.T) {
	g := graph(true, []string{"s", "a", "b", "t"},
		edge{"e1", "s", "a", 2}, edge{"e2", "a", "t", 2}, edge{"e3", "s", "b", 2}, edge{"e4", "b", "t", 2})
	steps := run(t, runner.Request{Algorithm: runner.FordFulkerson, Graph: g, Source: "s"})

	assert.Equal(t, []string{
		"Find the maximum flow from s to t. Every edge starts with flow 0.",
		"Augmenting path s → a → t carries 2. Total flow: 2.",
		"Augmenting path s → b → t carries 2. Total flow: 4.",
		"Maximum flow from s to t: 4. Green nodes are still reachable from s; the red edges form a minimum cut.",
	}, descriptions(steps))

	assert.Equal(t, map[string]string{"e1": "0/2", "e2": "0/2", "e3": "0/2", "e4": "0/2"}, steps[0].EdgeLabels)
	assert.Equal(t, map[string]string{"e1": "2/2", "e2": "2/2", "e3": "0/2", "e4": "0/2"}, steps[1].EdgeLabels)
	assert.Equal(t, colors{"s": orange, "a": orange, "t": orange}, steps[1].HighlightNodes)

	final := last(steps)
	assert.Equal(t, colors{"s": green}, final.HighlightNodes)
	assert.Equal(t, colors{"e1": red, "e2": green, "e3": red, "e4": green}, final.HighlightEdges)
	assert.Equal(t, "2/2", final.EdgeLabels["e4"])
}

func TestFordFulkerson_NegativeCapacity(t *testing.T) {
	g := graph(true, []string{"s", "t"}, edge{"e1", "s", "t", -3})
	steps := run(t, runner.Request{Algorithm: runner.FordFulkerson, Graph: g})
	final := last(steps)
	assert.Contains(t, final.Description, "negative capacity -3")
	assert.Equal(t, colors{"e1": red}, final.HighlightEdges)
}

func TestHierholzer_Circuit(t *testing.T) {
	g := graph(false, []string{"A", "B", "C"},
		edge{"e1", "A", "B", 1}, edge{"e2", "B", "C", 1}, edge{"e3", "C", "A", 1})
	steps := run(t, runner.Request{Algorithm: runner.Hierholzer, Graph: g})

	assert.Equal(t, []string{
		"Start Hierholzer's circuit from node A.",
		"Walk A → B along an unused edge.",
		"Walk B → C along an unused edge.",
		"Walk C → A along an unused edge.",
		"Node A has no unused edges left; add it to the tour.",
		"Node C has no unused edges left; add it to the tour.",
		"Node B has no unused edges left; add it to the tour.",
		"Node A has no unused edges left; add it to the tour.",
		"Eulerian circuit found: A → B → C → A.",
	}, descriptions(steps))

	assert.Equal(t, colors{"e1": orange, "e2": orange}, steps[2].HighlightEdges)
	final := last(steps)
	assert.Equal(t, map[string]string{"e1": "1", "e2": "2", "e3": "3"}, final.EdgeLabels)
	assert.Equal(t, colors{"e1": green, "e2": green, "e3": green}, final.HighlightEdges)
}

func TestHierholzer_InvalidStartAndNotEulerian(t *testing.T) {
	g := graph(false, []string{"A", "B", "C"}, edge{"e1", "A", "B", 1}, edge{"e2", "B", "C", 1})
	steps := run(t, runner.Request{Algorithm: runner.Hierholzer, Graph: g, StartNode: "B"})
	assert.Equal(t, "Node B cannot start an Eulerian trail; starting from A instead.", steps[0].Description)
	assert.Equal(t, "Eulerian trail found: A → B → C.", last(steps).Description)

	g = graph(false, []string{"A", "B", "C", "D"},
		edge{"e1", "A", "B", 1}, edge{"e2", "B", "C", 1}, edge{"e3", "B", "D", 1})
	steps = run(t, runner.Request{Algorithm: runner.Hierholzer, Graph: g})
	require.Len(t, steps, 1)
	assert.Equal(t, colors{"A": red, "B": red, "C": red, "D": red}, steps[0].HighlightNodes)
}
