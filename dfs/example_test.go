package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/dfs"
)

// diamond builds the directed graph
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
func diamond() *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		_ = g.AddNodeWithID(id, 0, 0, "")
	}
	for _, edge := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		_, _ = g.AddEdge(edge.U, edge.V, 0)
	}
	return g
}

// ExampleDFS demonstrates a depth-first traversal on a diamond-shaped graph.
func ExampleDFS() {
	res, err := dfs.DFS(diamond(), "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("discovery:", strings.Join(res.Discovery, " "))
	fmt.Println("post-order:", strings.Join(res.Order, " "))
	// Output:
	// discovery: A B D E F C
	// post-order: E F D B C A
}

// ExampleTopologicalSort orders the same diamond so every edge points forward.
func ExampleTopologicalSort() {
	order, err := dfs.TopologicalSort(diamond())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(order, " "))
	// Output:
	// A C B D F E
}
