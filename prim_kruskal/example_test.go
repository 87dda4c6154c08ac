package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on a triangle graph.
// The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddNodeWithID(id, 0, 0, "")
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 4)

	res, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", res.Total)
	for _, e := range res.Edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim demonstrates Prim’s algorithm on a pentagon A–B(1), B–C(2),
// C–D(3), D–E(5), A–E(12). The MST drops A–E, total 11.
func ExamplePrim() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		_ = g.AddNodeWithID(id, 0, 0, "")
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "E", 12)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 3)
	_, _ = g.AddEdge("D", "E", 5)

	res, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Total, res.Spanned)
	// Output: 11 [A B C D E]
}
