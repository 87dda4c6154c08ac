package euler_test

import (
	"fmt"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/euler"
)

// ExampleHierholzer walks the "house" drawing: a square with a roof,
// which has exactly two odd vertices and therefore an Eulerian trail.
func ExampleHierholzer() {
	g := core.NewGraph()
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		_ = g.AddNodeWithID(id, 0, 0, "")
	}
	for _, p := range [][2]string{{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "1"}, {"1", "3"}, {"3", "5"}, {"5", "4"}} {
		_, _ = g.AddEdge(p[0], p[1], 1)
	}

	res, err := euler.Hierholzer(g, "")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Kind, res.Nodes)
	// Output: trail [1 2 3 1 4 3 5 4]
}
