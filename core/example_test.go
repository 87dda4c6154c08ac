package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphstudio/core"
)

// ExampleGraph_AddEdge shows that parallel edges and self-loops are kept.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	a := g.AddNode(0, 0)
	b := g.AddNode(100, 0)

	e1, _ := g.AddEdge(a, b, 5)
	e2, _ := g.AddEdge(a, b, 7)
	loop, _ := g.AddEdge(b, b, 1)

	fmt.Println(e1, e2, loop, g.EdgeCount())
	// Output: e1-2-1 e1-2-2 e2-2-3 3
}

// ExampleGraph_SetDirected shows the directedness lock.
func ExampleGraph_SetDirected() {
	g := core.NewGraph()
	fmt.Println(g.SetDirected(true))

	a := g.AddNode(0, 0)
	b := g.AddNode(10, 0)
	_, _ = g.AddEdge(a, b, 1)

	err := g.SetDirected(false)
	fmt.Println(errors.Is(err, core.ErrDirectednessLocked), g.Directed())
	// Output:
	// <nil>
	// true true
}

// ExampleGraph_MoveNodes drags both endpoints of a bent edge.
func ExampleGraph_MoveNodes() {
	g := core.NewGraph()
	a := g.AddNode(0, 0)
	b := g.AddNode(100, 0)
	eid, _ := g.AddEdge(a, b, 1)
	g.SetEdgeControlPoint(eid, &core.Point{X: 50, Y: 40})

	g.MoveNodes([]core.NodeDelta{{ID: a, DX: 10, DY: 0}, {ID: b, DX: 30, DY: 20}})

	e, _ := g.Edge(eid)
	fmt.Printf("%.0f,%.0f\n", e.ControlPoint.X, e.ControlPoint.Y)
	// Output: 70,50
}
