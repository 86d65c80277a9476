package core_test

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// ExampleGraph demonstrates node/edge lifecycle and derived weights.
func ExampleGraph() {
	g := core.NewGraph()
	g.AddNode(core.Node{ID: 1, Name: "Ali", Aktiflik: 0.5, Etkilesim: 10})
	g.AddNode(core.Node{ID: 2, Name: "Ayse", Aktiflik: 0.5, Etkilesim: 13})
	g.AddNode(core.Node{ID: 3, Name: "Can", Aktiflik: 0.5, Etkilesim: 13})

	fmt.Println(g.AddEdge(1, 2))
	fmt.Println(g.AddEdge(2, 1))
	fmt.Println(g.AddEdge(3, 3))
	fmt.Printf("w(1,2) = %.1f\n", g.EdgeWeight(1, 2))

	g.RemoveNode(2)
	fmt.Println("neighbors of 1:", g.Neighbors(1))

	// Output:
	// applied
	// exists
	// self_loop
	// w(1,2) = 4.0
	// neighbors of 1: []
}
