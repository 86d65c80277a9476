package astar_test

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/astar"
	"github.com/katalvlaran/socialgraph/core"
)

// ExampleShortestPath routes between users with the activity heuristic.
func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddNode(core.Node{ID: 1, Name: "Ali", Aktiflik: 0.2, Etkilesim: 10})
	g.AddNode(core.Node{ID: 2, Name: "Ayse", Aktiflik: 0.5, Etkilesim: 10})
	g.AddNode(core.Node{ID: 3, Name: "Can", Aktiflik: 0.9, Etkilesim: 10})
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	res, _ := astar.ShortestPath(g, 1, 3)
	fmt.Printf("%v %.2f\n", res.Path, res.Cost)

	// Output:
	// [1 2 3] 3.38
}
