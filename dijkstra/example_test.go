package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dijkstra"
)

// ExampleShortestPath finds the cheapest chain of acquaintances.
func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddNode(core.Node{ID: 1, Name: "Ali", Aktiflik: 0.5, Etkilesim: 10})
	g.AddNode(core.Node{ID: 2, Name: "Ayse", Aktiflik: 0.5, Etkilesim: 10})
	g.AddNode(core.Node{ID: 3, Name: "Can", Aktiflik: 0.5, Etkilesim: 10})
	g.AddNode(core.Node{ID: 4, Name: "Deniz", Aktiflik: 0.5, Etkilesim: 40})
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(1, 4)
	g.AddEdge(4, 3)

	res, err := dijkstra.ShortestPath(g, 1, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("path=%v cost=%.1f\n", res.Path, res.Cost)

	g.RemoveEdge(2, 3)
	g.RemoveEdge(4, 3)
	res, _ = dijkstra.ShortestPath(g, 1, 3)
	fmt.Println("reachable:", res.Reachable(), "cost:", res.Cost)

	// Output:
	// path=[1 2 3] cost=3.0
	// reachable: false cost: +Inf
}
