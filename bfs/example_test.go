package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/core"
)

// ExampleBFS walks a small friendship network level by level.
func ExampleBFS() {
	g := core.NewGraph()
	for id, name := range []string{"Ali", "Ayse", "Can", "Deniz", "Ece"} {
		g.AddNode(core.Node{ID: id + 1, Name: name, Aktiflik: 0.5})
	}
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)

	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order:", res.Order)
	path, _ := res.PathTo(5)
	fmt.Println("fewest hops to 5:", path, "depth", res.Depth[5])

	// Output:
	// order: [1 2 3 4 5]
	// fewest hops to 5: [1 2 4 5] depth 3
}
