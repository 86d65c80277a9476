package centrality_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/core"
)

// ExampleDegree lists the best-connected users.
func ExampleDegree() {
	g := core.NewGraph()
	for i, name := range []string{"Ali", "Ayse", "Can", "Deniz"} {
		g.AddNode(core.Node{ID: i + 1, Name: name, Aktiflik: 0.5})
	}
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(2, 4)

	for _, r := range centrality.Degree(g, centrality.WithTopK(2)) {
		fmt.Println(r.Name, r.Degree)
	}

	top, _ := centrality.Betweenness(context.Background(), g, centrality.WithTopK(1))
	fmt.Println("broker:", top[0].Name, top[0].Score)

	// Output:
	// Ayse 3
	// Ali 1
	// broker: Ayse 3
}
