package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/dijkstra"
)

// BenchmarkShortestPath_Grid runs corner-to-corner queries on a 40×40 grid.
func BenchmarkShortestPath_Grid(b *testing.B) {
	const side = 40
	g := core.NewGraph(core.WithCapacity(side * side))
	for i := 0; i < side*side; i++ {
		g.AddNode(core.Node{ID: i, Name: "v", Aktiflik: float64(i%7) / 7, Etkilesim: float64(i % 50)})
	}
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			id := r*side + c
			if c+1 < side {
				g.AddEdge(id, id+1)
			}
			if r+1 < side {
				g.AddEdge(id, id+side)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, 0, side*side-1)
	}
}
