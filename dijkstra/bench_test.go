package dijkstra_test

import (
	"testing"

	"github.com/eointolster/VoroniGalaxy/core"
	"github.com/eointolster/VoroniGalaxy/dijkstra"
)

// BenchmarkDijkstra_Grid runs Dijkstra across a 60×60 lattice of unit lanes.
func BenchmarkDijkstra_Grid(b *testing.B) {
	const side = 60
	g := core.NewGraph(core.WithWeighted())
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			id := r*side + c
			if c+1 < side {
				_, _ = g.AddEdge(id, id+1, 1)
			}
			if r+1 < side {
				_, _ = g.AddEdge(id, id+side, 1)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, dijkstra.Source(0))
	}
}
