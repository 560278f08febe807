package dijkstra_test

import (
	"fmt"

	"github.com/eointolster/VoroniGalaxy/core"
	"github.com/eointolster/VoroniGalaxy/dijkstra"
)

// ExampleDijkstra prefers two short lanes over one long lane.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 120)
	_, _ = g.AddEdge(1, 2, 130)
	_, _ = g.AddEdge(0, 2, 260)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := dijkstra.PathTo(prev, 0, 2)
	fmt.Printf("%v %.0f\n", path, dist[2])
	// Output: [0 1 2] 250
}
