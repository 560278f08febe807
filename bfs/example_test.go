package bfs_test

import (
	"fmt"

	"github.com/eointolster/VoroniGalaxy/bfs"
	"github.com/eointolster/VoroniGalaxy/core"
)

// ExampleBFS_fewestJumps finds the route with the fewest lane jumps between
// two stars, even when a longer-hop route is shorter in distance.
func ExampleBFS_fewestJumps() {
	g := core.NewGraph(core.WithWeighted())
	// 0-1-2-3-6: four short jumps
	_, _ = g.AddEdge(0, 1, 10)
	_, _ = g.AddEdge(1, 2, 10)
	_, _ = g.AddEdge(2, 3, 10)
	_, _ = g.AddEdge(3, 6, 10)
	// 0-4-5-6: three long jumps
	_, _ = g.AddEdge(0, 4, 200)
	_, _ = g.AddEdge(4, 5, 200)
	_, _ = g.AddEdge(5, 6, 200)

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(6)
	fmt.Println(path, res.Depth[6])
	// Output:
	// [0 4 5 6] 3
}

// ExampleComponents lists the connected fragments of a lane graph.
func ExampleComponents() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, _ = g.AddEdge(3, 4, 1)

	comps, _ := bfs.Components(g)
	fmt.Println(comps, "largest:", bfs.Largest(comps))
	// Output:
	// [[0 1] [2 3 4]] largest: 1
}
