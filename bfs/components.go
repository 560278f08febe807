// File: components.go
// Role: Connected-component discovery over an undirected core.Graph.
// Determinism:
//   - Components are discovered by ascending smallest vertex ID; members are
//     listed in BFS visit order from that vertex.

package bfs

import "github.com/eointolster/VoroniGalaxy/core"

// Components partitions g into connected components.
// Isolated vertices form singleton components.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[int]bool, g.VertexCount())
	var comps [][]int
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// Largest returns the index of the largest component in comps.
// On a size tie the earliest component wins. Returns -1 for an empty slice.
func Largest(comps [][]int) int {
	best := -1
	for i, c := range comps {
		if best < 0 || len(c) > len(comps[best]) {
			best = i
		}
	}

	return best
}
