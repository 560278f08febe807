// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbors() is sorted by Edge.ID asc; NeighborIDs() by vertex ID asc.
// Concurrency:
//   - Queries take the read lock.

package core

import "sort"

// Neighbors returns every edge incident to id, sorted by Edge.ID.
// Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(nbrs))
	for _, eid := range nbrs {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the vertex IDs adjacent to id, sorted ascending.
// Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]int, 0, len(nbrs))
	for to := range nbrs {
		ids = append(ids, to)
	}
	sort.Ints(ids)

	return ids, nil
}
