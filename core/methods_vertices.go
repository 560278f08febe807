// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Mutations take the write lock, queries the read lock.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
// Returns ErrInvalidVertexID for a negative id.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrInvalidVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex registers id. Caller holds the write lock.
func (g *Graph) ensureVertex(id int) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[int]int64)
	}
}

// HasVertex reports whether the vertex ID exists (negative ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// RemoveVertex deletes the vertex and all incident edges from the graph.
// Returns ErrInvalidVertexID for a negative id and ErrVertexNotFound if absent.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id int) error {
	if id < 0 {
		return ErrInvalidVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, exists := g.adjacency[id]
	if !exists {
		return ErrVertexNotFound
	}
	for to, eid := range nbrs {
		delete(g.adjacency[to], id)
		delete(g.edges, eid)
	}
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of edges incident to id.
// Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}
