// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeBetween/Edges/EdgeCount/
//       FilterEdges, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc, i.e. insertion order.
//   - nextEdgeID() is monotonic and stable (1, 2, 3, …).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"math"
	"sort"
	"sync/atomic"
)

// AddEdge creates a new undirected edge between from and to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Lock, reject a second edge between the pair.
//  3. Ensure endpoints, generate eid atomically, store the Edge, link both ways.
//
// Returns ErrInvalidVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) (int64, error) {
	if from < 0 || to < 0 {
		return 0, ErrInvalidVertexID
	}
	if math.IsNaN(weight) || weight < 0 || (!g.weighted && weight != 0) {
		return 0, ErrBadWeight
	}
	if from == to {
		return 0, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return 0, ErrMultiEdgeNotAllowed
	}
	g.ensureVertex(from)
	g.ensureVertex(to)

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports true if an edge connects from and to.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// EdgeBetween returns the edge connecting from and to, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Edges returns all edges sorted by ID (insertion order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// FilterEdges removes every edge for which keep returns false and reports how
// many edges were removed. Vertices are never removed.
//
// Complexity: O(E).
func (g *Graph) FilterEdges(keep func(*Edge) bool) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for eid, e := range g.edges {
		if keep(e) {
			continue
		}
		delete(g.edges, eid)
		delete(g.adjacency[e.From], e.To)
		delete(g.adjacency[e.To], e.From)
		removed++
	}

	return removed
}

// nextEdgeID returns the next monotonic edge identifier.
// Must be called under the write lock.
func nextEdgeID(g *Graph) int64 {
	return atomic.AddInt64(&g.nextEdgeID, 1)
}
