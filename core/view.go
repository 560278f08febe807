// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex and edge IDs.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// InducedSubgraph returns a new Graph induced by keep: the result contains only
// vertices v where keep[v] is true, and all edges whose endpoints are both kept.
// The input graph is not mutated; edge IDs and the ID counter carry over, so
// edges added to the result never collide with copied IDs.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[int]bool) *Graph {
	return g.subgraph(func(id int) bool { return keep[id] })
}
