// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so edge IDs stay monotonic on the clone.
// Concurrency:
//   - Read lock on the source; the clone is a fresh instance.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Edge IDs are preserved.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.subgraph(nil)
}

// subgraph copies the vertices passing keep (nil keeps all) and every edge
// whose endpoints both pass, preserving edge IDs and the ID counter.
func (g *Graph) subgraph(keep func(id int) bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.weighted = g.weighted
	atomic.StoreInt64(&out.nextEdgeID, atomic.LoadInt64(&g.nextEdgeID))
	for id := range g.adjacency {
		if keep == nil || keep(id) {
			out.adjacency[id] = make(map[int]int64)
		}
	}
	for eid, e := range g.edges {
		if _, ok := out.adjacency[e.From]; !ok {
			continue
		}
		if _, ok := out.adjacency[e.To]; !ok {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}

	return out
}
