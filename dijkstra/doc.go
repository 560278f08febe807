// Package dijkstra computes weighted single-source shortest paths on an
// undirected *core.Graph with non-negative float64 edge weights.
//
// In a galaxy, lane weights are lane lengths, so Dijkstra yields the
// shortest-travel route between two stars.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Options:
//
//   - Source(id)               starting vertex (required).
//   - WithReturnPath()         also return the predecessor map.
//   - WithMaxDistance(d)       do not settle vertices farther than d.
//   - WithInfEdgeThreshold(t)  treat edges of weight ≥ t as walls.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
//	path, err := dijkstra.PathTo(prev, 0, 42)
//
// Errors: ErrNoSource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound,
// ErrNegativeWeight, ErrBadMaxDistance, ErrBadInfThreshold, ErrUnreachable.
package dijkstra
