// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count shortest-path distances, parent links, and visit order,
// plus connected-component discovery built on the same walker.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - OnVisit hook may stop the walk early (e.g. once a target is reached).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Components(g) partitions an undirected graph; Largest picks the biggest.
//
// Edge weights are ignored. A galaxy's lane graph is weighted by lane length,
// but jump counting and connectivity only look at adjacency.
//
// Determinism
//
//	core.NeighborIDs returns neighbors sorted ascending and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	path, err := res.PathTo(42)
//
//	comps, err := bfs.Components(g)
//	main := comps[bfs.Largest(comps)]
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - ErrNoPath               from PathTo when the target was not reached.
//   - Wrapped errors returned by OnVisit, alongside the partial result.
package bfs
