// Package prim_kruskal computes minimum spanning trees and forests on an
// undirected, weighted *core.Graph with Prim's and Kruskal's algorithms.
//
// A galaxy's lane backbone is its MST: every star reachable, total lane
// length minimal. Extra lanes are layered on top of it by the caller.
//
// Algorithms Provided
//
//   - Kruskal(g) / KruskalForest(g)
//     Stable sort of edges by weight, then union-find. Equal weights keep
//     graph.Edges() order, i.e. edge discovery order.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g, root) / PrimForest(g)
//     Min-heap expansion from a root; ties broken by edge ID.
//     Time O(E log V), space O(V + E).
//
//   - Compute(g, opts...) dispatches on WithMethod, WithRoot and WithForest.
//
// The tree variants fail with ErrDisconnected when no spanning tree exists.
// The forest variants return one tree per component instead.
//
// Error Conditions
//
//   - ErrInvalidGraph       graph is nil or unweighted.
//   - ErrInvalidRoot        Prim root is negative.
//   - core.ErrVertexNotFound Prim root is absent.
//   - ErrDisconnected       |V| == 0, or |V| > 1 and not connected (tree variants).
//   - ErrUnknownMethod      Compute got an unknown Method.
package prim_kruskal
