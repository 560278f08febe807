// Package delaunay triangulates planar point sets with the Bowyer–Watson
// incremental algorithm.
//
// Triangulate inserts points in slice order into a triangulation seeded by a
// large enclosing super-triangle, re-triangulating the cavity of every
// triangle whose circumcircle strictly contains the new point. Triangles
// touching the super-triangle are discarded at the end.
//
// Determinism: output depends only on input order. Triangles are returned in
// the order the final mesh holds them; Edges lists each undirected edge once,
// in first-seen order, with the smaller index first.
//
// Cocircular input (e.g. the four corners of a square) is split along a
// single diagonal because the in-circle test is strict.
//
// Complexity: O(n·T) where T is the live triangle count (O(n²) worst case).
// Galaxy neighbourhoods are a few hundred points, where this is cheap.
//
// Errors:
//   - ErrTooFewPoints  fewer than 3 distinct points.
//   - ErrDegenerate    every point is collinear; no triangle exists.
package delaunay
