// Package geometry holds the planar primitives used by galaxy generation:
// points and axis-aligned rectangles, Euclidean distance, orientation and a
// strict proper-crossing test for line segments, and Grid, a uniform-cell
// spatial hash answering "anything within r?" and "nearest to p" queries.
//
// All coordinates are float64 canvas units with y growing downwards; nothing
// in this package depends on that orientation.
//
// Complexity:
//   - Dist, Orientation, SegmentsCross: O(1).
//   - Grid.Insert: O(1) amortized.
//   - Grid.AnyWithin: O(k) over points in the (2⌈r/cell⌉+1)² covered cells.
//   - Grid.Nearest: ring search, O(k) over cells until the best candidate is
//     provably closer than the next ring.
package geometry
