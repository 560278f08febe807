// File: segindex.go
// Role: Bucketed segment index for counting proper crossings.
// Determinism:
//   - Counts do not depend on insertion order.
// Concurrency:
//   - Not safe for concurrent mutation.

package geometry

import "math"

type segment struct{ a, b Point }

// SegmentIndex buckets line segments by the grid cells their bounding boxes
// cover, so a crossing query only tests segments that share a cell.
type SegmentIndex struct {
	cells map[cellKey][]int
	segs  []segment
	stamp []int
	epoch int
	cell  float64
}

// NewSegmentIndex returns an empty index. Non-positive sizes fall back to 1.
func NewSegmentIndex(cell float64) *SegmentIndex {
	if !(cell > 0) {
		cell = 1
	}

	return &SegmentIndex{cell: cell, cells: make(map[cellKey][]int)}
}

// Len returns the number of indexed segments.
func (s *SegmentIndex) Len() int { return len(s.segs) }

// Insert adds segment ab.
func (s *SegmentIndex) Insert(a, b Point) {
	id := len(s.segs)
	s.segs = append(s.segs, segment{a: a, b: b})
	s.stamp = append(s.stamp, 0)
	s.cover(a, b, func(k cellKey) {
		s.cells[k] = append(s.cells[k], id)
	})
}

// Crossings counts indexed segments that properly cross ab. Counting stops
// once the count exceeds limit; a negative limit counts all.
func (s *SegmentIndex) Crossings(a, b Point, limit int) int {
	s.epoch++
	n := 0
	s.cover(a, b, func(k cellKey) {
		if limit >= 0 && n > limit {
			return
		}
		for _, id := range s.cells[k] {
			if s.stamp[id] == s.epoch {
				continue
			}
			s.stamp[id] = s.epoch
			seg := s.segs[id]
			if SegmentsCross(a, b, seg.a, seg.b) {
				n++
			}
		}
	})

	return n
}

func (s *SegmentIndex) cover(a, b Point, fn func(cellKey)) {
	x0 := int(math.Floor(math.Min(a.X, b.X) / s.cell))
	x1 := int(math.Floor(math.Max(a.X, b.X) / s.cell))
	y0 := int(math.Floor(math.Min(a.Y, b.Y) / s.cell))
	y1 := int(math.Floor(math.Max(a.Y, b.Y) / s.cell))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			fn(cellKey{cx: cx, cy: cy})
		}
	}
}
