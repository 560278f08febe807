package galaxy

import "github.com/eointolster/VoroniGalaxy/geometry"

// Segment is one rectangular sampling cell of the row profile.
type Segment struct {
	Bounds geometry.Rect
	Row    int
	Col    int
	Index  int
	Target int
}

// Segments lays out the row profile over the canvas in row-major order.
//
// Every row is Height/len(RowProfile) tall. Segments are Width/VirtualColumns
// wide, and rows narrower than VirtualColumns are centred horizontally. The
// star budget TotalStars is split evenly (integer division) across segments.
func Segments(cfg Config) []Segment {
	rows := len(cfg.RowProfile)
	if rows == 0 || cfg.VirtualColumns <= 0 {
		return nil
	}
	segW := cfg.Width / float64(cfg.VirtualColumns)
	segH := cfg.Height / float64(rows)
	total := cfg.SegmentCount()
	target := 0
	if total > 0 {
		target = cfg.TotalStars / total
	}

	out := make([]Segment, 0, total)
	for row, n := range cfg.RowProfile {
		startX := float64(cfg.VirtualColumns-n) * segW / 2
		y := float64(row) * segH
		for col := 0; col < n; col++ {
			x := startX + float64(col)*segW
			out = append(out, Segment{
				Row:    row,
				Col:    col,
				Index:  len(out),
				Bounds: geometry.R(x, y, x+segW, y+segH),
				Target: target,
			})
		}
	}

	return out
}

// SegmentsAdjacent reports whether a bridge between p and q stays local: both
// points fall in the same size×size cell, or in cells whose indices differ by
// at most one on each axis. Across a differing axis, the bridge is refused when
// both points sit in the half of their cells facing away from each other.
func SegmentsAdjacent(p, q geometry.Point, size float64) bool {
	px, py := cellIndex(p.X, size), cellIndex(p.Y, size)
	qx, qy := cellIndex(q.X, size), cellIndex(q.Y, size)
	dx, dy := qx-px, qy-py
	if dx == 0 && dy == 0 {
		return true
	}
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		return false
	}

	half := size / 2
	if dx != 0 && !halvesAllow(dx, mod(p.X, size), mod(q.X, size), half) {
		return false
	}
	if dy != 0 && !halvesAllow(dy, mod(p.Y, size), mod(q.Y, size), half) {
		return false
	}

	return true
}

// halvesAllow applies the half-cell tie-break along one axis. d is the cell
// step from the first point to the second; a and b are in-cell offsets.
func halvesAllow(d int, a, b, half float64) bool {
	if d > 0 && a > half && b > half {
		return false
	}
	if d < 0 && a < half && b < half {
		return false
	}

	return true
}
