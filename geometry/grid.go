// File: grid.go
// Role: Uniform-cell spatial hash over integer-identified points.
// Determinism:
//   - Within a cell, entries keep insertion order; Nearest breaks distance
//     ties by the smaller ID.
// Concurrency:
//   - Not safe for concurrent mutation; concurrent readers are fine.

package geometry

import "math"

type cellKey struct{ cx, cy int }

type gridEntry struct {
	p  Point
	id int
}

// Grid buckets points into square cells of a fixed size.
type Grid struct {
	cells      map[cellKey][]gridEntry
	cell       float64
	minC, maxC cellKey
	n          int
}

// NewGrid returns an empty Grid with the given cell size.
// Non-positive sizes fall back to 1.
func NewGrid(cell float64) *Grid {
	if !(cell > 0) {
		cell = 1
	}

	return &Grid{cell: cell, cells: make(map[cellKey][]gridEntry)}
}

// Len returns the number of inserted points.
func (g *Grid) Len() int { return g.n }

func (g *Grid) key(p Point) cellKey {
	return cellKey{cx: int(math.Floor(p.X / g.cell)), cy: int(math.Floor(p.Y / g.cell))}
}

// Insert adds point p under id. Duplicate IDs are not detected.
func (g *Grid) Insert(id int, p Point) {
	k := g.key(p)
	if g.n == 0 {
		g.minC, g.maxC = k, k
	} else {
		g.minC.cx, g.minC.cy = min(g.minC.cx, k.cx), min(g.minC.cy, k.cy)
		g.maxC.cx, g.maxC.cy = max(g.maxC.cx, k.cx), max(g.maxC.cy, k.cy)
	}
	g.cells[k] = append(g.cells[k], gridEntry{id: id, p: p})
	g.n++
}

// Remove deletes the entry for id at p. It reports whether it was found.
func (g *Grid) Remove(id int, p Point) bool {
	k := g.key(p)
	bucket := g.cells[k]
	for i, e := range bucket {
		if e.id != id {
			continue
		}
		bucket = append(bucket[:i], bucket[i+1:]...)
		if len(bucket) == 0 {
			delete(g.cells, k)
		} else {
			g.cells[k] = bucket
		}
		g.n--

		return true
	}

	return false
}

// AnyWithin reports whether some point lies strictly closer than r to p.
func (g *Grid) AnyWithin(p Point, r float64) bool {
	found := false
	g.Within(p, r, func(int, Point) bool {
		found = true
		return false
	})

	return found
}

// Within calls fn for every point strictly closer than r to p, in cell scan
// order, until fn returns false.
func (g *Grid) Within(p Point, r float64, fn func(id int, q Point) bool) {
	if g.n == 0 || r <= 0 {
		return
	}
	r2 := r * r
	lo := g.key(Point{X: p.X - r, Y: p.Y - r})
	hi := g.key(Point{X: p.X + r, Y: p.Y + r})
	for cy := lo.cy; cy <= hi.cy; cy++ {
		for cx := lo.cx; cx <= hi.cx; cx++ {
			for _, e := range g.cells[cellKey{cx: cx, cy: cy}] {
				if Dist2(p, e.p) < r2 && !fn(e.id, e.p) {
					return
				}
			}
		}
	}
}

// InBox calls fn for every point p with |p.X-c.X| ≤ hx and |p.Y-c.Y| ≤ hy,
// until fn returns false.
func (g *Grid) InBox(c Point, hx, hy float64, fn func(id int, q Point) bool) {
	if g.n == 0 || hx < 0 || hy < 0 {
		return
	}
	lo := g.key(Point{X: c.X - hx, Y: c.Y - hy})
	hi := g.key(Point{X: c.X + hx, Y: c.Y + hy})
	for cy := lo.cy; cy <= hi.cy; cy++ {
		for cx := lo.cx; cx <= hi.cx; cx++ {
			for _, e := range g.cells[cellKey{cx: cx, cy: cy}] {
				if math.Abs(e.p.X-c.X) <= hx && math.Abs(e.p.Y-c.Y) <= hy && !fn(e.id, e.p) {
					return
				}
			}
		}
	}
}

// Nearest returns the closest point to p whose id passes accept (nil accepts
// all) and that lies within maxDist. ok is false when there is none.
//
// Complexity: O(k) over visited cells; rings stop once the best candidate is
// closer than anything the next ring could hold.
func (g *Grid) Nearest(p Point, maxDist float64, accept func(id int) bool) (id int, dist float64, ok bool) {
	if g.n == 0 {
		return 0, 0, false
	}
	best, bestD2 := -1, math.Inf(1)
	limit2 := maxDist * maxDist
	c := g.key(p)

	maxRing := max(
		abs(c.cx-g.minC.cx), abs(c.cx-g.maxC.cx),
		abs(c.cy-g.minC.cy), abs(c.cy-g.maxC.cy),
	)
	for ring := 0; ring <= maxRing; ring++ {
		// Anything in this ring or beyond is at least (ring-1)*cell away.
		if inner := float64(ring-1) * g.cell; ring > 0 && inner*inner > math.Min(bestD2, limit2) {
			break
		}
		g.ring(c, ring, func(e gridEntry) {
			if accept != nil && !accept(e.id) {
				return
			}
			d2 := Dist2(p, e.p)
			if d2 > limit2 {
				return
			}
			if d2 < bestD2 || (d2 == bestD2 && e.id < best) {
				best, bestD2 = e.id, d2
			}
		})
	}
	if best < 0 {
		return 0, 0, false
	}

	return best, math.Sqrt(bestD2), true
}

// ring visits every entry in cells at Chebyshev distance k from c.
func (g *Grid) ring(c cellKey, k int, fn func(gridEntry)) {
	visit := func(cx, cy int) {
		for _, e := range g.cells[cellKey{cx: cx, cy: cy}] {
			fn(e)
		}
	}
	if k == 0 {
		visit(c.cx, c.cy)
		return
	}
	for dx := -k; dx <= k; dx++ {
		visit(c.cx+dx, c.cy-k)
		visit(c.cx+dx, c.cy+k)
	}
	for dy := -k + 1; dy <= k-1; dy++ {
		visit(c.cx-k, c.cy+dy)
		visit(c.cx+k, c.cy+dy)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
