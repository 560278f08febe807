package geometry_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eointolster/VoroniGalaxy/geometry"
)

func TestDistAndRect(t *testing.T) {
	a, b := geometry.Pt(0, 0), geometry.Pt(3, 4)
	assert.Equal(t, 5.0, geometry.Dist(a, b))
	assert.Equal(t, 25.0, geometry.Dist2(a, b))

	r := geometry.R(10, 20, 30, 60)
	assert.Equal(t, 20.0, r.Dx())
	assert.Equal(t, 40.0, r.Dy())
	assert.Equal(t, geometry.Pt(20, 40), r.Center())
	assert.True(t, r.Contains(geometry.Pt(10, 20)))
	assert.False(t, r.Contains(geometry.Pt(30, 40)), "max edge is open")
	assert.Equal(t, geometry.R(5, 15, 35, 65), r.Inset(5))

	bb := geometry.Bounds([]geometry.Point{{X: 3, Y: -1}, {X: -2, Y: 7}, {X: 0, Y: 0}})
	assert.Equal(t, geometry.R(-2, -1, 3, 7), bb)
	assert.Equal(t, geometry.Rect{}, geometry.Bounds(nil))
}

func TestOrientation(t *testing.T) {
	a, b := geometry.Pt(0, 0), geometry.Pt(1, 0)
	assert.Equal(t, 1, geometry.Orientation(a, b, geometry.Pt(0, 1)))
	assert.Equal(t, -1, geometry.Orientation(a, b, geometry.Pt(0, -1)))
	assert.Equal(t, 0, geometry.Orientation(a, b, geometry.Pt(2, 0)))
}

func TestSegmentsCross(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, q1, q2 geometry.Point
		want           bool
	}{
		{"X shape", geometry.Pt(0, 0), geometry.Pt(2, 2), geometry.Pt(0, 2), geometry.Pt(2, 0), true},
		{"shared endpoint", geometry.Pt(0, 0), geometry.Pt(2, 2), geometry.Pt(2, 2), geometry.Pt(4, 0), false},
		{"T touch", geometry.Pt(0, 0), geometry.Pt(2, 0), geometry.Pt(1, 0), geometry.Pt(1, 3), false},
		{"parallel", geometry.Pt(0, 0), geometry.Pt(2, 0), geometry.Pt(0, 1), geometry.Pt(2, 1), false},
		{"collinear overlap", geometry.Pt(0, 0), geometry.Pt(3, 0), geometry.Pt(1, 0), geometry.Pt(4, 0), false},
		{"disjoint", geometry.Pt(0, 0), geometry.Pt(1, 1), geometry.Pt(3, 0), geometry.Pt(4, 5), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geometry.SegmentsCross(tc.p1, tc.p2, tc.q1, tc.q2))
			assert.Equal(t, tc.want, geometry.SegmentsCross(tc.q1, tc.q2, tc.p1, tc.p2), "symmetric")
		})
	}
}

func TestGrid_Within(t *testing.T) {
	g := geometry.NewGrid(10)
	g.Insert(0, geometry.Pt(0, 0))
	g.Insert(1, geometry.Pt(9, 0))
	g.Insert(2, geometry.Pt(25, 25))
	require.Equal(t, 3, g.Len())

	assert.True(t, g.AnyWithin(geometry.Pt(4, 0), 5))
	assert.False(t, g.AnyWithin(geometry.Pt(4.5, 20), 5))
	assert.False(t, g.AnyWithin(geometry.Pt(5, 0), 4), "distance exactly 4 is not strictly closer")

	var ids []int
	g.Within(geometry.Pt(5, 0), 6, func(id int, _ geometry.Point) bool {
		ids = append(ids, id)
		return true
	})
	assert.ElementsMatch(t, []int{0, 1}, ids)

	require.True(t, g.Remove(1, geometry.Pt(9, 0)))
	assert.False(t, g.Remove(1, geometry.Pt(9, 0)))
	assert.False(t, g.AnyWithin(geometry.Pt(9, 0), 3))
	assert.Equal(t, 2, g.Len())
}

func TestGrid_NearestMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := geometry.NewGrid(17)
	pts := make([]geometry.Point, 400)
	for i := range pts {
		pts[i] = geometry.Pt(r.Float64()*500-100, r.Float64()*300)
		g.Insert(i, pts[i])
	}
	even := func(id int) bool { return id%2 == 0 }

	for q := 0; q < 100; q++ {
		p := geometry.Pt(r.Float64()*700-200, r.Float64()*500-100)
		want, wantD := -1, math.Inf(1)
		for i, s := range pts {
			if d := geometry.Dist(p, s); even(i) && d < wantD {
				want, wantD = i, d
			}
		}
		id, d, ok := g.Nearest(p, math.Inf(1), even)
		require.True(t, ok)
		assert.Equal(t, want, id)
		assert.InDelta(t, wantD, d, 1e-9)
	}
}

func TestGrid_NearestLimits(t *testing.T) {
	g := geometry.NewGrid(5)
	_, _, ok := g.Nearest(geometry.Pt(0, 0), 100, nil)
	assert.False(t, ok, "empty grid")

	g.Insert(3, geometry.Pt(50, 0))
	_, _, ok = g.Nearest(geometry.Pt(0, 0), 49, nil)
	assert.False(t, ok, "beyond maxDist")

	id, d, ok := g.Nearest(geometry.Pt(0, 0), 50, nil)
	require.True(t, ok)
	assert.Equal(t, 3, id)
	assert.Equal(t, 50.0, d)

	_, _, ok = g.Nearest(geometry.Pt(0, 0), 100, func(int) bool { return false })
	assert.False(t, ok, "nothing accepted")
}

func TestGrid_InBox(t *testing.T) {
	g := geometry.NewGrid(4)
	g.Insert(0, geometry.Pt(0, 0))
	g.Insert(1, geometry.Pt(15, 3))
	g.Insert(2, geometry.Pt(15, 3.5))
	g.Insert(3, geometry.Pt(-15, -3))

	var ids []int
	g.InBox(geometry.Pt(0, 0), 15, 3, func(id int, _ geometry.Point) bool {
		ids = append(ids, id)
		return true
	})
	assert.ElementsMatch(t, []int{0, 1, 3}, ids, "box edges are inclusive")
}

func TestSegmentIndex_Crossings(t *testing.T) {
	idx := geometry.NewSegmentIndex(10)
	// Vertical bars at x = 5, 15, 25 spanning y 0..30.
	for _, x := range []float64{5, 15, 25} {
		idx.Insert(geometry.Pt(x, 0), geometry.Pt(x, 30))
	}
	require.Equal(t, 3, idx.Len())

	horizontal := func(y float64) (geometry.Point, geometry.Point) {
		return geometry.Pt(0, y), geometry.Pt(30, y)
	}
	a, b := horizontal(12)
	assert.Equal(t, 3, idx.Crossings(a, b, -1))
	assert.Equal(t, 3, idx.Crossings(a, b, -1), "repeat queries are independent")
	assert.Greater(t, idx.Crossings(a, b, 1), 1, "stops past the limit")

	// Sharing an endpoint or touching is not a crossing.
	assert.Equal(t, 0, idx.Crossings(geometry.Pt(5, 30), geometry.Pt(15, 30), -1))
	assert.Equal(t, 0, idx.Crossings(geometry.Pt(40, 0), geometry.Pt(40, 30), -1))
}
