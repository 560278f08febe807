package delaunay

import (
	"errors"
	"math"

	"github.com/eointolster/VoroniGalaxy/geometry"
)

// Sentinel errors.
var (
	ErrTooFewPoints = errors.New("delaunay: need at least 3 distinct points")
	ErrDegenerate   = errors.New("delaunay: points are collinear")
)

// superScale is the super-triangle size as a multiple of the input span.
const superScale = 100

// Triangle holds three indices into the input slice, counter-clockwise.
type Triangle struct {
	A, B, C int
}

// Edge is an undirected edge between two input indices with U < V.
type Edge struct {
	U, V int
}

type halfEdge struct{ a, b int }

// Triangulate returns the Delaunay triangles of pts.
// Exact duplicates of an earlier point are ignored.
func Triangulate(pts []geometry.Point) ([]Triangle, error) {
	n := len(pts)
	if n < 3 {
		return nil, ErrTooFewPoints
	}

	b := geometry.Bounds(pts)
	span := math.Max(b.Dx(), b.Dy())
	if span == 0 {
		return nil, ErrTooFewPoints
	}
	mid := b.Center()
	s := span * superScale

	// verts = input points followed by the super-triangle corners.
	verts := make([]geometry.Point, n, n+3)
	copy(verts, pts)
	verts = append(verts,
		geometry.Pt(mid.X-s, mid.Y-s),
		geometry.Pt(mid.X+s, mid.Y-s),
		geometry.Pt(mid.X, mid.Y+s),
	)
	tris := []Triangle{{A: n, B: n + 1, C: n + 2}}

	seen := make(map[geometry.Point]struct{}, n)
	distinct := 0
	for i, p := range pts {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		distinct++
		tris = insert(verts, tris, i, p)
	}
	if distinct < 3 {
		return nil, ErrTooFewPoints
	}

	out := tris[:0]
	for _, t := range tris {
		if t.A < n && t.B < n && t.C < n {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, ErrDegenerate
	}

	return out, nil
}

// insert adds point i at p and returns the updated triangle list.
//
// Steps:
//  1. Split tris into "bad" (circumcircle strictly contains p) and kept.
//  2. Collect cavity boundary: half-edges of bad triangles not shared by
//     another bad triangle, keeping their counter-clockwise direction.
//  3. Fan new triangles from each boundary half-edge to i.
func insert(verts []geometry.Point, tris []Triangle, i int, p geometry.Point) []Triangle {
	var bad []Triangle
	kept := tris[:0:0]
	for _, t := range tris {
		if inCircumcircle(verts[t.A], verts[t.B], verts[t.C], p) {
			bad = append(bad, t)
		} else {
			kept = append(kept, t)
		}
	}
	if len(bad) == 0 {
		// p sits on every nearby circumcircle boundary; fall back to the
		// triangle that contains it so the point is not lost.
		for j, t := range kept {
			if contains(verts, t, p) {
				bad = append(bad, t)
				kept = append(kept[:j], kept[j+1:]...)
				break
			}
		}
	}

	count := make(map[Edge]int, 3*len(bad))
	for _, t := range bad {
		count[undirected(t.A, t.B)]++
		count[undirected(t.B, t.C)]++
		count[undirected(t.C, t.A)]++
	}
	for _, t := range bad {
		for _, h := range [3]halfEdge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			if count[undirected(h.a, h.b)] == 1 {
				kept = append(kept, Triangle{A: h.a, B: h.b, C: i})
			}
		}
	}

	return kept
}

// inCircumcircle reports whether d lies strictly inside the circumcircle of
// the counter-clockwise triangle abc.
func inCircumcircle(a, b, c, d geometry.Point) bool {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	det := (adx*adx+ady*ady)*(bdx*cdy-cdx*bdy) +
		(bdx*bdx+bdy*bdy)*(cdx*ady-adx*cdy) +
		(cdx*cdx+cdy*cdy)*(adx*bdy-bdx*ady)

	return det > 0
}

// contains reports whether p lies inside or on triangle t.
func contains(verts []geometry.Point, t Triangle, p geometry.Point) bool {
	a, b, c := verts[t.A], verts[t.B], verts[t.C]

	return geometry.Orientation(a, b, p) >= 0 &&
		geometry.Orientation(b, c, p) >= 0 &&
		geometry.Orientation(c, a, p) >= 0
}

func undirected(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Edges lists the unique undirected edges of tris in first-seen order.
func Edges(tris []Triangle) []Edge {
	seen := make(map[Edge]struct{}, 3*len(tris))
	out := make([]Edge, 0, 3*len(tris)/2+3)
	for _, t := range tris {
		for _, e := range [3]Edge{undirected(t.A, t.B), undirected(t.B, t.C), undirected(t.C, t.A)} {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}

	return out
}
