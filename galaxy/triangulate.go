package galaxy

import (
	"sort"

	"github.com/eointolster/VoroniGalaxy/delaunay"
	"github.com/eointolster/VoroniGalaxy/geometry"
)

// MinTriangulationPoints is the smallest neighbourhood that gets triangulated.
const MinTriangulationPoints = 4

// Candidate is a proposed lane between two node IDs.
type Candidate struct {
	A, B int
}

// Triangulate proposes candidate lanes for a segment's freshly sampled nodes.
//
// The point set is fresh (in order) followed by every older live node whose
// offset from the segment centre is within factor × the segment's width and
// height, in ID order. Neighbourhoods smaller than MinTriangulationPoints, and
// degenerate ones, propose nothing. Only edges touching a fresh node are
// returned, each once, in triangulation order.
func Triangulate(w *Workspace, fresh []int, seg Segment, factor float64) []Candidate {
	isFresh := make(map[int]bool, len(fresh))
	for _, id := range fresh {
		isFresh[id] = true
	}

	var older []int
	c := seg.Bounds.Center()
	w.Grid().InBox(c, seg.Bounds.Dx()*factor, seg.Bounds.Dy()*factor, func(id int, _ geometry.Point) bool {
		if !isFresh[id] {
			older = append(older, id)
		}
		return true
	})
	sort.Ints(older)

	ids := make([]int, 0, len(fresh)+len(older))
	ids = append(ids, fresh...)
	ids = append(ids, older...)
	if len(ids) < MinTriangulationPoints {
		return nil
	}
	pts := make([]geometry.Point, len(ids))
	for i, id := range ids {
		pts[i] = w.Node(id).Pos
	}

	tris, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil
	}
	var out []Candidate
	for _, e := range delaunay.Edges(tris) {
		a, b := ids[e.U], ids[e.V]
		if isFresh[a] || isFresh[b] {
			out = append(out, Candidate{A: a, B: b})
		}
	}

	return out
}
