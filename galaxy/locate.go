package galaxy

import (
	"fmt"
	"math"

	"github.com/eointolster/VoroniGalaxy/geometry"
)

// Map coordinates are split into LocateCell-sized cells, grouped into
// quadrants of LocateBlock × LocateBlock cells.
const (
	LocateCell  = 100.0
	LocateBlock = 5
)

// Quadrants in row-major order: Alpha and Beta on top, Gamma and Delta below.
var Quadrants = [4]string{"Alpha", "Beta", "Gamma", "Delta"}

// Location names a map position by quadrant and in-quadrant cell.
type Location struct {
	Quadrant string
	CellX    int
	CellY    int
	SegmentX int
	SegmentY int
}

// String formats the location as "Beta Quadrant, Segment (2, 4)".
func (l Location) String() string {
	return fmt.Sprintf("%s Quadrant, Segment (%d, %d)", l.Quadrant, l.SegmentX, l.SegmentY)
}

// Locate maps p to its quadrant and segment. Positions beyond the first two
// blocks on an axis are clamped into the outer quadrant.
func Locate(p geometry.Point) Location {
	cx := int(math.Floor(p.X / LocateCell))
	cy := int(math.Floor(p.Y / LocateCell))
	qx := min(max(floorDiv(cx, LocateBlock), 0), 1)
	qy := min(max(floorDiv(cy, LocateBlock), 0), 1)

	return Location{
		Quadrant: Quadrants[qy*2+qx],
		CellX:    cx,
		CellY:    cy,
		SegmentX: posMod(cx, LocateBlock),
		SegmentY: posMod(cy, LocateBlock),
	}
}

// Locate returns the location of star i.
func (g *Galaxy) Locate(i int) (Location, error) {
	s, err := g.Star(i)
	if err != nil {
		return Location{}, err
	}

	return Locate(s.Pos), nil
}

// Nearest returns the index of the star closest to p and its distance.
// Distance ties go to the lower index.
func (g *Galaxy) Nearest(p geometry.Point) (int, float64, error) {
	if len(g.Stars) == 0 {
		return 0, 0, ErrEmptyGalaxy
	}
	if _, err := g.laneGraph(); err != nil {
		return 0, 0, err
	}
	id, d, ok := g.index.Nearest(p, math.Inf(1), nil)
	if !ok {
		return 0, 0, ErrEmptyGalaxy
	}

	return id, d, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

func posMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}

	return m
}
