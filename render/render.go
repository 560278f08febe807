// Package render draws galaxies and in-progress generation snapshots as SVG.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/eointolster/VoroniGalaxy/galaxy"
	"github.com/eointolster/VoroniGalaxy/geometry"
	"github.com/eointolster/VoroniGalaxy/star"
)

const (
	backgroundStyle = "fill:rgb(0,0,0)"
	laneStyle       = "stroke:rgb(50,50,50);stroke-width:1"
	fallbackColor   = "#ffffff"
	fallbackSize    = 2
)

// Dot is a star to draw.
type Dot struct {
	Category star.Category
	Pos      geometry.Point
}

// Snapshot is everything needed to draw a map.
type Snapshot struct {
	Stars  []Dot
	Lanes  [][2]geometry.Point
	Width  float64
	Height float64
}

// FromGalaxy snapshots a finished galaxy.
func FromGalaxy(g *galaxy.Galaxy) Snapshot {
	s := Snapshot{
		Width:  g.Width,
		Height: g.Height,
		Stars:  make([]Dot, len(g.Stars)),
		Lanes:  make([][2]geometry.Point, 0, len(g.Lanes)),
	}
	for i, st := range g.Stars {
		s.Stars[i] = Dot{Pos: st.Pos, Category: st.Category}
	}
	for _, l := range g.Lanes {
		if l.Start < 0 || l.Start >= len(g.Stars) || l.End < 0 || l.End >= len(g.Stars) {
			continue
		}
		s.Lanes = append(s.Lanes, [2]geometry.Point{g.Stars[l.Start].Pos, g.Stars[l.End].Pos})
	}
	s.fitBounds()

	return s
}

// FromWorkspace snapshots a galaxy under construction.
func FromWorkspace(w *galaxy.Workspace, width, height float64) Snapshot {
	nodes := w.Nodes()
	s := Snapshot{Width: width, Height: height, Stars: make([]Dot, len(nodes))}
	for i, n := range nodes {
		s.Stars[i] = Dot{Pos: n.Pos, Category: n.Category}
	}
	for _, l := range w.Lanes() {
		s.Lanes = append(s.Lanes, [2]geometry.Point{w.Node(l.A).Pos, w.Node(l.B).Pos})
	}
	s.fitBounds()

	return s
}

// fitBounds sizes a snapshot without a canvas to its stars.
func (s *Snapshot) fitBounds() {
	if s.Width > 0 && s.Height > 0 {
		return
	}
	pts := make([]geometry.Point, len(s.Stars))
	for i, d := range s.Stars {
		pts[i] = d.Pos
	}
	b := geometry.Bounds(pts)
	s.Width, s.Height = math.Max(b.Max.X, 1), math.Max(b.Max.Y, 1)
}

// SVG draws s on a black canvas: lanes first, then stars coloured and
// sized by their row in table. Unknown categories are drawn as small white
// dots.
func SVG(w io.Writer, s Snapshot, table star.Table) error {
	ew := &errWriter{w: w}
	width, height := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))

	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, backgroundStyle)
	canvas.Gid("lanes")
	for _, l := range s.Lanes {
		canvas.Line(px(l[0].X), px(l[0].Y), px(l[1].X), px(l[1].Y), laneStyle)
	}
	canvas.Gend()
	canvas.Gid("stars")
	for _, d := range s.Stars {
		color, size := fallbackColor, fallbackSize
		if spec, err := table.Lookup(d.Category); err == nil {
			if spec.Color != "" {
				color = spec.Color
			}
			size = spec.Size
		}
		canvas.Circle(px(d.Pos.X), px(d.Pos.Y), size, "fill:"+color)
	}
	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("render: write svg: %w", ew.err)
	}

	return nil
}

func px(v float64) int { return int(math.Round(v)) }

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}

	return n, err
}
