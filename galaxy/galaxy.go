// File: galaxy.go
// Role: The finished, indexed galaxy and its structural checks.
// Determinism:
//   - Star indices and lane order are fixed at assembly.
// Concurrency:
//   - Read-only after construction; the lane graph used by queries is
//     built once on first use.

package galaxy

import (
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/eointolster/VoroniGalaxy/bfs"
	"github.com/eointolster/VoroniGalaxy/core"
	"github.com/eointolster/VoroniGalaxy/geometry"
	"github.com/eointolster/VoroniGalaxy/star"
)

// lengthTolerance absorbs float noise when stored distances are compared.
const lengthTolerance = 1e-6

// Star is an indexed star of a finished galaxy.
type Star struct {
	Category star.Category  `json:"category"`
	Name     string         `json:"name"`
	Pos      geometry.Point `json:"pos"`
	Index    int            `json:"index"`
	Lanes    int            `json:"lanes"`
}

// LaneDetail is a lane between two star indices.
type LaneDetail struct {
	Start    int     `json:"start_star"`
	End      int     `json:"end_star"`
	Distance float64 `json:"distance"`
}

// Galaxy is the output of generation. Build one with Assemble or decode one
// from storage; always use it through a pointer.
type Galaxy struct {
	ID           uuid.UUID
	BridgePolicy string
	Stars        []Star
	Lanes        []LaneDetail
	Seed         int64
	Width        float64
	Height       float64
	MaxDistance  float64

	graphOnce sync.Once
	graph     *core.Graph
	graphErr  error
	index     *geometry.Grid
}

// StarCount returns the number of stars.
func (g *Galaxy) StarCount() int { return len(g.Stars) }

// Star returns the star at index i.
func (g *Galaxy) Star(i int) (Star, error) {
	if i < 0 || i >= len(g.Stars) {
		return Star{}, fmt.Errorf("%w: index %d of %d", ErrUnknownStar, i, len(g.Stars))
	}

	return g.Stars[i], nil
}

// Check verifies the structural invariants of g: indices match positions,
// lanes reference existing stars once each, stored distances and lane
// counts agree with the geometry, no lane is longer than MaxDistance
// (unless the galaxy was built with BridgeForce) and the lane graph is
// connected. Failures wrap ErrMalformed.
func (g *Galaxy) Check() error {
	if len(g.Stars) == 0 {
		return ErrEmptyGalaxy
	}
	for i, s := range g.Stars {
		if s.Index != i {
			return fmt.Errorf("%w: star %d carries index %d", ErrMalformed, i, s.Index)
		}
	}

	degree := make([]int, len(g.Stars))
	seen := make(map[[2]int]bool, len(g.Lanes))
	for i, l := range g.Lanes {
		if l.Start < 0 || l.Start >= len(g.Stars) || l.End < 0 || l.End >= len(g.Stars) {
			return fmt.Errorf("%w: lane %d references %d-%d", ErrMalformed, i, l.Start, l.End)
		}
		if l.Start == l.End {
			return fmt.Errorf("%w: lane %d is a loop on %d", ErrMalformed, i, l.Start)
		}
		key := [2]int{min(l.Start, l.End), max(l.Start, l.End)}
		if seen[key] {
			return fmt.Errorf("%w: lane %d-%d listed twice", ErrMalformed, l.Start, l.End)
		}
		seen[key] = true

		d := geometry.Dist(g.Stars[l.Start].Pos, g.Stars[l.End].Pos)
		if math.Abs(d-l.Distance) > lengthTolerance {
			return fmt.Errorf("%w: lane %d-%d stores %.6f, geometry gives %.6f", ErrMalformed, l.Start, l.End, l.Distance, d)
		}
		if g.BridgePolicy != BridgeForce && g.MaxDistance > 0 && l.Distance > g.MaxDistance+lengthTolerance {
			return fmt.Errorf("%w: lane %d-%d is %.3f long, limit %.3f", ErrMalformed, l.Start, l.End, l.Distance, g.MaxDistance)
		}
		degree[l.Start]++
		degree[l.End]++
	}
	for i, s := range g.Stars {
		if s.Lanes != degree[i] {
			return fmt.Errorf("%w: star %d records %d lanes, has %d", ErrMalformed, i, s.Lanes, degree[i])
		}
	}

	lg, err := g.laneGraph()
	if err != nil {
		return err
	}
	comps, err := bfs.Components(lg)
	if err != nil {
		return err
	}
	if len(comps) != 1 {
		return fmt.Errorf("%w: %d components", ErrMalformed, len(comps))
	}

	return nil
}

// CheckCategories reports ErrMalformed for the first star whose category is
// not in t.
func (g *Galaxy) CheckCategories(t star.Table) error {
	for i, s := range g.Stars {
		if _, err := t.Lookup(s.Category); err != nil {
			return fmt.Errorf("%w: star %d: %w", ErrMalformed, i, err)
		}
	}

	return nil
}

// Validate runs CheckCategories against t, then Check.
func (g *Galaxy) Validate(t star.Table) error {
	if err := g.CheckCategories(t); err != nil {
		return err
	}

	return g.Check()
}

// laneGraph returns the lane graph keyed by star index.
func (g *Galaxy) laneGraph() (*core.Graph, error) {
	g.graphOnce.Do(func() {
		lg := core.NewGraph(core.WithWeighted())
		cell := g.MaxDistance
		if !(cell > 0) {
			cell = LocateCell
		}
		idx := geometry.NewGrid(cell)
		for i, s := range g.Stars {
			_ = lg.AddVertex(i)
			idx.Insert(i, s.Pos)
		}
		for _, l := range g.Lanes {
			if _, err := lg.AddEdge(l.Start, l.End, l.Distance); err != nil {
				g.graphErr = fmt.Errorf("%w: lane %d-%d: %v", ErrMalformed, l.Start, l.End, err)
				return
			}
		}
		g.graph, g.index = lg, idx
	})

	return g.graph, g.graphErr
}
