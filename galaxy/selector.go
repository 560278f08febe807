package galaxy

import (
	"math"
	"math/rand"

	"github.com/eointolster/VoroniGalaxy/geometry"
)

// Selection tallies the outcome of SelectLanes.
type Selection struct {
	Accepted  int
	TooLong   int
	AtCap     int
	Declined  int
	Duplicate int
}

// SelectLanes filters candidates and adds the accepted ones as lanes.
//
// A candidate is rejected if it is longer than the maximum distance or if
// either endpoint already has as many lanes as its category allows.
// Otherwise it is accepted with probability
// min(capA, capB) / cfg.Acceptance(). Degrees update immediately, so later
// candidates in the same call see the new counts.
func SelectLanes(w *Workspace, cands []Candidate, r *rand.Rand, cfg Config) (Selection, error) {
	var sel Selection
	maxDist := cfg.MaxDistance()
	divisor := cfg.Acceptance()
	for _, c := range cands {
		if w.HasLane(c.A, c.B) {
			sel.Duplicate++
			continue
		}
		a, b := w.Node(c.A), w.Node(c.B)
		if geometry.Dist(a.Pos, b.Pos) > maxDist {
			sel.TooLong++
			continue
		}
		capA := cfg.Categories.MaxLanes(a.Category)
		capB := cfg.Categories.MaxLanes(b.Category)
		if w.Degree(c.A) >= capA || w.Degree(c.B) >= capB {
			sel.AtCap++
			continue
		}
		keep := math.Min(float64(capA), float64(capB)) / divisor
		if r.Float64() >= keep {
			sel.Declined++
			continue
		}
		ok, err := w.AddLane(c.A, c.B)
		if err != nil {
			return sel, err
		}
		if ok {
			sel.Accepted++
		}
	}

	return sel, nil
}
