package galaxy

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/eointolster/VoroniGalaxy/star"
)

// Assemble freezes the workspace into a Galaxy.
//
// Live nodes get 0-based indices in ID order and a name drawn from r. Lanes
// are listed in discovery order with their endpoints' indices; each star's
// Lanes count is its final degree. Re-running Assemble on the same workspace
// yields the same indices and lanes.
func Assemble(w *Workspace, cfg Config, r *rand.Rand) (*Galaxy, error) {
	nodes := w.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptyGalaxy
	}

	g := &Galaxy{
		ID:           uuid.New(),
		Seed:         cfg.Seed,
		Width:        cfg.Width,
		Height:       cfg.Height,
		MaxDistance:  cfg.MaxDistance(),
		BridgePolicy: cfg.BridgePolicy,
		Stars:        make([]Star, len(nodes)),
	}
	index := make(map[int]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
		g.Stars[i] = Star{
			Index:    i,
			Pos:      n.Pos,
			Category: n.Category,
			Name:     star.Name(r),
			Lanes:    w.Degree(n.ID),
		}
	}

	lanes := w.Lanes()
	g.Lanes = make([]LaneDetail, len(lanes))
	for i, l := range lanes {
		g.Lanes[i] = LaneDetail{Start: index[l.A], End: index[l.B], Distance: l.Length}
	}

	return g, nil
}
