// File: refine.go
// Role: Rebuilds the lane set as a spanning-tree backbone plus a bounded
//       number of extra lanes, then strips over-long lanes and reconnects.
// Determinism:
//   - Tree ties follow lane discovery order; non-tree lanes are considered
//     in discovery order; stragglers are reconnected in node ID order.
// Concurrency:
//   - Mutates the workspace; single owner.

package galaxy

import (
	"fmt"

	"github.com/eointolster/VoroniGalaxy/bfs"
	"github.com/eointolster/VoroniGalaxy/core"
	"github.com/eointolster/VoroniGalaxy/geometry"
	"github.com/eointolster/VoroniGalaxy/prim_kruskal"
)

// RefineStats reports what Refine did.
type RefineStats struct {
	TreeLanes  int
	Reinserted int
	Rejected   int
	Stripped   int
	Bridges    int
	Forced     int
	Pruned     int
}

// Refine replaces the workspace lanes with a minimum spanning forest plus
// every other lane that properly crosses at most cfg.MaxCrossings of the
// lanes kept so far. Lanes longer than the maximum distance are then
// stripped, and each star left outside the largest component is bridged to
// its nearest star in that component when one is within range. Anything
// still disconnected is handed to cfg.BridgePolicy.
func Refine(w *Workspace, cfg Config) (RefineStats, error) {
	var st RefineStats
	maxDist := cfg.MaxDistance()
	g := w.Graph()

	tree, _, err := prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(cfg.MSTMethod),
		prim_kruskal.WithForest(),
	)
	if err != nil {
		return st, fmt.Errorf("galaxy: spanning forest: %w", err)
	}
	st.TreeLanes = len(tree)

	keep := make(map[int64]bool, g.EdgeCount())
	crossings := geometry.NewSegmentIndex(maxDist)
	for _, e := range tree {
		keep[e.ID] = true
		crossings.Insert(w.nodes[e.From].Pos, w.nodes[e.To].Pos)
	}
	for _, e := range g.Edges() {
		if keep[e.ID] {
			continue
		}
		a, b := w.nodes[e.From].Pos, w.nodes[e.To].Pos
		if crossings.Crossings(a, b, cfg.MaxCrossings) > cfg.MaxCrossings {
			st.Rejected++
			continue
		}
		keep[e.ID] = true
		crossings.Insert(a, b)
		st.Reinserted++
	}

	out := g.Clone()
	out.FilterEdges(func(e *core.Edge) bool { return keep[e.ID] })
	st.Stripped = out.FilterEdges(func(e *core.Edge) bool { return e.Weight <= maxDist })
	w.replaceLanes(out)

	comps, err := bfs.Components(out)
	if err != nil {
		return st, err
	}
	if len(comps) <= 1 {
		return st, nil
	}
	main := bfs.Largest(comps)
	mainSet := memberSet(comps[main])
	for _, n := range w.Nodes() {
		if mainSet[n.ID] {
			continue
		}
		id, _, ok := w.grid.Nearest(n.Pos, maxDist, func(id int) bool { return mainSet[id] })
		if !ok {
			continue
		}
		added, err := w.AddLane(n.ID, id)
		if err != nil {
			return st, err
		}
		if added {
			st.Bridges++
		}
	}

	for {
		comps, err = w.Components()
		if err != nil {
			return st, err
		}
		if len(comps) <= 1 {
			return st, nil
		}
		forced, pruned, err := w.applyBridgePolicy(cfg.BridgePolicy, comps, bfs.Largest(comps))
		st.Forced += forced
		st.Pruned += pruned
		if err != nil {
			return st, err
		}
	}
}
