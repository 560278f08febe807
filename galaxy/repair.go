// File: repair.go
// Role: Connectivity repair over the accumulated node/lane set.
// Determinism:
//   - Components come from bfs.Components; anchors are drawn from the
//     supplied *rand.Rand; pair searches break distance ties by node ID.
// Concurrency:
//   - Mutates the workspace; single owner.

package galaxy

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/eointolster/VoroniGalaxy/bfs"
)

// RepairStats reports what Repair did.
type RepairStats struct {
	Rounds  int
	Bridges int
	Forced  int
	Pruned  int
}

// Repair joins every component to the largest one with bridging lanes.
//
// Each round picks a random anchor in the largest component and, for every
// other component, bridges the anchor's nearest member when it is within the
// maximum distance and SegmentsAdjacent holds. A component that fails that
// test is bridged through its closest valid pair to the largest component,
// then to any other component. Bridges ignore lane caps.
//
// When a whole round adds no bridge, cfg.BridgePolicy decides: BridgeStrict
// returns ErrUnresolvableBridge, BridgeForce joins closest pairs regardless
// of distance, BridgePrune removes every star outside the largest component.
func Repair(w *Workspace, cfg Config, r *rand.Rand) (RepairStats, error) {
	var st RepairStats
	maxDist := cfg.MaxDistance()
	for {
		comps, err := w.Components()
		if err != nil {
			return st, err
		}
		if len(comps) <= 1 {
			return st, nil
		}
		st.Rounds++
		main := bfs.Largest(comps)
		mainSet := memberSet(comps[main])
		anchor := comps[main][r.Intn(len(comps[main]))]

		progress := false
		for i, comp := range comps {
			if i == main {
				continue
			}
			set := memberSet(comp)
			a, b, ok := w.anchoredPair(anchor, set, maxDist, cfg.SegmentSize)
			if !ok {
				a, b, ok = w.closestPair(comp, mainSet, maxDist, cfg.SegmentSize)
			}
			if !ok {
				outside := func(id int) bool { return !set[id] }
				a, b, ok = w.closestPairFunc(comp, outside, maxDist, cfg.SegmentSize)
			}
			if !ok {
				continue
			}
			if added, err := w.AddLane(a, b); err != nil {
				return st, err
			} else if added {
				st.Bridges++
				progress = true
			}
		}
		if progress {
			continue
		}

		forced, pruned, err := w.applyBridgePolicy(cfg.BridgePolicy, comps, main)
		st.Forced += forced
		st.Pruned += pruned
		if err != nil {
			return st, err
		}
	}
}

// anchoredPair returns anchor's nearest member of set within maxDist, if the
// pair passes SegmentsAdjacent.
func (w *Workspace) anchoredPair(anchor int, set map[int]bool, maxDist, size float64) (int, int, bool) {
	p := w.nodes[anchor].Pos
	id, _, ok := w.grid.Nearest(p, maxDist, func(id int) bool { return set[id] })
	if !ok || !SegmentsAdjacent(p, w.nodes[id].Pos, size) {
		return 0, 0, false
	}

	return anchor, id, true
}

// closestPair finds the closest (from, to) pair with from in comp and to in
// target. size > 0 additionally requires SegmentsAdjacent, evaluated from the
// target side as in anchoredPair.
func (w *Workspace) closestPair(comp []int, target map[int]bool, maxDist, size float64) (int, int, bool) {
	return w.closestPairFunc(comp, func(id int) bool { return target[id] }, maxDist, size)
}

func (w *Workspace) closestPairFunc(comp []int, target func(int) bool, maxDist, size float64) (int, int, bool) {
	bestA, bestB, bestD := -1, -1, math.Inf(1)
	for _, a := range comp {
		p := w.nodes[a].Pos
		accept := target
		if size > 0 {
			accept = func(id int) bool {
				return target(id) && SegmentsAdjacent(w.nodes[id].Pos, p, size)
			}
		}
		b, d, ok := w.grid.Nearest(p, maxDist, accept)
		if !ok {
			continue
		}
		if d < bestD || (d == bestD && (a < bestA || (a == bestA && b < bestB))) {
			bestA, bestB, bestD = a, b, d
		}
	}
	if bestA < 0 {
		return 0, 0, false
	}

	return bestA, bestB, true
}

// applyBridgePolicy resolves components that no in-range bridge can join.
func (w *Workspace) applyBridgePolicy(policy string, comps [][]int, main int) (forced, pruned int, err error) {
	switch policy {
	case BridgeForce:
		mainSet := memberSet(comps[main])
		for i, comp := range comps {
			if i == main {
				continue
			}
			a, b, ok := w.closestPair(comp, mainSet, math.Inf(1), 0)
			if !ok {
				continue
			}
			added, err := w.AddLane(a, b)
			if err != nil {
				return forced, pruned, err
			}
			if added {
				forced++
			}
		}
		if forced == 0 {
			return forced, pruned, fmt.Errorf("%w: force policy found no pair", ErrUnresolvableBridge)
		}

		return forced, pruned, nil
	case BridgePrune:
		pruned = w.Retain(memberSet(comps[main]))

		return forced, pruned, nil
	default:
		return 0, 0, fmt.Errorf("%w: %d components left, largest has %d stars",
			ErrUnresolvableBridge, len(comps), len(comps[main]))
	}
}

func memberSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set
}
