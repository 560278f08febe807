// File: workspace.go
// Role: The growing node/lane collection shared by every generation stage.
// Determinism:
//   - Node IDs are arena indices assigned in creation order.
//   - Lane IDs come from core.Graph and follow discovery order.
// Concurrency:
//   - Owned by one stage at a time; not safe for concurrent mutation.

package galaxy

import (
	"fmt"

	"github.com/eointolster/VoroniGalaxy/bfs"
	"github.com/eointolster/VoroniGalaxy/core"
	"github.com/eointolster/VoroniGalaxy/geometry"
	"github.com/eointolster/VoroniGalaxy/star"
)

// Node is a star during generation. ID is its arena index.
type Node struct {
	Category star.Category
	Pos      geometry.Point
	ID       int
	Removed  bool
}

// Lane is an undirected connection between two nodes.
type Lane struct {
	ID     int64
	A, B   int
	Length float64
}

// Workspace owns nodes, lanes and the spatial index while a galaxy is built.
type Workspace struct {
	lanes *core.Graph
	grid  *geometry.Grid
	nodes []Node
	alive int
}

// NewWorkspace returns an empty workspace whose spatial index uses the given
// cell size.
func NewWorkspace(cell float64) *Workspace {
	return &Workspace{
		lanes: core.NewGraph(core.WithWeighted()),
		grid:  geometry.NewGrid(cell),
	}
}

// AddNode creates a node and returns its ID.
func (w *Workspace) AddNode(p geometry.Point, c star.Category) int {
	id := len(w.nodes)
	w.nodes = append(w.nodes, Node{ID: id, Pos: p, Category: c})
	_ = w.lanes.AddVertex(id)
	w.grid.Insert(id, p)
	w.alive++

	return id
}

// Retain removes every live node outside keep together with its lanes and
// returns how many were removed. IDs are never reused.
func (w *Workspace) Retain(keep map[int]bool) int {
	removed := 0
	for id := range w.nodes {
		n := &w.nodes[id]
		if n.Removed || keep[id] {
			continue
		}
		n.Removed = true
		w.grid.Remove(id, n.Pos)
		w.alive--
		removed++
	}
	if removed > 0 {
		w.lanes = core.InducedSubgraph(w.lanes, keep)
	}

	return removed
}

// Has reports whether id names a live node.
func (w *Workspace) Has(id int) bool {
	return id >= 0 && id < len(w.nodes) && !w.nodes[id].Removed
}

// Node returns the node with the given ID, live or removed.
func (w *Workspace) Node(id int) Node { return w.nodes[id] }

// Nodes returns live nodes in ID order.
func (w *Workspace) Nodes() []Node {
	out := make([]Node, 0, w.alive)
	for _, n := range w.nodes {
		if !n.Removed {
			out = append(out, n)
		}
	}

	return out
}

// NodeCount returns the number of live nodes.
func (w *Workspace) NodeCount() int { return w.alive }

// AddLane connects a and b with a lane weighted by their distance.
// It reports false when the lane already exists.
func (w *Workspace) AddLane(a, b int) (bool, error) {
	if !w.Has(a) || !w.Has(b) {
		return false, fmt.Errorf("%w: lane %d-%d", ErrUnknownStar, a, b)
	}
	if w.lanes.HasEdge(a, b) {
		return false, nil
	}
	if _, err := w.lanes.AddEdge(a, b, geometry.Dist(w.nodes[a].Pos, w.nodes[b].Pos)); err != nil {
		return false, fmt.Errorf("galaxy: add lane %d-%d: %w", a, b, err)
	}

	return true, nil
}

// HasLane reports whether a lane joins a and b.
func (w *Workspace) HasLane(a, b int) bool { return w.lanes.HasEdge(a, b) }

// Lanes returns all lanes in discovery order.
func (w *Workspace) Lanes() []Lane {
	edges := w.lanes.Edges()
	out := make([]Lane, len(edges))
	for i, e := range edges {
		out[i] = Lane{ID: e.ID, A: e.From, B: e.To, Length: e.Weight}
	}

	return out
}

// LaneCount returns the number of lanes.
func (w *Workspace) LaneCount() int { return w.lanes.EdgeCount() }

// Degree returns the lane count of a live node, 0 otherwise.
func (w *Workspace) Degree(id int) int {
	d, err := w.lanes.Degree(id)
	if err != nil {
		return 0
	}

	return d
}

// Components returns the connected components over live nodes.
func (w *Workspace) Components() ([][]int, error) {
	comps, err := bfs.Components(w.lanes)
	if err != nil {
		return nil, fmt.Errorf("galaxy: components: %w", err)
	}

	return comps, nil
}

// Graph exposes the lane graph for read-only algorithms.
func (w *Workspace) Graph() *core.Graph { return w.lanes }

// Grid exposes the spatial index of live nodes.
func (w *Workspace) Grid() *geometry.Grid { return w.grid }

// replaceLanes swaps in a new lane graph over the same node set.
func (w *Workspace) replaceLanes(g *core.Graph) { w.lanes = g }
