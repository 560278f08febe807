// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/eointolster/VoroniGalaxy/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph  : if graph is nil or unweighted.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}

	mst, total := kruskal(graph, vertices)
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// KruskalForest computes a minimum spanning forest: one MST per connected
// component. It never returns ErrDisconnected; an empty graph yields no edges.
//
// Complexity: O(E log E + α(V)·E).
func KruskalForest(graph *core.Graph) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	mst, total := kruskal(graph, graph.Vertices())

	return mst, total, nil
}

// kruskal runs the sort-and-union pass and returns whatever forest it builds.
//
// Steps:
//  1. Collect all edges via graph.Edges() (ID order), skip self-loops.
//  2. Stable-sort by ascending Weight: equal weights keep discovery order.
//  3. Union endpoints of each edge joining two different sets.
//  4. Stop early once |V|-1 edges were taken.
func kruskal(graph *core.Graph, vertices []int) ([]core.Edge, float64) {
	all := graph.Edges()
	edges := make([]*core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := newDisjointSet(vertices)
	var (
		mst   []core.Edge
		total float64
	)
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		mst = append(mst, *e)
		total += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	return mst, total
}

// disjointSet is a union-find over vertex IDs with path compression and union by rank.
type disjointSet struct {
	parent map[int]int
	rank   map[int]int
}

func newDisjointSet(vertices []int) *disjointSet {
	ds := &disjointSet{
		parent: make(map[int]int, len(vertices)),
		rank:   make(map[int]int, len(vertices)),
	}
	for _, v := range vertices {
		ds.parent[v] = v
	}

	return ds
}

// find returns the set representative of u, compressing the path as it goes.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v; false if they were already joined.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
