// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows the MST from a specified root vertex using a min-heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/eointolster/VoroniGalaxy/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a specified root vertex using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : if graph is nil or unweighted.
//   - ErrInvalidRoot        : if root is negative.
//   - core.ErrVertexNotFound: if the root vertex does not exist in the graph.
//   - ErrDisconnected       : if |V| == 0 or |V| > 1 but the graph is not fully connected.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited and push its incident edges.
//  3. Pop the lightest edge (ties by edge ID); skip it if both ends are visited.
//  4. Otherwise take it, mark the new endpoint, push its edges to unvisited vertices.
//  5. If fewer than |V|-1 edges were taken, the graph is disconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 {
		return nil, 0, ErrInvalidRoot
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}

	visited := make(map[int]bool, len(vertices))
	mst, total, err := grow(graph, root, visited)
	if err != nil {
		return nil, 0, err
	}
	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// PrimForest grows one Prim tree per connected component, each rooted at the
// component's smallest vertex ID, and returns their union.
//
// Complexity: O(E log V).
func PrimForest(graph *core.Graph) ([]core.Edge, float64, error) {
	if graph == nil || !graph.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	visited := make(map[int]bool, len(vertices))
	var (
		forest []core.Edge
		total  float64
	)
	for _, v := range vertices {
		if visited[v] {
			continue
		}
		tree, w, err := grow(graph, v, visited)
		if err != nil {
			return nil, 0, err
		}
		forest = append(forest, tree...)
		total += w
	}

	return forest, total, nil
}

// grow expands a single tree from root, marking vertices in visited.
func grow(graph *core.Graph, root int, visited map[int]bool) ([]core.Edge, float64, error) {
	var (
		tree  []core.Edge
		total float64
	)
	pq := &edgePQ{}
	heap.Init(pq)

	push := func(u int) error {
		visited[u] = true
		nbrs, err := graph.Neighbors(u)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			if !visited[e.Other(u)] {
				heap.Push(pq, e)
			}
		}

		return nil
	}

	if err := push(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 {
		e := heap.Pop(pq).(*core.Edge)
		var next int
		switch {
		case !visited[e.From]:
			next = e.From
		case !visited[e.To]:
			next = e.To
		default:
			continue
		}
		tree = append(tree, *e)
		total += e.Weight
		if err := push(next); err != nil {
			return nil, 0, err
		}
	}

	return tree, total, nil
}

// edgePQ implements heap.Interface for a min-heap of *core.Edge, ordered by
// Weight and then by edge ID.
type edgePQ []*core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}

	return pq[i].ID < pq[j].ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*core.Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
