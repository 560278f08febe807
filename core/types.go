// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards the vertex set, the edge catalog and adjacency together.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexID indicates a negative vertex ID.
	ErrInvalidVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph, or a weight
	// that is negative or NaN.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents an undirected connection between two vertices.
//
// ID is assigned monotonically by AddEdge, so ascending ID order equals
// insertion (discovery) order. From/To record the orientation the edge was
// added with; it carries no directional meaning.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID int64

	// From is the first endpoint as passed to AddEdge.
	From int

	// To is the second endpoint as passed to AddEdge.
	To int

	// Weight is the edge cost (Euclidean length for lanes).
	Weight float64
}

// Other returns the endpoint of e opposite to id.
// If id is not an endpoint of e, From is returned.
func (e *Edge) Other(id int) int {
	if e.From == id {
		return e.To
	}
	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory simple undirected graph: no self-loops and at
// most one edge per vertex pair.
//
// adjacency[v] exists for every vertex v and maps each neighbour to the ID of
// the edge joining them, mirrored on both endpoints.
type Graph struct {
	mu sync.RWMutex

	weighted bool

	nextEdgeID int64 // atomic edge ID generator
	edges      map[int64]*Edge
	adjacency  map[int]map[int]int64
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is unweighted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		edges:     make(map[int64]*Edge),
		adjacency: make(map[int]map[int]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
func (g *Graph) Weighted() bool { return g.weighted }
