// Package core provides the thread-safe, in-memory lane graph used by every
// stage of galaxy generation.
//
// The Graph G = (V,E) is undirected and keyed by stable integer vertex IDs.
// A vertex ID is an arena index assigned by the caller when a star is created;
// coordinates are never used as keys, so floating-point round-trips cannot
// break identity.
//
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Simple graph: self-loops and parallel edges are rejected
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to] = edgeID
//   - Monotonic atomic Edge.ID generation (1, 2, 3, …) which doubles as the
//     edge discovery order used for deterministic tie-breaking downstream
//   - One sync.RWMutex over vertices, edges and adjacency
//
// Determinism:
//
//	Vertices(), Edges() and NeighborIDs() all return sorted results
//	(vertex ID asc, edge ID asc), so algorithms built on top of core are
//	reproducible for a fixed insertion sequence.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int) error            // O(1)
//	HasVertex(id int) bool             // O(1)
//	RemoveVertex(id int) error         // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to int, weight float64) (edgeID int64, err error) // O(1)
//	HasEdge(from, to int) bool         // O(1)
//	EdgeBetween(from, to int) (*Edge, error)
//
//	// Queries
//	Vertices() []int                   // sorted
//	Edges() []*Edge                    // sorted by ID
//	Neighbors(id int) ([]*Edge, error) // sorted by ID
//	NeighborIDs(id int) ([]int, error) // unique, sorted
//	Degree(id int) (int, error)
//
//	// Cloning and views
//	Clone(), FilterEdges(pred), InducedSubgraph(g, keep)
//
// Errors:
//
//	ErrInvalidVertexID     - vertex ID is negative.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph, or a NaN/negative weight.
//	ErrLoopNotAllowed      - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed - second edge between the same pair.
package core
