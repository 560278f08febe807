// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/eointolster/VoroniGalaxy/core"
)

// ErrInvalidGraph indicates that MST algorithms require a non-nil, weighted graph.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires weighted graph")

// ErrInvalidRoot indicates that Prim was given a negative root vertex ID.
var ErrInvalidRoot = errors.New("prim_kruskal: invalid root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod is returned by Compute for an unrecognised Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get a default setup (Kruskal, spanning tree).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal
	// and by forest mode, where every component is rooted at its smallest ID.
	Root int

	// Forest, when true, returns a minimum spanning forest instead of
	// failing with ErrDisconnected on a disconnected graph.
	Forest bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithForest requests a spanning forest.
func WithForest() Option {
	return func(opts *MSTOptions) {
		opts.Forest = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal, root 0, tree mode.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm described by opts.
//
// Returns the MST (or forest) edges, their total weight, and
// ErrUnknownMethod for a bad Method name.
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		if o.Forest {
			return KruskalForest(graph)
		}
		return Kruskal(graph)
	case MethodPrim:
		if o.Forest {
			return PrimForest(graph)
		}
		return Prim(graph, o.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}
