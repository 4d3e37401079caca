// Package core defines the directed, non-negatively weighted Graph used by
// the shortest-path engines, together with the small Adjacency lookup
// contract the engines are written against.
//
// This file declares Arc, Adjacency, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrNegativeWeight   - arc weight is below zero.
//	ErrNonFiniteWeight  - arc weight is NaN or ±Inf.
//	ErrLoopNotAllowed   - self-arc when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNegativeWeight indicates an arc weight below zero.
	ErrNegativeWeight = errors.New("core: negative arc weight")

	// ErrNonFiniteWeight indicates an arc weight that is NaN or infinite.
	ErrNonFiniteWeight = errors.New("core: non-finite arc weight")

	// ErrLoopNotAllowed indicates a self-arc was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Arc is one outgoing connection of a node: the destination and the cost of
// travelling to it. Weight is always finite and ≥ 0.
type Arc struct {
	// To is the destination node ID.
	To string

	// Weight is the non-negative cost of the arc.
	Weight float64
}

// Adjacency is the lookup contract shared by every shortest-path engine.
//
// Neighbors must return the outgoing arcs of id, or an empty result when id
// has no outgoing arcs or is unknown. It must never panic for unknown IDs and
// must be safe for concurrent readers.
type Adjacency interface {
	Neighbors(id string) []Arc
}

// NodeLister is implemented by adjacency representations that can enumerate
// their full node set (sources and destinations). Engines that need the node
// universe up front (the scan engine) use it when available.
type NodeLister interface {
	Nodes() []string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-arcs (arcs from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity pre-sizes the internal maps for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the in-memory adjacency-list graph.
//
// Nodes enter the graph either as sources (AddNode / AddArc from) or as
// destinations only; both kinds belong to the node set. Sources keep their
// insertion order so that prefix views are reproducible.
// mu protects every field below it.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool
	capacity   int

	// nodes is the full node set; value reports whether the node was
	// registered as a source (has an outer-map entry).
	nodes map[string]bool

	// order lists source nodes in insertion order.
	order []string

	// adjacency[from][to] = weight
	adjacency map[string]map[string]float64

	// arcs is the cached arc count.
	arcs int

	// sorted caches Neighbors results per source; AddArc drops the entry
	// of the source it touches.
	sorted map[string][]Arc
	// warm reports that sorted holds every source.
	warm bool
}

// NewGraph creates an empty Graph. By default self-arcs are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make(map[string]bool, g.capacity)
	g.adjacency = make(map[string]map[string]float64, g.capacity)
	g.order = make([]string, 0, g.capacity)
	g.sorted = make(map[string][]Arc)

	return g
}

// compile-time checks
var (
	_ Adjacency  = (*Graph)(nil)
	_ NodeLister = (*Graph)(nil)
	_ Warmer     = (*Graph)(nil)
)

// Warmer is implemented by adjacency types that can precompute their
// Neighbors results ahead of a timed query.
type Warmer interface {
	Warm()
}

// IsNil reports whether the receiver should be treated as nil when stored
// inside an Adjacency interface. Safe for typed-nil pointers.
func (g *Graph) IsNil() bool { return g == nil }

// Nilable is implemented by pointer-backed adjacency types that can detect a
// typed nil stored behind an interface.
type Nilable interface {
	IsNil() bool
}
