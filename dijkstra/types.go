// Package dijkstra defines the shared contract, result record and options of
// the two single-pair shortest-path engines, Heap and Scan.
//
// Both engines answer the same question (the cheapest cost of a path from
// Source to Target over a core.Adjacency with non-negative weights) and
// report how many nodes they settled on the way. They differ only in how the
// next node to settle is chosen:
//
//	– Heap: a binary min-heap with lazy deletion, O((V + E) log V).
//	– Scan: a linear scan over the unsettled set, O(V²).
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the adjacency is nil (including typed nil).
//	– ErrEmptyEndpoint    if Source or Target is the empty string.
//	– ErrOptionViolation  if an Option received an invalid argument.
//	– ErrUnknownAlgorithm if ParseAlgorithm/Lookup cannot resolve a name.
//
// Unreachable targets and unknown start nodes are not errors: they are
// reported through Result.Distance == Unreachable.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/spbench/core"
)

// Sentinel errors returned by the engines.
var (
	// ErrNilGraph indicates that a nil adjacency was passed to an engine.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyEndpoint indicates that the source or target ID is empty.
	ErrEmptyEndpoint = errors.New("dijkstra: source or target ID is empty")

	// ErrOptionViolation indicates an invalid Option argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnknownAlgorithm indicates an algorithm name that maps to no engine.
	ErrUnknownAlgorithm = errors.New("dijkstra: unknown algorithm")
)

// Unreachable is the distance sentinel reported when Target is not reachable.
var Unreachable = math.Inf(1)

// Result is the outcome of one engine invocation.
//
// Distance is the terminal distance to Target, or Unreachable.
// Visited counts the nodes that were settled (finalized), including Target
// when it was reached.
// Path lists Source→…→Target when WithReturnPath was given and Target was
// reached; nil otherwise.
type Result struct {
	Source   string
	Target   string
	Distance float64
	Visited  int
	Path     []string
}

// Reachable reports whether Target was reached.
func (r Result) Reachable() bool { return !math.IsInf(r.Distance, 1) }

// Engine is the contract shared by Heap and Scan.
type Engine func(g core.Adjacency, source, target string, opts ...Option) (Result, error)

// Compile-time checks that both engines satisfy the contract.
var (
	_ Engine = Heap
	_ Engine = Scan
)

// Algorithm names an engine.
type Algorithm string

const (
	// AlgorithmHeap selects the priority-queue engine.
	AlgorithmHeap Algorithm = "heap"

	// AlgorithmScan selects the linear-scan engine.
	AlgorithmScan Algorithm = "scan"
)

// Algorithms returns every known algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmHeap, AlgorithmScan}
}

// ParseAlgorithm resolves a user-facing name. Matching is case-insensitive
// and accepts the historical aliases "A"/"pq" (heap) and "B"/"array"/"linear"
// (scan).
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "heap", "a", "pq":
		return AlgorithmHeap, nil
	case "scan", "b", "array", "linear":
		return AlgorithmScan, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Engine returns the engine implementing a.
func (a Algorithm) Engine() (Engine, error) {
	switch a {
	case AlgorithmHeap:
		return Heap, nil
	case AlgorithmScan:
		return Scan, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}

// Lookup is ParseAlgorithm followed by Engine.
func Lookup(name string) (Engine, error) {
	a, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}

	return a.Engine()
}

// Option configures an engine via functional arguments.
// Invalid arguments are recorded and surfaced as ErrOptionViolation when the
// engine is invoked.
type Option func(*Options)

// Options holds per-invocation parameters and observation hooks.
// Hooks never alter the computed answer.
type Options struct {
	// ReturnPath requests reconstruction of the Source→Target path.
	ReturnPath bool

	// MaxDistance stops the search before settling any node whose distance
	// exceeds it. Default +Inf.
	MaxDistance float64

	// OnSettle is called each time a node is settled, with its final distance.
	OnSettle func(id string, dist float64)

	// OnRelax is called on every successful relaxation with the previous
	// (possibly +Inf) and the new tentative distance.
	OnRelax func(id string, prev, next float64)

	err error
}

// DefaultOptions returns Options with no path, no distance cap and no-op hooks.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
		OnSettle:    func(string, float64) {},
		OnRelax:     func(string, float64, float64) {},
	}
}

// WithReturnPath enables path reconstruction in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps the explored distance. d must be ≥ 0.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: %w (%v)", ErrOptionViolation, ErrBadMaxDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithOnSettle registers a callback run when a node is settled.
func WithOnSettle(fn func(id string, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback run on every successful relaxation.
func WithOnRelax(fn func(id string, prev, next float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// prepare validates the structural inputs shared by both engines and
// resolves the options.
func prepare(g core.Adjacency, source, target string, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrNilGraph
	}
	if n, ok := g.(core.Nilable); ok && n.IsNil() {
		return Options{}, ErrNilGraph
	}
	if source == "" || target == "" {
		return Options{}, ErrEmptyEndpoint
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Options{}, cfg.err
	}

	return cfg, nil
}

// tracePath walks prev from target back to source. The walk is bounded by
// len(prev)+1 steps; prev links only ever point at settled nodes so the
// bound is never hit on a well-formed run.
func tracePath(prev map[string]string, source, target string) []string {
	path := []string{target}
	for cur, steps := target, 0; cur != source; steps++ {
		if steps > len(prev) {
			return nil
		}
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// closer reports whether (d1, id1) orders strictly before (d2, id2):
// smaller distance first, then lexicographically smaller node ID.
func closer(d1 float64, id1 string, d2 float64, id2 string) bool {
	if d1 != d2 {
		return d1 < d2
	}

	return id1 < id2
}
