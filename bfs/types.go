package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/spbench/core"
)

var (
	// ErrGraphNil is returned if a nil adjacency is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrEmptyStart is returned when the start ID is empty.
	ErrEmptyStart = errors.New("bfs: start vertex ID is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for a vertex the walk never
	// reached.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Option configures a walk. Invalid arguments are recorded and reported as
// ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds the walk parameters and hooks.
type Options struct {
	// Ctx is checked once per dequeued vertex.
	Ctx context.Context

	// OnEnqueue fires when a vertex is first discovered.
	OnEnqueue func(id string, depth int)

	// OnVisit fires when a vertex is dequeued; a non-nil error aborts the
	// walk and is returned wrapped.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 bounds the hop count; 0 means unbounded.
	MaxDepth int

	// FollowArc decides whether the arc from→a.To is traversed.
	FollowArc func(from string, a core.Arc) bool

	err error
}

// DefaultOptions: background context, no depth bound, every arc followed,
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
		FollowArc: func(string, core.Arc) bool { return true },
	}
}

// WithContext sets a cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a discovery hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a visit hook; its error stops the walk.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the walk to d hops. d == 0 removes the bound; d < 0
// is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithArcFilter traverses only arcs for which fn returns true, e.g. arcs
// below a weight threshold.
func WithArcFilter(fn func(from string, a core.Arc) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FollowArc = fn
		}
	}
}

// Result is the outcome of a walk.
//
// Order lists vertices in visit sequence, Depth maps each reached vertex to
// its hop count and Parent to its predecessor in the BFS tree.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Size is the number of reached vertices, start included.
func (r *Result) Size() int { return len(r.Order) }

// Reached reports whether id was discovered.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo returns the fewest-hop path from the start to dest, or ErrNoPath.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}
	path := make([]string, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
