// Package bfs provides breadth-first search over a core.Adjacency. A walk
// records visit order with hop depths and BFS-tree parents; arc weights
// matter only to an arc filter.
//
// The harness uses it to size the component reachable from a start node,
// which is exactly the Visited count both shortest-path engines must report
// when the target is unreachable.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/spbench/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.Adjacency
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID, applying any
// number of functional Options. Unknown start IDs are tolerated: the walk
// visits only the start itself.
//
// Returns ErrGraphNil, ErrEmptyStart, ErrOptionViolation, the context error
// on cancellation, or a wrapped OnVisit hook error.
func BFS(g core.Adjacency, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if n, ok := g.(core.Nilable); ok && n.IsNil() {
		return nil, ErrGraphNil
	}
	if startID == "" {
		return nil, ErrEmptyStart
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[string]bool),
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Reachable returns the IDs reachable from start (start included) in BFS
// order.
func Reachable(g core.Adjacency, start string) ([]string, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// enqueue marks id visited at depth d, records its parent, and adds it to
// the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbour reached over a followed
// arc, unless MaxDepth is exhausted.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, a := range w.graph.Neighbors(item.id) {
		if w.visited[a.To] {
			continue
		}
		if !w.opts.FollowArc(item.id, a) {
			continue
		}
		w.enqueue(a.To, nextDepth, item.id)
	}
}
