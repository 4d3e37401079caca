package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/spbench/core"
)

// Heap computes the shortest distance from source to target using a binary
// min-heap frontier keyed by (distance, node ID).
//
// Algorithm:
//  1. dist[source] = 0, every other node implicitly +Inf; push (0, source).
//  2. Pop the minimum entry. If its distance exceeds dist[node] (or the node
//     is already settled) it is stale and is skipped: this is the lazy
//     decrease-key strategy, superseded entries are never removed eagerly.
//  3. Otherwise settle the node (Visited++). If it is target, stop.
//  4. Relax every outgoing arc to an unsettled neighbour: when
//     dist[u] + w < dist[v], record it and push (dist[v], v).
//
// An empty frontier before reaching target yields Distance == Unreachable
// together with the number of nodes settled so far. An unknown source is
// treated as an isolated node at distance 0.
//
// Errors: ErrNilGraph, ErrEmptyEndpoint, ErrOptionViolation.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (up to E stale entries in the heap)
func Heap(g core.Adjacency, source, target string, opts ...Option) (Result, error) {
	cfg, err := prepare(g, source, target, opts)
	if err != nil {
		return Result{}, err
	}

	r := &heapRunner{
		g:       g,
		options: cfg,
		source:  source,
		target:  target,
		dist:    make(map[string]float64),
		settled: make(map[string]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string)
	}

	r.init()
	r.process()

	return r.result(), nil
}

// heapRunner holds the mutable state for a single Heap execution.
type heapRunner struct {
	g       core.Adjacency
	options Options
	source  string
	target  string

	dist    map[string]float64 // distance table; absent = +Inf
	prev    map[string]string  // predecessor links, nil unless ReturnPath
	settled map[string]bool
	pq      nodePQ

	visited int
	found   bool
}

// init seeds the distance table and the frontier with the source.
func (r *heapRunner) init() {
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, dist: 0})
}

// process is the main extraction loop.
func (r *heapRunner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale entry: superseded by a cheaper relaxation, or u already final.
		if r.settled[u] || d > r.distance(u) {
			continue
		}
		if d > r.options.MaxDistance {
			return
		}

		r.settled[u] = true
		r.visited++
		r.options.OnSettle(u, d)

		if u == r.target {
			r.found = true
			return
		}

		r.relax(u, d)
	}
}

// relax examines each arc out of u. du is the final distance of u.
func (r *heapRunner) relax(u string, du float64) {
	for _, a := range r.g.Neighbors(u) {
		v := a.To
		if r.settled[v] {
			continue
		}
		cand := du + a.Weight
		old := r.distance(v)
		if cand >= old {
			continue
		}
		r.dist[v] = cand
		if r.prev != nil {
			r.prev[v] = u
		}
		r.options.OnRelax(v, old, cand)
		heap.Push(&r.pq, &nodeItem{id: v, dist: cand})
	}
}

// distance reads the distance table, defaulting to +Inf.
func (r *heapRunner) distance(id string) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return Unreachable
}

func (r *heapRunner) result() Result {
	res := Result{
		Source:   r.source,
		Target:   r.target,
		Distance: Unreachable,
		Visited:  r.visited,
	}
	if !r.found {
		return res
	}
	res.Distance = r.dist[r.target]
	if r.prev != nil {
		res.Path = tracePath(r.prev, r.source, r.target)
	}

	return res
}

// nodeItem is a frontier entry: a node and the tentative distance it was
// pushed with.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id) ascending, which
// makes extraction order, and therefore Visited, reproducible.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	return closer(pq[i].dist, pq[i].id, pq[j].dist, pq[j].id)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
