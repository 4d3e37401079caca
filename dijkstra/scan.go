package dijkstra

import (
	"math"

	"github.com/katalvlaran/spbench/bfs"
	"github.com/katalvlaran/spbench/core"
)

// Scan computes the same answer as Heap without a priority structure: every
// step scans the whole unsettled set for the closest node.
//
// Algorithm:
//  1. Seed the unsettled set with every known node at +Inf and the source
//     at 0. Known nodes are g.Nodes() when g implements core.NodeLister;
//     otherwise the nodes reachable from source (unreachable nodes would
//     stay at +Inf and can never be selected, so the answer is unchanged).
//  2. Scan linearly for the minimum (distance, node ID). Stop when the set
//     is empty or every remaining entry is +Inf.
//  3. Remove that node and settle it (Visited++). If it is target, stop.
//  4. Relax arcs to neighbours not yet settled, updating both the distance
//     table and the unsettled entry in place. A neighbour missing from the
//     known nodes joins the unsettled set at +Inf first.
//
// Errors: ErrNilGraph, ErrEmptyEndpoint, ErrOptionViolation.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func Scan(g core.Adjacency, source, target string, opts ...Option) (Result, error) {
	cfg, err := prepare(g, source, target, opts)
	if err != nil {
		return Result{}, err
	}

	r := &scanRunner{
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

	r.init(knownNodes(g, source))
	r.process()

	return r.result(), nil
}

// scanEntry is one slot of the unsettled array.
type scanEntry struct {
	id   string
	dist float64
}

// scanRunner holds the mutable state for a single Scan execution.
type scanRunner struct {
	g       core.Adjacency
	options Options
	source  string
	target  string

	dist      map[string]float64 // distance table; absent = +Inf
	prev      map[string]string
	unsettled []scanEntry    // unordered working set
	pos       map[string]int // node ID → index in unsettled
	settled   map[string]bool

	visited int
	found   bool
}

// init builds the unsettled array from the node universe.
func (r *scanRunner) init(nodes []string) {
	r.unsettled = make([]scanEntry, 0, len(nodes)+1)
	r.pos = make(map[string]int, len(nodes)+1)
	for _, id := range nodes {
		if _, dup := r.pos[id]; !dup {
			r.add(id)
		}
	}
	if _, ok := r.pos[r.source]; !ok {
		r.add(r.source)
	}
	r.unsettled[r.pos[r.source]].dist = 0
	r.dist[r.source] = 0
}

// process repeatedly selects and settles the closest unsettled node.
func (r *scanRunner) process() {
	for len(r.unsettled) > 0 {
		i := r.argmin()
		if i < 0 {
			return // only +Inf entries remain
		}
		e := r.unsettled[i]
		if e.dist > r.options.MaxDistance {
			return
		}

		r.remove(i)
		r.settled[e.id] = true
		r.visited++
		r.options.OnSettle(e.id, e.dist)

		if e.id == r.target {
			r.found = true
			return
		}

		r.relax(e.id, e.dist)
	}
}

// argmin is the linear scan: index of the minimum finite (dist, id), or -1.
func (r *scanRunner) argmin() int {
	best := -1
	for i, e := range r.unsettled {
		if math.IsInf(e.dist, 1) {
			continue
		}
		if best < 0 || closer(e.dist, e.id, r.unsettled[best].dist, r.unsettled[best].id) {
			best = i
		}
	}

	return best
}

// add appends id to the unsettled set at +Inf and returns its slot.
func (r *scanRunner) add(id string) int {
	j := len(r.unsettled)
	r.pos[id] = j
	r.unsettled = append(r.unsettled, scanEntry{id: id, dist: Unreachable})

	return j
}

// remove deletes slot i by swapping in the last entry.
func (r *scanRunner) remove(i int) {
	last := len(r.unsettled) - 1
	delete(r.pos, r.unsettled[i].id)
	if i != last {
		r.unsettled[i] = r.unsettled[last]
		r.pos[r.unsettled[i].id] = i
	}
	r.unsettled = r.unsettled[:last]
}

// relax updates neighbours of u that are not settled yet.
func (r *scanRunner) relax(u string, du float64) {
	for _, a := range r.g.Neighbors(u) {
		if r.settled[a.To] {
			continue
		}
		j, ok := r.pos[a.To]
		if !ok {
			j = r.add(a.To)
		}
		cand := du + a.Weight
		old := r.unsettled[j].dist
		if cand >= old {
			continue
		}
		r.unsettled[j].dist = cand
		r.dist[a.To] = cand
		if r.prev != nil {
			r.prev[a.To] = u
		}
		r.options.OnRelax(a.To, old, cand)
	}
}

func (r *scanRunner) result() Result {
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

// knownNodes returns the node universe for the scan engine.
func knownNodes(g core.Adjacency, source string) []string {
	if nl, ok := g.(core.NodeLister); ok {
		return nl.Nodes()
	}

	// Discover the component reachable from source; the inputs were
	// validated by prepare so BFS cannot fail here.
	order, err := bfs.Reachable(g, source)
	if err != nil {
		return []string{source}
	}

	return order
}
