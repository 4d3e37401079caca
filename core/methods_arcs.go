// File: methods_arcs.go
// Role: Arc insertion & lookups: AddArc, Neighbors, Weight, HasArc, ArcCount.
// Determinism:
//   - Neighbors() returns arcs sorted by destination ID asc.
// Concurrency:
//   - Mutations under mu write lock; lookups under mu read lock.
//   - A Neighbors cache miss fills the cache under the write lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddArc inserts (or overwrites) the directed arc from→to with the given
// weight. Both endpoints join the node set; only from becomes a source.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Lock mu, register from as a source and to as a node.
//  3. Store the weight, bumping the arc count only for a new arc.
//
// Errors:
//   - ErrEmptyNodeID:     if from or to is empty.
//   - ErrNonFiniteWeight: if weight is NaN or ±Inf.
//   - ErrNegativeWeight:  if weight < 0 (zero is valid).
//   - ErrLoopNotAllowed:  if from == to and loops are disabled.
//
// Complexity: O(1) amortized.
func (g *Graph) AddArc(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrNonFiniteWeight, from, to, weight)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.addSourceLocked(from)
	if _, ok := g.nodes[to]; !ok {
		g.nodes[to] = false
	}

	inner := g.adjacency[from]
	if _, exists := inner[to]; !exists {
		g.arcs++
	}
	inner[to] = weight
	delete(g.sorted, from)
	g.warm = false

	return nil
}

// Neighbors returns the outgoing arcs of id sorted by destination ID.
// Unknown IDs and sinks yield nil; this method never fails.
//
// The sorted slice is cached per node until the next AddArc from id, so
// repeated calls neither allocate nor sort. The returned slice is shared
// and must not be modified.
//
// Complexity: O(1) on a cache hit; O(d log d) time and O(d) space on a
// miss, where d is the out-degree.
func (g *Graph) Neighbors(id string) []Arc {
	g.mu.RLock()
	arcs, hit := g.sorted[id]
	empty := len(g.adjacency[id]) == 0
	g.mu.RUnlock()
	if hit || empty {
		return arcs
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.sortedLocked(id)
}

// Warm fills the Neighbors cache for every source so that later queries
// only read it. Calls on an already warm graph only take the read lock.
//
// Complexity: O(E log d) when cold, O(1) when warm.
func (g *Graph) Warm() {
	if g == nil {
		return
	}
	g.mu.RLock()
	done := g.warm
	g.mu.RUnlock()
	if done {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, from := range g.order {
		g.sortedLocked(from)
	}
	g.warm = true
}

// sortedLocked returns the cached arcs of id, building them on a miss.
// Caller holds the write lock.
func (g *Graph) sortedLocked(id string) []Arc {
	if arcs, ok := g.sorted[id]; ok {
		return arcs
	}
	inner := g.adjacency[id]
	if len(inner) == 0 {
		return nil
	}
	out := make([]Arc, 0, len(inner))
	for to, w := range inner {
		out = append(out, Arc{To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })
	g.sorted[id] = out

	return out
}

// Weight returns the weight of from→to and whether the arc exists.
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adjacency[from][to]

	return w, ok
}

// HasArc reports whether the arc from→to exists.
func (g *Graph) HasArc(from, to string) bool {
	_, ok := g.Weight(from, to)
	return ok
}

// ArcCount returns |E|.
func (g *Graph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcs
}

// OutDegree returns the number of outgoing arcs of id (0 for unknown IDs).
func (g *Graph) OutDegree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}
