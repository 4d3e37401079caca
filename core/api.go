// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin constructors from/to plain mappings and read-only snapshots.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking strategy.

package core

import (
	"fmt"
	"sort"
)

// FromMap builds a Graph from the mapping-of-mappings form
// {from: {to: weight}}. Loops are permitted because the mapping form can
// express them. Outer keys become sources in lexicographic order (Go maps
// carry no order); loaders that need document order should build the graph
// with AddNode/AddArc directly.
//
// Errors are those of AddNode/AddArc, wrapped with the offending arc.
//
// Complexity: O(V log V + E).
func FromMap(m map[string]map[string]float64) (*Graph, error) {
	g := NewGraph(WithLoops(), WithCapacity(len(m)))

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, from := range keys {
		if err := g.AddNode(from); err != nil {
			return nil, fmt.Errorf("core: FromMap node %q: %w", from, err)
		}
		for to, w := range m[from] {
			if err := g.AddArc(from, to, w); err != nil {
				return nil, fmt.Errorf("core: FromMap arc %q→%q: %w", from, to, err)
			}
		}
	}

	return g, nil
}

// ToMap returns the mapping-of-mappings form of g. Every source appears as
// an outer key, including sources without arcs.
//
// Complexity: O(V + E). Concurrency: read lock on g.
func (g *Graph) ToMap() map[string]map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]float64, len(g.order))
	for _, from := range g.order {
		inner := make(map[string]float64, len(g.adjacency[from]))
		for to, w := range g.adjacency[from] {
			inner[to] = w
		}
		out[from] = inner
	}

	return out
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	Nodes   int // |V|, including destination-only nodes
	Sources int // nodes with an outer-map entry
	Sinks   int // nodes with no outgoing arcs
	Arcs    int // |E|
	Loops   int // self-arcs
}

// Stats produces a GraphStats snapshot.
//
// Complexity: O(V + E). Concurrency: read lock on g.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{Nodes: len(g.nodes), Sources: len(g.order), Arcs: g.arcs}
	for id := range g.nodes {
		inner := g.adjacency[id]
		if len(inner) == 0 {
			st.Sinks++
		}
		if _, ok := inner[id]; ok {
			st.Loops++
		}
	}

	return st
}
