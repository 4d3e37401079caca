// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted lexicographically ascending.
//   - Sources() returns source IDs in insertion order.
//
// Concurrency:
//   - All node state is protected by mu.

package core

import "sort"

// AddNode registers id as a source node (an outer-map entry with no arcs yet).
// It is idempotent: adding an existing source is a no-op, and adding a node
// previously seen only as a destination promotes it to a source.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addSourceLocked(id)

	return nil
}

// addSourceLocked registers id as a source. Caller holds mu for writing.
func (g *Graph) addSourceLocked(id string) {
	if g.nodes[id] {
		return
	}
	g.nodes[id] = true
	g.order = append(g.order, id)
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]float64)
	}
}

// HasNode reports whether id is a source or a destination of any arc.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// IsSource reports whether id has an outer-map entry (possibly with no arcs).
func (g *Graph) IsSource(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[id]
}

// Nodes returns the full node set (the union of sources and destinations),
// sorted lexicographically ascending.
//
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Sources returns the IDs that were registered as sources, in insertion
// order. The returned slice is a copy.
//
// Complexity: O(S).
func (g *Graph) Sources() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns |V|, counting destination-only nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Looped reports whether self-arcs are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
