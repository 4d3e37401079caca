// File: view.go
// Role: Non-mutating graph views (cloning topology with a reduced node set).
// Determinism:
//   - Views keep the source insertion order of the input graph.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// Clone returns a deep copy of g with identical flags, node set, source
// order and arcs.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.emptyLike(len(g.nodes))
	for id, isSource := range g.nodes {
		out.nodes[id] = isSource
	}
	out.order = append(out.order, g.order...)
	for from, inner := range g.adjacency {
		cp := make(map[string]float64, len(inner))
		for to, w := range inner {
			cp[to] = w
		}
		out.adjacency[from] = cp
	}
	out.arcs = g.arcs

	return out
}

// InducedSubgraph keeps only the sources in keep (in the original insertion
// order) and the arcs whose both endpoints are kept sources. IDs in keep
// that are not sources of g are ignored, so every arc destination of the
// result is also reported by Nodes.
//
// Complexity: O(S + E).
func (g *Graph) InducedSubgraph(keep map[string]struct{}) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.emptyLike(len(keep))
	for _, from := range g.order {
		if _, ok := keep[from]; ok {
			out.addSourceLocked(from)
		}
	}
	for _, from := range out.order {
		inner := out.adjacency[from]
		for to, w := range g.adjacency[from] {
			if !out.nodes[to] {
				continue
			}
			inner[to] = w
			out.arcs++
		}
	}

	return out
}

// Prefix returns the subgraph induced by the first n sources in insertion
// order. n ≤ 0 yields an empty graph; n ≥ len(Sources()) yields the
// source-induced subgraph, which drops destination-only nodes.
//
// Complexity: O(S + E).
func (g *Graph) Prefix(n int) *Graph {
	src := g.Sources()
	if n < 0 {
		n = 0
	}
	if n > len(src) {
		n = len(src)
	}
	keep := make(map[string]struct{}, n)
	for _, id := range src[:n] {
		keep[id] = struct{}{}
	}

	return g.InducedSubgraph(keep)
}

// emptyLike allocates a graph carrying g's flags. Caller holds g.mu.
func (g *Graph) emptyLike(capacity int) *Graph {
	opts := []GraphOption{WithCapacity(capacity)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return NewGraph(opts...)
}
