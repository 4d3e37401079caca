// Package core provides the thread-safe, directed, non-negatively weighted
// Graph consumed by the shortest-path engines, and the Adjacency lookup
// interface that decouples those engines from any particular in-memory
// representation.
//
// The Graph G = (V,E) follows the mapping-of-mappings model:
//
//   - adjacency[from][to] = weight, one arc per ordered pair
//   - a node with no outer entry has no outgoing arcs, but may still be a
//     destination; V is the union of sources and destinations
//   - weights are finite and ≥ 0; zero is valid
//   - self-arcs only with WithLoops()
//
// Lookup contract:
//
//	Neighbors(id) returns the outgoing arcs of id sorted by destination,
//	or nil when id is a sink or unknown. It never returns an error and
//	never panics, so engines can treat an unknown start node as an isolated
//	node with distance 0. Results are cached per node and shared between
//	callers, who must not modify them; Warm fills the cache up front.
//
// Determinism:
//
//   - Nodes() is sorted lexicographically.
//   - Sources() keeps insertion order (used by Prefix for scaling runs).
//   - Neighbors() is sorted by destination ID.
//
// Concurrency:
//
//	A single sync.RWMutex guards all state. Engines only read, so any
//	number of runs may share one Graph concurrently.
//
// Views:
//
//	Clone, InducedSubgraph and Prefix return fresh graphs and never mutate
//	the receiver.
package core
