// Package dijkstra provides two interchangeable implementations of Dijkstra's
// single-pair shortest-path algorithm on directed graphs with non-negative
// weights, intended for side-by-side comparison.
//
// Overview:
//
//   - Heap settles nodes in order of a binary min-heap with lazy deletion:
//     cheaper relaxations push duplicates and stale entries are skipped on
//     pop, so no decrease-key operation is needed.
//   - Scan keeps an unordered array of unsettled nodes and finds the next
//     node with a full linear scan. It is the quadratic baseline.
//   - Both stop as soon as the target is settled.
//
// Determinism:
//
//	Ties on distance are broken by lexicographic node ID in both engines, so
//	the two settle nodes in exactly the same order. For any input they
//	return the same Distance and the same Visited count, and repeated runs
//	are reproducible.
//
// Outcomes, not faults:
//
//   - Unreachable target: Distance == Unreachable (+Inf), Visited equals the
//     size of the component reachable from the source.
//   - Unknown source: treated as an isolated node at distance 0.
//   - Source == Target: Distance 0, Visited 1, no arc is examined.
//
// Only structural problems are errors: ErrNilGraph, ErrEmptyEndpoint,
// ErrOptionViolation.
//
// API reference:
//
//	func Heap(g core.Adjacency, source, target string, opts ...Option) (Result, error)
//	func Scan(g core.Adjacency, source, target string, opts ...Option) (Result, error)
//
//	  - opts:
//	      • WithReturnPath():          fill Result.Path.
//	      • WithMaxDistance(float64):  never settle nodes beyond this distance.
//	      • WithOnSettle(fn):          observe settle events.
//	      • WithOnRelax(fn):           observe relaxations (prev, next).
//
// Complexity:
//
//   - Heap: O((V + E) log V) time, O(V + E) space.
//   - Scan: O(V² + E) time, O(V) space.
//
// Thread safety:
//
//	Engines keep all state per call and only read the graph, so concurrent
//	invocations over a shared core.Graph need no coordination. There is no
//	cancellation: callers wanting a deadline must enforce it externally and
//	discard late results.
package dijkstra
