// Package spbench compares two implementations of Dijkstra's single-pair
// shortest-path algorithm on directed graphs with non-negative weights.
//
// Layout:
//
//	core/        Graph model: the Adjacency lookup contract and a concrete,
//	             thread-safe, deterministic adjacency list.
//	dijkstra/    Heap (binary heap, lazy deletion) and Scan (O(V²) linear
//	             scan) engines behind one Engine signature.
//	bfs/         Breadth-first reachability, used by Scan on bare
//	             adjacencies and by tests.
//	instrument/  Measure: wall time, peak heap and allocated bytes of one
//	             engine call.
//	instance/    JSON instances: load, save, prefix subgraphs, statistics.
//	builder/     Seeded synthetic instances (random sparse, grid, path).
//	bench/       The harness: configuration, bounded-parallel runs with
//	             timeouts, cross-engine checks, scaling, reports, metrics.
//	cmd/spbench  Command-line front end.
//
// Quick start:
//
//	g, _ := core.FromMap(map[string]map[string]float64{
//		"A": {"B": 1, "C": 4},
//		"B": {"C": 2},
//	})
//	res, _ := dijkstra.Heap(g, "A", "C", dijkstra.WithReturnPath())
//	// res.Distance == 3, res.Visited == 3, res.Path == [A B C]
//
// Both engines break distance ties by node ID, so for any input they return
// the same Distance and the same Visited count.
package spbench
