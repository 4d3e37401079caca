// Package instance reads and writes benchmark instances: a directed weighted
// graph plus a start and an end node, in the JSON layout produced by the
// road-network generator:
//
//	{
//	  "project":  "shortest_path_solo",
//	  "group_id": "...",
//	  "meta": {"start_node": 123, "end_node": "456", "total_nodes": 10, "total_edges": 20},
//	  "graph": {"123": {"456": 12.5}, "456": {}}
//	}
//
// Node identifiers may appear as JSON numbers or strings in meta; both are
// normalized to strings. The document order of the "graph" object is kept:
// it becomes core.Graph.Sources() and drives Subgraph.
//
// Malformed documents are rejected with ErrMalformed, which wraps every
// problem found (missing sections, non-object adjacency, non-numeric or
// negative weights) rather than only the first one.
package instance
