package instance

import "errors"

var (
	// ErrMalformed indicates a structurally invalid instance document.
	ErrMalformed = errors.New("instance: malformed document")

	// ErrNoInstances indicates that a directory holds no *.json files.
	ErrNoInstances = errors.New("instance: no instances found")

	// ErrBadSize indicates a non-positive subgraph size.
	ErrBadSize = errors.New("instance: subgraph size must be positive")

	// ErrEmptyGraph indicates an operation that needs at least one source node.
	ErrEmptyGraph = errors.New("instance: graph has no source nodes")
)
