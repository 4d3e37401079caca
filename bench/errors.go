package bench

import "errors"

var (
	// ErrInvalidConfig wraps every configuration problem found by Validate.
	ErrInvalidConfig = errors.New("bench: invalid configuration")

	// ErrNoInstances indicates a Run or Scale call without input.
	ErrNoInstances = errors.New("bench: no instances to run")
)
