// SPDX-License-Identifier: MIT
// Package: spbench/builder
//
// impl_path.go - implementation of Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices via cfg.idFn in index order; arcs (i-1) → i for i = 1..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spbench/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed chain P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddNode(id); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodPath, id, err)
			}
		}

		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddArc(u, v, w); err != nil {
				return fmt.Errorf("%s: AddArc(%s→%s, w=%g): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}
