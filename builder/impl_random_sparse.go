// SPDX-License-Identifier: MIT
// Package: spbench/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model:
//   - Erdős–Rényi-like directed generator: each ordered pair (i,j) becomes
//     an arc with independent probability p.
//   - Self-loops are trialled only when g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Vertices are added via cfg.idFn in index order 0..n-1, so every vertex
//     is a source and Sources() follows index order.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.
//
// Determinism: trials run i asc, then j asc; the weight is drawn right after
// a successful trial.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spbench/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph
// over n vertices with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddNode(id); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodRandomSparse, id, err)
			}
		}
		if p == probMin {
			return nil
		}

		loops := g.Looped()
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				// p == 1 takes every pair without consuming the stream.
				if p < probMax && rng.Float64() >= p {
					continue
				}
				v := cfg.idFn(j)
				w := cfg.weightFn(rng)
				if err := g.AddArc(u, v, w); err != nil {
					return fmt.Errorf("%s: AddArc(%s→%s, w=%g): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}
