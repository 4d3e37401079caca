// SPDX-License-Identifier: MIT
// Package: spbench/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Model:
//   - rows×cols lattice with IDs "r,c" (row-major). The coordinate scheme
//     deliberately ignores cfg.idFn.
//   - Each cell is joined to its right and bottom neighbour in both
//     directions; both arcs share one weight draw, like a two-way street.
//
// Contract: rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Complexity: O(rows·cols) time, O(1) extra space.
//
// Determinism: cells row-major, Right before Bottom.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spbench/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a bidirectional rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddNode(id); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := twoWay(g, u, GridID(r, c+1), cfg.weightFn(cfg.rng)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := twoWay(g, u, GridID(r+1, c), cfg.weightFn(cfg.rng)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

func twoWay(g *core.Graph, u, v string, w float64) error {
	if err := g.AddArc(u, v, w); err != nil {
		return fmt.Errorf("%s: AddArc(%s→%s, w=%g): %w", methodGrid, u, v, w, err)
	}
	if err := g.AddArc(v, u, w); err != nil {
		return fmt.Errorf("%s: AddArc(%s→%s, w=%g): %w", methodGrid, v, u, w, err)
	}

	return nil
}
