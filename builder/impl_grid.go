// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs are fixed coordinates "r,c"; cfg.idFn is not used.
//   - Vertices in row-major order; for each (r,c) emit Right then Bottom.
//
// Complexity:
//   - Time: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodGrid = "Grid"
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.Ensure(GridID(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					connect(g, cfg, u, GridID(r, c+1))
				}
				if r+1 < rows {
					connect(g, cfg, u, GridID(r+1, c))
				}
			}
		}

		return nil
	}
}
