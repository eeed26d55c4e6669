// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r, c) has index r*cols + c (row-major).
//   - Edges: right neighbor then down neighbor, scanning cells row-major.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that builds a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d, cols=%d; both must be ≥ %d: %w",
				methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		addVertices(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					g.AddEdge(u, u+1)
				}
				if r+1 < rows {
					g.AddEdge(u, u+cols)
				}
			}
		}

		return nil
	}
}
