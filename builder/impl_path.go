// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_path.go - Path(n): P_n with edges (i-1)-i for i=1..n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices 0..n-1 in ascending order; edges in increasing i.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(g, n)
		for i := 1; i < n; i++ {
			g.AddEdge(i-1, i)
		}

		return nil
	}
}
