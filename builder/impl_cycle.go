// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_cycle.go - Cycle(n): C_n over 0..n-1 closed by (n-1)-0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings are not simple.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(g, n)
		for i := 0; i < n; i++ {
			g.AddEdge(i, (i+1)%n)
		}

		return nil
	}
}
