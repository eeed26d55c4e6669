// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_star.go - Star(n): hub 0 joined to leaves 1..n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is index 0 so relabeling keeps it first under ordered schemes.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 0
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addVertices(g, n)
		for leaf := 1; leaf < n; leaf++ {
			g.AddEdge(starHub, leaf)
		}

		return nil
	}
}
