// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_random_tree.go - RandomTree(n): uniform random recursive tree.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertex i ≥ 1 attaches to a parent drawn uniformly from 0..i-1, so the
//     result is connected, acyclic and has exactly n-1 edges.
//   - cfg.rng is required when n > 2 (else ErrNeedRandSource); for n ≤ 2 the
//     tree is forced.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

const (
	methodRandomTree   = "RandomTree"
	minRandomTreeNodes = 1
	forcedTreeNodes    = 2
)

// RandomTree returns a Constructor that samples a random recursive tree on n
// vertices rooted at index 0.
func RandomTree(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minRandomTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomTree, n, minRandomTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil && n > forcedTreeNodes {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		addVertices(g, n)
		for i := 1; i < n; i++ {
			parent := 0
			if i > 1 {
				parent = cfg.rng.Intn(i)
			}
			g.AddEdge(parent, i)
		}

		return nil
	}
}
