// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left part is 0..n1-1, right part is n1..n1+n2-1.
//   - Edges emitted left-major: for each left i asc, each right j asc.
//
// Complexity: O(n1·n2) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minBipartitePartition   = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if n1 < minBipartitePartition || n2 < minBipartitePartition {
			return fmt.Errorf("%s: n1=%d, n2=%d; both must be ≥ %d: %w",
				methodCompleteBipartite, n1, n2, minBipartitePartition, ErrTooFewVertices)
		}
		addVertices(g, n1+n2)
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				g.AddEdge(i, j)
			}
		}

		return nil
	}
}
