// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// impl_wheel.go - Wheel(n): W_n = rim C_{n-1} on 0..n-2 plus hub n-1.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); the rim must itself be a simple cycle.
//   - Rim edges first, then spokes hub-i for i asc.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		// 1) Rim via the cycle constructor to keep a single source of truth.
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		// 2) Hub and spokes.
		hub := n - 1
		g.AddVertex(hub)
		for i := 0; i < hub; i++ {
			g.AddEdge(hub, i)
		}

		return nil
	}
}
