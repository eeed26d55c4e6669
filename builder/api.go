// SPDX-License-Identifier: MIT
// Package: undigraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   • Constructors mutate an index-space core.Graph[int]; BuildGraph relabels it.
//   • Functional options resolve into an immutable builderConfig (no global state).
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   • Safety: constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

// Constructor applies a deterministic graph mutation in index space using the
// resolved builderConfig. Constructors MUST validate parameters before touching
// g and return sentinel errors (no panics).
type Constructor func(g *core.Graph[int], cfg builderConfig) error

// Build applies cons in order to a fresh index-space graph.
// Equivalent to BuildGraph(IntID, opts, cons...).
func Build(opts []Option, cons ...Constructor) (*core.Graph[int], error) {
	return BuildGraph(IntID, opts, cons...)
}

// BuildGraph resolves the builder configuration from opts, applies all
// constructors in order, and relabels every index through idFn.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial graph is returned.
//
// Complexity: Σ cost of each constructor + O(V + E) relabeling.
func BuildGraph[V cmp.Ordered](idFn IDFn[V], opts []Option, cons ...Constructor) (*core.Graph[V], error) {
	if idFn == nil {
		return nil, fmt.Errorf("BuildGraph: nil IDFn: %w", ErrConstructFailed)
	}

	// 1) Resolve deterministic configuration.
	cfg := newBuilderConfig(opts...)

	// 2) Run constructors sequentially in index space.
	idx := core.NewGraph[int]()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(idx, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// 3) Relabel; a non-injective scheme would silently merge vertices.
	g := core.NewGraph[V]()
	seen := make(map[V]int, idx.Size())
	for _, i := range idx.Vertices() {
		id := idFn(i)
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("BuildGraph: indices %d and %d both map to %v: %w", prev, i, id, ErrConstructFailed)
		}
		seen[id] = i
		g.AddVertex(id)
	}
	for _, e := range idx.Edges() {
		g.AddEdge(idFn(e.From), idFn(e.To))
	}

	return g, nil
}

// Shift returns a Constructor that runs c on its own index space and adds the
// result to g with every index moved by base. Combine with BuildGraph to lay
// several topologies side by side:
//
//	Build(nil, Complete(4), Shift(4, Complete(4)))  // two disjoint K4
func Shift(base int, c Constructor) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Shift: nil constructor: %w", ErrConstructFailed)
		}
		part := core.NewGraph[int]()
		if err := c(part, cfg); err != nil {
			return fmt.Errorf("Shift(%d): %w", base, err)
		}
		for _, v := range part.Vertices() {
			g.AddVertex(v + base)
		}
		for _, e := range part.Edges() {
			g.AddEdge(e.From+base, e.To+base)
		}

		return nil
	}
}

// addVertices inserts indices 0..n-1 in ascending order.
func addVertices(g *core.Graph[int], n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
}

// Append returns a Constructor that places c right after the vertices already
// in g: indices start at max(g)+1, or 0 for an empty graph. Chaining Append
// lays shapes side by side without computing offsets by hand.
func Append(c Constructor) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		base := 0
		if vs := g.Vertices(); len(vs) > 0 {
			base = vs[len(vs)-1] + 1
		}

		return Shift(base, c)(g, cfg)
	}
}
