package tree

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/undigraph/dfs"
)

// Validate checks that t describes a tree reachable from its root.
//
// Steps:
//  1. Graph must be non-nil (ErrGraphNil) and contain Root.
//  2. Every vertex must be reachable from Root.
//  3. A connected graph is acyclic iff it has exactly V-1 edges; on failure
//     the offending cycle is named in the error.
//
// All failures except a nil graph wrap ErrInvalidTree.
func Validate[V cmp.Ordered](t Tree[V]) error {
	g := t.Graph
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(t.Root) {
		return fmt.Errorf("root %v not in graph: %w", t.Root, ErrInvalidTree)
	}

	reached := dfs.ComponentOf(g, t.Root)
	if len(reached) != g.Size() {
		return fmt.Errorf("%d of %d vertices unreachable from root %v: %w",
			g.Size()-len(reached), g.Size(), t.Root, ErrInvalidTree)
	}

	if g.EdgeCount() != g.Size()-1 {
		if cycle, ok := dfs.FindCycle(g); ok {
			return fmt.Errorf("cycle %v: %w", cycle, ErrInvalidTree)
		}

		return fmt.Errorf("%d edges for %d vertices: %w", g.EdgeCount(), g.Size(), ErrInvalidTree)
	}

	return nil
}
