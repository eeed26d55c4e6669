package tree

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/undigraph/bfs"
)

// noDiameter marks a subtree without any branching path yet.
const noDiameter = -1

// span is one stack entry of the post-order pass.
type span[V cmp.Ordered] struct {
	v      V
	nbrs   []V
	next   int
	kids   int
	d1, d2 int // two deepest child depths, d1 ≥ d2
	best   int // best diameter reported by any child, or noDiameter
}

// fold records one finished child's (depth, diameter) on its parent.
func (s *span[V]) fold(depth, diam int) {
	s.kids++
	switch {
	case depth > s.d1:
		s.d1, s.d2 = depth, s.d1
	case depth > s.d2:
		s.d2 = depth
	}
	s.best = max(s.best, diam)
}

// result combines the children folded so far into this vertex's own pair.
func (s *span[V]) result() (depth, diam int) {
	switch s.kids {
	case 0:
		return 0, noDiameter
	case 1:
		return s.d1 + 1, s.best
	default:
		return s.d1 + 1, max(s.best, s.d1+s.d2+2)
	}
}

// Diameter validates t and returns the number of interior vertices on a
// longest path of the tree (its edge length minus one, 0 for a single vertex).
func Diameter[V cmp.Ordered](t Tree[V]) (int, error) {
	if err := Validate(t); err != nil {
		return 0, fmt.Errorf("Diameter: %w", err)
	}
	g := t.Graph

	// 1) Post-order over the tree; the frame below each entry is its parent.
	visited := make(map[V]bool, g.Size())
	stack := make([]span[V], 0, g.Size())
	push := func(v V) {
		visited[v] = true
		stack = append(stack, span[V]{v: v, nbrs: g.Neighbors(v), d1: -1, d2: -1, best: noDiameter})
	}
	push(t.Root)

	var depth, diam int
	for len(stack) > 0 {
		i := len(stack) - 1
		top := &stack[i]

		// 1a) Descend into the next unvisited neighbor (a child).
		if top.next < len(top.nbrs) {
			w := top.nbrs[top.next]
			top.next++
			if !visited[w] {
				push(w)
			}
			continue
		}

		// 1b) Finished: fold into the parent, or keep as the root's pair.
		depth, diam = top.result()
		stack = stack[:i]
		if i > 0 {
			stack[i-1].fold(depth, diam)
		}
	}

	// 2) Normalize at the root; a lone vertex has nothing interior.
	return max(depth, diam, 1) - 1, nil
}

// LongestPath validates t and returns one longest simple path of the tree,
// starting from its smaller endpoint. Ties are broken toward smaller vertices,
// so the result is deterministic. A single-vertex tree yields [Root].
//
// Steps:
//  1. Breadth-first from Root; the farthest vertex a is one end of some longest path.
//  2. Breadth-first from a; the farthest vertex b is the other end.
//  3. Read the a→b path off the second search, smaller end first.
func LongestPath[V cmp.Ordered](t Tree[V]) ([]V, error) {
	if err := Validate(t); err != nil {
		return nil, fmt.Errorf("LongestPath: %w", err)
	}

	first, err := bfs.BFS(t.Graph, t.Root)
	if err != nil {
		return nil, fmt.Errorf("LongestPath: %w", err)
	}
	second, err := bfs.BFS(t.Graph, first.Farthest())
	if err != nil {
		return nil, fmt.Errorf("LongestPath: %w", err)
	}
	path, err := second.PathTo(second.Farthest())
	if err != nil {
		return nil, fmt.Errorf("LongestPath: %w", err)
	}
	if path[0] > path[len(path)-1] {
		slices.Reverse(path)
	}

	return path, nil
}
