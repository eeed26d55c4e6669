// Package dfs implements cycle detection for undirected core.Graphs.
//
// FindCycle walks every component with three-color marking. In an undirected
// DFS the first non-parent edge that reaches an already-discovered vertex
// always points to a Gray ancestor, so the cycle is the stack segment from that
// ancestor down to the current vertex.
//
// Complexity:
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V) (state map + explicit stack)
package dfs

import (
	"cmp"

	"github.com/katalvlaran/undigraph/core"
)

// cycleFrame is one stack entry of the cycle search; the frame below it is its parent.
type cycleFrame[V cmp.Ordered] struct {
	v    V
	nbrs []V
	next int
}

// HasCycle reports whether g contains a cycle. Nil graphs are cycle-free.
func HasCycle[V cmp.Ordered](g *core.Graph[V]) bool {
	_, ok := FindCycle(g)

	return ok
}

// FindCycle returns one cycle of g as a closed vertex sequence
// [v0, v1, ..., vk, v0] and true, or (nil, false) for a forest.
// Components are searched in Vertices() order, so the result is deterministic.
func FindCycle[V cmp.Ordered](g *core.Graph[V]) ([]V, bool) {
	// 1) Prepare visitation state:
	//    White=0 (unvisited), Gray=1 (on stack), Black=2 (completed)
	verts := g.Vertices()
	state := make(map[V]int, len(verts))
	stack := make([]cycleFrame[V], 0, len(verts))

	push := func(v V) {
		state[v] = Gray
		stack = append(stack, cycleFrame[V]{v: v, nbrs: g.Neighbors(v)})
	}

	// 2) Launch DFS from each unvisited vertex
	for _, root := range verts {
		if state[root] != White {
			continue
		}
		push(root)

		for len(stack) > 0 {
			i := len(stack) - 1
			top := &stack[i]
			if top.next >= len(top.nbrs) {
				// Backtrack: pop and mark Black (fully explored)
				state[top.v] = Black
				stack = stack[:i]
				continue
			}

			w := top.nbrs[top.next]
			top.next++
			// Skip the trivial backtrack to the DFS parent.
			if i > 0 && w == stack[i-1].v {
				continue
			}
			switch state[w] {
			case White:
				push(w)
			case Gray:
				// Back-edge to an ancestor: the stack segment is the cycle.
				return closeCycle(stack, w), true
			}
		}
	}

	return nil, false
}

// closeCycle extracts the stack segment from ancestor to the top and closes it.
func closeCycle[V cmp.Ordered](stack []cycleFrame[V], ancestor V) []V {
	idx := len(stack) - 1
	for idx > 0 && stack[idx].v != ancestor {
		idx--
	}
	cycle := make([]V, 0, len(stack)-idx+1)
	for _, f := range stack[idx:] {
		cycle = append(cycle, f.v)
	}

	return append(cycle, ancestor)
}
