// Package dfs implements maximal k-core extraction on undirected core.Graphs.
//
// The k-core of G is the maximal induced subgraph in which every vertex has
// degree >= k. KCore computes it in two passes:
//
//  1. A depth-first marking pass. Each vertex is finished only after its
//     unvisited, unmarked neighbors; its effective degree is its degree minus
//     the children that reported themselves deletable. Effective degree < k
//     marks the vertex and reports it deletable to its DFS parent.
//  2. A settling pass that peels the survivors until every one of them has at
//     least k surviving neighbors.
//
// The marking pass over-counts neighbors (ancestors and already-finished
// vertices are assumed to stay), so it only ever marks vertices outside the
// k-core; the settling pass then removes whatever cascade it could not see.
// Together they reach the same fixed point as classical iterative peeling.
//
// Complexity:
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V)
package dfs

import (
	"cmp"

	"github.com/katalvlaran/undigraph/core"
)

// coreFrame is one stack entry of the marking pass.
type coreFrame[V cmp.Ordered] struct {
	v      V
	nbrs   []V
	next   int
	degree int // degree minus children reported deletable
}

// KCore returns the maximal induced subgraph of g whose vertices all have
// degree >= k, and true. When no non-empty subgraph qualifies it returns
// (nil, false).
//
// The input graph is never mutated: the result is a newly constructed graph
// holding the surviving vertices and every edge of g between them.
// For k <= 0 every vertex qualifies, so any non-empty graph is returned whole.
func KCore[V cmp.Ordered](g *core.Graph[V], k int) (*core.Graph[V], bool) {
	if g.IsEmpty() {
		return nil, false
	}

	// 1) Depth-first marking pass over every component.
	verts := g.Vertices()
	visited := make(map[V]bool, len(verts))
	deleted := make(map[V]bool)
	stack := make([]coreFrame[V], 0, len(verts))

	push := func(v V) {
		visited[v] = true
		stack = append(stack, coreFrame[V]{v: v, nbrs: g.Neighbors(v), degree: g.Degree(v)})
	}

	for _, root := range verts {
		if visited[root] {
			continue
		}
		push(root)

		for len(stack) > 0 {
			i := len(stack) - 1
			top := &stack[i]

			// 1a) Descend into the next unvisited, unmarked neighbor.
			if top.next < len(top.nbrs) {
				w := top.nbrs[top.next]
				top.next++
				if visited[w] || deleted[w] {
					continue
				}
				push(w)
				continue
			}

			// 1b) All neighbors processed: decide deletability, report to parent.
			v, degree := top.v, top.degree
			stack = stack[:i]
			if degree < k {
				deleted[v] = true
				if i > 0 {
					stack[i-1].degree--
				}
			}
		}
	}

	// 2) Settle cascades the single pass could not observe.
	settle(g, verts, k, deleted)

	// 3) Build the induced result from the survivors.
	keep := make(map[V]bool, len(verts)-len(deleted))
	for _, v := range verts {
		if !deleted[v] {
			keep[v] = true
		}
	}
	if len(keep) == 0 {
		return nil, false
	}

	return core.InducedSubgraph(g, keep), true
}

// settle runs classical peeling over the vertices not yet in deleted, adding
// every vertex whose surviving degree drops below k.
func settle[V cmp.Ordered](g *core.Graph[V], verts []V, k int, deleted map[V]bool) {
	// 1) Surviving degree of each survivor.
	live := make(map[V]int, len(verts))
	for _, v := range verts {
		if deleted[v] {
			continue
		}
		d := 0
		for _, w := range g.Neighbors(v) {
			if w != v && !deleted[w] {
				d++
			}
		}
		live[v] = d
	}

	// 2) Seed the queue with survivors already below k.
	var queue []V
	for _, v := range verts {
		if !deleted[v] && live[v] < k {
			deleted[v] = true
			queue = append(queue, v)
		}
	}

	// 3) Peel: each removal decrements its surviving neighbors exactly once.
	for qi := 0; qi < len(queue); qi++ {
		for _, w := range g.Neighbors(queue[qi]) {
			if deleted[w] {
				continue
			}
			live[w]--
			if live[w] < k {
				deleted[w] = true
				queue = append(queue, w)
			}
		}
	}
}
