// Package dfs implements articulation-point (cut-vertex) detection on
// undirected core.Graphs using Tarjan's discovery/low-link numbering.
//
// A vertex is an articulation point when removing it (and its incident edges)
// increases the number of connected components of its component.
//
// Complexity:
//
//   - Time:   O(V + E·log d)
//   - Memory: O(V) for disc/low maps and the explicit frame stack
package dfs

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/undigraph/core"
)

// cutFrame is one stack entry of the articulation traversal. The frame below
// it on the stack is its DFS parent, so no parent field is stored.
type cutFrame[V cmp.Ordered] struct {
	v        V
	nbrs     []V
	next     int
	children int // tree children discovered so far
}

// CutVertices returns every articulation point of g, sorted ascending.
//
// Every connected component is traversed from its smallest unvisited vertex.
// For each vertex the traversal keeps:
//
//	disc[v] - discovery time, assigned in visitation order
//	low[v]  - min discovery time reachable from v's subtree via at most one back-edge
//
// After a tree child c of v finishes, low[v] = min(low[v], low[c]); if
// low[c] >= disc[v], v is a cut vertex unless v is the component root and c is
// its first tree child. A root is therefore a cut vertex iff it has more than
// one tree child.
//
// The input graph is not mutated; a nil or empty graph yields an empty slice.
func CutVertices[V cmp.Ordered](g *core.Graph[V]) []V {
	// 1) Per-vertex numbering and the accumulated result set.
	verts := g.Vertices()
	disc := make(map[V]int, len(verts))
	low := make(map[V]int, len(verts))
	cut := make(map[V]struct{})
	clock := 0
	stack := make([]cutFrame[V], 0, len(verts))

	visit := func(v V) {
		disc[v] = clock
		low[v] = clock
		clock++
		stack = append(stack, cutFrame[V]{v: v, nbrs: g.Neighbors(v)})
	}

	// 2) One traversal per connected component.
	for _, root := range verts {
		if _, seen := disc[root]; seen {
			continue
		}
		visit(root)

		for len(stack) > 0 {
			i := len(stack) - 1
			top := &stack[i]

			// 2a) Next neighbor: tree edge or back edge.
			if top.next < len(top.nbrs) {
				w := top.nbrs[top.next]
				top.next++
				if _, seen := disc[w]; !seen {
					top.children++
					visit(w)
					continue
				}
				if i > 0 && w == stack[i-1].v {
					continue // edge back to the DFS parent
				}
				low[top.v] = min(low[top.v], disc[w])
				continue
			}

			// 2b) Vertex finished: fold its low-link into the parent.
			child := top.v
			stack = stack[:i]
			if i == 0 {
				continue
			}
			parent := &stack[i-1]
			low[parent.v] = min(low[parent.v], low[child])
			if low[child] >= disc[parent.v] && (i-1 > 0 || parent.children > 1) {
				cut[parent.v] = struct{}{}
			}
		}
	}

	// 3) Deterministic output.
	out := make([]V, 0, len(cut))
	for v := range cut {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}
