// File: view.go
// Role: Non-mutating graph views and debug rendering.
// Determinism:
//   - String() renders vertices and neighbors in ascending order.

package core

import (
	"cmp"
	"fmt"
	"strings"
)

// InducedSubgraph returns a new Graph induced by the set keep: the result
// contains only vertices v with keep[v] == true that are present in g, and
// every edge of g whose endpoints are both kept. The input graph is not mutated.
//
// Complexity: O(V + E)
func InducedSubgraph[V cmp.Ordered](g *Graph[V], keep map[V]bool) *Graph[V] {
	out := NewGraph[V]()
	if g == nil {
		return out
	}
	for v, set := range g.adjacency {
		if !keep[v] {
			continue
		}
		nbrs := make(map[V]struct{}, len(set))
		for u := range set {
			if keep[u] {
				nbrs[u] = struct{}{}
			}
		}
		out.adjacency[v] = nbrs
	}

	return out
}

// String renders the graph as "{1:[2 3] 2:[1] 3:[1]}".
func (g *Graph[V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range g.Vertices() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", v, g.Neighbors(v))
	}
	sb.WriteByte('}')

	return sb.String()
}
