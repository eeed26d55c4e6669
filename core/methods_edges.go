// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors() and Edges() return sorted results.

package core

import (
	"cmp"
	"slices"
)

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
//
// Steps:
//  1. Ensure u and v exist via AddVertex.
//  2. If u == v stop: self-loops are never created.
//  3. Insert v into u's set and u into v's set.
//
// Re-adding an existing edge is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(u, v V) {
	g.AddVertex(u)
	g.AddVertex(v)
	if u == v {
		return
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
}

// RemoveEdge removes {u,v} when both endpoints exist; otherwise it does nothing.
// Complexity: O(1)
func (g *Graph[V]) RemoveEdge(u, v V) {
	uSet, okU := g.adjacency[u]
	vSet, okV := g.adjacency[v]
	if !okU || !okV {
		return
	}
	delete(uSet, v)
	delete(vSet, u)
}

// HasEdge reports whether {u,v} is an edge.
// Both endpoints must exist and each must list the other, so a corrupted
// one-sided entry reads as "no edge".
// Complexity: O(1)
func (g *Graph[V]) HasEdge(u, v V) bool {
	if g == nil {
		return false
	}
	uSet, okU := g.adjacency[u]
	vSet, okV := g.adjacency[v]
	if !okU || !okV {
		return false
	}
	_, uv := uSet[v]
	_, vu := vSet[u]

	return uv && vu
}

// Neighbors returns the neighbors of v sorted ascending.
// An absent vertex yields an empty (nil) slice, never an error.
// Complexity: O(d·log d)
func (g *Graph[V]) Neighbors(v V) []V {
	if g == nil {
		return nil
	}
	set := g.adjacency[v]
	if len(set) == 0 {
		return nil
	}
	out := make([]V, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	slices.Sort(out)

	return out
}

// EdgeCount returns the number of undirected edges (half the degree sum).
// Complexity: O(V)
func (g *Graph[V]) EdgeCount() int {
	if g == nil {
		return 0
	}
	sum := 0
	for _, set := range g.adjacency {
		sum += len(set)
	}

	return sum / 2
}

// Edges returns each undirected edge once with From < To, sorted by (From, To).
// Complexity: O(V + E·log E)
func (g *Graph[V]) Edges() []Edge[V] {
	if g == nil {
		return nil
	}
	out := make([]Edge[V], 0, g.EdgeCount())
	for u, set := range g.adjacency {
		for v := range set {
			if u < v {
				out = append(out, Edge[V]{From: u, To: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge[V]) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}

		return cmp.Compare(a.To, b.To)
	})

	return out
}

// AdjacencyList returns a read-only snapshot: vertex → sorted neighbor list.
// Every present vertex has an entry, isolated ones map to an empty slice.
// Complexity: O(V + E·log d)
func (g *Graph[V]) AdjacencyList() map[V][]V {
	if g == nil {
		return map[V][]V{}
	}
	out := make(map[V][]V, len(g.adjacency))
	for v := range g.adjacency {
		nbrs := g.Neighbors(v)
		if nbrs == nil {
			nbrs = []V{}
		}
		out[v] = nbrs
	}

	return out
}
