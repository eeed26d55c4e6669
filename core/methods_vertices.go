// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns identifiers sorted ascending.

package core

import "slices"

// AddVertex inserts v if missing.
//
// Behavior highlights:
//   - Idempotent: adding an existing vertex keeps its neighbor set untouched.
//
// Complexity: O(1)
func (g *Graph[V]) AddVertex(v V) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[V]struct{})
	}
}

// HasVertex reports whether v is present (isolated vertices included).
// Complexity: O(1)
func (g *Graph[V]) HasVertex(v V) bool {
	if g == nil {
		return false
	}
	_, ok := g.adjacency[v]

	return ok
}

// RemoveVertex deletes v and every edge incident to it.
//
// Implementation:
//   - Stage 1: Look up v; absent vertices are a no-op.
//   - Stage 2: Drop v from each neighbor's set (symmetry lets us walk only deg(v) sets).
//   - Stage 3: Delete v's own entry.
//
// Complexity: O(deg(v))
func (g *Graph[V]) RemoveVertex(v V) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return
	}
	for u := range nbrs {
		if set, present := g.adjacency[u]; present {
			delete(set, v)
		}
	}
	delete(g.adjacency, v)
}

// Vertices returns every vertex identifier, sorted ascending.
// The slice is freshly allocated; mutating it does not affect the graph.
// Complexity: O(V·log V)
func (g *Graph[V]) Vertices() []V {
	if g == nil {
		return nil
	}
	out := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Degree returns the number of neighbors of v, or 0 when v is absent.
// Complexity: O(1)
func (g *Graph[V]) Degree(v V) int {
	if g == nil {
		return 0
	}

	return len(g.adjacency[v])
}

// Size returns the number of vertices.
// Complexity: O(1)
func (g *Graph[V]) Size() int {
	if g == nil {
		return 0
	}

	return len(g.adjacency)
}

// IsEmpty reports whether the graph has no vertices.
// Complexity: O(1)
func (g *Graph[V]) IsEmpty() bool {
	return g.Size() == 0
}
