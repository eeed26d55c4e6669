package triangle

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

// Triangle is a 3-clique with A < B < C.
type Triangle[V cmp.Ordered] struct {
	A, B, C V
}

// String renders the triangle as "A-B-C".
func (t Triangle[V]) String() string {
	return fmt.Sprintf("%v-%v-%v", t.A, t.B, t.C)
}

// Has reports whether g contains three distinct, pairwise adjacent vertices.
//
// For every edge {u,v} the endpoint with fewer neighbors is scanned and each
// neighbor w is tested for adjacency to the other endpoint; the first common
// neighbor closes a triangle.
func Has[V cmp.Ordered](g *core.Graph[V]) bool {
	for _, e := range g.Edges() {
		small, other := e.From, e.To
		if g.Degree(small) > g.Degree(other) {
			small, other = other, small
		}
		for _, w := range g.Neighbors(small) {
			if w == e.From || w == e.To {
				continue
			}
			if g.HasEdge(other, w) {
				return true
			}
		}
	}

	return false
}

// Find returns the lexicographically smallest triangle (A, B, C) of g and
// true, or the zero Triangle and false when g is triangle-free.
//
// Steps:
//  1. Walk Edges() in ascending (From, To) order; each edge is a candidate (A, B).
//  2. Scan B's sorted neighbors above B and return the first C adjacent to A.
//
// The first hit is minimal: A and B are minimal by edge order and C by the
// ascending neighbor scan.
func Find[V cmp.Ordered](g *core.Graph[V]) (Triangle[V], bool) {
	for _, e := range g.Edges() {
		for _, w := range g.Neighbors(e.To) {
			if w <= e.To {
				continue
			}
			if g.HasEdge(e.From, w) {
				return Triangle[V]{A: e.From, B: e.To, C: w}, true
			}
		}
	}

	return Triangle[V]{}, false
}

// Count returns the number of distinct triangles in g. Each triangle
// A < B < C is counted once, from its edge {A, B}.
func Count[V cmp.Ordered](g *core.Graph[V]) int {
	n := 0
	for _, e := range g.Edges() {
		// 1) Probe the shorter neighbor list against the other endpoint.
		small, other := e.From, e.To
		if g.Degree(small) > g.Degree(other) {
			small, other = other, small
		}
		for _, w := range g.Neighbors(small) {
			// 2) Only apexes above both endpoints, so each triangle counts once.
			if w > e.To && g.HasEdge(other, w) {
				n++
			}
		}
	}

	return n
}

// HasBruteForce is the reference O(V·E) check: build the edge list once,
// then test every vertex for adjacency to both endpoints of every edge.
// It returns the same verdict as Has for every input.
func HasBruteForce[V cmp.Ordered](g *core.Graph[V]) bool {
	edges := g.Edges()
	for _, v := range g.Vertices() {
		for _, e := range edges {
			if v == e.From || v == e.To {
				continue
			}
			if g.HasEdge(v, e.From) && g.HasEdge(v, e.To) {
				return true
			}
		}
	}

	return false
}
