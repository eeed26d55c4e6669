// Package core defines the central Graph and Edge types and the constructors
// used to build them.
//
// This file declares Graph, Edge, and the NewGraph/FromAdjacency/FromLists
// constructors.
package core

import (
	"cmp"
	"fmt"
)

// Edge is an undirected edge reported by Graph.Edges.
// From is always strictly less than To.
type Edge[V cmp.Ordered] struct {
	// From is the smaller endpoint.
	From V

	// To is the larger endpoint.
	To V
}

// String renders the edge as "from-to".
func (e Edge[V]) String() string {
	return fmt.Sprintf("%v-%v", e.From, e.To)
}

// Graph is a mutable undirected simple graph keyed by vertex identifier.
//
// adjacency maps every present vertex to its neighbor set. The relation is kept
// symmetric by every mutation method. The zero value is not usable; construct
// with NewGraph, FromAdjacency or FromLists.
type Graph[V cmp.Ordered] struct {
	// adjacency[u][v] = struct{}{} for every edge {u,v}; empty set for isolated u.
	adjacency map[V]map[V]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[V cmp.Ordered]() *Graph[V] {
	return &Graph[V]{adjacency: make(map[V]map[V]struct{})}
}

// FromAdjacency builds a Graph from an existing adjacency mapping.
//
// The mapping is copied (set by set), so later changes to adj do not leak into
// the graph. The caller is responsible for symmetry: the constructor does not
// validate that v ∈ adj[u] implies u ∈ adj[v].
//
// Complexity: O(V + E)
func FromAdjacency[V cmp.Ordered](adj map[V]map[V]struct{}) *Graph[V] {
	g := &Graph[V]{adjacency: make(map[V]map[V]struct{}, len(adj))}
	for u, nbrs := range adj {
		set := make(map[V]struct{}, len(nbrs))
		for v := range nbrs {
			set[v] = struct{}{}
		}
		g.adjacency[u] = set
	}

	return g
}

// FromLists builds a Graph from neighbor lists, e.g.
//
//	core.FromLists(map[int][]int{1: {2, 3}, 2: {1}, 3: {1}})
//
// Duplicate neighbors collapse into one. Like FromAdjacency it trusts the
// caller for symmetry.
//
// Complexity: O(V + E)
func FromLists[V cmp.Ordered](lists map[V][]V) *Graph[V] {
	g := &Graph[V]{adjacency: make(map[V]map[V]struct{}, len(lists))}
	for u, nbrs := range lists {
		set := make(map[V]struct{}, len(nbrs))
		for _, v := range nbrs {
			set[v] = struct{}{}
		}
		g.adjacency[u] = set
	}

	return g
}
