// Package core provides the in-memory undirected simple Graph that every
// algorithm package of undigraph operates on.
//
// The Graph G = (V,E) is generic over its vertex identifier:
//
//	type Graph[V cmp.Ordered] struct{ ... }
//
// Storage is a single symmetric adjacency-set map:
//
//	adjacency[u][v] = struct{}{}  ⇔  adjacency[v][u] = struct{}{}
//
// A vertex with an empty neighbor set is present; an absent vertex has no entry.
//
// Why use core.Graph?
//
//   - Total API - no method fails on a missing vertex; absence reads as empty/false.
//   - Deterministic iteration - Vertices(), Neighbors(), Edges() return sorted results,
//     so every traversal built on top of them visits vertices in a reproducible order.
//   - Clone support - CloneEmpty (vertices only), Clone (deep copy), InducedSubgraph.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V)                 // O(1), idempotent
//	HasVertex(v V) bool            // O(1)
//	RemoveVertex(v V)              // O(deg(v)), no-op if absent
//
//	// Edge lifecycle
//	AddEdge(u, v V)                // O(1), idempotent, creates endpoints
//	RemoveEdge(u, v V)             // O(1), no-op unless both endpoints exist
//	HasEdge(u, v V) bool           // O(1), checks both directions
//
//	// Query
//	Neighbors(v V) []V             // O(d·log d), sorted copy
//	Vertices() []V                 // O(V·log V), sorted
//	Edges() []Edge[V]              // O(E·log E), From < To
//	AdjacencyList() map[V][]V      // O(V+E) snapshot
//	Degree(v V) int                // O(1)
//	Size() int, IsEmpty() bool     // O(1)
//	EdgeCount() int                // O(V)
//
//	// Cloning
//	CloneEmpty() *Graph[V]         // O(V)
//	Clone() *Graph[V]              // O(V+E)
//	InducedSubgraph(g, keep)       // O(V+E)
//
// Self-loops: AddEdge(v, v) only ensures v exists. A self-edge that enters the
// graph through FromAdjacency is unsupported and algorithms treat it as undefined.
//
// Concurrency: a Graph is owned by its caller. Distinct instances are independent;
// concurrent mutation of one instance must be synchronized externally.
package core
