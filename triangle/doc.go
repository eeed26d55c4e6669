// Package triangle detects 3-cliques in undirected core.Graphs.
//
// What:
//
//   - Has: neighbor intersection. For every edge {u,v} the smaller of the two
//     neighbor lists is probed against the other endpoint's set.
//   - HasBruteForce: the reference scan. Every vertex is tested against every
//     edge of a precomputed edge list. Slower, same verdict as Has.
//   - Find: the lexicographically smallest triangle, as a witness.
//   - Count: the number of distinct triangles.
//
// Complexity:
//
//   - Has, Find:      Time O(E·d), Memory O(E)
//   - Count:          Time O(E·d), Memory O(E)
//   - HasBruteForce:  Time O(V·E), Memory O(E)
//
// All functions are total: nil and empty graphs contain no triangles.
package triangle
