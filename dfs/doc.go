// Package dfs implements depth-first algorithms on undirected core.Graphs:
// traversal, connected components, cycle search, articulation points and
// maximal k-core extraction.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre-order and post-order hooks, cancellation via
//     context.Context, depth limiting, neighbor filtering and forest mode.
//   - Components / ComponentOf: connected components, sorted.
//   - HasCycle / FindCycle: three-color search returning one closed cycle.
//   - CutVertices: Tarjan discovery/low-link articulation points across every
//     component.
//   - KCore: maximal induced subgraph with minimum degree k, as a new graph.
//
// Every traversal runs on an explicit frame stack, so recursion depth never
// grows with the graph, and visits neighbors in ascending order, so results
// are deterministic.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - Option[V], Options[V]: functional options for DFS behavior
//   - Result[V]: post-order, Depth, Parent, Visited and SkippedNeighbors
//
// Complexity (d = max degree, for sorted neighbor snapshots):
//
//   - DFS, Components, FindCycle, CutVertices, KCore: Time O(V + E·log d), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil (DFS only)
//   - ErrStartVertexNotFound  start vertex not in graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             wrapped from OnVisit or OnExit
//
// The structural algorithms (Components, FindCycle, CutVertices, KCore) are
// total: a nil or empty graph yields an empty result.
package dfs
