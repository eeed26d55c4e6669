// Package undigraph is a small in-memory library of classical undirected-graph
// algorithms over a generic adjacency-set graph.
//
// What is in the box:
//
//	core/        Graph[V]: symmetric adjacency sets, sorted enumeration, total queries
//	dfs/         traversal, components, cycles, articulation points, k-cores
//	bfs/         breadth-first order, hop distances, shortest paths
//	triangle/    triangle existence (fast and reference), witness, count
//	tree/        rooted-tree validation, diameter, longest path
//	builder/     deterministic fixtures: paths, stars, cycles, grids, random graphs
//	cmd/undigraph   command-line front end over int graphs
//
// Vertex identifiers are any cmp.Ordered type. Every traversal runs on an
// explicit stack and visits neighbors in ascending order, so results are
// deterministic and deep graphs never exhaust the call stack.
//
// Quick ASCII example:
//
//	1───2───4
//	│
//	3───5
//
//	g := core.NewGraph[int]()
//	g.AddEdge(1, 2); g.AddEdge(2, 4); g.AddEdge(1, 3); g.AddEdge(3, 5)
//	dfs.CutVertices(g)  // [1 2 3]
//
// Graphs are not safe for concurrent mutation; distinct instances are independent.
package undigraph
