package core_test

import (
	"fmt"

	"github.com/katalvlaran/undigraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty graph keyed by string IDs.
	g := core.NewGraph[string]()

	// 2) Add edges (auto-adds vertices A, B, C):
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))

	// 4) Remove a vertex and its edges:
	g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edge A-B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B-A exists? true
	// After removing B, vertices: [A C]
	// Edge A-B exists? false
}

// ExampleFromLists builds a graph from neighbor lists and takes an induced view.
func ExampleFromLists() {
	g := core.FromLists(map[int][]int{
		1: {2, 3},
		2: {1, 4},
		3: {1, 5},
		4: {2},
		5: {3},
	})
	fmt.Println(g.Size(), g.EdgeCount(), g.Degree(1))

	sub := core.InducedSubgraph(g, map[int]bool{1: true, 2: true, 4: true})
	fmt.Println(sub)

	// Output:
	// 5 4 2
	// {1:[2] 2:[1 4] 4:[2]}
}
