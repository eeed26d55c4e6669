package dfs_test

import (
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/core"
)

// toGonum mirrors g into a gonum undirected graph, leaving out the vertices in skip.
func toGonum(g *core.Graph[int], skip ...int) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for _, v := range g.Vertices() {
		if slices.Contains(skip, v) {
			continue
		}
		out.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		if slices.Contains(skip, e.From) || slices.Contains(skip, e.To) {
			continue
		}
		out.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
	}

	return out
}

// componentCount is the gonum reference for the number of connected components.
func componentCount(g *core.Graph[int], skip ...int) int {
	return len(topo.ConnectedComponents(toGonum(g, skip...)))
}

// oracleKCore returns the sorted k-core vertex set computed by gonum's
// degeneracy ordering.
func oracleKCore(g *core.Graph[int], k int) []int {
	_, cores := topo.DegeneracyOrdering(toGonum(g))
	var out []int
	for i := max(k, 0); i < len(cores); i++ {
		out = append(out, ids(cores[i])...)
	}
	slices.Sort(out)

	return out
}

func ids(nodes []graph.Node) []int {
	out := make([]int, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, int(n.ID()))
	}

	return out
}

// randomGraph is a seeded G(n, p) fixture.
func randomGraph(seed int64, n int, p float64) *core.Graph[int] {
	g, err := builder.Build([]builder.Option{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	if err != nil {
		panic(err)
	}

	return g
}
