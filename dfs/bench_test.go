package dfs_test

import (
	"testing"

	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/dfs"
)

// BenchmarkDFS_Chain10000 measures a single-source walk over a 10,000-vertex path.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkCutVertices_Random measures articulation search on G(2000, 0.002).
func BenchmarkCutVertices_Random(b *testing.B) {
	g := randomGraph(7, 2000, 0.002)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.CutVertices(g)
	}
}

// BenchmarkKCore_Grid measures k-core extraction on a 100×100 grid.
func BenchmarkKCore_Grid(b *testing.B) {
	g, err := builder.Build(nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.KCore(g, 2)
	}
}
