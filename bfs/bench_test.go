package bfs_test

import (
	"testing"

	"github.com/katalvlaran/undigraph/bfs"
	"github.com/katalvlaran/undigraph/builder"
)

// BenchmarkBFS_Grid100 measures a full sweep of a 100×100 grid.
func BenchmarkBFS_Grid100(b *testing.B) {
	g, err := builder.Build(nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
