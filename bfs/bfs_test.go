package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/undigraph/bfs"
	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph[string]()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	g.AddVertex("A")
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("A")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

// TestBFS_GridDepths checks level order and distances on a 3×3 grid.
func TestBFS_GridDepths(t *testing.T) {
	g, err := builder.Build(nil, builder.Grid(3, 3))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 4, 6, 5, 7, 8}, res.Order)
	for v := 0; v < 9; v++ {
		assert.Equal(t, v/3+v%3, res.Depth[v], "manhattan distance of %d", v)
	}

	path, err := res.PathTo(8)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 8}, path)
	assert.Equal(t, 8, res.Farthest())
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(6))
	require.NoError(t, err)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth[int](2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 3 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestBFS_Hooks(t *testing.T) {
	g, err := builder.Build(nil, builder.Star(4))
	require.NoError(t, err)

	var enq, deq []int
	res, err := bfs.BFS(g, 1,
		bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
		bfs.WithOnDequeue(func(v, _ int) { deq = append(deq, v) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 3}, enq)
	assert.Equal(t, enq, deq)
	assert.Equal(t, res.Order, deq)

	boom := errors.New("boom")
	res, err = bfs.BFS(g, 1, bfs.WithOnVisit(func(v, depth int) error {
		if depth == 1 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1, 0}, res.Order)
}

func TestBFS_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := builder.Build(nil, builder.Cycle(5))
	require.NoError(t, err)
	_, err = bfs.BFS(g, 0, bfs.WithContext[int](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
