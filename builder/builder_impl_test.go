// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor,
// verifying topology, counts, parameter validation and determinism.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph[int])
	}{
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				for i := 0; i < 3; i++ {
					assert.True(t, g.HasEdge(i, i+1), "edge %d-%d", i, i+1)
				}
				assert.Equal(t, 1, g.Degree(0))
				assert.Equal(t, 1, g.Degree(3))
			},
		},
		{
			name:  "Star(5)",
			ctor:  builder.Star(5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				assert.Equal(t, 4, g.Degree(0))
				for leaf := 1; leaf < 5; leaf++ {
					assert.Equal(t, []int{0}, g.Neighbors(leaf))
				}
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				for i := 0; i < 5; i++ {
					assert.True(t, g.HasEdge(i, (i+1)%5))
					assert.Equal(t, 2, g.Degree(i))
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				for i := 0; i < 4; i++ {
					assert.Equal(t, 3, g.Degree(i))
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				assert.False(t, g.HasEdge(0, 1), "left side is independent")
				assert.False(t, g.HasEdge(2, 3), "right side is independent")
				assert.Equal(t, []int{2, 3, 4}, g.Neighbors(0))
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				assert.Equal(t, 4, g.Degree(4), "hub touches the whole rim")
				assert.True(t, g.HasEdge(3, 0), "rim is closed")
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				assert.Equal(t, []int{1, 3}, g.Neighbors(0))
				assert.Equal(t, []int{1, 3, 5}, g.Neighbors(4))
				assert.False(t, g.HasEdge(2, 3), "no wrap-around between rows")
			},
		},
		{
			name:  "Grid(1,1)",
			ctor:  builder.Grid(1, 1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "RandomSparse(6,0)",
			ctor:  builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0,
		},
		{
			name:  "RandomSparse(6,1)",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15,
		},
		{
			name:  "RandomTree(2)",
			ctor:  builder.RandomTree(2),
			wantV: 2, wantE: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Size())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_InvalidParameters checks every constructor rejects its domain
// violations with the documented sentinel.
func TestBuilders_InvalidParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.Option
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,3)", builder.CompleteBipartite(0, 3), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Grid(0,4)", builder.Grid(0, 4), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), []builder.Option{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomSparse(5,1.5)", builder.RandomSparse(5, 1.5), []builder.Option{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparse(5,-0.1)", builder.RandomSparse(5, -0.1), []builder.Option{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparse(5,0.5) no rng", builder.RandomSparse(5, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomTree(0)", builder.RandomTree(0), []builder.Option{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomTree(3) no rng", builder.RandomTree(3), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.opts, tc.ctor)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// TestRandomSparse_DeterministicPerSeed verifies identical seeds reproduce identical graphs.
func TestRandomSparse_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	g1, err := builder.Build([]builder.Option{builder.WithSeed(42)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	g2, err := builder.Build([]builder.Option{builder.WithRand(rand.New(rand.NewSource(42)))}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	assert.Equal(t, g1.Edges(), g2.Edges())
	assert.Equal(t, 30, g1.Size())
}

// TestRandomTree_IsTree verifies connectivity and edge count across seeds.
func TestRandomTree_IsTree(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		g, err := builder.Build([]builder.Option{builder.WithSeed(seed)}, builder.RandomTree(25))
		require.NoError(t, err)
		assert.Equal(t, 25, g.Size())
		assert.Equal(t, 24, g.EdgeCount())

		// Every vertex i > 0 has exactly one neighbor below it (its parent).
		for i := 1; i < 25; i++ {
			lower := 0
			for _, w := range g.Neighbors(i) {
				if w < i {
					lower++
				}
			}
			assert.Equal(t, 1, lower, "seed=%d vertex=%d", seed, i)
		}
	}
}

// TestShift_DisjointUnion composes two K4 blocks joined through a hub.
func TestShift_DisjointUnion(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(nil,
		builder.Shift(1, builder.Complete(4)),
		builder.Shift(5, builder.Complete(4)),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, g.Vertices())
	assert.Equal(t, 12, g.EdgeCount())
	assert.False(t, g.HasEdge(4, 5))

	_, err = builder.Build(nil, builder.Shift(3, builder.Cycle(1)))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.Build(nil, builder.Shift(3, nil))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestAppend_PlacesShapesSideBySide(t *testing.T) {
	t.Parallel()

	g, err := builder.Build(nil,
		builder.Append(builder.Path(3)),
		builder.Append(builder.Cycle(3)),
		builder.Append(builder.Star(2)),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, g.Vertices())
	assert.True(t, g.HasEdge(3, 5))
	assert.True(t, g.HasEdge(6, 7))
	assert.False(t, g.HasEdge(2, 3))
	assert.Equal(t, 2+3+1, g.EdgeCount())
}
