package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/core"
	"github.com/katalvlaran/undigraph/dfs"
	"github.com/katalvlaran/undigraph/tree"
)

func edgesGraph(pairs ...[2]int) *core.Graph[int] {
	g := core.NewGraph[int]()
	for _, p := range pairs {
		g.AddEdge(p[0], p[1])
	}

	return g
}

func TestDiameter_Fixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		g    *core.Graph[int]
		root int
		want int
	}{
		{
			name: "star with two leaves",
			g:    edgesGraph([2]int{1, 2}, [2]int{1, 3}),
			root: 1, want: 1,
		},
		{
			name: "path 1-2-3-4",
			g:    edgesGraph([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}),
			root: 1, want: 2,
		},
		{
			name: "two branching subtrees",
			g: edgesGraph(
				[2]int{1, 2}, [2]int{2, 3}, [2]int{2, 4}, [2]int{1, 5},
				[2]int{5, 6}, [2]int{6, 7}, [2]int{6, 8}, [2]int{5, 9},
			),
			root: 1, want: 4,
		},
		{
			name: "longest path inside a subtree",
			g: edgesGraph(
				[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 6},
				[2]int{2, 7}, [2]int{7, 8}, [2]int{8, 9}, [2]int{9, 10},
				[2]int{1, 11}, [2]int{11, 12},
			),
			root: 1, want: 7,
		},
		{
			name: "single-child root above a branching vertex",
			g: edgesGraph(
				[2]int{0, 1},
				[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4},
				[2]int{1, 5}, [2]int{5, 6}, [2]int{6, 7},
			),
			root: 0, want: 5,
		},
		{
			name: "single edge",
			g:    edgesGraph([2]int{1, 2}),
			root: 2, want: 0,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tree.Diameter(tree.New(tc.g, tc.root))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDiameter_SingleVertex(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("solo")

	d, err := tree.Diameter(tree.New(g, "solo"))
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	path, err := tree.LongestPath(tree.New(g, "solo"))
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, path)
}

// TestDiameter_PathIsRootIndependent checks every root of every short path.
func TestDiameter_PathIsRootIndependent(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 12; n++ {
		g, err := builder.Build(nil, builder.Path(n))
		require.NoError(t, err)
		for root := 0; root < n; root++ {
			d, err := tree.Diameter(tree.New(g, root))
			require.NoError(t, err)
			assert.Equal(t, n-2, d, "n=%d root=%d", n, root)
		}
	}
}

// eccentricityDiameter is a brute-force reference: the largest DFS depth from
// any vertex, which on a tree is the edge length of a longest path.
func eccentricityDiameter(t *testing.T, g *core.Graph[int]) int {
	t.Helper()
	best := 0
	for _, v := range g.Vertices() {
		res, err := dfs.DFS(g, v)
		require.NoError(t, err)
		for _, d := range res.Depth {
			best = max(best, d)
		}
	}

	return best
}

func TestDiameter_RandomTreesMatchReference(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.Build([]builder.Option{builder.WithSeed(seed)}, builder.RandomTree(35))
		require.NoError(t, err)
		want := eccentricityDiameter(t, g)

		for _, root := range []int{0, 7, 19, 34} {
			d, err := tree.Diameter(tree.New(g, root))
			require.NoError(t, err)
			assert.Equal(t, want-1, d, "seed=%d root=%d", seed, root)
		}

		path, err := tree.LongestPath(tree.New(g, 0))
		require.NoError(t, err)
		assert.Len(t, path, want+1, "seed=%d", seed)
		for i := 0; i+1 < len(path); i++ {
			assert.True(t, g.HasEdge(path[i], path[i+1]))
		}
	}
}

func TestLongestPath_Deterministic(t *testing.T) {
	g, err := builder.Build(nil, builder.Star(5))
	require.NoError(t, err)

	path, err := tree.LongestPath(tree.New(g, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, path)
}

func TestDiameter_DeepPath(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(200000))
	require.NoError(t, err)

	d, err := tree.Diameter(tree.New(g, 0))
	require.NoError(t, err)
	assert.Equal(t, 199998, d)
}
