package dfs

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/undigraph/core"
)

// Components returns the connected components of g. Each component is sorted
// ascending and components are ordered by their smallest vertex. Isolated
// vertices form singleton components.
//
// Time:   O(V + E·log d).
// Memory: O(V) for visited flags and output.
func Components[V cmp.Ordered](g *core.Graph[V]) [][]V {
	if g.IsEmpty() {
		return nil
	}
	walker := &dfsWalker[V]{
		graph: g,
		opts:  DefaultOptions[V](),
		res: &Result[V]{
			Depth:   make(map[V]int, g.Size()),
			Parent:  make(map[V]V, g.Size()),
			Visited: make(map[V]bool, g.Size()),
		},
	}

	var comps [][]V
	for _, v := range g.Vertices() {
		if walker.res.Visited[v] {
			continue
		}
		// Background context and no hooks: traverse cannot fail.
		from := len(walker.res.Order)
		_ = walker.traverse(v)
		comp := slices.Clone(walker.res.Order[from:])
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps
}

// ComponentOf returns the sorted vertices of the component containing v, or
// nil when v is absent.
func ComponentOf[V cmp.Ordered](g *core.Graph[V], v V) []V {
	res, err := DFS(g, v)
	if err != nil {
		return nil
	}
	comp := slices.Clone(res.Order)
	slices.Sort(comp)

	return comp
}
