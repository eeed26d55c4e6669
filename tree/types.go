package tree

import (
	"cmp"
	"errors"

	"github.com/katalvlaran/undigraph/core"
)

var (
	// ErrGraphNil is returned when a Tree carries a nil *core.Graph.
	ErrGraphNil = errors.New("tree: graph is nil")

	// ErrInvalidTree indicates the graph is not a tree spanning from the root:
	// the root is absent, some vertex is unreachable, or a cycle exists.
	ErrInvalidTree = errors.New("tree: invalid tree")
)

// Tree is an undirected graph known by the caller to be connected and
// acyclic, together with a distinguished root.
type Tree[V cmp.Ordered] struct {
	Graph *core.Graph[V]
	Root  V
}

// New pairs g with root. It performs no validation; see Validate.
func New[V cmp.Ordered](g *core.Graph[V], root V) Tree[V] {
	return Tree[V]{Graph: g, Root: root}
}
