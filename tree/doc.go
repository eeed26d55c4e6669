// Package tree computes diameters of rooted trees stored in a core.Graph.
//
// A Tree pairs a graph with a root vertex. Every entry point validates the
// pair first: the root must be present, every vertex must be reachable from
// it, and the graph must have exactly V-1 edges. Violations are reported as
// errors wrapping ErrInvalidTree, never as a silently wrong result.
//
// Diameter runs one post-order pass on an explicit stack. Each vertex folds
// the (depth, best diameter) pairs of its children:
//
//	leaf          → (0, none)
//	one child     → (d+1, child's best)
//	≥ 2 children  → (d1+1, max(d1+d2+2, best of children))
//
// where d1 ≥ d2 are the two deepest child depths. The reported value is
// max(depth, diameter) - 1 at the root: the number of interior vertices on a
// longest path, which is the edge length of that path minus one (0 for a
// single vertex). LongestPath returns the path itself, found with two
// breadth-first sweeps.
//
// Complexity: Time O(V·log d), Memory O(V).
package tree
