// SPDX-License-Identifier: MIT
// Package builder provides deterministic constructors for common undirected
// topologies, used as fixtures in tests, examples, benchmarks and the CLI.
//
// Constructors work in index space: each one adds vertices 0..n-1 (plus any
// documented extras) to a core.Graph[int]. BuildGraph then relabels every index
// through an IDFn, so the same constructors serve any vertex type:
//
//	g, err := builder.BuildGraph(builder.DecimalID, nil, builder.Cycle(5))
//	// g is a *core.Graph[string] with vertices "0".."4"
//
//	g, err := builder.Build([]builder.Option{builder.WithSeed(7)},
//		builder.RandomSparse(50, 0.1))
//	// g is a *core.Graph[int]
//
// Constructors:
//
//	Path(n)                 P_n, n ≥ 2
//	Star(n)                 hub 0 + leaves 1..n-1, n ≥ 2
//	Cycle(n)                C_n, n ≥ 3
//	Complete(n)             K_n, n ≥ 1
//	CompleteBipartite(a, b) K_{a,b}, left 0..a-1, right a..a+b-1
//	Wheel(n)                rim C_{n-1} on 0..n-2 + hub n-1, n ≥ 4
//	Grid(r, c)              4-neighborhood grid, index r*cols+c
//	RandomSparse(n, p)      Erdős–Rényi G(n, p), needs an RNG when 0 < p < 1
//	RandomTree(n)           uniform random recursive tree, needs an RNG when n > 2
//	Shift(base, c)          runs c with every index moved by base (disjoint unions)
//	Append(c)               Shift with base = one past the largest vertex so far
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with method context; branch
// with errors.Is. Constructors never panic; option constructors panic on
// meaningless arguments.
package builder
