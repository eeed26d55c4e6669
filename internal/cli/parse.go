package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/undigraph/builder"
)

var (
	errBadEdge  = errors.New("cli: bad edge")
	errBadShape = errors.New("cli: bad shape")
)

// parseEdge reads "u-v" with non-negative integer endpoints.
func parseEdge(s string) (int, int, error) {
	left, right, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q, want u-v", errBadEdge, s)
	}
	u, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", errBadEdge, s, err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", errBadEdge, s, err)
	}

	return u, v, nil
}

// shapeArity lists how many integer arguments each shape takes; "random"
// takes n and a probability and is handled separately.
var shapeArity = map[string]int{
	"path":      1,
	"star":      1,
	"cycle":     1,
	"complete":  1,
	"wheel":     1,
	"tree":      1,
	"bipartite": 2,
	"grid":      2,
	"random":    2,
}

// parseShape reads "name:args", e.g. "cycle:5", "grid:3,4" or "random:20,0.1".
func parseShape(s string) (builder.Constructor, error) {
	name, rest, ok := strings.Cut(s, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	arity, known := shapeArity[name]
	if !ok || !known {
		return nil, fmt.Errorf("%w: %q, want name:args", errBadShape, s)
	}
	args := strings.Split(rest, ",")
	if len(args) != arity {
		return nil, fmt.Errorf("%w: %q takes %d argument(s)", errBadShape, name, arity)
	}

	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errBadShape, s, err)
	}
	if name == "random" {
		p, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errBadShape, s, err)
		}
		return builder.RandomSparse(n, p), nil
	}
	m := 0
	if arity == 2 {
		if m, err = strconv.Atoi(strings.TrimSpace(args[1])); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", errBadShape, s, err)
		}
	}

	switch name {
	case "path":
		return builder.Path(n), nil
	case "star":
		return builder.Star(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "tree":
		return builder.RandomTree(n), nil
	case "bipartite":
		return builder.CompleteBipartite(n, m), nil
	default: // grid
		return builder.Grid(n, m), nil
	}
}
