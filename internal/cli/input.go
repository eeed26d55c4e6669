package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/undigraph/builder"
	"github.com/katalvlaran/undigraph/core"
)

// Input contains the input for the root command
type Input struct {
	edges    []string
	vertices []int
	shapes   []string
	seed     int64
	verbose  bool
}

// graph assembles the graph described by the flags: shapes first, laid side
// by side in flag order, then isolated vertices, then explicit edges.
func (i *Input) graph() (*core.Graph[int], error) {
	cons := make([]builder.Constructor, 0, len(i.shapes))
	for _, s := range i.shapes {
		c, err := parseShape(s)
		if err != nil {
			return nil, err
		}
		cons = append(cons, builder.Append(c))
	}

	g, err := builder.Build([]builder.Option{builder.WithSeed(i.seed)}, cons...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadShape, err)
	}

	for _, v := range i.vertices {
		g.AddVertex(v)
	}
	for _, e := range i.edges {
		u, v, err := parseEdge(e)
		if err != nil {
			return nil, err
		}
		g.AddEdge(u, v)
	}

	log.WithFields(log.Fields{
		"vertices": g.Size(),
		"edges":    g.EdgeCount(),
		"shapes":   len(i.shapes),
	}).Debug("graph assembled")

	return g, nil
}
