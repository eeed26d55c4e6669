package cli

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	if err := createRootCommand(ctx, input, version).Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "undigraph",
		Short:        "Run undirected-graph algorithms on graphs assembled from flags",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if input.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.SetContext(ctx)

	rootCmd.PersistentFlags().StringArrayVarP(&input.edges, "edge", "e", nil, "edge u-v (repeatable)")
	rootCmd.PersistentFlags().IntSliceVar(&input.vertices, "vertex", nil, "isolated vertices")
	rootCmd.PersistentFlags().StringArrayVarP(&input.shapes, "shape", "s", nil,
		"generated shape name:args, one of path:n star:n cycle:n complete:n wheel:n tree:n bipartite:a,b grid:r,c random:n,p")
	rootCmd.PersistentFlags().Int64Var(&input.seed, "seed", 1, "seed for random shapes")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newShowCommand(input),
		newCutCommand(input),
		newTriangleCommand(input),
		newDiameterCommand(input),
		newKCoreCommand(input),
		newComponentsCommand(input),
		newWalkCommand(input),
		newPathCommand(input),
	)

	return rootCmd
}
