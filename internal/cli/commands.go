package cli

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/undigraph/bfs"
	"github.com/katalvlaran/undigraph/dfs"
	"github.com/katalvlaran/undigraph/tree"
	"github.com/katalvlaran/undigraph/triangle"
)

func newShowCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the assembled graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := input.graph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices: %d edges: %d\n", g.Size(), g.EdgeCount())
			fmt.Fprintln(out, g)
			return nil
		},
	}
}

func newCutCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "cut",
		Short: "List articulation points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := input.graph()
			if err != nil {
				return err
			}
			start := time.Now()
			cut := dfs.CutVertices(g)
			log.WithFields(log.Fields{"found": len(cut), "elapsed": time.Since(start)}).Debug("cut vertices computed")

			fmt.Fprintf(cmd.OutOrStdout(), "cut vertices: %v\n", cut)
			return nil
		},
	}
}

func newTriangleCommand(input *Input) *cobra.Command {
	var bruteForce bool
	cmd := &cobra.Command{
		Use:   "triangle",
		Short: "Report whether the graph contains a triangle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := input.graph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if bruteForce {
				fmt.Fprintf(out, "triangle: %v\n", triangle.HasBruteForce(g))
				return nil
			}
			tri, ok := triangle.Find(g)
			fmt.Fprintf(out, "triangle: %v\n", ok)
			if ok {
				fmt.Fprintf(out, "first: %v\ncount: %d\n", tri, triangle.Count(g))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&bruteForce, "brute-force", false, "use the reference vertex×edge scan")
	return cmd
}

func newDiameterCommand(input *Input) *cobra.Command {
	var root int
	cmd := &cobra.Command{
		Use:   "diameter",
		Short: "Compute the diameter of a tree from the given root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := input.graph()
			if err != nil {
				return err
			}
			t := tree.New(g, root)
			d, err := tree.Diameter(t)
			if err != nil {
				return err
			}
			path, err := tree.LongestPath(t)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "diameter: %d\npath: %v\n", d, path)
			return nil
		},
	}
	cmd.Flags().IntVar(&root, "root", 0, "tree root")
	_ = cmd.MarkFlagRequired("root")
	return cmd
}

func newKCoreCommand(input *Input) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "kcore",
		Short: "Extract the maximal subgraph with minimum degree k",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := input.graph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			sub, ok := dfs.KCore(g, k)
			log.WithFields(log.Fields{"k": k, "found": ok, "kept": sub.Size()}).Debug("k-core computed")
			if !ok {
				fmt.Fprintf(out, "no %d-core\n", k)
				return nil
			}
			fmt.Fprintf(out, "%d-core: %v\n", k, sub)
			return nil
		},
	}
	cmd.Flags().IntVar(&k, "k", 2, "minimum degree")
	return cmd
}

func newComponentsCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List connected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := input.graph()
			if err != nil {
				return err
			}
			for i, c := range dfs.Components(g) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %v\n", i, c)
			}
			return nil
		},
	}
}

func newWalkCommand(input *Input) *cobra.Command {
	var (
		start int
		depth int
		all   bool
	)
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Depth-first walk printing the post-order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := input.graph()
			if err != nil {
				return err
			}
			opts := []dfs.Option[int]{
				dfs.WithContext[int](cmd.Context()),
				dfs.WithMaxDepth[int](depth),
				dfs.WithOnVisit(func(v int) error {
					log.WithField("vertex", v).Debug("enter")
					return nil
				}),
				dfs.WithOnExit(func(v int) error {
					log.WithField("vertex", v).Debug("exit")
					return nil
				}),
			}
			if all {
				opts = append(opts, dfs.WithFullTraversal[int]())
			}
			res, err := dfs.DFS(g, start, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order: %v\n", res.Order)
			return nil
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "start vertex")
	cmd.Flags().IntVar(&depth, "depth", -1, "maximum depth, -1 for none")
	cmd.Flags().BoolVar(&all, "all", false, "walk every component")
	return cmd
}

func newPathCommand(input *Input) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Shortest path by edge count between two vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := input.graph()
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, from, bfs.WithContext[int](cmd.Context()))
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"from": from, "reached": len(res.Order)}).Debug("bfs finished")
			path, err := res.PathTo(to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "length: %d\npath: %v\n", len(path)-1, path)
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "source vertex")
	cmd.Flags().IntVar(&to, "to", 0, "target vertex")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
