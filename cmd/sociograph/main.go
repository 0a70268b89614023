// Package main provides the sociograph CLI: friendship-graph analysis
// over SNAP-style edge-list files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sociograph/bfs"
	"github.com/katalvlaran/sociograph/centrality"
	"github.com/katalvlaran/sociograph/components"
	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/dataset"
	"github.com/katalvlaran/sociograph/linkpred"
	"github.com/katalvlaran/sociograph/matching"
)

var (
	inputPath  string
	statsTop   int
	rankTop    int
	predictTop int
	leftSize   int
	rightSize  int
)

var rootCmd = &cobra.Command{
	Use:           "sociograph",
	Short:         "Analyze social-friendship graphs with classical graph algorithms",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadGraph reads the --input edge list into a fresh graph.
func loadGraph() (*core.Graph, error) {
	g := core.NewGraph()
	if _, err := dataset.LoadFile(inputPath, g); err != nil {
		return nil, err
	}

	return g, nil
}

var statsCmd = &cobra.Command{
	Use:   "stats [source]",
	Short: "Connectivity report: reachability, components, top users",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}
		nodes := g.Nodes()
		if len(nodes) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "empty graph")

			return nil
		}
		source := nodes[0]
		if len(args) == 1 {
			source = args[0]
		}

		res, err := bfs.BFS(g, source)
		if err != nil {
			return err
		}
		comps, err := components.Components(g)
		if err != nil {
			return err
		}
		largest := 0
		for _, c := range comps {
			if len(c) > largest {
				largest = len(c)
			}
		}
		top, err := centrality.Top(g, statsTop)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "nodes: %d, edges: %d\n", g.NodeCount(), g.EdgeCount())
		fmt.Fprintf(out, "reachable from %s: %d\n", source, len(res.Dist))
		fmt.Fprintf(out, "components: %d (largest %d)\n", len(comps), largest)
		fmt.Fprintln(out, "top central users:")
		for _, nd := range top {
			fmt.Fprintf(out, "  %s  %d\n", nd.ID, nd.Degree)
		}

		return nil
	},
}

var bfsCmd = &cobra.Command{
	Use:   "bfs <source> [dest]",
	Short: "Shortest-hop distances from a user, or the path to another",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}
		res, err := bfs.BFS(g, args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(args) == 2 {
			path, err := res.PathTo(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d hops: %v\n", len(path)-1, path)

			return nil
		}
		for _, id := range res.Order {
			fmt.Fprintf(out, "%s\t%d\n", id, res.Dist[id])
		}

		return nil
	},
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List connected components by size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}
		comps, err := components.Components(g)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "components: %d\n", len(comps))
		for i, c := range comps {
			fmt.Fprintf(out, "  #%d size %d\n", i+1, len(c))
		}

		return nil
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank users by degree centrality",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}
		top, err := centrality.Top(g, rankTop)
		if err != nil {
			return err
		}
		for _, nd := range top {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", nd.ID, nd.Degree)
		}

		return nil
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict missing friendships by common neighbors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGraph()
		if err != nil {
			return err
		}
		preds, err := linkpred.Predict(g, linkpred.WithTopK(predictTop))
		if err != nil {
			return err
		}
		for _, p := range preds {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", p.U, p.V, p.Score)
		}

		return nil
	},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Maximum friend-pair matching between two user groups",
	Long: `Splits the node catalog into a left group (--left-size) and the
following right group (--right-size), admits a pairing wherever a left
and right user are friends, and reports the maximum matching size.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if leftSize < 0 || rightSize < 0 {
			return fmt.Errorf("group sizes must be non-negative: --left-size %d, --right-size %d",
				leftSize, rightSize)
		}
		g, err := loadGraph()
		if err != nil {
			return err
		}
		nodes := g.Nodes()
		if leftSize > len(nodes) {
			leftSize = len(nodes)
		}
		left := nodes[:leftSize]
		rest := nodes[leftSize:]
		if rightSize > len(rest) {
			rightSize = len(rest)
		}
		right := rest[:rightSize]

		rightSet := make(map[string]struct{}, len(right))
		for _, v := range right {
			rightSet[v] = struct{}{}
		}
		var pairs []matching.Pair
		for _, u := range left {
			nbrs, err := g.Neighbors(u)
			if err != nil {
				return err
			}
			for _, v := range nbrs {
				if _, ok := rightSet[v]; ok {
					pairs = append(pairs, matching.Pair{Left: u, Right: v})
				}
			}
		}

		size, err := matching.MaxMatching(left, right, pairs)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "maximum matching: %d (from %d candidate pairs)\n",
			size, len(pairs))

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "edge-list file (SNAP format)")
	_ = rootCmd.MarkPersistentFlagRequired("input")

	statsCmd.Flags().IntVar(&statsTop, "top", 5, "number of top-central users to report")
	rankCmd.Flags().IntVar(&rankTop, "top", 10, "number of users to list")
	predictCmd.Flags().IntVar(&predictTop, "top", 10, "number of predictions to list")
	matchCmd.Flags().IntVar(&leftSize, "left-size", 50, "size of the left user group")
	matchCmd.Flags().IntVar(&rightSize, "right-size", 50, "size of the right user group")

	rootCmd.AddCommand(statsCmd, bfsCmd, componentsCmd, rankCmd, predictCmd, matchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sociograph:", err)
		os.Exit(1)
	}
}
