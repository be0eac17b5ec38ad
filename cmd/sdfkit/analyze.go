package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chipflow/sdfkit/analysis"
	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/timegraph"
)

var (
	verifyExpect    []string
	verifyTolerance float64

	rankAscending bool
	rankMaxDepth  int

	slackPeriod float64

	batchSources []string
	batchSinks   []string
	batchWorkers int
)

var composeCmd = &cobra.Command{
	Use:   "compose FILE SOURCE SINK",
	Short: "Compose the delay of every path between two pins",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		paths, err := g.FindPaths(args[1], args[2])
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no path from %s to %s", args[1], args[2])
		}
		for _, path := range paths {
			d, err := g.ComposeDelay(path)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n  %s\n", renderRoute(path), renderDelays(d))
		}
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify FILE SOURCE SINK",
	Short: "Check that some path composes to an expected delay",
	Long: `Verify composes every path SOURCE to SINK and passes when at least
one matches the expected delay within --tolerance. Expected values are
given per corner, e.g.

  sdfkit verify a.sdf P1/z P2/i --expect nominal=1.3:2.5:3.7

--expect repeats for multi-corner annotations. A missing field stays
blank ("::4.2" is max-only) and must be missing in the composed delay
too.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(verifyExpect) == 0 {
			return fmt.Errorf("at least one --expect corner=value is required")
		}
		expected := make(delay.DelayPaths, len(verifyExpect))
		for _, arg := range verifyExpect {
			name, text, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("bad --expect %q: want corner=min:typ:max", arg)
			}
			corner, err := delay.Named(name)
			if err != nil {
				return err
			}
			v, err := delay.ParseValue(text)
			if err != nil {
				return err
			}
			expected[corner] = v
		}

		_, g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		result := timegraph.VerifyPath(g, args[1], args[2], expected, verifyTolerance)
		if result.Passed {
			fmt.Println("passed")
			return nil
		}
		fmt.Printf("expected %s\n", renderDelays(result.Expected))
		for _, actual := range result.Actual {
			fmt.Printf("found    %s\n", renderDelays(actual))
		}
		return fmt.Errorf("no path matched within tolerance %g", result.Tolerance)
	},
}

var criticalCmd = &cobra.Command{
	Use:   "critical FILE SOURCE SINK",
	Short: "Report the worst path between two pins",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		corner, metric, err := lens()
		if err != nil {
			return err
		}
		_, g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		r, err := analysis.CriticalPath(g, args[1], args[2], corner, metric)
		if err != nil {
			return err
		}
		fmt.Printf("%g  %s\n", r.Scalar, renderRoute(r.Edges))
		return nil
	},
}

var rankCmd = &cobra.Command{
	Use:   "rank FILE SOURCE SINK",
	Short: "List every path between two pins, worst first",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		corner, metric, err := lens()
		if err != nil {
			return err
		}
		_, g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		opts := []analysis.Option{}
		if rankAscending {
			opts = append(opts, analysis.WithAscending())
		}
		if cmd.Flags().Changed("max-depth") {
			opts = append(opts, analysis.WithMaxDepth(rankMaxDepth))
		}
		ranked, err := analysis.RankPaths(g, args[1], args[2], corner, metric, opts...)
		if err != nil {
			return err
		}
		for _, r := range ranked {
			if r.Comparable {
				fmt.Printf("%-12g %s\n", r.Scalar, renderRoute(r.Edges))
			} else {
				fmt.Printf("%-12s %s\n", "?", renderRoute(r.Edges))
			}
		}
		return nil
	},
}

var slackCmd = &cobra.Command{
	Use:   "slack FILE SOURCE SINK",
	Short: "Report the timing slack against a clock period",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("period") {
			return fmt.Errorf("--period is required")
		}
		corner, metric, err := lens()
		if err != nil {
			return err
		}
		_, g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		s, err := analysis.Slack(g, args[1], args[2], slackPeriod, corner, metric)
		if err != nil {
			return err
		}
		fmt.Printf("%g\n", s)
		if s < 0 {
			return fmt.Errorf("timing violated by %g", -s)
		}
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Analyze every startpoint/endpoint pair",
	Long: `Batch runs a critical-path analysis for every (startpoint,
endpoint) pair of the timing graph, or for the pins named by --sources
and --sinks. Results sort worst first; pairs with no connecting path
are omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		corner, metric, err := lens()
		if err != nil {
			return err
		}
		_, g, err := loadGraph(args[0])
		if err != nil {
			return err
		}
		opts := []analysis.Option{analysis.WithWorkers(batchWorkers)}
		if len(batchSources) > 0 {
			opts = append(opts, analysis.WithSources(batchSources...))
		}
		if len(batchSinks) > 0 {
			opts = append(opts, analysis.WithSinks(batchSinks...))
		}
		reports, err := analysis.BatchEndpoints(g, corner, metric, opts...)
		if err != nil {
			return err
		}
		for _, r := range reports {
			if r.Comparable {
				fmt.Printf("%-12g %s -> %s (%d paths)\n", r.Critical.Scalar, r.Source, r.Sink, r.Paths)
			} else {
				fmt.Printf("%-12s %s -> %s (%d paths)\n", "?", r.Source, r.Sink, r.Paths)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(composeCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(criticalCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(slackCmd)
	rootCmd.AddCommand(batchCmd)

	verifyCmd.Flags().StringArrayVar(&verifyExpect, "expect", nil, "expected delay as corner=min:typ:max (repeatable)")
	verifyCmd.Flags().Float64Var(&verifyTolerance, "tolerance", 0, "absolute per-field tolerance")

	rankCmd.Flags().BoolVar(&rankAscending, "ascending", false, "fastest path first")
	rankCmd.Flags().IntVar(&rankMaxDepth, "max-depth", 0, "bound path length in edges")

	slackCmd.Flags().Float64Var(&slackPeriod, "period", 0, "clock period in file timescale units")

	batchCmd.Flags().StringSliceVar(&batchSources, "sources", nil, "restrict startpoints")
	batchCmd.Flags().StringSliceVar(&batchSinks, "sinks", nil, "restrict endpoints")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "parallel path searches")
}
