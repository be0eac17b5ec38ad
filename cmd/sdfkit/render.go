package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chipflow/sdfkit/analysis"
	"github.com/chipflow/sdfkit/export"
	"github.com/chipflow/sdfkit/report"
)

var (
	dotClusters bool
	dotFrom     string
	dotTo       string

	reportTop    int
	reportPeriod float64
)

var dotCmd = &cobra.Command{
	Use:   "dot FILE",
	Short: "Render the timing graph as Graphviz DOT",
	Long: `Dot writes the annotation's timing graph in DOT form, edges
labeled with the selected corner/metric scalar. --clusters groups pins
by instance. With --from and --to the critical path between the two
pins is highlighted in red.`,
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
		opts := []export.Option{}
		if dotClusters {
			opts = append(opts, export.WithClusters())
		}
		if dotFrom != "" || dotTo != "" {
			if dotFrom == "" || dotTo == "" {
				return fmt.Errorf("--from and --to must be given together")
			}
			r, err := analysis.CriticalPath(g, dotFrom, dotTo, corner, metric)
			if err != nil {
				return err
			}
			opts = append(opts, export.WithHighlight(r.Edges))
		}
		fmt.Print(export.ToDOT(g, corner, metric, opts...))
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report FILE",
	Short: "Print a styled timing report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		corner, metric, err := lens()
		if err != nil {
			return err
		}
		f, err := loadFile(args[0])
		if err != nil {
			return err
		}
		opts := []report.Option{
			report.WithCorner(corner),
			report.WithMetric(metric),
			report.WithTopN(reportTop),
		}
		if cmd.Flags().Changed("period") {
			opts = append(opts, report.WithPeriod(reportPeriod))
		}
		out, err := report.Render(f, opts...)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dotCmd)
	rootCmd.AddCommand(reportCmd)

	dotCmd.Flags().BoolVar(&dotClusters, "clusters", false, "group pins by instance")
	dotCmd.Flags().StringVar(&dotFrom, "from", "", "highlight the critical path from this pin")
	dotCmd.Flags().StringVar(&dotTo, "to", "", "highlight the critical path to this pin")

	reportCmd.Flags().IntVar(&reportTop, "top", 5, "endpoint rows to show")
	reportCmd.Flags().Float64Var(&reportPeriod, "period", 0, "clock period for the slack column")
}
