// Command sdfkit inspects, transforms and analyzes SDF timing
// annotation files.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
	"github.com/chipflow/sdfkit/sdfparse"
	"github.com/chipflow/sdfkit/timegraph"
)

var (
	flagCorner  string
	flagMetric  string
	flagProfile string
)

var rootCmd = &cobra.Command{
	Use:   "sdfkit",
	Short: "Inspect, transform and analyze SDF timing annotations",
	Long: `sdfkit reads Standard Delay Format (SDF) files and operates on them:
parsing and linting, rescaling and merging, structural diffs, and timing
analysis over the annotation graph (path composition, critical paths,
slack, batch endpoint reports).

Most commands take a --corner and --metric pair selecting the scalar
lens for analysis, e.g. --corner slow --metric max for worst case.

Examples:
  sdfkit parse design.sdf
  sdfkit stats design.sdf --corner slow
  sdfkit critical design.sdf P1/z P2/i --metric max
  sdfkit diff a.sdf b.sdf --tolerance 0.001
  sdfkit merge core.sdf io.sdf --strategy keep-last --timescale 1ns
  sdfkit report design.sdf --top 10 --period 5.0`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyProfile(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCorner, "corner", "nominal",
		"analysis corner (nominal, fast, slow, or a vendor label)")
	rootCmd.PersistentFlags().StringVar(&flagMetric, "metric", "max",
		"value field to analyze (min, typ, max)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "",
		"YAML analysis profile (flags override profile values)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sdfkit:", err)
		os.Exit(1)
	}
}

// lens resolves the persistent corner/metric flags.
func lens() (delay.Corner, delay.Metric, error) {
	corner, err := delay.Named(flagCorner)
	if err != nil {
		return delay.Corner{}, 0, err
	}
	metric, err := delay.ParseMetric(flagMetric)
	if err != nil {
		return delay.Corner{}, 0, err
	}
	return corner, metric, nil
}

func loadFile(path string) (*model.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := sdfparse.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func loadGraph(path string) (*model.File, *timegraph.Graph, error) {
	f, err := loadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := timegraph.Build(f)
	if err != nil {
		return nil, nil, err
	}
	return f, g, nil
}

// renderDelays writes a DelayPaths as "corner=min:typ:max" pairs in
// deterministic corner order.
func renderDelays(d delay.DelayPaths) string {
	parts := make([]string, 0, len(d))
	for _, c := range d.Corners() {
		parts = append(parts, fmt.Sprintf("%s=%s", c, d[c]))
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

// renderRoute writes a path as its pin sequence.
func renderRoute(edges []timegraph.Edge) string {
	if len(edges) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	b.WriteString(edges[0].Source)
	for _, e := range edges {
		b.WriteString(" -> ")
		b.WriteString(e.Sink)
	}
	return b.String()
}
