package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chipflow/sdfkit/diff"
	"github.com/chipflow/sdfkit/merge"
	"github.com/chipflow/sdfkit/model"
	"github.com/chipflow/sdfkit/normalize"
	"github.com/chipflow/sdfkit/sdfwrite"
)

var (
	emitTimescale string

	mergeStrategy  string
	mergeTimescale string

	diffTolerance float64
	diffTimescale string
)

var emitCmd = &cobra.Command{
	Use:   "emit FILE",
	Short: "Re-emit a file as canonical SDF text",
	Long: `Emit parses FILE and writes it back in canonical form: cells
sorted, header normalized, values in min:typ:max spelling. With
--timescale the delays are rescaled to the new unit first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFile(args[0])
		if err != nil {
			return err
		}
		text, err := sdfwrite.Emit(f, emitTimescale)
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize FILE TIMESCALE",
	Short: "Rescale a file to a new timescale",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFile(args[0])
		if err != nil {
			return err
		}
		n, err := normalize.Normalize(f, args[1])
		if err != nil {
			return err
		}
		text, err := sdfwrite.Emit(n, "")
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

var mergeCmd = &cobra.Command{
	Use:   "merge FILE...",
	Short: "Merge annotation files into one",
	Long: `Merge combines files left to right. Duplicate entries resolve by
--strategy: keep-first (default), keep-last, or error, which fails on
any conflicting duplicate. Inputs must agree on timescale unless
--timescale rescales them onto a common unit first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strategy, err := merge.ParseStrategy(mergeStrategy)
		if err != nil {
			return err
		}
		files := make([]*model.File, 0, len(args))
		for _, path := range args {
			f, err := loadFile(path)
			if err != nil {
				return err
			}
			files = append(files, f)
		}
		out, err := merge.Merge(files,
			merge.WithStrategy(strategy), merge.WithTimescale(mergeTimescale))
		if err != nil {
			return err
		}
		text, err := sdfwrite.Emit(out, "")
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff FILE_A FILE_B",
	Short: "Compare two annotation files",
	Long: `Diff reports entries present on only one side and entries whose
delays differ beyond --tolerance. Identical files exit zero, differing
files nonzero. With --timescale both sides are rescaled before the
comparison, so files in different units can be compared directly.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadFile(args[0])
		if err != nil {
			return err
		}
		b, err := loadFile(args[1])
		if err != nil {
			return err
		}
		opts := []diff.Option{diff.WithTolerance(diffTolerance)}
		if diffTimescale != "" {
			opts = append(opts, diff.WithNormalizeTo(diffTimescale))
		}
		r, err := diff.Compare(a, b, opts...)
		if err != nil {
			return err
		}
		if r.Empty() {
			return nil
		}
		for _, h := range r.HeaderDiffs {
			fmt.Printf("header %s: %q vs %q\n", h.Field, h.A, h.B)
		}
		for _, k := range r.OnlyInA {
			fmt.Printf("only in %s: %s\n", args[0], k)
		}
		for _, k := range r.OnlyInB {
			fmt.Printf("only in %s: %s\n", args[1], k)
		}
		for _, v := range r.ValueDiffs {
			fmt.Printf("%s: %s vs %s\n", v.Key, renderDelays(v.A), renderDelays(v.B))
		}
		return fmt.Errorf("files differ")
	},
}

func init() {
	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(diffCmd)

	emitCmd.Flags().StringVar(&emitTimescale, "timescale", "", "rescale to this timescale before emitting")

	mergeCmd.Flags().StringVar(&mergeStrategy, "strategy", "keep-first", "duplicate resolution (keep-first, keep-last, error)")
	mergeCmd.Flags().StringVar(&mergeTimescale, "timescale", "", "rescale all inputs to this timescale")

	diffCmd.Flags().Float64Var(&diffTolerance, "tolerance", 0, "absolute per-field tolerance")
	diffCmd.Flags().StringVar(&diffTimescale, "timescale", "", "rescale both sides to this timescale")
}
