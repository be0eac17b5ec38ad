package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/chipflow/sdfkit/analysis"
	"github.com/chipflow/sdfkit/model"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse an SDF file and print its header and counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFile(args[0])
		if err != nil {
			return err
		}
		for _, field := range f.Header.Fields() {
			if field.Value != "" {
				fmt.Printf("%-12s %s\n", field.Name, field.Value)
			}
		}
		cells := 0
		for _, instances := range f.Cells {
			cells += len(instances)
		}
		fmt.Printf("%-12s %d\n", "cells", cells)
		fmt.Printf("%-12s %d\n", "entries", f.EntryCount())
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats FILE",
	Short: "Summarize entry counts and delay statistics",
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
		s := analysis.Summarize(f, corner, metric)
		fmt.Printf("cell types  %d\n", s.CellTypes)
		fmt.Printf("instances   %d\n", s.Instances)
		fmt.Printf("entries     %d\n", s.Entries)

		kinds := make([]model.EntryKind, 0, len(s.ByKind))
		for k := range s.ByKind {
			kinds = append(kinds, k)
		}
		sort.Slice(kinds, func(i, j int) bool { return kinds[i].String() < kinds[j].String() })
		for _, k := range kinds {
			fmt.Printf("  %-14s %d\n", k, s.ByKind[k])
		}

		if s.Scalars.Count > 0 {
			fmt.Printf("%s/%s over %d entries: min=%g max=%g mean=%g median=%g\n",
				corner, metric, s.Scalars.Count,
				s.Scalars.Min, s.Scalars.Max, s.Scalars.Mean, s.Scalars.Median)
		}
		return nil
	},
}

var lintCmd = &cobra.Command{
	Use:   "lint FILE",
	Short: "Check a file for structural problems",
	Long: `Lint reports missing header fields, empty files, entries whose
delays carry no value at all, and instance names reused across cell
types. A clean file exits zero; findings exit nonzero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFile(args[0])
		if err != nil {
			return err
		}
		problems := analysis.Lint(f)
		if len(problems) == 0 {
			fmt.Println("clean")
			return nil
		}
		for _, p := range problems {
			if p.Key != (model.EntryKey{}) {
				fmt.Printf("[%s] %s: %s\n", p.Code, p.Key, p.Message)
			} else {
				fmt.Printf("[%s] %s\n", p.Code, p.Message)
			}
		}
		return fmt.Errorf("%d problem(s) found", len(problems))
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(lintCmd)
}
