package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// profile is the optional YAML analysis profile. Every field maps onto
// a flag of the same name; explicitly set flags win over the profile.
type profile struct {
	Corner    string   `yaml:"corner"`
	Metric    string   `yaml:"metric"`
	Period    *float64 `yaml:"period"`
	Tolerance *float64 `yaml:"tolerance"`
	MaxDepth  *int     `yaml:"max_depth"`
	Workers   *int     `yaml:"workers"`
	Top       *int     `yaml:"top"`
	Strategy  string   `yaml:"strategy"`
	Timescale string   `yaml:"timescale"`
	Sources   []string `yaml:"sources"`
	Sinks     []string `yaml:"sinks"`
}

func applyProfile(cmd *cobra.Command) error {
	if flagProfile == "" {
		return nil
	}
	data, err := os.ReadFile(flagProfile)
	if err != nil {
		return err
	}
	var p profile
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("profile %s: %w", flagProfile, err)
	}

	// A profile value only lands on a flag the command declares and the
	// user left at its default.
	set := func(name, value string) error {
		f := cmd.Flags().Lookup(name)
		if f == nil || cmd.Flags().Changed(name) {
			return nil
		}
		return f.Value.Set(value)
	}
	pairs := []struct{ name, value string }{
		{"corner", p.Corner},
		{"metric", p.Metric},
		{"strategy", p.Strategy},
		{"timescale", p.Timescale},
	}
	if p.Period != nil {
		pairs = append(pairs, struct{ name, value string }{
			"period", strconv.FormatFloat(*p.Period, 'g', -1, 64)})
	}
	if p.Tolerance != nil {
		pairs = append(pairs, struct{ name, value string }{
			"tolerance", strconv.FormatFloat(*p.Tolerance, 'g', -1, 64)})
	}
	if p.MaxDepth != nil {
		pairs = append(pairs, struct{ name, value string }{
			"max-depth", strconv.Itoa(*p.MaxDepth)})
	}
	if p.Workers != nil {
		pairs = append(pairs, struct{ name, value string }{
			"workers", strconv.Itoa(*p.Workers)})
	}
	if p.Top != nil {
		pairs = append(pairs, struct{ name, value string }{
			"top", strconv.Itoa(*p.Top)})
	}
	if len(p.Sources) > 0 {
		pairs = append(pairs, struct{ name, value string }{
			"sources", strings.Join(p.Sources, ",")})
	}
	if len(p.Sinks) > 0 {
		pairs = append(pairs, struct{ name, value string }{
			"sinks", strings.Join(p.Sinks, ",")})
	}
	for _, pv := range pairs {
		if pv.value == "" {
			continue
		}
		if err := set(pv.name, pv.value); err != nil {
			return fmt.Errorf("profile %s: %s: %w", flagProfile, pv.name, err)
		}
	}
	return nil
}
