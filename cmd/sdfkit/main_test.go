package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/timegraph"
)

func TestRenderDelays(t *testing.T) {
	d := delay.DelayPaths{
		delay.Slow:    delay.MaxOnly(4.2),
		delay.Nominal: delay.Triple(1, 2, 3),
	}
	assert.Equal(t, "nominal=1:2:3 slow=::4.2", renderDelays(d))
	assert.Equal(t, "(empty)", renderDelays(nil))
}

func TestRenderRoute(t *testing.T) {
	route := renderRoute([]timegraph.Edge{
		{Source: "P1/z", Sink: "B1/C1/i"},
		{Source: "B1/C1/i", Sink: "B1/C1/z"},
	})
	assert.Equal(t, "P1/z -> B1/C1/i -> B1/C1/z", route)
	assert.Equal(t, "(empty)", renderRoute(nil))
}

func writeProfile(t *testing.T, body string) func() {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	old := flagProfile
	flagProfile = path
	return func() { flagProfile = old }
}

func TestApplyProfile_FillsUnsetFlags(t *testing.T) {
	restore := writeProfile(t, "corner: slow\nmetric: min\nperiod: 5.0\nsinks: [P2/i, P3/i]\n")
	defer restore()

	cmd := &cobra.Command{Use: "x"}
	var corner, metric string
	var period float64
	var sinks []string
	cmd.Flags().StringVar(&corner, "corner", "nominal", "")
	cmd.Flags().StringVar(&metric, "metric", "max", "")
	cmd.Flags().Float64Var(&period, "period", 0, "")
	cmd.Flags().StringSliceVar(&sinks, "sinks", nil, "")

	require.NoError(t, applyProfile(cmd))
	assert.Equal(t, "slow", corner)
	assert.Equal(t, "min", metric)
	assert.Equal(t, 5.0, period)
	assert.Equal(t, []string{"P2/i", "P3/i"}, sinks)
}

func TestApplyProfile_ExplicitFlagWins(t *testing.T) {
	restore := writeProfile(t, "corner: slow\n")
	defer restore()

	cmd := &cobra.Command{Use: "x"}
	var corner string
	cmd.Flags().StringVar(&corner, "corner", "nominal", "")
	require.NoError(t, cmd.Flags().Set("corner", "fast"))

	require.NoError(t, applyProfile(cmd))
	assert.Equal(t, "fast", corner)
}

func TestApplyProfile_SkipsFlagsTheCommandLacks(t *testing.T) {
	restore := writeProfile(t, "period: 5.0\nworkers: 8\n")
	defer restore()

	cmd := &cobra.Command{Use: "x"}
	require.NoError(t, applyProfile(cmd))
}

func TestApplyProfile_RejectsUnknownFields(t *testing.T) {
	restore := writeProfile(t, "cornr: slow\n")
	defer restore()

	cmd := &cobra.Command{Use: "x"}
	require.Error(t, applyProfile(cmd))
}
