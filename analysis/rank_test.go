package analysis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipflow/sdfkit/analysis"
	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
	"github.com/chipflow/sdfkit/timegraph"
)

func TestRankPaths_Descending(t *testing.T) {
	g := designGraph(t)

	ranked, err := analysis.RankPaths(g, "P1/z", "P2/i", delay.Nominal, delay.Max)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.InDelta(t, 4.2, ranked[0].Scalar, 1e-9)
	assert.InDelta(t, 3.7, ranked[1].Scalar, 1e-9)
	assert.InDelta(t, 1.9, ranked[2].Scalar, 1e-9)
	for _, r := range ranked {
		assert.True(t, r.Comparable)
		assert.Len(t, r.Edges, 3)
	}
}

func TestRankPaths_IncomparableTail(t *testing.T) {
	g := designGraph(t)

	// The conditional arc carries only max, so under min it cannot be
	// ordered and must close the list instead of vanishing.
	ranked, err := analysis.RankPaths(g, "P1/z", "P2/i", delay.Nominal, delay.Min)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.InDelta(t, 1.3, ranked[0].Scalar, 1e-9)
	assert.InDelta(t, 0.7, ranked[1].Scalar, 1e-9)
	assert.False(t, ranked[2].Comparable)
	assert.Equal(t, "iopath_i_z_1", ranked[2].Edges[1].EntryName)
}

func TestRankPaths_Ascending(t *testing.T) {
	g := designGraph(t)

	ranked, err := analysis.RankPaths(g, "P1/z", "P2/i", delay.Nominal, delay.Max,
		analysis.WithAscending())
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.InDelta(t, 1.9, ranked[0].Scalar, 1e-9)
	assert.InDelta(t, 4.2, ranked[2].Scalar, 1e-9)
}

func TestRankPaths_OptionErrors(t *testing.T) {
	g := designGraph(t)

	_, err := analysis.RankPaths(g, "P1/z", "P2/i", delay.Nominal, delay.Max,
		analysis.WithMaxDepth(-1))
	require.ErrorIs(t, err, timegraph.ErrBadMaxDepth)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = analysis.RankPaths(g, "P1/z", "P2/i", delay.Nominal, delay.Max,
		analysis.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCriticalPath(t *testing.T) {
	g := designGraph(t)

	critical, err := analysis.CriticalPath(g, "P1/z", "P2/i", delay.Nominal, delay.Max)
	require.NoError(t, err)
	assert.InDelta(t, 4.2, critical.Scalar, 1e-9)

	critical, err = analysis.CriticalPath(g, "P1/z", "P2/i", delay.Nominal, delay.Min)
	require.NoError(t, err)
	assert.InDelta(t, 1.3, critical.Scalar, 1e-9)
}

func TestCriticalPath_TieKeepsFirstDiscovered(t *testing.T) {
	f, err := model.NewBuilder().
		Cell("BUF", "U1").
		IOPath("i", "z", nom(1, 2, 3), model.WithName("alpha")).
		IOPath("i", "z", nom(1, 2, 3), model.WithName("beta")).
		Done().
		Build()
	require.NoError(t, err)
	g, err := timegraph.Build(f)
	require.NoError(t, err)

	critical, err := analysis.CriticalPath(g, "U1/i", "U1/z", delay.Nominal, delay.Max)
	require.NoError(t, err)
	assert.Equal(t, "alpha", critical.Edges[0].EntryName)
}

func TestCriticalPath_Sentinels(t *testing.T) {
	g := designGraph(t)

	_, err := analysis.CriticalPath(g, "P2/i", "P3/i", delay.Nominal, delay.Max)
	require.ErrorIs(t, err, analysis.ErrNoPath)

	// Paths exist under the fast corner only as absent values.
	_, err = analysis.CriticalPath(g, "P1/z", "P2/i", delay.Fast, delay.Max)
	require.ErrorIs(t, err, analysis.ErrNoComparablePath)
}

func TestSlack(t *testing.T) {
	g := designGraph(t)

	slack, err := analysis.Slack(g, "P1/z", "P2/i", 5.0, delay.Nominal, delay.Max)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, slack, 1e-9)

	slack, err = analysis.Slack(g, "P1/z", "P2/i", 4.0, delay.Nominal, delay.Max)
	require.NoError(t, err)
	assert.Less(t, slack, 0.0, "period below the critical delay")

	_, err = analysis.Slack(g, "P2/i", "P3/i", 5.0, delay.Nominal, delay.Max)
	require.ErrorIs(t, err, analysis.ErrNoPath)
}
