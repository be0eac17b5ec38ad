package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipflow/sdfkit/analysis"
	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
)

func TestSummarize(t *testing.T) {
	s := analysis.Summarize(designFile(t), delay.Nominal, delay.Max)

	assert.Equal(t, 4, s.CellTypes)
	assert.Equal(t, 5, s.Instances)
	assert.Equal(t, 12, s.Entries)
	assert.Equal(t, map[model.EntryKind]int{
		model.Interconnect: 6,
		model.IOPath:       4,
		model.Port:         1,
		model.Setup:        1,
	}, s.ByKind)

	require.Equal(t, 12, s.Scalars.Count)
	assert.InDelta(t, 0.05, s.Scalars.Min, 1e-9)
	assert.InDelta(t, 3.5, s.Scalars.Max, 1e-9)
	assert.InDelta(t, 11.05/12, s.Scalars.Mean, 1e-9)
	assert.InDelta(t, 0.35, s.Scalars.Median, 1e-9)
}

func TestSummarize_SkipsAbsentFields(t *testing.T) {
	s := analysis.Summarize(designFile(t), delay.Nominal, delay.Min)
	assert.Equal(t, 12, s.Entries)
	assert.Equal(t, 11, s.Scalars.Count, "the max-only arc has no min")
}

func TestSummarize_EmptyFile(t *testing.T) {
	s := analysis.Summarize(model.NewFile(), delay.Nominal, delay.Max)
	assert.Zero(t, s.Entries)
	assert.Zero(t, s.Scalars.Count)
}

func TestSummarize_MedianEvenOdd(t *testing.T) {
	f, err := model.NewBuilder().
		Cell("BUF", "U1").
		IOPath("a", "z", nomMax(1)).
		IOPath("b", "z", nomMax(2)).
		IOPath("c", "z", nomMax(10)).
		Done().
		Build()
	require.NoError(t, err)

	s := analysis.Summarize(f, delay.Nominal, delay.Max)
	assert.InDelta(t, 2, s.Scalars.Median, 1e-9)

	e, err := model.NewIOPath("d", "z", nomMax(4))
	require.NoError(t, err)
	f.Store("BUF", "U1", e)
	s = analysis.Summarize(f, delay.Nominal, delay.Max)
	assert.InDelta(t, 3, s.Scalars.Median, 1e-9)
}
