package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/diff"
	"github.com/chipflow/sdfkit/model"
)

func nomTriple(min, typ, max float64) delay.DelayPaths {
	return delay.DelayPaths{delay.Nominal: delay.Triple(min, typ, max)}
}

func buildFile(t *testing.T, header model.Header, build func(*model.CellBuilder) *model.CellBuilder) *model.File {
	t.Helper()
	b := model.NewBuilder().SetHeader(header).Cell("BUF", "U1")
	f, err := build(b).Done().Build()
	require.NoError(t, err)
	return f
}

func nsHeader() model.Header {
	return model.Header{SDFVersion: "3.0", Design: "demo", Timescale: "1ns"}
}

func TestCompare_SelfDiffIsEmpty(t *testing.T) {
	f := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", nomTriple(1, 2, 3)).
			IOPath("b", "z", delay.DelayPaths{delay.Slow: delay.MaxOnly(2.5)})
	})

	for _, tol := range []float64{0, 0.01, 100} {
		r, err := diff.Compare(f, f, diff.WithTolerance(tol))
		require.NoError(t, err)
		assert.True(t, r.Empty(), "tolerance %v", tol)
	}
}

func TestCompare_KeySets(t *testing.T) {
	a := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", nomTriple(1, 2, 3)).
			IOPath("only_a", "z", nomTriple(1, 1, 1))
	})
	b := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", nomTriple(1, 2, 3)).
			IOPath("only_b", "z", nomTriple(1, 1, 1))
	})

	r, err := diff.Compare(a, b)
	require.NoError(t, err)
	require.Len(t, r.OnlyInA, 1)
	require.Len(t, r.OnlyInB, 1)
	assert.Equal(t, "iopath_only_a_z", r.OnlyInA[0].Name)
	assert.Equal(t, "iopath_only_b_z", r.OnlyInB[0].Name)
	assert.Empty(t, r.ValueDiffs)
}

func TestCompare_ValueDiffs(t *testing.T) {
	a := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", nomTriple(1, 2, 3))
	})
	b := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", nomTriple(1, 2, 3.2))
	})

	r, err := diff.Compare(a, b)
	require.NoError(t, err)
	require.Len(t, r.ValueDiffs, 1)
	vd := r.ValueDiffs[0]
	require.Len(t, vd.Fields, 1, "only max disagrees")
	assert.Equal(t, delay.Max, vd.Fields[0].Metric)
	assert.InDelta(t, 0.2, vd.Fields[0].Delta, 1e-9)

	// A wide enough tolerance absorbs the difference.
	r, err = diff.Compare(a, b, diff.WithTolerance(0.5))
	require.NoError(t, err)
	assert.True(t, r.Empty())
}

func TestCompare_ToleranceIsStrict(t *testing.T) {
	a := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", delay.DelayPaths{delay.Slow: delay.MaxOnly(2.5)})
	})
	b := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", delay.DelayPaths{delay.Slow: delay.MaxOnly(2.51)})
	})

	r, err := diff.Compare(a, b, diff.WithTolerance(0.01))
	require.NoError(t, err)
	assert.Len(t, r.ValueDiffs, 1, "a 0.01 gap is not inside a 0.01 tolerance")
}

func TestCompare_AbsenceIsAlwaysADifference(t *testing.T) {
	a := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", nomTriple(1, 2, 3))
	})
	b := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", delay.DelayPaths{delay.Nominal: delay.MaxOnly(3)})
	})

	r, err := diff.Compare(a, b, diff.WithTolerance(1e6))
	require.NoError(t, err)
	require.Len(t, r.ValueDiffs, 1)
	require.Len(t, r.ValueDiffs[0].Fields, 2)
	for _, fd := range r.ValueDiffs[0].Fields {
		assert.True(t, fd.HasA)
		assert.False(t, fd.HasB)
	}
}

func TestCompare_HeaderDiffs(t *testing.T) {
	a := buildFile(t, model.Header{SDFVersion: "3.0", Design: "alpha", Timescale: "1ns"},
		func(c *model.CellBuilder) *model.CellBuilder { return c.IOPath("a", "z", nomTriple(1, 2, 3)) })
	b := buildFile(t, model.Header{SDFVersion: "3.0", Design: "beta", Timescale: "1ns"},
		func(c *model.CellBuilder) *model.CellBuilder { return c.IOPath("a", "z", nomTriple(1, 2, 3)) })

	r, err := diff.Compare(a, b)
	require.NoError(t, err)
	require.Len(t, r.HeaderDiffs, 1)
	assert.Equal(t, diff.HeaderDiff{Field: "design", A: "alpha", B: "beta"}, r.HeaderDiffs[0])
}

func TestCompare_NormalizeTo(t *testing.T) {
	ns := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", nomTriple(1, 2, 3))
	})
	ps := buildFile(t, model.Header{SDFVersion: "3.0", Design: "demo", Timescale: "1ps"},
		func(c *model.CellBuilder) *model.CellBuilder {
			return c.IOPath("a", "z", nomTriple(1000, 2000, 3000))
		})

	// Raw comparison sees wildly different numbers and timescales.
	r, err := diff.Compare(ns, ps)
	require.NoError(t, err)
	assert.Len(t, r.ValueDiffs, 1)
	assert.Len(t, r.HeaderDiffs, 1)

	// Normalized, the files agree.
	r, err = diff.Compare(ns, ps, diff.WithNormalizeTo("1ns"), diff.WithTolerance(1e-9))
	require.NoError(t, err)
	assert.True(t, r.Empty())
}

func TestCompare_BadTolerance(t *testing.T) {
	f := buildFile(t, nsHeader(), func(c *model.CellBuilder) *model.CellBuilder {
		return c.IOPath("a", "z", nomTriple(1, 2, 3))
	})
	_, err := diff.Compare(f, f, diff.WithTolerance(-0.1))
	require.ErrorIs(t, err, diff.ErrBadTolerance)
}
