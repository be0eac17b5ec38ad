package sdfwrite_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/diff"
	"github.com/chipflow/sdfkit/model"
	"github.com/chipflow/sdfkit/sdfparse"
	"github.com/chipflow/sdfkit/sdfwrite"
)

const source = `
(DELAYFILE
  (SDFVERSION "3.0")
  (DESIGN "demo")
  (VENDOR "acme")
  (DIVIDER /)
  (TIMESCALE 1ns)
  (CELL
    (CELLTYPE "BUF")
    (INSTANCE u1)
    (DELAY (ABSOLUTE
      (IOPATH i z (0.1:0.2:0.3))
      (IOPATH (posedge c) q (0.4) (0.6))
      (PORT i (0.05:0.05:0.05))
      (DEVICE z (::0.2))
    ))
    (DELAY (INCREMENT
      (COND en (IOPATH s z (0.7:0.7:0.7)))
    ))
  )
  (CELL
    (CELLTYPE "FDRE")
    (INSTANCE top/ff1)
    (TIMINGCHECK
      (SETUP d (posedge c) (0.5))
      (SETUPHOLD d c (0.3) (0.2))
      (WIDTH (posedge c) (1.0))
      (RECOVERY (COND rb==1'b1 (posedge r)) (posedge c) (0.7))
    )
    (TIMINGENV
      (PATHCONSTRAINT y1/z y2/i (1.0) (1.2))
    )
  )
)
`

func TestEmit_RoundTrip(t *testing.T) {
	f, err := sdfparse.Parse(source)
	require.NoError(t, err)

	text, err := sdfwrite.Emit(f, "")
	require.NoError(t, err)

	back, err := sdfparse.Parse(text)
	require.NoError(t, err)

	r, err := diff.Compare(f, back, diff.WithTolerance(1e-12))
	require.NoError(t, err)
	assert.True(t, r.Empty(), "diff after round trip: %+v", r)
}

func TestEmit_RoundTripPreservesFlags(t *testing.T) {
	f, err := sdfparse.Parse(source)
	require.NoError(t, err)
	text, err := sdfwrite.Emit(f, "")
	require.NoError(t, err)
	back, err := sdfparse.Parse(text)
	require.NoError(t, err)

	e, ok := back.Lookup(model.EntryKey{CellType: "BUF", Instance: "u1", Name: "iopath_s_z"})
	require.True(t, ok)
	assert.True(t, e.Incremental)
	assert.Equal(t, "en", e.Cond)

	e, ok = back.Lookup(model.EntryKey{CellType: "FDRE", Instance: "top/ff1", Name: "recovery_c_r"})
	require.True(t, ok)
	assert.True(t, e.TimingCheck)
	assert.Equal(t, "rb==1'b1", e.Cond)
	assert.Equal(t, model.Posedge, e.ToEdge)
}

func TestEmit_Deterministic(t *testing.T) {
	f, err := sdfparse.Parse(source)
	require.NoError(t, err)
	a, err := sdfwrite.Emit(f, "")
	require.NoError(t, err)
	b, err := sdfwrite.Emit(f, "")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmit_RescalesToRequestedTimescale(t *testing.T) {
	f, err := sdfparse.Parse(source)
	require.NoError(t, err)

	text, err := sdfwrite.Emit(f, "1ps")
	require.NoError(t, err)
	assert.Contains(t, text, "TIMESCALE 1ps")

	back, err := sdfparse.Parse(text)
	require.NoError(t, err)
	e, ok := back.Lookup(model.EntryKey{CellType: "BUF", Instance: "u1", Name: "iopath_i_z"})
	require.True(t, ok)
	assert.True(t, e.Delays.ApproxEq(
		delay.DelayPaths{delay.Nominal: delay.Triple(100, 200, 300)}, 1e-9))

	// The input keeps its own scale.
	assert.Equal(t, "1ns", f.Header.Timescale)
}

func TestEmit_EmptyHeaderFieldsOmitted(t *testing.T) {
	f := model.NewFile()
	f.Header.SDFVersion = "3.0"
	text, err := sdfwrite.Emit(f, "")
	require.NoError(t, err)
	assert.Contains(t, text, `(SDFVERSION "3.0")`)
	assert.False(t, strings.Contains(text, "DESIGN"))
	assert.False(t, strings.Contains(text, "TIMESCALE"))
}

func TestEmit_UnsupportedCorners(t *testing.T) {
	f, err := model.NewBuilder().
		SetHeader(model.Header{Timescale: "1ns"}).
		Cell("BUF", "u1").
		IOPath("i", "z", delay.DelayPaths{delay.Rise: delay.TypOnly(1)}).
		Done().
		Build()
	require.NoError(t, err)

	_, err = sdfwrite.Emit(f, "")
	require.ErrorIs(t, err, sdfwrite.ErrUnsupportedCorners)
}

func TestEmit_EmptyCellKept(t *testing.T) {
	f, err := sdfparse.Parse(`(DELAYFILE (TIMESCALE 1ps)
		(CELL (CELLTYPE "GHOST") (INSTANCE u9)))`)
	require.NoError(t, err)

	text, err := sdfwrite.Emit(f, "")
	require.NoError(t, err)
	assert.Contains(t, text, `(CELLTYPE "GHOST")`)

	back, err := sdfparse.Parse(text)
	require.NoError(t, err)
	assert.Contains(t, back.Cells["GHOST"], "u9")
}
