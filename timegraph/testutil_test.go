package timegraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
)

func nom(min, typ, max float64) delay.DelayPaths {
	return delay.DelayPaths{delay.Nominal: delay.Triple(min, typ, max)}
}

func nomMax(max float64) delay.DelayPaths {
	return delay.DelayPaths{delay.Nominal: delay.MaxOnly(max)}
}

// buildNetlist returns a small two-block netlist:
//
//	P1/z ── B1/C1 (two parallel IOPATHs) ──┐
//	P1/z ── B1/C2 ─────────────────────────┴─ P2/i
//	P1/z ── B2/C1 (PORT delay on i) ────────── P3/i
//
// plus a SETUP check that must never become an edge.
func buildNetlist(t *testing.T) *model.File {
	t.Helper()
	f, err := model.NewBuilder().
		SetHeader(model.Header{SDFVersion: "3.0", Design: "spec1", Timescale: "1ps"}).
		Cell("TOP", "top").
		Interconnect("P1/z", "B1/C1/i", nom(0.1, 0.2, 0.3)).
		Interconnect("P1/z", "B1/C2/i", nom(0.1, 0.1, 0.1)).
		Interconnect("B1/C1/z", "P2/i", nom(0.2, 0.3, 0.4)).
		Interconnect("B1/C2/z", "P2/i", nom(0.1, 0.2, 0.3)).
		Interconnect("P1/z", "B2/C1/i", nom(0.1, 0.1, 0.1)).
		Interconnect("B2/C1/z", "P3/i", nom(0.1, 0.1, 0.1)).
		Cell("BUF", "B1/C1").
		IOPath("i", "z", nom(1, 2, 3)).
		IOPath("i", "z", nomMax(3.5), model.WithCond("EN == 1'b1")).
		Cell("AND2", "B1/C2").
		IOPath("i", "z", nom(0.5, 1.0, 1.5)).
		Cell("BUF", "B2/C1").
		Port("i", nom(0.05, 0.05, 0.05)).
		IOPath("i", "z", nom(1, 1, 1)).
		Cell("FDRE", "R1").
		Check(model.Setup, "D", "C", nom(0.5, 0.6, 0.7)).
		Done().
		Build()
	require.NoError(t, err)
	return f
}
