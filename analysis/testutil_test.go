package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
	"github.com/chipflow/sdfkit/timegraph"
)

func nom(min, typ, max float64) delay.DelayPaths {
	return delay.DelayPaths{delay.Nominal: delay.Triple(min, typ, max)}
}

func nomMax(max float64) delay.DelayPaths {
	return delay.DelayPaths{delay.Nominal: delay.MaxOnly(max)}
}

// designFile returns a two-block netlist with three routes P1/z → P2/i
// (one of them max-only) and one route P1/z → P3/i through a PORT
// delay.
func designFile(t *testing.T) *model.File {
	t.Helper()
	f, err := model.NewBuilder().
		SetHeader(model.Header{SDFVersion: "3.0", Design: "demo", Timescale: "1ps"}).
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

func designGraph(t *testing.T) *timegraph.Graph {
	t.Helper()
	g, err := timegraph.Build(designFile(t))
	require.NoError(t, err)
	return g
}
