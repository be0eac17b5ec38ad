package analysis_test

import (
	"fmt"

	"github.com/chipflow/sdfkit/analysis"
	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
	"github.com/chipflow/sdfkit/timegraph"
)

// ExampleCriticalPath ranks two routes through a small netlist and
// reports the slower one.
func ExampleCriticalPath() {
	f, err := model.NewBuilder().
		Cell("TOP", "top").
		Interconnect("in", "U1/a", delay.DelayPaths{delay.Slow: delay.MaxOnly(0.5)}).
		Interconnect("in", "U2/a", delay.DelayPaths{delay.Slow: delay.MaxOnly(0.5)}).
		Interconnect("U1/z", "out", delay.DelayPaths{delay.Slow: delay.MaxOnly(0.25)}).
		Interconnect("U2/z", "out", delay.DelayPaths{delay.Slow: delay.MaxOnly(0.25)}).
		Cell("BUF", "U1").
		IOPath("a", "z", delay.DelayPaths{delay.Slow: delay.MaxOnly(2)}).
		Cell("INV", "U2").
		IOPath("a", "z", delay.DelayPaths{delay.Slow: delay.MaxOnly(3)}).
		Done().
		Build()
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	g, err := timegraph.Build(f)
	if err != nil {
		fmt.Println("graph:", err)
		return
	}

	critical, err := analysis.CriticalPath(g, "in", "out", delay.Slow, delay.Max)
	if err != nil {
		fmt.Println("critical:", err)
		return
	}
	fmt.Printf("through %s: %g\n", critical.Edges[1].Instance, critical.Scalar)

	slack, err := analysis.Slack(g, "in", "out", 5, delay.Slow, delay.Max)
	if err != nil {
		fmt.Println("slack:", err)
		return
	}
	fmt.Printf("slack at 5: %g\n", slack)

	// Output:
	// through U2: 3.75
	// slack at 5: 1.25
}
