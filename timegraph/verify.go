package timegraph

import "github.com/chipflow/sdfkit/delay"

// Verification reports whether some path between two pins composes to an
// expected delay. It is a normal result, never an error: a mismatch
// carries every composed delay found so callers can inspect it.
type Verification struct {
	// Source and Sink are the endpoints that were verified.
	Source, Sink string

	// Expected is the delay the caller asserted.
	Expected delay.DelayPaths

	// Actual holds the composed delay of every path found, in
	// discovery order.
	Actual []delay.DelayPaths

	// Passed is true when at least one composed delay approximately
	// equals Expected within Tolerance.
	Passed bool

	// Tolerance is the absolute per-field tolerance that was applied.
	Tolerance float64
}

// VerifyPath composes every path source → sink and passes when at least
// one composed delay approximately equals expected. No path, or no
// matching path, is a not-passed result, never an error.
func VerifyPath(g *Graph, source, sink string, expected delay.DelayPaths, tolerance float64) Verification {
	actual, _ := g.Compose(source, sink)
	passed := false
	for _, a := range actual {
		if expected.ApproxEq(a, tolerance) {
			passed = true
			break
		}
	}
	return Verification{
		Source:    source,
		Sink:      sink,
		Expected:  expected,
		Actual:    actual,
		Passed:    passed,
		Tolerance: tolerance,
	}
}

// DecomposeDelay infers an unmeasured segment: total - known. Absence
// propagates: an unknown field in either operand stays unknown in the
// result, never a spurious zero.
func DecomposeDelay(total, known delay.DelayPaths) delay.DelayPaths {
	return total.Sub(known)
}
