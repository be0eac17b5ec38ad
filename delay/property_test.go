package delay_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/chipflow/sdfkit/delay"
)

// genValue produces Values with an arbitrary presence mask, so every
// law is exercised against partial triples as well as full ones.
func genValue() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
		gen.IntRange(0, 7),
	).Map(func(vs []interface{}) delay.Value {
		var v delay.Value
		mask := vs[3].(int)
		if mask&1 != 0 {
			v = v.WithMin(vs[0].(float64))
		}
		if mask&2 != 0 {
			v = v.WithTyp(vs[1].(float64))
		}
		if mask&4 != 0 {
			v = v.WithMax(vs[2].(float64))
		}
		return v
	})
}

// TestValueAlgebraLaws property-checks the laws the rest of the engine
// leans on: add/neg zeroing, None-propagation, decomposition inverse,
// self-equality, and scale round-trips.
func TestValueAlgebraLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("a + (-a) zeroes present fields, keeps absent absent", prop.ForAll(
		func(a delay.Value) bool {
			sum := a.Add(a.Neg())
			for _, m := range []delay.Metric{delay.Min, delay.Typ, delay.Max} {
				_, wantPresent := a.Metric(m)
				got, present := sum.Metric(m)
				if present != wantPresent {
					return false
				}
				if present && got != 0 {
					return false
				}
			}
			return true
		},
		genValue(),
	))

	properties.Property("absence propagates through add and sub", prop.ForAll(
		func(a, b delay.Value) bool {
			sum, diff := a.Add(b), a.Sub(b)
			for _, m := range []delay.Metric{delay.Min, delay.Typ, delay.Max} {
				_, aok := a.Metric(m)
				_, bok := b.Metric(m)
				_, sok := sum.Metric(m)
				_, dok := diff.Metric(m)
				if sok != (aok && bok) || dok != (aok && bok) {
					return false
				}
			}
			return true
		},
		genValue(), genValue(),
	))

	properties.Property("decompose((known+unknown), known) == unknown for full triples", prop.ForAll(
		func(vs []interface{}) bool {
			known := delay.Triple(vs[0].(float64), vs[1].(float64), vs[2].(float64))
			unknown := delay.Triple(vs[3].(float64), vs[4].(float64), vs[5].(float64))
			return known.Add(unknown).Sub(known).ApproxEq(unknown, 1e-6)
		},
		gopter.CombineGens(
			gen.Float64Range(-1e3, 1e3), gen.Float64Range(-1e3, 1e3),
			gen.Float64Range(-1e3, 1e3), gen.Float64Range(-1e3, 1e3),
			gen.Float64Range(-1e3, 1e3), gen.Float64Range(-1e3, 1e3),
		),
	))

	properties.Property("a approx-eq a at any non-negative tolerance", prop.ForAll(
		func(a delay.Value, tol float64) bool {
			return a.ApproxEq(a, tol)
		},
		genValue(),
		gen.Float64Range(0, 1e3),
	))

	properties.Property("scale by 10 then 0.1 round-trips within tolerance", prop.ForAll(
		func(a delay.Value) bool {
			return a.Scale(10).Scale(0.1).ApproxEq(a, 1e-6)
		},
		genValue(),
	))

	properties.TestingRun(t)
}

// TestDelayPathsLaws property-checks the key-wise lifting of the Value
// laws onto corner maps.
func TestDelayPathsLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genPaths := gopter.CombineGens(genValue(), genValue()).Map(
		func(vs []interface{}) delay.DelayPaths {
			return delay.DelayPaths{
				delay.Nominal: vs[0].(delay.Value),
				delay.Slow:    vs[1].(delay.Value),
			}
		})

	properties.Property("d + (-d) is field-wise zero where present", prop.ForAll(
		func(d delay.DelayPaths) bool {
			sum := d.Add(d.Neg())
			for c, v := range sum {
				for _, m := range []delay.Metric{delay.Min, delay.Typ, delay.Max} {
					got, ok := v.Metric(m)
					_, wantOK := d[c].Metric(m)
					if ok != wantOK || (ok && got != 0) {
						return false
					}
				}
			}
			return true
		},
		genPaths,
	))

	properties.Property("(a+b)-b equals a+(b-b) over shared presence", prop.ForAll(
		func(a, b delay.DelayPaths) bool {
			return a.Add(b).Sub(b).ApproxEq(a.Add(b.Sub(b)), 1e-6)
		},
		genPaths, genPaths,
	))

	properties.TestingRun(t)
}
