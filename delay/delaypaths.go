package delay

import "sort"

// DelayPaths maps operating-condition corners to delay triples. It is
// the unit of delay attached to every timing entry.
//
// Binary arithmetic operates over the UNION of the operands' corners: a
// corner missing from one side behaves as an all-absent Value, so the
// result for that corner inherits absence per the Value propagation rule.
// Operations never mutate their receivers.
type DelayPaths map[Corner]Value

// Corners returns the corners present in d, deterministically ordered:
// known labels in declaration order, then named corners lexicographically.
func (d DelayPaths) Corners() []Corner {
	out := make([]Corner, 0, len(d))
	for c := range d {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return lessCorner(out[i], out[j]) })
	return out
}

// Clone returns a deep copy of d. Cloning nil yields nil.
func (d DelayPaths) Clone() DelayPaths {
	if d == nil {
		return nil
	}
	out := make(DelayPaths, len(d))
	for c, v := range d {
		out[c] = v
	}
	return out
}

// union returns the deterministic union of the corners of d and o.
func (d DelayPaths) union(o DelayPaths) []Corner {
	seen := make(map[Corner]struct{}, len(d)+len(o))
	out := make([]Corner, 0, len(d)+len(o))
	for c := range d {
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for c := range o {
		if _, ok := seen[c]; !ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return lessCorner(out[i], out[j]) })
	return out
}

// Add returns d + o key-wise over the union of corners.
func (d DelayPaths) Add(o DelayPaths) DelayPaths {
	out := make(DelayPaths)
	for _, c := range d.union(o) {
		out[c] = d[c].Add(o[c])
	}
	return out
}

// Sub returns d - o key-wise over the union of corners.
func (d DelayPaths) Sub(o DelayPaths) DelayPaths {
	out := make(DelayPaths)
	for _, c := range d.union(o) {
		out[c] = d[c].Sub(o[c])
	}
	return out
}

// Neg negates every corner's Value.
func (d DelayPaths) Neg() DelayPaths {
	out := make(DelayPaths, len(d))
	for c, v := range d {
		out[c] = v.Neg()
	}
	return out
}

// Scale multiplies every present field of every corner by k.
func (d DelayPaths) Scale(k float64) DelayPaths {
	out := make(DelayPaths, len(d))
	for c, v := range d {
		out[c] = v.Scale(k)
	}
	return out
}

// ApproxEq reports whether d and o hold field-wise equal Values within
// tol across the union of their corners. A corner present on one side
// with a non-empty Value and missing on the other is a mismatch; a
// corner whose Value is all-absent equals a missing corner.
func (d DelayPaths) ApproxEq(o DelayPaths, tol float64) bool {
	for _, c := range d.union(o) {
		if !d[c].ApproxEq(o[c], tol) {
			return false
		}
	}
	return true
}

// Scalar reduces d to a single number by selecting one corner and one
// metric. The second return is false when the corner or the metric field
// is absent.
func (d DelayPaths) Scalar(c Corner, m Metric) (float64, bool) {
	v, ok := d[c]
	if !ok {
		return 0, false
	}
	return v.Metric(m)
}

// Empty reports whether d carries no corner with any present field.
func (d DelayPaths) Empty() bool {
	for _, v := range d {
		if !v.Empty() {
			return false
		}
	}
	return true
}
