// Package delay implements the numeric algebra that every other package
// in sdfkit is built on: partially-specified delay triples (Value),
// operating-condition labels (Corner), and per-condition collections of
// triples (DelayPaths).
//
// A Value is a (min, typ, max) triple in which every field is optional.
// An absent field means "not annotated", never zero. All arithmetic is
// defined field-wise, min with min, typ with typ, max with max, and
// follows the None-propagation rule: if either operand's field is absent,
// the result's field is absent.
//
// A Corner names the operating condition a Value belongs to. The common
// labels (Nominal, Fast, Slow, Setup, Hold, Rise, Fall) form a closed,
// comparable set; arbitrary PVT corner names are carried by Named, which
// canonicalizes onto the known set when the name matches one.
//
// A DelayPaths maps Corners to Values and is the unit of delay attached
// to any timing entry. Its arithmetic operates key-wise over the UNION of
// the operands' corners: a corner missing from one side behaves as a
// Value with every field absent, so absence propagates into the result.
//
// Equality is approximate: ApproxEq compares field-by-field with an
// absolute tolerance. Two absent fields are equal; an absent field never
// equals a present one. The tolerance boundary is strict (a difference
// exactly equal to the tolerance is a mismatch) with one escape: exactly
// equal floats compare equal at any tolerance, including zero.
//
// Complexity: every operation is O(1) per field, O(corners) per
// DelayPaths. Values and DelayPaths are immutable in use: all operations
// return fresh results and never mutate their receivers.
//
// Example:
//
//	a := delay.DelayPaths{delay.Nominal: delay.Triple(1, 2, 3)}
//	b := delay.DelayPaths{delay.Nominal: delay.MaxOnly(0.5)}
//	sum := a.Add(b) // nominal: min/typ absent, max = 3.5
package delay
