package delay

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadValue is returned by ParseValue for text that is not a delay
// triple.
var ErrBadValue = errors.New("delay: malformed value")

// Value is a partially-specified (min, typ, max) delay triple.
//
// Each field is independently present or absent; an absent field means
// "not annotated", never zero. The zero Value has every field absent.
// Values are immutable: all operations return a fresh Value.
type Value struct {
	min, typ, max          float64
	hasMin, hasTyp, hasMax bool
}

// Triple returns a Value with all three fields present.
func Triple(min, typ, max float64) Value {
	return Value{min: min, typ: typ, max: max, hasMin: true, hasTyp: true, hasMax: true}
}

// MinOnly returns a Value with only the min field present.
func MinOnly(v float64) Value { return Value{min: v, hasMin: true} }

// TypOnly returns a Value with only the typ field present.
func TypOnly(v float64) Value { return Value{typ: v, hasTyp: true} }

// MaxOnly returns a Value with only the max field present.
func MaxOnly(v float64) Value { return Value{max: v, hasMax: true} }

// PartialTriple returns a Value with explicit per-field presence.
func PartialTriple(min float64, hasMin bool, typ float64, hasTyp bool, max float64, hasMax bool) Value {
	var v Value
	if hasMin {
		v = v.WithMin(min)
	}
	if hasTyp {
		v = v.WithTyp(typ)
	}
	if hasMax {
		v = v.WithMax(max)
	}
	return v
}

// WithMin returns a copy of v with the min field set.
func (v Value) WithMin(x float64) Value { v.min, v.hasMin = x, true; return v }

// WithTyp returns a copy of v with the typ field set.
func (v Value) WithTyp(x float64) Value { v.typ, v.hasTyp = x, true; return v }

// WithMax returns a copy of v with the max field set.
func (v Value) WithMax(x float64) Value { v.max, v.hasMax = x, true; return v }

// Min returns the min field and whether it is present.
func (v Value) Min() (float64, bool) { return v.min, v.hasMin }

// Typ returns the typ field and whether it is present.
func (v Value) Typ() (float64, bool) { return v.typ, v.hasTyp }

// Max returns the max field and whether it is present.
func (v Value) Max() (float64, bool) { return v.max, v.hasMax }

// Metric returns the field selected by m and whether it is present.
func (v Value) Metric(m Metric) (float64, bool) {
	switch m {
	case Min:
		return v.min, v.hasMin
	case Typ:
		return v.typ, v.hasTyp
	default:
		return v.max, v.hasMax
	}
}

// Empty reports whether every field is absent.
func (v Value) Empty() bool { return !v.hasMin && !v.hasTyp && !v.hasMax }

// addField combines one field pair under the None-propagation rule.
func addField(a float64, aok bool, b float64, bok bool) (float64, bool) {
	if !aok || !bok {
		return 0, false
	}
	return a + b, true
}

// Add returns v + o field-wise. A field absent in either operand is
// absent in the result.
func (v Value) Add(o Value) Value {
	var r Value
	r.min, r.hasMin = addField(v.min, v.hasMin, o.min, o.hasMin)
	r.typ, r.hasTyp = addField(v.typ, v.hasTyp, o.typ, o.hasTyp)
	r.max, r.hasMax = addField(v.max, v.hasMax, o.max, o.hasMax)
	return r
}

// Sub returns v - o field-wise under the same None-propagation rule as Add.
func (v Value) Sub(o Value) Value { return v.Add(o.Neg()) }

// Neg negates every present field; absent fields stay absent.
func (v Value) Neg() Value {
	if v.hasMin {
		v.min = -v.min
	}
	if v.hasTyp {
		v.typ = -v.typ
	}
	if v.hasMax {
		v.max = -v.max
	}
	return v
}

// Scale multiplies every present field by k; absent fields stay absent.
// Scaling by a negative factor may leave min above max; fields are never
// reordered, the caller owns semantic validity.
func (v Value) Scale(k float64) Value {
	if v.hasMin {
		v.min *= k
	}
	if v.hasTyp {
		v.typ *= k
	}
	if v.hasMax {
		v.max *= k
	}
	return v
}

// fieldApproxEq compares one field pair. Two absent fields are equal; an
// absent field never equals a present one. Present fields compare with a
// strict tolerance boundary: equal iff identical or |a-b| < tol, so a
// delta exactly equal to tol is a mismatch, and tol 0 demands identity.
func fieldApproxEq(a float64, aok bool, b float64, bok bool, tol float64) bool {
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return a == b || math.Abs(a-b) < tol
}

// ApproxEq reports whether v and o are field-wise equal within the given
// absolute tolerance.
func (v Value) ApproxEq(o Value, tol float64) bool {
	return fieldApproxEq(v.min, v.hasMin, o.min, o.hasMin, tol) &&
		fieldApproxEq(v.typ, v.hasTyp, o.typ, o.hasTyp, tol) &&
		fieldApproxEq(v.max, v.hasMax, o.max, o.hasMax, tol)
}

// String renders the triple in SDF rvalue form, e.g. "1.5:2:3" with
// absent fields left blank ("::3").
func (v Value) String() string {
	var b strings.Builder
	fields := [3]struct {
		val float64
		ok  bool
	}{{v.min, v.hasMin}, {v.typ, v.hasTyp}, {v.max, v.hasMax}}
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(':')
		}
		if f.ok {
			fmt.Fprintf(&b, "%g", f.val)
		}
	}
	return b.String()
}

// ParseValue inverts String: "min:typ:max" with absent fields blank, or
// a lone number meaning a typ-only value.
func ParseValue(text string) (Value, error) {
	if !strings.Contains(text, ":") {
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrBadValue, text)
		}
		return TypOnly(n), nil
	}
	parts := strings.Split(text, ":")
	if len(parts) != 3 {
		return Value{}, fmt.Errorf("%w: want min:typ:max, got %d fields", ErrBadValue, len(parts))
	}
	var v Value
	for i, part := range parts {
		if part == "" {
			continue
		}
		n, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q", ErrBadValue, part)
		}
		switch i {
		case 0:
			v = v.WithMin(n)
		case 1:
			v = v.WithTyp(n)
		case 2:
			v = v.WithMax(n)
		}
	}
	return v, nil
}
