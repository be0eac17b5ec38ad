package diff

import (
	"errors"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
	"github.com/chipflow/sdfkit/normalize"
)

// ErrBadTolerance indicates a negative WithTolerance argument.
var ErrBadTolerance = errors.New("diff: tolerance must be >= 0")

// HeaderDiff is one disagreeing header field.
type HeaderDiff struct {
	Field string
	A, B  string
}

// FieldDelta is one (corner, metric) field that differs. Delta is
// meaningful only when both sides carry the field.
type FieldDelta struct {
	Corner delay.Corner
	Metric delay.Metric
	A, B   float64
	HasA   bool
	HasB   bool
	Delta  float64
}

// ValueDiff is one entry key whose delays differ beyond the tolerance.
type ValueDiff struct {
	Key    model.EntryKey
	A, B   delay.DelayPaths
	Fields []FieldDelta
}

// Result is the full comparison outcome. Key slices keep the files'
// sorted walk order.
type Result struct {
	OnlyInA     []model.EntryKey
	OnlyInB     []model.EntryKey
	ValueDiffs  []ValueDiff
	HeaderDiffs []HeaderDiff
}

// Empty reports whether the two files were indistinguishable.
func (r *Result) Empty() bool {
	return len(r.OnlyInA) == 0 && len(r.OnlyInB) == 0 &&
		len(r.ValueDiffs) == 0 && len(r.HeaderDiffs) == 0
}

// Option configures a comparison.
type Option func(*Options)

// Options holds the comparison parameters.
type Options struct {
	// Tolerance is the absolute per-field tolerance.
	Tolerance float64

	// Timescale, when set, normalizes both files to it before
	// comparing.
	Timescale string

	// err records an invalid option until Compare surfaces it.
	err error
}

// DefaultOptions returns the comparison defaults: exact comparison, no
// normalization.
func DefaultOptions() Options { return Options{} }

// WithTolerance sets the absolute per-field tolerance. Negative values
// surface ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			o.err = ErrBadTolerance
			return
		}
		o.Tolerance = tol
	}
}

// WithNormalizeTo rescales both files to the given timescale before
// comparing.
func WithNormalizeTo(timescale string) Option {
	return func(o *Options) { o.Timescale = timescale }
}

// Compare diffs a against b.
func Compare(a, b *model.File, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Timescale != "" {
		var err error
		if a, err = normalize.Normalize(a, o.Timescale); err != nil {
			return nil, err
		}
		if b, err = normalize.Normalize(b, o.Timescale); err != nil {
			return nil, err
		}
	}

	r := &Result{}
	for i, fa := range a.Header.Fields() {
		fb := b.Header.Fields()[i]
		if fa.Value != fb.Value {
			r.HeaderDiffs = append(r.HeaderDiffs, HeaderDiff{
				Field: fa.Name, A: fa.Value, B: fb.Value,
			})
		}
	}

	inB := make(map[model.EntryKey]struct{})
	for _, k := range b.EntryKeys() {
		inB[k] = struct{}{}
	}
	a.Walk(func(ct, inst string, ea *model.Entry) {
		key := model.EntryKey{CellType: ct, Instance: inst, Name: ea.Name}
		eb, ok := b.Lookup(key)
		if !ok {
			r.OnlyInA = append(r.OnlyInA, key)
			return
		}
		delete(inB, key)
		if ea.Delays.ApproxEq(eb.Delays, o.Tolerance) {
			return
		}
		r.ValueDiffs = append(r.ValueDiffs, ValueDiff{
			Key:    key,
			A:      ea.Delays.Clone(),
			B:      eb.Delays.Clone(),
			Fields: fieldDeltas(ea.Delays, eb.Delays, o.Tolerance),
		})
	})
	b.Walk(func(ct, inst string, eb *model.Entry) {
		key := model.EntryKey{CellType: ct, Instance: inst, Name: eb.Name}
		if _, ok := inB[key]; ok {
			r.OnlyInB = append(r.OnlyInB, key)
		}
	})
	return r, nil
}

// fieldDeltas lists every (corner, metric) field on which the two
// delays disagree beyond tol, in sorted corner order.
func fieldDeltas(a, b delay.DelayPaths, tol float64) []FieldDelta {
	union := a.Clone()
	for c, v := range b {
		if _, ok := union[c]; !ok {
			union[c] = v
		}
	}

	var out []FieldDelta
	for _, c := range union.Corners() {
		va, vb := a[c], b[c]
		for _, m := range []delay.Metric{delay.Min, delay.Typ, delay.Max} {
			fa, hasA := va.Metric(m)
			fb, hasB := vb.Metric(m)
			if !hasA && !hasB {
				continue
			}
			if hasA && hasB && fieldsClose(fa, fb, tol) {
				continue
			}
			d := FieldDelta{Corner: c, Metric: m, A: fa, B: fb, HasA: hasA, HasB: hasB}
			if hasA && hasB {
				d.Delta = fb - fa
			}
			out = append(out, d)
		}
	}
	return out
}

func fieldsClose(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < tol
}
