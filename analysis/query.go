package analysis

import (
	"fmt"
	"regexp"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
)

// Match is one query hit: the entry and its file-wide key.
type Match struct {
	Key   model.EntryKey
	Entry *model.Entry
}

// QueryOption narrows a Query. Filters combine with AND.
type QueryOption func(*queryOptions)

type queryOptions struct {
	cellType string
	instance string
	kind     model.EntryKind
	hasKind  bool
	pin      *regexp.Regexp
	window   *scalarWindow
	err      error
}

type scalarWindow struct {
	lo, hi float64
	corner delay.Corner
	metric delay.Metric
}

// MatchCellType keeps entries of one cell type.
func MatchCellType(cellType string) QueryOption {
	return func(o *queryOptions) { o.cellType = cellType }
}

// MatchInstance keeps entries of one instance path.
func MatchInstance(instance string) QueryOption {
	return func(o *queryOptions) { o.instance = instance }
}

// MatchKind keeps entries of one kind.
func MatchKind(kind model.EntryKind) QueryOption {
	return func(o *queryOptions) { o.kind, o.hasKind = kind, true }
}

// MatchPin keeps entries whose From or To pin matches the pattern. A
// pattern that fails to compile surfaces ErrBadPattern from Query.
func MatchPin(pattern string) QueryOption {
	return func(o *queryOptions) {
		re, err := regexp.Compile(pattern)
		if err != nil {
			o.err = fmt.Errorf("%w: %v", ErrBadPattern, err)
			return
		}
		o.pin = re
	}
}

// MatchScalarBetween keeps entries whose (corner, metric) field lies in
// [lo, hi]. Entries lacking the field never match.
func MatchScalarBetween(lo, hi float64, corner delay.Corner, metric delay.Metric) QueryOption {
	return func(o *queryOptions) {
		o.window = &scalarWindow{lo: lo, hi: hi, corner: corner, metric: metric}
	}
}

// Query returns every entry passing all filters, in the file's sorted
// walk order.
func Query(f *model.File, opts ...QueryOption) ([]Match, error) {
	var o queryOptions
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var out []Match
	f.Walk(func(ct, inst string, e *model.Entry) {
		if o.cellType != "" && ct != o.cellType {
			return
		}
		if o.instance != "" && inst != o.instance {
			return
		}
		if o.hasKind && e.Kind != o.kind {
			return
		}
		if o.pin != nil && !o.pin.MatchString(e.From) && !o.pin.MatchString(e.To) {
			return
		}
		if o.window != nil {
			v, ok := e.Delays.Scalar(o.window.corner, o.window.metric)
			if !ok || v < o.window.lo || v > o.window.hi {
				return
			}
		}
		out = append(out, Match{
			Key:   model.EntryKey{CellType: ct, Instance: inst, Name: e.Name},
			Entry: e,
		})
	})
	return out, nil
}
