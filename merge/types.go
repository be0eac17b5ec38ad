package merge

import (
	"errors"
	"fmt"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
)

// Sentinel errors for merging.
var (
	// ErrNoInput indicates Merge was called without files.
	ErrNoInput = errors.New("merge: no input files")

	// ErrTimescaleMismatch indicates inputs with differing timescales
	// and no WithTimescale to reconcile them.
	ErrTimescaleMismatch = errors.New("merge: input timescales differ")

	// ErrBadStrategy indicates an unknown strategy constant.
	ErrBadStrategy = errors.New("merge: unknown strategy")
)

// Strategy selects how duplicate entry keys are resolved.
type Strategy int

const (
	// KeepFirst keeps the value from the earliest input.
	KeepFirst Strategy = iota

	// KeepLast keeps the value from the latest input.
	KeepLast

	// ErrorOnConflict fails on the first key whose values differ across
	// inputs. Identical duplicates are benign.
	ErrorOnConflict
)

// String returns the strategy's canonical name.
func (s Strategy) String() string {
	switch s {
	case KeepFirst:
		return "keep-first"
	case KeepLast:
		return "keep-last"
	case ErrorOnConflict:
		return "error-on-conflict"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy converts a strategy name back to its constant.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "keep-first":
		return KeepFirst, nil
	case "keep-last":
		return KeepLast, nil
	case "error-on-conflict":
		return ErrorOnConflict, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, name)
	}
}

// ConflictError reports two inputs disagreeing on one entry key under
// ErrorOnConflict.
type ConflictError struct {
	Key  model.EntryKey
	A, B delay.DelayPaths
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("merge: conflicting delays for %s: %v vs %v", e.Key, e.A, e.B)
}

// HeaderConflictError reports two inputs disagreeing on one non-empty
// header field under ErrorOnConflict.
type HeaderConflictError struct {
	Field string
	A, B  string
}

func (e *HeaderConflictError) Error() string {
	return fmt.Sprintf("merge: conflicting header field %s: %q vs %q", e.Field, e.A, e.B)
}

// Option configures a merge.
type Option func(*Options)

// Options holds the merge parameters.
type Options struct {
	// Strategy resolves duplicate keys. Defaults to KeepFirst.
	Strategy Strategy

	// Timescale, when set, normalizes every input to it before merging.
	Timescale string

	// err records an invalid option until Merge surfaces it.
	err error
}

// DefaultOptions returns the merge defaults: KeepFirst, no
// normalization.
func DefaultOptions() Options {
	return Options{Strategy: KeepFirst}
}

// WithStrategy selects the duplicate-key policy. Unknown constants
// surface ErrBadStrategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case KeepFirst, KeepLast, ErrorOnConflict:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: %v", ErrBadStrategy, s)
		}
	}
}

// WithTimescale normalizes every input to the given timescale before
// merging.
func WithTimescale(timescale string) Option {
	return func(o *Options) { o.Timescale = timescale }
}
