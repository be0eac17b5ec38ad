// Package timegraph: edge type, sentinel errors, and search options.
package timegraph

import (
	"context"
	"errors"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
)

// Sentinel errors for graph construction and path search.
var (
	// ErrMalformedEntry indicates a structurally incomplete entry reached
	// Build (missing required pin identifiers for its kind).
	ErrMalformedEntry = errors.New("timegraph: malformed timing entry")

	// ErrEmptyPath indicates ComposeDelay was called with no edges.
	ErrEmptyPath = errors.New("timegraph: cannot compose an empty path")

	// ErrBadMaxDepth indicates a negative WithMaxDepth argument.
	ErrBadMaxDepth = errors.New("timegraph: max depth must be >= 0")
)

// Alias suffixes for split single-pin delay nodes.
const (
	pinInSuffix  = ":in"
	pinOutSuffix = ":out"
)

// Edge is one directed timing arc between two fully-qualified pins.
type Edge struct {
	// Source and Sink are the qualified endpoint pin names.
	Source, Sink string

	// Delay is the per-corner delay carried by the originating entry.
	Delay delay.DelayPaths

	// Kind is the originating entry's kind.
	Kind model.EntryKind

	// CellType, Instance and EntryName locate the originating entry.
	CellType, Instance, EntryName string
}

// Option configures path search via functional arguments, following the
// usual deferred-validation idiom: an invalid option is recorded and
// surfaced as a sentinel when the search runs.
type Option func(*Options)

// Options holds the path-search parameters.
type Options struct {
	// Ctx allows cancellation of long enumerations.
	Ctx context.Context

	// MaxDepth, if > 0, bounds the number of edges per path.
	// 0 disables the limit (simple paths are bounded by node count).
	MaxDepth int

	// err records an invalid option until the search surfaces it.
	err error
}

// DefaultOptions returns the search defaults: background context, no
// depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the number of edges per path. Zero disables the
// limit; negative values surface ErrBadMaxDepth.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = ErrBadMaxDepth
			return
		}
		o.MaxDepth = limit
	}
}
