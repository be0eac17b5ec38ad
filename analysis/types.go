package analysis

import (
	"context"
	"errors"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/timegraph"
)

// Sentinel errors for ranking, batch analysis, and query.
var (
	// ErrNoPath indicates no path exists between the requested endpoints.
	ErrNoPath = errors.New("analysis: no path between endpoints")

	// ErrNoComparablePath indicates paths exist but none carries the
	// requested (corner, metric) scalar.
	ErrNoComparablePath = errors.New("analysis: no path carries the requested corner and metric")

	// ErrBadWorkers indicates a WithWorkers argument below one.
	ErrBadWorkers = errors.New("analysis: worker count must be >= 1")

	// ErrBadPattern indicates a MatchPin pattern that failed to compile.
	ErrBadPattern = errors.New("analysis: invalid pin pattern")
)

// RankedPath is one path with its composed delay and scalar rank.
type RankedPath struct {
	// Edges is the path in traversal order.
	Edges []timegraph.Edge

	// Delay is the composed per-corner delay of the whole path.
	Delay delay.DelayPaths

	// Scalar is the (corner, metric) field used for ordering. It is
	// meaningful only when Comparable is true.
	Scalar float64

	// Comparable reports whether the composed delay carries the
	// requested scalar.
	Comparable bool
}

// Option configures path analysis via functional arguments. An invalid
// option is recorded and surfaced as a sentinel when the analysis runs.
type Option func(*Options)

// Options holds the analysis parameters.
type Options struct {
	// Ctx allows cancellation of long enumerations.
	Ctx context.Context

	// Ascending flips RankPaths to smallest-first.
	Ascending bool

	// MaxDepth, if > 0, bounds the number of edges per path.
	MaxDepth int

	// Sources and Sinks override the batch endpoints. Empty means all
	// startpoints, respectively all endpoints.
	Sources, Sinks []string

	// Workers is the batch fan-out width.
	Workers int

	// err records an invalid option until the analysis surfaces it.
	err error
}

// DefaultOptions returns the analysis defaults: background context,
// descending order, no depth limit, sequential batch.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Workers: 1}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAscending orders comparable paths smallest-first.
func WithAscending() Option {
	return func(o *Options) { o.Ascending = true }
}

// WithMaxDepth bounds the number of edges per path. Zero disables the
// limit; negative values surface timegraph.ErrBadMaxDepth.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = timegraph.ErrBadMaxDepth
			return
		}
		o.MaxDepth = limit
	}
}

// WithSources restricts batch analysis to the given source pins.
func WithSources(pins ...string) Option {
	return func(o *Options) {
		o.Sources = append([]string(nil), pins...)
	}
}

// WithSinks restricts batch analysis to the given sink pins.
func WithSinks(pins ...string) Option {
	return func(o *Options) {
		o.Sinks = append([]string(nil), pins...)
	}
}

// WithWorkers fans batch analysis out over n goroutines. Values below
// one surface ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrBadWorkers
			return
		}
		o.Workers = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o, o.err
}
