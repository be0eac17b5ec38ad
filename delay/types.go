// Package delay: Corner and Metric label types plus sentinel errors.
//
// This file declares the closed Corner set with its Named fallback, the
// Metric selector, and parsing helpers used by the CLI and the parser.
package delay

import (
	"errors"
	"strings"
)

// Sentinel errors for label parsing.
var (
	// ErrUnknownMetric is returned when a metric string is not min/typ/avg/max.
	ErrUnknownMetric = errors.New("delay: unknown metric")

	// ErrEmptyCorner is returned when a corner name is empty or blank.
	ErrEmptyCorner = errors.New("delay: empty corner name")
)

// cornerKind discriminates the known corner labels from named fallbacks.
type cornerKind uint8

const (
	ckNominal cornerKind = iota
	ckFast
	ckSlow
	ckSetup
	ckHold
	ckRise
	ckFall
	ckNamed
)

// Corner identifies the operating condition a Value belongs to.
//
// The zero Corner is Nominal. Corners are comparable and usable as map
// keys; two Named corners are equal iff their canonical names are equal.
type Corner struct {
	kind cornerKind
	name string // set only for ckNamed
}

// The closed set of known corner labels.
var (
	// Nominal is the typical operating condition.
	Nominal = Corner{kind: ckNominal}

	// Fast is the best-case (fast silicon) condition.
	Fast = Corner{kind: ckFast}

	// Slow is the worst-case (slow silicon) condition.
	Slow = Corner{kind: ckSlow}

	// Setup carries the setup limb of a SETUPHOLD check.
	Setup = Corner{kind: ckSetup}

	// Hold carries the hold limb of a SETUPHOLD check.
	Hold = Corner{kind: ckHold}

	// Rise carries the rising limb of a path constraint.
	Rise = Corner{kind: ckRise}

	// Fall carries the falling limb of a path constraint.
	Fall = Corner{kind: ckFall}
)

// knownCorners maps canonical names onto the closed set.
var knownCorners = map[string]Corner{
	"nominal": Nominal,
	"fast":    Fast,
	"slow":    Slow,
	"setup":   Setup,
	"hold":    Hold,
	"rise":    Rise,
	"fall":    Fall,
}

// Named returns the Corner for an arbitrary condition label, such as a
// vendor PVT corner name ("ff_1p32v_m40c"). Names matching a known label
// (case-insensitive) canonicalize onto the closed set, so
// Named("Nominal") == Nominal.
func Named(name string) (Corner, error) {
	canonical := strings.ToLower(strings.TrimSpace(name))
	if canonical == "" {
		return Corner{}, ErrEmptyCorner
	}
	if c, ok := knownCorners[canonical]; ok {
		return c, nil
	}
	return Corner{kind: ckNamed, name: canonical}, nil
}

// String returns the canonical label of the corner.
func (c Corner) String() string {
	switch c.kind {
	case ckNominal:
		return "nominal"
	case ckFast:
		return "fast"
	case ckSlow:
		return "slow"
	case ckSetup:
		return "setup"
	case ckHold:
		return "hold"
	case ckRise:
		return "rise"
	case ckFall:
		return "fall"
	default:
		return c.name
	}
}

// Known reports whether the corner belongs to the closed label set.
func (c Corner) Known() bool { return c.kind != ckNamed }

// lessCorner orders corners deterministically: known labels in
// declaration order first, then named corners lexicographically.
func lessCorner(a, b Corner) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	return a.name < b.name
}

// Metric selects one field of a Value triple.
type Metric uint8

const (
	// Min selects the minimum field.
	Min Metric = iota

	// Typ selects the typical (average) field.
	Typ

	// Max selects the maximum field.
	Max
)

// String returns the metric's canonical name.
func (m Metric) String() string {
	switch m {
	case Min:
		return "min"
	case Typ:
		return "typ"
	default:
		return "max"
	}
}

// ParseMetric converts a metric name to a Metric. "avg" is accepted as an
// alias for Typ, matching the SDF convention of calling the middle field
// the average.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return Min, nil
	case "typ", "avg":
		return Typ, nil
	case "max":
		return Max, nil
	default:
		return 0, ErrUnknownMetric
	}
}
