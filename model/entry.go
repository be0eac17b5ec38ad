package model

import (
	"fmt"

	"github.com/chipflow/sdfkit/delay"
)

// Entry is one timing record inside a cell instance.
//
// From/To hold the endpoint pins. Single-pin kinds (PORT, DEVICE, WIDTH)
// store the same pin in both slots so downstream code can treat every
// entry uniformly. The engine treats identity fields as immutable once
// the entry is constructed.
type Entry struct {
	// Name is the entry's key within its instance, unique after Store.
	Name string

	// Kind is the entry variant.
	Kind EntryKind

	// From and To are the endpoint pins.
	From, To string

	// FromEdge and ToEdge are the optional edge qualifiers.
	FromEdge, ToEdge Polarity

	// Cond is an optional timing-condition expression. It is opaque to
	// the engine and compared only for identity.
	Cond string

	// TimingCheck marks check entries (SETUP, HOLD, …).
	TimingCheck bool

	// TimingEnv marks timing-environment entries (PATHCONSTRAINT).
	TimingEnv bool

	// Absolute and Incremental record which DELAY section the entry
	// came from. Delay-arc constructors default to Absolute.
	Absolute, Incremental bool

	// Delays is the per-corner delay attached to the entry.
	Delays delay.DelayPaths
}

// EntryOption configures optional Entry attributes at construction.
type EntryOption func(*Entry)

// WithName overrides the generated entry name.
func WithName(name string) EntryOption {
	return func(e *Entry) { e.Name = name }
}

// WithEdges sets the edge qualifiers on the endpoint pins.
func WithEdges(from, to Polarity) EntryOption {
	return func(e *Entry) { e.FromEdge, e.ToEdge = from, to }
}

// WithCond attaches a timing-condition expression.
func WithCond(expr string) EntryOption {
	return func(e *Entry) { e.Cond = expr }
}

// WithIncremental marks a delay arc as coming from a DELAY INCREMENT
// section instead of DELAY ABSOLUTE.
func WithIncremental() EntryOption {
	return func(e *Entry) { e.Absolute, e.Incremental = false, true }
}

// NewIOPath builds an IOPATH delay arc from one cell pin to another.
func NewIOPath(from, to string, d delay.DelayPaths, opts ...EntryOption) (*Entry, error) {
	return newTwoPin(IOPath, from, to, d, opts)
}

// NewInterconnect builds an INTERCONNECT net delay between two
// fully-qualified pins.
func NewInterconnect(from, to string, d delay.DelayPaths, opts ...EntryOption) (*Entry, error) {
	return newTwoPin(Interconnect, from, to, d, opts)
}

// NewPort builds a PORT delay on a single input port.
func NewPort(pin string, d delay.DelayPaths, opts ...EntryOption) (*Entry, error) {
	return newOnePin(Port, pin, d, opts)
}

// NewDevice builds a DEVICE delay on a single pin.
func NewDevice(pin string, d delay.DelayPaths, opts ...EntryOption) (*Entry, error) {
	return newOnePin(Device, pin, d, opts)
}

// NewCheck builds a timing check of the given kind. WIDTH takes a single
// pin (pass it as both from and to, or leave to empty); the remaining
// check kinds require both endpoints.
func NewCheck(kind EntryKind, from, to string, d delay.DelayPaths, opts ...EntryOption) (*Entry, error) {
	if !kind.IsCheck() {
		return nil, fmt.Errorf("%w: %s is not a timing check", ErrUnknownKind, kind)
	}
	if kind == Width {
		if to == "" {
			to = from
		}
		e, err := newOnePin(kind, from, d, opts)
		if err != nil {
			return nil, err
		}
		e.TimingCheck = true
		e.Absolute = false
		return e, nil
	}
	e, err := newTwoPin(kind, from, to, d, opts)
	if err != nil {
		return nil, err
	}
	e.TimingCheck = true
	e.Absolute = false
	return e, nil
}

// NewPathConstraint builds a PATHCONSTRAINT timing-environment entry.
func NewPathConstraint(from, to string, d delay.DelayPaths, opts ...EntryOption) (*Entry, error) {
	e, err := newTwoPin(PathConstraint, from, to, d, opts)
	if err != nil {
		return nil, err
	}
	e.TimingEnv = true
	e.Absolute = false
	return e, nil
}

func newTwoPin(kind EntryKind, from, to string, d delay.DelayPaths, opts []EntryOption) (*Entry, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: %s requires both pins (from=%q, to=%q)",
			ErrMissingPin, kind, from, to)
	}
	e := &Entry{
		Name:     fmt.Sprintf("%s_%s_%s", kind, from, to),
		Kind:     kind,
		From:     from,
		To:       to,
		Absolute: true,
		Delays:   d,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func newOnePin(kind EntryKind, pin string, d delay.DelayPaths, opts []EntryOption) (*Entry, error) {
	if pin == "" {
		return nil, fmt.Errorf("%w: %s requires a pin", ErrMissingPin, kind)
	}
	e := &Entry{
		Name:     fmt.Sprintf("%s_%s", kind, pin),
		Kind:     kind,
		From:     pin,
		To:       pin,
		Absolute: true,
		Delays:   d,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Validate re-checks the pin invariant the constructors enforce. The
// timing graph calls it to fail fast on hand-built entries.
func (e *Entry) Validate() error {
	if e.From == "" || e.To == "" {
		return fmt.Errorf("%w: entry %q (%s) has from=%q to=%q",
			ErrMissingPin, e.Name, e.Kind, e.From, e.To)
	}
	return nil
}

// Clone returns a deep copy of the entry, including its DelayPaths.
func (e *Entry) Clone() *Entry {
	c := *e
	c.Delays = e.Delays.Clone()
	return &c
}
