// Package model: entry kinds, edge polarity, and sentinel errors.
package model

import "errors"

// Sentinel errors for model construction.
var (
	// ErrMissingPin indicates an entry constructor was called without a
	// pin its kind requires.
	ErrMissingPin = errors.New("model: missing required pin")

	// ErrUnknownKind indicates a kind outside the set a constructor accepts.
	ErrUnknownKind = errors.New("model: unknown entry kind")

	// ErrBadTimescale indicates a timescale string outside the SDF set
	// (base 1, 10 or 100; unit fs, ps, ns, us, ms or s).
	ErrBadTimescale = errors.New("model: invalid timescale")
)

// EntryKind discriminates the closed set of timing entry variants.
type EntryKind uint8

const (
	// IOPath is a pin-to-pin delay through a cell.
	IOPath EntryKind = iota

	// Interconnect is a net delay between two fully-qualified pins.
	Interconnect

	// Port is a self-contained delay on a single input port.
	Port

	// Device is a self-contained delay on a single output pin.
	Device

	// Setup is a setup timing check.
	Setup

	// Hold is a hold timing check.
	Hold

	// Recovery is a recovery timing check.
	Recovery

	// Removal is a removal timing check.
	Removal

	// Width is a minimum-pulse-width timing check on a single pin.
	Width

	// SetupHold is a combined setup+hold timing check.
	SetupHold

	// PathConstraint is a timing-environment path constraint.
	PathConstraint
)

// kindNames backs EntryKind.String and ParseKind.
var kindNames = [...]string{
	IOPath:         "iopath",
	Interconnect:   "interconnect",
	Port:           "port",
	Device:         "device",
	Setup:          "setup",
	Hold:           "hold",
	Recovery:       "recovery",
	Removal:        "removal",
	Width:          "width",
	SetupHold:      "setuphold",
	PathConstraint: "pathconstraint",
}

// String returns the lowercase SDF name of the kind.
func (k EntryKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind converts a lowercase SDF kind name to an EntryKind.
func ParseKind(s string) (EntryKind, error) {
	for k, name := range kindNames {
		if name == s {
			return EntryKind(k), nil
		}
	}
	return 0, ErrUnknownKind
}

// IsCheck reports whether the kind is a timing check (never a graph edge).
func (k EntryKind) IsCheck() bool {
	switch k {
	case Setup, Hold, Recovery, Removal, Width, SetupHold:
		return true
	default:
		return false
	}
}

// TwoPin reports whether the kind requires distinct from/to pins.
// PORT, DEVICE and WIDTH attach to a single pin.
func (k EntryKind) TwoPin() bool {
	switch k {
	case Port, Device, Width:
		return false
	default:
		return true
	}
}

// Polarity qualifies the edge of a driving pin.
type Polarity uint8

const (
	// NoEdge means the pin is not edge-qualified.
	NoEdge Polarity = iota

	// Posedge qualifies the rising edge.
	Posedge

	// Negedge qualifies the falling edge.
	Negedge
)

// String returns the SDF keyword for the polarity, or "" for NoEdge.
func (p Polarity) String() string {
	switch p {
	case Posedge:
		return "posedge"
	case Negedge:
		return "negedge"
	default:
		return ""
	}
}
