// Package model defines the canonical in-memory form of an SDF timing
// annotation: typed timing entries, the file header, and the File that
// owns them.
//
// An Entry is one timing record: a delay arc (IOPATH, INTERCONNECT,
// PORT, DEVICE), a timing check (SETUP, HOLD, RECOVERY, REMOVAL, WIDTH,
// SETUPHOLD), or a PATHCONSTRAINT timing-environment record. Entries are
// built through per-kind constructors that enforce the required pin
// fields at construction: two-pin kinds reject a missing endpoint, and
// the engine downstream never re-validates. Entry identity fields are
// never mutated by the engine; only the attached delay.DelayPaths
// changes (under normalization), and then only on a cloned File.
//
// A File is the header plus a three-level mapping
// cellType → instance → entryName → *Entry. Entry names are unique
// within an instance; Store resolves collisions by appending _1, _2, …
// to the colliding name. The header's timescale is the unit every
// numeric delay in the file is expressed in; entries carry no unit of
// their own.
//
// Walk and EntryKeys iterate in sorted (cellType, instance, entryName)
// order, which is what makes graph construction and every downstream
// analysis deterministic.
//
// Builder provides fluent programmatic construction:
//
//	f, err := model.NewBuilder().
//		SetHeader(model.Header{Timescale: "1ps"}).
//		Cell("BUF", "b0").
//		IOPath("A", "Y", delay.DelayPaths{delay.Nominal: delay.Triple(1, 2, 3)}).
//		Done().
//		Build()
//
// Errors:
//
//	ErrMissingPin    - a constructor was called without a required pin.
//	ErrUnknownKind   - a check/constraint constructor got a non-check kind.
//	ErrBadTimescale  - a timescale string is not 1|10|100 fs|ps|ns|us|ms|s.
package model
