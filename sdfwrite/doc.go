// Package sdfwrite renders a model.File back to SDF text.
//
// The emitter is template-driven: entries are rendered per cell in
// sorted walk order, so output is deterministic and stable across
// runs. Every rvalue is written in full min:typ:max form with absent
// fields blank, which the reader maps back to the identical value, so
// emitted text reparses to an equivalent file. Cells without entries
// are kept.
//
// Corner sets are written back through the inverse of the reader's
// count rule: nominal alone is one rvalue, fast+slow two, and
// fast+nominal+slow three. A delay arc carrying any other corner set
// has no SDF spelling and fails with ErrUnsupportedCorners.
//
// A non-empty timescale argument rescales the file to that timescale
// before emitting; an empty argument keeps the header's.
package sdfwrite
