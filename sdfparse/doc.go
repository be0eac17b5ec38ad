// Package sdfparse reads SDF text into a model.File.
//
// The reader is a hand-rolled lexer over the s-expression surface plus
// a recursive-descent pass, covering the subset the model represents:
// DELAYFILE header entries, CELL blocks with CELLTYPE and INSTANCE,
// DELAY ABSOLUTE and INCREMENT sections with IOPATH, INTERCONNECT,
// PORT and DEVICE arcs, TIMINGCHECK sections with SETUP, HOLD,
// RECOVERY, REMOVAL, WIDTH and SETUPHOLD, and TIMINGENV sections with
// PATHCONSTRAINT. Ports may carry posedge/negedge qualifiers, and COND
// wraps both delay arcs and check ports; the condition text is kept
// verbatim.
//
// Corner assignment follows the rvalue count of a delay arc: one
// rvalue is nominal, two are fast and slow, three are fast, nominal
// and slow, and none is an all-absent nominal. A single number inside
// an rvalue is a typ-only value; a triple fills min:typ:max with blank
// fields staying absent. SETUPHOLD stores its two rvalues under the
// setup and hold corners, PATHCONSTRAINT under rise and fall.
//
// Every error wraps ErrSyntax and carries the line:column of the
// offending token.
package sdfparse
