// Package normalize rescales a timing file to a target timescale.
//
// Delay values in a file are plain numbers in the header's timescale,
// so files can only be compared or merged after they agree on one.
// Normalize converts every present delay field by the exact
// power-of-ten ratio between the two scales; absent fields stay
// absent, and the input file is never touched.
//
// Errors: ErrNoTimescale when the source header has none, and
// model.ErrBadTimescale for an unparsable source or target scale.
package normalize
