// Package diff compares two timing files.
//
// Compare reports three kinds of difference: entry keys present on one
// side only, entries present on both sides whose delays differ beyond
// the tolerance, and header fields that disagree. Value comparison
// follows the delay algebra exactly: absent vs present is always a
// difference, present fields compare within the absolute tolerance,
// and a file always diffs empty against itself at any tolerance.
//
// Files with different timescales compare their raw numbers unless
// WithNormalizeTo rescales both sides first.
package diff
