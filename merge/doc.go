// Package merge combines timing files under an explicit conflict
// policy.
//
// Inputs are processed in argument order. Entries are keyed by
// (cellType, instance, entryName); a key seen in one input only is
// copied through, and a key seen in several inputs follows the
// strategy:
//
//   - KeepFirst: the earliest input wins (the default).
//   - KeepLast: the latest input wins.
//   - ErrorOnConflict: identical duplicates merge silently; the first
//     key whose delays differ across inputs aborts the merge with a
//     *ConflictError naming the key and both values.
//
// Header fields follow the same policy, field by field, with empty
// fields never competing; under ErrorOnConflict two differing
// non-empty fields abort with a *HeaderConflictError.
//
// All inputs must share one timescale, or WithTimescale must be given
// to normalize each input first; otherwise Merge fails with
// ErrTimescaleMismatch. Inputs are never modified.
package merge
