// Package timegraph builds a directed multigraph of pins from a
// model.File and implements the path algebra over it: simple-path
// search, delay composition, verification, and decomposition.
//
// Construction rules:
//
//   - IOPATH entries become edges instance/from → instance/to (pins
//     qualified with the instance path and the header's divider).
//   - INTERCONNECT and PATHCONSTRAINT entries carry already-qualified
//     pins and become edges as-is.
//   - PORT and DEVICE entries are self-contained delays on one pin. The
//     pin is split into "pin:in" and "pin:out" aliases, the port delay
//     becomes the edge between them, and neighboring edges are
//     re-pointed at the proper side, so ComposeDelay folds port delays
//     into any path with no special cases.
//   - Timing checks (SETUP, HOLD, …) are constraints, not delays: they
//     never become edges and are reachable only through model.File.Checks.
//   - Parallel edges between the same ordered pin pair are preserved;
//     each may carry a distinct condition expression.
//
// Malformed topology (dangling pins, self-loops) never fails the build.
// A structurally incomplete entry (a required pin missing, which the
// constructors in package model normally make impossible) fails fast
// with ErrMalformedEntry.
//
// Determinism: the build iterates entries in sorted (cellType, instance,
// entryName) order and FindPaths explores edges in insertion order, so
// path order is a pure function of the entry set. A Graph is a read-only
// view built fresh from its File: it holds no cache and never observes
// later File mutations, and concurrent read-only use is safe.
//
// Complexity: Build is O(E log E) in the number of delay entries.
// FindPaths enumerates all simple paths, which is exponential in the
// worst case; the simple-path constraint bounds depth by the node count,
// so search terminates on cyclic graphs, and WithMaxDepth/WithContext
// bound the effort further.
//
// Errors:
//
//	ErrMalformedEntry - an entry lacks a pin its kind requires.
//	ErrEmptyPath      - ComposeDelay was given no edges.
//	ErrBadMaxDepth    - a negative depth limit was supplied.
package timegraph
