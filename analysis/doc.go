// Package analysis ranks timing paths and summarizes timing files.
//
// Path delays are per-corner triples, so ranking needs a scalar lens:
// every operation takes a (corner, metric) pair and orders paths by
// that one number. Paths whose composed delay lacks the requested
// field are "incomparable"; they are always reported, never silently
// dropped, and sort after every comparable path.
//
// Operations:
//
//   - RankPaths: every simple path source → sink with its composed
//     delay and scalar, comparable paths stable-sorted descending
//     (WithAscending flips), incomparable paths at the tail in
//     discovery order.
//   - CriticalPath: the comparable path with the largest scalar; a tie
//     keeps the first-discovered path.
//   - Slack: period minus the critical scalar.
//   - BatchEndpoints: the critical path for every (startpoint,
//     endpoint) pair, optionally fanned out over WithWorkers
//     goroutines. Graphs are immutable after Build, so concurrent
//     searches share one graph safely.
//   - Summarize, Query, Lint: aggregate statistics, structural entry
//     search, and consistency checks over a model.File.
//
// Errors:
//
//	ErrNoPath           - no path exists between the endpoints.
//	ErrNoComparablePath - paths exist, but none carries the scalar.
//	ErrBadWorkers       - a worker count below one was supplied.
//	ErrBadPattern       - a pin pattern failed to compile.
package analysis
