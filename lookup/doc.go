// Package lookup composes per-edge samples into the end-to-end
// transform between any two frames at any instant.
//
// What
//
//   - Lookup(target, source, t): discover the path source→target, sample
//     every edge at the effective time, and chain the results into one
//     stamped transform expressing source in the target frame.
//   - LookupTimeTravel: resolve source and target at two different
//     instants through a fixed reference frame.
//
// Why
//
//	The graph stores one history per edge; consumers think in terms of
//	arbitrary frame pairs. The engine is the bridge: a pure read-side
//	algorithm over graph accessors, with no state of its own.
//
// Effective time
//
//	A query at tftime.Zero means "the latest instant every edge on the
//	path can answer": the minimum over the path's timed edges of their
//	newest stamp. Static edges do not constrain the minimum; a path of
//	only static edges resolves at Zero and each static cache returns
//	its value regardless.
//
// Errors
//
//	Path discovery refusals (ErrNoPath, ErrGraphTooDeep) and per-edge
//	sampling refusals (ErrLookupInPast, ErrLookupInFuture) propagate
//	unmodified, wrapped with the offending edge pair for context. The
//	first failing edge aborts the walk; no partial result is returned.
//
// Complexity (p = path length, n = samples per edge)
//
//   - Lookup: O(V + E) discovery + O(p log n) sampling.
package lookup
