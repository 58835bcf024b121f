// Package cache stores the per-edge history of transform samples and
// answers lookup-by-time with exact hits, interpolation, or a precise
// refusal.
//
// What
//
//   - Timed: a bounded, newest-first history with interpolation between
//     bracketing samples and a sliding retention window.
//   - Static: a single timeless sample, overwritten on every insert.
//   - Both satisfy the Cache interface, so the graph layer never
//     branches on the variant.
//
// Why
//
//	Transform producers publish at their own rates; consumers query at
//	arbitrary instants. A per-edge time index decouples the two while
//	bounding memory to one retention window per edge.
//
// Refusals
//
//   - ErrOldData       — insert predates the retention window (TF_OLD_DATA).
//   - ErrRepeatedData  — insert duplicates an existing stamp (TF_REPEATED_DATA).
//   - ErrLookupInPast  — query older than the oldest retained sample.
//   - ErrLookupInFuture — query newer than the newest sample; the buffer
//     layer can wait this one out.
//
// Reparenting
//
//	A child may change parents over time. When an interpolation bracket
//	straddles such a change the older sample is returned unchanged:
//	blending transforms into two different parents is meaningless.
//
// Complexity (n = samples in window)
//
//   - Insert: O(log n) search + O(n) shift. A sample newer than every
//     stored one lands at index 0 and shifts the whole history.
//   - At / Parent / Latest: O(log n) / O(log n) / O(1).
package cache
