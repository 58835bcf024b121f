// Package tftime provides the nanosecond-resolution stamps used to index
// transform samples, plus saturating duration arithmetic between them.
//
// What
//
//   - Time: a (seconds, nanoseconds) pair with a total order.
//   - Duration: a non-negative (seconds, nanoseconds) span.
//   - Zero value of Time is a sentinel meaning "latest available sample".
//   - Arithmetic saturates instead of wrapping: subtracting a later time
//     from an earlier one yields a zero Duration, adding past the uint32
//     horizon clamps at the maximum representable Time.
//
// Why
//
//	Transform samples arrive on the wire as u32 second / u32 nanosecond
//	pairs. Modeling them directly keeps comparisons exact and avoids the
//	monotonic-clock and location baggage of time.Time, while Std()
//	bridges to time.Duration for timeouts.
//
// Determinism
//
//	All operations are pure value arithmetic; equal inputs always produce
//	equal outputs, so stamps can be used as map keys and binary-search keys.
//
// Complexity
//
//   - Every operation is O(1) with no allocations.
package tftime
