// Package transform provides the rigid-body transform value types and
// the pure SE(3) algebra that the rest of the module composes with.
//
// What
//
//   - Vector3, Quaternion, Transform, TransformStamped value types.
//   - Invert: exact inverse of a rigid-body transform.
//   - Chain: left-to-right composition of a transform sequence
//     (Chain() with no arguments yields the identity).
//   - Interpolate: spherical-linear interpolation of the rotation with
//     linear interpolation of the translation.
//   - Validate: rejects non-finite components and degenerate rotations.
//
// Why
//
//	Every lookup is a chain of per-edge samples; keeping the algebra
//	pure and allocation-free makes the hot path trivially parallel and
//	lets the cache and lookup layers stay free of any math.
//
// Conventions
//
//	A Transform with parent P and child C maps points expressed in C
//	into P: p_P = R·p_C + t. Composition follows the SE(3) product:
//	Chain(a, b) applies b first, then a maps the result onward, matching
//	matrix multiplication a·b. Quaternions are normalized on ingress;
//	callers never need to pre-normalize.
//
// Numerical edge cases
//
//	When the two rotations of an interpolation are antipodal within
//	1e-9, slerp has no shortest arc; Interpolate falls back to the
//	nearer endpoint's rotation and keeps the linear translation.
//
// Complexity
//
//   - All operations are O(1); Chain is O(n) in the sequence length.
package transform
