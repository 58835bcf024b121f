// Package transform: the pure SE(3) algebra.
//
// Rotations ride on gonum's quaternion arithmetic; translations on
// gonum's spatial vectors. Nothing here allocates beyond return values.
package transform

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// antipodalEps bounds the slerp arc below which the shortest path is
// numerically undefined and Interpolate falls back to an endpoint.
const antipodalEps = 1e-9

// Identity returns the transform that maps every point to itself.
func Identity() Transform {
	return Transform{Rotation: Quaternion{W: 1}}
}

// quatOf lifts a Quaternion into gonum component order (w first).
func quatOf(q Quaternion) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// quatBack lowers a gonum quaternion into wire component order.
func quatBack(n quat.Number) Quaternion {
	return Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

// vecOf lifts a Vector3 into a gonum spatial vector.
func vecOf(v Vector3) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// vecBack lowers a gonum spatial vector into a Vector3.
func vecBack(v r3.Vec) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// unit normalizes q to unit length. The zero quaternion is caught by
// Validate before any algebra runs; here it would divide to NaN.
func unit(q quat.Number) quat.Number {
	return quat.Scale(1/quat.Abs(q), q)
}

// rotate applies the unit quaternion q to v.
func rotate(q quat.Number, v r3.Vec) r3.Vec {
	return r3.Rotation(q).Rotate(v)
}

// Normalized returns t with its rotation scaled to unit length.
func (t Transform) Normalized() Transform {
	return Transform{
		Translation: t.Translation,
		Rotation:    quatBack(unit(quatOf(t.Rotation))),
	}
}

// Invert returns the inverse rigid-body transform: if t maps child
// points into the parent frame, Invert(t) maps parent points back.
func (t Transform) Invert() Transform {
	q := unit(quatOf(t.Rotation))
	qInv := quat.Conj(q)
	return Transform{
		Translation: vecBack(rotate(qInv, r3.Scale(-1, vecOf(t.Translation)))),
		Rotation:    quatBack(qInv),
	}
}

// Compose returns the transform equal to applying b first, then a:
// the SE(3) product a·b.
func Compose(a, b Transform) Transform {
	qa := unit(quatOf(a.Rotation))
	qb := unit(quatOf(b.Rotation))
	return Transform{
		Translation: vecBack(r3.Add(vecOf(a.Translation), rotate(qa, vecOf(b.Translation)))),
		Rotation:    quatBack(quat.Mul(qa, qb)),
	}
}

// Chain left-folds Compose over seq starting from the identity, so the
// sequence reads in application order right-to-left like a matrix
// product: Chain(a, b, c) = a·b·c. Chain() is the identity.
func Chain(seq ...Transform) Transform {
	out := Identity()
	for _, t := range seq {
		out = Compose(out, t)
	}
	return out
}

// Interpolate blends a into b with parameter w in [0, 1]: spherical
// linear interpolation on the rotations, linear on the translations.
// w outside [0, 1] clamps; w == 0 and w == 1 return the endpoints
// exactly. Antipodal rotations (no shortest arc within antipodalEps)
// fall back to the nearer endpoint's rotation with the lerped
// translation.
func Interpolate(a, b Transform, w float64) Transform {
	switch {
	case w <= 0:
		return a
	case w >= 1:
		return b
	}

	lerp := vecBack(r3.Add(
		r3.Scale(1-w, vecOf(a.Translation)),
		r3.Scale(w, vecOf(b.Translation)),
	))

	qa := unit(quatOf(a.Rotation))
	qb := unit(quatOf(b.Rotation))
	dot := qa.Real*qb.Real + qa.Imag*qb.Imag + qa.Jmag*qb.Jmag + qa.Kmag*qb.Kmag

	if dot < -1+antipodalEps {
		// No shortest arc. Keep the nearer endpoint's rotation.
		near := a.Rotation
		if w > 0.5 {
			near = b.Rotation
		}
		return Transform{Translation: lerp, Rotation: near}
	}
	if dot < 0 {
		// Flip to the same hemisphere so slerp takes the short way.
		qb = quat.Scale(-1, qb)
		dot = -dot
	}
	if dot > 1 {
		dot = 1
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	if sinTheta < antipodalEps {
		// Rotations coincide; only the translation moves.
		return Transform{Translation: lerp, Rotation: quatBack(qa)}
	}

	sa := math.Sin((1-w)*theta) / sinTheta
	sb := math.Sin(w*theta) / sinTheta
	q := quat.Add(quat.Scale(sa, qa), quat.Scale(sb, qb))
	return Transform{Translation: lerp, Rotation: quatBack(unit(q))}
}
