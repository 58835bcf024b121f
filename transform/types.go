// Package transform: value types and input validation sentinels.
package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/maretto/framebuf/tftime"
)

// Sentinel errors for transform input validation.
var (
	// ErrNotFinite indicates a NaN or infinite component in a transform.
	ErrNotFinite = errors.New("transform: non-finite component")

	// ErrZeroRotation indicates a quaternion with zero norm, which has
	// no defined rotation.
	ErrZeroRotation = errors.New("transform: zero-norm quaternion")

	// ErrEmptyFrame indicates an empty frame identifier on a stamped
	// transform.
	ErrEmptyFrame = errors.New("transform: empty frame id")

	// ErrSameFrame indicates a stamped transform whose parent and child
	// are the same frame.
	ErrSameFrame = errors.New("transform: parent and child are the same frame")
)

// Vector3 is a 3-vector translation in meters.
type Vector3 struct {
	X, Y, Z float64
}

// Quaternion is a rotation in (x, y, z, w) component order.
// It is not required to be normalized on input; the algebra normalizes.
type Quaternion struct {
	X, Y, Z, W float64
}

// Transform is a rigid-body mapping from a child frame into its parent:
// p_parent = R·p_child + t.
type Transform struct {
	Translation Vector3
	Rotation    Quaternion
}

// TransformStamped is a Transform tagged with its edge and instant.
type TransformStamped struct {
	// Parent is the frame the transform maps into.
	Parent string

	// Child is the frame the transform maps from. Parent == Child is illegal.
	Child string

	// Stamp is the instant the sample was valid at.
	Stamp tftime.Time

	Transform Transform
}

// finite reports whether every component of the transform is a real number.
func (t Transform) finite() bool {
	for _, v := range [...]float64{
		t.Translation.X, t.Translation.Y, t.Translation.Z,
		t.Rotation.X, t.Rotation.Y, t.Rotation.Z, t.Rotation.W,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate rejects transforms that cannot represent a rigid-body motion:
// non-finite components and zero-norm rotations.
func (t Transform) Validate() error {
	if !t.finite() {
		return ErrNotFinite
	}
	q := t.Rotation
	if q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0 {
		return ErrZeroRotation
	}
	return nil
}

// Validate checks the frame pair and delegates to Transform.Validate.
func (ts TransformStamped) Validate() error {
	if ts.Parent == "" || ts.Child == "" {
		return ErrEmptyFrame
	}
	if ts.Parent == ts.Child {
		return fmt.Errorf("%w: %q", ErrSameFrame, ts.Parent)
	}
	return ts.Transform.Validate()
}

// Invert returns the stamped inverse: the same instant seen from the
// other end of the edge.
func (ts TransformStamped) Invert() TransformStamped {
	return TransformStamped{
		Parent:    ts.Child,
		Child:     ts.Parent,
		Stamp:     ts.Stamp,
		Transform: ts.Transform.Invert(),
	}
}
