package dq

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// NewRotation returns the pure rotation of angle radians about the 3D line
// through point with direction axis. The line's moment is cross(point, axis)
// in Plücker coordinates.
func NewRotation(angle float64, axis, point r3.Vector) DualQuaternion {
	return NewRotationPlucker(angle, axis, point.Cross(axis))
}

// NewRotationPlucker returns the pure rotation of angle radians about the
// line given by its Plücker coordinates (axis, moment):
//
//	Real = (sin(θ/2)·axis, cos(θ/2))
//	Dual = (sin(θ/2)·moment, 0)
//
// Components with magnitude below ZeroTolerance are snapped to zero before
// storage, suppressing trigonometric noise at angles like π.
func NewRotationPlucker(angle float64, axis, moment r3.Vector) DualQuaternion {
	s, c := math.Sincos(angle / 2)
	return New(
		snapZeroQuat(fromVector(axis.Mul(s), c)),
		snapZeroQuat(fromVector(moment.Mul(s), 0)),
	)
}

// NewTranslation returns the pure translation by v: 1 + ε·(v/2, 0).
func NewTranslation(v r3.Vector) DualQuaternion {
	return NewScaledTranslation(1, v)
}

// NewScaledTranslation returns the pure translation by amount·v.
func NewScaledTranslation(amount float64, v r3.Vector) DualQuaternion {
	return New(quat.Number{Real: 1}, fromVector(v.Mul(amount/2), 0))
}

// NewPoint encodes p as a point dual quaternion: identity real part, dual
// part (p, 0). Points transform with F4G and are read back with Point.
func NewPoint(p r3.Vector) DualQuaternion {
	return New(quat.Number{Real: 1}, fromVector(p, 0))
}

// NewLine encodes the 3D line through point with the given direction. The
// moment is cross(point, direction).
func NewLine(direction, point r3.Vector) DualQuaternion {
	return NewLinePlucker(direction, point.Cross(direction))
}

// NewLinePlucker encodes a 3D line from its Plücker coordinates:
// Real = (direction, 0), Dual = (moment, 0). The direction is normalized by
// the constructor; the moment is stored as given.
func NewLinePlucker(direction, moment r3.Vector) DualQuaternion {
	return New(fromVector(direction, 0), fromVector(moment, 0))
}

// NewPlane encodes the plane with the given unit normal at the given signed
// distance from the origin: Real = (normal, 0), Dual = (0, 0, 0, distance).
func NewPlane(normal r3.Vector, distance float64) DualQuaternion {
	return New(fromVector(normal, 0), quat.Number{Real: distance})
}

// NewRotationMatrix recovers a rotation-only dual quaternion from a 3×3
// rotation matrix via the Cayley transform B = (R−I)(R+I)⁻¹: the
// skew-symmetric part of B holds tan(θ/2) times the rotation axis, so
// θ = 2·atan(‖b‖). The dual part is zero.
//
// A singular R+I (a π rotation) yields the zero matrix from Inv and hence
// the identity transform; callers with such inputs should construct from
// axis and angle directly.
func NewRotationMatrix(m mgl64.Mat3) DualQuaternion {
	ident := mgl64.Ident3()
	b := m.Sub(ident).Mul3(m.Add(ident).Inv())

	axis := r3.Vector{X: b.At(2, 1), Y: b.At(0, 2), Z: b.At(1, 0)}
	length := axis.Norm()
	if length > 0 {
		axis = axis.Normalize()
	}
	return NewRotationPlucker(2*math.Atan(length), axis, r3.Vector{})
}

// NewRotationTranslation returns the rigid transform that rotates by the
// given quaternion and then translates by translation.
//
// The real part is the normalized rotation scaled by 0.5 and the dual part
// is (translation, 0) times that scaled real part; the constructor's own
// re-normalization cancels the 0.5 out of the real part but the dual part
// keeps it, yielding the standard ½·t·r dual encoding.
func NewRotationTranslation(rotation quat.Number, translation r3.Vector) DualQuaternion {
	real := quat.Scale(0.5/quat.Abs(rotation), rotation)
	dual := quat.Mul(fromVector(translation, 0), real)
	return New(real, dual)
}
