package dq

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
)

// The F1G–F4G family applies a transformation dual quaternion a to a value
// dual quaternion b as a·b·a', where a' is one of the Clifford conjugation
// variants of a. The four variants differ only in which components of a are
// negated, but they transform different geometric entities; picking the
// wrong one silently produces wrong poses. All four stay in quaternion
// arithmetic end to end; none round-trips through a matrix.

// F1G returns a·b·a, the bilinear transform with the untransformed
// right factor.
func F1G(a, b DualQuaternion) DualQuaternion {
	return a.Mul(b).Mul(a)
}

// F2G returns a·b·conj(a), where conj negates the vector parts of both the
// real and dual parts of a. This is the conjugation that transforms lines.
func F2G(a, b DualQuaternion) DualQuaternion {
	return a.Mul(b).Mul(DualQuaternion{dualquat.ConjQuat(a.Number)})
}

// F3G returns a·b·a*, where a* keeps the real part and negates all four
// dual components.
func F3G(a, b DualQuaternion) DualQuaternion {
	return a.Mul(b).Mul(DualQuaternion{dualquat.ConjDual(a.Number)})
}

// F4G returns a·b·a**, where a** negates the vector part of the real part
// and the scalar of the dual part. This is the conjugation that transforms
// points encoded with NewPoint.
//
// When adjust is true, result components with magnitude below ZeroTolerance
// are snapped to zero; pass false when raw precision is required.
func F4G(a, b DualQuaternion, adjust bool) DualQuaternion {
	r := a.Mul(b).Mul(DualQuaternion{dualquat.Conj(a.Number)})
	if adjust {
		r = r.snap()
	}
	return r
}

// TransformPoint applies the rigid transform t to the 3D point p. When
// round is true the result is rounded to three decimal digits.
func TransformPoint(p r3.Vector, t DualQuaternion, round bool) r3.Vector {
	return F4G(t, NewPoint(p), true).Point(round)
}

// Multiply composes the given transformations: the right-most argument is
// applied first, matching operator-multiplication order, so
// Multiply(a, b, c) moves a point the way c, then b, then a would.
//
// Intermediate products use raw scalar quaternion arithmetic without
// re-normalizing real parts, so long chains do not accumulate
// re-normalization drift. Multiply returns ErrNoTransforms when called with
// no arguments.
func Multiply(values ...DualQuaternion) (DualQuaternion, error) {
	if len(values) == 0 {
		return Zero, ErrNoTransforms
	}
	result := values[0].Number
	for _, v := range values[1:] {
		result = dualquat.Mul(result, v.Number)
	}
	return DualQuaternion{result}, nil
}

// Compare counts the components of a and b that differ by more than
// precision. Because unit quaternions double-cover rotations (q and −q are
// the same rotation), the count is taken against both b and −b and the
// smaller count is returned; equal transforms therefore compare to 0
// regardless of sign.
func Compare(a, b DualQuaternion, precision float64) int {
	direct, negated := 0, 0
	for i := 0; i < 8; i++ {
		if math.Abs(a.At(i)-b.At(i)) > precision {
			direct++
		}
		if math.Abs(a.At(i)+b.At(i)) > precision {
			negated++
		}
	}
	if negated < direct {
		return negated
	}
	return direct
}

// IsPointOnPlane reports whether the point dual quaternion lies on the
// plane dual quaternion, by comparing the projection of the point onto the
// plane normal against the plane's third dual component.
//
// Note that NewPlane stores its distance in the dual scalar slot, so for
// planes built with a nonzero distance this check reads zero where the
// distance would be expected; the quirk is preserved for compatibility with
// existing callers (see DESIGN.md).
func IsPointOnPlane(point, plane DualQuaternion) bool {
	d := plane.Real.Imag*point.Dual.Imag +
		plane.Real.Jmag*point.Dual.Jmag +
		plane.Real.Kmag*point.Dual.Kmag
	return math.Abs(d-plane.Dual.Kmag) < ZeroTolerance
}
