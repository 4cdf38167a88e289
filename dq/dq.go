// Package dq implements a dual-quaternion algebra for rigid-body
// transformations in 3D space.
//
// A dual quaternion Q = Real + ε·Dual (ε² = 0) packs a rotation in its real
// part and a translation/offset in its dual part. Composition of rigid
// transforms is the non-commutative dual-quaternion product; points, lines
// and planes are encoded as dual quaternions and transformed with the
// Clifford conjugation family (F1G–F4G).
//
// Values are immutable: every operation returns a new DualQuaternion.
// Quaternions are gonum quat.Number values (Hamilton convention), vectors
// are golang/geo r3.Vector values, matrices are mgl64 values.
package dq

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// ZeroTolerance is the magnitude below which scalar components are snapped
// to exactly zero to suppress floating-point noise.
const ZeroTolerance = 1e-8

// pointDigits is the number of decimal digits kept by rounded point
// extraction.
const pointDigits = 3

var pointScale = math.Pow(10, pointDigits)

// ErrNoTransforms is returned by Multiply when called without arguments.
var ErrNoTransforms = errors.New("dq: Multiply requires at least one transformation")

// DualQuaternion is an immutable rigid-transform value. The embedded
// dualquat.Number exposes the Real part (a unit-norm-intended rotation
// quaternion) and the Dual part (a translation/offset quaternion, not
// required to be unit).
//
// DualQuaternion values are comparable: == and != test exact component
// equality. Use Compare for tolerance-based comparison that also accounts
// for the Q/−Q double cover.
type DualQuaternion struct {
	dualquat.Number
}

var (
	// Default is the identity transform: unit real part, zero dual part.
	Default = New(quat.Number{Real: 1}, quat.Number{})

	// Zero has all eight components zero. Its real part is the zero
	// quaternion, not the identity: Zero is not Default.
	Zero = DualQuaternion{}

	// OriginPoint is the point dual quaternion for (0, 0, 0).
	OriginPoint = NewPoint(r3.Vector{})
)

// New returns the dual quaternion with the given real and dual parts. The
// real part is re-normalized to unit length before storage unless its norm
// is below ZeroTolerance; the dual part is stored as given.
func New(real, dual quat.Number) DualQuaternion {
	if n := quat.Abs(real); n > ZeroTolerance {
		real = quat.Scale(1/n, real)
	}
	return DualQuaternion{dualquat.Number{Real: real, Dual: dual}}
}

// NewFromComponents returns the dual quaternion with the eight given scalar
// components, bypassing real-part normalization. Component order matches At.
func NewFromComponents(rx, ry, rz, rw, dx, dy, dz, dw float64) DualQuaternion {
	return DualQuaternion{dualquat.Number{
		Real: quat.Number{Imag: rx, Jmag: ry, Kmag: rz, Real: rw},
		Dual: quat.Number{Imag: dx, Jmag: dy, Kmag: dz, Real: dw},
	}}
}

// At returns scalar component i of the dual quaternion. Components are
// indexed 0..7 in the fixed order Real X, Y, Z, W, Dual X, Y, Z, W.
// At panics if i is outside [0, 7].
func (q DualQuaternion) At(i int) float64 {
	switch i {
	case 0:
		return q.Real.Imag
	case 1:
		return q.Real.Jmag
	case 2:
		return q.Real.Kmag
	case 3:
		return q.Real.Real
	case 4:
		return q.Dual.Imag
	case 5:
		return q.Dual.Jmag
	case 6:
		return q.Dual.Kmag
	case 7:
		return q.Dual.Real
	default:
		panic("dq: component index out of range [0,7]")
	}
}

// Add returns q + p, component-wise on the real and dual parts. The result
// passes through the normalizing constructor, so the summed real part does
// not survive un-normalized.
func (q DualQuaternion) Add(p DualQuaternion) DualQuaternion {
	return New(quat.Add(q.Real, p.Real), quat.Add(q.Dual, p.Dual))
}

// Sub returns q − p, component-wise on the real and dual parts. Like Add,
// the real part of the result is re-normalized.
func (q DualQuaternion) Sub(p DualQuaternion) DualQuaternion {
	return New(quat.Sub(q.Real, p.Real), quat.Sub(q.Dual, p.Dual))
}

// Neg returns −q: all eight components negated, without re-normalization.
func (q DualQuaternion) Neg() DualQuaternion {
	return NewFromComponents(
		-q.Real.Imag, -q.Real.Jmag, -q.Real.Kmag, -q.Real.Real,
		-q.Dual.Imag, -q.Dual.Jmag, -q.Dual.Kmag, -q.Dual.Real,
	)
}

// Scale returns q with both parts scaled by c, re-normalized through the
// constructor.
func (q DualQuaternion) Scale(c float64) DualQuaternion {
	return New(quat.Scale(c, q.Real), quat.Scale(c, q.Dual))
}

// Mul returns the dual-quaternion product q*p. The product is not
// commutative: q*p applies p first, then q.
func (q DualQuaternion) Mul(p DualQuaternion) DualQuaternion {
	n := dualquat.Mul(q.Number, p.Number)
	return New(n.Real, n.Dual)
}

// snapZero snaps magnitudes below ZeroTolerance to exactly zero.
func snapZero(v float64) float64 {
	if math.Abs(v) < ZeroTolerance {
		return 0
	}
	return v
}

func snapZeroQuat(q quat.Number) quat.Number {
	return quat.Number{
		Real: snapZero(q.Real),
		Imag: snapZero(q.Imag),
		Jmag: snapZero(q.Jmag),
		Kmag: snapZero(q.Kmag),
	}
}

// snap returns q with every component snapped through snapZero.
func (q DualQuaternion) snap() DualQuaternion {
	return DualQuaternion{dualquat.Number{
		Real: snapZeroQuat(q.Real),
		Dual: snapZeroQuat(q.Dual),
	}}
}

// dot is the 4-component quaternion dot product, which gonum/num/quat does
// not provide.
func dot(p, q quat.Number) float64 {
	return p.Real*q.Real + p.Imag*q.Imag + p.Jmag*q.Jmag + p.Kmag*q.Kmag
}

// fromVector builds a quaternion from a vector part and a scalar part.
func fromVector(v r3.Vector, w float64) quat.Number {
	return quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z, Real: w}
}

func roundPoint(v float64) float64 {
	return math.Round(v*pointScale) / pointScale
}
