package dq

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
)

func TestNewNormalizesRealPart(t *testing.T) {
	q := New(quat.Number{Real: 2}, quat.Number{Imag: 3})

	assert.Equal(t, 1.0, q.Real.Real, "real part must be unit after construction")
	assert.Equal(t, 3.0, q.Dual.Imag, "dual part must be stored as given")
}

func TestNewFromComponentsBypassesNormalization(t *testing.T) {
	q := NewFromComponents(0, 0, 0, 2, 0, 0, 0, 0)

	assert.Equal(t, 2.0, q.Real.Real)
}

func TestZeroIsNotDefault(t *testing.T) {
	assert.NotEqual(t, Default, Zero)
	assert.Equal(t, 1.0, Default.Real.Real)
	assert.Equal(t, 0.0, Zero.Real.Real)

	// Zero survives the normalizing constructor untouched.
	assert.Equal(t, Zero, New(quat.Number{}, quat.Number{}))
}

func TestAt(t *testing.T) {
	q := NewFromComponents(1, 2, 3, 4, 5, 6, 7, 8)
	for i := 0; i < 8; i++ {
		assert.Equal(t, float64(i+1), q.At(i))
	}

	assert.Panics(t, func() { q.At(8) })
	assert.Panics(t, func() { q.At(-1) })
}

func TestExactEquality(t *testing.T) {
	a := NewPoint(r3.Vector{X: 1, Y: 2, Z: 3})
	b := NewPoint(r3.Vector{X: 1, Y: 2, Z: 3})
	c := NewPoint(r3.Vector{X: 1, Y: 2, Z: 3 + 1e-12})

	assert.True(t, a == b)
	// == is exact; Compare tolerates the difference.
	assert.False(t, a == c)
	assert.Equal(t, 0, Compare(a, c, 1e-9))
}

func TestAddSub(t *testing.T) {
	a := NewPoint(r3.Vector{X: 1})
	b := NewPoint(r3.Vector{Y: 2})

	sum := a.Add(b)
	assert.Equal(t, 1.0, sum.Dual.Imag)
	assert.Equal(t, 2.0, sum.Dual.Jmag)
	// The summed real part (1+1 = 2) is re-normalized back to unit.
	assert.Equal(t, 1.0, sum.Real.Real)

	diff := sum.Sub(b)
	assert.Equal(t, 1.0, diff.Dual.Imag)
	assert.Equal(t, 0.0, diff.Dual.Jmag)
}

func TestNeg(t *testing.T) {
	q := NewFromComponents(1, -2, 3, -4, 5, -6, 7, -8)
	n := q.Neg()
	for i := 0; i < 8; i++ {
		assert.Equal(t, -q.At(i), n.At(i))
	}
}

func TestScale(t *testing.T) {
	q := NewTranslation(r3.Vector{X: 4})
	s := q.Scale(3)

	// The real part is re-normalized, the dual part keeps the factor.
	assert.Equal(t, 1.0, s.Real.Real)
	assert.Equal(t, 6.0, s.Dual.Imag)
}

func TestOperandConstancy(t *testing.T) {
	a := NewRotation(1, r3.Vector{Z: 1}, r3.Vector{})
	b := NewTranslation(r3.Vector{X: 2})
	aCopy, bCopy := a, b

	_ = a.Mul(b)
	_ = a.Add(b)
	_ = a.Inverse()
	_ = TransformPoint(r3.Vector{X: 1}, a, true)

	require.Equal(t, aCopy, a)
	require.Equal(t, bCopy, b)
}
