package dq

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genAngle() gopter.Gen {
	return gen.Float64Range(-math.Pi, math.Pi)
}

func genVector() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(-10, 10),
		gen.Float64Range(-10, 10),
		gen.Float64Range(-10, 10),
	).Map(func(vals []interface{}) r3.Vector {
		return r3.Vector{X: vals[0].(float64), Y: vals[1].(float64), Z: vals[2].(float64)}
	})
}

// rigid builds a unit rigid transform from a rotation about the line
// through point with direction axis, composed after a translation by v.
func rigid(angle float64, axis, point, v r3.Vector) DualQuaternion {
	if axis.Norm() < 1e-6 {
		axis = r3.Vector{Z: 1}
	} else {
		axis = axis.Normalize()
	}
	x, err := Multiply(NewRotation(angle, axis, point), NewTranslation(v))
	if err != nil {
		panic(err)
	}
	return x
}

func TestAlgebraicLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Default is a two-sided identity", prop.ForAll(
		func(angle float64, axis, point, v r3.Vector) bool {
			x := rigid(angle, axis, point, v)
			return Compare(x.Mul(Default), x, 1e-9) == 0 &&
				Compare(Default.Mul(x), x, 1e-9) == 0
		},
		genAngle(), genVector(), genVector(), genVector(),
	))

	properties.Property("rigid transforms are unit", prop.ForAll(
		func(angle float64, axis, point, v r3.Vector) bool {
			return rigid(angle, axis, point, v).IsUnit()
		},
		genAngle(), genVector(), genVector(), genVector(),
	))

	properties.Property("origin rotations invert to Default", prop.ForAll(
		func(angle float64, axis r3.Vector) bool {
			x := rigid(angle, axis, r3.Vector{}, r3.Vector{})
			return Compare(x.Mul(x.Inverse()), Default, 1e-9) == 0
		},
		genAngle(), genVector(),
	))

	properties.Property("Compare treats q and -q as equal", prop.ForAll(
		func(angle float64, axis, point, v r3.Vector) bool {
			x := rigid(angle, axis, point, v)
			return Compare(x, x.Neg(), 1e-12) == 0
		},
		genAngle(), genVector(), genVector(), genVector(),
	))

	properties.Property("translating a point adds the vector", prop.ForAll(
		func(p, v r3.Vector) bool {
			got := TransformPoint(p, NewTranslation(v), false)
			return got.Sub(p.Add(v)).Norm() < 1e-7
		},
		genVector(), genVector(),
	))

	properties.Property("Mat4 agrees with TransformPoint", prop.ForAll(
		func(angle float64, axis, point, v, p r3.Vector) bool {
			x := rigid(angle, axis, point, v)
			fromMatrix := applyMat4(x.Mat4(), p)
			fromAlgebra := TransformPoint(p, x, false)
			return fromMatrix.Sub(fromAlgebra).Norm() < 1e-7
		},
		genAngle(), genVector(), genVector(), genVector(), genVector(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
