// Package dqnet provides a dual-quaternion algebra for representing and
// composing rigid-body transformations (rotation + translation) in 3D space,
// and for applying them to points, lines and planes.
//
// The algebra lives in the dq package:
//   - constructors for rotations about arbitrary lines (Plücker coordinates),
//     translations, points, lines and planes
//   - the non-commutative dual-quaternion product and the Clifford
//     conjugation transform family (F1G–F4G)
//   - derived queries: homogeneous matrices, point extraction, inverse,
//     sign-aware comparison
//
// The kinematics package builds serial-chain forward kinematics on top of it.
package dqnet

import (
	"github.com/blang/semver/v4"
)

// Version of the library.
var Version = semver.MustParse("0.1.0")
