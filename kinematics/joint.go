// Package kinematics builds serial-chain forward kinematics on the dq
// dual-quaternion algebra: joints anchored on Plücker lines compose into an
// end-effector pose.
package kinematics

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
	"github.com/spareilleux/dqnet-std/dq"
)

// JointType selects the motion a joint contributes.
type JointType int

const (
	// Revolute joints rotate about the line through Anchor with direction
	// Axis; positions are angles in radians.
	Revolute JointType = iota
	// Prismatic joints translate along Axis; positions are offsets.
	Prismatic
)

// DefaultRevoluteLimit bounds revolute joints that want a symmetric
// mechanical stop short of a full turn (±162°).
const DefaultRevoluteLimit = 0.9 * math.Pi

// ErrLimitExceeded reports a joint position outside its limits.
var ErrLimitExceeded = errors.New("kinematics: joint position outside limits")

// Degrees converts radians to degrees for logging/display.
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Limits is a closed position interval. The zero value means unlimited.
type Limits struct {
	Min, Max float64
}

// SymmetricLimits returns limits of ±bound.
func SymmetricLimits(bound float64) Limits {
	return Limits{Min: -bound, Max: bound}
}

// Joint is one degree of freedom of a chain.
type Joint struct {
	Name   string
	Type   JointType
	Axis   r3.Vector // motion direction; unit length expected
	Anchor r3.Vector // a point on the joint line (revolute only)
	Limits Limits
}

// Check validates position against the joint limits.
func (j Joint) Check(position float64) error {
	if (j.Limits == Limits{}) {
		return nil
	}
	if position < j.Limits.Min || position > j.Limits.Max {
		return ErrLimitExceeded
	}
	return nil
}

// Transform returns the rigid transform the joint contributes at the given
// position.
func (j Joint) Transform(position float64) dq.DualQuaternion {
	if j.Type == Prismatic {
		return dq.NewScaledTranslation(position, j.Axis)
	}
	return dq.NewRotation(position, j.Axis, j.Anchor)
}
