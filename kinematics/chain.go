package kinematics

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/spareilleux/dqnet-std/debug"
	"github.com/spareilleux/dqnet-std/dq"
	"github.com/spareilleux/dqnet-std/logger"
)

// ErrPositionCount reports a position slice whose length does not match the
// chain's joint count.
var ErrPositionCount = errors.New("kinematics: position count does not match joint count")

// Chain is an ordered serial linkage: Joints from base to tip, plus a fixed
// end-effector offset applied before any joint motion.
type Chain struct {
	Name   string
	Joints []Joint
	Tip    dq.DualQuaternion
}

// NewChain returns a chain with the identity tip offset.
func NewChain(name string, joints ...Joint) *Chain {
	return &Chain{Name: name, Joints: joints, Tip: dq.Default}
}

// Pose composes the chain's transforms at the given joint positions into a
// base-to-tip rigid transform; the tip offset is applied first, then each
// joint from tip-most to base. Positions are validated against the joint
// limits.
func (c *Chain) Pose(positions []float64) (dq.DualQuaternion, error) {
	if len(positions) != len(c.Joints) {
		return dq.Zero, fmt.Errorf("%w: got %d, chain %q has %d joints",
			ErrPositionCount, len(positions), c.Name, len(c.Joints))
	}

	transforms := make([]dq.DualQuaternion, 0, len(c.Joints)+1)
	for i, j := range c.Joints {
		if err := j.Check(positions[i]); err != nil {
			return dq.Zero, fmt.Errorf("joint %d (%s): %w", i, j.Name, err)
		}
		transforms = append(transforms, j.Transform(positions[i]))
	}
	transforms = append(transforms, c.Tip)

	pose, err := dq.Multiply(transforms...)
	if err != nil {
		return dq.Zero, err
	}
	debug.Assert(pose.IsUnit(), "chain pose must stay a unit dual quaternion")

	log := logger.Logger()
	log.Debug().
		Str("chain", c.Name).
		Floats64("positions", positions).
		Msg("forward kinematics")
	return pose, nil
}

// EndEffector transforms the origin through the chain at the given joint
// positions, yielding the end-effector location.
func (c *Chain) EndEffector(positions []float64) (r3.Vector, error) {
	pose, err := c.Pose(positions)
	if err != nil {
		return r3.Vector{}, err
	}
	return dq.TransformPoint(r3.Vector{}, pose, false), nil
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b r3.Vector) float64 {
	d := a.Sub(b)
	return floats.Norm([]float64{d.X, d.Y, d.Z}, 2)
}
