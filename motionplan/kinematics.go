package motionplan

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Timing describes the time allotted to arrive at a rung from its predecessor. It mirrors
// An optional upper-bound duration: Specified is false when no bound was given, in which case
// Upper is ignored and EdgeBuilder never consults the move-validity oracle.
type Timing struct {
	Specified bool
	Upper     time.Duration
}

// UnspecifiedTiming is the zero-value Timing: no upper bound on arrival time.
var UnspecifiedTiming = Timing{}

// KinematicsOracle is the robot kinematics provider. It is the only thing in this module that
// knows about Cartesian poses, joint limits, or velocity limits; the planner treats it as an
// opaque capability set.
type KinematicsOracle interface {
	// DOF returns the number of independent joints, constant for the oracle's lifetime.
	DOF() int

	// JointPoses returns 0..N candidate joint configurations for point's Cartesian pose. An
	// empty, nil-error return means IK failure; the planner turns that into an IKFailedError
	// naming point's id.
	JointPoses(ctx context.Context, point TrajectoryPoint) ([][]float64, error)

	// IsValidMove reports whether the manipulator can move from the "from" configuration to
	// the "to" configuration within upperBound, given the robot's joint-velocity limits. It is
	// only consulted when building an edge whose destination rung has a specified Timing.
	IsValidMove(from, to []float64, upperBound time.Duration) bool
}

// TrajectoryPoint is a Cartesian waypoint. Its geometric content is opaque to the planner: all
// the planner needs is an identifier to track the rung across edits, and the timing constraint
// that governs the edges arriving at it. IK sampling goes through KinematicsOracle.JointPoses,
// which takes the TrajectoryPoint itself so the oracle can inspect whatever pose representation
// it was built with.
type TrajectoryPoint interface {
	ID() uuid.UUID
	Timing() Timing
}

// CostFunc scores a transition between two joint configurations of equal length. It must be
// pure (no observable side effects) and should return a non-negative value; EdgeBuilder trusts
// the callback and does not clamp or validate its output, so a buggy negative-cost function can
// break Dijkstra's non-negative-weight assumption. A nil CostFunc selects the default L1 metric
// (see metrics.go).
type CostFunc func(from, to []float64) float64
