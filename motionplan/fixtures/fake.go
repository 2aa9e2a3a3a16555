package fixtures

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/viamrobotics/ladderplan/motionplan"
)

// Point is a test-only motionplan.TrajectoryPoint: a Pose carrying an identifier and a timing
// constraint.
type Point struct {
	id     uuid.UUID
	pose   Pose
	timing motionplan.Timing
}

// NewPoint wraps pose with a freshly generated id and no timing constraint.
func NewPoint(pose Pose) *Point {
	return &Point{id: uuid.New(), pose: pose, timing: motionplan.UnspecifiedTiming}
}

// WithTiming returns a copy of p with an upper-bound arrival time attached.
func (p *Point) WithTiming(upper time.Duration) *Point {
	cp := *p
	cp.timing = motionplan.Timing{Specified: true, Upper: upper}
	return &cp
}

// Pose returns the Cartesian pose this point wraps.
func (p *Point) Pose() Pose {
	return p.pose
}

// ID satisfies motionplan.TrajectoryPoint.
func (p *Point) ID() uuid.UUID {
	return p.id
}

// Timing satisfies motionplan.TrajectoryPoint.
func (p *Point) Timing() motionplan.Timing {
	return p.timing
}

// Oracle is a test-only motionplan.KinematicsOracle: JointPoses deterministically maps a Point's
// pose into a configurable number of joint solutions (derived from the sum of the pose
// coordinates, so poses whose coordinates sum to the same value get the same solutions), and
// IsValidMove defers to a caller-supplied predicate (default: always true).
type Oracle struct {
	dof            int
	solutionsPerIK int
	validMove      func(from, to []float64, upperBound time.Duration) bool
	failIDs        map[uuid.UUID]bool
}

// NewOracle constructs an Oracle over dof joints, producing solutionsPerIK candidate solutions
// for every successful IK sample. solutionsPerIK must be at least 1.
func NewOracle(dof, solutionsPerIK int) *Oracle {
	return &Oracle{
		dof:            dof,
		solutionsPerIK: solutionsPerIK,
		failIDs:        make(map[uuid.UUID]bool),
	}
}

// FailIK marks id as an IK failure: JointPoses returns zero solutions for any point with this
// id, exercising the IkFailed error path.
func (o *Oracle) FailIK(id uuid.UUID) {
	o.failIDs[id] = true
}

// SetValidMove installs a custom move-validity predicate. A nil predicate restores the default
// of accepting every move.
func (o *Oracle) SetValidMove(fn func(from, to []float64, upperBound time.Duration) bool) {
	o.validMove = fn
}

// DOF satisfies motionplan.KinematicsOracle.
func (o *Oracle) DOF() int {
	return o.dof
}

// JointPoses satisfies motionplan.KinematicsOracle. Each solution is a deterministic
// perturbation of the point's pose coordinates so that distinct solutions for the same point are
// distinguishable in tests.
func (o *Oracle) JointPoses(ctx context.Context, point motionplan.TrajectoryPoint) ([][]float64, error) {
	if o.failIDs[point.ID()] {
		return nil, nil
	}
	var base float64
	if p, ok := point.(*Point); ok {
		base = p.pose.X + p.pose.Y + p.pose.Z
	}
	solutions := make([][]float64, o.solutionsPerIK)
	for i := range solutions {
		joints := make([]float64, o.dof)
		for d := range joints {
			joints[d] = base + float64(i) + float64(d)*0.1
		}
		solutions[i] = joints
	}
	return solutions, nil
}

// IsValidMove satisfies motionplan.KinematicsOracle.
func (o *Oracle) IsValidMove(from, to []float64, upperBound time.Duration) bool {
	if o.validMove == nil {
		return true
	}
	return o.validMove(from, to, upperBound)
}
