package motionplan

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTooFewPoints is returned by InsertGraph when fewer than two trajectory points are supplied.
var ErrTooFewPoints = errors.New("need at least 2 trajectory points to build a graph")

// ErrUnknownID is returned by ModifyTrajectory and RemoveTrajectory when no rung carries the
// given point's id, and by AddTrajectory when no rung carries a non-nil nextID.
var ErrUnknownID = errors.New("no rung with that id")

// ErrNoPath is returned by Search and Planner.ShortestPath when the minimum cost over the last
// rung is +Inf: the graph has no source-to-sink path.
var ErrNoPath = errors.New("no path through graph")

// IKFailedError is returned whenever the kinematics oracle returns zero joint solutions for a
// trajectory point's Cartesian pose.
type IKFailedError struct {
	ID uuid.UUID
}

func (e *IKFailedError) Error() string {
	return fmt.Sprintf("IK failed at id=%s", e.ID)
}

func newIKFailedError(id uuid.UUID) error {
	return &IKFailedError{ID: id}
}

// InvariantError reports a contract violation in LadderGraph's edit API: an AssignEdges call
// with a length mismatch or an out-of-range destination index. Callers that construct graphs
// through Planner should never see one; it exists for disciplined direct use of LadderGraph.
type InvariantError struct {
	Op     string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("motionplan: invariant violated in %s: %s", e.Op, e.Reason)
}

func newInvariantError(op, reason string) error {
	return &InvariantError{Op: op, Reason: reason}
}
