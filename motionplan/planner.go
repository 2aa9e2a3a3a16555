package motionplan

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/viamrobotics/ladderplan/logging"
)

// PathStep is one element of a ShortestPath result: the joint configuration chosen for a rung,
// paired with the timing constraint that governed arriving at it.
type PathStep struct {
	Joints []float64
	Timing Timing
}

// Planner orchestrates LadderGraph, EdgeBuilder, and Search into the four edit operations and the
// shortest_path query. It is the only component that samples IK through KinematicsOracle; the
// EdgeBuilders it creates consult the same oracle's IsValidMove.
type Planner struct {
	oracle KinematicsOracle
	cost   CostFunc
	graph  *LadderGraph
	logger logging.Logger
}

// NewPlanner constructs a Planner with an empty graph sized to oracle.DOF(). A nil logger
// defaults to a no-op logger so callers never have to pass logging.NewBlankLogger explicitly.
func NewPlanner(oracle KinematicsOracle, cost CostFunc, logger logging.Logger) *Planner {
	if logger == nil {
		logger = logging.NewBlankLogger("motionplan")
	}
	return &Planner{
		oracle: oracle,
		cost:   cost,
		graph:  NewLadderGraph(oracle.DOF()),
		logger: logger,
	}
}

func (p *Planner) sampleIK(ctx context.Context, point TrajectoryPoint) ([][]float64, error) {
	solutions, err := p.oracle.JointPoses(ctx, point)
	if err != nil {
		return nil, errors.Wrapf(err, "sampling IK for id=%s", point.ID())
	}
	if len(solutions) == 0 {
		return nil, newIKFailedError(point.ID())
	}
	return solutions, nil
}

// edgesBetween computes and stores the edge table from rung i to rung i+1, sampling both rungs'
// vertex buffers directly out of the graph.
func (p *Planner) edgesBetween(ctx context.Context, i int) error {
	from, err := p.graph.GetRung(i)
	if err != nil {
		return err
	}
	to, err := p.graph.GetRung(i + 1)
	if err != nil {
		return err
	}
	builder := NewEdgeBuilder(p.oracle, p.cost)
	edges, err := builder.CalculateEdges(ctx, from.Vertices, to.Vertices, p.graph.DoF(), to.Timing)
	if err != nil {
		return errors.Wrap(err, "calculating edges")
	}
	return p.graph.AssignEdges(i, edges)
}

// InsertGraph bulk-builds the graph from points: requires at least two points, samples IK for
// every one before touching the graph, then allocates and assigns all rungs and edges in order.
func (p *Planner) InsertGraph(ctx context.Context, points []TrajectoryPoint) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}

	solutions := make([][][]float64, len(points))
	for i, point := range points {
		sols, err := p.sampleIK(ctx, point)
		if err != nil {
			return err
		}
		solutions[i] = sols
	}

	p.graph = NewLadderGraph(p.oracle.DOF())
	p.graph.Allocate(len(points))
	for i, point := range points {
		if err := p.graph.AssignRung(i, point.ID(), point.Timing(), solutions[i]); err != nil {
			return err
		}
	}
	for i := 0; i < len(points)-1; i++ {
		if err := p.edgesBetween(ctx, i); err != nil {
			return err
		}
	}
	p.logger.Infow("inserted graph", "rungs", p.graph.Size())
	return nil
}

// AddTrajectory inserts point into an already-built graph between the rungs identified by prevID
// and nextID, either of which may be uuid.Nil to mean "no neighbor on that side" (begin/end of
// the trajectory). A nil nextID means append at the end of the graph.
func (p *Planner) AddTrajectory(ctx context.Context, point TrajectoryPoint, prevID, nextID uuid.UUID) error {
	var insertIdx int
	if nextID == uuid.Nil {
		insertIdx = p.graph.Size()
	} else {
		idx, found := p.graph.IndexOf(nextID)
		if !found {
			return ErrUnknownID
		}
		insertIdx = idx
	}

	solutions, err := p.sampleIK(ctx, point)
	if err != nil {
		return err
	}

	if err := p.graph.InsertRung(insertIdx); err != nil {
		return err
	}
	if err := p.graph.AssignRung(insertIdx, point.ID(), point.Timing(), solutions); err != nil {
		return err
	}

	hasPrev := prevID != uuid.Nil
	if hasPrev && insertIdx == 0 {
		return newInvariantError("AddTrajectory", "prevID given but insertion index is the first rung")
	}
	if hasPrev {
		prevIdx := insertIdx - 1
		if err := p.edgesBetween(ctx, prevIdx); err != nil {
			return err
		}
	}
	if !p.graph.IsLast(insertIdx) {
		if err := p.edgesBetween(ctx, insertIdx); err != nil {
			return err
		}
	}
	p.logger.Debugw("added trajectory point", "id", point.ID(), "index", insertIdx)
	return nil
}

// ModifyTrajectory re-samples IK for the rung carrying point.ID() and recomputes the edge tables
// on both of its boundaries.
func (p *Planner) ModifyTrajectory(ctx context.Context, point TrajectoryPoint) error {
	idx, found := p.graph.IndexOf(point.ID())
	if !found {
		return ErrUnknownID
	}

	solutions, err := p.sampleIK(ctx, point)
	if err != nil {
		return err
	}

	if err := p.graph.ClearVertices(idx); err != nil {
		return err
	}
	if err := p.graph.ClearEdges(idx); err != nil {
		return err
	}
	if err := p.graph.AssignRung(idx, point.ID(), point.Timing(), solutions); err != nil {
		return err
	}

	if !p.graph.IsFirst(idx) {
		if err := p.edgesBetween(ctx, idx-1); err != nil {
			return err
		}
	}
	if !p.graph.IsLast(idx) {
		if err := p.edgesBetween(ctx, idx); err != nil {
			return err
		}
	}
	p.logger.Debugw("modified trajectory point", "id", point.ID(), "index", idx)
	return nil
}

// RemoveTrajectory removes the rung carrying point.ID(). If it was neither the first nor last
// rung, the edge table between its former neighbors — now adjacent — is recomputed after the
// collapse.
func (p *Planner) RemoveTrajectory(point TrajectoryPoint) error {
	idx, found := p.graph.IndexOf(point.ID())
	if !found {
		return ErrUnknownID
	}

	wasFirst := p.graph.IsFirst(idx)
	wasLast := p.graph.IsLast(idx)
	if err := p.graph.RemoveRung(idx); err != nil {
		return err
	}

	if !wasFirst && !wasLast {
		// The removed rung's predecessor is now directly adjacent to its former successor,
		// which occupies idx after the collapse.
		if err := p.edgesBetween(context.Background(), idx-1); err != nil {
			return err
		}
	}
	p.logger.Debugw("removed trajectory point", "id", point.ID())
	return nil
}

// ShortestPath runs Search over the current graph and translates the resulting vertex-index path
// into joint vectors and timing.
func (p *Planner) ShortestPath() (float64, []PathStep, error) {
	cost, indices, err := Search(p.graph)
	if err != nil {
		return cost, nil, err
	}

	steps := make([]PathStep, len(indices))
	for r, k := range indices {
		joints, err := p.graph.Vertex(r, k)
		if err != nil {
			return 0, nil, err
		}
		rung, err := p.graph.GetRung(r)
		if err != nil {
			return 0, nil, err
		}
		owned := make([]float64, len(joints))
		copy(owned, joints)
		steps[r] = PathStep{Joints: owned, Timing: rung.Timing}
	}
	p.logger.Infow("computed shortest path", "cost", cost, "rungs", len(steps))
	return cost, steps, nil
}
