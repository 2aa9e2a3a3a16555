package motionplan

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.viam.com/test"
)

type testPoint struct {
	id      uuid.UUID
	timing  Timing
	sols    [][]float64
	failIK  bool
}

func newTestPoint(sols [][]float64) *testPoint {
	return &testPoint{id: uuid.New(), sols: sols}
}

func (p *testPoint) ID() uuid.UUID  { return p.id }
func (p *testPoint) Timing() Timing { return p.timing }

type testOracle struct {
	dof   int
	byID  map[uuid.UUID][][]float64
}

func newTestOracle(dof int) *testOracle {
	return &testOracle{dof: dof, byID: make(map[uuid.UUID][][]float64)}
}

func (o *testOracle) register(p *testPoint) {
	o.byID[p.id] = p.sols
}

func (o *testOracle) DOF() int { return o.dof }

func (o *testOracle) JointPoses(ctx context.Context, point TrajectoryPoint) ([][]float64, error) {
	return o.byID[point.ID()], nil
}

func (o *testOracle) IsValidMove(from, to []float64, upperBound time.Duration) bool {
	return true
}

func TestPlannerInsertGraphRequiresTwoPoints(t *testing.T) {
	oracle := newTestOracle(1)
	p := NewPlanner(oracle, nil, nil)
	err := p.InsertGraph(context.Background(), []TrajectoryPoint{newTestPoint([][]float64{{0.0}})})
	test.That(t, err, test.ShouldEqual, ErrTooFewPoints)
}

// TestPlannerInsertGraphIKFailureAbortsInsert covers spec scenario 3.
func TestPlannerInsertGraphIKFailureAbortsInsert(t *testing.T) {
	oracle := newTestOracle(1)
	a := newTestPoint([][]float64{{0.0}})
	middle := newTestPoint(nil)
	c := newTestPoint([][]float64{{0.0}})
	oracle.register(a)
	oracle.register(middle)
	oracle.register(c)

	p := NewPlanner(oracle, nil, nil)
	err := p.InsertGraph(context.Background(), []TrajectoryPoint{a, middle, c})
	test.That(t, err, test.ShouldNotBeNil)
	ikErr, ok := err.(*IKFailedError)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, ikErr.ID, test.ShouldEqual, middle.id)
	test.That(t, p.graph.Size(), test.ShouldEqual, 0)
}

func buildThreeRungPlanner(t *testing.T) (*Planner, *testOracle, *testPoint, *testPoint, *testPoint) {
	oracle := newTestOracle(1)
	a := newTestPoint([][]float64{{0.0}})
	b := newTestPoint([][]float64{{1.0}})
	c := newTestPoint([][]float64{{2.0}})
	oracle.register(a)
	oracle.register(b)
	oracle.register(c)

	p := NewPlanner(oracle, nil, nil)
	err := p.InsertGraph(context.Background(), []TrajectoryPoint{a, b, c})
	test.That(t, err, test.ShouldBeNil)
	return p, oracle, a, b, c
}

// TestPlannerModifyTrajectoryRecomputesBothBoundaries covers spec scenario 4.
func TestPlannerModifyTrajectoryRecomputesBothBoundaries(t *testing.T) {
	p, oracle, _, b, _ := buildThreeRungPlanner(t)

	b.sols = [][]float64{{99.0}}
	oracle.register(b)
	err := p.ModifyTrajectory(context.Background(), b)
	test.That(t, err, test.ShouldBeNil)

	rung0, err := p.graph.GetRung(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rung0.Edges[0][0].Cost, test.ShouldAlmostEqual, 99.0)

	rung1, err := p.graph.GetRung(1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rung1.Edges[0][0].Cost, test.ShouldAlmostEqual, 97.0)

	v, err := p.graph.Vertex(1, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v[0], test.ShouldAlmostEqual, 99.0)
}

// TestPlannerRemoveTrajectoryCollapsesInterior covers spec scenario 5.
func TestPlannerRemoveTrajectoryCollapsesInterior(t *testing.T) {
	oracle := newTestOracle(1)
	a := newTestPoint([][]float64{{0.0}})
	b := newTestPoint([][]float64{{1.0}})
	c := newTestPoint([][]float64{{2.0}})
	d := newTestPoint([][]float64{{3.0}})
	oracle.register(a)
	oracle.register(b)
	oracle.register(c)
	oracle.register(d)

	p := NewPlanner(oracle, nil, nil)
	err := p.InsertGraph(context.Background(), []TrajectoryPoint{a, b, c, d})
	test.That(t, err, test.ShouldBeNil)

	err = p.RemoveTrajectory(c)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.graph.Size(), test.ShouldEqual, 3)

	idx, found := p.graph.IndexOf(d.id)
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, 2)

	rung1, err := p.graph.GetRung(1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rung1.Edges[0][0].Cost, test.ShouldAlmostEqual, 2.0)
}

func TestPlannerAddTrajectoryNilNextIDAppends(t *testing.T) {
	p, oracle, _, _, c := buildThreeRungPlanner(t)

	d := newTestPoint([][]float64{{3.0}})
	oracle.register(d)

	err := p.AddTrajectory(context.Background(), d, c.id, uuid.Nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.graph.Size(), test.ShouldEqual, 4)

	idx, found := p.graph.IndexOf(d.id)
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, 3)
	test.That(t, p.graph.IsLast(idx), test.ShouldBeTrue)
}

func TestPlannerModifyUnknownIDFails(t *testing.T) {
	p, _, _, _, _ := buildThreeRungPlanner(t)
	err := p.ModifyTrajectory(context.Background(), newTestPoint([][]float64{{0.0}}))
	test.That(t, err, test.ShouldEqual, ErrUnknownID)
}

func TestPlannerShortestPathNoPath(t *testing.T) {
	oracle := newTestOracle(1)
	a := newTestPoint([][]float64{{0.0}})
	b := newTestPoint([][]float64{{1.0}})
	oracle.register(a)
	oracle.register(b)

	p := NewPlanner(oracle, nil, nil)
	err := p.InsertGraph(context.Background(), []TrajectoryPoint{a, b})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.graph.AssignEdges(0, []EdgeList{{}}), test.ShouldBeNil)

	_, _, err = p.ShortestPath()
	test.That(t, err, test.ShouldEqual, ErrNoPath)
}
