package motionplan

import (
	"testing"

	"github.com/google/uuid"
	"go.viam.com/test"
)

func TestLadderGraphBasicConstruction(t *testing.T) {
	g := NewLadderGraph(1)
	g.Allocate(2)
	test.That(t, g.Size(), test.ShouldEqual, 2)
	test.That(t, g.DoF(), test.ShouldEqual, 1)

	idA := uuid.New()
	idB := uuid.New()
	err := g.AssignRung(0, idA, UnspecifiedTiming, [][]float64{{0.0}, {1.0}})
	test.That(t, err, test.ShouldBeNil)
	err = g.AssignRung(1, idB, UnspecifiedTiming, [][]float64{{0.0}, {2.0}})
	test.That(t, err, test.ShouldBeNil)

	rung, err := g.GetRung(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rung.NumVertices(g.DoF()), test.ShouldEqual, 2)

	v, err := g.Vertex(0, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v[0], test.ShouldEqual, 1.0)

	test.That(t, g.IsFirst(0), test.ShouldBeTrue)
	test.That(t, g.IsLast(0), test.ShouldBeFalse)
	test.That(t, g.IsLast(1), test.ShouldBeTrue)

	idx, found := g.IndexOf(idB)
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, 1)

	_, found = g.IndexOf(uuid.New())
	test.That(t, found, test.ShouldBeFalse)

	_, found = g.IndexOf(uuid.Nil)
	test.That(t, found, test.ShouldBeFalse)
}

func TestLadderGraphAssignRungRejectsWrongDOF(t *testing.T) {
	g := NewLadderGraph(2)
	g.Allocate(1)
	err := g.AssignRung(0, uuid.New(), UnspecifiedTiming, [][]float64{{0.0}})
	test.That(t, err, test.ShouldNotBeNil)
	_, ok := err.(*InvariantError)
	test.That(t, ok, test.ShouldBeTrue)
}

func TestLadderGraphAssignEdgesValidatesDstRange(t *testing.T) {
	g := NewLadderGraph(1)
	g.Allocate(2)
	test.That(t, g.AssignRung(0, uuid.New(), UnspecifiedTiming, [][]float64{{0.0}}), test.ShouldBeNil)
	test.That(t, g.AssignRung(1, uuid.New(), UnspecifiedTiming, [][]float64{{0.0}}), test.ShouldBeNil)

	err := g.AssignEdges(0, []EdgeList{{{Cost: 1.0, Dst: 5}}})
	test.That(t, err, test.ShouldNotBeNil)

	err = g.AssignEdges(0, []EdgeList{{{Cost: 1.0, Dst: 0}}})
	test.That(t, err, test.ShouldBeNil)
}

func TestLadderGraphAssignEdgesRejectsEdgesOnLastRung(t *testing.T) {
	g := NewLadderGraph(1)
	g.Allocate(1)
	test.That(t, g.AssignRung(0, uuid.New(), UnspecifiedTiming, [][]float64{{0.0}}), test.ShouldBeNil)

	err := g.AssignEdges(0, []EdgeList{{{Cost: 1.0, Dst: 0}}})
	test.That(t, err, test.ShouldNotBeNil)

	err = g.AssignEdges(0, []EdgeList{{}})
	test.That(t, err, test.ShouldBeNil)
}

// TestLadderGraphRemoveInteriorCollapses covers spec scenario 5 at the graph level: removing an
// interior rung shifts later rungs left by one, so the remaining ids resolve to their collapsed
// indices and the removed id is gone. Edge recomputation is the caller's job and is checked in
// TestPlannerRemoveTrajectoryCollapsesInterior.
func TestLadderGraphRemoveInteriorCollapses(t *testing.T) {
	g := NewLadderGraph(1)
	g.Allocate(4)
	ids := make([]uuid.UUID, 4)
	for i := range ids {
		ids[i] = uuid.New()
		test.That(t, g.AssignRung(i, ids[i], UnspecifiedTiming, [][]float64{{float64(i)}}), test.ShouldBeNil)
	}
	for i := 0; i < 3; i++ {
		test.That(t, g.AssignEdges(i, []EdgeList{{{Cost: 1.0, Dst: 0}}}), test.ShouldBeNil)
	}

	err := g.RemoveRung(2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.Size(), test.ShouldEqual, 3)

	idx, found := g.IndexOf(ids[0])
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, 0)
	idx, found = g.IndexOf(ids[1])
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, 1)
	idx, found = g.IndexOf(ids[3])
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, 2)
	_, found = g.IndexOf(ids[2])
	test.That(t, found, test.ShouldBeFalse)
}

func TestLadderGraphInsertRungShiftsIndices(t *testing.T) {
	g := NewLadderGraph(1)
	g.Allocate(2)
	idA := uuid.New()
	idB := uuid.New()
	test.That(t, g.AssignRung(0, idA, UnspecifiedTiming, [][]float64{{0.0}}), test.ShouldBeNil)
	test.That(t, g.AssignRung(1, idB, UnspecifiedTiming, [][]float64{{1.0}}), test.ShouldBeNil)

	err := g.InsertRung(1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.Size(), test.ShouldEqual, 3)

	idx, found := g.IndexOf(idB)
	test.That(t, found, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, 2)
}
