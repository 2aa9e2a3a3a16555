package motionplan

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.viam.com/test"
)

// TestSearchTwoRungTrivial covers spec scenario 1.
func TestSearchTwoRungTrivial(t *testing.T) {
	g := NewLadderGraph(1)
	g.Allocate(2)
	test.That(t, g.AssignRung(0, uuid.New(), UnspecifiedTiming, [][]float64{{0.0}, {1.0}}), test.ShouldBeNil)
	test.That(t, g.AssignRung(1, uuid.New(), UnspecifiedTiming, [][]float64{{0.0}, {2.0}}), test.ShouldBeNil)

	builder := NewEdgeBuilder(nil, nil)
	edges, err := builder.CalculateEdges(context.Background(), g.rungs[0].Vertices, g.rungs[1].Vertices, 1, UnspecifiedTiming)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.AssignEdges(0, edges), test.ShouldBeNil)

	cost, path, err := Search(g)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cost, test.ShouldAlmostEqual, 0.0)
	test.That(t, path, test.ShouldResemble, []int{0, 0})
}

// TestSearchTieBreakByLowerIndex covers spec scenario 2: two equal-cost paths tie at 0.5, and
// the deterministic tie-break must select the lower source index, yielding path [0, 0].
func TestSearchTieBreakByLowerIndex(t *testing.T) {
	g := NewLadderGraph(1)
	g.Allocate(2)
	test.That(t, g.AssignRung(0, uuid.New(), UnspecifiedTiming, [][]float64{{0.0}, {1.0}}), test.ShouldBeNil)
	test.That(t, g.AssignRung(1, uuid.New(), UnspecifiedTiming, [][]float64{{0.5}, {1.5}}), test.ShouldBeNil)

	builder := NewEdgeBuilder(nil, nil)
	edges, err := builder.CalculateEdges(context.Background(), g.rungs[0].Vertices, g.rungs[1].Vertices, 1, UnspecifiedTiming)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, g.AssignEdges(0, edges), test.ShouldBeNil)

	cost, path, err := Search(g)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cost, test.ShouldAlmostEqual, 0.5)
	test.That(t, path, test.ShouldResemble, []int{0, 0})
}

// TestSearchNoPath covers spec scenario 6: the outcome of every move being rejected by the
// move-validity oracle is modeled by assigning an empty edge list, so no edges exist and Search
// must report ErrNoPath.
func TestSearchNoPath(t *testing.T) {
	g := NewLadderGraph(1)
	g.Allocate(2)
	test.That(t, g.AssignRung(0, uuid.New(), UnspecifiedTiming, [][]float64{{0.0}}), test.ShouldBeNil)
	test.That(t, g.AssignRung(1, uuid.New(), UnspecifiedTiming, [][]float64{{1.0}}), test.ShouldBeNil)
	test.That(t, g.AssignEdges(0, []EdgeList{{}}), test.ShouldBeNil)

	cost, path, err := Search(g)
	test.That(t, err, test.ShouldEqual, ErrNoPath)
	test.That(t, path, test.ShouldBeNil)
	_ = cost
}

func TestSearchEmptyGraph(t *testing.T) {
	g := NewLadderGraph(1)
	cost, path, err := Search(g)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cost, test.ShouldEqual, 0.0)
	test.That(t, path, test.ShouldBeNil)
}
