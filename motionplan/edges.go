package motionplan

import "context"

// EdgeBuilder computes the edge table between two adjacent rungs. It is the only component that
// touches both the move-validity oracle and the cost callback.
type EdgeBuilder struct {
	oracle KinematicsOracle
	cost   CostFunc
}

// NewEdgeBuilder constructs an EdgeBuilder against oracle. A nil cost selects the default L1
// joint-distance metric for every edge it computes.
func NewEdgeBuilder(oracle KinematicsOracle, cost CostFunc) *EdgeBuilder {
	return &EdgeBuilder{oracle: oracle, cost: cost}
}

// CalculateEdges produces an edge table of length n_from = len(from)/dof: one EdgeList per
// source vertex in from, scoring transitions to every vertex in to. When timing.Specified, an
// edge is omitted entirely unless oracle.IsValidMove reports it reachable within timing.Upper;
// otherwise every (i, j) pair is scored. Edges within a source's list are emitted in increasing
// destination order, for deterministic behavior.
func (b *EdgeBuilder) CalculateEdges(ctx context.Context, from, to []float64, dof int, timing Timing) ([]EdgeList, error) {
	if dof <= 0 {
		return nil, newInvariantError("CalculateEdges", "dof must be positive")
	}
	nFrom := len(from) / dof
	nTo := len(to) / dof

	costFn := b.cost
	if costFn == nil {
		costFn = l1Distance
	}

	edges := make([]EdgeList, nFrom)
	for i := 0; i < nFrom; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		fromVec := from[i*dof : (i+1)*dof]
		var list EdgeList
		for j := 0; j < nTo; j++ {
			toVec := to[j*dof : (j+1)*dof]
			if timing.Specified && !b.oracle.IsValidMove(fromVec, toVec, timing.Upper) {
				continue
			}
			list = append(list, Edge{Cost: costFn(fromVec, toVec), Dst: uint32(j)})
		}
		edges[i] = list
	}
	return edges, nil
}
