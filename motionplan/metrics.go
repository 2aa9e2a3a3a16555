package motionplan

import "gonum.org/v1/gonum/floats"

// l1Distance returns the default edge-cost metric: the L1 (taxicab) distance between two joint
// configurations of equal length. It is the fallback used by EdgeBuilder whenever a Planner was
// not given a custom CostFunc.
//
// gonum.org/v1/gonum/floats.Norm computes this directly.
func l1Distance(from, to []float64) float64 {
	diff := make([]float64, len(from))
	for i := range from {
		diff[i] = from[i] - to[i]
	}
	return floats.Norm(diff, 1)
}

// L2CostFunc is the Euclidean-distance CostFunc, offered alongside the default L1 metric for
// callers who want it; any user-supplied cost callback is accepted.
func L2CostFunc(from, to []float64) float64 {
	diff := make([]float64, len(from))
	for i := range from {
		diff[i] = from[i] - to[i]
	}
	return floats.Norm(diff, 2)
}
