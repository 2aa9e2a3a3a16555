// Package fixtures provides fake KinematicsOracle/TrajectoryPoint implementations and a
// Cartesian pose-sequence generator for building realistic multi-point trajectories in
// motionplan tests and benchmarks. It is not part of the planner's public API.
package fixtures

import "math"

// Pose is a minimal Cartesian pose: a position plus the columns of a 3x3 orientation matrix.
// It carries no joint-space or robot-specific meaning — callers map it to joint solutions
// through their own KinematicsOracle.
type Pose struct {
	X, Y, Z      float64
	OrientationX [3]float64
	OrientationY [3]float64
	OrientationZ [3]float64
}

// LemniscateCurve generates a sequence of poses tracing nLemniscates lemniscate-of-Bernoulli
// lobes over the surface of a sphere, ported from the line-for-line algorithm in
// descartes_benchmarks/create_lemniscate_curve.cpp. fociDistance and sphereRadius must be
// positive, numPoints must be at least 10, and nLemniscates must be at least 1.
func LemniscateCurve(fociDistance, sphereRadius float64, numPoints, nLemniscates int, center [3]float64) ([]Pose, error) {
	const epsilon = 0.0001

	if fociDistance <= 0 || sphereRadius <= 0 || numPoints < 10 || nLemniscates < 1 {
		return nil, errInvalidLemniscateParams
	}

	a := fociDistance
	ro := sphereRadius

	theta := make([]float64, numPoints)
	dTheta := math.Pi / float64(numPoints-1)
	half := numPoints / 2
	for i := 0; i < half; i++ {
		theta[i] = -math.Pi/4 + float64(i)*dTheta
	}
	theta[0] += epsilon
	theta[half-1] -= epsilon
	for i := 0; i < half; i++ {
		theta[half+i] = 3*math.Pi/4 + float64(i)*dTheta
	}
	theta[half] += epsilon
	theta[numPoints-1] -= epsilon

	omega := make([]float64, nLemniscates)
	dOmega := math.Pi / float64(nLemniscates)
	for i := range omega {
		omega[i] = float64(i) * dOmega
	}

	poses := make([]Pose, 0, nLemniscates*numPoints)
	for j := 0; j < nLemniscates; j++ {
		for i := 0; i < numPoints; i++ {
			r := math.Sqrt(a * a * math.Cos(2*theta[i]))
			var phi float64
			if r < ro {
				phi = math.Asin(r / ro)
			} else {
				phi = math.Pi - math.Asin((2*ro-r)/ro)
			}

			x := ro * math.Cos(theta[i]+omega[j]) * math.Sin(phi)
			y := ro * math.Sin(theta[i]+omega[j]) * math.Sin(phi)
			z := ro * math.Cos(phi)

			unitZ := normalize([3]float64{-x, -y, -z})
			unitX := normalize(cross([3]float64{0, 1, 0}, unitZ))
			unitY := normalize(cross(unitZ, unitX))

			poses = append(poses, Pose{
				X: center[0] + x,
				Y: center[1] + y,
				Z: center[2] + z,
				OrientationX: unitX,
				OrientationY: unitY,
				OrientationZ: unitZ,
			})
		}
	}
	return poses, nil
}

func cross(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}
