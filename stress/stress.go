package stress

import "math"

// Closed-form Boussinesq/Carothers solution for the vertical stress under a
// uniform strip load. The load spans from -b/2 to +b/2 on the surface;
// x is the horizontal offset from the load centerline, z the depth, both in
// meters. All angles are in radians.

// AngleFromVerticalAxis returns the angle, measured from the vertical axis,
// subtended at depth z by the line from the evaluation point to the right
// edge of the load. Undefined at z = 0 (the angle tends to ±π/2); callers
// must guard z > 0.
func AngleFromVerticalAxis(x, z, b float64) float64 {
	return math.Atan((x - b/2) / z)
}

// AngleSpan returns the total angle the load width subtends as seen from
// the evaluation point: the angle to the left edge minus the angle to the
// right edge.
func AngleSpan(x, z, b float64) float64 {
	return math.Atan((x+b/2)/z) - AngleFromVerticalAxis(x, z, b)
}

// VerticalStress evaluates the strip-load stress formula in angle form:
//
//	σz = (q/π) · (α + sin α · cos(α + 2β))
//
// The result has the same units as q.
func VerticalStress(alpha, beta, q float64) float64 {
	return q / math.Pi * (alpha + math.Sin(alpha)*math.Cos(alpha+2*beta))
}

// StressAtPoint composes the angle geometry and the stress formula for a
// single coordinate. Caller contract: z > 0.
func StressAtPoint(b, x, z, q float64) float64 {
	return stressAt(x, z, b/2, q/math.Pi)
}

// stressAt is the single formula body behind StressAtPoint and the grid
// build. halfB and qOverPi come in precomputed so the build can hoist them
// out of its inner loop.
func stressAt(x, z, halfB, qOverPi float64) float64 {
	beta := math.Atan((x - halfB) / z)
	alpha := math.Atan((x+halfB)/z) - beta
	return qOverPi * (alpha + math.Sin(alpha)*math.Cos(alpha+2*beta))
}
