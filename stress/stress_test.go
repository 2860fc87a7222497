package stress

import (
	"math"
	"testing"
)

func TestAngleLimitsNearSurface(t *testing.T) {
	// z -> 0 drives the edge angle to ±π/2 and the span to π under the load.
	beta := AngleFromVerticalAxis(0, 1e-12, 5)
	if math.Abs(beta+math.Pi/2) > 1e-6 {
		t.Errorf("beta near surface = %v, want about -π/2", beta)
	}
	alpha := AngleSpan(0, 1e-12, 5)
	if math.Abs(alpha-math.Pi) > 1e-6 {
		t.Errorf("alpha near surface = %v, want about π", alpha)
	}
}

func TestAngleSpanPositive(t *testing.T) {
	for _, x := range []float64{-20, -5, -2.5, 0, 2.5, 5, 20} {
		for _, z := range []float64{0.1, 1, 5, 50} {
			if a := AngleSpan(x, z, 5); a <= 0 {
				t.Errorf("AngleSpan(%v, %v) = %v, want > 0", x, z, a)
			}
		}
	}
}

func TestVerticalStressFullLoadLimit(t *testing.T) {
	// alpha = π, beta = -π/2 is the surface point under an infinite load.
	got := VerticalStress(math.Pi, -math.Pi/2, 10)
	if math.Abs(got-10) > 1e-9 {
		t.Errorf("VerticalStress(π, -π/2, 10) = %v, want 10", got)
	}
}

func TestStressBoundedByLoad(t *testing.T) {
	const b, q = 5.0, 10.0
	for _, x := range []float64{-10, -2.5, -1, 0, 1, 2.5, 10} {
		for _, z := range []float64{0.01, 0.5, 1, 2, 10, 100} {
			s := StressAtPoint(b, x, z, q)
			if s < 0 || s >= q {
				t.Errorf("StressAtPoint(%v, %v, %v, %v) = %v, want in [0, q)", b, x, z, q, s)
			}
		}
	}
}

func TestStressSymmetricAboutCenterline(t *testing.T) {
	const b, q = 4.0, 25.0
	for _, x := range []float64{0.5, 1, 2, 3.7, 8} {
		for _, z := range []float64{0.2, 1, 4, 16} {
			left := StressAtPoint(b, -x, z, q)
			right := StressAtPoint(b, x, z, q)
			if math.Abs(left-right) > 1e-12*q {
				t.Errorf("asymmetry at x=%v z=%v: %v vs %v", x, z, left, right)
			}
		}
	}
}

func TestStressDecaysWithDepth(t *testing.T) {
	const b, q = 5.0, 10.0
	for _, x := range []float64{0, 1, 2} { // inside the footprint, |x| < b/2
		prev := math.Inf(1)
		for z := 0.5; z < 50; z += 0.5 {
			s := StressAtPoint(b, x, z, q)
			if s >= prev {
				t.Fatalf("stress not strictly decreasing at x=%v z=%v: %v >= %v", x, z, s, prev)
			}
			prev = s
		}
	}
}

func TestStressVanishesAtDepth(t *testing.T) {
	if s := StressAtPoint(5, 1, 1e6, 10); s > 1e-4 {
		t.Errorf("stress at great depth = %v, want about 0", s)
	}
}
