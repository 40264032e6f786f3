package animation

import (
	"math"
	"testing"
)

func TestLinearCurve(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 1} {
		if got := LinearCurve(v); got != v {
			t.Errorf("LinearCurve(%v) = %v, want %v", v, got, v)
		}
	}
}

func TestCubicBezier_Endpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"Ease":      Ease,
		"EaseOut":   EaseOut,
		"EaseInOut": EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		if got := curve(-0.5); got != 0 {
			t.Errorf("%s(-0.5) = %v, want 0", name, got)
		}
		if got := curve(1.5); got != 1 {
			t.Errorf("%s(1.5) = %v, want 1", name, got)
		}
	}
}

func TestCubicBezier_Monotonic(t *testing.T) {
	curve := CubicBezier(0.4, 0.0, 0.2, 1.0)
	prev := curve(0)
	for i := 1; i <= 100; i++ {
		v := curve(float64(i) / 100)
		if v < prev-1e-9 {
			t.Fatalf("curve not monotonic at t=%v: %v < %v", float64(i)/100, v, prev)
		}
		prev = v
	}
}

func TestCubicBezier_LinearControlPoints(t *testing.T) {
	// Control points on the diagonal produce the identity curve.
	curve := CubicBezier(0.25, 0.25, 0.75, 0.75)
	for _, v := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		if got := curve(v); math.Abs(got-v) > 1e-4 {
			t.Errorf("identity bezier(%v) = %v, want ~%v", v, got, v)
		}
	}
}
