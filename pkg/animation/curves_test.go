package animation

import (
	"math"
	"testing"
)

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":        LinearCurve,
		"viscous-fluid": ViscousFluid,
	}
	for name, curve := range curves {
		t.Run(name, func(t *testing.T) {
			if got := curve(0); got != 0 {
				t.Errorf("curve(0) = %v", got)
			}
			if got := curve(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("curve(1) = %v", got)
			}
			prev := 0.0
			for i := 1; i <= 100; i++ {
				v := curve(float64(i) / 100)
				if v < prev-1e-9 {
					t.Fatalf("curve decreases at %v: %v < %v", float64(i)/100, v, prev)
				}
				prev = v
			}
		})
	}
}

func TestViscousFluidFrontLoaded(t *testing.T) {
	if v := ViscousFluid(0.5); v <= 0.5 {
		t.Errorf("ViscousFluid(0.5) = %v, want more than half done", v)
	}
	if v := ViscousFluid(-1); v != 0 {
		t.Errorf("ViscousFluid(-1) = %v", v)
	}
}
