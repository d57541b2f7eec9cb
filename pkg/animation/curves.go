package animation

import "math"

// A curve maps linear progress t in [0, 1] to eased progress. Curves are
// plain functions so a [TimedScroll] can take any of them.

// LinearCurve returns t unchanged.
func LinearCurve(t float64) float64 {
	return t
}

const viscousFluidScale = 8.0

var (
	viscousFluidNormalize = 1.0 / viscousFluid(1.0)
	viscousFluidOffset    = 1.0 - viscousFluidNormalize*viscousFluid(1.0)
)

// ViscousFluid is the default curve of the Android Scroller: a short
// exponential acceleration followed by a long exponential settle. Wheels use it
// for justify and animated index changes.
func ViscousFluid(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	v := viscousFluidNormalize * viscousFluid(t)
	if v > 0 {
		return v + viscousFluidOffset
	}
	return v
}

func viscousFluid(x float64) float64 {
	x *= viscousFluidScale
	if x < 1.0 {
		return x - (1.0 - math.Exp(-x))
	}
	const start = 0.36787944117 // 1/e == viscousFluid(1)
	x = 1.0 - math.Exp(1.0-x)
	return start + x*(1.0-start)
}
