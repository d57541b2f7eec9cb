package wheel

import "time"

const (
	velocityWindow     = 100 * time.Millisecond
	velocityMaxSamples = 20
)

type velocitySample struct {
	t time.Time
	y float64
}

// VelocityTracker estimates pointer velocity from recent positions with a
// least-squares line fit over the last 100ms of samples.
type VelocityTracker struct {
	samples []velocitySample
}

// AddPosition records the pointer position at t.
func (v *VelocityTracker) AddPosition(t time.Time, y float64) {
	if n := len(v.samples); n > 0 && t.Before(v.samples[n-1].t) {
		v.samples = v.samples[:0]
	}
	v.samples = append(v.samples, velocitySample{t: t, y: y})
	if len(v.samples) > velocityMaxSamples {
		v.samples = v.samples[len(v.samples)-velocityMaxSamples:]
	}
}

// Velocity returns the estimated velocity in pixels per second. Fewer than two
// samples in the window yield zero.
func (v *VelocityTracker) Velocity() float64 {
	n := len(v.samples)
	if n < 2 {
		return 0
	}
	last := v.samples[n-1].t
	var sumX, sumY, sumXY, sumXX float64
	count := 0
	for i := n - 1; i >= 0; i-- {
		s := v.samples[i]
		age := last.Sub(s.t)
		if age > velocityWindow {
			break
		}
		x := -age.Seconds()
		sumX += x
		sumY += s.y
		sumXY += x * s.y
		sumXX += x * x
		count++
	}
	if count < 2 {
		return 0
	}
	c := float64(count)
	denom := c*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (c*sumXY - sumX*sumY) / denom
}

// Reset drops all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}
