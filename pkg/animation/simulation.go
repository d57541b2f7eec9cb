package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Simulation produces a scroll position for each frame until it settles.
//
// Step is called with the current clock reading. It returns the position for
// that instant and whether the motion has finished. Once done, the returned
// position is final and further calls return it unchanged.
type Simulation interface {
	Step(now time.Time) (position float64, done bool)
}

// TimedScroll slides from From to From+Delta over Duration along Curve.
// The final position is exact, so integer endpoints stay integers.
type TimedScroll struct {
	From     float64
	Delta    float64
	Duration time.Duration
	Curve    func(float64) float64

	start time.Time
}

// NewTimedScroll starts a timed scroll at the current clock reading.
// A nil curve defaults to [ViscousFluid].
func NewTimedScroll(from, delta float64, duration time.Duration, curve func(float64) float64) *TimedScroll {
	if curve == nil {
		curve = ViscousFluid
	}
	return &TimedScroll{
		From:     from,
		Delta:    delta,
		Duration: duration,
		Curve:    curve,
		start:    Now(),
	}
}

// Step implements Simulation.
func (s *TimedScroll) Step(now time.Time) (float64, bool) {
	if s.Duration <= 0 {
		return s.From + s.Delta, true
	}
	elapsed := now.Sub(s.start)
	if elapsed >= s.Duration {
		return s.From + s.Delta, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	progress := float64(elapsed) / float64(s.Duration)
	return s.From + s.Delta*s.Curve(progress), false
}

// Fling deceleration model: a constant base friction plus a term proportional
// to speed, integrated with a capped frame delta.
const (
	flingBaseDecel  = 2200.0
	flingSpeedDecel = 0.385
	flingStopSpeed  = 5.0
	flingMaxFrameDt = 0.032
)

// FlingSimulation decays an initial velocity (pixels per second) until the
// speed falls below 5 px/s. It has no bounds; callers clamp the position.
type FlingSimulation struct {
	position float64
	velocity float64
	lastTime time.Time
	done     bool
}

// NewFlingSimulation starts a fling at position with the given velocity.
func NewFlingSimulation(position, velocity float64) *FlingSimulation {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		velocity = 0
	}
	return &FlingSimulation{
		position: position,
		velocity: velocity,
		lastTime: Now(),
		done:     math.Abs(velocity) < flingStopSpeed,
	}
}

// Velocity returns the current velocity in pixels per second.
func (f *FlingSimulation) Velocity() float64 {
	return f.velocity
}

// Step implements Simulation.
func (f *FlingSimulation) Step(now time.Time) (float64, bool) {
	if f.done {
		return f.position, true
	}
	if now.Before(f.lastTime) {
		f.lastTime = now
		return f.position, false
	}
	dt := now.Sub(f.lastTime).Seconds()
	f.lastTime = now
	if dt <= 0 {
		return f.position, false
	}
	// Cap dt so a stalled frame does not fast-forward the whole fling.
	if dt > flingMaxFrameDt {
		dt = flingMaxFrameDt
	}

	v := f.velocity
	decel := flingBaseDecel + flingSpeedDecel*math.Abs(v)
	if v > 0 {
		v -= decel * dt
		if v < 0 {
			v = 0
		}
	} else if v < 0 {
		v += decel * dt
		if v > 0 {
			v = 0
		}
	}
	f.position += v * dt
	f.velocity = v
	if math.Abs(v) < flingStopSpeed {
		f.done = true
	}
	return f.position, f.done
}

// SpringSimulation settles onto Target with a damped harmonic spring. When the
// spring comes to rest within half a pixel it snaps exactly onto Target.
type SpringSimulation struct {
	Target float64

	spring   harmonica.Spring
	frameDt  time.Duration
	position float64
	velocity float64
	lastTime time.Time
	carry    time.Duration
	done     bool
}

// SpringConfig describes a harmonica spring.
type SpringConfig struct {
	// FPS is the integration rate of the spring.
	FPS int
	// AngularFrequency controls the speed of the spring.
	AngularFrequency float64
	// DampingRatio below 1 overshoots, 1 is critically damped.
	DampingRatio float64
}

// CriticalSpring is a fast, non-overshooting spring suited to snapping a
// wheel onto an item boundary.
func CriticalSpring() SpringConfig {
	return SpringConfig{FPS: 60, AngularFrequency: 12.0, DampingRatio: 1.0}
}

// NewSpringSimulation starts a spring at position moving toward target.
func NewSpringSimulation(cfg SpringConfig, position, velocity, target float64) *SpringSimulation {
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	return &SpringSimulation{
		Target:   target,
		spring:   harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.AngularFrequency, cfg.DampingRatio),
		frameDt:  time.Second / time.Duration(cfg.FPS),
		position: position,
		velocity: velocity,
		lastTime: Now(),
	}
}

// Step implements Simulation. The spring integrates in fixed steps, so the
// elapsed wall time is consumed in whole spring frames.
func (s *SpringSimulation) Step(now time.Time) (float64, bool) {
	if s.done {
		return s.Target, true
	}
	if now.Before(s.lastTime) {
		s.lastTime = now
		return s.position, false
	}
	s.carry += now.Sub(s.lastTime)
	s.lastTime = now
	for s.carry >= s.frameDt {
		s.carry -= s.frameDt
		s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.Target)
		if math.Abs(s.position-s.Target) < 0.5 && math.Abs(s.velocity) < 1 {
			s.position = s.Target
			s.velocity = 0
			s.done = true
			return s.Target, true
		}
	}
	return s.position, false
}
