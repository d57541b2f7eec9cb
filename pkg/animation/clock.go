package animation

import "time"

// Clock is the time source for tickers and scroll simulations. Hosts use the
// wall clock; tests swap in a fake via SetClock so every frame is reproducible.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

var clock Clock = wallClock{}

// SetClock installs c as the animation time source and returns the previous
// clock so tests can restore it.
func SetClock(c Clock) Clock {
	prev := clock
	if c == nil {
		c = wallClock{}
	}
	clock = c
	return prev
}

// Now reads the installed clock.
func Now() time.Time { return clock.Now() }
