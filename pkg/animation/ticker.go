// Package animation provides the frame-driven motion primitives behind wheel
// pickers: a ticker registry stepped once per vsync, easing curves, and the
// scroll simulations (timed, fling, spring) a wheel plays between frames.
//
// # Frame loop
//
// Hosts own the frame callback. Each frame they call [StepTickers] and, when
// [HasActiveTickers] reports true, schedule another redraw:
//
//	func (g *game) Update() error {
//	    animation.StepTickers()
//	    return nil
//	}
//
// # Simulations
//
// A [Simulation] maps the clock to a scroll position. [TimedScroll] replays a
// fixed-duration slide along a curve (used for justify and animated index
// changes), [FlingSimulation] decays an initial velocity, and
// [SpringSimulation] settles onto a target with a damped spring.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker invokes a callback once per frame while started.
//
// The callback receives the time elapsed since Start. Tickers do nothing on
// their own; the host frame loop drives them through [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a stopped ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start registers the ticker with the frame loop. Starting an active ticker
// is a no-op and does not reset its start time.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop removes the ticker from the frame loop.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is registered with the frame loop.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since Start, or zero when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers invokes every active ticker once. Call it once per frame.
// Tickers started or stopped by a callback take effect on the next frame.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers reports whether any ticker still needs frames.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
