package testing

import (
	"errors"
	"time"

	"github.com/go-drift/wheel/pkg/animation"
)

// FrameDuration is the frame interval used by Pump and PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Pump advances clk by one frame and steps every active ticker.
func Pump(clk *FakeClock) {
	clk.Advance(FrameDuration)
	animation.StepTickers()
}

// PumpFrames runs n frames.
func PumpFrames(clk *FakeClock, n int) {
	for range n {
		Pump(clk)
	}
}

// PumpAndSettle runs frames until no ticker is active or the timeout is
// reached. Each frame advances the fake clock by FrameDuration.
func PumpAndSettle(clk *FakeClock, timeout time.Duration) error {
	var elapsed time.Duration
	for animation.HasActiveTickers() {
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		Pump(clk)
		elapsed += FrameDuration
	}
	return nil
}
