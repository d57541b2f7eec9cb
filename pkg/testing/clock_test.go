package testing

import (
	"testing"
	"time"

	"github.com/go-drift/wheel/pkg/animation"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestUseFakeClock_DrivesAnimationClock(t *testing.T) {
	clk := UseFakeClock(t)
	if !animation.Now().Equal(clk.Now()) {
		t.Fatalf("animation.Now() = %v, want %v", animation.Now(), clk.Now())
	}
	clk.Advance(time.Second)
	if !animation.Now().Equal(clk.Now()) {
		t.Error("animation clock did not follow the fake clock")
	}
}

func TestPumpAndSettle_StopsTicker(t *testing.T) {
	clk := UseFakeClock(t)

	var frames int
	var ticker *animation.Ticker
	ticker = animation.NewTicker(func(elapsed time.Duration) {
		frames++
		if elapsed >= 100*time.Millisecond {
			ticker.Stop()
		}
	})
	ticker.Start()

	if err := PumpAndSettle(clk, time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if frames != 7 {
		t.Errorf("frames = %d, want 7", frames)
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	clk := UseFakeClock(t)

	ticker := animation.NewTicker(func(time.Duration) {})
	ticker.Start()
	defer ticker.Stop()

	if err := PumpAndSettle(clk, 100*time.Millisecond); err != ErrSettleTimeout {
		t.Errorf("err = %v, want ErrSettleTimeout", err)
	}
}
