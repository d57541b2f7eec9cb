package trace

import (
	"fmt"
	"time"

	"github.com/go-drift/wheel/pkg/animation"
	wheeltest "github.com/go-drift/wheel/pkg/testing"
	"github.com/go-drift/wheel/pkg/wheel"
)

// MaxSettle bounds a settle step.
const MaxSettle = 10 * time.Second

// Frame is the wheel state after a step or a pumped frame.
type Frame struct {
	Step    int           `yaml:"step"`
	Action  string        `yaml:"action"`
	Elapsed time.Duration `yaml:"elapsed"`
	Offset  int           `yaml:"offset"`
	Index   int           `yaml:"index"`
	Item    string        `yaml:"item"`
	Phase   string        `yaml:"phase"`
}

// Change is one change notification.
type Change struct {
	Step int `yaml:"step"`
	Old  int `yaml:"old"`
	New  int `yaml:"new"`
}

// Result is the full replay log.
type Result struct {
	Name    string   `yaml:"name,omitempty"`
	Frames  []Frame  `yaml:"frames"`
	Changes []Change `yaml:"changes"`
}

// Final returns the last recorded frame.
func (r *Result) Final() Frame {
	if len(r.Frames) == 0 {
		return Frame{Index: wheel.NoIndex}
	}
	return r.Frames[len(r.Frames)-1]
}

// Run replays script against w. It installs a fake animation clock for the
// duration of the replay and replaces w's change listener.
func Run(w *wheel.Wheel, script *Script) (*Result, error) {
	clk := wheeltest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	start := clk.Now()
	res := &Result{Name: script.Name}
	step := 0
	w.SetOnChange(func(old, next int) {
		res.Changes = append(res.Changes, Change{Step: step, Old: old, New: next})
	})
	if len(script.Entries) > 0 {
		w.SetEntries(script.Entries...)
	}

	record := func(action string) {
		item, _ := w.CurrentItem()
		s := w.Scroller()
		res.Frames = append(res.Frames, Frame{
			Step:    step,
			Action:  action,
			Elapsed: clk.Now().Sub(start),
			Offset:  s.Offset(),
			Index:   w.CurrentIndex(),
			Item:    item,
			Phase:   s.Phase().String(),
		})
	}
	pump := func() {
		wheeltest.Pump(clk)
		record("frame")
	}

	for i, st := range script.Steps {
		step = i + 1
		switch {
		case st.Drag != nil:
			w.Scroller().Drag(*st.Drag)
		case st.Fling != nil:
			w.Scroller().Fling(*st.Fling)
		case st.Index != nil:
			w.SetCurrentIndex(*st.Index, st.Animated)
		case st.Pointer != "":
			w.HandlePointer(wheel.PointerEvent{Phase: pointerPhases[st.Pointer], Y: st.Y, Time: clk.Now()})
		case st.Wait > 0:
			for end := clk.Now().Add(time.Duration(st.Wait)); clk.Now().Before(end); {
				pump()
			}
			continue
		case st.Settle:
			deadline := clk.Now().Add(MaxSettle)
			for animation.HasActiveTickers() {
				if !clk.Now().Before(deadline) {
					return res, fmt.Errorf("step %d: wheel did not settle within %v", step, MaxSettle)
				}
				pump()
			}
			continue
		}
		record(st.String())
	}
	return res, nil
}
