package trace

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/wheel/pkg/wheel"
)

func months() []string {
	return []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
}

func newWheel(cyclic bool, itemHeight int) *wheel.Wheel {
	style := wheel.DefaultStyle()
	style.ItemHeight = itemHeight
	style.Cyclic = cyclic
	style.Entries = months()
	return wheel.New(style)
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
name: sample
steps:
  - drag: -650
  - fling: 1200.5
  - index: 3
    animated: true
  - wait: 250ms
  - pointer: down
    y: 40
  - settle: true
`))
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, step := range s.Steps {
		got = append(got, step.String())
	}
	want := []string{"drag -650", "fling 1200.5", "index 3 (animated)", "wait 250ms", "down y=40", "settle"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
	if time.Duration(s.Steps[3].Wait) != 250*time.Millisecond {
		t.Errorf("wait = %v", s.Steps[3].Wait)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"empty", "name: x\n", "no steps"},
		{"two actions", "steps:\n  - drag: 1\n    fling: 2\n", "exactly one action"},
		{"no action", "steps:\n  - animated: true\n", "exactly one action"},
		{"bad phase", "steps:\n  - pointer: hover\n", "unknown pointer phase"},
		{"bad duration", "steps:\n  - wait: soon\n", "failed to parse"},
		{"unknown field", "steps:\n  - jump: 3\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func intp(v int) *int { return &v }

func TestRunDrag(t *testing.T) {
	w := newWheel(true, 60)
	res, err := Run(w, &Script{Steps: []Step{{Drag: intp(-650)}}})
	if err != nil {
		t.Fatal(err)
	}
	final := res.Final()
	if final.Offset != 650 || final.Index != 11 || final.Item != "Dec" {
		t.Errorf("final frame = %+v, want offset 650 index 11", final)
	}
	if want := []Change{{Step: 1, Old: 0, New: 11}}; !reflect.DeepEqual(res.Changes, want) {
		t.Errorf("changes = %v, want %v", res.Changes, want)
	}
}

func TestRunFlingSettles(t *testing.T) {
	w := newWheel(false, 40)
	script, err := Parse([]byte(`
steps:
  - fling: 900
  - settle: true
`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(w, script)
	if err != nil {
		t.Fatal(err)
	}
	final := res.Final()
	if final.Offset%40 != 0 || final.Phase != wheel.PhaseIdle.String() {
		t.Errorf("final = %+v, want idle on a row boundary", final)
	}
	if final.Offset == 0 {
		t.Error("fling did not move the wheel")
	}
	for _, c := range res.Changes {
		if c.Old == c.New {
			t.Errorf("redundant change %v", c)
		}
	}
	if res.Frames[0].Phase != wheel.PhaseFlinging.String() {
		t.Errorf("first frame phase = %q", res.Frames[0].Phase)
	}
}

func TestRunPointerGesture(t *testing.T) {
	w := newWheel(false, 40)
	script, err := Parse([]byte(`
entries: [a, b, c, d, e]
steps:
  - pointer: down
    y: 200
  - wait: 16ms
  - pointer: move
    y: 150
  - pointer: cancel
  - settle: true
`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(w, script)
	if err != nil {
		t.Fatal(err)
	}
	if final := res.Final(); final.Offset != 40 || final.Item != "b" {
		t.Errorf("final = %+v, want offset 40 on b", final)
	}
	if res.Changes[0].Old != wheel.NoIndex {
		t.Errorf("entries override should announce a reset first, got %v", res.Changes[0])
	}
}

func TestRunWaitAdvancesClock(t *testing.T) {
	w := newWheel(false, 40)
	t.Cleanup(w.Scroller().Reset)
	res, err := Run(w, &Script{Steps: []Step{{Index: intp(2), Animated: true}, {Wait: Duration(96 * time.Millisecond)}}})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Final().Elapsed; got != 96*time.Millisecond {
		t.Errorf("elapsed = %v, want 96ms", got)
	}
	if len(res.Frames) != 7 {
		t.Errorf("frames = %d, want 1 + 6 pumped", len(res.Frames))
	}
}

func TestPrint(t *testing.T) {
	color.NoColor = true
	res := &Result{
		Name: "demo",
		Frames: []Frame{
			{Step: 1, Action: "drag -40", Offset: 40, Index: 1, Item: "Feb", Phase: "idle"},
			{Step: 2, Action: "frame", Offset: 40, Index: 1, Item: "Feb", Phase: "idle"},
		},
		Changes: []Change{{Step: 1, Old: wheel.NoIndex, New: 1}},
	}

	var buf bytes.Buffer
	Print(&buf, res, false)
	out := buf.String()
	for _, want := range []string{"demo", "OFFSET", "drag -40", "Feb", "Changes", "step 1", "-  ->  1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "Feb") != 1 {
		t.Errorf("unchanged frame should be elided:\n%s", out)
	}

	buf.Reset()
	Print(&buf, res, true)
	if strings.Count(buf.String(), "Feb") != 2 {
		t.Errorf("verbose output should keep every frame:\n%s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	res := &Result{Frames: []Frame{{Step: 1, Action: "index 2", Offset: 80, Index: 2, Phase: "idle"}}}
	var buf bytes.Buffer
	if err := WriteYAML(&buf, res); err != nil {
		t.Fatal(err)
	}
	var back Result
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if back.Final().Offset != 80 {
		t.Errorf("decoded = %+v", back)
	}
}
