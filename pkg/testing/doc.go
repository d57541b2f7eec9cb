// Package testing provides deterministic test helpers for wheels and the
// date picker.
//
// # Quick Start
//
// Install a fake clock, drive a wheel, and pump frames until it settles:
//
//	func TestFling(t *testing.T) {
//	    clk := wheeltest.UseFakeClock(t)
//	    w := wheel.New(wheel.DefaultStyle())
//	    w.SetEntries("a", "b", "c")
//	    w.Scroller().Fling(-1200)
//	    if err := wheeltest.PumpAndSettle(clk, 2*time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Recording Canvas
//
// [Recorder] implements rendering.Canvas and keeps every operation, plus the
// transform and clip in effect for each text draw:
//
//	rec := wheeltest.NewRecorder(rendering.Size{Width: 200, Height: 300})
//	w.Paint(rec)
//	for _, text := range rec.Texts() {
//	    fmt.Println(text.Text, text.Clip)
//	}
//
// # Snapshot Testing
//
// Serialize the recorded operations and compare them with a golden file:
//
//	rec.Snapshot().MatchesFile(t, "testdata/wheel.snapshot.json")
//
// Update snapshots with:
//
//	WHEEL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import wheeltest "github.com/go-drift/wheel/pkg/testing"
package testing
