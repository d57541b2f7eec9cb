// Package wheel implements a drum-style picker: an integer scroll offset
// driven by drags, flings and a snap onto the nearest row, and a renderer
// that projects the visible rows onto a rotating cylinder.
//
// A Wheel is single-threaded. Hosts feed it pointer events, call
// animation.StepTickers once per frame and repaint while
// animation.HasActiveTickers reports true.
package wheel

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/wheel/pkg/animation"
	"github.com/go-drift/wheel/pkg/errors"
	"github.com/go-drift/wheel/pkg/rendering"
)

// PointerPhase is the stage of a pointer gesture.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a vertical pointer sample. A zero Time means now.
type PointerEvent struct {
	Phase PointerPhase
	Y     float64
	Time  time.Time
}

// Wheel is a single picker column.
type Wheel struct {
	style    Style
	entries  []string
	scroller *Scroller
	painter  Painter

	size    rendering.Size
	regions Regions

	onInvalidate func()
}

// New creates a wheel with the perspective painter. Non-positive sizes in
// style are replaced by the defaults.
func New(style Style) *Wheel {
	style = style.withDefaults()
	w := &Wheel{
		style:   style,
		painter: PerspectivePainter{},
	}
	w.scroller = NewScroller(style.ItemHeight, 0, style.Cyclic)
	w.scroller.SetOnUpdate(w.invalidate)
	w.SetEntries(style.Entries...)
	w.style.Entries = nil
	w.Layout(w.PreferredSize())
	return w
}

// Scroller returns the wheel's scroll state.
func (w *Wheel) Scroller() *Scroller { return w.scroller }

// Style returns the current style. Entries are not included.
func (w *Wheel) Style() Style { return w.style }

// SetPainter replaces the row painter. A nil painter restores the
// perspective painter.
func (w *Wheel) SetPainter(p Painter) {
	if p == nil {
		p = PerspectivePainter{}
	}
	w.painter = p
	w.invalidate()
}

// SetOnInvalidate installs a callback run whenever the wheel needs repainting.
func (w *Wheel) SetOnInvalidate(fn func()) { w.onInvalidate = fn }

// SetEntries replaces the entries and resets to index 0. The change listener
// sees a transition from NoIndex.
func (w *Wheel) SetEntries(entries ...string) {
	w.entries = append(w.entries[:0:0], entries...)
	w.scroller.SetItemSize(len(w.entries))
	w.scroller.Reset()
}

// Entries returns a copy of the entries.
func (w *Wheel) Entries() []string {
	return append([]string(nil), w.entries...)
}

// ItemSize returns the number of entries.
func (w *Wheel) ItemSize() int { return len(w.entries) }

// Item returns entries[i], or false outside [0, ItemSize()).
func (w *Wheel) Item(i int) (string, bool) {
	return EntryAt(w.entries, i, false)
}

// CurrentIndex returns the selected index, or NoIndex when empty.
func (w *Wheel) CurrentIndex() int { return w.scroller.CurrentIndex() }

// TargetIndex returns the index the wheel is settling on. See
// Scroller.TargetIndex.
func (w *Wheel) TargetIndex() int { return w.scroller.TargetIndex() }

// CurrentItem returns the selected entry.
func (w *Wheel) CurrentItem() (string, bool) { return w.Item(w.CurrentIndex()) }

// SetCurrentIndex selects index. See Scroller.SetCurrentIndex.
func (w *Wheel) SetCurrentIndex(index int, animated bool) {
	w.scroller.SetCurrentIndex(index, animated)
}

// SetOnChange installs the index change listener.
func (w *Wheel) SetOnChange(fn ChangeListener) { w.scroller.SetOnChange(fn) }

// Cyclic reports whether the wheel wraps.
func (w *Wheel) Cyclic() bool { return w.style.Cyclic }

// SetCyclic switches wrapping and resets to index 0.
func (w *Wheel) SetCyclic(cyclic bool) {
	w.style.Cyclic = cyclic
	w.scroller.SetCyclic(cyclic)
}

// SetTextSize sets the font size of both text styles.
func (w *Wheel) SetTextSize(size float64) {
	if size <= 0 {
		errors.Report(errors.Errorf("wheel.SetTextSize", errors.KindConfig, "text size must be positive, got %v", size))
		return
	}
	w.style.TextSize = size
	w.invalidate()
}

// SetItemHeight changes the row height, keeping the selected entry. The
// laid-out size is kept; call Layout with PreferredSize to resize.
func (w *Wheel) SetItemHeight(h int) {
	if h <= 0 {
		errors.Report(errors.Errorf("wheel.SetItemHeight", errors.KindConfig, "item height must be positive, got %d", h))
		return
	}
	w.style.ItemHeight = h
	w.scroller.SetItemHeight(h)
	w.Layout(w.size)
}

// SetTextColor sets the color of rows outside the middle band.
func (w *Wheel) SetTextColor(c rendering.Color) {
	w.style.TextColor = c
	w.invalidate()
}

// SetSelectedTextColor sets the color of text inside the middle band.
func (w *Wheel) SetSelectedTextColor(c rendering.Color) {
	w.style.SelectedTextColor = c
	w.invalidate()
}

// SetDividerColor sets the color of the lines around the middle band.
func (w *Wheel) SetDividerColor(c rendering.Color) {
	w.style.DividerColor = c
	w.invalidate()
}

// SetHighlightColor sets the fill drawn over the middle mask.
func (w *Wheel) SetHighlightColor(c rendering.Color) {
	w.style.HighlightColor = c
	w.invalidate()
}

// SetMiddleMaskColor sets the background of the middle band.
func (w *Wheel) SetMiddleMaskColor(c rendering.Color) {
	w.style.MiddleMaskColor = c
	w.invalidate()
}

// HandlePointer feeds a pointer event. Down stops motion, move drags, up
// flings or justifies and cancel justifies. It reports whether the offset
// changed; a false move means the wheel is pinned at a bound.
func (w *Wheel) HandlePointer(ev PointerEvent) bool {
	t := ev.Time
	if t.IsZero() {
		t = animation.Now()
	}
	s := w.scroller
	switch ev.Phase {
	case PointerPhaseDown:
		s.PointerDown(t, ev.Y)
		return false
	case PointerPhaseMove:
		return s.PointerMove(t, ev.Y)
	case PointerPhaseUp:
		before := s.Offset()
		s.PointerUp(t, ev.Y)
		return s.Offset() != before
	case PointerPhaseCancel:
		s.PointerCancel()
		return false
	default:
		errors.Report(errors.Errorf("wheel.HandlePointer", errors.KindInput, "unknown pointer phase %v", ev.Phase))
		return false
	}
}

// PreferredSize returns the natural size including padding.
func (w *Wheel) PreferredSize() rendering.Size {
	pad := w.style.Padding
	return rendering.Size{
		Width:  float64(w.style.ItemWidth) + pad.Horizontal(),
		Height: w.painter.ContentHeight(w.style.ItemHeight, w.style.ItemCount) + pad.Vertical(),
	}
}

// Layout sets the wheel's size and recomputes its clip regions.
func (w *Wheel) Layout(size rendering.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		errors.Report(errors.Errorf("wheel.Layout", errors.KindLayout, "non-positive size %vx%v", size.Width, size.Height))
		return
	}
	w.size = size
	w.regions = ComputeRegions(size, w.style.Padding, w.style.ItemHeight)
	w.invalidate()
}

// Size returns the laid-out size.
func (w *Wheel) Size() rendering.Size { return w.size }

// Regions returns the clip regions of the current layout.
func (w *Wheel) Regions() Regions { return w.regions }

// Paint draws the current frame with the wheel's top-left at the canvas
// origin: middle mask, highlight, rows, then the two dividers.
func (w *Wheel) Paint(canvas rendering.Canvas) {
	mid := w.regions.Middle
	canvas.DrawRect(mid, rendering.Paint{Color: w.style.MiddleMaskColor})
	canvas.DrawRect(mid, rendering.Paint{Color: w.style.HighlightColor})
	w.paintItems(canvas)
	divider := rendering.Paint{Color: w.style.DividerColor, Style: rendering.PaintStyleStroke, StrokeWidth: w.style.DividerWidth}
	if w.style.DividerWidth > 0 {
		canvas.DrawLine(rendering.Offset{X: mid.Left, Y: mid.Top}, rendering.Offset{X: mid.Right, Y: mid.Top}, divider)
		canvas.DrawLine(rendering.Offset{X: mid.Left, Y: mid.Bottom}, rendering.Offset{X: mid.Right, Y: mid.Bottom}, divider)
	}
}

func (w *Wheel) paintItems(canvas rendering.Canvas) {
	if len(w.entries) == 0 {
		return
	}
	h := w.style.ItemHeight
	index := w.scroller.ItemIndex()
	offset := w.scroller.ItemOffset()
	lo, hi := visibleRange(index, offset, w.style.ItemCount)
	content := w.style.Padding.Deflate(rendering.Rect{Right: w.size.Width, Bottom: w.size.Height})
	item := Item{
		ItemHeight:    h,
		Radius:        math.Floor(content.Height() / 2),
		Regions:       w.regions,
		Style:         w.style.textStyle(),
		SelectedStyle: w.style.selectedTextStyle(),
	}
	for i := lo; i < hi; i++ {
		text, ok := EntryAt(w.entries, i, w.style.Cyclic)
		if !ok {
			continue
		}
		item.Text = text
		item.Range = (i-index)*h - offset
		w.painter.DrawItem(canvas, item)
	}
}

func (w *Wheel) invalidate() {
	if w.onInvalidate != nil {
		w.onInvalidate()
	}
}
