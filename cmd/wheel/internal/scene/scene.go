// Package scene lays out a date picker dialog (title, wheel columns and
// buttons) independently of the window system that hosts it.
package scene

import (
	"image"
	"math"
	"time"

	"github.com/go-drift/wheel/cmd/wheel/internal/config"
	"github.com/go-drift/wheel/pkg/datepicker"
	"github.com/go-drift/wheel/pkg/rendering"
	"github.com/go-drift/wheel/pkg/wheel"
)

// Dialog metrics in pixels.
const (
	Margin        = 20.0
	TitleHeight   = 48.0
	ButtonHeight  = 48.0
	TitleFontSize = 20.0
)

// Button identifies a dialog button.
type Button int

const (
	ButtonNone Button = iota
	ButtonCancel
	ButtonConfirm
)

// Column is one wheel and where it sits in the dialog.
type Column struct {
	Name   string
	Wheel  *wheel.Wheel
	Origin rendering.Offset
}

// Bounds returns the column's rectangle in dialog coordinates.
func (c Column) Bounds() rendering.Rect {
	size := c.Wheel.Size()
	return rendering.RectFromLTWH(c.Origin.X, c.Origin.Y, size.Width, size.Height)
}

// Scene is a date picker dialog.
//
// The color fields are read when the dialog chrome is first painted;
// changing them afterwards has no effect.
type Scene struct {
	Picker *datepicker.Picker

	Background  rendering.Color
	TitleColor  rendering.Color
	ButtonColor rendering.Color
	AccentColor rendering.Color

	cfg     datepicker.Config
	columns []Column
	size    rendering.Size
	active  int
	focus   int
	chrome  *rendering.DisplayList
}

// New builds the wheels the configured format shows and binds a picker to
// them.
func New(cfg *config.Config, today time.Time, listener datepicker.Listener) (*Scene, error) {
	dp := cfg.DatePicker(today)
	s := &Scene{
		Background:  rendering.ColorWhite,
		TitleColor:  rendering.RGB(0x33, 0x33, 0x33),
		ButtonColor: rendering.RGB(0x66, 0x66, 0x66),
		AccentColor: rendering.RGB(0x21, 0x96, 0xF3),
		cfg:         dp,
		active:      -1,
	}
	if dp.PrimaryColor != nil {
		s.AccentColor = *dp.PrimaryColor
	}

	var year, month, day *wheel.Wheel
	add := func(name string) *wheel.Wheel {
		w := cfg.NewWheel()
		s.columns = append(s.columns, Column{Name: name, Wheel: w})
		return w
	}
	if dp.Format != datepicker.FormatMonthDay {
		year = add("year")
	}
	month = add("month")
	if dp.Format != datepicker.FormatYearMonth {
		day = add("day")
	}

	picker, err := datepicker.New(dp, year, month, day, listener)
	if err != nil {
		return nil, err
	}
	s.Picker = picker
	s.layout()
	return s, nil
}

func (s *Scene) layout() {
	top := Margin
	if s.cfg.ShowTitle {
		top += TitleHeight
	}
	x := Margin
	height := 0.0
	for i := range s.columns {
		c := &s.columns[i]
		c.Origin = rendering.Offset{X: x, Y: top}
		size := c.Wheel.Size()
		x += size.Width
		height = math.Max(height, size.Height)
	}
	s.size = rendering.Size{
		Width:  x + Margin,
		Height: top + height + ButtonHeight + Margin,
	}
}

// Size returns the dialog size.
func (s *Scene) Size() rendering.Size { return s.size }

// Columns returns the wheel columns from left to right.
func (s *Scene) Columns() []Column { return s.columns }

// Focus returns the index of the keyboard-focused column.
func (s *Scene) Focus() int { return s.focus }

// MoveFocus shifts keyboard focus by delta columns, wrapping at the ends.
func (s *Scene) MoveFocus(delta int) {
	n := len(s.columns)
	s.focus = ((s.focus+delta)%n + n) % n
}

// SetOnInvalidate installs fn on every wheel so hosts can repaint only
// when something moved.
func (s *Scene) SetOnInvalidate(fn func()) {
	for _, c := range s.columns {
		c.Wheel.SetOnInvalidate(fn)
	}
}

// Config returns the picker configuration in use.
func (s *Scene) Config() datepicker.Config { return s.cfg }

// ColumnAt returns the index of the column containing p, or -1.
func (s *Scene) ColumnAt(p rendering.Offset) int {
	for i, c := range s.columns {
		if c.Bounds().Contains(p) {
			return i
		}
	}
	return -1
}

// ButtonAt returns the button under p.
func (s *Scene) ButtonAt(p rendering.Offset) Button {
	cancel, confirm := s.buttonRects()
	switch {
	case cancel.Contains(p):
		return ButtonCancel
	case confirm.Contains(p):
		return ButtonConfirm
	default:
		return ButtonNone
	}
}

func (s *Scene) buttonRects() (cancel, confirm rendering.Rect) {
	top := s.size.Height - Margin - ButtonHeight
	half := (s.size.Width - 2*Margin) / 2
	cancel = rendering.RectFromLTWH(Margin, top, half, ButtonHeight)
	confirm = rendering.RectFromLTWH(Margin+half, top, half, ButtonHeight)
	return cancel, confirm
}

// Pointer routes a pointer event in dialog coordinates. A down event picks
// the column under the pointer; later events go to that column until the
// gesture ends. It reports whether a wheel consumed the event.
func (s *Scene) Pointer(phase wheel.PointerPhase, p rendering.Offset, t time.Time) bool {
	if phase == wheel.PointerPhaseDown {
		s.active = s.ColumnAt(p)
		if s.active >= 0 {
			s.focus = s.active
		}
	}
	if s.active < 0 {
		return false
	}
	c := s.columns[s.active]
	c.Wheel.HandlePointer(wheel.PointerEvent{Phase: phase, Y: p.Y - c.Origin.Y, Time: t})
	if phase == wheel.PointerPhaseUp || phase == wheel.PointerPhaseCancel {
		s.active = -1
	}
	return true
}

// Scroll turns a mouse wheel notch over a column into a one-row move.
// Positive notches reveal earlier entries.
func (s *Scene) Scroll(p rendering.Offset, notches float64) {
	i := s.ColumnAt(p)
	if i < 0 || notches == 0 {
		return
	}
	s.Step(i, -int(math.Copysign(1, notches)))
}

// Step moves column i by delta rows with the justify animation.
func (s *Scene) Step(i, delta int) {
	if i < 0 || i >= len(s.columns) {
		return
	}
	w := s.columns[i].Wheel
	w.SetCurrentIndex(w.CurrentIndex()+delta, true)
}

// Paint draws the dialog with its top-left at the canvas origin.
func (s *Scene) Paint(canvas rendering.Canvas) {
	if s.chrome == nil {
		var rec rendering.PictureRecorder
		s.paintChrome(rec.BeginRecording(s.size))
		s.chrome = rec.EndRecording()
	}
	s.chrome.Paint(canvas)
	for _, c := range s.columns {
		canvas.Save()
		canvas.Translate(c.Origin.X, c.Origin.Y)
		c.Wheel.Paint(canvas)
		canvas.Restore()
	}
}

// paintChrome draws everything but the wheels: background, title and the
// button row.
func (s *Scene) paintChrome(canvas rendering.Canvas) {
	canvas.Clear(s.Background)
	center := s.size.Width / 2
	if s.cfg.ShowTitle {
		baseline := rendering.MetricsFor(TitleFontSize).BaselineOffset()
		canvas.DrawText(s.cfg.Title, rendering.Offset{X: center, Y: Margin + TitleHeight/2 + baseline},
			rendering.TextStyle{Color: s.TitleColor, FontSize: TitleFontSize, Align: rendering.TextAlignCenter})
	}
	cancel, confirm := s.buttonRects()
	canvas.DrawLine(rendering.Offset{X: Margin, Y: cancel.Top}, rendering.Offset{X: s.size.Width - Margin, Y: cancel.Top},
		rendering.Paint{Color: rendering.RGB(0xEE, 0xEE, 0xEE), Style: rendering.PaintStyleStroke, StrokeWidth: 1})
	s.paintButton(canvas, cancel, s.cfg.CancelText, s.ButtonColor)
	s.paintButton(canvas, confirm, s.cfg.ConfirmText, s.AccentColor)
}

func (s *Scene) paintButton(canvas rendering.Canvas, r rendering.Rect, text string, col rendering.Color) {
	const size = 16.0
	c := r.Center()
	baseline := rendering.MetricsFor(size).BaselineOffset()
	canvas.DrawText(text, rendering.Offset{X: c.X, Y: c.Y + baseline},
		rendering.TextStyle{Color: col, FontSize: size, Align: rendering.TextAlignCenter})
}

// Render paints the dialog into a new image.
func (s *Scene) Render() *image.RGBA {
	canvas := rendering.NewImageCanvas(int(math.Ceil(s.size.Width)), int(math.Ceil(s.size.Height)))
	s.Paint(canvas)
	return canvas.Image()
}
