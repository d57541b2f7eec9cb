// Package desktop hosts the date picker dialog in an ebiten window.
package desktop

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/wheel/cmd/wheel/internal/config"
	"github.com/go-drift/wheel/cmd/wheel/internal/scene"
	"github.com/go-drift/wheel/pkg/animation"
	"github.com/go-drift/wheel/pkg/datepicker"
	"github.com/go-drift/wheel/pkg/rendering"
	"github.com/go-drift/wheel/pkg/wheel"
)

// Game implements ebiten.Game around a scene.
type Game struct {
	scene  *scene.Scene
	canvas *rendering.ImageCanvas
	logger *log.Logger

	dirty   bool
	pressed scene.Button

	touch     ebiten.TouchID
	touching  bool
	touchIDs  []ebiten.TouchID
	lastTouch rendering.Offset

	// Result is set when the dialog was confirmed.
	Result *datepicker.Date
}

// NewGame builds the dialog for cfg.
func NewGame(cfg *config.Config, today time.Time, logger *log.Logger) (*Game, error) {
	g := &Game{logger: logger, dirty: true}
	s, err := scene.New(cfg, today, func(_ time.Time, y, m, d int) {
		logger.Info("date confirmed", "year", y, "month", m, "day", d)
	})
	if err != nil {
		return nil, err
	}
	s.SetOnInvalidate(func() { g.dirty = true })
	size := s.Size()
	g.scene = s
	g.canvas = rendering.NewImageCanvas(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
	return g, nil
}

// Update handles input and advances the wheel animations.
func (g *Game) Update() error {
	animation.StepTickers()
	now := animation.Now()

	x, y := ebiten.CursorPosition()
	p := rendering.Offset{X: float64(x), Y: float64(y)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pressed = g.scene.ButtonAt(p)
		g.scene.Pointer(wheel.PointerPhaseDown, p, now)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.scene.Pointer(wheel.PointerPhaseMove, p, now)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.scene.Pointer(wheel.PointerPhaseUp, p, now)
		if b := g.scene.ButtonAt(p); b != scene.ButtonNone && b == g.pressed {
			return g.finish(b)
		}
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scene.Scroll(p, dy)
	}
	if err := g.updateTouch(now); err != nil {
		return err
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.scene.Step(g.scene.Focus(), -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.scene.Step(g.scene.Focus(), 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.scene.MoveFocus(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.scene.MoveFocus(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return g.finish(scene.ButtonConfirm)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return g.finish(scene.ButtonCancel)
	}
	return nil
}

// updateTouch follows the first finger down until it lifts.
func (g *Game) updateTouch(now time.Time) error {
	if !g.touching {
		g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
		if len(g.touchIDs) == 0 {
			return nil
		}
		g.touch = g.touchIDs[0]
		g.touching = true
		x, y := ebiten.TouchPosition(g.touch)
		g.lastTouch = rendering.Offset{X: float64(x), Y: float64(y)}
		g.pressed = g.scene.ButtonAt(g.lastTouch)
		g.scene.Pointer(wheel.PointerPhaseDown, g.lastTouch, now)
		return nil
	}
	if inpututil.IsTouchJustReleased(g.touch) {
		g.touching = false
		g.scene.Pointer(wheel.PointerPhaseUp, g.lastTouch, now)
		if b := g.scene.ButtonAt(g.lastTouch); b != scene.ButtonNone && b == g.pressed {
			return g.finish(b)
		}
		return nil
	}
	x, y := ebiten.TouchPosition(g.touch)
	g.lastTouch = rendering.Offset{X: float64(x), Y: float64(y)}
	g.scene.Pointer(wheel.PointerPhaseMove, g.lastTouch, now)
	return nil
}

func (g *Game) finish(b scene.Button) error {
	if b == scene.ButtonConfirm {
		d := g.scene.Picker.Confirm()
		g.Result = &d
	} else {
		g.logger.Info("dialog cancelled")
	}
	return ebiten.Termination
}

// Draw repaints the dialog when a wheel moved since the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.scene.Paint(g.canvas)
		g.dirty = false
	}
	screen.WritePixels(g.canvas.Image().Pix)
}

// Layout keeps the logical screen at the dialog size; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	b := g.canvas.Image().Bounds()
	return b.Dx(), b.Dy()
}

// Run opens a window and blocks until the dialog is confirmed or closed.
// It returns the confirmed date, or nil when cancelled.
func Run(cfg *config.Config, logger *log.Logger) (*datepicker.Date, error) {
	g, err := NewGame(cfg, time.Now(), logger)
	if err != nil {
		return nil, err
	}
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Picker.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return nil, err
	}
	return g.Result, nil
}
