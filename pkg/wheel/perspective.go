package wheel

import (
	"math"

	"github.com/go-drift/wheel/pkg/rendering"
)

// RefractionRatio is the horizontal shift of middle-band text, as a fraction
// of the text size.
const RefractionRatio = 0.05

// Projection places a row on the drum.
type Projection struct {
	// RotationDegrees tips the row about the horizontal axis.
	RotationDegrees float64
	// TranslateY is the row's on-screen distance from the drum center.
	TranslateY float64
	// TranslateZ pushes the row away from the viewer.
	TranslateZ float64
	// Alpha is the edge fade, 255 at the center.
	Alpha int
}

// Project maps a row at signed distance rangePx onto a drum of the given
// radius. Rows more than a quarter turn away are hidden and report false.
func Project(rangePx int, radius float64) (Projection, bool) {
	if radius <= 0 {
		return Projection{}, false
	}
	r := float64(rangePx)
	if math.Abs(r) > radius*math.Pi/2 {
		return Projection{}, false
	}
	angle := r / radius
	return Projection{
		RotationDegrees: -angle * 180 / math.Pi,
		TranslateY:      radius * math.Sin(angle),
		TranslateZ:      radius * (1 - math.Cos(angle)),
		Alpha:           int(math.Round(255 * math.Cos(angle))),
	}, true
}

// Matrix returns the transform that draws a row laid out flat at the drum
// center as it appears on the drum, pivoting on (centerX, centerY+TranslateY).
func (p Projection) Matrix(centerX, centerY float64) rendering.Matrix {
	camera := rendering.NewCamera()
	camera.Translate(0, 0, p.TranslateZ)
	camera.RotateX(p.RotationDegrees)
	y := centerY + p.TranslateY
	return camera.Matrix().PreTranslate(-centerX, -y).PostTranslate(centerX, y)
}

// PerspectivePainter draws rows on a rotating drum seen in perspective.
type PerspectivePainter struct{}

// ContentHeight is the drum's projected height, itemHeight*itemCount*2/π.
func (PerspectivePainter) ContentHeight(itemHeight, itemCount int) float64 {
	return math.Trunc(float64(itemHeight*itemCount) * 2 / math.Pi)
}

func (PerspectivePainter) DrawItem(canvas rendering.Canvas, item Item) {
	p, ok := Project(item.Range, item.Radius)
	if !ok {
		return
	}
	center := item.Regions.Middle.Center()
	refract := item.SelectedStyle.FontSize * RefractionRatio
	for _, band := range BandsFor(item.Range, item.ItemHeight) {
		style := item.Style
		canvas.Save()
		if band == BandMiddle {
			style = item.SelectedStyle
			canvas.Translate(refract, 0)
		} else {
			style.Color = fade(style.Color, p.Alpha)
		}
		canvas.ClipRect(item.Regions.Rect(band))
		drawProjected(canvas, item.Text, center, p, style)
		canvas.Restore()
	}
}

func drawProjected(canvas rendering.Canvas, text string, center rendering.Offset, p Projection, style rendering.TextStyle) {
	canvas.Concat(p.Matrix(center.X, center.Y))
	baseline := math.Trunc(rendering.MetricsFor(style.FontSize).BaselineOffset())
	y := center.Y + p.TranslateY
	canvas.DrawText(text, rendering.Offset{X: center.X, Y: y + baseline}, style)
}

// fade scales a color's alpha by a/255.
func fade(c rendering.Color, a int) rendering.Color {
	a = max(0, min(a, 255))
	return c.WithAlpha(uint8(int(c.Alpha()) * a / 255))
}
