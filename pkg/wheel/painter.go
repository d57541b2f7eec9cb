package wheel

import (
	"math"

	"github.com/go-drift/wheel/pkg/rendering"
)

// Item is one row handed to a Painter.
type Item struct {
	Text string
	// Range is the signed pixel distance of the row's center from the middle
	// band; positive rows are below it.
	Range      int
	ItemHeight int
	// Radius is half the content height, the radius of the drum.
	Radius  float64
	Regions Regions

	Style         rendering.TextStyle
	SelectedStyle rendering.TextStyle
}

// Painter draws individual rows and decides how tall the wheel wants to be.
type Painter interface {
	// ContentHeight is the preferred height of the content box.
	ContentHeight(itemHeight, itemCount int) float64
	// DrawItem draws one row, clipped to the bands it intersects.
	DrawItem(canvas rendering.Canvas, item Item)
}

// FlatPainter lays rows out on a flat strip with no projection.
type FlatPainter struct{}

func (FlatPainter) ContentHeight(itemHeight, itemCount int) float64 {
	return float64(itemHeight * itemCount)
}

func (FlatPainter) DrawItem(canvas rendering.Canvas, item Item) {
	center := item.Regions.Middle.Center()
	baseline := math.Trunc(rendering.MetricsFor(item.Style.FontSize).BaselineOffset())
	pos := rendering.Offset{X: center.X, Y: center.Y + float64(item.Range) + baseline}
	for _, band := range BandsFor(item.Range, item.ItemHeight) {
		style := item.Style
		if band == BandMiddle {
			style = item.SelectedStyle
		}
		canvas.Save()
		canvas.ClipRect(item.Regions.Rect(band))
		canvas.DrawText(item.Text, pos, style)
		canvas.Restore()
	}
}
