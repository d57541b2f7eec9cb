package rendering

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how shapes are drawn.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
}

// TextAlign positions text horizontally relative to the draw origin.
type TextAlign int

const (
	// TextAlignLeft places the origin at the left edge of the text.
	TextAlignLeft TextAlign = iota
	// TextAlignCenter places the origin at the horizontal center of the text.
	TextAlignCenter
)

// TextStyle describes how text is drawn.
type TextStyle struct {
	Color    Color
	FontSize float64
	Align    TextAlign
}
