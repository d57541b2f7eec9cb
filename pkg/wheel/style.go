package wheel

import "github.com/go-drift/wheel/pkg/rendering"

// Style is the construction-time configuration of a wheel.
type Style struct {
	// ItemCount is the number of visible rows.
	ItemCount int
	// ItemWidth and ItemHeight are the row size in pixels.
	ItemWidth  int
	ItemHeight int
	// TextSize is the font size in pixels.
	TextSize float64

	TextColor         rendering.Color
	SelectedTextColor rendering.Color
	DividerColor      rendering.Color
	HighlightColor    rendering.Color
	MiddleMaskColor   rendering.Color
	DividerWidth      float64

	Cyclic  bool
	Entries []string
	Padding rendering.EdgeInsets
}

// Default style values.
const (
	DefaultItemCount  = 9
	DefaultItemWidth  = 120
	DefaultItemHeight = 40
	DefaultTextSize   = 18
)

// DefaultStyle returns the stock wheel look: dark selected text over a pale
// blue middle band.
func DefaultStyle() Style {
	return Style{
		ItemCount:         DefaultItemCount,
		ItemWidth:         DefaultItemWidth,
		ItemHeight:        DefaultItemHeight,
		TextSize:          DefaultTextSize,
		TextColor:         rendering.RGB(0x99, 0x99, 0x99),
		SelectedTextColor: rendering.RGB(0x33, 0x33, 0x33),
		DividerColor:      rendering.RGB(0xDD, 0xDD, 0xDD),
		HighlightColor:    rendering.ColorTransparent,
		MiddleMaskColor:   rendering.RGB(0xE1, 0xE8, 0xF9),
		DividerWidth:      1,
	}
}

// withDefaults fills non-positive sizes from DefaultStyle. Colors are taken
// as given, since transparent is a valid choice.
func (s Style) withDefaults() Style {
	if s.ItemCount <= 0 {
		s.ItemCount = DefaultItemCount
	}
	if s.ItemWidth <= 0 {
		s.ItemWidth = DefaultItemWidth
	}
	if s.ItemHeight <= 0 {
		s.ItemHeight = DefaultItemHeight
	}
	if s.TextSize <= 0 {
		s.TextSize = DefaultTextSize
	}
	if s.DividerWidth < 0 {
		s.DividerWidth = 0
	}
	return s
}

func (s Style) textStyle() rendering.TextStyle {
	return rendering.TextStyle{Color: s.TextColor, FontSize: s.TextSize, Align: rendering.TextAlignCenter}
}

func (s Style) selectedTextStyle() rendering.TextStyle {
	return rendering.TextStyle{Color: s.SelectedTextColor, FontSize: s.TextSize, Align: rendering.TextAlignCenter}
}
