package wheel

import (
	"math"

	"github.com/go-drift/wheel/pkg/rendering"
)

// Band is one of the three horizontal clip regions of a wheel.
type Band int

const (
	BandTop Band = iota
	BandMiddle
	BandBottom
)

func (b Band) String() string {
	switch b {
	case BandTop:
		return "top"
	case BandMiddle:
		return "middle"
	case BandBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Regions are the disjoint clip rectangles of a laid-out wheel. Middle is one
// item tall and centered; Top and Bottom fill the rest of the content box.
type Regions struct {
	Top    rendering.Rect
	Middle rendering.Rect
	Bottom rendering.Rect
}

// Rect returns the rectangle for a band.
func (r Regions) Rect(b Band) rendering.Rect {
	switch b {
	case BandTop:
		return r.Top
	case BandBottom:
		return r.Bottom
	default:
		return r.Middle
	}
}

// ComputeRegions splits the content box of a size×padding wheel around a
// middle band itemHeight tall. Edges are whole pixels.
func ComputeRegions(size rendering.Size, padding rendering.EdgeInsets, itemHeight int) Regions {
	left := math.Floor(padding.Left)
	right := math.Floor(size.Width - padding.Right)
	top := math.Floor(padding.Top)
	bottom := math.Floor(size.Height - padding.Bottom)
	middle := math.Floor((top + bottom) / 2)
	half := float64(itemHeight / 2)
	return Regions{
		Top:    rendering.Rect{Left: left, Top: top, Right: right, Bottom: middle - half},
		Middle: rendering.Rect{Left: left, Top: middle - half, Right: right, Bottom: middle + half},
		Bottom: rendering.Rect{Left: left, Top: middle + half, Right: right, Bottom: bottom},
	}
}

// BandsFor returns the regions a row at signed distance rangePx from the
// middle band intersects, in draw order. A row straddling a divider is drawn
// once per band it touches.
func BandsFor(rangePx, itemHeight int) []Band {
	switch {
	case rangePx > 0 && rangePx < itemHeight:
		return []Band{BandMiddle, BandBottom}
	case rangePx >= itemHeight && rangePx > 0:
		return []Band{BandBottom}
	case rangePx < 0 && rangePx > -itemHeight:
		return []Band{BandMiddle, BandTop}
	case rangePx <= -itemHeight && rangePx < 0:
		return []Band{BandTop}
	default:
		return []Band{BandMiddle}
	}
}

// visibleRange returns the half-open row window [lo, hi) drawn for a scroll
// position, following the item count and the direction of the partial row.
func visibleRange(itemIndex, itemOffset, itemCount int) (lo, hi int) {
	hf := (itemCount + 1) / 2
	switch {
	case itemOffset < 0:
		return itemIndex - hf - 1, itemIndex + hf
	case itemOffset > 0:
		return itemIndex - hf, itemIndex + hf + 1
	default:
		return itemIndex - hf, itemIndex + hf
	}
}
