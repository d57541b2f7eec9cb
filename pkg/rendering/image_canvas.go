package rendering

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageCanvas rasterizes drawing commands into an *image.RGBA.
//
// Shapes and text are inverse-mapped through the current transform, so
// perspective matrices from [Camera] render correctly. Clips are kept as
// device-space rectangles (the bounds of the transformed clip rect).
type ImageCanvas struct {
	img   *image.RGBA
	state canvasState
	stack []canvasState
}

type canvasState struct {
	matrix Matrix
	clip   Rect
}

// NewImageCanvas allocates a transparent canvas of the given pixel size.
func NewImageCanvas(width, height int) *ImageCanvas {
	return NewImageCanvasFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageCanvasFor draws into an existing image.
func NewImageCanvasFor(img *image.RGBA) *ImageCanvas {
	b := img.Bounds()
	return &ImageCanvas{
		img: img,
		state: canvasState{
			matrix: IdentityMatrix(),
			clip:   Rect{Left: float64(b.Min.X), Top: float64(b.Min.Y), Right: float64(b.Max.X), Bottom: float64(b.Max.Y)},
		},
	}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Matrix returns the current transform.
func (c *ImageCanvas) Matrix() Matrix {
	return c.state.matrix
}

// Clip returns the current device-space clip.
func (c *ImageCanvas) Clip() Rect {
	return c.state.clip
}

func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *ImageCanvas) Translate(dx, dy float64) {
	c.state.matrix = c.state.matrix.PreTranslate(dx, dy)
}

func (c *ImageCanvas) Concat(m Matrix) {
	c.state.matrix = c.state.matrix.Multiply(m)
}

func (c *ImageCanvas) ClipRect(rect Rect) {
	c.state.clip = c.state.clip.Intersect(c.state.matrix.MapRect(rect))
}

func (c *ImageCanvas) Clear(col Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *ImageCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *ImageCanvas) DrawRect(rect Rect, paint Paint) {
	if paint.Style == PaintStyleStroke {
		c.strokeRect(rect, paint)
		return
	}
	m := c.state.matrix
	if m.IsTranslate() {
		c.fillDeviceRect(m.MapRect(rect), paint.Color)
		return
	}
	c.scan(m.MapRect(rect), func(p Offset) float64 {
		if rect.Contains(p) {
			return 1
		}
		return 0
	}, paint.Color)
}

func (c *ImageCanvas) strokeRect(rect Rect, paint Paint) {
	tl := Offset{X: rect.Left, Y: rect.Top}
	tr := Offset{X: rect.Right, Y: rect.Top}
	br := Offset{X: rect.Right, Y: rect.Bottom}
	bl := Offset{X: rect.Left, Y: rect.Bottom}
	c.DrawLine(tl, tr, paint)
	c.DrawLine(tr, br, paint)
	c.DrawLine(br, bl, paint)
	c.DrawLine(bl, tl, paint)
}

// fillDeviceRect fills an axis-aligned device rectangle with edges rounded
// to whole pixels.
func (c *ImageCanvas) fillDeviceRect(r Rect, col Color) {
	r = r.Intersect(c.state.clip)
	if r.IsEmpty() {
		return
	}
	dst := image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
	draw.Draw(c.img, dst, image.NewUniform(col.NRGBA()), image.Point{}, draw.Over)
}

func (c *ImageCanvas) DrawLine(start, end Offset, paint Paint) {
	half := math.Max(paint.StrokeWidth, 1) / 2
	bounds := BoundsOf(start, end)
	bounds = Rect{Left: bounds.Left - half, Top: bounds.Top - half, Right: bounds.Right + half, Bottom: bounds.Bottom + half}
	c.scan(c.state.matrix.MapRect(bounds), func(p Offset) float64 {
		if distanceToSegment(p, start, end) <= half {
			return 1
		}
		return 0
	}, paint.Color)
}

func (c *ImageCanvas) DrawText(text string, position Offset, style TextStyle) {
	if text == "" || style.Color.Alpha() == 0 {
		return
	}
	face := FaceFor(style.FontSize)
	metrics := MetricsFor(style.FontSize)
	width := MeasureText(text, style.FontSize)

	left := position.X
	if style.Align == TextAlignCenter {
		left -= width / 2
	}

	// Glyphs are rasterized once into an alpha mask in local space, with one
	// pixel of margin for bilinear sampling.
	ascent := math.Ceil(metrics.Ascent)
	maskW := int(math.Ceil(width)) + 2
	maskH := int(ascent+math.Ceil(metrics.Descent)) + 2
	mask := image.NewAlpha(image.Rect(0, 0, maskW, maskH))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(1), Y: floatToFixed(ascent + 1)},
	}
	d.DrawString(text)

	originX := left - 1
	originY := position.Y - ascent - 1
	local := RectFromLTWH(originX, originY, float64(maskW), float64(maskH))
	c.scan(c.state.matrix.MapRect(local), func(p Offset) float64 {
		return sampleAlpha(mask, p.X-originX-0.5, p.Y-originY-0.5)
	}, style.Color)
}

// scan visits every device pixel inside bounds and the current clip, maps its
// center back to local space and blends col weighted by coverage(local).
func (c *ImageCanvas) scan(bounds Rect, coverage func(Offset) float64, col Color) {
	inv, ok := c.state.matrix.Invert()
	if !ok {
		return
	}
	r := bounds.Intersect(c.state.clip)
	if r.IsEmpty() {
		return
	}
	b := c.img.Bounds()
	x0 := max(int(math.Floor(r.Left)), b.Min.X)
	y0 := max(int(math.Floor(r.Top)), b.Min.Y)
	x1 := min(int(math.Ceil(r.Right)), b.Max.X)
	y1 := min(int(math.Ceil(r.Bottom)), b.Max.Y)
	src := col.NRGBA()
	clip := c.state.clip
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			center := Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			if !clip.Contains(center) {
				continue
			}
			a := coverage(inv.Map(center))
			if a <= 0 {
				continue
			}
			blend(c.img, x, y, src, a)
		}
	}
}

// blend composites src over the pixel at (x, y) with extra coverage a.
func blend(img *image.RGBA, x, y int, src color.NRGBA, a float64) {
	alpha := float64(src.A) / 255 * math.Min(a, 1)
	if alpha <= 0 {
		return
	}
	i := img.PixOffset(x, y)
	pix := img.Pix[i : i+4 : i+4]
	inv := 1 - alpha
	pix[0] = uint8(math.Round(float64(src.R)*alpha + float64(pix[0])*inv))
	pix[1] = uint8(math.Round(float64(src.G)*alpha + float64(pix[1])*inv))
	pix[2] = uint8(math.Round(float64(src.B)*alpha + float64(pix[2])*inv))
	pix[3] = uint8(math.Round(255*alpha + float64(pix[3])*inv))
}

// sampleAlpha bilinearly samples mask at fractional pixel coordinates,
// treating everything outside the mask as transparent.
func sampleAlpha(mask *image.Alpha, u, v float64) float64 {
	x0 := int(math.Floor(u))
	y0 := int(math.Floor(v))
	fx := u - float64(x0)
	fy := v - float64(y0)
	at := func(x, y int) float64 {
		if !(image.Point{X: x, Y: y}).In(mask.Rect) {
			return 0
		}
		return float64(mask.Pix[mask.PixOffset(x, y)]) / 255
	}
	top := at(x0, y0)*(1-fx) + at(x0+1, y0)*fx
	bottom := at(x0, y0+1)*(1-fx) + at(x0+1, y0+1)*fx
	return top*(1-fy) + bottom*fy
}

func distanceToSegment(p, a, b Offset) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	cx, cy := a.X+t*dx-p.X, a.Y+t*dy-p.Y
	return math.Hypot(cx, cy)
}

// Downsample scales img down by an integer factor with Catmull-Rom filtering.
// The canvas renders in premultiplied RGBA, so no alpha fix-up is needed.
func Downsample(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
