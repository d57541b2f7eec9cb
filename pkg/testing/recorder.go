package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/wheel/pkg/rendering"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// TextOp is a text draw together with the state it was issued under.
type TextOp struct {
	Text     string
	Position rendering.Offset
	Style    rendering.TextStyle
	// Matrix is the full transform at draw time.
	Matrix rendering.Matrix
	// Clip is the device-space clip at draw time.
	Clip rendering.Rect
}

type recorderState struct {
	matrix rendering.Matrix
	clip   rendering.Rect
}

// Recorder implements rendering.Canvas and records ops as DisplayOp.
type Recorder struct {
	ops   []DisplayOp
	texts []TextOp
	size  rendering.Size
	state recorderState
	stack []recorderState
}

// NewRecorder returns a recorder for a surface of the given size.
func NewRecorder(size rendering.Size) *Recorder {
	return &Recorder{
		size: size,
		state: recorderState{
			matrix: rendering.IdentityMatrix(),
			clip:   rendering.Rect{Right: size.Width, Bottom: size.Height},
		},
	}
}

// Ops returns the recorded operations in order.
func (c *Recorder) Ops() []DisplayOp {
	return c.ops
}

// Texts returns the recorded text draws in order.
func (c *Recorder) Texts() []TextOp {
	return c.texts
}

// OpNames returns only the op names, which is handy for asserting order.
func (c *Recorder) OpNames() []string {
	names := make([]string, len(c.ops))
	for i, op := range c.ops {
		names[i] = op.Op
	}
	return names
}

// Reset drops everything recorded so far and clears the transform stack.
func (c *Recorder) Reset() {
	*c = *NewRecorder(c.size)
}

func (c *Recorder) Save() {
	c.stack = append(c.stack, c.state)
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *Recorder) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *Recorder) Translate(dx, dy float64) {
	c.state.matrix = c.state.matrix.PreTranslate(dx, dy)
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *Recorder) Concat(m rendering.Matrix) {
	c.state.matrix = c.state.matrix.Multiply(m)
	values := make([]float64, len(m))
	for i, v := range m {
		values[i] = round4(v)
	}
	c.ops = append(c.ops, DisplayOp{
		Op:     "concat",
		Params: sortedMap("matrix", values),
	})
}

func (c *Recorder) ClipRect(rect rendering.Rect) {
	c.state.clip = c.state.clip.Intersect(c.state.matrix.MapRect(rect))
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *Recorder) Clear(color rendering.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *Recorder) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(paint.Color), "style", paint.Style.String()),
	})
}

func (c *Recorder) DrawLine(start, end rendering.Offset, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: sortedMap(
			"start", sortedMap("x", round2(start.X), "y", round2(start.Y)),
			"end", sortedMap("x", round2(end.X), "y", round2(end.Y)),
			"color", serializeColor(paint.Color),
			"width", round2(paint.StrokeWidth),
		),
	})
}

func (c *Recorder) DrawText(text string, position rendering.Offset, style rendering.TextStyle) {
	c.texts = append(c.texts, TextOp{
		Text:     text,
		Position: position,
		Style:    style,
		Matrix:   c.state.matrix,
		Clip:     c.state.clip,
	})
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(position.X),
			"y", round2(position.Y),
			"color", serializeColor(style.Color),
			"size", round2(style.FontSize),
		),
	})
}

func (c *Recorder) Size() rendering.Size {
	return c.size
}

// --- Serialization helpers ---

func serializeRect(r rendering.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c rendering.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}

// sortedMap creates a map from alternating key-value pairs. JSON encoding
// sorts map keys, so snapshots stay stable.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
