package rendering

// Canvas records or renders drawing commands.
//
// Transforms compose in the usual canvas order: each Translate or Concat
// applies to drawing issued after it, before the transforms already in place.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Concat premultiplies the current transform by m.
	Concat(m Matrix)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end Offset, paint Paint)

	// DrawText draws a single line of text. position.Y is the baseline and
	// position.X is interpreted according to style.Align.
	DrawText(text string, position Offset, style TextStyle)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
