package rendering

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// PictureRecorder records drawing commands into a DisplayList.
type PictureRecorder struct {
	ops       []displayOp
	size      Size
	recording bool
}

// BeginRecording starts a new recording and returns a canvas that captures
// everything drawn on it.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = nil
	r.size = size
	r.recording = true
	return &recordingCanvas{recorder: r}
}

// EndRecording finishes the recording and returns the display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	list := &DisplayList{ops: r.ops, size: r.size}
	r.ops = nil
	r.recording = false
	return list
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
}

func (c *recordingCanvas) Save()                    { c.recorder.append(opSave{}) }
func (c *recordingCanvas) Restore()                 { c.recorder.append(opRestore{}) }
func (c *recordingCanvas) Translate(dx, dy float64) { c.recorder.append(opTranslate{dx, dy}) }
func (c *recordingCanvas) Concat(m Matrix)          { c.recorder.append(opConcat{m}) }
func (c *recordingCanvas) ClipRect(rect Rect)       { c.recorder.append(opClipRect{rect}) }
func (c *recordingCanvas) Clear(color Color)        { c.recorder.append(opClear{color}) }

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(opRect{rect, paint})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.recorder.append(opLine{start, end, paint})
}

func (c *recordingCanvas) DrawText(text string, position Offset, style TextStyle) {
	c.recorder.append(opText{text, position, style})
}

func (c *recordingCanvas) Size() Size {
	return c.recorder.size
}

type opSave struct{}

func (opSave) execute(canvas Canvas) { canvas.Save() }

type opRestore struct{}

func (opRestore) execute(canvas Canvas) { canvas.Restore() }

type opTranslate struct {
	dx, dy float64
}

func (op opTranslate) execute(canvas Canvas) { canvas.Translate(op.dx, op.dy) }

type opConcat struct {
	m Matrix
}

func (op opConcat) execute(canvas Canvas) { canvas.Concat(op.m) }

type opClipRect struct {
	rect Rect
}

func (op opClipRect) execute(canvas Canvas) { canvas.ClipRect(op.rect) }

type opClear struct {
	color Color
}

func (op opClear) execute(canvas Canvas) { canvas.Clear(op.color) }

type opRect struct {
	rect  Rect
	paint Paint
}

func (op opRect) execute(canvas Canvas) { canvas.DrawRect(op.rect, op.paint) }

type opLine struct {
	start, end Offset
	paint      Paint
}

func (op opLine) execute(canvas Canvas) { canvas.DrawLine(op.start, op.end, op.paint) }

type opText struct {
	text     string
	position Offset
	style    TextStyle
}

func (op opText) execute(canvas Canvas) { canvas.DrawText(op.text, op.position, op.style) }
