package rendering

import (
	"math"
	"sync"

	"github.com/go-drift/wheel/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// defaultFontSize is used when no font size is specified.
const defaultFontSize = 16

// FontMetrics describes the vertical extent of a face in pixels. Ascent and
// Descent are both positive distances from the baseline.
type FontMetrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// BaselineOffset returns how far below a row's vertical center the baseline
// sits so that the glyph box is centered on that row.
func (m FontMetrics) BaselineOffset() float64 {
	return (m.Ascent - m.Descent) / 2
}

type faceCache struct {
	once  sync.Once
	font  *opentype.Font
	mu    sync.Mutex
	faces map[float64]font.Face
}

var faces = &faceCache{faces: make(map[float64]font.Face)}

func (c *faceCache) load() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		errors.Report(errors.New("rendering.LoadFont", errors.KindRender, err))
		return
	}
	c.font = f
}

func (c *faceCache) face(size float64) font.Face {
	if size <= 0 {
		size = defaultFontSize
	}
	c.once.Do(c.load)

	c.mu.Lock()
	defer c.mu.Unlock()
	if face, ok := c.faces[size]; ok {
		return face
	}
	var face font.Face = basicfont.Face7x13
	if c.font != nil {
		f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			errors.Report(errors.New("rendering.NewFace", errors.KindRender, err))
		} else {
			face = f
		}
	}
	c.faces[size] = face
	return face
}

// FaceFor returns the shared face for a pixel size, falling back to a fixed
// 7x13 bitmap face when the vector font cannot be loaded.
func FaceFor(size float64) font.Face {
	return faces.face(size)
}

// MetricsFor returns the metrics of the face at the given pixel size.
func MetricsFor(size float64) FontMetrics {
	m := FaceFor(size).Metrics()
	return FontMetrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
	}
}

// MeasureText returns the advance width of text at the given pixel size.
func MeasureText(text string, size float64) float64 {
	if text == "" {
		return 0
	}
	return fixedToFloat(font.MeasureString(FaceFor(size), text))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
