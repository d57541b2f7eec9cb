package cmd

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/wheel/cmd/wheel/internal/scene"
	"github.com/go-drift/wheel/pkg/rendering"
)

type renderOptions struct {
	Out        string
	Index      int
	Offset     int
	Scale      int
	Entries    []string
	Background string
	Picker     bool
}

func addRender(topLevel *cobra.Command) {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame of a wheel to PNG or WebP",
		Example: `
wheel render --entries Mon,Tue,Wed,Thu,Fri --index 2 --out wheel.png
wheel render --config wheel.yaml --offset 15 --scale 2 --out wheel.webp
wheel render --picker --out dialog.png
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := Setup(cmd)
			if err != nil {
				return err
			}
			format, err := rendering.FormatFromPath(o.Out)
			if err != nil {
				return err
			}
			bg, err := rendering.ParseColor(o.Background)
			if err != nil {
				return fmt.Errorf("--background: %w", err)
			}
			if o.Scale < 1 {
				return fmt.Errorf("--scale must be at least 1, got %d", o.Scale)
			}

			var img *image.RGBA
			if o.Picker {
				s, err := scene.New(cfg, time.Now(), nil)
				if err != nil {
					return err
				}
				s.Background = bg
				img = RenderScaled(s.Size(), o.Scale, s.Paint)
			} else {
				if len(o.Entries) > 0 {
					cfg.Wheel.Entries = o.Entries
				}
				if len(cfg.Wheel.Entries) == 0 {
					return errors.New("no entries: set wheel.entries in the config or pass --entries")
				}
				w := cfg.NewWheel()
				if o.Index >= 0 {
					w.SetCurrentIndex(o.Index, false)
				}
				if o.Offset != 0 {
					w.Scroller().Drag(-o.Offset)
				}
				img = RenderScaled(w.Size(), o.Scale, func(c rendering.Canvas) {
					c.Clear(bg)
					w.Paint(c)
				})
				logger.Debug("wheel state", "offset", w.Scroller().Offset(), "index", w.CurrentIndex())
			}

			if err := writeImage(o.Out, img, format); err != nil {
				return err
			}
			logger.Info("rendered", "out", o.Out, "format", format, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
			return nil
		},
	}
	cmd.Flags().StringVarP(&o.Out, "out", "o", "", "output file; the extension picks the format")
	cmd.Flags().IntVar(&o.Index, "index", -1, "select this index before rendering")
	cmd.Flags().IntVar(&o.Offset, "offset", 0, "scroll this many extra pixels past the selection")
	cmd.Flags().IntVar(&o.Scale, "scale", 1, "supersampling factor")
	cmd.Flags().StringSliceVar(&o.Entries, "entries", nil, "entries, overriding the config")
	cmd.Flags().StringVar(&o.Background, "background", "#FFFFFF", "background color")
	cmd.Flags().BoolVar(&o.Picker, "picker", false, "render the whole date picker dialog")
	_ = cmd.MarkFlagRequired("out")

	topLevel.AddCommand(cmd)
}

// RenderScaled paints a size-sized scene at scale times the resolution and
// box-filters it back down.
func RenderScaled(size rendering.Size, scale int, paint func(rendering.Canvas)) *image.RGBA {
	w := int(math.Ceil(size.Width))
	h := int(math.Ceil(size.Height))
	canvas := rendering.NewImageCanvas(w*scale, h*scale)
	canvas.Concat(rendering.ScaleMatrix(float64(scale), float64(scale)))
	paint(canvas)
	return rendering.Downsample(canvas.Image(), scale)
}

func writeImage(path string, img image.Image, format rendering.ImageFormat) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return rendering.Encode(f, img, format)
}
