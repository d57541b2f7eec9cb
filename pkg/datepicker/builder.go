package datepicker

import (
	"time"

	"github.com/go-drift/wheel/pkg/animation"
	"github.com/go-drift/wheel/pkg/rendering"
	"github.com/go-drift/wheel/pkg/wheel"
)

// Listener receives the confirmed date and its fields, with a 1-based month.
type Listener func(date time.Time, year, month, day int)

// Builder assembles a Config fluently.
//
//	picker, err := datepicker.NewBuilder().
//	    Title("Birthday").
//	    YearRange(1970, 2010).
//	    InitialDate(1990, 6, 15).
//	    OnDateSelected(save).
//	    Build(years, months, days)
type Builder struct {
	cfg      Config
	listener Listener
}

// NewBuilder starts from DefaultConfig with today's date as the initial date.
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig(animation.Now())}
}

// Title sets the dialog title shown by hosts.
func (b *Builder) Title(title string) *Builder {
	b.cfg.Title = title
	return b
}

// ShowTitle toggles the title.
func (b *Builder) ShowTitle(show bool) *Builder {
	b.cfg.ShowTitle = show
	return b
}

// ConfirmText sets the confirm button text.
func (b *Builder) ConfirmText(text string) *Builder {
	b.cfg.ConfirmText = text
	return b
}

// CancelText sets the cancel button text.
func (b *Builder) CancelText(text string) *Builder {
	b.cfg.CancelText = text
	return b
}

// InitialDate sets the preselected date. Out-of-range months and days are
// normalized; dates outside min..max are clamped when the picker is built.
func (b *Builder) InitialDate(year, month, day int) *Builder {
	b.cfg.Initial = Normalize(year, month, day)
	return b
}

// MinDate sets the earliest selectable date.
func (b *Builder) MinDate(year, month, day int) *Builder {
	b.cfg.Min = Normalize(year, month, day)
	return b
}

// MaxDate sets the latest selectable date.
func (b *Builder) MaxDate(year, month, day int) *Builder {
	b.cfg.Max = Normalize(year, month, day)
	return b
}

// YearRange changes only the years of the min and max dates.
func (b *Builder) YearRange(start, end int) *Builder {
	b.cfg.Min.Year = start
	b.cfg.Max.Year = end
	return b
}

// Format selects the visible columns.
func (b *Builder) Format(f DateFormat) *Builder {
	b.cfg.Format = f
	return b
}

// Labels sets the entry templates.
func (b *Builder) Labels(l Labels) *Builder {
	b.cfg.Labels = l
	return b
}

// PrimaryColor tints the selected text of all wheels.
func (b *Builder) PrimaryColor(c rendering.Color) *Builder {
	b.cfg.PrimaryColor = &c
	return b
}

// TextColor sets the unselected text color of all wheels.
func (b *Builder) TextColor(c rendering.Color) *Builder {
	b.cfg.TextColor = &c
	return b
}

// SelectedTextColor overrides PrimaryColor for the selected text.
func (b *Builder) SelectedTextColor(c rendering.Color) *Builder {
	b.cfg.SelectedTextColor = &c
	return b
}

// OnDateSelected installs the confirm listener.
func (b *Builder) OnDateSelected(fn Listener) *Builder {
	b.listener = fn
	return b
}

// Config returns the configuration built so far.
func (b *Builder) Config() Config {
	return b.cfg
}

// Build validates the configuration and binds the picker to the wheels. A
// wheel the format does not show may be nil.
func (b *Builder) Build(year, month, day *wheel.Wheel) (*Picker, error) {
	return New(b.cfg, year, month, day, b.listener)
}
