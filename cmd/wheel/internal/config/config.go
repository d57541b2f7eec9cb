// Package config loads the wheel CLI configuration from YAML or TOML files.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/wheel/pkg/animation"
	"github.com/go-drift/wheel/pkg/datepicker"
	"github.com/go-drift/wheel/pkg/errors"
	"github.com/go-drift/wheel/pkg/rendering"
	"github.com/go-drift/wheel/pkg/wheel"
)

// CurrentVersion is written by Default and accepted by every v1 reader.
const CurrentVersion = "v1.0.0"

// DateLayout is the layout of dates in config files.
const DateLayout = "2006-01-02"

// Config is the wheel.yaml / wheel.toml document.
type Config struct {
	Version string       `yaml:"version" toml:"version"`
	Wheel   WheelConfig  `yaml:"wheel" toml:"wheel"`
	Picker  PickerConfig `yaml:"picker" toml:"picker"`
	Log     LogConfig    `yaml:"log" toml:"log"`
}

// WheelConfig mirrors wheel.Style with colors as strings.
type WheelConfig struct {
	ItemCount         int      `yaml:"item_count" toml:"item_count"`
	ItemWidth         int      `yaml:"item_width" toml:"item_width"`
	ItemHeight        int      `yaml:"item_height" toml:"item_height"`
	TextSize          float64  `yaml:"text_size" toml:"text_size"`
	TextColor         string   `yaml:"text_color" toml:"text_color"`
	SelectedTextColor string   `yaml:"selected_text_color" toml:"selected_text_color"`
	DividerColor      string   `yaml:"divider_color" toml:"divider_color"`
	HighlightColor    string   `yaml:"highlight_color" toml:"highlight_color"`
	MiddleMaskColor   string   `yaml:"middle_mask_color" toml:"middle_mask_color"`
	DividerWidth      float64  `yaml:"divider_width" toml:"divider_width"`
	Padding           float64  `yaml:"padding" toml:"padding"`
	Cyclic            bool     `yaml:"cyclic" toml:"cyclic"`
	Entries           []string `yaml:"entries,omitempty" toml:"entries,omitempty"`
	// Painter is "perspective" or "flat".
	Painter string `yaml:"painter" toml:"painter"`
	// Spring snaps with a critically damped spring instead of the timed slide.
	Spring bool `yaml:"spring" toml:"spring"`
}

// PickerConfig configures the date picker demos.
type PickerConfig struct {
	Title        string `yaml:"title" toml:"title"`
	Format       string `yaml:"format" toml:"format"`
	Min          string `yaml:"min" toml:"min"`
	Max          string `yaml:"max" toml:"max"`
	Initial      string `yaml:"initial,omitempty" toml:"initial,omitempty"`
	YearLabel    string `yaml:"year_label" toml:"year_label"`
	MonthLabel   string `yaml:"month_label" toml:"month_label"`
	DayLabel     string `yaml:"day_label" toml:"day_label"`
	ConfirmText  string `yaml:"confirm_text" toml:"confirm_text"`
	CancelText   string `yaml:"cancel_text" toml:"cancel_text"`
	PrimaryColor string `yaml:"primary_color,omitempty" toml:"primary_color,omitempty"`
}

// LogConfig sets the CLI log level.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Wheel: WheelConfig{
			ItemCount:         wheel.DefaultItemCount,
			ItemWidth:         wheel.DefaultItemWidth,
			ItemHeight:        wheel.DefaultItemHeight,
			TextSize:          wheel.DefaultTextSize,
			TextColor:         "#999999",
			SelectedTextColor: "#333333",
			DividerColor:      "#DDDDDD",
			HighlightColor:    "#00000000",
			MiddleMaskColor:   "#E1E8F9",
			DividerWidth:      1,
			Painter:           "perspective",
		},
		Picker: PickerConfig{
			Title:       "Select date",
			Format:      datepicker.FormatYearMonthDay.String(),
			Min:         "1950-01-01",
			Max:         "2050-12-31",
			YearLabel:   "%d",
			MonthLabel:  "%d",
			DayLabel:    "%d",
			ConfirmText: "OK",
			CancelText:  "Cancel",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a config file, choosing the decoder by extension. Fields the
// file omits keep their defaults. A leading ~ is expanded.
func Load(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (want .yaml, .yml or .toml)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional is Load, except that an empty path or a missing file yields
// the defaults.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if err != nil && stderrors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks every field and returns the first problem as a config
// error wrapping an errors.FieldError.
func (c *Config) Validate() error {
	if fe := c.validate(); fe != nil {
		return errors.New("config.Validate", errors.KindConfig, fe)
	}
	return nil
}

func (c *Config) validate() *errors.FieldError {
	if !semver.IsValid(c.Version) {
		return &errors.FieldError{Field: "version", Value: c.Version, Reason: "must be a semantic version such as v1.0.0"}
	}
	if major := semver.Major(c.Version); major != "v1" {
		return &errors.FieldError{Field: "version", Value: c.Version, Reason: "unsupported major version " + major}
	}

	w := c.Wheel
	for _, f := range []struct {
		name  string
		value int
	}{
		{"wheel.item_count", w.ItemCount},
		{"wheel.item_width", w.ItemWidth},
		{"wheel.item_height", w.ItemHeight},
	} {
		if f.value <= 0 {
			return &errors.FieldError{Field: f.name, Value: f.value, Reason: "must be positive"}
		}
	}
	if w.TextSize <= 0 {
		return &errors.FieldError{Field: "wheel.text_size", Value: w.TextSize, Reason: "must be positive"}
	}
	if w.DividerWidth < 0 {
		return &errors.FieldError{Field: "wheel.divider_width", Value: w.DividerWidth, Reason: "must not be negative"}
	}
	if w.Padding < 0 {
		return &errors.FieldError{Field: "wheel.padding", Value: w.Padding, Reason: "must not be negative"}
	}
	for _, f := range []struct{ name, value string }{
		{"wheel.text_color", w.TextColor},
		{"wheel.selected_text_color", w.SelectedTextColor},
		{"wheel.divider_color", w.DividerColor},
		{"wheel.highlight_color", w.HighlightColor},
		{"wheel.middle_mask_color", w.MiddleMaskColor},
	} {
		if _, err := rendering.ParseColor(f.value); err != nil {
			return &errors.FieldError{Field: f.name, Value: f.value, Reason: err.Error()}
		}
	}
	switch w.Painter {
	case "perspective", "flat":
	default:
		return &errors.FieldError{Field: "wheel.painter", Value: w.Painter, Reason: `must be "perspective" or "flat"`}
	}

	p := c.Picker
	if _, err := datepicker.ParseDateFormat(p.Format); err != nil {
		return &errors.FieldError{Field: "picker.format", Value: p.Format, Reason: err.Error()}
	}
	for _, f := range []struct{ name, value string }{
		{"picker.min", p.Min},
		{"picker.max", p.Max},
		{"picker.initial", p.Initial},
	} {
		if f.value == "" && f.name == "picker.initial" {
			continue
		}
		if _, err := time.Parse(DateLayout, f.value); err != nil {
			return &errors.FieldError{Field: f.name, Value: f.value, Reason: "want YYYY-MM-DD"}
		}
	}
	if p.PrimaryColor != "" {
		if _, err := rendering.ParseColor(p.PrimaryColor); err != nil {
			return &errors.FieldError{Field: "picker.primary_color", Value: p.PrimaryColor, Reason: err.Error()}
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &errors.FieldError{Field: "log.level", Value: c.Log.Level, Reason: "want debug, info, warn or error"}
	}
	return nil
}

// Style converts the wheel section. The config must have been validated.
func (c *Config) Style() wheel.Style {
	w := c.Wheel
	color := func(s string) rendering.Color {
		col, _ := rendering.ParseColor(s)
		return col
	}
	return wheel.Style{
		ItemCount:         w.ItemCount,
		ItemWidth:         w.ItemWidth,
		ItemHeight:        w.ItemHeight,
		TextSize:          w.TextSize,
		TextColor:         color(w.TextColor),
		SelectedTextColor: color(w.SelectedTextColor),
		DividerColor:      color(w.DividerColor),
		HighlightColor:    color(w.HighlightColor),
		MiddleMaskColor:   color(w.MiddleMaskColor),
		DividerWidth:      w.DividerWidth,
		Cyclic:            w.Cyclic,
		Entries:           w.Entries,
		Padding:           rendering.EdgeInsets{Left: w.Padding, Top: w.Padding, Right: w.Padding, Bottom: w.Padding},
	}
}

// NewWheel builds a wheel from the wheel section, with its painter and
// justify mode applied.
func (c *Config) NewWheel() *wheel.Wheel {
	w := wheel.New(c.Style())
	if c.Wheel.Painter == "flat" {
		w.SetPainter(wheel.FlatPainter{})
		w.Layout(w.PreferredSize())
	}
	if c.Wheel.Spring {
		spring := animation.CriticalSpring()
		w.Scroller().JustifySpring = &spring
	}
	return w
}

// DatePicker converts the picker section. An empty initial date means today.
func (c *Config) DatePicker(today time.Time) datepicker.Config {
	p := c.Picker
	cfg := datepicker.DefaultConfig(today)
	cfg.Title = p.Title
	cfg.ConfirmText = p.ConfirmText
	cfg.CancelText = p.CancelText
	cfg.Format, _ = datepicker.ParseDateFormat(p.Format)
	cfg.Labels = datepicker.Labels{Year: p.YearLabel, Month: p.MonthLabel, Day: p.DayLabel}
	cfg.Min = parseDate(p.Min, cfg.Min)
	cfg.Max = parseDate(p.Max, cfg.Max)
	cfg.Initial = parseDate(p.Initial, cfg.Initial)
	if p.PrimaryColor != "" {
		if col, err := rendering.ParseColor(p.PrimaryColor); err == nil {
			cfg.PrimaryColor = &col
		}
	}
	return cfg
}

func parseDate(s string, fallback datepicker.Date) datepicker.Date {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fallback
	}
	return datepicker.DateOf(t)
}
