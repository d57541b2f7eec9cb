// Package datepicker coordinates three wheels into a year/month/day picker.
//
// The picker owns no widgets. Hosts create the wheels, lay them out side by
// side and hand them to [Builder.Build]; the picker fills their entries and
// keeps the month and day ranges consistent with the selected year and
// month as the user scrolls.
package datepicker

import (
	"fmt"
	"time"

	"github.com/go-drift/wheel/pkg/errors"
	"github.com/go-drift/wheel/pkg/rendering"
)

// Date is a calendar date with a 1-based month.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DaysInMonth returns the length of month in year, leap years included.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Normalize clamps month to 1..12 and day to the length of that month.
func Normalize(year, month, day int) Date {
	month = clamp(month, 1, 12)
	return Date{Year: year, Month: month, Day: clamp(day, 1, DaysInMonth(year, month))}
}

// DateFormat selects which columns a picker shows.
type DateFormat int

const (
	FormatYearMonthDay DateFormat = iota
	FormatMonthDay
	FormatYearMonth
)

func (f DateFormat) String() string {
	switch f {
	case FormatYearMonthDay:
		return "year-month-day"
	case FormatMonthDay:
		return "month-day"
	case FormatYearMonth:
		return "year-month"
	default:
		return fmt.Sprintf("DateFormat(%d)", int(f))
	}
}

// ParseDateFormat accepts the names produced by DateFormat.String.
func ParseDateFormat(s string) (DateFormat, error) {
	for _, f := range []DateFormat{FormatYearMonthDay, FormatMonthDay, FormatYearMonth} {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown date format %q", s)
}

func (f DateFormat) hasYear() bool  { return f != FormatMonthDay }
func (f DateFormat) hasMonth() bool { return true }
func (f DateFormat) hasDay() bool   { return f != FormatYearMonth }

// Labels are fmt templates applied to each wheel entry, e.g. "%d年".
type Labels struct {
	Year  string
	Month string
	Day   string
}

// DefaultLabels renders bare numbers.
func DefaultLabels() Labels {
	return Labels{Year: "%d", Month: "%d", Day: "%d"}
}

// Config is the full picker configuration.
type Config struct {
	Title       string
	ShowTitle   bool
	ConfirmText string
	CancelText  string

	Initial Date
	Min     Date
	Max     Date

	Format DateFormat
	Labels Labels

	// Nil colors leave the wheels' own styles alone. PrimaryColor tints the
	// selected text unless SelectedTextColor is set.
	PrimaryColor      *rendering.Color
	TextColor         *rendering.Color
	SelectedTextColor *rendering.Color
}

// DefaultConfig selects today within 1950-01-01..2050-12-31.
func DefaultConfig(today time.Time) Config {
	return Config{
		Title:       "Select date",
		ShowTitle:   true,
		ConfirmText: "OK",
		CancelText:  "Cancel",
		Initial:     DateOf(today),
		Min:         Date{Year: 1950, Month: 1, Day: 1},
		Max:         Date{Year: 2050, Month: 12, Day: 31},
		Labels:      DefaultLabels(),
	}
}

// Validate checks that the range is ordered and every date is a real day.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		d    Date
	}{{"initial", c.Initial}, {"min", c.Min}, {"max", c.Max}} {
		if f.d != Normalize(f.d.Year, f.d.Month, f.d.Day) {
			return errors.New("datepicker.Validate", errors.KindConfig, &errors.FieldError{
				Field: f.name, Value: f.d.String(), Reason: "not a calendar date",
			})
		}
	}
	if c.Max.Before(c.Min) {
		return errors.Errorf("datepicker.Validate", errors.KindConfig, "min date %s is after max date %s", c.Min, c.Max)
	}
	if c.Format < FormatYearMonthDay || c.Format > FormatYearMonth {
		return errors.Errorf("datepicker.Validate", errors.KindConfig, "unknown format %v", c.Format)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
