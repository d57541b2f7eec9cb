package datepicker

import (
	"fmt"
	"time"

	"github.com/go-drift/wheel/pkg/errors"
	"github.com/go-drift/wheel/pkg/wheel"
)

// Picker keeps three wheels showing a valid date within the configured range.
//
// The picker installs its own change listeners on the wheels. Range updates
// run synchronously inside those listeners, on the caller's goroutine.
type Picker struct {
	cfg      Config
	listener Listener

	year  *wheel.Wheel
	month *wheel.Wheel
	day   *wheel.Wheel

	selected Date
	// syncing suppresses wheel notifications caused by the picker's own
	// SetEntries and SetCurrentIndex calls.
	syncing bool
}

// New binds a picker to the wheels. It fails when the configuration is
// invalid or a wheel the format shows is nil.
func New(cfg Config, year, month, day *wheel.Wheel, listener Listener) (*Picker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, w := range []struct {
		name   string
		wheel  *wheel.Wheel
		needed bool
	}{
		{"year", year, cfg.Format.hasYear()},
		{"month", month, cfg.Format.hasMonth()},
		{"day", day, cfg.Format.hasDay()},
	} {
		if w.needed && w.wheel == nil {
			return nil, errors.Errorf("datepicker.New", errors.KindConfig, "%s wheel is required for the %v format", w.name, cfg.Format)
		}
	}

	p := &Picker{
		cfg:      cfg,
		listener: listener,
		year:     year,
		month:    month,
		day:      day,
		selected: cfg.Initial,
	}
	p.clampSelected()
	p.applyColors()

	p.syncing = true
	p.fillYears()
	p.fillMonths()
	p.syncing = false
	p.updateDays(false)

	if year != nil {
		year.SetOnChange(p.onYearChanged)
	}
	if month != nil {
		month.SetOnChange(p.onMonthChanged)
	}
	if day != nil {
		day.SetOnChange(p.onDayChanged)
	}
	return p, nil
}

// Config returns the picker's configuration.
func (p *Picker) Config() Config { return p.cfg }

// SelectedDate returns the selected date. While the day wheel is settling
// the day is the one it will land on.
func (p *Picker) SelectedDate() Date {
	d := p.selected
	if p.day != nil && p.day.Scroller().Phase() == wheel.PhaseJustifying {
		d.Day = p.minDay() + p.day.TargetIndex()
	}
	return d
}

// Selected returns SelectedDate at local midnight.
func (p *Picker) Selected() time.Time { return p.SelectedDate().Time(time.Local) }

// SetSelected moves all wheels to d, clamped into range, without
// animation.
func (p *Picker) SetSelected(d Date) {
	p.selected = Normalize(d.Year, d.Month, d.Day)
	p.clampSelected()
	p.syncing = true
	if p.year != nil {
		p.year.SetCurrentIndex(p.selected.Year-p.cfg.Min.Year, false)
	}
	p.fillMonths()
	p.syncing = false
	p.updateDays(false)
}

// Confirm reports the selected date to the listener and returns it.
func (p *Picker) Confirm() Date {
	d := p.SelectedDate()
	if p.listener != nil {
		p.listener(d.Time(time.Local), d.Year, d.Month, d.Day)
	}
	return d
}

func (p *Picker) onYearChanged(_, index int) {
	if p.syncing {
		return
	}
	p.selected.Year = p.cfg.Min.Year + index
	p.updateMonths()
}

func (p *Picker) onMonthChanged(_, index int) {
	if p.syncing {
		return
	}
	p.selected.Month = p.minMonth() + index
	p.updateDays(true)
}

func (p *Picker) onDayChanged(_, index int) {
	if p.syncing {
		return
	}
	p.selected.Day = p.minDay() + index
}

// updateMonths re-derives the month range after a year change.
func (p *Picker) updateMonths() {
	p.syncing = true
	p.fillMonths()
	p.syncing = false
	p.updateDays(true)
}

// updateDays re-derives the day range after a year or month change. When
// the selected day falls outside the new range it is clamped, and the wheel
// animates there if animateClamp is set.
func (p *Picker) updateDays(animateClamp bool) {
	lo, hi := p.minDay(), p.maxDay()
	clamped := p.selected.Day < lo || p.selected.Day > hi
	p.selected.Day = clamp(p.selected.Day, lo, hi)
	if p.day == nil {
		return
	}
	p.syncing = true
	p.day.SetEntries(labels(p.cfg.Labels.Day, lo, hi)...)
	p.syncing = false
	index := p.selected.Day - lo
	if clamped && animateClamp {
		p.day.SetCurrentIndex(index, true)
		return
	}
	p.syncing = true
	p.day.SetCurrentIndex(index, false)
	p.syncing = false
}

func (p *Picker) fillYears() {
	if p.year == nil {
		return
	}
	p.year.SetEntries(labels(p.cfg.Labels.Year, p.cfg.Min.Year, p.cfg.Max.Year)...)
	p.year.SetCurrentIndex(p.selected.Year-p.cfg.Min.Year, false)
}

// fillMonths clamps the selected month into the year's range and refills the
// month wheel.
func (p *Picker) fillMonths() {
	lo, hi := p.minMonth(), p.maxMonth()
	p.selected.Month = clamp(p.selected.Month, lo, hi)
	if p.month == nil {
		return
	}
	p.month.SetEntries(labels(p.cfg.Labels.Month, lo, hi)...)
	p.month.SetCurrentIndex(p.selected.Month-lo, false)
}

func (p *Picker) clampSelected() {
	s := &p.selected
	s.Year = clamp(s.Year, p.cfg.Min.Year, p.cfg.Max.Year)
	s.Month = clamp(s.Month, p.minMonth(), p.maxMonth())
	s.Day = clamp(s.Day, p.minDay(), p.maxDay())
}

func (p *Picker) applyColors() {
	selected := p.cfg.SelectedTextColor
	if selected == nil {
		selected = p.cfg.PrimaryColor
	}
	for _, w := range []*wheel.Wheel{p.year, p.month, p.day} {
		if w == nil {
			continue
		}
		if selected != nil {
			w.SetSelectedTextColor(*selected)
		}
		if p.cfg.TextColor != nil {
			w.SetTextColor(*p.cfg.TextColor)
		}
	}
}

// The min month applies only in the min year, the min day only in the min
// year and month; likewise for the max bounds.

func (p *Picker) minMonth() int {
	if p.selected.Year == p.cfg.Min.Year {
		return p.cfg.Min.Month
	}
	return 1
}

func (p *Picker) maxMonth() int {
	if p.selected.Year == p.cfg.Max.Year {
		return p.cfg.Max.Month
	}
	return 12
}

func (p *Picker) minDay() int {
	if p.selected.Year == p.cfg.Min.Year && p.selected.Month == p.cfg.Min.Month {
		return p.cfg.Min.Day
	}
	return 1
}

func (p *Picker) maxDay() int {
	days := DaysInMonth(p.selected.Year, p.selected.Month)
	if p.selected.Year == p.cfg.Max.Year && p.selected.Month == p.cfg.Max.Month {
		return min(p.cfg.Max.Day, days)
	}
	return days
}

func labels(format string, lo, hi int) []string {
	if format == "" {
		format = "%d"
	}
	out := make([]string, 0, max(0, hi-lo+1))
	for v := lo; v <= hi; v++ {
		out = append(out, fmt.Sprintf(format, v))
	}
	return out
}
