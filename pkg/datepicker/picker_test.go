package datepicker

import (
	"reflect"
	"testing"
	"time"

	"github.com/go-drift/wheel/pkg/errors"
	"github.com/go-drift/wheel/pkg/rendering"
	wheeltest "github.com/go-drift/wheel/pkg/testing"
	"github.com/go-drift/wheel/pkg/wheel"
)

func newWheels() (year, month, day *wheel.Wheel) {
	return wheel.New(wheel.DefaultStyle()), wheel.New(wheel.DefaultStyle()), wheel.New(wheel.DefaultStyle())
}

func settle(t *testing.T, clk *wheeltest.FakeClock) {
	t.Helper()
	if err := wheeltest.PumpAndSettle(clk, 2*time.Second); err != nil {
		t.Fatal(err)
	}
}

func TestBuilderDefaults(t *testing.T) {
	wheeltest.UseFakeClock(t)
	cfg := NewBuilder().Config()
	if cfg.Initial != (Date{2024, 1, 1}) {
		t.Errorf("Initial = %v, want today", cfg.Initial)
	}
	if cfg.Min != (Date{1950, 1, 1}) || cfg.Max != (Date{2050, 12, 31}) {
		t.Errorf("range = %v..%v", cfg.Min, cfg.Max)
	}
	if !cfg.ShowTitle || cfg.ConfirmText == "" || cfg.CancelText == "" {
		t.Errorf("dialog text defaults missing: %+v", cfg)
	}
}

func TestBuildRequiresWheels(t *testing.T) {
	wheeltest.UseFakeClock(t)
	y, m, d := newWheels()
	tests := []struct {
		name    string
		format  DateFormat
		y, m, d *wheel.Wheel
		wantErr bool
	}{
		{"all present", FormatYearMonthDay, y, m, d, false},
		{"missing year", FormatYearMonthDay, nil, m, d, true},
		{"missing day", FormatYearMonthDay, y, m, nil, true},
		{"month-day without year", FormatMonthDay, nil, m, d, false},
		{"year-month without day", FormatYearMonth, y, m, nil, false},
		{"year-month without month", FormatYearMonth, y, nil, d, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder().Format(tt.format).Build(tt.y, tt.m, tt.d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if we, ok := err.(*errors.WheelError); !ok || we.Kind != errors.KindConfig {
					t.Errorf("error = %#v, want a config WheelError", err)
				}
			}
		})
	}
}

func TestBuildRejectsInvertedRange(t *testing.T) {
	y, m, d := newWheels()
	_, err := NewBuilder().MinDate(2030, 1, 1).MaxDate(2020, 1, 1).Build(y, m, d)
	if err == nil {
		t.Fatal("expected an error for min after max")
	}
}

func TestPickerFillsWheels(t *testing.T) {
	wheeltest.UseFakeClock(t)
	y, m, d := newWheels()
	p, err := NewBuilder().
		YearRange(2020, 2025).
		InitialDate(2024, 3, 15).
		Labels(Labels{Year: "%d年", Month: "%d月", Day: "%d日"}).
		Build(y, m, d)
	if err != nil {
		t.Fatal(err)
	}

	if y.ItemSize() != 6 || m.ItemSize() != 12 || d.ItemSize() != 31 {
		t.Errorf("sizes = %d/%d/%d, want 6/12/31", y.ItemSize(), m.ItemSize(), d.ItemSize())
	}
	for _, tt := range []struct {
		w    *wheel.Wheel
		want string
	}{{y, "2024年"}, {m, "3月"}, {d, "15日"}} {
		if got, _ := tt.w.CurrentItem(); got != tt.want {
			t.Errorf("CurrentItem() = %q, want %q", got, tt.want)
		}
	}
	if p.SelectedDate() != (Date{2024, 3, 15}) {
		t.Errorf("SelectedDate() = %v", p.SelectedDate())
	}
}

func TestPickerClampsFebruary(t *testing.T) {
	tests := []struct {
		name    string
		initial Date
		move    func(y, m, d *wheel.Wheel)
		want    Date
	}{
		{
			name:    "leap year",
			initial: Date{2024, 1, 31},
			move:    func(_, m, _ *wheel.Wheel) { m.SetCurrentIndex(1, false) },
			want:    Date{2024, 2, 29},
		},
		{
			name:    "common year",
			initial: Date{2023, 1, 31},
			move:    func(_, m, _ *wheel.Wheel) { m.SetCurrentIndex(1, false) },
			want:    Date{2023, 2, 28},
		},
		{
			name:    "leap day into common year",
			initial: Date{2024, 2, 29},
			move:    func(y, _, _ *wheel.Wheel) { y.SetCurrentIndex(2023-1950, false) },
			want:    Date{2023, 2, 28},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := wheeltest.UseFakeClock(t)
			y, m, d := newWheels()
			p, err := NewBuilder().InitialDate(tt.initial.Year, tt.initial.Month, tt.initial.Day).Build(y, m, d)
			if err != nil {
				t.Fatal(err)
			}
			tt.move(y, m, d)
			if got := p.SelectedDate(); got != tt.want {
				t.Errorf("SelectedDate() = %v, want %v", got, tt.want)
			}
			if d.ItemSize() != tt.want.Day {
				t.Errorf("day wheel has %d entries, want %d", d.ItemSize(), tt.want.Day)
			}

			settle(t, clk)
			if d.CurrentIndex() != tt.want.Day-1 {
				t.Errorf("day wheel index = %d, want %d", d.CurrentIndex(), tt.want.Day-1)
			}
			if got := p.SelectedDate(); got != tt.want {
				t.Errorf("after settling SelectedDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickerKeepsDayAcrossMonths(t *testing.T) {
	wheeltest.UseFakeClock(t)
	y, m, d := newWheels()
	p, err := NewBuilder().InitialDate(2024, 3, 15).Build(y, m, d)
	if err != nil {
		t.Fatal(err)
	}

	m.SetCurrentIndex(3, false)
	if got := p.SelectedDate(); got != (Date{2024, 4, 15}) {
		t.Errorf("SelectedDate() = %v, want 2024-04-15", got)
	}
	if d.CurrentIndex() != 14 || d.Scroller().IsAnimating() {
		t.Errorf("day wheel index = %d animating=%v, want 14 at rest", d.CurrentIndex(), d.Scroller().IsAnimating())
	}
}

func TestPickerRangeBounds(t *testing.T) {
	clk := wheeltest.UseFakeClock(t)
	y, m, d := newWheels()
	p, err := NewBuilder().
		MinDate(2020, 3, 10).
		MaxDate(2021, 10, 20).
		InitialDate(2020, 1, 1).
		Build(y, m, d)
	if err != nil {
		t.Fatal(err)
	}

	check := func(step string, want Date, months, days []string) {
		t.Helper()
		if got := p.SelectedDate(); got != want {
			t.Errorf("%s: SelectedDate() = %v, want %v", step, got, want)
		}
		if got := []string{m.Entries()[0], m.Entries()[m.ItemSize()-1]}; !reflect.DeepEqual(got, months) {
			t.Errorf("%s: month range = %v, want %v", step, got, months)
		}
		if got := []string{d.Entries()[0], d.Entries()[d.ItemSize()-1]}; !reflect.DeepEqual(got, days) {
			t.Errorf("%s: day range = %v, want %v", step, got, days)
		}
	}

	check("initial clamped to min", Date{2020, 3, 10}, []string{"3", "12"}, []string{"10", "31"})
	if y.ItemSize() != 2 {
		t.Errorf("year wheel has %d entries, want 2", y.ItemSize())
	}

	y.SetCurrentIndex(1, false)
	check("max year", Date{2021, 3, 10}, []string{"1", "10"}, []string{"1", "31"})

	m.SetCurrentIndex(9, false)
	check("max month", Date{2021, 10, 10}, []string{"1", "10"}, []string{"1", "20"})

	d.SetCurrentIndex(19, false)
	y.SetCurrentIndex(0, false)
	check("back to min year", Date{2020, 10, 20}, []string{"3", "12"}, []string{"1", "31"})

	p.SetSelected(Date{2021, 1, 5})
	check("set selected", Date{2021, 1, 5}, []string{"1", "10"}, []string{"1", "31"})

	y.SetCurrentIndex(0, false)
	check("min year clamps month and day", Date{2020, 3, 10}, []string{"3", "12"}, []string{"10", "31"})
	settle(t, clk)
	if m.CurrentIndex() != 0 || d.CurrentIndex() != 0 {
		t.Errorf("indices = %d/%d, want 0/0", m.CurrentIndex(), d.CurrentIndex())
	}
}

func TestPickerConfirm(t *testing.T) {
	wheeltest.UseFakeClock(t)
	y, m, d := newWheels()

	type call struct {
		date             time.Time
		year, month, day int
	}
	var calls []call
	p, err := NewBuilder().
		InitialDate(2024, 3, 15).
		OnDateSelected(func(date time.Time, year, month, day int) {
			calls = append(calls, call{date, year, month, day})
		}).
		Build(y, m, d)
	if err != nil {
		t.Fatal(err)
	}

	d.SetCurrentIndex(19, false)
	if got := p.Confirm(); got != (Date{2024, 3, 20}) {
		t.Errorf("Confirm() = %v", got)
	}
	want := []call{{time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local), 2024, 3, 20}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("listener calls = %v, want %v", calls, want)
	}
	if !p.Selected().Equal(want[0].date) {
		t.Errorf("Selected() = %v", p.Selected())
	}
}

func TestPickerConfirmDuringDayClamp(t *testing.T) {
	clk := wheeltest.UseFakeClock(t)
	y, m, d := newWheels()

	var days []int
	p, err := NewBuilder().
		InitialDate(2024, 1, 31).
		OnDateSelected(func(_ time.Time, _, _, day int) { days = append(days, day) }).
		Build(y, m, d)
	if err != nil {
		t.Fatal(err)
	}

	m.SetCurrentIndex(1, false)
	wheeltest.PumpFrames(clk, 5)
	if d.Scroller().Phase() != wheel.PhaseJustifying {
		t.Fatalf("day wheel phase = %v, want justifying", d.Scroller().Phase())
	}
	if idx := d.CurrentIndex(); idx == 28 {
		t.Fatal("day wheel already settled; clamp animation not observed")
	}
	if p.selected.Day == 29 {
		t.Error("intermediate day notifications should have moved the tracked day")
	}

	want := Date{2024, 2, 29}
	if got := p.SelectedDate(); got != want {
		t.Errorf("SelectedDate() mid-animation = %v, want %v", got, want)
	}
	if got := p.Confirm(); got != want {
		t.Errorf("Confirm() mid-animation = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(days, []int{29}) {
		t.Errorf("listener days = %v, want [29]", days)
	}

	settle(t, clk)
	if got := p.SelectedDate(); got != want {
		t.Errorf("after settling SelectedDate() = %v, want %v", got, want)
	}
}

func TestPickerMonthDayFormat(t *testing.T) {
	clk := wheeltest.UseFakeClock(t)
	_, m, d := newWheels()
	p, err := NewBuilder().Format(FormatMonthDay).InitialDate(2023, 5, 31).Build(nil, m, d)
	if err != nil {
		t.Fatal(err)
	}
	m.SetCurrentIndex(1, false)
	if got := p.SelectedDate(); got != (Date{2023, 2, 28}) {
		t.Errorf("SelectedDate() = %v, want 2023-02-28", got)
	}
	settle(t, clk)
}

func TestPickerColors(t *testing.T) {
	wheeltest.UseFakeClock(t)
	y, m, d := newWheels()
	primary := rendering.RGB(0x21, 0x96, 0xF3)
	text := rendering.RGB(0x80, 0x80, 0x80)
	if _, err := NewBuilder().PrimaryColor(primary).TextColor(text).Build(y, m, d); err != nil {
		t.Fatal(err)
	}
	for _, w := range []*wheel.Wheel{y, m, d} {
		if s := w.Style(); s.SelectedTextColor != primary || s.TextColor != text {
			t.Errorf("style colors = %s/%s", s.SelectedTextColor.Hex(), s.TextColor.Hex())
		}
	}

	override := rendering.RGB(0xFF, 0, 0)
	y2, m2, d2 := newWheels()
	if _, err := NewBuilder().PrimaryColor(primary).SelectedTextColor(override).Build(y2, m2, d2); err != nil {
		t.Fatal(err)
	}
	if y2.Style().SelectedTextColor != override {
		t.Error("SelectedTextColor should override PrimaryColor")
	}
}
