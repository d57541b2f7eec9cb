package datepicker_test

import (
	"fmt"
	"time"

	"github.com/go-drift/wheel/pkg/datepicker"
	"github.com/go-drift/wheel/pkg/wheel"
)

func ExampleBuilder() {
	years := wheel.New(wheel.DefaultStyle())
	months := wheel.New(wheel.DefaultStyle())
	days := wheel.New(wheel.DefaultStyle())

	picker, err := datepicker.NewBuilder().
		Title("Start date").
		YearRange(2020, 2030).
		InitialDate(2024, 3, 15).
		OnDateSelected(func(_ time.Time, y, m, d int) {
			fmt.Printf("picked %d-%02d-%02d\n", y, m, d)
		}).
		Build(years, months, days)
	if err != nil {
		fmt.Println(err)
		return
	}

	// The user scrolls the month wheel to April.
	months.SetCurrentIndex(3, false)
	picker.Confirm()
	// Output:
	// picked 2024-04-15
}
