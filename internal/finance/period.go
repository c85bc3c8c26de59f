package finance

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MonthLayout is the selector format accepted by ResolvePeriod.
const MonthLayout = "2006-01"

// DefaultPayDay is used when settings carry no usable pay day.
const DefaultPayDay = 5

var ErrInvalidMonth = errors.New("month must be formatted as YYYY-MM")

// Window is an inclusive time range. The zero Window matches everything.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w Window) IsZero() bool { return w.Start.IsZero() && w.End.IsZero() }

func (w Window) Contains(t time.Time) bool {
	if w.IsZero() {
		return true
	}
	return !t.Before(w.Start) && !t.After(w.End)
}

// PeriodWindow is the selected calendar month, the month before it and the
// countdown to the next pay day measured from the real current date.
type PeriodWindow struct {
	Month               string `json:"month"`
	Current             Window `json:"current"`
	Previous            Window `json:"previous"`
	DaysUntilNextPayDay int    `json:"days_until_next_pay_day"`
}

// ResolvePeriod resolves a "YYYY-MM" selector (empty means the month of now)
// into the current and previous month windows in now's location.
func ResolvePeriod(selector string, payDay int, now time.Time) (PeriodWindow, error) {
	loc := now.Location()
	year, month := now.Year(), now.Month()

	if sel := strings.TrimSpace(selector); sel != "" {
		t, err := time.ParseInLocation(MonthLayout, sel, loc)
		if err != nil {
			return PeriodWindow{}, fmt.Errorf("%w: %q", ErrInvalidMonth, selector)
		}
		year, month = t.Year(), t.Month()
	}

	current := MonthWindow(year, month, loc)
	return PeriodWindow{
		Month:               current.Start.Format(MonthLayout),
		Current:             current,
		Previous:            MonthWindow(year, month-1, loc),
		DaysUntilNextPayDay: DaysUntilPayDay(payDay, now),
	}, nil
}

// MonthWindow returns the first and last instant of the month. Out of range
// months are normalized, so month 0 is December of the previous year.
func MonthWindow(year int, month time.Month, loc *time.Location) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	next := time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: next.Add(-time.Nanosecond)}
}

// NormalizePayDay maps unset or non-positive pay days to DefaultPayDay and
// caps anything past 31.
func NormalizePayDay(payDay int) int {
	switch {
	case payDay < 1:
		return DefaultPayDay
	case payDay > 31:
		return 31
	}
	return payDay
}

// DaysUntilPayDay counts calendar days from now to the next pay day. A pay
// day that is today or already past rolls to next month. A pay day beyond the
// length of a month falls on that month's last day. The result is never below 1.
func DaysUntilPayDay(payDay int, now time.Time) int {
	payDay = NormalizePayDay(payDay)
	y, m, d := now.Date()

	target := payDate(y, m, payDay)
	if d >= target.Day() {
		target = payDate(y, m+1, payDay)
	}

	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := int(target.Sub(today).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

func payDate(year int, month time.Month, payDay int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	day := min(payDay, DaysIn(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
