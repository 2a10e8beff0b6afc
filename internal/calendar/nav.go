package calendar

import (
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type ViewMode string

const (
	ViewMonth ViewMode = "month"
	ViewDay   ViewMode = "day"
)

func (m ViewMode) Valid() bool {
	return m == ViewMonth || m == ViewDay
}

// ParseViewMode accepts "month" or "day"; empty gives the day view.
func ParseViewMode(s string) (ViewMode, error) {
	if s == "" {
		return ViewDay, nil
	}

	m := ViewMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown view mode %q", s)
	}

	return m, nil
}

// Step moves date by delta months in the month view and by delta days in the day view.
// Month steps clamp to the last day of the target month.
func Step(date time.Time, mode ViewMode, delta int) time.Time {
	date = transaction.Day(date)

	if mode == ViewDay {
		return date.AddDate(0, 0, delta)
	}

	target := StartOfMonth(date).AddDate(0, delta, 0)
	day := min(date.Day(), EndOfMonth(target).Day())

	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

// Today is now truncated to its calendar day.
func Today(now func() time.Time) time.Time {
	return transaction.Day(now())
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Title is the header label, "2026년 1월" for months and "1월 21일 (수)" for days.
func Title(date time.Time, mode ViewMode) string {
	if mode == ViewMonth {
		return fmt.Sprintf("%d년 %d월", date.Year(), int(date.Month()))
	}

	return fmt.Sprintf("%d월 %d일 (%s)", int(date.Month()), date.Day(), WeekdayName(date.Weekday()))
}
