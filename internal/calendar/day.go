package calendar

import (
	"math"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

// Summary holds income and expense totals. Both are non-negative.
type Summary struct {
	Income  int64
	Expense int64
}

func (s Summary) Net() int64 {
	return s.Income - s.Expense
}

func (s *Summary) add(tx *transaction.Transaction) {
	switch tx.Type {
	case transaction.TypeIncome:
		s.Income = addCapped(s.Income, tx.Amount)
	case transaction.TypeExpense:
		s.Expense = addCapped(s.Expense, tx.Amount)
	}
}

// addCapped adds two non-negative amounts, stopping at math.MaxInt64.
func addCapped(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}

	return a + b
}

// Summarize totals the entries of txs that fall inside r.
func Summarize(txs []*transaction.Transaction, r transaction.DateRange) Summary {
	var s Summary

	for _, tx := range txs {
		if r.Contains(tx.Date) {
			s.add(tx)
		}
	}

	return s
}

type DayView struct {
	Date  time.Time
	Items []*transaction.Transaction
	Summary
}

// BuildDay keeps the entries of txs dated on date, in their given order.
func BuildDay(date time.Time, txs []*transaction.Transaction) DayView {
	date = transaction.Day(date)
	v := DayView{Date: date}

	for _, tx := range txs {
		if transaction.Day(tx.Date).Equal(date) {
			v.Items = append(v.Items, tx)
			v.add(tx)
		}
	}

	return v
}

func (v DayView) Empty() bool {
	return len(v.Items) == 0
}

type StripDay struct {
	Date     time.Time
	Selected bool
	IsToday  bool
	HasData  bool
}

// WeekStrip is the seven days of the week holding date.
func WeekStrip(date time.Time, txs []*transaction.Transaction, weekStart time.Weekday, today time.Time) []StripDay {
	date = transaction.Day(date)
	today = transaction.Day(today)
	start := StartOfWeek(date, weekStart)
	groups := GroupByDate(txs)

	strip := make([]StripDay, 7)
	for i := range strip {
		d := start.AddDate(0, 0, i)
		strip[i] = StripDay{
			Date:     d,
			Selected: d.Equal(date),
			IsToday:  d.Equal(today),
			HasData:  len(groups[d.Format(time.DateOnly)]) > 0,
		}
	}

	return strip
}

var weekdayNames = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// WeekdayName is the one-letter Korean weekday label.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// WeekdayHeader lists the weekday labels in grid column order.
func WeekdayHeader(weekStart time.Weekday) []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = weekdayNames[(int(weekStart)+i)%7]
	}

	return names
}
