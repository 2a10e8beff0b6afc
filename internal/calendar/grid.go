// Package calendar lays ledger entries out on a month grid and a single-day view.
package calendar

import (
	"cmp"
	"slices"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

// FixedCapacity is the number of entries a month cell shows when no measured
// height is available.
const FixedCapacity = 3

type Options struct {
	WeekStart time.Weekday
	Today     time.Time
}

type Day struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Items   []*transaction.Transaction
}

// Key is the yyyy-MM-dd drop-target id of the cell.
func (d Day) Key() string {
	return d.Date.Format(time.DateOnly)
}

type Month struct {
	Anchor time.Time
	Days   []Day
}

// Weeks splits the grid into rows of seven days.
func (m Month) Weeks() [][]Day {
	weeks := make([][]Day, 0, len(m.Days)/7)
	for i := 0; i+7 <= len(m.Days); i += 7 {
		weeks = append(weeks, m.Days[i:i+7])
	}

	return weeks
}

// Find returns the grid cell for date.
func (m Month) Find(date time.Time) (Day, bool) {
	date = transaction.Day(date)
	for _, d := range m.Days {
		if d.Date.Equal(date) {
			return d, true
		}
	}

	return Day{}, false
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	t = transaction.Day(t)
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7

	return t.AddDate(0, 0, -offset)
}

func EndOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	return StartOfWeek(t, weekStart).AddDate(0, 0, 6)
}

// MonthRange spans the whole weeks covering anchor's month: from the first
// weekStart on or before the 1st through the last day of the week holding the
// month's final day.
func MonthRange(anchor time.Time, weekStart time.Weekday) transaction.DateRange {
	return transaction.DateRange{
		Start: StartOfWeek(StartOfMonth(anchor), weekStart),
		End:   EndOfWeek(EndOfMonth(anchor), weekStart),
	}
}

// MonthBounds is the first and last day of anchor's month.
func MonthBounds(anchor time.Time) transaction.DateRange {
	return transaction.DateRange{Start: StartOfMonth(anchor), End: EndOfMonth(anchor)}
}

// Days enumerates every day of r, both ends included.
func Days(r transaction.DateRange) []time.Time {
	var days []time.Time
	for d := transaction.Day(r.Start); !d.After(transaction.Day(r.End)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return days
}

// GroupByDate buckets txs by their yyyy-MM-dd key. Bucket order follows txs.
func GroupByDate(txs []*transaction.Transaction) map[string][]*transaction.Transaction {
	groups := make(map[string][]*transaction.Transaction)
	for _, tx := range txs {
		groups[tx.Key()] = append(groups[tx.Key()], tx)
	}

	return groups
}

// CompareItems orders income before expense, then larger amounts first, then by id.
func CompareItems(a, b *transaction.Transaction) int {
	if a.Type != b.Type {
		if a.Type == transaction.TypeIncome {
			return -1
		}

		if b.Type == transaction.TypeIncome {
			return 1
		}
	}

	if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
		return c
	}

	return cmp.Compare(a.ID, b.ID)
}

// SortItems sorts txs in place in cell order.
func SortItems(txs []*transaction.Transaction) {
	slices.SortStableFunc(txs, CompareItems)
}

// SortByDate sorts txs by date and within a day in cell order.
func SortByDate(txs []*transaction.Transaction) {
	slices.SortStableFunc(txs, func(a, b *transaction.Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}

		return CompareItems(a, b)
	})
}

// BuildMonth lays txs out on the grid of anchor's month. Entries outside the
// grid range are ignored.
func BuildMonth(anchor time.Time, txs []*transaction.Transaction, opts Options) Month {
	r := MonthRange(anchor, opts.WeekStart)
	groups := GroupByDate(txs)
	month := StartOfMonth(anchor)
	today := transaction.Day(opts.Today)

	dates := Days(r)
	m := Month{Anchor: month, Days: make([]Day, 0, len(dates))}

	for _, d := range dates {
		items := slices.Clone(groups[d.Format(time.DateOnly)])
		SortItems(items)

		m.Days = append(m.Days, Day{
			Date:    d,
			InMonth: d.Month() == month.Month() && d.Year() == month.Year(),
			IsToday: !opts.Today.IsZero() && d.Equal(today),
			Items:   items,
		})
	}

	return m
}
