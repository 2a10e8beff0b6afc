package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
	"github.com/MrJamesThe3rd/molog/internal/transaction/memory"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		anchor    time.Time
		weekStart time.Weekday
		wantStart time.Time
		wantEnd   time.Time
		wantDays  int
	}{
		{
			name:      "January2026",
			anchor:    day(2026, 1, 21),
			weekStart: time.Sunday,
			wantStart: day(2025, 12, 28),
			wantEnd:   day(2026, 1, 31),
			wantDays:  35,
		},
		{
			name:      "February2026FitsFourWeeks",
			anchor:    day(2026, 2, 10),
			weekStart: time.Sunday,
			wantStart: day(2026, 2, 1),
			wantEnd:   day(2026, 2, 28),
			wantDays:  28,
		},
		{
			name:      "August2026SixWeeks",
			anchor:    day(2026, 8, 1),
			weekStart: time.Sunday,
			wantStart: day(2026, 7, 26),
			wantEnd:   day(2026, 9, 5),
			wantDays:  42,
		},
		{
			name:      "MondayStart",
			anchor:    day(2026, 1, 1),
			weekStart: time.Monday,
			wantStart: day(2025, 12, 29),
			wantEnd:   day(2026, 2, 1),
			wantDays:  35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := calendar.MonthRange(tt.anchor, tt.weekStart)

			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, tt.wantEnd, r.End)
			assert.Len(t, calendar.Days(r), tt.wantDays)
		})
	}
}

func TestBuildMonth_AlwaysWholeWeeksCoveringMonth(t *testing.T) {
	for _, ws := range []time.Weekday{time.Sunday, time.Monday, time.Saturday} {
		for y := 2024; y <= 2027; y++ {
			for m := 1; m <= 12; m++ {
				month := calendar.BuildMonth(day(y, m, 15), nil, calendar.Options{WeekStart: ws})

				require.Zero(t, len(month.Days)%7, "%d-%02d", y, m)
				assert.Equal(t, ws, month.Days[0].Date.Weekday())

				inMonth := 0
				for _, d := range month.Days {
					if d.InMonth {
						inMonth++
					}
				}

				assert.Equal(t, calendar.EndOfMonth(day(y, m, 1)).Day(), inMonth, "%d-%02d", y, m)
				assert.Len(t, month.Weeks(), len(month.Days)/7)
			}
		}
	}
}

func TestBuildMonth_SortsCellItems(t *testing.T) {
	d := day(2026, 1, 9)
	txs := []*transaction.Transaction{
		{ID: "b", Date: d, Amount: 100, Type: transaction.TypeExpense},
		{ID: "a", Date: d, Amount: 100, Type: transaction.TypeExpense},
		{ID: "c", Date: d, Amount: 900, Type: transaction.TypeExpense},
		{ID: "z", Date: d, Amount: 1, Type: transaction.TypeIncome},
		{ID: "y", Date: d, Amount: 50, Type: transaction.TypeIncome},
	}

	month := calendar.BuildMonth(d, txs, calendar.Options{Today: d})

	cell, ok := month.Find(d)
	require.True(t, ok)
	assert.True(t, cell.IsToday)

	ids := make([]string, 0, len(cell.Items))
	for _, tx := range cell.Items {
		ids = append(ids, tx.ID)
	}

	assert.Equal(t, []string{"y", "z", "c", "a", "b"}, ids)

	for i := 1; i < len(cell.Items); i++ {
		assert.LessOrEqual(t, calendar.CompareItems(cell.Items[i-1], cell.Items[i]), 0)
	}
}

func TestBuildMonth_OverflowScenario(t *testing.T) {
	store := memory.NewSeeded()
	r := calendar.MonthRange(day(2026, 1, 1), time.Sunday)

	txs, err := store.ListTransactions(t.Context(), r)
	require.NoError(t, err)

	month := calendar.BuildMonth(day(2026, 1, 1), txs, calendar.Options{})

	cell, ok := month.Find(day(2026, 1, 21))
	require.True(t, ok)
	require.Len(t, cell.Items, 13)

	c := cell.Cell(calendar.FixedCapacity)
	assert.Len(t, c.Visible, 3)
	assert.Equal(t, 10, c.Overflow)
	assert.Equal(t, "+10건", c.OverflowLabel())

	assert.Equal(t, "1", c.Visible[0].ID)
	assert.Equal(t, "extra-10", c.Visible[1].ID)
	assert.Equal(t, "extra-9", c.Visible[2].ID)
}

func TestDay_CellWithoutOverflow(t *testing.T) {
	d := calendar.Day{Items: []*transaction.Transaction{{ID: "1"}, {ID: "2"}, {ID: "3"}}}

	c := d.Cell(3)
	assert.Len(t, c.Visible, 3)
	assert.Zero(t, c.Overflow)
	assert.Empty(t, c.OverflowLabel())

	c = d.Cell(-2)
	assert.Empty(t, c.Visible)
	assert.Equal(t, 3, c.Overflow)
}

func TestCapacity(t *testing.T) {
	tests := []struct {
		name                      string
		cell, header, item, total int
		want                      int
	}{
		{name: "AllFit", cell: 100, header: 20, item: 20, total: 2, want: 2},
		{name: "ExactlyFull", cell: 100, header: 20, item: 20, total: 4, want: 4},
		{name: "ReservesLabelRow", cell: 100, header: 20, item: 20, total: 13, want: 3},
		{name: "TooShort", cell: 10, header: 20, item: 20, total: 5, want: 0},
		{name: "OneRowOverflow", cell: 40, header: 20, item: 20, total: 2, want: 0},
		{name: "Unmeasured", cell: 0, header: 0, item: 0, total: 13, want: calendar.FixedCapacity},
		{name: "Empty", cell: 100, header: 20, item: 20, total: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.Capacity(tt.cell, tt.header, tt.item, tt.total)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.GreaterOrEqual(t, tt.total-min(got, tt.total), 0)
		})
	}
}
