package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimeframe_Range(t *testing.T) {
	wed := time.Date(2026, 1, 21, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		tf        Timeframe
		today     time.Time
		weekStart time.Weekday
		want      transaction.DateRange
	}{
		{"this month", TimeframeThisMonth, wed, time.Sunday, transaction.DateRange{Start: date(2026, 1, 1), End: date(2026, 1, 31)}},
		{"last month clamps", TimeframeLastMonth, date(2026, 3, 31), time.Sunday, transaction.DateRange{Start: date(2026, 2, 1), End: date(2026, 2, 28)}},
		{"last month over new year", TimeframeLastMonth, wed, time.Sunday, transaction.DateRange{Start: date(2025, 12, 1), End: date(2025, 12, 31)}},
		{"this week sunday", TimeframeThisWeek, wed, time.Sunday, transaction.DateRange{Start: date(2026, 1, 18), End: date(2026, 1, 24)}},
		{"this week monday", TimeframeThisWeek, wed, time.Monday, transaction.DateRange{Start: date(2026, 1, 19), End: date(2026, 1, 25)}},
		{"last week", TimeframeLastWeek, wed, time.Sunday, transaction.DateRange{Start: date(2026, 1, 11), End: date(2026, 1, 17)}},
		{"all", TimeframeAll, wed, time.Sunday, transaction.DateRange{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tf.Range(tt.today, tt.weekStart))
		})
	}
}

func TestParseCustomRange(t *testing.T) {
	r, err := parseCustomRange("2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, transaction.DateRange{Start: date(2026, 1, 1), End: date(2026, 1, 31)}, r)

	r, err = parseCustomRange("", " 2026-01-31 ")
	require.NoError(t, err)
	assert.True(t, r.Start.IsZero())
	assert.Equal(t, date(2026, 1, 31), r.End)

	_, err = parseCustomRange("2026-13-01", "")
	assert.Error(t, err)

	_, err = parseCustomRange("2026-02-01", "2026-01-31")
	assert.Error(t, err)
}
