package view

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

const dbTimeout = 5 * time.Second

// FormatAmount groups a won amount and appends the currency: "12,000원".
func FormatAmount(amount int64) string {
	return calendar.FormatAmount(amount) + "원"
}

// FormatSigned is FormatAmount with the +/- sign of the entry type.
func FormatSigned(typ transaction.Type, amount int64) string {
	return calendar.FormatSigned(typ, amount) + "원"
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
