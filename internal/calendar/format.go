package calendar

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

var printer = message.NewPrinter(language.Korean)

// FormatAmount groups digits the Korean way: 3500000 becomes "3,500,000".
func FormatAmount(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// FormatSigned prefixes the grouped amount with + for income and - for expense.
func FormatSigned(typ transaction.Type, amount int64) string {
	if typ == transaction.TypeIncome {
		return "+" + FormatAmount(amount)
	}

	return "-" + FormatAmount(amount)
}

// TypeLabel is the Korean label for typ.
func TypeLabel(typ transaction.Type) string {
	if typ == transaction.TypeIncome {
		return "수입"
	}

	return "지출"
}

// DisplayTitle falls back to a placeholder for untitled entries.
func DisplayTitle(tx *transaction.Transaction) string {
	if tx.Title == "" {
		return "내역 없음"
	}

	return tx.Title
}
