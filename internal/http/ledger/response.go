package ledger

import (
	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type itemResponse struct {
	ID      string           `json:"id"`
	Date    string           `json:"date"`
	Title   string           `json:"title"`
	Amount  int64            `json:"amount"`
	Type    transaction.Type `json:"type"`
	Display string           `json:"display"`
}

type summaryResponse struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Net     int64 `json:"net"`
}

type cellResponse struct {
	Date          string         `json:"date"`
	InMonth       bool           `json:"in_month"`
	IsToday       bool           `json:"is_today"`
	Items         []itemResponse `json:"items"`
	Total         int            `json:"total"`
	Overflow      int            `json:"overflow"`
	OverflowLabel string         `json:"overflow_label,omitempty"`
}

type monthResponse struct {
	Title    string          `json:"title"`
	Anchor   string          `json:"anchor"`
	Weekdays []string        `json:"weekdays"`
	Days     []cellResponse  `json:"days"`
	Summary  summaryResponse `json:"summary"`
}

type stripResponse struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Selected bool   `json:"selected"`
	IsToday  bool   `json:"is_today"`
	HasData  bool   `json:"has_data"`
}

type dayResponse struct {
	Date       string          `json:"date"`
	Title      string          `json:"title"`
	Items      []itemResponse  `json:"items"`
	Summary    summaryResponse `json:"summary"`
	Strip      []stripResponse `json:"strip"`
	ShowLatest bool            `json:"show_latest"`
}

type latestResponse struct {
	Date string `json:"date"`
}

func toItem(tx *transaction.Transaction) itemResponse {
	return itemResponse{
		ID:      tx.ID,
		Date:    tx.Key(),
		Title:   tx.Title,
		Amount:  tx.Amount,
		Type:    tx.Type,
		Display: calendar.FormatSigned(tx.Type, tx.Amount),
	}
}

func toItems(txs []*transaction.Transaction) []itemResponse {
	items := make([]itemResponse, len(txs))
	for i, tx := range txs {
		items[i] = toItem(tx)
	}

	return items
}

func toSummary(s calendar.Summary) summaryResponse {
	return summaryResponse{Income: s.Income, Expense: s.Expense, Net: s.Net()}
}
