package transaction

import (
	"time"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type transactionResponse struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	Title     string           `json:"title"`
	Amount    int64            `json:"amount"`
	Type      transaction.Type `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		Date:      tx.Key(),
		Title:     tx.Title,
		Amount:    tx.Amount,
		Type:      tx.Type,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
