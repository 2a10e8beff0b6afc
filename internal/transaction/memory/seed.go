package memory

import (
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Sample returns the demo ledger: a week of January 2026, a monthly salary and
// food bill through 2025, and ten small expenses piled onto 2026-01-21 so that
// day overflows its month cell.
func Sample() []*transaction.Transaction {
	txs := []*transaction.Transaction{
		{ID: "1", Date: date(2026, 1, 21), Title: "점심 식사", Amount: 12000, Type: transaction.TypeExpense},
		{ID: "2", Date: date(2026, 1, 21), Title: "편의점 쇼핑", Amount: 4500, Type: transaction.TypeExpense},
		{ID: "3", Date: date(2026, 1, 21), Title: "스타벅스 커피", Amount: 5000, Type: transaction.TypeExpense},
		{ID: "4", Date: date(2026, 1, 20), Title: "정기 월급", Amount: 3500000, Type: transaction.TypeIncome},
		{ID: "5", Date: date(2026, 1, 15), Title: "관리비", Amount: 250000, Type: transaction.TypeExpense},
		{ID: "6", Date: date(2026, 1, 10), Title: "친구 모임", Amount: 85000, Type: transaction.TypeExpense},
		{ID: "7", Date: date(2026, 1, 5), Title: "통신비", Amount: 65000, Type: transaction.TypeExpense},
		{ID: "8", Date: date(2026, 1, 1), Title: "새해 용돈", Amount: 200000, Type: transaction.TypeIncome},
	}

	for i := 1; i <= 12; i++ {
		m := time.Month(i)
		txs = append(txs,
			&transaction.Transaction{
				ID: fmt.Sprintf("2025-%d", i), Date: date(2025, m, 15),
				Title: fmt.Sprintf("%d월 월급", i), Amount: 3000000, Type: transaction.TypeIncome,
			},
			&transaction.Transaction{
				ID: fmt.Sprintf("2025-%d-ex", i), Date: date(2025, m, 20),
				Title: fmt.Sprintf("%d월 식비", i), Amount: 450000, Type: transaction.TypeExpense,
			},
		)
	}

	for i := 1; i <= 10; i++ {
		txs = append(txs, &transaction.Transaction{
			ID: fmt.Sprintf("extra-%d", i), Date: date(2026, 1, 21),
			Title: fmt.Sprintf("추가 지출 %d", i), Amount: int64(i) * 1000, Type: transaction.TypeExpense,
		})
	}

	return txs
}

// NewSeeded returns a store holding Sample.
func NewSeeded() *Store {
	return New(Sample()...)
}
