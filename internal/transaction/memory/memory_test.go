package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
	"github.com/MrJamesThe3rd/molog/internal/transaction/memory"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestStore_Sample(t *testing.T) {
	s := memory.NewSeeded()
	assert.Equal(t, 8+24+10, s.Len())

	got, err := s.ListTransactions(context.Background(), transaction.DateRange{Start: day(2026, 1, 21), End: day(2026, 1, 21)})
	require.NoError(t, err)
	assert.Len(t, got, 13)

	latest, err := s.LatestDate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, day(2026, 1, 21), latest)
}

func TestStore_ListOrdersByDateThenID(t *testing.T) {
	s := memory.New(
		&transaction.Transaction{ID: "b", Date: day(2026, 1, 2), Type: transaction.TypeExpense},
		&transaction.Transaction{ID: "a", Date: day(2026, 1, 2), Type: transaction.TypeExpense},
		&transaction.Transaction{ID: "c", Date: day(2026, 1, 1), Type: transaction.TypeExpense},
		&transaction.Transaction{ID: "d", Date: day(2026, 2, 1), Type: transaction.TypeExpense},
	)

	got, err := s.ListTransactions(context.Background(), transaction.DateRange{Start: day(2026, 1, 1), End: day(2026, 1, 31)})
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, tx := range got {
		ids = append(ids, tx.ID)
	}

	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestStore_ListKeepsInsertionOrderWithinDay(t *testing.T) {
	now := time.Date(2026, 1, 21, 9, 0, 0, 0, time.UTC)
	s := memory.New().WithClock(func() time.Time { return now })
	ctx := context.Background()

	for _, id := range []string{"z", "m", "a"} {
		require.NoError(t, s.UpsertTransaction(ctx, &transaction.Transaction{
			ID: id, Date: day(2026, 1, 21), Type: transaction.TypeExpense,
		}))

		now = now.Add(time.Minute)
	}

	// an update keeps the original creation time
	require.NoError(t, s.UpsertTransaction(ctx, &transaction.Transaction{
		ID: "z", Date: day(2026, 1, 21), Title: "edited", Type: transaction.TypeExpense,
	}))

	got, err := s.ListTransactions(ctx, transaction.DateRange{Start: day(2026, 1, 21), End: day(2026, 1, 21)})
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, tx := range got {
		ids = append(ids, tx.ID)
	}

	assert.Equal(t, []string{"z", "m", "a"}, ids)
}

func TestStore_UpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	tx := &transaction.Transaction{ID: "x", Date: day(2026, 3, 3), Title: "커피", Amount: 4000, Type: transaction.TypeExpense}
	require.NoError(t, s.UpsertTransaction(ctx, tx))
	assert.Nil(t, tx.UpdatedAt)

	tx.Amount = 4500
	require.NoError(t, s.UpsertTransaction(ctx, tx))
	assert.NotNil(t, tx.UpdatedAt)

	got, err := s.GetTransaction(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(4500), got.Amount)

	// returned values are copies
	got.Amount = 1
	again, _ := s.GetTransaction(ctx, "x")
	assert.Equal(t, int64(4500), again.Amount)

	require.NoError(t, s.DeleteTransaction(ctx, "x"))
	assert.ErrorIs(t, s.DeleteTransaction(ctx, "x"), transaction.ErrNotFound)

	_, err = s.GetTransaction(ctx, "x")
	assert.ErrorIs(t, err, transaction.ErrNotFound)

	_, err = s.LatestDate(ctx)
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}

func TestService_WithMemoryStore(t *testing.T) {
	ctx := context.Background()
	svc := transaction.NewService(memory.NewSeeded())

	moved, err := svc.Move(ctx, "5", day(2026, 1, 25))
	require.NoError(t, err)
	assert.Equal(t, "관리비", moved.Title)

	dup, err := svc.Copy(ctx, "7", day(2026, 2, 5))
	require.NoError(t, err)

	orig, err := svc.Get(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, day(2026, 1, 5), orig.Date)
	assert.NotEqual(t, orig.ID, dup.ID)

	require.NoError(t, svc.Delete(ctx, "does-not-exist"))

	_, err = svc.Move(ctx, "does-not-exist", day(2026, 1, 1))
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}
