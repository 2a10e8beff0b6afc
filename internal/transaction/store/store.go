package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, date, title, amount, type, created_at, updated_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	if err := s.Scan(
		&tx.ID, &tx.Date, &tx.Title, &tx.Amount, &typeStr, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.Date = transaction.Day(tx.Date)

	return &tx, nil
}

const selectTransactionColumns = `id, date, title, amount, type, created_at, updated_at`

func (s *Store) GetTransaction(ctx context.Context, id string) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, r transaction.DateRange) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE TRUE`

	var args []any

	argIdx := 1

	if !r.Start.IsZero() {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, transaction.Day(r.Start))
		argIdx++
	}

	if !r.End.IsZero() {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, transaction.Day(r.End))
	}

	query += " ORDER BY date ASC, created_at ASC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

// UpsertTransaction inserts tx or overwrites the row with the same id.
// CreatedAt and UpdatedAt are filled from the database.
func (s *Store) UpsertTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (id, date, title, amount, type, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE
		SET date = EXCLUDED.date, title = EXCLUDED.title, amount = EXCLUDED.amount,
			type = EXCLUDED.type, updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.ID,
		transaction.Day(tx.Date),
		tx.Title,
		tx.Amount,
		tx.Type,
	).Scan(&tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) LatestDate(ctx context.Context) (time.Time, error) {
	var latest sql.NullTime

	if err := s.db.QueryRowContext(ctx, `SELECT MAX(date) FROM transactions`).Scan(&latest); err != nil {
		return time.Time{}, fmt.Errorf("finding latest date: %w", err)
	}

	if !latest.Valid {
		return time.Time{}, transaction.ErrNotFound
	}

	return transaction.Day(latest.Time), nil
}
