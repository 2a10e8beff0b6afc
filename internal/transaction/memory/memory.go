// Package memory is a process-local Repository. It backs the TUI and the API
// when no database is configured.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type Store struct {
	mu  sync.RWMutex
	txs map[string]*transaction.Transaction
	now func() time.Time
}

func New(seed ...*transaction.Transaction) *Store {
	s := &Store{
		txs: make(map[string]*transaction.Transaction, len(seed)),
		now: time.Now,
	}

	for _, tx := range seed {
		c := tx.Clone()
		c.Date = transaction.Day(c.Date)
		s.txs[c.ID] = c
	}

	return s
}

// WithClock replaces the clock that stamps CreatedAt and UpdatedAt.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) GetTransaction(_ context.Context, id string) (*transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txs[id]
	if !ok {
		return nil, transaction.ErrNotFound
	}

	return tx.Clone(), nil
}

// ListTransactions returns copies ordered by date, then creation time, then id,
// so entries of one day keep the order they were added in.
func (s *Store) ListTransactions(_ context.Context, r transaction.DateRange) ([]*transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*transaction.Transaction

	for _, tx := range s.txs {
		if r.Contains(tx.Date) {
			out = append(out, tx.Clone())
		}
	}

	slices.SortFunc(out, func(a, b *transaction.Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}

		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return out, nil
}

func (s *Store) UpsertTransaction(_ context.Context, tx *transaction.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if prev, ok := s.txs[tx.ID]; ok {
		tx.CreatedAt = prev.CreatedAt
		tx.UpdatedAt = &now
	} else {
		tx.CreatedAt = now
		tx.UpdatedAt = nil
	}

	c := tx.Clone()
	c.Date = transaction.Day(c.Date)
	s.txs[c.ID] = c

	return nil
}

func (s *Store) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.txs[id]; !ok {
		return transaction.ErrNotFound
	}

	delete(s.txs, id)

	return nil
}

func (s *Store) LatestDate(_ context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest time.Time

	for _, tx := range s.txs {
		if tx.Date.After(latest) {
			latest = tx.Date
		}
	}

	if latest.IsZero() {
		return time.Time{}, transaction.ErrNotFound
	}

	return latest, nil
}

// Len reports how many entries are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.txs)
}
