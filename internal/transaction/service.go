package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence collaborator behind the ledger. A zero Start or End
// in the range leaves that side unbounded.
//
//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	ListTransactions(ctx context.Context, r DateRange) ([]*Transaction, error)
	GetTransaction(ctx context.Context, id string) (*Transaction, error)
	UpsertTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	LatestDate(ctx context.Context) (time.Time, error)
}

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// WithClock replaces the clock used for default dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) WithIDGenerator(newID func() string) *Service {
	s.newID = newID
	return s
}

// Today is the service clock truncated to a calendar day.
func (s *Service) Today() time.Time {
	return Day(s.now())
}

type CreateParams struct {
	Date   time.Time
	Title  string
	Amount int64
	Type   Type
}

// Patch carries the fields to change; nil fields are left as they are.
type Patch struct {
	Title  *string
	Amount *int64
	Type   *Type
	Date   *time.Time
}

func (p Patch) apply(tx *Transaction) {
	if p.Title != nil {
		tx.Title = *p.Title
	}

	if p.Amount != nil {
		tx.Amount = *p.Amount
	}

	if p.Type != nil {
		tx.Type = *p.Type
	}

	if p.Date != nil {
		tx.Date = Day(*p.Date)
	}
}

func validate(tx *Transaction) error {
	if tx.Amount < 0 {
		return ErrInvalidAmount
	}

	if !tx.Type.Valid() {
		return ErrInvalidType
	}

	return nil
}

// New builds an unsaved entry with the ledger defaults: today, no title,
// zero amount, expense.
func (s *Service) New(params CreateParams) *Transaction {
	tx := &Transaction{
		ID:     s.newID(),
		Date:   Day(params.Date),
		Title:  params.Title,
		Amount: params.Amount,
		Type:   params.Type,
	}

	if params.Date.IsZero() {
		tx.Date = s.Today()
	}

	if tx.Type == "" {
		tx.Type = TypeExpense
	}

	return tx
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := s.New(params)
	if err := validate(tx); err != nil {
		return nil, err
	}

	if err := s.repo.UpsertTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	txs := make([]*Transaction, 0, len(params))

	for i, p := range params {
		tx, err := s.Create(ctx, p)
		if err != nil {
			return txs, fmt.Errorf("creating entry %d: %w", i+1, err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

// Save stores tx as given, inserting it when its id is unknown.
func (s *Service) Save(ctx context.Context, tx *Transaction) (*Transaction, error) {
	tx.Date = Day(tx.Date)
	if err := validate(tx); err != nil {
		return nil, err
	}

	if err := s.repo.UpsertTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, r DateRange) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, r)
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.apply(tx)

	if err := validate(tx); err != nil {
		return nil, err
	}

	if err := s.repo.UpsertTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("updating %s: %w", id, err)
	}

	return tx, nil
}

// Move reassigns the entry to date. Only the date changes.
func (s *Service) Move(ctx context.Context, id string, date time.Time) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	date = Day(date)
	if tx.Date.Equal(date) {
		return tx, nil
	}

	tx.Date = date

	if err := s.repo.UpsertTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("moving %s: %w", id, err)
	}

	return tx, nil
}

// Copy stores a duplicate of the entry on date under a fresh id.
func (s *Service) Copy(ctx context.Context, id string, date time.Time) (*Transaction, error) {
	src, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := &Transaction{
		ID:     s.newID(),
		Date:   Day(date),
		Title:  src.Title,
		Amount: src.Amount,
		Type:   src.Type,
	}

	if err := s.repo.UpsertTransaction(ctx, dup); err != nil {
		return nil, fmt.Errorf("copying %s: %w", id, err)
	}

	return dup, nil
}

// Delete removes the entry. Deleting an unknown id is not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.DeleteTransaction(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}

	return err
}

// Latest returns the date of the most recent entry.
func (s *Service) Latest(ctx context.Context) (time.Time, error) {
	return s.repo.LatestDate(ctx)
}
