package transaction

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("transaction not found")
	ErrInvalidAmount = errors.New("amount must not be negative")
	ErrInvalidType   = errors.New("type must be income or expense")
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Toggle flips income to expense and back.
func (t Type) Toggle() Type {
	if t == TypeIncome {
		return TypeExpense
	}

	return TypeIncome
}

// Transaction is a single ledger entry. Amount is in whole won and never negative;
// the sign shown to the user is driven by Type.
type Transaction struct {
	ID        string
	Date      time.Time
	Title     string
	Amount    int64
	Type      Type
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Key returns the yyyy-MM-dd partition key used to place the entry in a day cell.
func (t *Transaction) Key() string {
	return t.Date.Format(time.DateOnly)
}

// Clone returns a shallow copy that can be mutated without touching the original.
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.UpdatedAt != nil {
		c.UpdatedAt = new(*t.UpdatedAt)
	}

	return &c
}

// DateRange is inclusive on both ends at day granularity. A zero Start or End
// leaves that side open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(d time.Time) bool {
	d = Day(d)

	if !r.Start.IsZero() && d.Before(Day(r.Start)) {
		return false
	}

	if !r.End.IsZero() && d.After(Day(r.End)) {
		return false
	}

	return true
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a yyyy-MM-dd string.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
