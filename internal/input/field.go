// Package input implements buffered fields: what the user types stays in a
// draft until the field is blurred, Enter is pressed or the surrounding card
// closes. Only then does the value reach the owner.
package input

import (
	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type Field struct {
	value    string
	draft    string
	process  func(string) string
	onCommit func(string)
}

type Option func(*Field)

// WithProcess rewrites every typed value before it becomes the draft.
func WithProcess(process func(string) string) Option {
	return func(f *Field) { f.process = process }
}

// OnCommit registers the callback that receives committed values.
func OnCommit(fn func(string)) Option {
	return func(f *Field) { f.onCommit = fn }
}

func NewField(value string, opts ...Option) *Field {
	f := &Field{}
	for _, opt := range opts {
		opt(f)
	}

	f.Reset(value)

	return f
}

// Type replaces the draft. The committed value is untouched.
func (f *Field) Type(s string) {
	if f.process != nil {
		s = f.process(s)
	}

	f.draft = s
}

func (f *Field) Draft() string { return f.draft }
func (f *Field) Value() string { return f.value }

func (f *Field) Dirty() bool {
	return f.draft != f.value
}

func (f *Field) Blur() bool  { return f.commit() }
func (f *Field) Enter() bool { return f.commit() }

// Close commits like Blur. Closing a card never throws away typed text.
func (f *Field) Close() bool { return f.commit() }

// Reset takes a new value from outside and drops the draft.
func (f *Field) Reset(value string) {
	if f.process != nil {
		value = f.process(value)
	}

	f.value = value
	f.draft = value
}

func (f *Field) commit() bool {
	if !f.Dirty() {
		return false
	}

	f.value = f.draft

	if f.onCommit != nil {
		f.onCommit(f.value)
	}

	return true
}

// GroupDigits keeps only the digits of s and groups them in thousands.
// Empty input stays empty so the placeholder shows.
func GroupDigits(s string) string {
	n := transaction.SanitizeAmount(s)
	if n == 0 && !hasDigit(s) {
		return ""
	}

	return calendar.FormatAmount(n)
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}

	return false
}

// AmountField is a Field whose draft is always grouped digits and whose
// committed value is the sanitized amount.
type AmountField struct {
	*Field
}

func NewAmountField(amount int64, onCommit func(int64)) *AmountField {
	f := NewField(calendar.FormatAmount(amount),
		WithProcess(GroupDigits),
		OnCommit(func(s string) {
			if onCommit != nil {
				onCommit(transaction.SanitizeAmount(s))
			}
		}),
	)

	return &AmountField{Field: f}
}

// Amount is the committed amount.
func (a *AmountField) Amount() int64 {
	return transaction.SanitizeAmount(a.value)
}

func (a *AmountField) ResetAmount(amount int64) {
	a.Reset(calendar.FormatAmount(amount))
}
