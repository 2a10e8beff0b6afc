package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/input"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type FieldName int

const (
	FieldTitle FieldName = iota
	FieldAmount
)

// Editor is the edit surface of one entry: the month view's popover card or
// the day view's expanded card. Text fields are buffered; type and date
// changes are saved straight away.
type Editor struct {
	page  *Page
	item  *transaction.Transaction
	saved bool
	dirty bool

	calendarOpen bool
	calMonth     time.Time

	Title  *input.Field
	Amount *input.AmountField
}

func (p *Page) newEditor(tx *transaction.Transaction, saved bool) *Editor {
	e := &Editor{
		page:     p,
		item:     tx.Clone(),
		saved:    saved,
		calMonth: calendar.StartOfMonth(tx.Date),
	}

	e.Title = input.NewField(tx.Title, input.OnCommit(func(s string) {
		e.item.Title = transaction.SanitizeTitle(s)
		e.dirty = true
	}))

	e.Amount = input.NewAmountField(tx.Amount, func(n int64) {
		e.item.Amount = n
		e.dirty = true
	})

	return e
}

// Item is a copy of the entry as last edited.
func (e *Editor) Item() *transaction.Transaction {
	return e.item.Clone()
}

func (e *Editor) ID() string {
	return e.item.ID
}

// Saved reports whether the entry exists in the store. A freshly added entry
// in the month view is only saved on its first change.
func (e *Editor) Saved() bool {
	return e.saved
}

func (e *Editor) field(f FieldName) *input.Field {
	if f == FieldAmount {
		return e.Amount.Field
	}

	return e.Title
}

func (e *Editor) Type(f FieldName, s string) {
	e.field(f).Type(s)
}

func (e *Editor) Draft(f FieldName) string {
	return e.field(f).Draft()
}

// Blur commits the field and saves the entry if it changed.
func (e *Editor) Blur(ctx context.Context, f FieldName) error {
	e.field(f).Blur()
	return e.flush(ctx)
}

func (e *Editor) ToggleType(ctx context.Context) error {
	e.item.Type = e.item.Type.Toggle()
	e.dirty = true

	return e.flush(ctx)
}

func (e *Editor) SetType(ctx context.Context, t transaction.Type) error {
	if e.item.Type == t {
		return nil
	}

	e.item.Type = t
	e.dirty = true

	return e.flush(ctx)
}

// SetDate moves the entry to d and closes the date picker.
func (e *Editor) SetDate(ctx context.Context, d time.Time) error {
	d = transaction.Day(d)
	e.calendarOpen = false

	if e.item.Date.Equal(d) {
		return nil
	}

	e.item.Date = d
	e.calMonth = calendar.StartOfMonth(d)
	e.dirty = true

	return e.flush(ctx)
}

func (e *Editor) CalendarOpen() bool {
	return e.calendarOpen
}

// ToggleCalendar opens or closes the embedded date picker. The card changes
// height, so hosts re-measure it afterwards.
func (e *Editor) ToggleCalendar() {
	e.calendarOpen = !e.calendarOpen
	if e.calendarOpen {
		e.calMonth = calendar.StartOfMonth(e.item.Date)
	}
}

func (e *Editor) StepCalendar(delta int) {
	e.calMonth = calendar.Step(e.calMonth, calendar.ViewMonth, delta)
}

// Calendar is the date picker grid, with the entry's date marked as today.
func (e *Editor) Calendar() calendar.Month {
	return calendar.BuildMonth(e.calMonth, nil, calendar.Options{
		WeekStart: e.page.opts.WeekStart,
		Today:     e.item.Date,
	})
}

// commit pushes every buffered draft into the entry and saves it.
func (e *Editor) commit(ctx context.Context) error {
	e.Title.Close()
	e.Amount.Close()

	return e.flush(ctx)
}

func (e *Editor) flush(ctx context.Context) error {
	if !e.dirty {
		return nil
	}

	saved, err := e.save(ctx)
	if errors.Is(err, transaction.ErrNotFound) {
		// deleted elsewhere while the card was open
		e.dirty = false
		return nil
	}

	if err != nil {
		return err
	}

	e.item = saved.Clone()
	e.saved = true
	e.dirty = false
	e.page.followDate(e.item.Date)

	return nil
}

// save creates an entry the store has not seen yet. A stored entry is only
// updated, never recreated.
func (e *Editor) save(ctx context.Context) (*transaction.Transaction, error) {
	item := e.item.Clone()
	if !e.saved {
		return e.page.svc.Save(ctx, item)
	}

	return e.page.svc.Update(ctx, item.ID, transaction.Patch{
		Title:  &item.Title,
		Amount: &item.Amount,
		Type:   &item.Type,
		Date:   &item.Date,
	})
}
