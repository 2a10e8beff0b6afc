// Package ledger is the ledger screen's controller: which date and view are
// shown, which entry is being edited, dragged or deleted. Front-ends render
// from its projections and forward user events to it.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/dnd"
	"github.com/MrJamesThe3rd/molog/internal/popover"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

// HighlightDuration is how long today's cell stays highlighted after "today".
const HighlightDuration = 1500 * time.Millisecond

type Options struct {
	ViewMode      calendar.ViewMode
	AllowDragCopy bool
	WeekStart     time.Weekday
	// Capacity is the per-cell entry count used before a cell is measured.
	Capacity int
	Popover  popover.Options
}

func DefaultOptions() Options {
	return Options{
		ViewMode:  calendar.ViewDay,
		WeekStart: time.Sunday,
		Capacity:  calendar.FixedCapacity,
		Popover:   popover.DefaultOptions(),
	}
}

// Popover is the open month-view edit card.
type Popover struct {
	*Editor
	Tracker *popover.Tracker
}

type Page struct {
	svc  *transaction.Service
	opts Options
	now  func() time.Time

	mode    calendar.ViewMode
	current time.Time

	viewport       popover.Size
	popover        *Popover
	expanded       *Editor
	pendingDelete  string
	highlightUntil time.Time

	drag *dnd.Controller
}

func New(svc *transaction.Service, opts Options) *Page {
	if !opts.ViewMode.Valid() {
		opts.ViewMode = calendar.ViewDay
	}

	if opts.Capacity <= 0 {
		opts.Capacity = calendar.FixedCapacity
	}

	p := &Page{
		svc:  svc,
		opts: opts,
		now:  time.Now,
		mode: opts.ViewMode,
	}

	p.drag = dnd.New(svc, dnd.Options{
		AllowCopy: opts.AllowDragCopy,
		OnStart:   func(string) { p.dropPopover() },
	})
	p.current = p.today()

	return p
}

// WithClock replaces the page clock and moves to its today.
func (p *Page) WithClock(now func() time.Time) *Page {
	p.now = now
	p.current = p.today()

	return p
}

func (p *Page) today() time.Time {
	return calendar.Today(p.now)
}

func (p *Page) Options() Options              { return p.opts }
func (p *Page) Mode() calendar.ViewMode       { return p.mode }
func (p *Page) Current() time.Time            { return p.current }
func (p *Page) Popover() *Popover             { return p.popover }
func (p *Page) Expanded() *Editor             { return p.expanded }
func (p *Page) PendingDelete() string         { return p.pendingDelete }
func (p *Page) DragState() dnd.State          { return p.drag.State() }
func (p *Page) Dragging() string              { return p.drag.Active() }
func (p *Page) DropTarget() time.Time         { return p.drag.Target() }
func (p *Page) Service() *transaction.Service { return p.svc }

// Editor is whichever edit surface is open, or nil.
func (p *Page) Editor() *Editor {
	if p.popover != nil {
		return p.popover.Editor
	}

	return p.expanded
}

// SetViewMode switches between month and day. Every open card, pending
// delete, highlight and drag is cleared; buffered edits are saved first.
func (p *Page) SetViewMode(ctx context.Context, mode calendar.ViewMode) error {
	if mode == p.mode || !mode.Valid() {
		return nil
	}

	err := p.resetInteraction(ctx)
	p.mode = mode

	return err
}

func (p *Page) ToggleViewMode(ctx context.Context) error {
	if p.mode == calendar.ViewMonth {
		return p.SetViewMode(ctx, calendar.ViewDay)
	}

	return p.SetViewMode(ctx, calendar.ViewMonth)
}

func (p *Page) resetInteraction(ctx context.Context) error {
	err := errors.Join(p.ClosePopover(ctx), p.Collapse(ctx))

	p.pendingDelete = ""
	p.highlightUntil = time.Time{}
	p.drag.Cancel()

	return err
}

// Prev steps back a month or a day depending on the view.
func (p *Page) Prev() {
	p.current = calendar.Step(p.current, p.mode, -1)
}

func (p *Page) Next() {
	p.current = calendar.Step(p.current, p.mode, 1)
}

// Today jumps to the current date. In the month view today's cell is
// highlighted for HighlightDuration.
func (p *Page) Today() {
	p.current = p.today()

	if p.mode == calendar.ViewMonth {
		p.highlightUntil = p.now().Add(HighlightDuration)
	}
}

func (p *Page) Highlighting() bool {
	return !p.highlightUntil.IsZero() && p.now().Before(p.highlightUntil)
}

// SelectDate shows d without changing the view.
func (p *Page) SelectDate(d time.Time) {
	p.current = transaction.Day(d)
}

// JumpToLatest moves to the date of the most recent entry. An empty ledger
// leaves the page where it is.
func (p *Page) JumpToLatest(ctx context.Context) error {
	latest, err := p.svc.Latest(ctx)
	if errors.Is(err, transaction.ErrNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	p.current = latest

	return nil
}

// OpenDay shows d in the day view. Ignored while an entry is being dragged.
func (p *Page) OpenDay(ctx context.Context, d time.Time) error {
	if p.drag.State() != dnd.StateIdle {
		return nil
	}

	p.current = transaction.Day(d)

	return p.SetViewMode(ctx, calendar.ViewDay)
}

// Resize records the viewport and repositions an open popover.
func (p *Page) Resize(vp popover.Size) {
	p.viewport = vp
	if p.popover != nil {
		p.popover.Tracker.Resize(vp)
	}
}

// OpenPopover opens the edit card for id next to trigger. A missing entry is ignored.
func (p *Page) OpenPopover(ctx context.Context, id string, trigger popover.Rect) error {
	if err := p.ClosePopover(ctx); err != nil {
		return err
	}

	tx, err := p.svc.Get(ctx, id)
	if errors.Is(err, transaction.ErrNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	p.showPopover(p.newEditor(tx, true), trigger)

	return nil
}

func (p *Page) showPopover(e *Editor, trigger popover.Rect) {
	tr := popover.NewTracker(p.opts.Popover)
	tr.Resize(p.viewport)
	tr.Open(trigger)

	p.popover = &Popover{Editor: e, Tracker: tr}
}

// ClosePopover saves buffered edits and closes the card.
func (p *Page) ClosePopover(ctx context.Context) error {
	if p.popover == nil {
		return nil
	}

	err := p.popover.commit(ctx)
	p.dropPopover()

	return err
}

func (p *Page) dropPopover() {
	if p.popover == nil {
		return
	}

	p.popover.Tracker.Close()
	p.popover = nil
}

// Enter commits the field and closes its card, like pressing Enter in it.
func (p *Page) Enter(ctx context.Context, f FieldName) error {
	e := p.Editor()
	if e == nil {
		return nil
	}

	e.field(f).Enter()

	if p.popover != nil {
		return p.ClosePopover(ctx)
	}

	return p.Collapse(ctx)
}

// Add creates an empty expense on the current date. The day view saves it and
// expands its card; the month view opens it in a popover next to trigger and
// saves it on its first change.
func (p *Page) Add(ctx context.Context, trigger popover.Rect) (*Editor, error) {
	if err := errors.Join(p.ClosePopover(ctx), p.Collapse(ctx)); err != nil {
		return nil, err
	}

	tx := p.svc.New(transaction.CreateParams{Date: p.current})

	if p.mode == calendar.ViewDay {
		saved, err := p.svc.Save(ctx, tx)
		if err != nil {
			return nil, err
		}

		p.expanded = p.newEditor(saved, true)

		return p.expanded, nil
	}

	e := p.newEditor(tx, false)
	p.showPopover(e, trigger)

	return e, nil
}

// Expand opens the day-view card of id, collapsing any other.
func (p *Page) Expand(ctx context.Context, id string) error {
	if err := p.Collapse(ctx); err != nil {
		return err
	}

	tx, err := p.svc.Get(ctx, id)
	if errors.Is(err, transaction.ErrNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	p.expanded = p.newEditor(tx, true)

	return nil
}

func (p *Page) Collapse(ctx context.Context) error {
	if p.expanded == nil {
		return nil
	}

	err := p.expanded.commit(ctx)
	p.expanded = nil

	return err
}

// followDate keeps an edited entry on screen: in the month view an entry
// moved to another month takes the page with it.
func (p *Page) followDate(d time.Time) {
	if p.mode == calendar.ViewMonth && !calendar.SameMonth(d, p.current) {
		p.current = transaction.Day(d)
	}
}

// RequestDelete asks for confirmation before deleting id.
func (p *Page) RequestDelete(id string) {
	p.pendingDelete = id
}

func (p *Page) CancelDelete() {
	p.pendingDelete = ""
}

// ConfirmDelete deletes the pending entry and closes its cards without saving them.
func (p *Page) ConfirmDelete(ctx context.Context) error {
	id := p.pendingDelete
	if id == "" {
		return nil
	}

	p.pendingDelete = ""

	if p.popover != nil && p.popover.ID() == id {
		p.dropPopover()
	}

	if p.expanded != nil && p.expanded.ID() == id {
		p.expanded = nil
	}

	return p.svc.Delete(ctx, id)
}

// BeginDrag lifts id from its cell. Open cards are saved and closed first.
func (p *Page) BeginDrag(ctx context.Context, id string, origin time.Time) error {
	var err error
	if p.popover != nil {
		err = p.popover.commit(ctx)
	}

	// an open card would save its copy of the entry over the moved one
	err = errors.Join(err, p.Collapse(ctx))

	p.drag.Start(id, origin)

	return err
}

func (p *Page) Drop(ctx context.Context, target *time.Time) (dnd.Result, error) {
	return p.drag.Drop(ctx, target)
}

func (p *Page) ResolveDrop(ctx context.Context, action dnd.Action) (dnd.Result, error) {
	return p.drag.Resolve(ctx, action)
}

func (p *Page) CancelDrag() {
	p.drag.Cancel()
}

type MonthPage struct {
	Month     calendar.Month
	Summary   calendar.Summary
	Highlight bool
}

// Month builds the month grid around the current date.
func (p *Page) Month(ctx context.Context) (MonthPage, error) {
	txs, err := p.svc.List(ctx, calendar.MonthRange(p.current, p.opts.WeekStart))
	if err != nil {
		return MonthPage{}, err
	}

	return MonthPage{
		Month: calendar.BuildMonth(p.current, txs, calendar.Options{
			WeekStart: p.opts.WeekStart,
			Today:     p.today(),
		}),
		Summary:   calendar.Summarize(txs, calendar.MonthBounds(p.current)),
		Highlight: p.Highlighting(),
	}, nil
}

type DayPage struct {
	calendar.DayView
	Strip []calendar.StripDay
	// ShowLatest offers a jump to the latest entry when the day is empty.
	ShowLatest bool
}

// Day builds the day view with its week strip.
func (p *Page) Day(ctx context.Context) (DayPage, error) {
	week := transaction.DateRange{
		Start: calendar.StartOfWeek(p.current, p.opts.WeekStart),
		End:   calendar.EndOfWeek(p.current, p.opts.WeekStart),
	}

	txs, err := p.svc.List(ctx, week)
	if err != nil {
		return DayPage{}, err
	}

	v := calendar.BuildDay(p.current, txs)

	return DayPage{
		DayView:    v,
		Strip:      calendar.WeekStrip(p.current, txs, p.opts.WeekStart, p.today()),
		ShowLatest: v.Empty(),
	}, nil
}

// Capacity is the fixed per-cell entry count.
func (p *Page) Capacity() int {
	return p.opts.Capacity
}
