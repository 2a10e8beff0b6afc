package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/dnd"
	"github.com/MrJamesThe3rd/molog/internal/gesture"
	"github.com/MrJamesThe3rd/molog/internal/ledger"
	"github.com/MrJamesThe3rd/molog/internal/popover"
	"github.com/MrJamesThe3rd/molog/internal/theme"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type longPressMsg struct {
	token uint64
}

type highlightDoneMsg struct{}

// ledgerForm holds the modal bindings behind a pointer so huh writes to the
// same values while the model is copied.
type ledgerForm struct {
	confirm bool
	action  dnd.Action
}

// pointer is the state of the left mouse button over the month grid.
type pointer struct {
	down   bool
	idx    int
	line   int
	id     string
	origin time.Time
}

// LedgerModel is the calendar screen. All ledger state lives in the page; the
// model keeps only what the terminal adds on top: focus, inputs and the mouse.
type LedgerModel struct {
	CommonModel
	page    *ledger.Page
	prefs   *theme.Preferences
	styles  Styles
	measure popover.Measurer
	press   *gesture.LongPress
	help    help.Model

	month ledger.MonthPage
	day   ledger.DayPage

	// cursor is the selected entry of the current cell or day; -1 selects
	// the cell itself.
	cursor   int
	dragOver time.Time
	pick     time.Time

	editor      *ledger.Editor
	focus       ledger.FieldName
	titleInput  textinput.Model
	amountInput textinput.Model

	modal    *huh.Form
	bindings *ledgerForm

	ptr pointer

	status string
	err    error
}

func NewLedgerModel(page *ledger.Page, prefs *theme.Preferences) LedgerModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = calendar.DisplayTitle(&transaction.Transaction{})
	ti.CharLimit = 100
	ti.Width = cardWidth - 10

	ai := textinput.New()
	ai.Prompt = ""
	ai.Placeholder = "0"
	ai.CharLimit = 24
	ai.Width = cardWidth - 12

	m := LedgerModel{
		page:        page,
		prefs:       prefs,
		styles:      NewStyles(prefs.Mode()),
		measure:     lipglossMeasurer,
		press:       gesture.NewLongPress(nil),
		help:        help.New(),
		cursor:      -1,
		titleInput:  ti,
		amountInput: ai,
		bindings:    &ledgerForm{},
	}

	m.reload()

	return m
}

func (m LedgerModel) Title() string { return calendar.Title(m.page.Current(), m.page.Mode()) }

func (m LedgerModel) ShortHelp() string {
	return m.help.View(m.keyMap())
}

func (m LedgerModel) keyMap() help.KeyMap {
	switch {
	case m.editor != nil:
		return editorKeys
	case m.page.DragState() == dnd.StateDragging:
		return dragKeys
	}

	return ledgerKeys
}

func (m LedgerModel) Init() tea.Cmd {
	return nil
}

func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.help.Width = msg.Width
		m.page.Resize(popover.Size{W: msg.Width, H: msg.Height})

	case highlightDoneMsg:
		// re-render without the today highlight

	case longPressMsg:
		cmd = m.onLongPress(msg)

	case tea.MouseMsg:
		if m.modal == nil {
			cmd = m.onMouse(msg)
		}

	case tea.KeyMsg:
		cmd = m.onKey(msg)

	default:
		// cursor blinks and form internals; only a finished modal changes the ledger
		switch {
		case m.modal != nil:
			cmd = m.updateModal(msg)
			if m.modal != nil {
				return m, cmd
			}
		case m.editor != nil:
			return m, m.updateInputs(msg)
		default:
			return m, nil
		}
	}

	opened := m.editor
	m.reload()

	if m.editor != nil && m.editor != opened {
		cmd = tea.Batch(cmd, textinput.Blink)
	}

	return m, cmd
}

// reload rebuilds the projection for the current view and re-measures the
// open card.
func (m *LedgerModel) reload() {
	ctx, cancel := DbCtx()
	defer cancel()

	var err error
	if m.page.Mode() == calendar.ViewMonth {
		m.month, err = m.page.Month(ctx)
	} else {
		m.day, err = m.page.Day(ctx)
	}

	m.fail(err)
	m.clampCursor()
	m.syncEditor()
	m.syncPopover()
}

// fail records err for the status line and reports whether there was one.
func (m *LedgerModel) fail(err error) bool {
	if err == nil {
		return false
	}

	m.err = err
	m.status = fmt.Sprintf("오류: %v", err)

	return true
}

func (m *LedgerModel) layout() monthLayout {
	return newMonthLayout(m.Width, m.Height, len(m.month.Month.Days), m.page.Capacity())
}

// selectedCell is the grid cell of the current date.
func (m *LedgerModel) selectedCell() (int, calendar.Cell) {
	idx := indexOf(m.month.Month, m.page.Current())
	if idx < 0 {
		return -1, calendar.Cell{}
	}

	d := m.month.Month.Days[idx]

	return idx, d.Cell(m.layout().capacity(len(d.Items)))
}

// lines is how many cursor stops the current cell or day has.
func (m *LedgerModel) lines() int {
	if m.page.Mode() == calendar.ViewDay {
		return len(m.day.Items)
	}

	_, cell := m.selectedCell()
	n := len(cell.Visible)

	if cell.Overflow > 0 {
		n++
	}

	return n
}

func (m *LedgerModel) clampCursor() {
	if m.cursor >= m.lines() {
		m.cursor = m.lines() - 1
	}

	if m.cursor < -1 {
		m.cursor = -1
	}
}

// selectedEntry is the entry under the cursor, or nil.
func (m *LedgerModel) selectedEntry() *transaction.Transaction {
	if m.cursor < 0 {
		return nil
	}

	if m.page.Mode() == calendar.ViewDay {
		if m.cursor < len(m.day.Items) {
			return m.day.Items[m.cursor]
		}

		return nil
	}

	_, cell := m.selectedCell()
	if m.cursor < len(cell.Visible) {
		return cell.Visible[m.cursor]
	}

	return nil
}

// syncEditor loads the text inputs when a different card opens.
func (m *LedgerModel) syncEditor() {
	e := m.page.Editor()
	if e == m.editor {
		return
	}

	m.editor = e
	if e == nil {
		m.titleInput.Blur()
		m.amountInput.Blur()

		return
	}

	m.titleInput.SetValue(e.Draft(ledger.FieldTitle))
	m.amountInput.SetValue(e.Draft(ledger.FieldAmount))
	m.titleInput.CursorEnd()
	m.amountInput.CursorEnd()
	m.setFocus(ledger.FieldTitle)
}

func (m *LedgerModel) setFocus(f ledger.FieldName) tea.Cmd {
	m.focus = f

	if f == ledger.FieldAmount {
		m.titleInput.Blur()
		return m.amountInput.Focus()
	}

	m.amountInput.Blur()

	return m.titleInput.Focus()
}

// syncPopover measures the open card and keeps it anchored to its entry.
func (m *LedgerModel) syncPopover() {
	p := m.page.Popover()
	if p == nil || m.Width <= 0 {
		return
	}

	if idx, line, ok := m.locate(p.ID()); ok {
		p.Tracker.Retarget(m.layout().lineRect(idx, line))
	}

	size := m.measure.MeasureRenderedSize(m.cardContent(p.Editor), popover.StyleHints{
		Width:    cardWidth,
		PaddingX: 1,
		Border:   true,
	})
	p.Tracker.ContentResized(size)
}

// locate finds the grid cell and line showing id.
func (m *LedgerModel) locate(id string) (idx, line int, ok bool) {
	l := m.layout()

	for i, d := range m.month.Month.Days {
		for j, tx := range d.Cell(l.capacity(len(d.Items))).Visible {
			if tx.ID == id {
				return i, cellHeaderHeight + j, true
			}
		}
	}

	return 0, 0, false
}

func (m *LedgerModel) onKey(msg tea.KeyMsg) tea.Cmd {
	ctx, cancel := DbCtx()
	defer cancel()

	m.status = ""
	m.err = nil

	switch {
	case m.modal != nil:
		return m.updateModal(msg)
	case m.editor != nil:
		return m.editorKey(ctx, msg)
	case m.page.DragState() == dnd.StateDragging:
		return m.dragKey(ctx, msg)
	}

	switch {
	case key.Matches(msg, ledgerKeys.Back):
		return Back
	case key.Matches(msg, ledgerKeys.View):
		m.fail(m.page.ToggleViewMode(ctx))
		m.cursor = -1
	case key.Matches(msg, ledgerKeys.Theme):
		m.styles = NewStyles(m.prefs.Toggle())
	case key.Matches(msg, ledgerKeys.Today):
		m.page.Today()
		m.cursor = -1

		if m.page.Highlighting() {
			return tea.Tick(ledger.HighlightDuration, func(time.Time) tea.Msg { return highlightDoneMsg{} })
		}
	case key.Matches(msg, ledgerKeys.Latest):
		m.fail(m.page.JumpToLatest(ctx))
		m.cursor = -1
	case key.Matches(msg, ledgerKeys.Add):
		m.add(ctx)
	case key.Matches(msg, ledgerKeys.Delete):
		if tx := m.selectedEntry(); tx != nil {
			return m.requestDelete(tx)
		}
	case key.Matches(msg, ledgerKeys.NextItem):
		m.cycle(1)
	case key.Matches(msg, ledgerKeys.PrevItem):
		m.cycle(-1)
	case m.page.Mode() == calendar.ViewMonth:
		m.monthKey(ctx, msg)
	default:
		m.dayKey(ctx, msg)
	}

	return nil
}

func (m *LedgerModel) cycle(delta int) {
	n := m.lines()
	if n == 0 {
		m.cursor = -1
		return
	}

	// -1 is part of the ring so the cell itself can be selected again
	m.cursor = (m.cursor+1+delta+n+1)%(n+1) - 1
}

func (m *LedgerModel) moveDay(delta int) {
	m.page.SelectDate(m.page.Current().AddDate(0, 0, delta))
	m.cursor = -1
}

func (m *LedgerModel) monthKey(ctx context.Context, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, ledgerKeys.Left):
		m.moveDay(-1)
	case key.Matches(msg, ledgerKeys.Right):
		m.moveDay(1)
	case key.Matches(msg, ledgerKeys.Up):
		m.moveDay(-7)
	case key.Matches(msg, ledgerKeys.Down):
		m.moveDay(7)
	case key.Matches(msg, ledgerKeys.PrevPage):
		m.page.Prev()
		m.cursor = -1
	case key.Matches(msg, ledgerKeys.NextPage):
		m.page.Next()
		m.cursor = -1
	case key.Matches(msg, ledgerKeys.Open):
		m.openSelected(ctx)
	case key.Matches(msg, ledgerKeys.Drag):
		if tx := m.selectedEntry(); tx != nil {
			m.beginDrag(ctx, tx.ID, tx.Date)
		}
	}
}

func (m *LedgerModel) openSelected(ctx context.Context) {
	idx, cell := m.selectedCell()
	if idx < 0 {
		return
	}

	switch {
	case m.cursor >= 0 && m.cursor < len(cell.Visible):
		rect := m.layout().lineRect(idx, cellHeaderHeight+m.cursor)
		m.fail(m.page.OpenPopover(ctx, cell.Visible[m.cursor].ID, rect))
	default:
		m.fail(m.page.OpenDay(ctx, m.page.Current()))
		m.cursor = -1
	}
}

func (m *LedgerModel) dayKey(ctx context.Context, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, ledgerKeys.Left):
		m.page.Prev()
		m.cursor = -1
	case key.Matches(msg, ledgerKeys.Right):
		m.page.Next()
		m.cursor = -1
	case key.Matches(msg, ledgerKeys.Up):
		m.cycle(-1)
	case key.Matches(msg, ledgerKeys.Down):
		m.cycle(1)
	case key.Matches(msg, ledgerKeys.PrevPage):
		m.page.SelectDate(m.page.Current().AddDate(0, 0, -7))
		m.cursor = -1
	case key.Matches(msg, ledgerKeys.NextPage):
		m.page.SelectDate(m.page.Current().AddDate(0, 0, 7))
		m.cursor = -1
	case key.Matches(msg, ledgerKeys.Open):
		if tx := m.selectedEntry(); tx != nil {
			m.fail(m.page.Expand(ctx, tx.ID))
		}
	default:
		// 1-7 pick a day of the week strip
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '7' {
			if i := int(s[0] - '1'); i < len(m.day.Strip) {
				m.page.SelectDate(m.day.Strip[i].Date)
				m.cursor = -1
			}
		}
	}
}

func (m *LedgerModel) add(ctx context.Context) {
	var trigger popover.Rect
	if idx := indexOf(m.month.Month, m.page.Current()); idx >= 0 && m.page.Mode() == calendar.ViewMonth {
		trigger = m.layout().cellRect(idx)
	}

	_, err := m.page.Add(ctx, trigger)
	m.fail(err)
}

func (m *LedgerModel) requestDelete(tx *transaction.Transaction) tea.Cmd {
	m.page.RequestDelete(tx.ID)
	m.bindings.confirm = false
	m.modal = newDeleteConfirm(tx, &m.bindings.confirm)

	return m.modal.Init()
}

func newDropConfirm(value *dnd.Action) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[dnd.Action]().
				Title("이 날짜로 옮길까요, 복사할까요?").
				Options(
					huh.NewOption("이동", dnd.ActionMove),
					huh.NewOption("복사", dnd.ActionCopy),
					huh.NewOption("취소", dnd.ActionCancel),
				).
				Value(value),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m *LedgerModel) updateModal(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.dismissModal(false)
		return nil
	}

	form, cmd := m.modal.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.modal = f
	}

	switch m.modal.State {
	case huh.StateCompleted:
		m.dismissModal(true)
		return nil
	case huh.StateAborted:
		m.dismissModal(false)
		return nil
	}

	return cmd
}

// dismissModal answers whichever question the modal asked.
func (m *LedgerModel) dismissModal(accepted bool) {
	ctx, cancel := DbCtx()
	defer cancel()

	m.modal = nil

	switch {
	case m.page.PendingDelete() != "":
		if !accepted || !m.bindings.confirm {
			m.page.CancelDelete()
			return
		}

		if !m.fail(m.page.ConfirmDelete(ctx)) {
			m.status = "삭제했습니다."
		}

		m.cursor = -1

	case m.page.DragState() == dnd.StateConfirming:
		action := dnd.ActionCancel
		if accepted {
			action = m.bindings.action
		}

		res, err := m.page.ResolveDrop(ctx, action)
		if !m.fail(err) {
			m.afterDrop(res)
		}
	}
}

func (m *LedgerModel) beginDrag(ctx context.Context, id string, origin time.Time) {
	m.fail(m.page.BeginDrag(ctx, id, origin))
	m.dragOver = transaction.Day(origin)
}

func (m *LedgerModel) dragKey(ctx context.Context, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, dragKeys.Cancel):
		m.page.CancelDrag()
		m.dragOver = time.Time{}
	case key.Matches(msg, dragKeys.Drop):
		target := m.dragOver
		return m.drop(ctx, &target)
	case key.Matches(msg, ledgerKeys.Left):
		m.moveDrag(-1)
	case key.Matches(msg, ledgerKeys.Right):
		m.moveDrag(1)
	case key.Matches(msg, ledgerKeys.Up):
		m.moveDrag(-7)
	case key.Matches(msg, ledgerKeys.Down):
		m.moveDrag(7)
	}

	return nil
}

// moveDrag walks the drop target; the grid follows it into other months.
func (m *LedgerModel) moveDrag(delta int) {
	m.dragOver = m.dragOver.AddDate(0, 0, delta)
	if !calendar.SameMonth(m.dragOver, m.page.Current()) {
		m.page.SelectDate(m.dragOver)
	}
}

func (m *LedgerModel) drop(ctx context.Context, target *time.Time) tea.Cmd {
	res, err := m.page.Drop(ctx, target)
	m.dragOver = time.Time{}

	if m.fail(err) {
		return nil
	}

	if res.Outcome == dnd.OutcomeConfirm {
		m.bindings.action = dnd.ActionMove
		m.modal = newDropConfirm(&m.bindings.action)

		return m.modal.Init()
	}

	m.afterDrop(res)

	return nil
}

func (m *LedgerModel) afterDrop(res dnd.Result) {
	switch res.Outcome {
	case dnd.OutcomeMoved:
		m.status = fmt.Sprintf("%s(으)로 옮겼습니다.", FormatDate(res.Tx.Date))
	case dnd.OutcomeCopied:
		m.status = fmt.Sprintf("%s에 복사했습니다.", FormatDate(res.Tx.Date))
	default:
		return
	}

	m.page.SelectDate(res.Tx.Date)
	m.cursor = -1
}

func (m *LedgerModel) editorKey(ctx context.Context, msg tea.KeyMsg) tea.Cmd {
	e := m.editor

	if e.CalendarOpen() {
		m.pickerKey(ctx, e, msg)
		return nil
	}

	switch {
	case key.Matches(msg, editorKeys.Close):
		m.fail(m.closeEditor(ctx))
	case key.Matches(msg, editorKeys.Save):
		m.fail(m.page.Enter(ctx, m.focus))
	case key.Matches(msg, editorKeys.Switch):
		m.fail(e.Blur(ctx, m.focus))

		if m.focus == ledger.FieldTitle {
			return m.setFocus(ledger.FieldAmount)
		}

		return m.setFocus(ledger.FieldTitle)
	case key.Matches(msg, editorKeys.Type):
		m.fail(e.ToggleType(ctx))
	case key.Matches(msg, editorKeys.Calendar):
		e.ToggleCalendar()
		m.pick = e.Item().Date
	case key.Matches(msg, editorKeys.Delete):
		if !e.Saved() {
			m.fail(m.closeEditor(ctx))
			return nil
		}

		return m.requestDelete(e.Item())
	default:
		return m.updateInputs(msg)
	}

	return nil
}

func (m *LedgerModel) closeEditor(ctx context.Context) error {
	if m.page.Popover() != nil {
		return m.page.ClosePopover(ctx)
	}

	return m.page.Collapse(ctx)
}

// pickerKey drives the card's date picker.
func (m *LedgerModel) pickerKey(ctx context.Context, e *ledger.Editor, msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, editorKeys.Close), key.Matches(msg, editorKeys.Calendar):
		e.ToggleCalendar()
		return
	case key.Matches(msg, editorKeys.Save):
		m.fail(e.SetDate(ctx, m.pick))
		return
	case key.Matches(msg, ledgerKeys.Left):
		m.pick = m.pick.AddDate(0, 0, -1)
	case key.Matches(msg, ledgerKeys.Right):
		m.pick = m.pick.AddDate(0, 0, 1)
	case key.Matches(msg, ledgerKeys.Up):
		m.pick = m.pick.AddDate(0, 0, -7)
	case key.Matches(msg, ledgerKeys.Down):
		m.pick = m.pick.AddDate(0, 0, 7)
	case key.Matches(msg, ledgerKeys.PrevPage):
		m.pick = calendar.Step(m.pick, calendar.ViewMonth, -1)
	case key.Matches(msg, ledgerKeys.NextPage):
		m.pick = calendar.Step(m.pick, calendar.ViewMonth, 1)
	}

	anchor := e.Calendar().Anchor
	for m.pick.Before(calendar.StartOfMonth(anchor)) {
		e.StepCalendar(-1)
		anchor = e.Calendar().Anchor
	}

	for m.pick.After(calendar.EndOfMonth(anchor)) {
		e.StepCalendar(1)
		anchor = e.Calendar().Anchor
	}
}

// updateInputs feeds keystrokes to the focused field. Only the draft changes;
// the entry is saved on blur, enter or close.
func (m *LedgerModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if m.focus == ledger.FieldAmount {
		m.amountInput, cmd = m.amountInput.Update(msg)
		m.editor.Type(ledger.FieldAmount, m.amountInput.Value())

		if d := m.editor.Draft(ledger.FieldAmount); d != m.amountInput.Value() {
			m.amountInput.SetValue(d)
			m.amountInput.CursorEnd()
		}

		return cmd
	}

	m.titleInput, cmd = m.titleInput.Update(msg)
	m.editor.Type(ledger.FieldTitle, m.titleInput.Value())

	return cmd
}

func (m *LedgerModel) onLongPress(msg longPressMsg) tea.Cmd {
	if !m.press.Fire(msg.token) || !m.ptr.down {
		return nil
	}

	ctx, cancel := DbCtx()
	defer cancel()

	if m.ptr.idx < len(m.month.Month.Days) {
		m.fail(m.page.OpenDay(ctx, m.month.Month.Days[m.ptr.idx].Date))
	}

	m.ptr = pointer{}
	m.cursor = -1

	return nil
}

func (m *LedgerModel) onMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.page.Prev()
			return nil
		case tea.MouseButtonWheelDown:
			m.page.Next()
			return nil
		}
	}

	if m.page.Mode() == calendar.ViewDay {
		return nil
	}

	ctx, cancel := DbCtx()
	defer cancel()

	l := m.layout()
	idx, line, inGrid := l.hit(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}

		if p := m.page.Popover(); p != nil {
			at := popover.Rect{X: msg.X, Y: msg.Y, W: 1, H: 1}
			if pl, err := p.Tracker.Placement(); err == nil && pl.Rect().Contains(at) {
				return nil
			}

			m.fail(m.page.ClosePopover(ctx))

			return nil
		}

		if !inGrid {
			return nil
		}

		m.ptr = pointer{down: true, idx: idx, line: line}
		if tx := m.entryAt(idx, line); tx != nil {
			m.ptr.id = tx.ID
			m.ptr.origin = tx.Date
		}

		token := m.press.Press()

		return tea.Tick(m.press.Threshold(), func(time.Time) tea.Msg { return longPressMsg{token: token} })

	case tea.MouseActionMotion:
		if !m.ptr.down || !inGrid {
			return nil
		}

		if idx != m.ptr.idx {
			m.press.Move()

			if m.page.DragState() == dnd.StateIdle && m.ptr.id != "" {
				m.beginDrag(ctx, m.ptr.id, m.ptr.origin)
			}
		}

		if m.page.DragState() == dnd.StateDragging {
			m.dragOver = m.month.Month.Days[idx].Date
		}

	case tea.MouseActionRelease:
		ptr := m.ptr
		m.ptr = pointer{}

		if !ptr.down {
			return nil
		}

		if m.page.DragState() == dnd.StateDragging {
			var target *time.Time
			if inGrid {
				target = &m.month.Month.Days[idx].Date
			}

			return m.drop(ctx, target)
		}

		if m.press.Release() {
			m.click(ctx, ptr.idx, ptr.line)
		}
	}

	return nil
}

// entryAt is the visible entry drawn on line of cell idx.
func (m *LedgerModel) entryAt(idx, line int) *transaction.Transaction {
	if idx >= len(m.month.Month.Days) {
		return nil
	}

	d := m.month.Month.Days[idx]
	cell := d.Cell(m.layout().capacity(len(d.Items)))

	if i := line - cellHeaderHeight; i >= 0 && i < len(cell.Visible) {
		return cell.Visible[i]
	}

	return nil
}

// click opens the entry under the pointer in a popover; anywhere else in a
// cell opens that day.
func (m *LedgerModel) click(ctx context.Context, idx, line int) {
	if idx >= len(m.month.Month.Days) {
		return
	}

	if tx := m.entryAt(idx, line); tx != nil {
		m.fail(m.page.OpenPopover(ctx, tx.ID, m.layout().lineRect(idx, line)))
		return
	}

	m.fail(m.page.OpenDay(ctx, m.month.Month.Days[idx].Date))
	m.cursor = -1
}
