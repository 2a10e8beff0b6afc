package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/dnd"
	"github.com/MrJamesThe3rd/molog/internal/ledger"
	"github.com/MrJamesThe3rd/molog/internal/popover"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

func (m LedgerModel) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return "불러오는 중..."
	}

	var body []string
	if m.page.Mode() == calendar.ViewMonth {
		body = m.viewMonth()
	} else {
		body = m.viewDay()
	}

	rows := max(m.Height-footerHeight, 0)
	for len(body) < rows {
		body = append(body, "")
	}

	body = append(body[:rows], m.statusLine(), m.help.View(m.keyMap()))
	canvas := fitCanvas(strings.Join(body, "\n"), m.Width, m.Height)

	if p := m.page.Popover(); p != nil {
		canvas = m.overlayPopover(canvas, p)
	}

	if m.modal != nil {
		canvas = m.overlayModal(canvas)
	}

	return canvas
}

func (m LedgerModel) statusLine() string {
	switch {
	case m.err != nil:
		return m.styles.Error.Render(m.status)
	case m.page.DragState() == dnd.StateDragging:
		return m.styles.Muted.Render(fmt.Sprintf("옮기는 중 → %s", FormatDate(m.dragOver)))
	}

	return m.styles.Muted.Render(m.status)
}

func (m LedgerModel) summaryLine(s calendar.Summary) string {
	return fmt.Sprintf("수입 %s  지출 %s  합계 %s",
		m.styles.Income.Render("+"+FormatAmount(s.Income)),
		m.styles.Expense.Render("-"+FormatAmount(s.Expense)),
		FormatAmount(s.Net()),
	)
}

func (m LedgerModel) viewMonth() []string {
	l := m.layout()
	current := m.page.Current()

	lines := []string{
		m.styles.Title.Render(calendar.Title(current, calendar.ViewMonth)) + "  " +
			m.styles.Muted.Render("[ ] 달 이동 · T 오늘"),
		m.summaryLine(m.month.Summary),
	}

	var weekdays strings.Builder
	for _, name := range calendar.WeekdayHeader(m.page.Options().WeekStart) {
		weekdays.WriteString(m.styles.Weekday.Render(lipgloss.PlaceHorizontal(l.cellW, lipgloss.Center, name)))
	}

	lines = append(lines, weekdays.String())

	selected := indexOf(m.month.Month, current)

	for w, week := range m.month.Month.Weeks() {
		cells := make([][]string, len(week))
		for i, d := range week {
			cells[i] = m.renderCell(d, w*7+i, selected, l)
		}

		for row := range l.cellH {
			var b strings.Builder
			for _, c := range cells {
				b.WriteString(c[row])
			}

			lines = append(lines, b.String())
		}
	}

	return lines
}

// renderCell draws one day as cellH lines of exactly cellW columns.
func (m LedgerModel) renderCell(d calendar.Day, idx, selected int, l monthLayout) []string {
	out := make([]string, l.cellH)
	cell := d.Cell(l.capacity(len(d.Items)))
	isSelected := idx == selected
	dragging := m.page.DragState() == dnd.StateDragging

	dateStyle := m.styles.Date
	if !d.InMonth {
		dateStyle = m.styles.OutOfMonth
	}

	if d.IsToday {
		dateStyle = m.styles.Today
		if m.month.Highlight {
			dateStyle = m.styles.Highlight
		}
	}

	if dragging && d.Date.Equal(m.dragOver) {
		dateStyle = m.styles.DropTarget
	}

	if isSelected && m.cursor == -1 {
		dateStyle = dateStyle.Inherit(m.styles.Selected)
	}

	marker := " "
	if isSelected {
		marker = "▸"
	}

	out[0] = marker + dateStyle.Render(fmt.Sprintf("%2d", d.Date.Day()))

	for j, tx := range cell.Visible {
		text := entryLabel(tx, l.cellW-2)

		st := m.styles.Expense
		if tx.Type == transaction.TypeIncome {
			st = m.styles.Income
		}

		if tx.ID == m.page.Dragging() {
			st = m.styles.Dragging
		}

		if isSelected && m.cursor == j {
			st = m.styles.Selected
		}

		out[cellHeaderHeight+j] = " " + st.Render(text)
	}

	if label := cell.OverflowLabel(); label != "" {
		st := m.styles.Overflow
		if isSelected && m.cursor == len(cell.Visible) {
			st = m.styles.Selected
		}

		out[cellHeaderHeight+len(cell.Visible)] = " " + st.Render(label)
	}

	for i := range out {
		out[i] = padRight(out[i], l.cellW)
	}

	return out
}

// entryLabel fits "title amount" into width, shortening the title first.
func entryLabel(tx *transaction.Transaction, width int) string {
	amount := calendar.FormatSigned(tx.Type, tx.Amount)
	room := width - ansi.StringWidth(amount) - 1

	if room < 2 {
		return ansi.Truncate(amount, max(width, 0), "…")
	}

	return ansi.Truncate(calendar.DisplayTitle(tx), room, "…") + " " + amount
}

func (m LedgerModel) viewDay() []string {
	current := m.page.Current()

	lines := []string{
		m.styles.Title.Render(calendar.Title(current, calendar.ViewDay)) + "  " +
			m.styles.Muted.Render("← → 날짜 이동 · 1-7 요일"),
		m.viewStrip(),
		m.summaryLine(m.day.Summary),
		"",
	}

	if m.day.Empty() {
		lines = append(lines, m.styles.Muted.Render("이 날의 내역이 없습니다."))
		if m.day.ShowLatest {
			lines = append(lines, m.styles.Muted.Render("g 를 눌러 최근 내역으로 이동"))
		}

		return lines
	}

	expanded := m.page.Expanded()

	for i, tx := range m.day.Items {
		marker := "  "
		if i == m.cursor {
			marker = "▸ "
		}

		row := fmt.Sprintf("%s%s  %s  %s",
			marker,
			calendar.TypeLabel(tx.Type),
			calendar.DisplayTitle(tx),
			m.styles.Amount(tx.Type, tx.Amount),
		)

		if i == m.cursor && (expanded == nil || expanded.ID() != tx.ID) {
			row = m.styles.Selected.Render(row)
		}

		lines = append(lines, row)

		if expanded != nil && expanded.ID() == tx.ID {
			card := m.styles.Card.Width(cardWidth).Render(m.cardContent(expanded))
			for _, l := range strings.Split(card, "\n") {
				lines = append(lines, "  "+l)
			}
		}
	}

	return lines
}

func (m LedgerModel) viewStrip() string {
	parts := make([]string, 0, len(m.day.Strip))

	for i, sd := range m.day.Strip {
		dot := " "
		if sd.HasData {
			dot = "•"
		}

		label := fmt.Sprintf("%d %s %2d%s", i+1, calendar.WeekdayName(sd.Date.Weekday()), sd.Date.Day(), dot)

		st := m.styles.Date
		if sd.IsToday {
			st = m.styles.Today
		}

		if sd.Selected {
			st = st.Inherit(m.styles.Selected)
		}

		parts = append(parts, st.Render(label))
	}

	return strings.Join(parts, "  ")
}

// cardContent is the edit card body shared by the popover and the expanded
// day card.
func (m LedgerModel) cardContent(e *ledger.Editor) string {
	item := e.Item()

	expense := calendar.TypeLabel(transaction.TypeExpense)
	income := calendar.TypeLabel(transaction.TypeIncome)

	if item.Type == transaction.TypeIncome {
		income = m.styles.Income.Render("[" + income + "]")
		expense = m.styles.Muted.Render(" " + expense + " ")
	} else {
		expense = m.styles.Expense.Render("[" + expense + "]")
		income = m.styles.Muted.Render(" " + income + " ")
	}

	lines := []string{
		expense + " " + income + "  " + m.styles.Muted.Render("ctrl+t"),
		"내용  " + m.titleInput.View(),
		"금액  " + m.amountInput.View() + "원",
		"날짜  " + FormatDate(item.Date) + "  " + m.styles.Muted.Render("ctrl+d"),
	}

	if e.CalendarOpen() {
		lines = append(lines, "", m.viewPicker(e))
	}

	if !e.Saved() {
		lines = append(lines, m.styles.Muted.Render("입력하면 저장됩니다"))
	}

	return strings.Join(lines, "\n")
}

// viewPicker draws the card's date picker; the entry's own date is marked
// like today.
func (m LedgerModel) viewPicker(e *ledger.Editor) string {
	cal := e.Calendar()

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(calendar.Title(cal.Anchor, calendar.ViewMonth)))
	b.WriteString("  " + m.styles.Muted.Render("[ ]") + "\n")

	for _, name := range calendar.WeekdayHeader(m.page.Options().WeekStart) {
		b.WriteString(m.styles.Weekday.Render(lipgloss.PlaceHorizontal(3, lipgloss.Center, name)))
	}

	for _, week := range cal.Weeks() {
		b.WriteString("\n")

		for _, d := range week {
			st := m.styles.Date
			if !d.InMonth {
				st = m.styles.OutOfMonth
			}

			if d.IsToday {
				st = m.styles.Today
			}

			if d.Date.Equal(m.pick) {
				st = st.Inherit(m.styles.Selected)
			}

			b.WriteString(st.Render(fmt.Sprintf("%2d", d.Date.Day())) + " ")
		}
	}

	return b.String()
}

func (m LedgerModel) overlayPopover(canvas string, p *ledger.Popover) string {
	pl, err := p.Tracker.Placement()
	if err != nil {
		// not measured yet; drawn on the next frame
		return canvas
	}

	card := m.styles.Card.Width(cardWidth).Render(m.cardContent(p.Editor))
	canvas = overlayAt(canvas, card, pl.X, pl.Y, m.Width, m.Height)

	x, y, glyph := arrowAt(pl)

	return overlayAt(canvas, m.styles.Arrow.Render(glyph), x, y, m.Width, m.Height)
}

// arrowAt is where the arrow is drawn: in the gap between card and trigger,
// pointing at the trigger.
func arrowAt(pl popover.Placement) (x, y int, glyph string) {
	switch pl.Arrow {
	case popover.ArrowLeft:
		return pl.X - 1, pl.Y + pl.ArrowOffset, "◀"
	case popover.ArrowRight:
		return pl.X + pl.W, pl.Y + pl.ArrowOffset, "▶"
	case popover.ArrowTop:
		return pl.X + pl.ArrowOffset, pl.Y - 1, "▲"
	default:
		return pl.X + pl.ArrowOffset, pl.Y + pl.H, "▼"
	}
}

func (m LedgerModel) overlayModal(canvas string) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(m.modal.View())

	lines := splitLines(card, 0)
	x := max((m.Width-maxLineWidth(lines))/2, 0)
	y := max((m.Height-len(lines))/2, 0)

	return overlayAt(canvas, card, x, y, m.Width, m.Height)
}
