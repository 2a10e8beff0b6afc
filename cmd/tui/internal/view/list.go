package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/input"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

type listState int

const (
	listStateBrowse listState = iota
	listStateEdit
	listStateDelete
)

var dateFilters = []Timeframe{TimeframeAll, TimeframeThisMonth, TimeframeLastMonth}

// listForm holds the huh bindings behind a pointer so copies of the model
// share them.
type listForm struct {
	date    string
	title   string
	amount  string
	typ     transaction.Type
	confirm bool
}

type ListModel struct {
	CommonModel
	txService *transaction.Service
	weekStart time.Weekday
	now       func() time.Time

	state    listState
	table    table.Model
	txs      []*transaction.Transaction
	form     *huh.Form
	bindings *listForm

	dateFilterIdx int
	dateRange     transaction.DateRange

	loading bool
	err     error
	status  string
}

func NewListModel(txSvc *transaction.Service, weekStart time.Weekday) ListModel {
	columns := []table.Column{
		{Title: "날짜", Width: 12},
		{Title: "구분", Width: 6},
		{Title: "금액", Width: 14},
		{Title: "내용", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		txService: txSvc,
		weekStart: weekStart,
		now:       time.Now,
		table:     t,
		bindings:  &listForm{},
		loading:   true,
	}
}

func (m ListModel) Title() string { return "전체 내역" }

func (m ListModel) ShortHelp() string {
	switch m.state {
	case listStateEdit:
		return "폼 이동 | esc: 취소"
	case listStateDelete:
		return "←/→: 선택 | enter: 확인 | esc: 취소"
	}

	return "esc: 뒤로 | e: 수정 | x: 삭제 | d: 기간 | r: 새로고침"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case listSaveMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("저장 실패: %v", msg.err)
		}

		m.state = listStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.resize(msg)
		m.table.SetHeight(max(msg.Height-10, 5))

		return m, nil
	}

	switch m.state {
	case listStateBrowse:
		return m.updateBrowse(msg)
	case listStateEdit, listStateDelete:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m ListModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "e":
			return m.enterEditMode()
		case "x":
			return m.enterDeleteMode()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % len(dateFilters)
			m.dateRange = dateFilters[m.dateFilterIdx].Range(m.now(), m.weekStart)

			return m, m.loadTxsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) cursorTx() *transaction.Transaction {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	return m.txs[idx]
}

func (m ListModel) enterEditMode() (tea.Model, tea.Cmd) {
	tx := m.cursorTx()
	if tx == nil {
		return m, nil
	}

	*m.bindings = listForm{
		date:   FormatDate(tx.Date),
		title:  tx.Title,
		amount: calendar.FormatAmount(tx.Amount),
		typ:    tx.Type,
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("date").
				Title("날짜").
				Placeholder("YYYY-MM-DD").
				Value(&m.bindings.date).
				Validate(func(s string) error {
					if _, err := transaction.ParseDay(strings.TrimSpace(s)); err != nil {
						return errors.New("YYYY-MM-DD 형식으로 입력하세요")
					}

					return nil
				}),

			huh.NewInput().
				Key("title").
				Title("내용").
				Placeholder(calendar.DisplayTitle(&transaction.Transaction{})).
				Value(&m.bindings.title),

			huh.NewInput().
				Key("amount").
				Title("금액").
				Placeholder("0").
				Value(&m.bindings.amount).
				Validate(func(s string) error {
					if input.GroupDigits(s) == "" && strings.TrimSpace(s) != "" {
						return errors.New("숫자를 입력하세요")
					}

					return nil
				}),

			huh.NewSelect[transaction.Type]().
				Key("type").
				Title("구분").
				Options(
					huh.NewOption(calendar.TypeLabel(transaction.TypeExpense), transaction.TypeExpense),
					huh.NewOption(calendar.TypeLabel(transaction.TypeIncome), transaction.TypeIncome),
				).
				Value(&m.bindings.typ),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = listStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m ListModel) enterDeleteMode() (tea.Model, tea.Cmd) {
	tx := m.cursorTx()
	if tx == nil {
		return m, nil
	}

	m.bindings.confirm = false
	m.form = newDeleteConfirm(tx, &m.bindings.confirm)
	m.state = listStateDelete
	m.table.Blur()

	return m, m.form.Init()
}

// newDeleteConfirm asks before an entry is removed. The ledger screen uses it too.
func newDeleteConfirm(tx *transaction.Transaction, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("이 내역을 삭제할까요?").
				Description(fmt.Sprintf("%s  %s  %s",
					FormatDate(tx.Date), calendar.DisplayTitle(tx), FormatSigned(tx.Type, tx.Amount))).
				Affirmative("삭제").
				Negative("취소").
				Value(value),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m ListModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = listStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == listStateDelete {
		return m, m.deleteCmd()
	}

	return m, m.saveCmd()
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("불러오는 중...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("오류: %v", m.err))
	}

	sum := calendar.Summarize(m.txs, transaction.DateRange{})
	header := fmt.Sprintf(
		"[d] 기간: %s | %d건 | 수입 %s | 지출 %s",
		activeStyle(dateFilters[m.dateFilterIdx].String()),
		len(m.txs),
		FormatAmount(sum.Income),
		FormatAmount(sum.Expense),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state != listStateBrowse && m.form != nil {
		heading := "내역 수정"
		if m.state == listStateDelete {
			heading = "내역 삭제"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(heading + "\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = faintStyle.Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))
	for _, tx := range m.txs {
		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			calendar.TypeLabel(tx.Type),
			FormatSigned(tx.Type, tx.Amount),
			calendar.DisplayTitle(tx),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadListMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m ListModel) loadTxsCmd() tea.Cmd {
	r := m.dateRange

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, r)
		if err != nil {
			return loadListMsg{err: err}
		}

		calendar.SortByDate(txs)

		return loadListMsg{txs: txs}
	}
}

type listSaveMsg struct {
	status string
	err    error
}

func (m ListModel) saveCmd() tea.Cmd {
	tx := m.cursorTx()
	if tx == nil {
		return nil
	}

	b := *m.bindings
	id := tx.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		date, err := transaction.ParseDay(strings.TrimSpace(b.date))
		if err != nil {
			return listSaveMsg{err: err}
		}

		title := transaction.SanitizeTitle(b.title)
		amount := transaction.SanitizeAmount(b.amount)

		_, err = m.txService.Update(ctx, id, transaction.Patch{
			Title:  &title,
			Amount: &amount,
			Type:   &b.typ,
			Date:   &date,
		})
		if errors.Is(err, transaction.ErrNotFound) {
			return listSaveMsg{status: "이미 삭제된 내역입니다."}
		}

		if err != nil {
			return listSaveMsg{err: err}
		}

		return listSaveMsg{status: "저장했습니다."}
	}
}

func (m ListModel) deleteCmd() tea.Cmd {
	tx := m.cursorTx()
	if tx == nil || !m.bindings.confirm {
		return func() tea.Msg { return listSaveMsg{} }
	}

	id := tx.ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.txService.Delete(ctx, id); err != nil {
			return listSaveMsg{err: err}
		}

		return listSaveMsg{status: "삭제했습니다."}
	}
}
