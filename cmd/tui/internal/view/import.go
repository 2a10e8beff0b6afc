package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/importer"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFormatSelect importState = iota
	importStateFilePick
	importStateParsing
	importStatePreview
	importStateResult
)

type ImportModel struct {
	CommonModel
	txService     *transaction.Service
	importService *importer.Service

	state          importState
	filePicker     filepicker.Model
	selectedFormat importer.Format
	formatOptions  []importer.Format
	formatCursor   int

	path        string
	params      []transaction.CreateParams
	previewList list.Model
	selected    map[int]bool

	status string
	err    error
}

func NewImportModel(txSvc *transaction.Service, impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		txService:     txSvc,
		importService: impSvc,
		filePicker:    fp,
		formatOptions: impSvc.Formats(),
		selected:      make(map[int]bool),
	}
}

func (m ImportModel) Title() string { return "가져오기" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStatePreview {
		return "space: 선택 | a: 전체 | n: 해제 | enter: 가져오기 | esc: 취소"
	}

	return "esc: 뒤로 | enter: 선택"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg)
		m.filePicker.SetHeight(max(msg.Height-8, 5))

		if m.state == importStatePreview {
			m.previewList.SetSize(msg.Width-2, msg.Height-4)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateFormatSelect {
			return m.updateFormatSelect(msg)
		}

		if m.state == importStatePreview {
			return m.updatePreview(msg)
		}

	case parseResultMsg:
		if msg.err != nil {
			m.state = importStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("오류: %v", msg.err)

			return m, nil
		}

		m.params = msg.params
		m.selected = make(map[int]bool, len(msg.params))

		items := make([]list.Item, len(msg.params))
		for i, p := range msg.params {
			items[i] = previewItem{params: p, index: i}
			m.selected[i] = true
		}

		width, height := 80, 20
		if m.Width > 0 {
			width, height = m.Width-2, m.Height-4
		}

		m.previewList = list.New(items, previewDelegate{selected: m.selected}, width, height)
		m.previewList.Title = fmt.Sprintf("%s: %d건", m.path, len(items))
		m.previewList.SetShowStatusBar(false)
		m.previewList.SetFilteringEnabled(false)
		m.previewList.SetShowHelp(false)
		m.state = importStatePreview

		return m, nil

	case importResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("오류: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("%d건을 가져왔습니다.", msg.count)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateParsing
		m.path = path
		m.status = fmt.Sprintf("%s 읽는 중...", path)

		return m, m.parseCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick, importStateResult:
		m.state = importStateFormatSelect
		m.err = nil
		m.status = ""

		return m, nil
	case importStatePreview:
		m.state = importStateFilePick
		m.params = nil
		m.selected = make(map[int]bool)

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateFormatSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.formatCursor > 0 {
			m.formatCursor--
		}
	case tea.KeyDown:
		if m.formatCursor < len(m.formatOptions)-1 {
			m.formatCursor++
		}
	case tea.KeyEnter:
		if len(m.formatOptions) == 0 {
			return m, nil
		}

		m.selectedFormat = m.formatOptions[m.formatCursor]
		m.state = importStateFilePick

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		idx := m.previewList.Index()
		m.selected[idx] = !m.selected[idx]

		return m, nil
	case "a":
		for i := range m.params {
			m.selected[i] = true
		}

		return m, nil
	case "n":
		for i := range m.params {
			m.selected[i] = false
		}

		return m, nil
	case "enter":
		return m, m.importCmd()
	}

	var cmd tea.Cmd
	m.previewList, cmd = m.previewList.Update(msg)

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFormatSelect:
		return m.viewFormatSelect()
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("가져올 파일 선택 (%s):\n\n%s", m.selectedFormat, m.filePicker.View()),
		)
	case importStateParsing:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStatePreview:
		return lipgloss.NewStyle().Padding(1).Render(m.previewList.View())
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewFormatSelect() string {
	var b strings.Builder

	b.WriteString("형식 선택:\n\n")

	for i, f := range m.formatOptions {
		cursor := " "
		if i == m.formatCursor {
			cursor = ">"
		}

		fmt.Fprintf(&b, "%s %s\n", cursor, string(f))
	}

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

func (m ImportModel) viewResult() string {
	style := successStyle
	if m.err != nil {
		style = errorStyle
	}

	return lipgloss.NewStyle().Padding(2).Render(style.Render(m.status) + "\n\n(esc 뒤로)")
}

// Messages

type parseResultMsg struct {
	params []transaction.CreateParams
	err    error
}

type importResultMsg struct {
	count int
	err   error
}

func (m ImportModel) parseCmd(path string) tea.Cmd {
	format := m.selectedFormat

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return parseResultMsg{err: err}
		}
		defer f.Close()

		params, err := m.importService.Import(format, f)

		return parseResultMsg{params: params, err: err}
	}
}

func (m ImportModel) importCmd() tea.Cmd {
	var chosen []transaction.CreateParams

	for i, p := range m.params {
		if m.selected[i] {
			chosen = append(chosen, p)
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		txs, err := m.txService.CreateBatch(ctx, chosen)
		if err != nil {
			return importResultMsg{err: err}
		}

		return importResultMsg{count: len(txs)}
	}
}

// Preview list item

type previewItem struct {
	params transaction.CreateParams
	index  int
}

func (i previewItem) Title() string       { return i.params.Title }
func (i previewItem) Description() string { return "" }
func (i previewItem) FilterValue() string { return i.params.Title }

// Preview list delegate

type previewDelegate struct {
	selected map[int]bool
}

func (d previewDelegate) Height() int                             { return 1 }
func (d previewDelegate) Spacing() int                            { return 0 }
func (d previewDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d previewDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(previewItem)
	if !ok {
		return
	}

	checkbox := "[ ]"
	if d.selected[item.index] {
		checkbox = "[x]"
	}

	cursor := "  "
	if index == m.Index() {
		cursor = "> "
	}

	p := item.params
	title := p.Title
	if title == "" {
		title = calendar.DisplayTitle(&transaction.Transaction{})
	}

	fmt.Fprintf(w, "%s%s %s  %12s  %s",
		cursor, checkbox,
		FormatDate(p.Date),
		FormatSigned(p.Type, p.Amount),
		title,
	)
}
