package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

// Timeframe represents a predefined or custom date range selection.
type Timeframe int

const (
	TimeframeThisMonth Timeframe = 0
	TimeframeLastMonth Timeframe = 1
	TimeframeThisWeek  Timeframe = 2
	TimeframeLastWeek  Timeframe = 3
	TimeframeAll       Timeframe = 4
	TimeframeCustom    Timeframe = 5
)

func (t Timeframe) String() string {
	switch t {
	case TimeframeThisMonth:
		return "이번 달"
	case TimeframeLastMonth:
		return "지난 달"
	case TimeframeThisWeek:
		return "이번 주"
	case TimeframeLastWeek:
		return "지난 주"
	case TimeframeAll:
		return "전체"
	case TimeframeCustom:
		return "직접 입력"
	}

	return "Unknown"
}

// Range resolves tf against today. Weeks start on weekStart. TimeframeAll and
// TimeframeCustom give an open range.
func (t Timeframe) Range(today time.Time, weekStart time.Weekday) transaction.DateRange {
	today = transaction.Day(today)

	switch t {
	case TimeframeThisMonth:
		return calendar.MonthBounds(today)
	case TimeframeLastMonth:
		return calendar.MonthBounds(calendar.Step(today, calendar.ViewMonth, -1))
	case TimeframeThisWeek:
		return transaction.DateRange{
			Start: calendar.StartOfWeek(today, weekStart),
			End:   calendar.EndOfWeek(today, weekStart),
		}
	case TimeframeLastWeek:
		prev := today.AddDate(0, 0, -7)

		return transaction.DateRange{
			Start: calendar.StartOfWeek(prev, weekStart),
			End:   calendar.EndOfWeek(prev, weekStart),
		}
	}

	return transaction.DateRange{}
}

// TimeframeSelectedMsg is emitted when the user has selected a valid date range.
// Range is open on both ends when All is true.
type TimeframeSelectedMsg struct {
	Range transaction.DateRange
	All   bool
}

type timeframeState int

const (
	timeframeStateSelect timeframeState = iota
	timeframeStateCustom
)

// TimeframePicker is a reusable component for selecting a date range.
type TimeframePicker struct {
	state     timeframeState
	selected  Timeframe
	weekStart time.Weekday
	now       func() time.Time

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	err error
}

func NewTimeframePicker(weekStart time.Weekday) TimeframePicker {
	si := textinput.New()
	si.Placeholder = "YYYY-MM-DD"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "시작일: "

	ei := textinput.New()
	ei.Placeholder = "YYYY-MM-DD"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "종료일: "

	return TimeframePicker{
		state:      timeframeStateSelect,
		selected:   TimeframeThisMonth,
		weekStart:  weekStart,
		now:        time.Now,
		startInput: si,
		endInput:   ei,
	}
}

// WithClock replaces the clock used to resolve relative timeframes.
func (m TimeframePicker) WithClock(now func() time.Time) TimeframePicker {
	m.now = now
	return m
}

// Init returns the initial command for the picker.
func (m TimeframePicker) Init() tea.Cmd {
	return nil
}

// Update handles messages for the timeframe picker.
func (m TimeframePicker) Update(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case timeframeStateSelect:
			return m.updateSelect(msg)
		case timeframeStateCustom:
			if next, cmd, handled := m.updateCustom(msg); handled {
				return next, cmd
			}
		}
	}

	if m.state == timeframeStateCustom {
		return m.updateInputs(msg)
	}

	return m, nil
}

func (m TimeframePicker) updateSelect(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > TimeframeThisMonth {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < TimeframeCustom {
			m.selected++
		}
	case tea.KeyEnter:
		switch m.selected {
		case TimeframeCustom:
			m.state = timeframeStateCustom
			m.focusIndex = 0
			m.startInput.Focus()

			return m, textinput.Blink
		case TimeframeAll:
			return m, func() tea.Msg {
				return TimeframeSelectedMsg{All: true}
			}
		}

		r := m.selected.Range(m.now(), m.weekStart)

		return m, func() tea.Msg {
			return TimeframeSelectedMsg{Range: r}
		}
	}

	return m, nil
}

func (m TimeframePicker) updateCustom(msg tea.KeyMsg) (TimeframePicker, tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		m.startInput.Blur()
		m.endInput.Blur()

		if m.focusIndex == 0 {
			m.startInput.Focus()
		} else {
			m.endInput.Focus()
		}

		return m, textinput.Blink, true

	case "enter":
		r, err := parseCustomRange(m.startInput.Value(), m.endInput.Value())
		if err != nil {
			m.err = err
			return m, nil, true
		}

		m.err = nil

		return m, func() tea.Msg {
			return TimeframeSelectedMsg{Range: r}
		}, true

	case "esc":
		m.state = timeframeStateSelect
		m.err = nil

		return m, nil, true
	}

	return m, nil, false
}

// parseCustomRange reads both dates; an empty side stays open.
func parseCustomRange(start, end string) (transaction.DateRange, error) {
	var r transaction.DateRange

	if s := strings.TrimSpace(start); s != "" {
		d, err := transaction.ParseDay(s)
		if err != nil {
			return r, errors.New("시작일 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		}

		r.Start = d
	}

	if s := strings.TrimSpace(end); s != "" {
		d, err := transaction.ParseDay(s)
		if err != nil {
			return r, errors.New("종료일 형식이 올바르지 않습니다 (YYYY-MM-DD)")
		}

		r.End = d
	}

	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		return r, errors.New("종료일이 시작일보다 빠릅니다")
	}

	return r, nil
}

func (m TimeframePicker) updateInputs(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	var (
		cmds []tea.Cmd
		c    tea.Cmd
	)

	m.startInput, c = m.startInput.Update(msg)
	cmds = append(cmds, c)
	m.endInput, c = m.endInput.Update(msg)
	cmds = append(cmds, c)

	return m, tea.Batch(cmds...)
}

// View renders the timeframe picker.
func (m TimeframePicker) View() string {
	errStr := ""
	if m.err != nil {
		errStr = errorStyle.Render(fmt.Sprintf("\n\n오류: %v", m.err))
	}

	if m.state == timeframeStateCustom {
		return fmt.Sprintf(
			"기간 직접 입력:\n\n%s\n%s\n\n(enter 확인, tab 전환, esc 뒤로)%s",
			m.startInput.View(),
			m.endInput.View(),
			errStr,
		)
	}

	var b strings.Builder

	b.WriteString("기간 선택:\n\n")

	for i := TimeframeThisMonth; i <= TimeframeCustom; i++ {
		cursor := " "
		if m.selected == i {
			cursor = ">"
		}

		fmt.Fprintf(&b, "%s %s\n", cursor, i.String())
	}

	b.WriteString("\n(enter 선택, esc 뒤로)")

	return b.String() + errStr
}

// IsSelecting returns true if the picker is in the selection state (not custom input).
func (m TimeframePicker) IsSelecting() bool {
	return m.state == timeframeStateSelect
}

// Reset returns the picker to its initial selection state.
func (m *TimeframePicker) Reset() {
	m.state = timeframeStateSelect
	m.selected = TimeframeThisMonth
	m.err = nil
	m.startInput.SetValue("")
	m.endInput.SetValue("")
}
