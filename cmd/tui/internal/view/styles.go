package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/molog/internal/theme"
	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	accentColor  = lipgloss.Color("205")
)

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(accentColor).Render(s)
}

type palette struct {
	text     lipgloss.Color
	muted    lipgloss.Color
	border   lipgloss.Color
	income   lipgloss.Color
	expense  lipgloss.Color
	accent   lipgloss.Color
	selected lipgloss.Color
	card     lipgloss.Color
}

var palettes = map[theme.Mode]palette{
	theme.Dark: {
		text:     lipgloss.Color("252"),
		muted:    lipgloss.Color("240"),
		border:   lipgloss.Color("238"),
		income:   lipgloss.Color("75"),
		expense:  lipgloss.Color("210"),
		accent:   lipgloss.Color("205"),
		selected: lipgloss.Color("57"),
		card:     lipgloss.Color("235"),
	},
	theme.Light: {
		text:     lipgloss.Color("235"),
		muted:    lipgloss.Color("245"),
		border:   lipgloss.Color("250"),
		income:   lipgloss.Color("25"),
		expense:  lipgloss.Color("160"),
		accent:   lipgloss.Color("163"),
		selected: lipgloss.Color("153"),
		card:     lipgloss.Color("255"),
	},
}

// Styles are the ledger screen styles for one theme mode.
type Styles struct {
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Income     lipgloss.Style
	Expense    lipgloss.Style
	Weekday    lipgloss.Style
	Date       lipgloss.Style
	Today      lipgloss.Style
	Selected   lipgloss.Style
	Highlight  lipgloss.Style
	DropTarget lipgloss.Style
	Dragging   lipgloss.Style
	OutOfMonth lipgloss.Style
	Overflow   lipgloss.Style
	Card       lipgloss.Style
	Arrow      lipgloss.Style
	Help       lipgloss.Style
	Error      lipgloss.Style
}

func NewStyles(mode theme.Mode) Styles {
	p, ok := palettes[mode]
	if !ok {
		p = palettes[theme.Dark]
	}

	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Muted:      lipgloss.NewStyle().Foreground(p.muted),
		Income:     lipgloss.NewStyle().Foreground(p.income),
		Expense:    lipgloss.NewStyle().Foreground(p.expense),
		Weekday:    lipgloss.NewStyle().Foreground(p.muted).Bold(true),
		Date:       lipgloss.NewStyle().Foreground(p.text),
		Today:      lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Selected:   lipgloss.NewStyle().Background(p.selected).Foreground(lipgloss.Color("229")),
		Highlight:  lipgloss.NewStyle().Background(p.accent).Foreground(lipgloss.Color("0")).Bold(true),
		DropTarget: lipgloss.NewStyle().Underline(true).Foreground(p.accent),
		Dragging:   lipgloss.NewStyle().Faint(true).Strikethrough(true),
		OutOfMonth: lipgloss.NewStyle().Foreground(p.muted).Faint(true),
		Overflow:   lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Background(p.card).
			Padding(0, 1),
		Arrow: lipgloss.NewStyle().Foreground(p.accent),
		Help:  lipgloss.NewStyle().Foreground(p.muted),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Amount colours a signed amount by entry type.
func (s Styles) Amount(typ transaction.Type, amount int64) string {
	if typ == transaction.TypeIncome {
		return s.Income.Render(FormatSigned(typ, amount))
	}

	return s.Expense.Render(FormatSigned(typ, amount))
}
