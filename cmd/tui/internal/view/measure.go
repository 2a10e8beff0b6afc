package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/molog/internal/popover"
)

// lipglossMeasurer sizes content the way lipgloss will draw it, so the popover
// is placed with the card's real footprint.
var lipglossMeasurer = popover.MeasureFunc(func(content string, hints popover.StyleHints) popover.Size {
	st := lipgloss.NewStyle().Padding(hints.PaddingY, hints.PaddingX)
	if hints.Border {
		st = st.Border(lipgloss.RoundedBorder())
	}

	if hints.Width > 0 {
		st = st.Width(hints.Width)
	}

	out := st.Render(content)

	return popover.Size{W: lipgloss.Width(out), H: lipgloss.Height(out)}
})
