package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt draws overlay over base with its top-left corner at (x, y). Base is
// padded or cut to width x height first; overlay rows outside it are dropped.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base, height)
	overlayLines := splitLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		target := padRight(baseLines[row], width)

		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		overlayLine := padRight(line, overlayWidth)
		if room := width - x; room < overlayWidth {
			overlayLine = ansi.Truncate(overlayLine, max(room, 0), "")
		}

		pos := x + ansi.StringWidth(overlayLine)
		right := ""

		if pos < width {
			right = ansi.TruncateLeft(target, pos, "")
			if gap := width - pos - ansi.StringWidth(right); gap > 0 {
				right = strings.Repeat(" ", gap) + right
			}
		}

		baseLines[row] = left + overlayLine + right
	}

	return strings.Join(baseLines, "\n")
}

// fitCanvas pads every line to width and the block to height.
func fitCanvas(s string, width, height int) string {
	lines := splitLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}

	return strings.Join(lines, "\n")
}

func splitLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}

	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}

	return lines
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}

	return widest
}

func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}

	return s
}
