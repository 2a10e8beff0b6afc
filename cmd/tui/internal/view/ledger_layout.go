package view

import (
	"time"

	"github.com/MrJamesThe3rd/molog/internal/calendar"
	"github.com/MrJamesThe3rd/molog/internal/popover"
)

const (
	// title, summary and weekday rows above the grid
	monthHeaderHeight = 3
	// status and help rows below every ledger view
	footerHeight = 2

	cellHeaderHeight = 1
	cellItemHeight   = 1

	cardWidth = 32
)

// monthLayout is the character geometry of the month grid.
type monthLayout struct {
	top   int
	cellW int
	cellH int
	weeks int
	// fixed is the capacity used before the terminal size is known.
	fixed int
}

func newMonthLayout(width, height, days, fixed int) monthLayout {
	weeks := days / 7
	if weeks == 0 {
		weeks = 6
	}

	l := monthLayout{top: monthHeaderHeight, weeks: weeks, fixed: fixed}
	if width <= 0 || height <= 0 {
		return l
	}

	l.cellW = max(width/7, 4)
	l.cellH = max((height-monthHeaderHeight-footerHeight)/weeks, cellHeaderHeight+1)

	return l
}

func (l monthLayout) measured() bool {
	return l.cellW > 0 && l.cellH > 0
}

// capacity is how many of total entries a cell shows.
func (l monthLayout) capacity(total int) int {
	if !l.measured() {
		return l.fixed
	}

	return calendar.Capacity(l.cellH, cellHeaderHeight, cellItemHeight, total)
}

func (l monthLayout) cellRect(idx int) popover.Rect {
	return popover.Rect{
		X: (idx % 7) * l.cellW,
		Y: l.top + (idx/7)*l.cellH,
		W: l.cellW,
		H: l.cellH,
	}
}

// lineRect is the rectangle of one line inside a cell; line 0 is the date header.
func (l monthLayout) lineRect(idx, line int) popover.Rect {
	r := l.cellRect(idx)

	return popover.Rect{X: r.X, Y: r.Y + line, W: r.W, H: 1}
}

// hit maps a screen position to a grid cell index and the line inside it.
func (l monthLayout) hit(x, y int) (idx, line int, ok bool) {
	if !l.measured() || x < 0 || y < l.top {
		return 0, 0, false
	}

	col := x / l.cellW
	row := (y - l.top) / l.cellH

	if col >= 7 || row >= l.weeks {
		return 0, 0, false
	}

	return row*7 + col, (y - l.top) % l.cellH, true
}

// indexOf finds date in the grid.
func indexOf(m calendar.Month, date time.Time) int {
	for i, d := range m.Days {
		if d.Date.Equal(date) {
			return i
		}
	}

	return -1
}
