package calendar

import (
	"fmt"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

// Cell is what a month cell renders: the entries that fit and how many were left out.
type Cell struct {
	Visible  []*transaction.Transaction
	Overflow int
}

// OverflowLabel is "+N건", or empty when nothing was left out.
func (c Cell) OverflowLabel() string {
	if c.Overflow <= 0 {
		return ""
	}

	return fmt.Sprintf("+%d건", c.Overflow)
}

// Cell cuts the day's items down to capacity.
func (d Day) Cell(capacity int) Cell {
	capacity = max(capacity, 0)
	n := min(capacity, len(d.Items))

	return Cell{
		Visible:  d.Items[:n],
		Overflow: len(d.Items) - n,
	}
}

// Capacity is how many of total items to show in a cell of cellHeight once the
// date header is drawn. All items are shown when they fit; otherwise one row
// goes to the overflow label. The result is never negative.
func Capacity(cellHeight, headerHeight, itemHeight, total int) int {
	if itemHeight <= 0 {
		return FixedCapacity
	}

	rows := max((cellHeight-headerHeight)/itemHeight, 0)
	if total <= rows {
		return total
	}

	return max(rows-1, 0)
}
