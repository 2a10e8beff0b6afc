package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/molog/internal/popover"
)

func TestOverlayAt(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
		x, y    int
		width   int
		want    string
	}{
		{
			name:    "inside",
			base:    "aaaa\nbbbb\ncccc",
			overlay: "XY",
			x:       1, y: 1,
			want: "aaaa\nbXYb\ncccc",
		},
		{
			name:    "clipped right",
			base:    "aaaa\nbbbb\ncccc",
			overlay: "XYZ",
			x:       2, y: 0,
			want: "aaXY\nbbbb\ncccc",
		},
		{
			name:    "rows below dropped",
			base:    "aaaa\nbbbb\ncccc",
			overlay: "XY\nXY",
			x:       0, y: 2,
			want: "aaaa\nbbbb\nXYcc",
		},
		{
			name:    "short base extended",
			base:    "a",
			overlay: "X",
			x:       3, y: 1,
			want: "a\n   X\n",
		},
		{
			name:    "wide runes",
			base:    "가나다\nbbbbbb\ncccccc",
			overlay: "XY",
			x:       2, y: 0,
			width:   6,
			want:    "가XY다\nbbbbbb\ncccccc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width := tt.width
			if width == 0 {
				width = 4
			}

			assert.Equal(t, tt.want, overlayAt(tt.base, tt.overlay, tt.x, tt.y, width, 3))
		})
	}
}

func TestFitCanvas(t *testing.T) {
	assert.Equal(t, "ab  \n    ", fitCanvas("ab", 4, 2))
	assert.Equal(t, "abcd", fitCanvas("abcdef\nline", 4, 1))
}

func TestArrowAt(t *testing.T) {
	pl := popover.Placement{X: 10, Y: 5, W: 8, H: 4, ArrowOffset: 2}

	tests := []struct {
		arrow        popover.Arrow
		wantX, wantY int
		glyph        string
	}{
		{popover.ArrowLeft, 9, 7, "◀"},
		{popover.ArrowRight, 18, 7, "▶"},
		{popover.ArrowTop, 12, 4, "▲"},
		{popover.ArrowBottom, 12, 9, "▼"},
	}

	for _, tt := range tests {
		t.Run(tt.glyph, func(t *testing.T) {
			pl.Arrow = tt.arrow

			x, y, glyph := arrowAt(pl)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
			assert.Equal(t, tt.glyph, glyph)
		})
	}
}

func TestMonthLayout_Hit(t *testing.T) {
	l := newMonthLayout(120, 40, 35, 3)

	assert.Equal(t, 17, l.cellW)
	assert.Equal(t, 7, l.cellH)

	idx, line, ok := l.hit(3*17+2, monthHeaderHeight+3*7+1)
	assert.True(t, ok)
	assert.Equal(t, 24, idx)
	assert.Equal(t, 1, line)

	_, _, ok = l.hit(5, 1)
	assert.False(t, ok, "title rows are outside the grid")

	_, _, ok = l.hit(119, 39)
	assert.False(t, ok, "footer rows are outside the grid")

	assert.Equal(t, popover.Rect{X: 51, Y: 25, W: 17, H: 1}, l.lineRect(24, 1))
}

func TestMonthLayout_CapacityBeforeMeasure(t *testing.T) {
	assert.Equal(t, 3, newMonthLayout(0, 0, 35, 3).capacity(10))
	assert.Equal(t, 5, newMonthLayout(120, 40, 35, 3).capacity(13))
	assert.Equal(t, 2, newMonthLayout(120, 40, 35, 3).capacity(2))
}
