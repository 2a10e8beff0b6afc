// Package popover places a floating card next to the element that opened it,
// keeping the card inside the viewport and its arrow on the card edge.
package popover

import "errors"

// ErrLayoutUnready is returned while the popover or viewport has not been
// measured yet. Callers retry on the next tick.
var ErrLayoutUnready = errors.New("popover layout not measured yet")

type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"width"`
	H int `json:"height"`
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Contains reports whether p lies fully inside r.
func (r Rect) Contains(p Rect) bool {
	return p.X >= r.X && p.Y >= r.Y && p.Right() <= r.Right() && p.Bottom() <= r.Bottom()
}

type Size struct {
	W int `json:"width"`
	H int `json:"height"`
}

func (s Size) Zero() bool {
	return s.W <= 0 || s.H <= 0
}

// Arrow is the direction the arrow points, which is always toward the trigger.
type Arrow string

const (
	ArrowLeft   Arrow = "left"
	ArrowRight  Arrow = "right"
	ArrowTop    Arrow = "top"
	ArrowBottom Arrow = "bottom"
)

// Vertical reports whether the arrow sits on the top or bottom edge, in which
// case its offset runs along the X axis.
func (a Arrow) Vertical() bool {
	return a == ArrowTop || a == ArrowBottom
}

type Options struct {
	// Margin is the minimum gap kept between the card and the viewport edge.
	Margin int
	// ArrowLength is the gap between trigger and card taken up by the arrow.
	ArrowLength int
	// ArrowInset is the smallest distance from the card corner to the arrow.
	ArrowInset int
	// ArrowSize is the arrow's extent along the card edge.
	ArrowSize int
	// NarrowWidth disables side placement for viewports narrower than this.
	NarrowWidth int
}

// DefaultOptions are pixel values for a browser viewport.
func DefaultOptions() Options {
	return Options{
		Margin:      10,
		ArrowLength: 10,
		ArrowInset:  10,
		ArrowSize:   20,
		NarrowWidth: 768,
	}
}

// CellOptions are the terminal values, in character cells.
func CellOptions() Options {
	return Options{
		Margin:      1,
		ArrowLength: 1,
		ArrowInset:  1,
		ArrowSize:   1,
	}
}

// Placement is where to draw the card. ArrowOffset is measured from the card's
// top edge for side arrows and from its left edge for top/bottom arrows.
type Placement struct {
	X           int   `json:"x"`
	Y           int   `json:"y"`
	W           int   `json:"width"`
	H           int   `json:"height"`
	Arrow       Arrow `json:"arrow"`
	ArrowOffset int   `json:"arrow_offset"`
}

func (p Placement) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Place positions a card of size next to trigger within a viewport of size vp.
//
// Side placement is tried first, right of the trigger and then left of it,
// unless the viewport is narrower than opts.NarrowWidth. A trigger in the top
// half aligns the card's top with the trigger's top; otherwise the bottoms are
// aligned. When neither side fits the card is centred horizontally and put
// above or below the trigger. The result is always clamped into the viewport
// minus the margin; a card larger than that is pinned at the margin.
func Place(trigger Rect, vp Size, size Size, opts Options) (Placement, error) {
	if size.Zero() || vp.Zero() {
		return Placement{}, ErrLayoutUnready
	}

	p := Placement{W: size.W, H: size.H}
	bottomHalf := trigger.Y > vp.H/2

	fitsRight := trigger.Right()+opts.ArrowLength+size.W <= vp.W-opts.Margin
	fitsLeft := trigger.X-opts.ArrowLength-size.W >= opts.Margin
	side := vp.W >= opts.NarrowWidth && (fitsRight || fitsLeft)

	if side {
		if fitsRight {
			p.X = trigger.Right() + opts.ArrowLength
			p.Arrow = ArrowLeft
		} else {
			p.X = trigger.X - opts.ArrowLength - size.W
			p.Arrow = ArrowRight
		}

		if bottomHalf {
			p.Y = min(trigger.Bottom(), vp.H-opts.Margin) - size.H
		} else {
			p.Y = max(trigger.Y, opts.Margin)
		}

		p.clamp(vp, opts)
		p.ArrowOffset = arrowOffset(trigger.CenterY()-p.Y, size.H, opts)

		return p, nil
	}

	p.X = (vp.W - size.W) / 2

	spaceAbove := trigger.Y - opts.ArrowLength - opts.Margin
	spaceBelow := vp.H - trigger.Bottom() - opts.ArrowLength - opts.Margin
	preferAbove := bottomHalf || spaceAbove > spaceBelow

	above := false

	switch {
	case preferAbove && spaceAbove >= size.H:
		above = true
	case spaceBelow >= size.H:
		above = false
	default:
		above = spaceAbove > spaceBelow
	}

	if above {
		p.Y = trigger.Y - opts.ArrowLength - size.H
		p.Arrow = ArrowBottom
	} else {
		p.Y = trigger.Bottom() + opts.ArrowLength
		p.Arrow = ArrowTop
	}

	p.clamp(vp, opts)
	p.ArrowOffset = arrowOffset(trigger.CenterX()-p.X, size.W, opts)

	return p, nil
}

func (p *Placement) clamp(vp Size, opts Options) {
	p.X = clamp(p.X, opts.Margin, vp.W-opts.Margin-p.W)
	p.Y = clamp(p.Y, opts.Margin, vp.H-opts.Margin-p.H)
}

// arrowOffset centres the arrow on center (relative to the card edge) and
// keeps it between the inset and the far end of the edge.
func arrowOffset(center, length int, opts Options) int {
	return clamp(center-opts.ArrowSize/2, opts.ArrowInset, length-opts.ArrowSize)
}

// clamp bounds v to [lo, hi], preferring lo when the range is empty.
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
