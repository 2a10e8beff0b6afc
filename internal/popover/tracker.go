package popover

import "sync"

// Tracker keeps the inputs of the last placement so the card can be moved when
// the viewport is resized or its own content grows. Placement is recomputed on
// every change; a card that is not measured yet stays unplaced until
// ContentResized reports a size.
type Tracker struct {
	mu sync.Mutex

	opts     Options
	open     bool
	trigger  Rect
	viewport Size
	size     Size

	placement Placement
	err       error
}

func NewTracker(opts Options) *Tracker {
	return &Tracker{opts: opts, err: ErrLayoutUnready}
}

// Open anchors the card on trigger. The previous card size is forgotten.
func (t *Tracker) Open(trigger Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.open = true
	t.trigger = trigger
	t.size = Size{}
	t.recompute()
}

// Retarget moves the anchor without forgetting the measured size.
func (t *Tracker) Retarget(trigger Rect) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.trigger = trigger
	t.recompute()
}

func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.open = false
	t.size = Size{}
	t.placement = Placement{}
	t.err = ErrLayoutUnready
}

func (t *Tracker) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.open
}

func (t *Tracker) Resize(vp Size) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.viewport = vp
	t.recompute()
}

func (t *Tracker) ContentResized(size Size) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.size = size
	t.recompute()
}

// Placement returns the last computed placement, or ErrLayoutUnready.
func (t *Tracker) Placement() (Placement, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.placement, t.err
}

func (t *Tracker) recompute() {
	if !t.open {
		return
	}

	t.placement, t.err = Place(t.trigger, t.viewport, t.size, t.opts)
}
