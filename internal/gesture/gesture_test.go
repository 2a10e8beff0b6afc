package gesture_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/molog/internal/gesture"
)

// manualClock collects scheduled callbacks and runs them on Advance.
type manualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true

	return was
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) gesture.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &manualTimer{at: c.now + d, f: f}
	c.timers = append(c.timers, t)

	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d

	var due []*manualTimer

	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func TestLongPress_FiresAfterThreshold(t *testing.T) {
	clock := &manualClock{}
	fired := 0

	lp := gesture.NewLongPress(func() { fired++ }, gesture.WithAfterFunc(clock.AfterFunc))
	lp.Press()

	clock.Advance(499 * time.Millisecond)
	assert.Equal(t, 0, fired)

	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, fired)

	assert.False(t, lp.Release(), "release after firing is not a click")
}

func TestLongPress_ReleaseBeforeThresholdIsClick(t *testing.T) {
	clock := &manualClock{}
	fired := 0

	lp := gesture.NewLongPress(func() { fired++ }, gesture.WithAfterFunc(clock.AfterFunc))
	lp.Press()

	clock.Advance(200 * time.Millisecond)
	assert.True(t, lp.Release())

	clock.Advance(time.Second)
	assert.Equal(t, 0, fired)
}

func TestLongPress_MoveAndStopCancel(t *testing.T) {
	clock := &manualClock{}
	fired := 0

	lp := gesture.NewLongPress(func() { fired++ }, gesture.WithAfterFunc(clock.AfterFunc))

	lp.Press()
	lp.Move()
	clock.Advance(time.Second)
	assert.Equal(t, 0, fired)

	lp.Press()
	lp.Stop()
	clock.Advance(time.Second)
	assert.Equal(t, 0, fired)

	assert.Zero(t, lp.Press(), "a stopped detector does not arm")
}

func TestLongPress_Tokens(t *testing.T) {
	lp := gesture.NewLongPress(nil)
	assert.Equal(t, gesture.LongPressThreshold, lp.Threshold())

	first := lp.Press()
	second := lp.Press()

	assert.False(t, lp.Fire(first), "superseded press")
	assert.True(t, lp.Fire(second))
	assert.False(t, lp.Fire(second), "fires once")

	third := lp.Press()
	lp.Release()
	assert.False(t, lp.Fire(third))
}
