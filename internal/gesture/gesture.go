// Package gesture holds the timer behind the long-press pointer gesture.
package gesture

import (
	"sync"
	"time"
)

// LongPressThreshold is how long a press must be held to count as a long press.
const LongPressThreshold = 500 * time.Millisecond

type Timer interface {
	Stop() bool
}

// AfterFunc matches time.AfterFunc so tests can swap in a manual clock.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// LongPress fires once a press has been held for the threshold without being
// released, moved or stopped. Hosts without callback timers drive it with
// tokens: Press returns one, and Fire(token) reports whether it is still live.
type LongPress struct {
	mu sync.Mutex

	threshold time.Duration
	after     AfterFunc
	onFire    func()

	token   uint64
	armed   bool
	stopped bool
	timer   Timer
}

type LongPressOption func(*LongPress)

func WithThreshold(d time.Duration) LongPressOption {
	return func(l *LongPress) { l.threshold = d }
}

func WithAfterFunc(after AfterFunc) LongPressOption {
	return func(l *LongPress) { l.after = after }
}

// NewLongPress builds a detector. When onFire is nil no timer is started and the
// host calls Fire itself.
func NewLongPress(onFire func(), opts ...LongPressOption) *LongPress {
	l := &LongPress{
		threshold: LongPressThreshold,
		after:     realAfterFunc,
		onFire:    onFire,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *LongPress) Threshold() time.Duration {
	return l.threshold
}

// Press arms the detector and returns the token of this press.
func (l *LongPress) Press() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.disarm()

	if l.stopped {
		return 0
	}

	l.token++
	l.armed = true
	token := l.token

	if l.onFire != nil {
		l.timer = l.after(l.threshold, func() {
			if l.Fire(token) {
				l.onFire()
			}
		})
	}

	return token
}

// Fire consumes the press identified by token. It reports false when that press
// was released, moved, superseded or stopped.
func (l *LongPress) Fire(token uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped || !l.armed || token != l.token {
		return false
	}

	l.armed = false
	l.timer = nil

	return true
}

// Release ends the press. It reports true when the long press had not fired,
// meaning the gesture was a plain click.
func (l *LongPress) Release() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	wasArmed := l.armed
	l.disarm()

	return wasArmed
}

// Move cancels the pending press; a press that drifts becomes a drag.
func (l *LongPress) Move() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.disarm()
}

// Stop tears the detector down. Nothing fires afterwards.
func (l *LongPress) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.disarm()
	l.stopped = true
}

func (l *LongPress) disarm() {
	l.armed = false

	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}
