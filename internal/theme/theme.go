// Package theme holds the process-wide UI preference. It starts dark and is
// never persisted.
package theme

import "sync"

type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

type Preferences struct {
	mu   sync.RWMutex
	mode Mode
	subs []func(Mode)
}

func New() *Preferences {
	return &Preferences{mode: Dark}
}

func (p *Preferences) Mode() Mode {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.mode
}

func (p *Preferences) Dark() bool {
	return p.Mode() == Dark
}

func (p *Preferences) Set(m Mode) {
	p.mu.Lock()
	if m != Dark && m != Light {
		m = Dark
	}

	changed := p.mode != m
	p.mode = m
	subs := append([]func(Mode){}, p.subs...)
	p.mu.Unlock()

	if changed {
		for _, fn := range subs {
			fn(m)
		}
	}
}

// Toggle flips between dark and light and returns the new mode.
func (p *Preferences) Toggle() Mode {
	next := Dark
	if p.Dark() {
		next = Light
	}

	p.Set(next)

	return next
}

// Subscribe registers fn to run after every change.
func (p *Preferences) Subscribe(fn func(Mode)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subs = append(p.subs, fn)
}
