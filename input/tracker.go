package input

import (
	"sync"
	"time"

	"github.com/lixenwraith/pong/core"
)

// Tracker infers held keys from press events
// Terminals report no key releases, so a key counts as held while its
// press or auto-repeat arrived within the hold window
type Tracker struct {
	mu     sync.RWMutex
	window time.Duration
	now    func() time.Time
	last   map[core.Key]time.Time
}

// NewTracker creates a tracker with the given hold window
func NewTracker(window time.Duration) *Tracker {
	return &Tracker{
		window: window,
		now:    time.Now,
		last:   make(map[core.Key]time.Time),
	}
}

// SetClock replaces the time source
func (t *Tracker) SetClock(now func() time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}

// Press records a press or repeat of a key
func (t *Tracker) Press(key core.Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last[key] = t.now()
}

// Release forgets a key immediately
func (t *Tracker) Release(key core.Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.last, key)
}

// Reset forgets all keys
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = make(map[core.Key]time.Time)
}

// Pressed reports whether a key is held
func (t *Tracker) Pressed(key core.Key) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	at, ok := t.last[key]
	if !ok {
		return false
	}
	return t.now().Sub(at) < t.window
}
