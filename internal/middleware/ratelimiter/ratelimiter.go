package ratelimiter

import (
	"sync"
	"time"
)

// window counts admissions for one key inside the current fixed window.
type window struct {
	start  time.Time
	count  int
	mu     sync.Mutex
	timer  *time.Timer
	key    string              // Reference to key for cleanup
	parent *FixedWindowLimiter // Reference to parent for cleanup
}

// FixedWindowLimiter admits at most `limit` requests per `period` for each
// key. The counter resets as soon as a request lands in a later window;
// windows align to each key's first request, not to wall-clock minutes.
// State lives in process memory only, so a restart clears every counter.
type FixedWindowLimiter struct {
	windows        map[string]*window
	mu             sync.RWMutex
	limit          int
	period         time.Duration
	expirationTime time.Duration
}

// NewFixedWindowLimiter creates a new FixedWindowLimiter instance. Idle
// keys are dropped after expirationTime to keep the map bounded.
func NewFixedWindowLimiter(limit int, period, expirationTime time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		windows:        make(map[string]*window),
		limit:          limit,
		period:         period,
		expirationTime: expirationTime,
	}
}

// cleanup removes a specific window
func (l *FixedWindowLimiter) cleanup(key string) {
	l.mu.Lock()
	delete(l.windows, key)
	l.mu.Unlock()
}

// resetTimer resets the expiration timer for a window
func (w *window) resetTimer() {
	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.parent.expirationTime, func() {
		w.parent.cleanup(w.key)
	})
}

// getWindow gets or creates the window for a key
func (l *FixedWindowLimiter) getWindow(key string) *window {
	// First try read-only lookup
	l.mu.RLock()
	w, exists := l.windows[key]
	l.mu.RUnlock()

	if exists {
		w.resetTimer()
		return w
	}

	// If not found, acquire write lock and create new
	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	w, exists = l.windows[key]
	if exists {
		w.resetTimer()
		return w
	}

	w = &window{
		start:  time.Now(),
		key:    key,
		parent: l,
	}
	l.windows[key] = w
	w.resetTimer()

	return w
}

func (w *window) allow() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	if now.Sub(w.start) >= w.parent.period {
		w.start = now
		w.count = 0
	}

	if w.count >= w.parent.limit {
		return false
	}
	w.count++
	return true
}

// Allow checks if a request should be admitted for a given key
func (l *FixedWindowLimiter) Allow(key string) bool {
	return l.getWindow(key).allow()
}

// Stop cleans up all timers
func (l *FixedWindowLimiter) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, w := range l.windows {
		if w.timer != nil {
			w.timer.Stop()
		}
	}
}
