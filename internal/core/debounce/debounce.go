// Package debounce provides a cancel-and-restart timer expressed as a
// generation counter, so the owning event loop schedules real time and
// tests can fire generations deterministically.
package debounce

import "time"

// DefaultInterval is the quiet period after the last edit before a history
// snapshot is taken.
const DefaultInterval = 500 * time.Millisecond

// Timer tracks the latest scheduled generation. Restart invalidates every
// previously scheduled firing: only a Fire carrying the current generation
// is accepted. The zero value is ready to use.
type Timer struct {
	gen   uint64
	armed bool
}

// Restart arms the timer and returns the new generation. Any outstanding
// generation becomes stale.
func (t *Timer) Restart() uint64 {
	t.gen++
	t.armed = true
	return t.gen
}

// Fire reports whether gen is the currently armed generation. On success
// the timer disarms, so a generation fires at most once.
func (t *Timer) Fire(gen uint64) bool {
	if !t.armed || gen != t.gen {
		return false
	}
	t.armed = false
	return true
}

// Cancel disarms the timer without scheduling a new generation.
func (t *Timer) Cancel() {
	t.armed = false
}

// Armed reports whether a firing is outstanding.
func (t *Timer) Armed() bool {
	return t.armed
}
