package button

import "time"

// DefaultDebounce suppresses mechanical switch chatter; 25ms comfortably
// covers the contacts used on the prop without eating short presses.
const DefaultDebounce = 25 * time.Millisecond

// Debouncer turns a raw button level into a stable one. A level change is
// only adopted after it has persisted for the debounce interval.
type Debouncer struct {
	interval time.Duration

	stable       bool
	pending      bool
	pendingSince time.Time
	havePending  bool
}

// NewDebouncer creates a Debouncer with the given interval. The initial
// stable level is released.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Update feeds one raw sample and returns the debounced level.
func (d *Debouncer) Update(raw bool, now time.Time) bool {
	if raw == d.stable {
		d.havePending = false
		return d.stable
	}

	if !d.havePending || d.pending != raw {
		d.pending = raw
		d.pendingSince = now
		d.havePending = true
		return d.stable
	}

	if now.Sub(d.pendingSince) >= d.interval {
		d.stable = raw
		d.havePending = false
	}
	return d.stable
}
