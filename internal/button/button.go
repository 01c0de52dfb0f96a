// Package button provides debounced button input with hardware abstraction.
// The real implementation uses the Linux GPIO character device; the fake
// allows testing without hardware.
package button

// Reader reads the button level.
type Reader interface {
	// Pressed returns true while the button is held down.
	Pressed() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// DefaultPin is the BCM pin the external button is wired to.
const DefaultPin = 17
