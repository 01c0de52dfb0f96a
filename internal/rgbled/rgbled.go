// Package rgbled drives the RGB status LED inside the button. The real
// implementation writes to sysfs LED class brightness files; the fake
// records colors for tests.
package rgbled

import "github.com/gerranmora/iron-man-repulsor-glove/internal/logic"

// Driver sets the status LED color.
type Driver interface {
	// SetColor shows the given color on the status LED.
	SetColor(c logic.Color) error

	// Close turns the LED off and releases resources.
	Close() error
}

// DefaultSysfsDir is the LED class directory containing the red/green/blue
// LED entries.
const DefaultSysfsDir = "/sys/class/leds"
