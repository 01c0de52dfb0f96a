// Package pixels drives the addressable LED ring with hardware
// abstraction. The real implementation uses the rpi-ws281x binding; the
// fake records frames for tests.
package pixels

import "github.com/gerranmora/iron-man-repulsor-glove/internal/logic"

// Strip is a frame-buffered addressable LED strip. Writes take effect on
// Show.
type Strip interface {
	// Fill sets every pixel to the given color.
	Fill(c logic.Color) error

	// SetPixel sets one pixel.
	SetPixel(i int, c logic.Color) error

	// Show flushes the frame to the hardware.
	Show() error

	// Close blanks the strip and releases resources.
	Close() error
}

// Defaults for the repulsor ring.
const (
	DefaultNumPixels  = 7
	DefaultGpioPin    = 12 // PWM0-capable pin on a Raspberry Pi
	DefaultBrightness = 204 // 80% of full scale
)
