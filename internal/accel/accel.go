// Package accel provides 3-axis accelerometer reading with hardware
// abstraction. The real implementation drives an LIS3DH over the Linux I2C
// character device; the fake allows testing without hardware.
package accel

// Reader reads linear acceleration samples.
type Reader interface {
	// Read returns one acceleration sample in m/s^2, polled.
	Read() (x, y, z float64, err error)

	// Close releases bus resources.
	Close() error
}

// DefaultBus is the I2C bus the accelerometer sits on (a Raspberry Pi's
// user-facing bus is /dev/i2c-1).
const DefaultBus = 1

// DefaultAddr is the LIS3DH I2C address with the SDO pin low.
const DefaultAddr = 0x18
