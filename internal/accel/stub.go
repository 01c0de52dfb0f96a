//go:build !linux

package accel

import "errors"

// LIS3DH is not available on non-Linux platforms.
type LIS3DH struct{}

// NewLIS3DH returns an error on non-Linux platforms.
func NewLIS3DH(bus int, addr uint16) (*LIS3DH, error) {
	return nil, errors.New("accel: not supported on this platform (requires Linux)")
}

// Read is not implemented on non-Linux platforms.
func (d *LIS3DH) Read() (float64, float64, float64, error) {
	return 0, 0, 0, errors.New("accel: not supported")
}

// Close is not implemented on non-Linux platforms.
func (d *LIS3DH) Close() error {
	return nil
}
