//go:build !linux

package pixels

import (
	"errors"

	"github.com/gerranmora/iron-man-repulsor-glove/internal/logic"
)

// WS281xStrip is not available on non-Linux platforms.
type WS281xStrip struct{}

// NewWS281xStrip returns an error on non-Linux platforms.
func NewWS281xStrip(n, pin, brightness int) (*WS281xStrip, error) {
	return nil, errors.New("pixels: not supported on this platform (requires Linux)")
}

// Fill is not implemented on non-Linux platforms.
func (s *WS281xStrip) Fill(c logic.Color) error {
	return errors.New("pixels: not supported")
}

// SetPixel is not implemented on non-Linux platforms.
func (s *WS281xStrip) SetPixel(i int, c logic.Color) error {
	return errors.New("pixels: not supported")
}

// Show is not implemented on non-Linux platforms.
func (s *WS281xStrip) Show() error {
	return errors.New("pixels: not supported")
}

// Close is not implemented on non-Linux platforms.
func (s *WS281xStrip) Close() error {
	return nil
}
