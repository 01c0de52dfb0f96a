//go:build linux

package pixels

import (
	"fmt"

	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"

	"github.com/gerranmora/iron-man-repulsor-glove/internal/logic"
)

// WS281xStrip drives a WS2812 ring through the rpi-ws281x binding.
type WS281xStrip struct {
	dev *ws2811.WS2811
	n   int
}

// NewWS281xStrip initializes the PWM/DMA engine for a ring of n pixels on
// the given BCM pin. Brightness is 0-255 and applied in hardware.
func NewWS281xStrip(n, pin, brightness int) (*WS281xStrip, error) {
	opt := ws2811.DefaultOptions
	opt.Channels[0].GpioPin = pin
	opt.Channels[0].LedCount = n
	opt.Channels[0].Brightness = brightness

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		return nil, fmt.Errorf("make ws2811: %w", err)
	}
	if err := dev.Init(); err != nil {
		return nil, fmt.Errorf("init ws2811: %w", err)
	}

	return &WS281xStrip{dev: dev, n: n}, nil
}

// Fill sets every pixel to the given color.
func (s *WS281xStrip) Fill(c logic.Color) error {
	leds := s.dev.Leds(0)
	packed := pack(c)
	for i := range leds {
		leds[i] = packed
	}
	return nil
}

// SetPixel sets one pixel.
func (s *WS281xStrip) SetPixel(i int, c logic.Color) error {
	if i < 0 || i >= s.n {
		return fmt.Errorf("pixel index %d out of range [0,%d)", i, s.n)
	}
	s.dev.Leds(0)[i] = pack(c)
	return nil
}

// Show flushes the frame to the ring.
func (s *WS281xStrip) Show() error {
	if err := s.dev.Render(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Close blanks the ring and shuts the engine down.
func (s *WS281xStrip) Close() error {
	if err := s.Fill(logic.Color{}); err == nil {
		s.dev.Render()
	}
	s.dev.Fini()
	return nil
}

// pack converts to the 0x00RRGGBB word the binding expects.
func pack(c logic.Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
