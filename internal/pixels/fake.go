package pixels

import (
	"fmt"

	"github.com/gerranmora/iron-man-repulsor-glove/internal/logic"
)

// FakeStrip records every frame shown for test assertions.
type FakeStrip struct {
	// Frames contains a copy of the pixel buffer at each Show call.
	Frames [][]logic.Color

	// Closed tracks if Close was called.
	Closed bool

	// ShowError, if set, will be returned by Show().
	ShowError error

	// FillError, if set, will be returned by Fill().
	FillError error

	buf []logic.Color
}

// NewFakeStrip creates a FakeStrip with n pixels.
func NewFakeStrip(n int) *FakeStrip {
	return &FakeStrip{buf: make([]logic.Color, n)}
}

// Fill sets every pixel to the given color.
func (f *FakeStrip) Fill(c logic.Color) error {
	if f.FillError != nil {
		return f.FillError
	}
	for i := range f.buf {
		f.buf[i] = c
	}
	return nil
}

// SetPixel sets one pixel.
func (f *FakeStrip) SetPixel(i int, c logic.Color) error {
	if i < 0 || i >= len(f.buf) {
		return fmt.Errorf("pixel index %d out of range [0,%d)", i, len(f.buf))
	}
	f.buf[i] = c
	return nil
}

// Show records the current buffer.
func (f *FakeStrip) Show() error {
	if f.ShowError != nil {
		return f.ShowError
	}
	frame := make([]logic.Color, len(f.buf))
	copy(frame, f.buf)
	f.Frames = append(f.Frames, frame)
	return nil
}

// Close marks the strip as closed.
func (f *FakeStrip) Close() error {
	f.Closed = true
	return nil
}

// LastFrame returns the most recently shown frame, or nil if none.
func (f *FakeStrip) LastFrame() []logic.Color {
	if len(f.Frames) == 0 {
		return nil
	}
	return f.Frames[len(f.Frames)-1]
}
