package rgbled

import "github.com/gerranmora/iron-man-repulsor-glove/internal/logic"

// FakeDriver records every color set for test assertions.
type FakeDriver struct {
	// Colors contains all SetColor calls in order.
	Colors []logic.Color

	// Closed tracks if Close was called.
	Closed bool

	// SetError, if set, will be returned by SetColor.
	SetError error
}

// NewFakeDriver creates a FakeDriver.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{}
}

// SetColor records the color.
func (f *FakeDriver) SetColor(c logic.Color) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.Colors = append(f.Colors, c)
	return nil
}

// Close marks the driver as closed.
func (f *FakeDriver) Close() error {
	f.Closed = true
	return nil
}
