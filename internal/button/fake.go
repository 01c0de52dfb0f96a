package button

import "errors"

// FakeReader is a test double that returns scripted button levels.
type FakeReader struct {
	// Levels contains scripted pressed values. Each call to Pressed()
	// consumes the next level; when exhausted, the last level is
	// returned repeatedly.
	Levels []bool

	// index tracks current position in Levels
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Pressed()
	ReadError error
}

// NewFakeReader creates a FakeReader with the given levels.
func NewFakeReader(levels []bool) *FakeReader {
	return &FakeReader{Levels: levels}
}

// Pressed returns the next scripted level.
func (f *FakeReader) Pressed() (bool, error) {
	if f.ReadError != nil {
		return false, f.ReadError
	}

	if len(f.Levels) == 0 {
		return false, errors.New("no levels configured")
	}

	level := f.Levels[f.index]
	if f.index < len(f.Levels)-1 {
		f.index++
	}
	return level, nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of levels.
func (f *FakeReader) Reset() {
	f.index = 0
	f.Closed = false
}
