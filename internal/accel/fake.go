package accel

import "errors"

// Sample is a single scripted accelerometer reading in m/s^2.
type Sample struct {
	X, Y, Z float64
}

// FakeReader is a test double that returns scripted samples.
type FakeReader struct {
	// Samples contains scripted values to return. Each call to Read()
	// consumes the next sample; when exhausted, the last sample is
	// returned repeatedly.
	Samples []Sample

	// index tracks current position in Samples
	index int

	// Closed tracks if Close was called
	Closed bool

	// ReadError, if set, will be returned by Read()
	ReadError error
}

// NewFakeReader creates a FakeReader with the given samples.
func NewFakeReader(samples []Sample) *FakeReader {
	return &FakeReader{Samples: samples}
}

// Read returns the next scripted sample.
func (f *FakeReader) Read() (float64, float64, float64, error) {
	if f.ReadError != nil {
		return 0, 0, 0, f.ReadError
	}

	if len(f.Samples) == 0 {
		return 0, 0, 0, errors.New("no samples configured")
	}

	s := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}
	return s.X, s.Y, s.Z, nil
}

// Close marks the reader as closed.
func (f *FakeReader) Close() error {
	f.Closed = true
	return nil
}

// Reset resets the reader to the beginning of samples.
func (f *FakeReader) Reset() {
	f.index = 0
	f.Closed = false
}
