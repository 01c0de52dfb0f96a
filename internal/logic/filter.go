package logic

import "math"

// AngleFilter smooths raw arm-angle readings with a fixed-capacity moving
// average. The buffer starts zero-filled, so the first FilterSize updates
// produce a partial average biased toward zero. The original hardware
// behaves the same way and the bias washes out within one second at the
// 50ms sample rate, so it is kept.
type AngleFilter struct {
	buf []float64
	pos int
}

// NewAngleFilter creates an AngleFilter with the given buffer capacity.
func NewAngleFilter(size int) *AngleFilter {
	return &AngleFilter{buf: make([]float64, size)}
}

// Update inserts a raw angle into the buffer, overwriting the oldest slot,
// and returns the mean of all slots.
func (f *AngleFilter) Update(raw float64) float64 {
	f.buf[f.pos] = raw
	f.pos = (f.pos + 1) % len(f.buf)

	var sum float64
	for _, v := range f.buf {
		sum += v
	}
	return sum / float64(len(f.buf))
}

// ArmAngle derives the arm angle in degrees from one accelerometer sample.
// The Y/Z projection tracks forearm pitch: near 0 with the arm raised
// (palm forward), growing as the arm drops.
func ArmAngle(s SensorSample) float64 {
	return math.Atan2(s.Y, s.Z) * 180 / math.Pi
}
