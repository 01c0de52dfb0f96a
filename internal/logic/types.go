// Package logic contains pure business logic for the repulsor glove:
// angle filtering, gesture detection, button press classification, and the
// operating-state machine. This package has NO external dependencies (no
// GPIO, I2C, audio, or time.Sleep). Time is always injectable via time.Time
// parameters.
package logic

import "time"

// State represents the operating state of the repulsor.
type State int

const (
	StateOff State = iota
	StateFadingOn
	StateOn
	StateFadingOff
	StateBlast
	StateAlwaysOn
	StateColorChange
	StateShutdown
)

// String returns a short name for logging.
func (s State) String() string {
	switch s {
	case StateOff:
		return "OFF"
	case StateFadingOn:
		return "FADING_ON"
	case StateOn:
		return "ON"
	case StateFadingOff:
		return "FADING_OFF"
	case StateBlast:
		return "BLAST"
	case StateAlwaysOn:
		return "ALWAYS_ON"
	case StateColorChange:
		return "COLOR_CHANGE"
	case StateShutdown:
		return "SHUTDOWN"
	}
	return "UNKNOWN"
}

// Motion and timing tuning. Values match the original prop hardware.
const (
	// AngleThreshold is the filtered arm angle (degrees) below which the
	// arm counts as raised. Lower = more sensitive.
	AngleThreshold = 35.0

	// MovementThreshold suppresses raise/lower evaluation while the
	// filtered angle is changing by less than this many degrees.
	MovementThreshold = 0.8

	// BlastAccelThreshold is the forward (X axis) linear acceleration, in
	// m/s^2, that triggers a blast while the repulsor is on.
	BlastAccelThreshold = 6.5

	// AngleCheckInterval rate-limits accelerometer angle evaluation
	// independent of the outer tick rate.
	AngleCheckInterval = 50 * time.Millisecond

	// FadeDuration is the power-up / power-down fade length.
	FadeDuration = 500 * time.Millisecond

	// BlastDuration is how long the blast flicker runs.
	BlastDuration = 1500 * time.Millisecond

	// BlastCooldown is the minimum gap between blast triggers.
	BlastCooldown = 1000 * time.Millisecond

	// FilterSize is the capacity of the angle moving-average buffer.
	FilterSize = 20
)

// Button press duration thresholds. Classification checks longest first;
// boundaries are inclusive (duration >= threshold).
const (
	LongPressThreshold      = 1000 * time.Millisecond
	VeryLongPressThreshold  = 5000 * time.Millisecond
	ExtraLongPressThreshold = 8000 * time.Millisecond
)

// PressBucket classifies a button hold duration.
type PressBucket int

const (
	PressShort PressBucket = iota
	PressLong
	PressVeryLong
	PressExtraLong
)

// String returns a short name for logging.
func (b PressBucket) String() string {
	switch b {
	case PressShort:
		return "SHORT"
	case PressLong:
		return "LONG"
	case PressVeryLong:
		return "VERY_LONG"
	case PressExtraLong:
		return "EXTRA_LONG"
	}
	return "UNKNOWN"
}

// PressEvent is emitted once per button release.
type PressEvent struct {
	Time     time.Time
	Duration time.Duration
	Bucket   PressBucket
}

// SensorSample is one accelerometer reading, in m/s^2. Transient; not
// retained beyond the tick that produces it.
type SensorSample struct {
	X, Y, Z float64
}

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// Predefined repulsor colors, in palette order.
var (
	ColorWhite  = Color{255, 255, 255}
	ColorRed    = Color{255, 0, 0}
	ColorBlue   = Color{0, 0, 255}
	ColorCyan   = Color{0, 255, 255}
	ColorYellow = Color{255, 255, 0}
	ColorGreen  = Color{0, 255, 0}
	ColorPurple = Color{255, 0, 255}
	ColorOrange = Color{255, 128, 0}
)

// Palette is the fixed color-selection sequence. Index 0 (white) is the
// startup color; the index advances cyclically in color-change mode.
var Palette = []Color{
	ColorWhite,
	ColorRed,
	ColorBlue,
	ColorCyan,
	ColorYellow,
	ColorGreen,
	ColorPurple,
	ColorOrange,
}

// Sound identifies a sound asset by its ordinal in the lexicographically
// sorted asset list.
type Sound int

const (
	SoundBlast     Sound = 0
	SoundPowerUp   Sound = 1
	SoundPowerDown Sound = 2
	SoundColorLoop Sound = 3
)

// EffectType tags a side-effect command emitted by the state machine.
type EffectType int

const (
	EffectPlaySound EffectType = iota
	EffectStopSound
	EffectSetStatusColor
)

// Effect is a command for an external collaborator (audio or status LED).
// The state machine emits effects; it never touches hardware itself.
type Effect struct {
	Type  EffectType
	Sound Sound // EffectPlaySound only
	Loop  bool  // EffectPlaySound only
	Color Color // EffectSetStatusColor only
}

// Input is one tick's worth of sensor state fed to the machine.
type Input struct {
	Time    time.Time
	Pressed bool // debounced button level

	// HaveSample is false when the accelerometer read failed this tick;
	// the machine then skips motion evaluation and retries next tick.
	HaveSample bool
	Sample     SensorSample
}

// EventCounts tracks the number of each transition since startup.
type EventCounts struct {
	PowerUps     int
	PowerDowns   int
	Blasts       int
	ColorChanges int
}

// HeartbeatData contains information for a periodic heartbeat log line.
type HeartbeatData struct {
	Timestamp time.Time
	Uptime    time.Duration
	State     State
	Counts    EventCounts
}

// Timers is a value-type snapshot of the machine's active timestamps,
// consumed by the effects renderer. A timer is only meaningful while its
// owning state is active.
type Timers struct {
	FadeStart  time.Time
	BlastStart time.Time
	LastBlast  time.Time
}

// Snapshot is a point-in-time view of machine state for rendering.
type Snapshot struct {
	State      State
	Color      Color
	ColorIndex int
	Timers     Timers
}
