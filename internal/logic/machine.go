package logic

import (
	"math"
	"time"
)

// Machine is the central authority for repulsor behavior. It consumes
// button levels and accelerometer samples and owns the current state, the
// color selection, and every timer. All mutation happens inside Step, which
// is called once per scheduler tick; the machine is not safe for concurrent
// use and does not need to be.
type Machine struct {
	state      State
	colorIndex int

	filter         *AngleFilter
	lastFiltered   float64
	lastAngleCheck time.Time

	fadeStart  time.Time
	blastStart time.Time
	lastBlast  time.Time

	classifier *Classifier

	startTime     time.Time
	lastHeartbeat time.Time
	counts        EventCounts
}

// NewMachine creates a Machine in the Off state with the default (white)
// color selected. The startTime is used for uptime in heartbeats.
func NewMachine(startTime time.Time) *Machine {
	return &Machine{
		filter:        NewAngleFilter(FilterSize),
		classifier:    NewClassifier(),
		startTime:     startTime,
		lastHeartbeat: startTime,
	}
}

// Step advances the machine by one tick and returns the side-effect
// commands the transition produced, in order: button handling, motion
// evaluation, then time-based fade/blast completion.
func (m *Machine) Step(in Input) []Effect {
	var effects []Effect

	if ev, ok := m.classifier.Update(in.Pressed, in.Time); ok {
		effects = append(effects, m.handlePress(ev)...)
	}

	if in.HaveSample && m.motionEnabled() {
		effects = append(effects, m.handleMotion(in.Sample, in.Time)...)
		effects = append(effects, m.handleGesture(in.Sample, in.Time)...)
	}

	m.advanceTimers(in.Time)

	return effects
}

// motionEnabled reports whether angle and gesture evaluation run this tick.
// Motion is ignored while a mode that must not be interrupted by arm
// movement is active.
func (m *Machine) motionEnabled() bool {
	switch m.state {
	case StateColorChange, StateShutdown, StateAlwaysOn, StateBlast:
		return false
	}
	return true
}

// handleMotion runs the rate-limited angle filter and fires raise/lower
// transitions with edge semantics: raise only from Off, lower only from On,
// and neither unless the filtered angle moved by MovementThreshold since
// the last significant reading.
func (m *Machine) handleMotion(sample SensorSample, now time.Time) []Effect {
	if now.Sub(m.lastAngleCheck) < AngleCheckInterval {
		return nil
	}
	m.lastAngleCheck = now

	filtered := m.filter.Update(ArmAngle(sample))
	if math.Abs(filtered-m.lastFiltered) < MovementThreshold {
		return nil
	}

	var effects []Effect

	switch {
	case filtered <= AngleThreshold && m.state == StateOff:
		m.state = StateFadingOn
		m.fadeStart = now
		m.counts.PowerUps++
		effects = append(effects, Effect{Type: EffectPlaySound, Sound: SoundPowerUp})

	case filtered > AngleThreshold && m.state == StateOn:
		m.state = StateFadingOff
		m.fadeStart = now
		m.counts.PowerDowns++
		effects = append(effects, Effect{Type: EffectPlaySound, Sound: SoundPowerDown})
	}

	m.lastFiltered = filtered
	return effects
}

// handleGesture checks the forward-thrust predicate and enters Blast.
func (m *Machine) handleGesture(sample SensorSample, now time.Time) []Effect {
	if !BlastGesture(sample, m.state, now, m.lastBlast) {
		return nil
	}
	m.state = StateBlast
	m.blastStart = now
	m.lastBlast = now
	m.counts.Blasts++
	return []Effect{{Type: EffectPlaySound, Sound: SoundBlast}}
}

// advanceTimers completes fades and blasts whose duration has elapsed.
// Timeouts are pure timestamp comparisons; no OS timers are involved.
func (m *Machine) advanceTimers(now time.Time) {
	switch m.state {
	case StateFadingOn:
		if now.Sub(m.fadeStart) >= FadeDuration {
			m.state = StateOn
		}
	case StateFadingOff:
		if now.Sub(m.fadeStart) >= FadeDuration {
			m.state = StateOff
		}
	case StateBlast:
		if now.Sub(m.blastStart) >= BlastDuration {
			m.state = StateOn
		}
	}
}

// handlePress applies one classified button release to the state machine.
func (m *Machine) handlePress(ev PressEvent) []Effect {
	switch ev.Bucket {
	case PressExtraLong:
		// Reserved for a future mode switch; deliberately a no-op.
		return nil

	case PressVeryLong:
		switch m.state {
		case StateAlwaysOn:
			m.state = StateOff
		case StateOn, StateOff:
			m.state = StateAlwaysOn
		}
		return nil

	case PressLong:
		if m.state != StateColorChange {
			m.state = StateColorChange
			return []Effect{
				{Type: EffectStopSound},
				{Type: EffectPlaySound, Sound: SoundColorLoop, Loop: true},
			}
		}
		m.state = StateOff
		return []Effect{{Type: EffectStopSound}}

	case PressShort:
		if m.state != StateColorChange {
			return nil
		}
		m.colorIndex = (m.colorIndex + 1) % len(Palette)
		m.counts.ColorChanges++
		return []Effect{{Type: EffectSetStatusColor, Color: m.CurrentColor()}}
	}
	return nil
}

// State returns the current operating state.
func (m *Machine) State() State {
	return m.state
}

// CurrentColor returns the selected palette color.
func (m *Machine) CurrentColor() Color {
	return Palette[m.colorIndex]
}

// ColorIndex returns the current palette index.
func (m *Machine) ColorIndex() int {
	return m.colorIndex
}

// Counts returns the transition counts since startup.
func (m *Machine) Counts() EventCounts {
	return m.counts
}

// Snapshot returns a value-type view for the effects renderer.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		State:      m.state,
		Color:      m.CurrentColor(),
		ColorIndex: m.colorIndex,
		Timers: Timers{
			FadeStart:  m.fadeStart,
			BlastStart: m.blastStart,
			LastBlast:  m.lastBlast,
		},
	}
}

// CheckHeartbeat returns heartbeat data if the interval has elapsed since
// the last heartbeat (or startup). Returns nil if the interval has not
// elapsed or if interval is <= 0 (disabled).
func (m *Machine) CheckHeartbeat(now time.Time, interval time.Duration) *HeartbeatData {
	if interval <= 0 {
		return nil
	}
	if now.Sub(m.lastHeartbeat) < interval {
		return nil
	}
	m.lastHeartbeat = now
	return &HeartbeatData{
		Timestamp: now,
		Uptime:    now.Sub(m.startTime),
		State:     m.state,
		Counts:    m.counts,
	}
}
