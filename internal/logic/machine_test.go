package logic

import (
	"math"
	"testing"
	"time"
)

// sampleAtAngle builds a sample whose Y/Z projection is the given arm
// angle in degrees. Magnitude does not matter to ArmAngle.
func sampleAtAngle(deg float64) SensorSample {
	rad := deg * math.Pi / 180
	return SensorSample{Y: math.Sin(rad), Z: math.Cos(rad)}
}

func motionInput(t time.Time, s SensorSample) Input {
	return Input{Time: t, HaveSample: true, Sample: s}
}

// raiseMachine steps a fresh machine through a raise at start and returns
// it in FadingOn.
func raiseMachine(t *testing.T, start time.Time) *Machine {
	t.Helper()
	m := NewMachine(start)
	m.Step(motionInput(start, sampleAtAngle(20)))
	if m.State() != StateFadingOn {
		t.Fatalf("setup: expected FADING_ON after raise, got %s", m.State())
	}
	return m
}

// onMachine returns a machine in the On state; the machine's clock cursor
// is start + FadeDuration.
func onMachine(t *testing.T, start time.Time) *Machine {
	t.Helper()
	m := raiseMachine(t, start)
	m.Step(Input{Time: start.Add(FadeDuration)})
	if m.State() != StateOn {
		t.Fatalf("setup: expected ON after fade, got %s", m.State())
	}
	return m
}

func TestNewMachine(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	if m.State() != StateOff {
		t.Errorf("initial state: got %s, want OFF", m.State())
	}
	if m.ColorIndex() != 0 {
		t.Errorf("initial color index: got %d, want 0", m.ColorIndex())
	}
	if m.CurrentColor() != ColorWhite {
		t.Errorf("initial color: got %+v, want white", m.CurrentColor())
	}
}

func TestRaiseEntersFadingOn(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	effects := m.Step(motionInput(start, sampleAtAngle(20)))

	if m.State() != StateFadingOn {
		t.Fatalf("state: got %s, want FADING_ON", m.State())
	}
	if len(effects) != 1 {
		t.Fatalf("expected 1 effect, got %d", len(effects))
	}
	e := effects[0]
	if e.Type != EffectPlaySound || e.Sound != SoundPowerUp || e.Loop {
		t.Errorf("expected one-shot power-up sound, got %+v", e)
	}
	if m.Counts().PowerUps != 1 {
		t.Errorf("power-up count: got %d, want 1", m.Counts().PowerUps)
	}
}

func TestHysteresisSuppressesEvents(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	// Angle 10 averaged over the zero-filled buffer moves the filtered
	// value by only 0.5 degrees, below MovementThreshold. No event may
	// fire even though the absolute angle is far below AngleThreshold.
	effects := m.Step(motionInput(start, sampleAtAngle(10)))

	if len(effects) != 0 {
		t.Errorf("expected no effects, got %d", len(effects))
	}
	if m.State() != StateOff {
		t.Errorf("state: got %s, want OFF", m.State())
	}
}

func TestAngleCheckRateLimit(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	// First sample is evaluated but moves the filter too little to fire.
	m.Step(motionInput(start, sampleAtAngle(10)))
	if m.State() != StateOff {
		t.Fatalf("setup: got %s, want OFF", m.State())
	}

	// 10ms later: inside the 50ms angle window, so the sample must be
	// ignored even though it would otherwise raise.
	effects := m.Step(motionInput(start.Add(10*time.Millisecond), sampleAtAngle(20)))
	if len(effects) != 0 {
		t.Errorf("sample inside AngleCheckInterval must be ignored, got %+v", effects)
	}
	if m.State() != StateOff {
		t.Errorf("state: got %s, want OFF", m.State())
	}

	// The same sample at the window boundary raises.
	m.Step(motionInput(start.Add(AngleCheckInterval), sampleAtAngle(20)))
	if m.State() != StateFadingOn {
		t.Errorf("at window boundary: got %s, want FADING_ON", m.State())
	}
}

func TestFadeOnCompletes(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := raiseMachine(t, start)

	m.Step(Input{Time: start.Add(FadeDuration - time.Millisecond)})
	if m.State() != StateFadingOn {
		t.Errorf("1ms early: got %s, want FADING_ON", m.State())
	}

	m.Step(Input{Time: start.Add(FadeDuration)})
	if m.State() != StateOn {
		t.Errorf("at boundary: got %s, want ON", m.State())
	}
}

func TestLowerEntersFadingOffThenOff(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := onMachine(t, start)
	cursor := start.Add(FadeDuration)

	// Hold the arm down; the moving average needs several samples to
	// cross the threshold.
	var lowered bool
	var effects []Effect
	for i := 0; i < FilterSize; i++ {
		cursor = cursor.Add(AngleCheckInterval)
		effects = m.Step(motionInput(cursor, sampleAtAngle(90)))
		if m.State() == StateFadingOff {
			lowered = true
			break
		}
	}
	if !lowered {
		t.Fatal("lowering the arm never left ON")
	}
	if len(effects) != 1 || effects[0].Type != EffectPlaySound || effects[0].Sound != SoundPowerDown {
		t.Errorf("expected power-down sound, got %+v", effects)
	}
	if m.Counts().PowerDowns != 1 {
		t.Errorf("power-down count: got %d, want 1", m.Counts().PowerDowns)
	}

	m.Step(Input{Time: cursor.Add(FadeDuration)})
	if m.State() != StateOff {
		t.Errorf("after fade-off: got %s, want OFF", m.State())
	}
}

func TestBlastLifecycle(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := onMachine(t, start)
	blastAt := start.Add(FadeDuration).Add(10 * time.Millisecond)

	thrust := sampleAtAngle(20)
	thrust.X = 7.0
	effects := m.Step(motionInput(blastAt, thrust))

	if m.State() != StateBlast {
		t.Fatalf("state: got %s, want BLAST", m.State())
	}
	if len(effects) != 1 || effects[0].Sound != SoundBlast {
		t.Errorf("expected blast sound, got %+v", effects)
	}
	if m.Counts().Blasts != 1 {
		t.Errorf("blast count: got %d, want 1", m.Counts().Blasts)
	}

	// Continued thrusting during the blast is ignored.
	effects = m.Step(motionInput(blastAt.Add(10*time.Millisecond), thrust))
	if len(effects) != 0 {
		t.Errorf("thrust during blast produced effects: %+v", effects)
	}
	if m.Counts().Blasts != 1 {
		t.Errorf("blast count after re-thrust: got %d, want 1", m.Counts().Blasts)
	}

	// Blast completes and hands back to On.
	m.Step(Input{Time: blastAt.Add(BlastDuration)})
	if m.State() != StateOn {
		t.Errorf("after blast: got %s, want ON", m.State())
	}
}

func TestBlastUnreachableFromOff(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	thrust := sampleAtAngle(20)
	thrust.X = 9.0
	m.Step(motionInput(start, thrust))

	// The thrust raises the arm, but it cannot jump straight to Blast.
	if m.State() == StateBlast {
		t.Fatal("blast must not be reachable from OFF")
	}
	if m.Counts().Blasts != 0 {
		t.Errorf("blast count: got %d, want 0", m.Counts().Blasts)
	}
}

func TestVeryLongPressTogglesAlwaysOn(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	m.Step(Input{Time: start, Pressed: true})
	effects := m.Step(Input{Time: start.Add(VeryLongPressThreshold), Pressed: false})
	if m.State() != StateAlwaysOn {
		t.Fatalf("state: got %s, want ALWAYS_ON", m.State())
	}
	if len(effects) != 0 {
		t.Errorf("toggle should emit no commands, got %+v", effects)
	}

	cursor := start.Add(10 * time.Second)
	m.Step(Input{Time: cursor, Pressed: true})
	m.Step(Input{Time: cursor.Add(VeryLongPressThreshold), Pressed: false})
	if m.State() != StateOff {
		t.Errorf("second toggle: got %s, want OFF", m.State())
	}
}

func TestAlwaysOnSuppressesMotion(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)
	m.Step(Input{Time: start, Pressed: true})
	m.Step(Input{Time: start.Add(VeryLongPressThreshold), Pressed: false})

	cursor := start.Add(10 * time.Second)
	thrust := sampleAtAngle(90)
	thrust.X = 9.0
	for i := 0; i < 10; i++ {
		cursor = cursor.Add(AngleCheckInterval)
		if effects := m.Step(motionInput(cursor, thrust)); len(effects) != 0 {
			t.Fatalf("motion in ALWAYS_ON produced effects: %+v", effects)
		}
	}
	if m.State() != StateAlwaysOn {
		t.Errorf("state: got %s, want ALWAYS_ON", m.State())
	}
}

func TestLongPressEntersAndExitsColorChange(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	m.Step(Input{Time: start, Pressed: true})
	effects := m.Step(Input{Time: start.Add(LongPressThreshold), Pressed: false})
	if m.State() != StateColorChange {
		t.Fatalf("state: got %s, want COLOR_CHANGE", m.State())
	}
	if len(effects) != 2 {
		t.Fatalf("expected stop + loop sound, got %+v", effects)
	}
	if effects[0].Type != EffectStopSound {
		t.Errorf("first effect: got %+v, want stop sound", effects[0])
	}
	if effects[1].Type != EffectPlaySound || effects[1].Sound != SoundColorLoop || !effects[1].Loop {
		t.Errorf("second effect: got %+v, want looping mode sound", effects[1])
	}

	cursor := start.Add(10 * time.Second)
	m.Step(Input{Time: cursor, Pressed: true})
	effects = m.Step(Input{Time: cursor.Add(LongPressThreshold), Pressed: false})
	if m.State() != StateOff {
		t.Errorf("exit: got %s, want OFF", m.State())
	}
	if len(effects) != 1 || effects[0].Type != EffectStopSound {
		t.Errorf("exit effects: got %+v, want stop sound", effects)
	}
}

func TestShortPressCyclesPalette(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)
	m.Step(Input{Time: start, Pressed: true})
	m.Step(Input{Time: start.Add(LongPressThreshold), Pressed: false})

	const presses = 10
	cursor := start.Add(10 * time.Second)
	for i := 0; i < presses; i++ {
		m.Step(Input{Time: cursor, Pressed: true})
		effects := m.Step(Input{Time: cursor.Add(100 * time.Millisecond), Pressed: false})

		wantIndex := (i + 1) % len(Palette)
		if m.ColorIndex() != wantIndex {
			t.Fatalf("press %d: index got %d, want %d", i+1, m.ColorIndex(), wantIndex)
		}
		if len(effects) != 1 || effects[0].Type != EffectSetStatusColor {
			t.Fatalf("press %d: effects %+v, want status color", i+1, effects)
		}
		if effects[0].Color != Palette[wantIndex] {
			t.Errorf("press %d: status color got %+v, want %+v", i+1, effects[0].Color, Palette[wantIndex])
		}
		cursor = cursor.Add(time.Second)
	}

	if m.ColorIndex() != presses%len(Palette) {
		t.Errorf("final index: got %d, want %d", m.ColorIndex(), presses%len(Palette))
	}
	if m.Counts().ColorChanges != presses {
		t.Errorf("color change count: got %d, want %d", m.Counts().ColorChanges, presses)
	}
}

func TestShortPressOutsideColorChangeIsNoop(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	m.Step(Input{Time: start, Pressed: true})
	effects := m.Step(Input{Time: start.Add(100 * time.Millisecond), Pressed: false})
	if len(effects) != 0 {
		t.Errorf("expected no effects, got %+v", effects)
	}
	if m.State() != StateOff {
		t.Errorf("state: got %s, want OFF", m.State())
	}
	if m.ColorIndex() != 0 {
		t.Errorf("color index: got %d, want 0", m.ColorIndex())
	}
}

func TestExtraLongPressIsReservedNoop(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	m.Step(Input{Time: start, Pressed: true})
	effects := m.Step(Input{Time: start.Add(ExtraLongPressThreshold), Pressed: false})
	if len(effects) != 0 {
		t.Errorf("expected no effects, got %+v", effects)
	}
	if m.State() != StateOff {
		t.Errorf("state: got %s, want OFF", m.State())
	}
}

func TestColorChangeSuppressesMotion(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)
	m.Step(Input{Time: start, Pressed: true})
	m.Step(Input{Time: start.Add(LongPressThreshold), Pressed: false})

	cursor := start.Add(10 * time.Second)
	thrust := sampleAtAngle(20)
	thrust.X = 9.0
	for i := 0; i < 10; i++ {
		cursor = cursor.Add(AngleCheckInterval)
		if effects := m.Step(motionInput(cursor, thrust)); len(effects) != 0 {
			t.Fatalf("motion in COLOR_CHANGE produced effects: %+v", effects)
		}
	}
	if m.State() != StateColorChange {
		t.Errorf("state: got %s, want COLOR_CHANGE", m.State())
	}
}

func TestMissingSampleSkipsMotion(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	// A failed sensor read is "no signal this tick": nothing changes.
	for i := 0; i < 5; i++ {
		effects := m.Step(Input{Time: start.Add(time.Duration(i) * AngleCheckInterval)})
		if len(effects) != 0 {
			t.Fatalf("tick %d: expected no effects, got %+v", i, effects)
		}
	}
	if m.State() != StateOff {
		t.Errorf("state: got %s, want OFF", m.State())
	}

	// The next good sample still raises.
	m.Step(motionInput(start.Add(time.Second), sampleAtAngle(20)))
	if m.State() != StateFadingOn {
		t.Errorf("after recovery: got %s, want FADING_ON", m.State())
	}
}

func TestCheckHeartbeat(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMachine(start)

	if hb := m.CheckHeartbeat(start.Add(time.Minute), 0); hb != nil {
		t.Error("disabled heartbeat must return nil")
	}
	if hb := m.CheckHeartbeat(start.Add(30*time.Second), time.Minute); hb != nil {
		t.Error("heartbeat before interval must return nil")
	}

	hb := m.CheckHeartbeat(start.Add(time.Minute), time.Minute)
	if hb == nil {
		t.Fatal("expected heartbeat at interval")
	}
	if hb.Uptime != time.Minute {
		t.Errorf("uptime: got %v, want 1m", hb.Uptime)
	}
	if hb.State != StateOff {
		t.Errorf("state: got %s, want OFF", hb.State)
	}

	// The interval restarts from the last heartbeat.
	if hb := m.CheckHeartbeat(start.Add(90*time.Second), time.Minute); hb != nil {
		t.Error("heartbeat before next interval must return nil")
	}
	if hb := m.CheckHeartbeat(start.Add(2*time.Minute), time.Minute); hb == nil {
		t.Error("expected second heartbeat")
	}
}

func TestSnapshot(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := raiseMachine(t, start)

	snap := m.Snapshot()
	if snap.State != StateFadingOn {
		t.Errorf("snapshot state: got %s, want FADING_ON", snap.State)
	}
	if snap.Color != ColorWhite {
		t.Errorf("snapshot color: got %+v, want white", snap.Color)
	}
	if !snap.Timers.FadeStart.Equal(start) {
		t.Errorf("snapshot fade start: got %v, want %v", snap.Timers.FadeStart, start)
	}
}
