package logic

import "time"

// BlastGesture reports whether a forward-thrust blast should fire for the
// given sample. It is a pure predicate; the caller records the blast time
// and performs the state transition.
//
// A blast fires only while the repulsor is fully on, outside the cooldown
// window, when forward (X) acceleration exceeds the threshold. This is a
// deliberately simple single-axis check, not a gesture classifier: on the
// prop it has proven more reliable than angle-qualified detection.
func BlastGesture(sample SensorSample, state State, now, lastBlast time.Time) bool {
	if state != StateOn {
		return false
	}
	if now.Sub(lastBlast) < BlastCooldown {
		return false
	}
	return sample.X > BlastAccelThreshold
}
