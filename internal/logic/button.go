package logic

import "time"

// Classifier converts a debounced button level into one PressEvent per
// release, bucketed by hold duration.
type Classifier struct {
	// pressStart is the rising-edge timestamp; zero means idle.
	pressStart time.Time
	lastLevel  bool
}

// NewClassifier creates an idle Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Update feeds the current debounced button level. It returns a PressEvent
// and true on a falling edge with an active press; otherwise ok is false.
// A rising edge while a press is already tracked is ignored until release.
func (c *Classifier) Update(pressed bool, now time.Time) (PressEvent, bool) {
	rising := pressed && !c.lastLevel
	falling := !pressed && c.lastLevel
	c.lastLevel = pressed

	if rising && c.pressStart.IsZero() {
		c.pressStart = now
		return PressEvent{}, false
	}

	if falling && !c.pressStart.IsZero() {
		duration := now.Sub(c.pressStart)
		c.pressStart = time.Time{}
		return PressEvent{
			Time:     now,
			Duration: duration,
			Bucket:   ClassifyPress(duration),
		}, true
	}

	return PressEvent{}, false
}

// ClassifyPress buckets a hold duration, checking the longest threshold
// first so exactly one bucket matches.
func ClassifyPress(d time.Duration) PressBucket {
	switch {
	case d >= ExtraLongPressThreshold:
		return PressExtraLong
	case d >= VeryLongPressThreshold:
		return PressVeryLong
	case d >= LongPressThreshold:
		return PressLong
	}
	return PressShort
}
