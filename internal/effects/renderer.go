// Package effects maps machine state and elapsed time to concrete LED
// frames: fade interpolation, solid colors, and the blast flicker.
package effects

import (
	"time"

	"github.com/gerranmora/iron-man-repulsor-glove/internal/logic"
)

// flickerInterval bounds the blast flicker refresh to roughly 20 Hz so the
// effect does not churn the strip on every scheduler tick.
const flickerInterval = 50 * time.Millisecond

// Rand is the randomness source for the blast flicker. *math/rand.Rand
// satisfies it; tests inject a deterministic implementation.
type Rand interface {
	// Intn returns a non-negative pseudo-random int in [0, n).
	Intn(n int) int
}

// Frame is one rendered LED frame. Skip means the strip should not be
// rewritten this tick (no visual change, or flicker rate limit).
type Frame struct {
	Skip   bool
	Pixels []logic.Color
}

// Renderer produces frames from machine snapshots. It keeps only display
// bookkeeping (last frame, flicker clock); all behavioral state lives in
// the machine.
type Renderer struct {
	numPixels int
	rng       Rand

	lastFlicker time.Time
	lastFill    logic.Color
	haveFill    bool
}

// NewRenderer creates a Renderer for a strip of numPixels using rng for
// the blast flicker.
func NewRenderer(numPixels int, rng Rand) *Renderer {
	return &Renderer{numPixels: numPixels, rng: rng}
}

// Render maps (state, elapsed time in state) to a frame.
func (r *Renderer) Render(snap logic.Snapshot, now time.Time) Frame {
	switch snap.State {
	case logic.StateOff, logic.StateShutdown:
		return r.fill(logic.Color{})

	case logic.StateFadingOn:
		return r.fill(scale(snap.Color, fadeProgress(now.Sub(snap.Timers.FadeStart))))

	case logic.StateFadingOff:
		return r.fill(scale(snap.Color, 1-fadeProgress(now.Sub(snap.Timers.FadeStart))))

	case logic.StateOn, logic.StateAlwaysOn, logic.StateColorChange:
		return r.fill(snap.Color)

	case logic.StateBlast:
		return r.flicker(now)
	}

	return Frame{Skip: true}
}

// fill returns a solid frame, skipping if the strip already shows it.
func (r *Renderer) fill(c logic.Color) Frame {
	if r.haveFill && r.lastFill == c {
		return Frame{Skip: true}
	}
	r.lastFill = c
	r.haveFill = true

	px := make([]logic.Color, r.numPixels)
	for i := range px {
		px[i] = c
	}
	return Frame{Pixels: px}
}

// flicker renders one blast frame: each pixel independently draws an
// intensity in [100,150]; one draw in three is orange-biased, the rest are
// white. Frames refresh at most every flickerInterval.
func (r *Renderer) flicker(now time.Time) Frame {
	if now.Sub(r.lastFlicker) < flickerInterval {
		return Frame{Skip: true}
	}
	r.lastFlicker = now
	r.haveFill = false

	px := make([]logic.Color, r.numPixels)
	for i := range px {
		v := uint8(100 + r.rng.Intn(51))
		if r.rng.Intn(3) == 0 {
			px[i] = logic.Color{R: v, G: v / 2, B: 0}
		} else {
			px[i] = logic.Color{R: v, G: v, B: v}
		}
	}
	return Frame{Pixels: px}
}

// fadeProgress converts elapsed fade time to a [0,1] ramp position.
func fadeProgress(elapsed time.Duration) float64 {
	p := float64(elapsed) / float64(logic.FadeDuration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// scale multiplies each channel by brightness in [0,1].
func scale(c logic.Color, brightness float64) logic.Color {
	return logic.Color{
		R: uint8(float64(c.R) * brightness),
		G: uint8(float64(c.G) * brightness),
		B: uint8(float64(c.B) * brightness),
	}
}
