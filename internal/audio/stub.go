//go:build !cgo

package audio

import "errors"

// BeepPlayer is not available without cgo (the speaker backend needs ALSA).
type BeepPlayer struct{}

// NewBeepPlayer returns an error when built without cgo.
func NewBeepPlayer(dir string) (*BeepPlayer, error) {
	return nil, errors.New("audio: not supported in this build (requires cgo)")
}

// Names is not implemented without cgo.
func (p *BeepPlayer) Names() []string {
	return nil
}

// Play is not implemented without cgo.
func (p *BeepPlayer) Play(n int, loop bool) error {
	return errors.New("audio: not supported")
}

// Stop is not implemented without cgo.
func (p *BeepPlayer) Stop() {}

// Close is not implemented without cgo.
func (p *BeepPlayer) Close() error {
	return nil
}
