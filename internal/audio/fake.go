package audio

// PlayCall records one Play invocation.
type PlayCall struct {
	N    int
	Loop bool
}

// FakePlayer records playback requests for test assertions.
type FakePlayer struct {
	// Plays contains all Play calls in order.
	Plays []PlayCall

	// Stops counts Stop calls.
	Stops int

	// Closed tracks if Close was called.
	Closed bool

	// PlayError, if set, will be returned by Play.
	PlayError error
}

// NewFakePlayer creates a FakePlayer.
func NewFakePlayer() *FakePlayer {
	return &FakePlayer{}
}

// Play records the request.
func (f *FakePlayer) Play(n int, loop bool) error {
	if f.PlayError != nil {
		return f.PlayError
	}
	f.Plays = append(f.Plays, PlayCall{N: n, Loop: loop})
	return nil
}

// Stop records the request.
func (f *FakePlayer) Stop() {
	f.Stops++
}

// Close marks the player as closed.
func (f *FakePlayer) Close() error {
	f.Closed = true
	return nil
}
