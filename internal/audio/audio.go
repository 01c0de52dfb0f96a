// Package audio plays the repulsor sound assets with hardware abstraction.
// The real implementation decodes WAV files through beep; the fake records
// playback requests.
//
// Sound assets are addressed by their ordinal in the lexicographically
// sorted list of *.wav files in the sounds directory: 0 = blast,
// 1 = power-up, 2 = power-down, 3 = color-change-mode loop. Name the files
// accordingly (e.g. 0_blast.wav ... 3_mode.wav).
package audio

// Player plays sound assets. Playback failures must never block lighting;
// callers log and continue.
type Player interface {
	// Play starts asset n, interrupting whatever is playing. With loop
	// set the asset repeats until Stop or the next Play.
	Play(n int, loop bool) error

	// Stop silences playback.
	Stop()

	// Close releases the audio device.
	Close() error
}

// DefaultSoundsDir is where the prop's WAV assets live.
const DefaultSoundsDir = "/opt/repulsor/sounds"
