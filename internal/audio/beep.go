//go:build cgo

package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// BeepPlayer plays WAV assets through the beep speaker. Assets are decoded
// into memory once at startup; the files are small one-shot effects.
type BeepPlayer struct {
	rate    beep.SampleRate
	buffers []*beep.Buffer
	names   []string
}

// NewBeepPlayer loads every *.wav in dir (sorted by name), initializes the
// speaker at the first asset's sample rate, and pre-decodes all assets.
func NewBeepPlayer(dir string) (*BeepPlayer, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read sounds dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ".wav") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no wav files in %s", dir)
	}

	p := &BeepPlayer{names: names}

	for i, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		streamer, format, err := wav.Decode(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}

		if i == 0 {
			p.rate = format.SampleRate
			if err := speaker.Init(p.rate, p.rate.N(50*time.Millisecond)); err != nil {
				streamer.Close()
				return nil, fmt.Errorf("init speaker: %w", err)
			}
		}

		buf := beep.NewBuffer(format)
		buf.Append(streamer)
		streamer.Close()
		p.buffers = append(p.buffers, buf)
	}

	return p, nil
}

// Names returns the sorted asset names, index-aligned with Play ordinals.
func (p *BeepPlayer) Names() []string {
	return p.names
}

// Play starts asset n, interrupting current playback.
func (p *BeepPlayer) Play(n int, loop bool) error {
	if n < 0 || n >= len(p.buffers) {
		return fmt.Errorf("no sound asset %d (have %d)", n, len(p.buffers))
	}

	buf := p.buffers[n]
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	if sr := buf.Format().SampleRate; sr != p.rate {
		s = beep.Resample(4, sr, p.rate, s)
	}

	speaker.Clear()
	speaker.Play(s)
	return nil
}

// Stop silences playback.
func (p *BeepPlayer) Stop() {
	speaker.Clear()
}

// Close stops playback and releases the audio device.
func (p *BeepPlayer) Close() error {
	speaker.Clear()
	speaker.Close()
	return nil
}
