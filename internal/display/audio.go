package display

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Beeper plays a short tone whenever the interpreter's sound timer is
// running. It is deliberately outside internal/chip8: the core only models
// the ST counter, not audio output.
type Beeper struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	playing  bool
}

// NewBeeper loads a beep sound effect from path and initializes the
// speaker. It is wired from the driver's frame loop rather than a
// background goroutine reading a channel.
func NewBeeper(path string) (*Beeper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("display: opening beep asset: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("display: decoding beep asset: %w", err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("display: initializing speaker: %w", err)
	}

	return &Beeper{streamer: streamer, format: format}, nil
}

// Update plays the beep once if soundTimer just became nonzero, and is a
// no-op while the timer stays at zero or stays running. CHIP-8 only calls
// for "sound on" while ST > 0; a single short clip per activation
// approximates that without needing a loopable tone generator.
func (b *Beeper) Update(soundTimer byte) {
	if soundTimer > 0 && !b.playing {
		b.playing = true
		if err := b.streamer.Seek(0); err == nil {
			speaker.Play(b.streamer)
		}
		return
	}
	if soundTimer == 0 {
		b.playing = false
	}
}

// Close releases the decoded audio stream.
func (b *Beeper) Close() error {
	return b.streamer.Close()
}
