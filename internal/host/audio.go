//go:build !headless

package host

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
	"github.com/retroenv/chip8vm/internal/frame"
)

// Beeper plays a square wave tone while the sound timer is active.
type Beeper struct {
	player *oto.Player
	tone   *frame.Tone
}

// NewBeeper opens the audio device and starts the silent tone.
func NewBeeper() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	tone := frame.NewTone(sampleRate, toneFrequency, toneVolume)
	player := ctx.NewPlayer(tone)
	player.Play()

	return &Beeper{
		player: player,
		tone:   tone,
	}, nil
}

// SetActive switches the tone on or off.
func (b *Beeper) SetActive(active bool) {
	b.tone.SetActive(active)
}

// Close stops the audio playback.
func (b *Beeper) Close() error {
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
