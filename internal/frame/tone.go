package frame

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// Tone generates a mono square wave as 32-bit float little endian PCM.
// The wave is silent while the tone is disabled. Read may be called from
// an audio goroutine while SetActive is called from the frame loop.
type Tone struct {
	sampleRate int
	frequency  float64
	volume     float32

	active atomic.Bool
	phase  float64
}

// NewTone returns a disabled square wave generator.
func NewTone(sampleRate int, frequency float64, volume float32) *Tone {
	return &Tone{
		sampleRate: sampleRate,
		frequency:  frequency,
		volume:     volume,
	}
}

// SetActive enables or disables the tone.
func (t *Tone) SetActive(active bool) {
	t.active.Store(active)
}

// Active returns whether the tone is enabled.
func (t *Tone) Active() bool {
	return t.active.Load()
}

// Read fills p with samples, the length is rounded down to whole samples.
func (t *Tone) Read(p []byte) (int, error) {
	n := len(p) / 4 * 4
	active := t.active.Load()
	step := t.frequency / float64(t.sampleRate)

	for i := 0; i < n; i += 4 {
		var sample float32
		if active {
			sample = t.volume
			if t.phase >= 0.5 {
				sample = -t.volume
			}
		}
		binary.LittleEndian.PutUint32(p[i:], math.Float32bits(sample))

		t.phase += step
		if t.phase >= 1 {
			t.phase -= 1
		}
	}
	return n, nil
}
