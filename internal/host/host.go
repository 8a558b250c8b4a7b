// Package host connects the frame loop to the window, terminal and audio
// output of the host system.
package host

import (
	"errors"

	"github.com/retroenv/chip8vm/internal/display"
)

// ErrNoWindow is returned when the binary was built without window support.
var ErrNoWindow = errors.New("window support not available in headless build")

// Colors of the display pixels in RGBA.
var (
	foreground = [4]byte{0xFF, 0xFF, 0xFF, 0xFF}
	background = [4]byte{0x00, 0x00, 0x00, 0xFF}
)

// fillRGBA converts the display to RGBA pixel data. The buffer must hold
// 4 bytes per display pixel.
func fillRGBA(d *display.Display, buf []byte) {
	pixels := d.Pixels()
	for i, lit := range pixels {
		color := background
		if lit {
			color = foreground
		}
		copy(buf[4*i:4*i+4], color[:])
	}
}

// Tone parameters of the beeper.
const (
	sampleRate    = 44100
	toneFrequency = 440
	toneVolume    = 0.2
)
