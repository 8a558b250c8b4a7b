//go:build headless

package host

import (
	"context"

	"github.com/retroenv/chip8vm/internal/frame"
	"github.com/retroenv/retrogolib/log"
)

// WindowOptions configures the emulator window.
type WindowOptions struct {
	Title     string
	Scale     int
	MaxFrames int
	Keymap    frame.Keymap
}

// RunWindow is not supported in headless builds.
func RunWindow(_ context.Context, _ *log.Logger, _ *frame.Loop, _ WindowOptions) error {
	return ErrNoWindow
}
