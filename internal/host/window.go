//go:build !headless

package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/frame"
	"github.com/retroenv/retrogolib/log"
)

// ebitenKeys maps the host key names used by the keymaps to ebiten keys.
var ebitenKeys = map[string]ebiten.Key{
	"1": ebiten.KeyDigit1,
	"2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3,
	"4": ebiten.KeyDigit4,
	"A": ebiten.KeyA,
	"C": ebiten.KeyC,
	"D": ebiten.KeyD,
	"E": ebiten.KeyE,
	"F": ebiten.KeyF,
	"Q": ebiten.KeyQ,
	"R": ebiten.KeyR,
	"S": ebiten.KeyS,
	"V": ebiten.KeyV,
	"W": ebiten.KeyW,
	"X": ebiten.KeyX,
	"Z": ebiten.KeyZ,
}

// WindowOptions configures the emulator window.
type WindowOptions struct {
	Title     string
	Scale     int
	MaxFrames int
	Keymap    frame.Keymap
}

// window runs one frame per ebiten tick and draws the display scaled to
// the window size.
type window struct {
	ctx     context.Context
	logger  *log.Logger
	loop    *frame.Loop
	options WindowOptions

	image  *ebiten.Image
	pixels []byte
	err    error
}

// RunWindow opens a window and runs the frame loop until the window is
// closed, the context is done or the machine halts. It has to be called
// from the main goroutine.
func RunWindow(ctx context.Context, logger *log.Logger, loop *frame.Loop, options WindowOptions) error {
	for _, name := range options.Keymap.Names() {
		if _, ok := ebitenKeys[name]; !ok {
			return fmt.Errorf("keymap key %s has no host key", name)
		}
	}
	if options.Scale <= 0 {
		options.Scale = 1
	}

	w := &window{
		ctx:     ctx,
		logger:  logger,
		loop:    loop,
		options: options,
		pixels:  make([]byte, 4*display.Width*display.Height),
	}

	ebiten.SetWindowSize(display.Width*options.Scale, display.Height*options.Scale)
	ebiten.SetWindowTitle(options.Title)
	ebiten.SetTPS(frame.Rate)

	logger.Debug("Opening window", log.Int("scale", options.Scale))
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return w.err
}

// Update implements ebiten.Game.
func (w *window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}

	w.options.Keymap.Apply(w.loop.State(), func(name string) bool {
		return ebiten.IsKeyPressed(ebitenKeys[name])
	})

	if err := w.loop.Frame(); err != nil {
		w.err = err
		return ebiten.Termination
	}
	if w.options.MaxFrames > 0 && w.loop.Frames() >= uint64(w.options.MaxFrames) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(display.Width, display.Height)
	}
	fillRGBA(w.loop.State().Display, w.pixels)
	w.image.WritePixels(w.pixels)
	screen.DrawImage(w.image, nil)
}

// Layout implements ebiten.Game.
func (w *window) Layout(_, _ int) (int, int) {
	return display.Width, display.Height
}
