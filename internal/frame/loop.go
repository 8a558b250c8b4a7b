// Package frame drives a machine from a host frame loop: it executes a
// fixed number of instructions per frame, decrements the timers, and
// presents the display.
package frame

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// Rate is the frame rate of the timers in Hz.
const Rate = 60

// DefaultStepsPerFrame results in roughly 600 instructions per second.
const DefaultStepsPerFrame = 10

// Engine executes single instructions of a machine.
type Engine interface {
	Step() error
	State() *machine.State
}

// Presenter receives the display after every frame.
type Presenter interface {
	Present(d *display.Display) error
}

// Sound is switched on while the sound timer is active.
type Sound interface {
	SetActive(active bool)
}

// Loop executes an engine frame by frame.
type Loop struct {
	logger        *log.Logger
	engine        Engine
	sound         Sound
	stepsPerFrame int

	// Interval between two frames in Run, 0 runs frames without pacing.
	Interval time.Duration

	frames uint64
}

// New returns a frame loop for the engine.
func New(logger *log.Logger, engine Engine, stepsPerFrame int) *Loop {
	if stepsPerFrame <= 0 {
		stepsPerFrame = DefaultStepsPerFrame
	}
	return &Loop{
		logger:        logger,
		engine:        engine,
		stepsPerFrame: stepsPerFrame,
		Interval:      time.Second / Rate,
	}
}

// SetSound sets the sound output that follows the sound timer.
func (l *Loop) SetSound(sound Sound) {
	l.sound = sound
}

// State returns the machine state of the engine.
func (l *Loop) State() *machine.State {
	return l.engine.State()
}

// Frames returns the number of completed frames.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Frame executes the instructions of one frame and decrements the timers.
func (l *Loop) Frame() error {
	for range l.stepsPerFrame {
		if err := l.engine.Step(); err != nil {
			return fmt.Errorf("frame %d: %w", l.frames, err)
		}
	}
	state := l.engine.State()
	state.TickTimers()
	if l.sound != nil {
		l.sound.SetActive(state.SoundActive())
	}
	l.frames++
	return nil
}

// Run executes frames until the context is done, an error occurs or
// maxFrames frames were executed. A maxFrames of 0 does not limit the
// number of frames. The presenter is called after every frame.
func (l *Loop) Run(ctx context.Context, maxFrames int, presenter Presenter) error {
	var tick <-chan time.Time
	if l.Interval > 0 {
		ticker := time.NewTicker(l.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	l.logger.Debug("Starting frame loop",
		log.Int("steps_per_frame", l.stepsPerFrame),
		log.Int("max_frames", maxFrames))

	for maxFrames == 0 || l.frames < uint64(maxFrames) {
		if err := l.Frame(); err != nil {
			return err
		}
		if err := presenter.Present(l.engine.State().Display); err != nil {
			return fmt.Errorf("presenting frame: %w", err)
		}

		if tick == nil {
			if ctx.Err() != nil {
				return nil
			}
			continue
		}
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
		}
	}
	return nil
}
