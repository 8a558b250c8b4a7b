// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8vm/internal/cli"
	"github.com/retroenv/chip8vm/internal/frame"
	"github.com/retroenv/chip8vm/internal/host"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow of the
// selected mode.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program, disasmOptions options.Disassembler) error {
	p := pipeline.New(logger)

	if opts.Mode == options.ModeDisassemble {
		return disassembleFile(ctx, p, opts, disasmOptions)
	}
	return runFile(ctx, logger, p, opts)
}

func disassembleFile(ctx context.Context, p *pipeline.Pipeline, opts options.Program, disasmOptions options.Disassembler) error {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok && writer != os.Stdout {
			_ = closer.Close()
		}
	}()

	if _, err := p.Disassemble(ctx, opts, disasmOptions, writer); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

func runFile(ctx context.Context, logger *log.Logger, p *pipeline.Pipeline, opts options.Program) error {
	loop, err := p.Boot(opts)
	if err != nil {
		return err
	}

	beeper, err := host.NewBeeper()
	if err != nil {
		logger.Warn("Audio output not available", log.Err(err))
	} else {
		loop.SetSound(beeper)
		defer func() { _ = beeper.Close() }()
	}

	switch opts.Display {
	case cli.DisplayTerminal:
		return runTerminal(ctx, logger, loop, opts, os.Stdout)

	default:
		keymap, err := frame.KeymapByName(opts.Keymap)
		if err != nil {
			return err
		}
		windowOptions := host.WindowOptions{
			Title:     "chip8vm - " + opts.Input,
			Scale:     opts.Scale,
			MaxFrames: opts.Frames,
			Keymap:    keymap,
		}
		if err := host.RunWindow(ctx, logger, loop, windowOptions); err != nil {
			return fmt.Errorf("running program: %w", err)
		}
		return nil
	}
}

// runTerminal runs the program without keyboard input and draws the
// display as text.
func runTerminal(ctx context.Context, logger *log.Logger, loop *frame.Loop, opts options.Program, writer io.Writer) error {
	terminal := host.NewTerminal(logger, writer)
	runErr := loop.Run(ctx, opts.Frames, terminal)
	if err := terminal.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return fmt.Errorf("running program: %w", runErr)
	}
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8vm", log.String("version", buildinfo.Version(version, commit, date)))
}
