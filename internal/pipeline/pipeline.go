// Package pipeline orchestrates the disassembly and emulation workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/engine"
	"github.com/retroenv/chip8vm/internal/frame"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete program workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Load reads the program file given in the options.
func (p *Pipeline) Load(opts options.Program) ([]byte, error) {
	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	p.printInfo(opts, program)
	return program, nil
}

// Disassemble loads the program, writes its listing and verifies it if requested.
func (p *Pipeline) Disassemble(ctx context.Context, opts options.Program,
	disasmOpts options.Disassembler, writer io.Writer) (*disasm.Disasm, error) {

	program, err := p.Load(opts)
	if err != nil {
		return nil, err
	}
	return p.DisassembleProgram(ctx, program, opts, disasmOpts, writer)
}

// DisassembleProgram runs the disassembly stages on a program that is
// already in memory.
func (p *Pipeline) DisassembleProgram(ctx context.Context, program []byte, opts options.Program,
	disasmOpts options.Disassembler, writer io.Writer) (*disasm.Disasm, error) {

	dis, err := disasm.New(disasmOpts)
	if err != nil {
		return nil, fmt.Errorf("creating disassembler: %w", err)
	}
	if err := dis.Disassemble(program); err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	if _, err := io.WriteString(writer, dis.String()); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}

	if opts.Verify {
		if err := p.verify(program, dis.Lines()); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return dis, nil
}

// Boot loads the program into a new machine and returns a frame loop for it.
func (p *Pipeline) Boot(opts options.Program) (*frame.Loop, error) {
	program, err := p.Load(opts)
	if err != nil {
		return nil, err
	}
	return p.BootProgram(program, opts)
}

// BootProgram returns a frame loop executing a program that is already in memory.
func (p *Pipeline) BootProgram(program []byte, opts options.Program) (*frame.Loop, error) {
	state := machine.New()
	if err := state.Load(program); err != nil {
		return nil, fmt.Errorf("loading program into memory: %w", err)
	}

	var eng *engine.Engine
	if opts.Seed != 0 {
		eng = engine.NewSeeded(p.logger, state, opts.Seed)
	} else {
		eng = engine.New(p.logger, state, nil)
	}
	eng.SetTrace(opts.Trace)

	return frame.New(p.logger, eng, opts.StepsPerFrame), nil
}

// verify reassembles the listing and compares it against the reference
// opcode table.
func (p *Pipeline) verify(program []byte, lines []string) error {
	if err := verification.VerifyListing(p.logger, program, lines); err != nil {
		return err
	}

	report, err := verification.CrossCheck(p.logger, program, lines)
	if err != nil {
		return err
	}
	p.logger.Debug("Reference table comparison",
		log.Int("checked", report.Checked),
		log.Int("mismatches", report.Mismatches),
		log.Int("unlisted", report.Unlisted))
	return nil
}

// printInfo prints information about the program being processed.
func (p *Pipeline) printInfo(opts options.Program, program []byte) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing CHIP-8 program",
		log.String("file", opts.Input),
		log.Int("size", len(program)),
		log.String("mode", opts.Mode),
	)
}
