package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/chip8vm/internal/disasm"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// testProgram clears the screen, draws the glyph of V0 and loops forever.
var testProgram = []byte{
	0x00, 0xE0, // cls
	0xF0, 0x29, // ld F, V0
	0xD0, 0x15, // drw V0, V1, $5
	0x12, 0x06, // jp $206
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.loader)
}

func TestDisassemble(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	opts := options.Program{
		Parameters: options.Parameters{Input: createTempFile(t, testProgram)},
		Flags:      options.Flags{Mode: options.ModeDisassemble, Verify: true},
	}
	disasmOpts := options.DisassemblerFromProgram(opts)

	var buf bytes.Buffer
	dis, err := p.Disassemble(context.Background(), opts, disasmOpts, &buf)
	assert.NoError(t, err)
	assert.Len(t, dis.Lines(), len(testProgram)-1)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(testProgram)-1)
	assert.Equal(t, "cls                              ; $0200  00 E0", lines[0])
	assert.True(t, strings.HasPrefix(lines[4], "drw V0, V1, $5"))
}

func TestDisassemble_Canceled(t *testing.T) {
	p := New(log.NewTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	_, err := p.DisassembleProgram(ctx, testProgram, options.Program{}, options.NewDisassembler(), &buf)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, buf.String())
}

func TestDisassemble_UnsupportedSystem(t *testing.T) {
	p := New(log.NewTestLogger(t))
	disasmOpts := options.NewDisassembler()
	disasmOpts.System = arch.NES

	var buf bytes.Buffer
	_, err := p.DisassembleProgram(context.Background(), testProgram, options.Program{}, disasmOpts, &buf)
	assert.True(t, errors.Is(err, disasm.ErrUnsupportedSystem))
	assert.ErrorContains(t, err, "creating disassembler")
	assert.Empty(t, buf.String())
}

func TestDisassemble_MissingFile(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts := options.Program{Parameters: options.Parameters{Input: "/nonexistent/file.ch8"}}

	_, err := p.Disassemble(context.Background(), opts, options.NewDisassembler(), &bytes.Buffer{})
	assert.ErrorContains(t, err, "loading program")
}

func TestDisassemble_EmptyFile(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts := options.Program{Parameters: options.Parameters{Input: createTempFile(t, nil)}}

	_, err := p.Disassemble(context.Background(), opts, options.NewDisassembler(), &bytes.Buffer{})
	assert.True(t, errors.Is(err, loader.ErrEmptyProgram))
}

func TestBoot(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts := options.Program{
		Parameters:   options.Parameters{Input: createTempFile(t, testProgram)},
		Flags:        options.Flags{Seed: 7},
		MachineFlags: options.MachineFlags{StepsPerFrame: 4},
	}

	loop, err := p.Boot(opts)
	assert.NoError(t, err)
	assert.NoError(t, loop.Frame())

	state := loop.State()
	assert.Equal(t, uint16(0x206), state.PC)
	// top row of the glyph 0 is $F0
	for col := range 8 {
		assert.Equal(t, col < 4, state.Display.Pixel(0, col))
	}
}

func TestBootProgram_TooLarge(t *testing.T) {
	p := New(log.NewTestLogger(t))
	_, err := p.BootProgram(make([]byte, 0x1000), options.Program{})
	assert.ErrorContains(t, err, "loading program into memory")
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
