// Package options contains the program options.
package options

import (
	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/retrogolib/arch"
)

// Program modes.
const (
	ModeRun         = "run"
	ModeDisassemble = "disasm"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input program file"`
	Output string `flag:"o" usage:"output .asm file for disasm mode (default: stdout)"`
}

// Flags contains behavior options.
type Flags struct {
	Mode    string `flag:"m" usage:"mode: run, disasm" default:"run"`
	Verify  bool   `flag:"verify" usage:"verify the disassembly by reassembling and comparing to input"`
	Debug   bool   `flag:"debug" usage:"enable debug logging"`
	Quiet   bool   `flag:"q" usage:"quiet mode"`
	Trace   bool   `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Seed    uint64 `flag:"seed" usage:"seed of the random number generator, 0 picks a random seed"`
	Keymap  string `flag:"keymap" usage:"keyboard layout: qwerty, azerty" default:"qwerty"`
	Display string `flag:"display" usage:"display backend: window, terminal" default:"window"`
}

// MachineFlags contains emulation timing options.
type MachineFlags struct {
	StepsPerFrame int `flag:"speed" usage:"instructions executed per 60 Hz frame" default:"10"`
	Frames        int `flag:"frames" usage:"stop after the given number of frames, 0 runs until closed"`
	Scale         int `flag:"scale" usage:"window scale factor" default:"10"`
}

// OutputFlags contains disassembly output formatting options.
type OutputFlags struct {
	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode bytes in comments"`
	NoOffsets     bool `flag:"nooffsets" usage:"omit memory addresses in comments"`
}

// Program options of the virtual machine.
type Program struct {
	Parameters
	Flags
	MachineFlags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	System arch.System // system the listing is generated for

	BaseAddress    uint16 // memory address of the first program byte
	HexComments    bool   // append the raw opcode bytes as comment
	OffsetComments bool   // append the memory address as comment
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		System:      arch.CHIP8System,
		BaseAddress: machine.ProgramStart,
	}
}

// DisassemblerFromProgram returns the disassembler options matching the
// program options.
func DisassemblerFromProgram(opts Program) Disassembler {
	disasmOptions := NewDisassembler()
	disasmOptions.HexComments = !opts.NoHexComments
	disasmOptions.OffsetComments = !opts.NoOffsets
	return disasmOptions
}
