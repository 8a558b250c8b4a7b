// Package disasm implements a CHIP-8 disassembler that renders every
// instruction word of a program as a mnemonic line.
package disasm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/chip8vm/internal/decoder"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/arch"
)

// ErrUnsupportedSystem is returned for disassembler options of other systems.
var ErrUnsupportedSystem = errors.New("unsupported system")

// Compile-time check to ensure Disasm implements decoder.Sink.
var _ decoder.Sink = (*Disasm)(nil)

// Disasm implements a disassembler. It does not execute instructions and
// keeps no state besides the generated listing.
type Disasm struct {
	options options.Disassembler
	code    strings.Builder
}

// New returns a new disassembler. Only the CHIP-8 system is supported.
func New(options options.Disassembler) (*Disasm, error) {
	if options.System != arch.CHIP8System {
		return nil, fmt.Errorf("%w '%s'", ErrUnsupportedSystem, options.System)
	}
	return &Disasm{
		options: options,
	}, nil
}

// Disassemble decodes every overlapping two byte window of the program,
// the window slides by one byte so that code at odd addresses and code
// following embedded data is listed as well.
func (dis *Disasm) Disassemble(program []byte) error {
	for i := 0; i+1 < len(program); i++ {
		if err := dis.disassembleWord(i, program[i], program[i+1]); err != nil {
			return fmt.Errorf("disassembling offset $%04X: %w", i, err)
		}
	}
	return nil
}

// Lines returns the listing split into lines.
func (dis *Disasm) Lines() []string {
	s := strings.TrimSuffix(dis.code.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// String returns the generated listing.
func (dis *Disasm) String() string {
	return dis.code.String()
}

func (dis *Disasm) disassembleWord(offset int, hi, lo byte) error {
	word := uint16(hi)<<8 | uint16(lo)
	start := dis.code.Len()
	if err := decoder.Decode(word, dis); err != nil {
		return err
	}

	var comments []string
	if dis.options.OffsetComments {
		comments = append(comments, fmt.Sprintf("$%04X", int(dis.options.BaseAddress)+offset))
	}
	if dis.options.HexComments {
		comments = append(comments, fmt.Sprintf("%02X %02X", hi, lo))
	}
	if len(comments) == 0 {
		dis.code.WriteByte('\n')
		return nil
	}

	line := dis.code.String()[start:]
	dis.code.WriteString(strings.Repeat(" ", max(0, 32-len(line))))
	dis.code.WriteString(" ; ")
	dis.code.WriteString(strings.Join(comments, "  "))
	dis.code.WriteByte('\n')
	return nil
}

// emit writes the code of one instruction without line termination.
func (dis *Disasm) emit(format string, args ...any) error {
	_, err := fmt.Fprintf(&dis.code, format, args...)
	return err
}
