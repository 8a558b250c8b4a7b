// Package verification verifies that a generated listing recreates the
// program it was generated from.
package verification

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/chip8vm/internal/assembler"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/log"
)

// VerifyListing reassembles every line of a disassembly listing and checks
// that it matches the two byte window of the program it was generated for.
// The listing must contain one line per overlapping window.
func VerifyListing(logger *log.Logger, program []byte, lines []string) error {
	windows := max(0, len(program)-1)
	if len(lines) != windows {
		return fmt.Errorf("mismatched line count, %d != %d", len(lines), windows)
	}

	var diffs uint64
	for i, line := range lines {
		expected := uint16(program[i])<<8 | uint16(program[i+1])
		got, err := assembler.Encode(line)
		if err != nil {
			return fmt.Errorf("reassembling line %d '%s': %w", i+1, line, err)
		}
		if got == expected {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Warn("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", expected),
				log.Hex("got", got))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}

// Report contains the result of a reference opcode table comparison.
type Report struct {
	Checked    int // windows known to both decoders
	Mismatches int // windows with differing instruction names
	Unlisted   int // windows that only one side decodes
}

// CrossCheck compares the instruction names of a listing with the
// reference CHIP-8 opcode table of retrogolib. Disagreements are logged as
// warnings, lines that only one side can decode are counted as unlisted.
func CrossCheck(logger *log.Logger, program []byte, lines []string) (Report, error) {
	var report Report
	if len(lines) != max(0, len(program)-1) {
		return report, errors.New("listing does not match program")
	}

	for i, line := range lines {
		word := uint16(program[i])<<8 | uint16(program[i+1])
		name := mnemonic(line)
		reference, ok := ReferenceName(word)

		switch {
		case !ok || name == "unknown" || name == "sys":
			if ok || name != "unknown" {
				report.Unlisted++
			}
		case strings.EqualFold(reference, name):
			report.Checked++
		default:
			report.Checked++
			report.Mismatches++
			logger.Warn("Instruction name differs from reference table",
				log.Hex("offset", i),
				log.Hex("opcode", word),
				log.String("name", name),
				log.String("reference", reference))
		}
	}
	return report, nil
}

// ReferenceName returns the instruction name of a word as listed by the
// retrogolib CHIP-8 opcode table.
func ReferenceName(word uint16) (string, bool) {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value && op.Instruction != nil {
			return op.Instruction.Name, true
		}
	}
	return "", false
}

func mnemonic(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	name, _, _ := strings.Cut(strings.TrimSpace(line), " ")
	return strings.ToLower(name)
}
