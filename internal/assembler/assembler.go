// Package assembler encodes CHIP-8 mnemonic lines as generated by the
// disassembler back into instruction words.
package assembler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedInstruction is returned for mnemonic and operand combinations
	// that do not encode an instruction.
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
	// ErrInvalidOperand is returned for operands that can not be parsed or are out of range.
	ErrInvalidOperand = errors.New("invalid operand")
)

// operand kinds as used in the instruction signatures.
const (
	kindRegister = "r"
	kindNumber   = "n"
)

type operand struct {
	kind  string
	value uint16
}

// Encode parses a single mnemonic line and returns the instruction word.
// Text following a semicolon is treated as comment. The pseudo instruction
// "unknown $WWWW" encodes its literal word.
func Encode(line string) (uint16, error) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, fmt.Errorf("%w: empty line", ErrUnsupportedInstruction)
	}

	name, rest, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)

	var ops []operand
	for field := range strings.SplitSeq(rest, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		op, err := parseOperand(field)
		if err != nil {
			return 0, err
		}
		ops = append(ops, op)
	}

	return encode(name, ops)
}

// MustEncode is like Encode but panics on errors. It simplifies building
// test programs.
func MustEncode(line string) uint16 {
	word, err := Encode(line)
	if err != nil {
		panic(err)
	}
	return word
}

// Assemble encodes multiple lines into a big-endian program image.
// Empty and comment only lines are skipped.
func Assemble(lines ...string) ([]byte, error) {
	program := make([]byte, 0, 2*len(lines))
	for i, line := range lines {
		code, _, _ := strings.Cut(line, ";")
		if strings.TrimSpace(code) == "" {
			continue
		}
		word, err := Encode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		program = append(program, byte(word>>8), byte(word))
	}
	return program, nil
}

func parseOperand(s string) (operand, error) {
	upper := strings.ToUpper(s)
	switch upper {
	case "I", "[I]", "DT", "ST", "K", "F", "B":
		return operand{kind: upper}, nil
	}

	if len(upper) == 2 && upper[0] == 'V' {
		reg, err := strconv.ParseUint(upper[1:], 16, 4)
		if err != nil {
			return operand{}, fmt.Errorf("%w: register '%s'", ErrInvalidOperand, s)
		}
		return operand{kind: kindRegister, value: uint16(reg)}, nil
	}

	var (
		value uint64
		err   error
	)
	switch {
	case strings.HasPrefix(upper, "$"):
		value, err = strconv.ParseUint(upper[1:], 16, 16)
	case strings.HasPrefix(upper, "0X"):
		value, err = strconv.ParseUint(upper[2:], 16, 16)
	default:
		value, err = strconv.ParseUint(upper, 10, 16)
	}
	if err != nil {
		return operand{}, fmt.Errorf("%w: number '%s'", ErrInvalidOperand, s)
	}
	return operand{kind: kindNumber, value: uint16(value)}, nil
}

func encode(name string, ops []operand) (uint16, error) {
	kinds := make([]string, len(ops))
	for i, op := range ops {
		kinds[i] = op.kind
	}
	signature := name + " " + strings.Join(kinds, ",")

	var x, y uint16
	if len(ops) > 0 {
		x = ops[0].value
	}
	if len(ops) > 1 {
		y = ops[1].value
	}

	switch signature {
	case "cls ":
		return 0x00E0, nil
	case "ret ":
		return 0x00EE, nil
	case "sys n":
		return withAddress(0x0000, x)
	case "jp n":
		return withAddress(0x1000, x)
	case "jp r,n":
		if x != 0 {
			return 0, fmt.Errorf("%w: jump offset register must be V0", ErrInvalidOperand)
		}
		return withAddress(0xB000, y)
	case "call n":
		return withAddress(0x2000, x)
	case "se r,n":
		return withByte(0x3000, x, y)
	case "sne r,n":
		return withByte(0x4000, x, y)
	case "se r,r":
		return 0x5000 | x<<8 | y<<4, nil
	case "sne r,r":
		return 0x9000 | x<<8 | y<<4, nil
	case "ld r,n":
		return withByte(0x6000, x, y)
	case "add r,n":
		return withByte(0x7000, x, y)
	case "rnd r,n":
		return withByte(0xC000, x, y)
	case "ld r,r":
		return 0x8000 | x<<8 | y<<4, nil
	case "or r,r":
		return 0x8001 | x<<8 | y<<4, nil
	case "and r,r":
		return 0x8002 | x<<8 | y<<4, nil
	case "xor r,r":
		return 0x8003 | x<<8 | y<<4, nil
	case "add r,r":
		return 0x8004 | x<<8 | y<<4, nil
	case "sub r,r":
		return 0x8005 | x<<8 | y<<4, nil
	case "shr r,r":
		return 0x8006 | x<<8 | y<<4, nil
	case "shr r":
		return 0x8006 | x<<8 | x<<4, nil
	case "subn r,r":
		return 0x8007 | x<<8 | y<<4, nil
	case "shl r,r":
		return 0x800E | x<<8 | y<<4, nil
	case "shl r":
		return 0x800E | x<<8 | x<<4, nil
	case "ld I,n":
		return withAddress(0xA000, y)
	case "drw r,r,n":
		n := ops[2].value
		if n > 0xF {
			return 0, fmt.Errorf("%w: sprite height %d", ErrInvalidOperand, n)
		}
		return 0xD000 | x<<8 | y<<4 | n, nil
	case "skp r":
		return 0xE09E | x<<8, nil
	case "sknp r":
		return 0xE0A1 | x<<8, nil
	case "ld r,DT":
		return 0xF007 | x<<8, nil
	case "ld r,K":
		return 0xF00A | x<<8, nil
	case "ld DT,r":
		return 0xF015 | y<<8, nil
	case "ld ST,r":
		return 0xF018 | y<<8, nil
	case "add I,r":
		return 0xF01E | y<<8, nil
	case "ld F,r":
		return 0xF029 | y<<8, nil
	case "ld B,r":
		return 0xF033 | y<<8, nil
	case "ld [I],r":
		return 0xF055 | y<<8, nil
	case "ld r,[I]":
		return 0xF065 | x<<8, nil
	case "unknown n":
		return x, nil
	}

	return 0, fmt.Errorf("%w: '%s'", ErrUnsupportedInstruction, strings.TrimSpace(signature))
}

func withAddress(base, addr uint16) (uint16, error) {
	if addr > 0x0FFF {
		return 0, fmt.Errorf("%w: address $%X exceeds 12 bits", ErrInvalidOperand, addr)
	}
	return base | addr, nil
}

func withByte(base, x, b uint16) (uint16, error) {
	if b > 0xFF {
		return 0, fmt.Errorf("%w: value $%X exceeds 8 bits", ErrInvalidOperand, b)
	}
	return base | x<<8 | b, nil
}
