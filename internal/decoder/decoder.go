// Package decoder turns 16-bit CHIP-8 instruction words into calls on a Sink.
//
// The decoder is shared by the execution engine and the disassembler, the
// opcode table only exists in Decode.
package decoder

// X returns the register index in the second nibble of the word.
func X(word uint16) uint8 {
	return uint8((word & 0x0F00) >> 8)
}

// Y returns the register index in the third nibble of the word.
func Y(word uint16) uint8 {
	return uint8((word & 0x00F0) >> 4)
}

// N returns the lowest nibble of the word.
func N(word uint16) uint8 {
	return uint8(word & 0x000F)
}

// KK returns the low byte of the word.
func KK(word uint16) uint8 {
	return uint8(word & 0x00FF)
}

// NNN returns the 12-bit address of the word.
func NNN(word uint16) uint16 {
	return word & 0x0FFF
}

// Decode identifies the instruction encoded in word and invokes the matching
// method of sink. Words that match no instruction are passed to Unknown.
// The error returned by the sink method is passed through.
func Decode(word uint16, sink Sink) error {
	x, y := X(word), Y(word)

	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x00E0:
			return sink.Cls()
		case 0x00EE:
			return sink.Ret()
		default:
			return sink.Sys(NNN(word))
		}
	case 0x1000:
		return sink.Jp(NNN(word))
	case 0x2000:
		return sink.Call(NNN(word))
	case 0x3000:
		return sink.SeByte(x, KK(word))
	case 0x4000:
		return sink.SneByte(x, KK(word))
	case 0x5000:
		if N(word) == 0 {
			return sink.SeReg(x, y)
		}
	case 0x6000:
		return sink.LdByte(x, KK(word))
	case 0x7000:
		return sink.AddByte(x, KK(word))
	case 0x8000:
		return decodeALU(word, x, y, sink)
	case 0x9000:
		if N(word) == 0 {
			return sink.SneReg(x, y)
		}
	case 0xA000:
		return sink.LdI(NNN(word))
	case 0xB000:
		return sink.JpV0(NNN(word))
	case 0xC000:
		return sink.Rnd(x, KK(word))
	case 0xD000:
		return sink.Drw(x, y, N(word))
	case 0xE000:
		switch KK(word) {
		case 0x9E:
			return sink.Skp(x)
		case 0xA1:
			return sink.Sknp(x)
		}
	case 0xF000:
		return decodeMisc(word, x, sink)
	}

	return sink.Unknown(word)
}

// decodeALU decodes the register-register instructions of family 8.
func decodeALU(word uint16, x, y uint8, sink Sink) error {
	switch N(word) {
	case 0x0:
		return sink.LdReg(x, y)
	case 0x1:
		return sink.Or(x, y)
	case 0x2:
		return sink.And(x, y)
	case 0x3:
		return sink.Xor(x, y)
	case 0x4:
		return sink.AddReg(x, y)
	case 0x5:
		return sink.Sub(x, y)
	case 0x6:
		return sink.Shr(x, y)
	case 0x7:
		return sink.Subn(x, y)
	case 0xE:
		return sink.Shl(x, y)
	default:
		return sink.Unknown(word)
	}
}

// decodeMisc decodes the timer, keypad and index instructions of family F.
func decodeMisc(word uint16, x uint8, sink Sink) error {
	switch KK(word) {
	case 0x07:
		return sink.LdVxDT(x)
	case 0x0A:
		return sink.LdVxK(x)
	case 0x15:
		return sink.LdDTVx(x)
	case 0x18:
		return sink.LdSTVx(x)
	case 0x1E:
		return sink.AddIVx(x)
	case 0x29:
		return sink.LdFVx(x)
	case 0x33:
		return sink.LdBVx(x)
	case 0x55:
		return sink.LdIVx(x)
	case 0x65:
		return sink.LdVxI(x)
	default:
		return sink.Unknown(word)
	}
}
