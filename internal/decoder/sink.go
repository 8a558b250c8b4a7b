package decoder

// Sink receives exactly one call per decoded instruction word.
//
// Register operands x and y are in the range 0-F, b is an immediate byte,
// addr is a 12-bit address and n a 4-bit count. Implementations return an
// error to signal that the instruction could not be processed.
type Sink interface {
	// 0
	Cls() error
	Ret() error
	Sys(addr uint16) error
	// 1
	Jp(addr uint16) error
	// 2
	Call(addr uint16) error
	// 3
	SeByte(x, b uint8) error
	// 4
	SneByte(x, b uint8) error
	// 5
	SeReg(x, y uint8) error
	// 6
	LdByte(x, b uint8) error
	// 7
	AddByte(x, b uint8) error
	// 8
	LdReg(x, y uint8) error
	Or(x, y uint8) error
	And(x, y uint8) error
	Xor(x, y uint8) error
	AddReg(x, y uint8) error
	Sub(x, y uint8) error
	Shr(x, y uint8) error
	Subn(x, y uint8) error
	Shl(x, y uint8) error
	// 9
	SneReg(x, y uint8) error
	// A
	LdI(addr uint16) error
	// B
	JpV0(addr uint16) error
	// C
	Rnd(x, b uint8) error
	// D
	Drw(x, y, n uint8) error
	// E
	Skp(x uint8) error
	Sknp(x uint8) error
	// F
	LdVxDT(x uint8) error
	LdVxK(x uint8) error
	LdDTVx(x uint8) error
	LdSTVx(x uint8) error
	AddIVx(x uint8) error
	LdFVx(x uint8) error
	LdBVx(x uint8) error
	LdIVx(x uint8) error
	LdVxI(x uint8) error

	// Unknown is called for words that do not match any instruction.
	Unknown(word uint16) error
}
