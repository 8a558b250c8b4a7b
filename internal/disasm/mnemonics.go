package disasm

// Mnemonic names of the instructions.
const (
	Add  = "add"
	And  = "and"
	Call = "call"
	Cls  = "cls"
	Drw  = "drw"
	Jp   = "jp"
	Ld   = "ld"
	Or   = "or"
	Ret  = "ret"
	Rnd  = "rnd"
	Se   = "se"
	Shl  = "shl"
	Shr  = "shr"
	Sknp = "sknp"
	Skp  = "skp"
	Sne  = "sne"
	Sub  = "sub"
	Subn = "subn"
	Sys  = "sys"
	Xor  = "xor"

	// Unknown is emitted for words that do not encode an instruction.
	Unknown = "unknown"
)

// Cls emits 00E0.
func (dis *Disasm) Cls() error {
	return dis.emit(Cls)
}

// Ret emits 00EE.
func (dis *Disasm) Ret() error {
	return dis.emit(Ret)
}

// Sys emits 0nnn.
func (dis *Disasm) Sys(addr uint16) error {
	return dis.emit("%s $%03X", Sys, addr)
}

// Jp emits 1nnn.
func (dis *Disasm) Jp(addr uint16) error {
	return dis.emit("%s $%03X", Jp, addr)
}

// Call emits 2nnn.
func (dis *Disasm) Call(addr uint16) error {
	return dis.emit("%s $%03X", Call, addr)
}

// SeByte emits 3xkk.
func (dis *Disasm) SeByte(x, b uint8) error {
	return dis.emit("%s V%X, $%02X", Se, x, b)
}

// SneByte emits 4xkk.
func (dis *Disasm) SneByte(x, b uint8) error {
	return dis.emit("%s V%X, $%02X", Sne, x, b)
}

// SeReg emits 5xy0.
func (dis *Disasm) SeReg(x, y uint8) error {
	return dis.emit("%s V%X, V%X", Se, x, y)
}

// LdByte emits 6xkk.
func (dis *Disasm) LdByte(x, b uint8) error {
	return dis.emit("%s V%X, $%02X", Ld, x, b)
}

// AddByte emits 7xkk.
func (dis *Disasm) AddByte(x, b uint8) error {
	return dis.emit("%s V%X, $%02X", Add, x, b)
}

// LdReg emits 8xy0.
func (dis *Disasm) LdReg(x, y uint8) error {
	return dis.emit("%s V%X, V%X", Ld, x, y)
}

// Or emits 8xy1.
func (dis *Disasm) Or(x, y uint8) error {
	return dis.emit("%s V%X, V%X", Or, x, y)
}

// And emits 8xy2.
func (dis *Disasm) And(x, y uint8) error {
	return dis.emit("%s V%X, V%X", And, x, y)
}

// Xor emits 8xy3.
func (dis *Disasm) Xor(x, y uint8) error {
	return dis.emit("%s V%X, V%X", Xor, x, y)
}

// AddReg emits 8xy4.
func (dis *Disasm) AddReg(x, y uint8) error {
	return dis.emit("%s V%X, V%X", Add, x, y)
}

// Sub emits 8xy5.
func (dis *Disasm) Sub(x, y uint8) error {
	return dis.emit("%s V%X, V%X", Sub, x, y)
}

// Shr emits 8xy6.
func (dis *Disasm) Shr(x, y uint8) error {
	return dis.emit("%s V%X, V%X", Shr, x, y)
}

// Subn emits 8xy7.
func (dis *Disasm) Subn(x, y uint8) error {
	return dis.emit("%s V%X, V%X", Subn, x, y)
}

// Shl emits 8xyE.
func (dis *Disasm) Shl(x, y uint8) error {
	return dis.emit("%s V%X, V%X", Shl, x, y)
}

// SneReg emits 9xy0.
func (dis *Disasm) SneReg(x, y uint8) error {
	return dis.emit("%s V%X, V%X", Sne, x, y)
}

// LdI emits Annn.
func (dis *Disasm) LdI(addr uint16) error {
	return dis.emit("%s I, $%03X", Ld, addr)
}

// JpV0 emits Bnnn.
func (dis *Disasm) JpV0(addr uint16) error {
	return dis.emit("%s V0, $%03X", Jp, addr)
}

// Rnd emits Cxkk.
func (dis *Disasm) Rnd(x, b uint8) error {
	return dis.emit("%s V%X, $%02X", Rnd, x, b)
}

// Drw emits Dxyn, the sprite height is printed as a single hex digit.
func (dis *Disasm) Drw(x, y, n uint8) error {
	return dis.emit("%s V%X, V%X, $%X", Drw, x, y, n)
}

// Skp emits Ex9E.
func (dis *Disasm) Skp(x uint8) error {
	return dis.emit("%s V%X", Skp, x)
}

// Sknp emits ExA1.
func (dis *Disasm) Sknp(x uint8) error {
	return dis.emit("%s V%X", Sknp, x)
}

// LdVxDT emits Fx07.
func (dis *Disasm) LdVxDT(x uint8) error {
	return dis.emit("%s V%X, DT", Ld, x)
}

// LdVxK emits Fx0A.
func (dis *Disasm) LdVxK(x uint8) error {
	return dis.emit("%s V%X, K", Ld, x)
}

// LdDTVx emits Fx15.
func (dis *Disasm) LdDTVx(x uint8) error {
	return dis.emit("%s DT, V%X", Ld, x)
}

// LdSTVx emits Fx18.
func (dis *Disasm) LdSTVx(x uint8) error {
	return dis.emit("%s ST, V%X", Ld, x)
}

// AddIVx emits Fx1E.
func (dis *Disasm) AddIVx(x uint8) error {
	return dis.emit("%s I, V%X", Add, x)
}

// LdFVx emits Fx29.
func (dis *Disasm) LdFVx(x uint8) error {
	return dis.emit("%s F, V%X", Ld, x)
}

// LdBVx emits Fx33.
func (dis *Disasm) LdBVx(x uint8) error {
	return dis.emit("%s B, V%X", Ld, x)
}

// LdIVx emits Fx55.
func (dis *Disasm) LdIVx(x uint8) error {
	return dis.emit("%s [I], V%X", Ld, x)
}

// LdVxI emits Fx65.
func (dis *Disasm) LdVxI(x uint8) error {
	return dis.emit("%s V%X, [I]", Ld, x)
}

// Unknown emits a word that does not encode an instruction as raw data.
func (dis *Disasm) Unknown(word uint16) error {
	return dis.emit("%s $%04X", Unknown, word)
}
