package engine

import "github.com/retroenv/chip8vm/internal/machine"

// The flag register is written before the result register, if x is VF
// the result overwrites the flag.

// LdByte sets Vx to b.
func (e *Engine) LdByte(x, b uint8) error {
	e.state.V[x] = b
	return nil
}

// AddByte adds b to Vx without changing the flag register.
func (e *Engine) AddByte(x, b uint8) error {
	e.state.V[x] += b
	return nil
}

// LdReg sets Vx to Vy.
func (e *Engine) LdReg(x, y uint8) error {
	e.state.V[x] = e.state.V[y]
	return nil
}

// Or sets Vx to Vx OR Vy.
func (e *Engine) Or(x, y uint8) error {
	e.state.V[x] |= e.state.V[y]
	return nil
}

// And sets Vx to Vx AND Vy.
func (e *Engine) And(x, y uint8) error {
	e.state.V[x] &= e.state.V[y]
	return nil
}

// Xor sets Vx to Vx XOR Vy.
func (e *Engine) Xor(x, y uint8) error {
	e.state.V[x] ^= e.state.V[y]
	return nil
}

// AddReg adds Vy to Vx, VF is set to 1 on carry.
func (e *Engine) AddReg(x, y uint8) error {
	sum := uint16(e.state.V[x]) + uint16(e.state.V[y])
	e.setFlag(sum > 0xFF)
	e.state.V[x] = uint8(sum)
	return nil
}

// Sub subtracts Vy from Vx, VF is set to 1 if no borrow occurred.
func (e *Engine) Sub(x, y uint8) error {
	vx, vy := e.state.V[x], e.state.V[y]
	e.setFlag(vx >= vy)
	e.state.V[x] = vx - vy
	return nil
}

// Subn sets Vx to Vy minus Vx, VF is set to 1 if no borrow occurred.
func (e *Engine) Subn(x, y uint8) error {
	vx, vy := e.state.V[x], e.state.V[y]
	e.setFlag(vy >= vx)
	e.state.V[x] = vy - vx
	return nil
}

// Shr copies Vy into Vx and shifts it right by one, VF receives the
// shifted out bit.
func (e *Engine) Shr(x, y uint8) error {
	e.state.V[x] = e.state.V[y]
	e.state.V[machine.FlagRegister] = e.state.V[x] & 0x01
	e.state.V[x] >>= 1
	return nil
}

// Shl copies Vy into Vx and shifts it left by one, VF receives the
// shifted out bit.
func (e *Engine) Shl(x, y uint8) error {
	e.state.V[x] = e.state.V[y]
	e.state.V[machine.FlagRegister] = e.state.V[x] >> 7
	e.state.V[x] <<= 1
	return nil
}

// Rnd sets Vx to a random byte AND b.
func (e *Engine) Rnd(x, b uint8) error {
	e.state.V[x] = uint8(e.random.Uint32()) & b
	return nil
}
