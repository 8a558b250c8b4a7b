package engine

import "fmt"

// Cls clears the display.
func (e *Engine) Cls() error {
	e.state.Display.Clear()
	return nil
}

// Ret returns from a subroutine.
func (e *Engine) Ret() error {
	address, err := e.state.Pop()
	if err != nil {
		return fmt.Errorf("returning from subroutine: %w", err)
	}
	e.state.PC = address & addressMask
	return nil
}

// Sys calls a native COSMAC VIP machine code routine, which can not be
// emulated.
func (e *Engine) Sys(addr uint16) error {
	return fmt.Errorf("%w $%03X", ErrSystemCall, addr)
}

// Jp jumps to addr.
func (e *Engine) Jp(addr uint16) error {
	e.state.PC = addr
	return nil
}

// Call stores the address of the next instruction on the stack and jumps to addr.
func (e *Engine) Call(addr uint16) error {
	if err := e.state.Push(e.state.PC); err != nil {
		return fmt.Errorf("calling subroutine $%03X: %w", addr, err)
	}
	e.state.PC = addr
	return nil
}

// JpV0 jumps to addr plus V0.
func (e *Engine) JpV0(addr uint16) error {
	e.state.PC = (addr + uint16(e.state.V[0])) & addressMask
	return nil
}

// SeByte skips the next instruction if Vx equals b.
func (e *Engine) SeByte(x, b uint8) error {
	if e.state.V[x] == b {
		e.skip()
	}
	return nil
}

// SneByte skips the next instruction if Vx does not equal b.
func (e *Engine) SneByte(x, b uint8) error {
	if e.state.V[x] != b {
		e.skip()
	}
	return nil
}

// SeReg skips the next instruction if Vx equals Vy.
func (e *Engine) SeReg(x, y uint8) error {
	if e.state.V[x] == e.state.V[y] {
		e.skip()
	}
	return nil
}

// SneReg skips the next instruction if Vx does not equal Vy.
func (e *Engine) SneReg(x, y uint8) error {
	if e.state.V[x] != e.state.V[y] {
		e.skip()
	}
	return nil
}

// Skp skips the next instruction if the key with the value of Vx is pressed.
func (e *Engine) Skp(x uint8) error {
	if e.state.KeyPressed(e.state.V[x]) {
		e.skip()
	}
	return nil
}

// Sknp skips the next instruction if the key with the value of Vx is not pressed.
func (e *Engine) Sknp(x uint8) error {
	if !e.state.KeyPressed(e.state.V[x]) {
		e.skip()
	}
	return nil
}

// LdVxK waits for a key press and stores the key in Vx. While no key is
// pressed the program counter is rewound so that the instruction is
// fetched again by the next step.
func (e *Engine) LdVxK(x uint8) error {
	key, ok := e.state.PressedKey()
	if !ok {
		e.state.PC = (e.state.PC - 2) & addressMask
		return nil
	}
	e.state.V[x] = key
	return nil
}
