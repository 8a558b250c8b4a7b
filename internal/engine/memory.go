package engine

import (
	"fmt"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/machine"
)

// LdI sets the index register to addr.
func (e *Engine) LdI(addr uint16) error {
	e.state.I = addr
	return nil
}

// AddIVx adds Vx to the index register.
func (e *Engine) AddIVx(x uint8) error {
	e.state.I = (e.state.I + uint16(e.state.V[x])) & addressMask
	return nil
}

// LdFVx points the index register to the font glyph of the low nibble of Vx.
func (e *Engine) LdFVx(x uint8) error {
	digit := uint16(e.state.V[x] & 0x0F)
	e.state.I = machine.FontAddress + digit*machine.GlyphSize
	return nil
}

// LdBVx stores the hundreds, tens and units digits of Vx at I, I+1 and I+2.
func (e *Engine) LdBVx(x uint8) error {
	digits, err := e.state.ReadBlock(e.index(), 3)
	if err != nil {
		return fmt.Errorf("storing decimal digits: %w", err)
	}
	v := e.state.V[x]
	digits[0] = v / 100
	digits[1] = v / 10 % 10
	digits[2] = v % 10
	return nil
}

// LdIVx stores the registers V0 to Vx in memory starting at I.
// The index register is not changed.
func (e *Engine) LdIVx(x uint8) error {
	block, err := e.state.ReadBlock(e.index(), int(x)+1)
	if err != nil {
		return fmt.Errorf("storing registers: %w", err)
	}
	copy(block, e.state.V[:int(x)+1])
	return nil
}

// LdVxI loads the registers V0 to Vx from memory starting at I.
// The index register is not changed.
func (e *Engine) LdVxI(x uint8) error {
	block, err := e.state.ReadBlock(e.index(), int(x)+1)
	if err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}
	copy(e.state.V[:int(x)+1], block)
	return nil
}

// LdVxDT sets Vx to the delay timer.
func (e *Engine) LdVxDT(x uint8) error {
	e.state.V[x] = e.state.DelayTimer
	return nil
}

// LdDTVx sets the delay timer to Vx.
func (e *Engine) LdDTVx(x uint8) error {
	e.state.DelayTimer = e.state.V[x]
	return nil
}

// LdSTVx sets the sound timer to Vx.
func (e *Engine) LdSTVx(x uint8) error {
	e.state.SoundTimer = e.state.V[x]
	return nil
}

// Drw draws an n byte sprite from memory at I to the position (Vx, Vy).
// The start position wraps around the display, the sprite itself is clipped
// at the right and bottom edges. VF is set to 1 if any pixel was erased.
func (e *Engine) Drw(x, y, n uint8) error {
	sprite, err := e.state.ReadBlock(e.index(), int(n))
	if err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}

	col := int(e.state.V[x]) % display.Width
	row := int(e.state.V[y]) % display.Height
	collision := false

	for i, data := range sprite {
		py := row + i
		if py >= display.Height {
			break
		}
		for bit := range 8 {
			px := col + bit
			if px >= display.Width {
				break
			}
			if data&(0x80>>bit) == 0 {
				continue
			}
			if e.state.Display.Flip(py, px) {
				collision = true
			}
		}
	}

	e.setFlag(collision)
	return nil
}

// index returns the index register as memory address.
func (e *Engine) index() int {
	return int(e.state.I & addressMask)
}
