// Package machine contains the CHIP-8 machine state: memory, registers,
// call stack, timers, key latch and the display buffer.
package machine

import (
	"errors"
	"fmt"

	"github.com/retroenv/chip8vm/internal/display"
)

var (
	// ErrProgramTooLarge is returned when a program image does not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrStackOverflow is returned when a call exceeds the stack depth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrMemoryOutOfRange is returned for memory accesses past the end of memory.
	ErrMemoryOutOfRange = errors.New("memory address out of range")
)

// State is the complete state of one CHIP-8 machine.
// It is owned by a single execution engine and not safe for concurrent use.
type State struct {
	Memory [MemorySize]byte
	V      [RegisterCount]byte
	Stack  [StackSize]uint16

	I  uint16 // index register
	PC uint16 // program counter
	SP uint8  // stack pointer, index of the last pushed slot

	DelayTimer byte
	SoundTimer byte

	Keys [KeyCount]bool

	Display *display.Display
}

// New returns a reset machine state with the font loaded and the
// program counter at the program start address.
func New() *State {
	s := &State{
		PC:      ProgramStart,
		Display: display.New(),
	}
	copy(s.Memory[FontAddress:], font[:])
	return s
}

// Load copies a program image into memory at the program start address.
func (s *State) Load(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(s.Memory[ProgramStart:], program)
	return nil
}

// Fetch returns the big-endian instruction word at the program counter.
func (s *State) Fetch() uint16 {
	pc := s.PC % MemorySize
	hi := s.Memory[pc]
	lo := s.Memory[(pc+1)%MemorySize]
	return uint16(hi)<<8 | uint16(lo)
}

// Push stores a return address on the stack. The stack pointer is
// incremented before the address is stored, slot 0 is never used. This
// limits the nesting depth to StackSize-1 calls.
func (s *State) Push(address uint16) error {
	if int(s.SP)+1 >= StackSize {
		return fmt.Errorf("%w: call at depth %d", ErrStackOverflow, s.SP)
	}
	s.SP++
	s.Stack[s.SP] = address
	return nil
}

// Pop returns the address at the stack pointer and decrements it.
func (s *State) Pop() (uint16, error) {
	if s.SP == 0 {
		return 0, ErrStackUnderflow
	}
	address := s.Stack[s.SP]
	s.SP--
	return address, nil
}

// Read returns the byte at the given memory address.
func (s *State) Read(address int) (byte, error) {
	if address < 0 || address >= MemorySize {
		return 0, fmt.Errorf("%w: read at $%04X", ErrMemoryOutOfRange, address)
	}
	return s.Memory[address], nil
}

// Write stores a byte at the given memory address.
func (s *State) Write(address int, value byte) error {
	if address < 0 || address >= MemorySize {
		return fmt.Errorf("%w: write at $%04X", ErrMemoryOutOfRange, address)
	}
	s.Memory[address] = value
	return nil
}

// ReadBlock returns a slice of length bytes of memory starting at address.
// The returned slice aliases the machine memory.
func (s *State) ReadBlock(address, length int) ([]byte, error) {
	end := address + length
	if address < 0 || end > MemorySize {
		return nil, fmt.Errorf("%w: block $%04X-$%04X", ErrMemoryOutOfRange, address, end-1)
	}
	return s.Memory[address:end], nil
}

// SetKey updates the pressed state of a keypad key. Keys outside of 0-F
// are ignored.
func (s *State) SetKey(key int, pressed bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	s.Keys[key] = pressed
}

// KeyPressed returns whether the given key is latched as pressed.
// Only the low nibble of the key value is used.
func (s *State) KeyPressed(key byte) bool {
	return s.Keys[key&0x0F]
}

// PressedKey returns the highest numbered key that is currently pressed.
func (s *State) PressedKey() (byte, bool) {
	for k := KeyCount - 1; k >= 0; k-- {
		if s.Keys[k] {
			return byte(k), true
		}
	}
	return 0, false
}

// TickTimers decrements the delay and sound timers if they are not zero.
// It is called by the host at 60 Hz and is independent of instruction steps.
func (s *State) TickTimers() {
	if s.DelayTimer > 0 {
		s.DelayTimer--
	}
	if s.SoundTimer > 0 {
		s.SoundTimer--
	}
}

// SoundActive returns whether the sound timer is running.
func (s *State) SoundActive() bool {
	return s.SoundTimer > 0
}
