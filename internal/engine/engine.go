// Package engine implements the CHIP-8 fetch, decode and execute cycle
// on top of the machine state.
package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/chip8vm/internal/decoder"
	"github.com/retroenv/chip8vm/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

var (
	// ErrUnknownOpcode is returned for instruction words that match no instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrSystemCall is returned for the legacy machine code call 0nnn.
	ErrSystemCall = errors.New("unsupported system call")
)

// addressMask limits program counter and index register to the memory size.
const addressMask = machine.MemorySize - 1

// Random is the source of the RND instruction.
// *rand.Rand of math/rand/v2 satisfies it.
type Random interface {
	Uint32() uint32
}

// Compile-time check to ensure Engine implements decoder.Sink.
var _ decoder.Sink = (*Engine)(nil)

// Engine executes instructions against a machine state.
// An engine and its state are used by a single goroutine.
type Engine struct {
	logger *log.Logger
	state  *machine.State
	random Random
	trace  bool

	err error // fatal error that halted the machine
}

// New returns an engine executing on the given state. If random is nil a
// randomly seeded generator is used.
func New(logger *log.Logger, state *machine.State, random Random) *Engine {
	if random == nil {
		random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		logger: logger,
		state:  state,
		random: random,
	}
}

// NewSeeded returns an engine with a deterministic random source.
func NewSeeded(logger *log.Logger, state *machine.State, seed uint64) *Engine {
	return New(logger, state, rand.New(rand.NewPCG(seed, seed)))
}

// SetTrace enables logging of every executed instruction at debug level.
func (e *Engine) SetTrace(trace bool) {
	e.trace = trace
}

// State returns the machine state the engine executes on.
func (e *Engine) State() *machine.State {
	return e.state
}

// Err returns the error that halted the machine, or nil if it is running.
func (e *Engine) Err() error {
	return e.err
}

// Step executes exactly one instruction. The program counter is advanced
// past the instruction before it is executed. Errors are fatal, once an
// error is returned every following call returns the same error.
func (e *Engine) Step() error {
	if e.err != nil {
		return e.err
	}

	pc := e.state.PC & addressMask
	word := e.state.Fetch()
	e.state.PC = (pc + 2) & addressMask

	if e.trace {
		e.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", word))
	}

	if err := decoder.Decode(word, e); err != nil {
		e.err = fmt.Errorf("executing opcode $%04X at $%03X: %w", word, pc, err)
		if e.trace {
			e.logger.Debug("Machine halted",
				log.Hex("pc", pc),
				log.Hex("opcode", word),
				log.Err(err))
		}
		return e.err
	}
	return nil
}

// skip advances the program counter past the next instruction.
func (e *Engine) skip() {
	e.state.PC = (e.state.PC + 2) & addressMask
}

// setFlag writes the flag register VF.
func (e *Engine) setFlag(set bool) {
	if set {
		e.state.V[machine.FlagRegister] = 1
	} else {
		e.state.V[machine.FlagRegister] = 0
	}
}

// Unknown halts the machine.
func (e *Engine) Unknown(word uint16) error {
	return fmt.Errorf("%w $%04X", ErrUnknownOpcode, word)
}
