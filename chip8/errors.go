package chip8

import (
	"errors"
	"fmt"
)

// All machine-level errors are fatal. A running program that trips any of
// these is broken; masking the fault would only surface as corrupted
// behavior much later, so the machine halts instead.
var (
	ErrUnknownOpcode     = errors.New("unknown opcode")
	ErrStackOverflow     = errors.New("call stack overflow")
	ErrStackUnderflow    = errors.New("call stack underflow")
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")
	ErrRomTooLarge       = errors.New("rom too large")
	ErrHalted            = errors.New("machine halted")
)

// Fault records the machine state at the moment a fatal error occurred.
// It wraps one of the sentinel errors above so callers can branch with
// errors.Is while still seeing the faulting address and raw word.
type Fault struct {
	PC   uint16
	Word uint16
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%v at %03x (word %04x)", f.Err, f.PC, f.Word)
}

func (f *Fault) Unwrap() error { return f.Err }
