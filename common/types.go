package common

import (
	"bufio"
	"io"
)

// Machine is the front end's view of the interpreter, used by the run
// loop, the debug console and the script runner. The machine owns all
// emulated state; the front end only feeds it key events and reads the
// framebuffer back out.
type Machine interface {
	Memory() []byte
	ReadReg(r uint8) uint8
	WriteReg(r, val uint8)
	PC() uint16
	Index() uint16
	Timers() (delay, sound uint8)

	// Step executes exactly one instruction; TickTimers decrements both
	// timers once. They are separate calls so the driver picks the
	// pacing policy.
	Step() error
	TickTimers()

	SetKey(key uint8, down bool)
	Pixels() []byte
	Dirty() bool
	ClearDirty()
	ToneActive() bool

	AddBreakpoint(addr uint16)
	BreakpointAt(addr uint16) bool
	Debugging() *bool
	DebugPrompt()

	Registers() []string
	RegByName(name string) (uint16, string, bool)
	RegisterWidth(name string) int
	DisassembleOp(addr uint16) string
	Disassemble(w io.Writer)
}

// InputReader is shared by the debug console and the script runner,
// since os.Stdin is global.
var InputReader *bufio.Reader
