package chip8

import "fmt"

// Machine model: 4KB of memory with the interpreter area below 0x200,
// sixteen 8-bit registers, a 16-bit index register, a 16-deep call stack
// and two 60Hz count-down timers. All state is owned here and mutated
// only by Step, TickTimers, SetKey and LoadROM.

const (
	// MemorySize is the full addressable range, 4096 bytes.
	MemorySize = 0x1000
	// ProgramStart is where program images load and execution begins.
	// Everything below is reserved for the interpreter and font data.
	ProgramStart = 0x200

	// ScreenWidth and ScreenHeight are the fixed framebuffer dimensions.
	ScreenWidth  = 64
	ScreenHeight = 32

	stackDepth = 16
	numKeys    = 16
)

// State is the engine-visible execution state.
type State uint8

const (
	// Running means the next Step fetches and executes one instruction.
	Running State = iota
	// WaitingForKey means a LD Vx,K is pending; Steps are consumed as
	// no-ops until the input collaborator reports a fresh key press.
	WaitingForKey
	// Halted is terminal, entered on any fault. Further Steps fail.
	Halted
)

// CPU is the CHIP-8 interpreter: all emulated state plus the cycle
// engine. It is not safe for concurrent use; the driver calls Step,
// TickTimers and SetKey from a single goroutine.
//
// VF (register 0xF) is an ordinary indexable register. The arithmetic,
// shift and draw instructions overwrite it with their carry/borrow/
// collision flag, clobbering whatever the program stored there. That is
// correct CHIP-8 behavior and programs depend on it.
type CPU struct {
	mem   [MemorySize]byte
	v     [16]uint8
	i     uint16
	pc    uint16
	stack [stackDepth]uint16
	sp    int

	delay uint8
	sound uint8

	gfx   [ScreenWidth * ScreenHeight]byte
	dirty bool

	keys     [numKeys]bool
	waitKeys [numKeys]bool // Key snapshot taken when a key wait begins.
	waitReg  uint8

	state State
	fault *Fault

	rand RandomSource

	romLen int

	debug       bool
	breakpoints []uint16
}

// New returns a machine reset to power-on state: font loaded, PC at
// ProgramStart, a time-seeded random source.
func New() *CPU {
	c := new(CPU)
	c.rand = NewRandomSource()
	c.Reset()
	return c
}

// Reset returns the machine to power-on state. The random source,
// loaded ROM and breakpoints survive a reset.
func (c *CPU) Reset() {
	rom := c.mem[ProgramStart : ProgramStart+c.romLen]
	keep := make([]byte, len(rom))
	copy(keep, rom)

	*c = CPU{
		pc:          ProgramStart,
		rand:        c.rand,
		romLen:      c.romLen,
		breakpoints: c.breakpoints,
	}
	copy(c.mem[fontStart:], fontSprites[:])
	copy(c.mem[ProgramStart:], keep)
}

// SetRandomSource replaces the randomness capability consumed by RND.
// Tests and script runs inject a deterministic source here.
func (c *CPU) SetRandomSource(r RandomSource) {
	c.rand = r
}

// Memory exposes the raw 4KB address space for the debug console.
func (c *CPU) Memory() []byte {
	return c.mem[:]
}

// ReadReg returns Vr.
func (c *CPU) ReadReg(r uint8) uint8 {
	return c.v[r&0xf]
}

// WriteReg sets Vr.
func (c *CPU) WriteReg(r, val uint8) {
	c.v[r&0xf] = val
}

// PC returns the address of the next instruction to fetch.
func (c *CPU) PC() uint16 {
	return c.pc
}

// Index returns the I register.
func (c *CPU) Index() uint16 {
	return c.i
}

// Timers returns the current delay and sound timer values.
func (c *CPU) Timers() (delay, sound uint8) {
	return c.delay, c.sound
}

// State returns the engine state.
func (c *CPU) State() State {
	return c.state
}

// Fault returns the fatal error that halted the machine, or nil.
func (c *CPU) Fault() error {
	if c.fault == nil {
		return nil
	}
	return c.fault
}

// SetKey records a key-down or key-up event from the input collaborator.
// The driver calls this between cycles only; the interpreter reads key
// state at cycle boundaries.
func (c *CPU) SetKey(key uint8, down bool) {
	c.keys[key&0xf] = down
}

// Pixels is the 64x32 framebuffer in row-major order, one byte per
// pixel, nonzero meaning lit. Read-only snapshot for the renderer.
func (c *CPU) Pixels() []byte {
	return c.gfx[:]
}

// Dirty reports whether the framebuffer changed since ClearDirty. Only
// DRW and CLS set it.
func (c *CPU) Dirty() bool {
	return c.dirty
}

// ClearDirty acknowledges a redraw.
func (c *CPU) ClearDirty() {
	c.dirty = false
}

// ToneActive reports whether the audio collaborator should be sounding:
// true exactly while the sound timer is nonzero.
func (c *CPU) ToneActive() bool {
	return c.sound > 0
}

// TickTimers decrements both timers by one, floored at zero. The driver
// calls this at a fixed 60Hz cadence, independent of how many
// instructions ran in the interval.
func (c *CPU) TickTimers() {
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
}

// AddBreakpoint registers a PC value that drops the driver into the
// debug console when reached.
func (c *CPU) AddBreakpoint(addr uint16) {
	c.breakpoints = append(c.breakpoints, addr)
}

// BreakpointAt reports whether a breakpoint is set on addr.
func (c *CPU) BreakpointAt(addr uint16) bool {
	for _, b := range c.breakpoints {
		if b == addr {
			return true
		}
	}
	return false
}

// Debugging exposes the debug flag for the console and F-key toggles.
func (c *CPU) Debugging() *bool {
	return &c.debug
}

// Step runs exactly one cycle: fetch two bytes at PC, decode, execute.
// A cycle spent waiting for a key is a no-op. Any fault halts the
// machine permanently and is returned; Steps after that fail with
// ErrHalted wrapping the original fault.
func (c *CPU) Step() error {
	switch c.state {
	case Halted:
		return fmt.Errorf("%w: %v", ErrHalted, c.fault)

	case WaitingForKey:
		if key, ok := c.freshKey(); ok {
			c.v[c.waitReg] = key
			c.state = Running
		}
		// PC is untouched either way; execution resumes on the next
		// cycle after the key arrives, never twice in one cycle.
		return nil
	}

	opAddr := c.pc
	if int(opAddr)+1 >= MemorySize {
		return c.fail(opAddr, 0, ErrMemoryOutOfBounds)
	}
	word := uint16(c.mem[opAddr])<<8 | uint16(c.mem[opAddr+1])
	c.pc += 2

	op, err := Decode(word)
	if err != nil {
		return c.fail(opAddr, word, ErrUnknownOpcode)
	}

	if err := c.execute(op); err != nil {
		return c.fail(opAddr, word, err)
	}
	return nil
}

// fail transitions to Halted and records the fault.
func (c *CPU) fail(pc, word uint16, err error) error {
	c.state = Halted
	c.fault = &Fault{PC: pc, Word: word, Err: err}
	return c.fault
}

// freshKey scans for a key pressed since the wait began. Keys already
// held when LD Vx,K executed don't count; releasing and re-pressing one
// does.
func (c *CPU) freshKey() (uint8, bool) {
	for k := 0; k < numKeys; k++ {
		if !c.keys[k] {
			c.waitKeys[k] = false
			continue
		}
		if !c.waitKeys[k] {
			return uint8(k), true
		}
	}
	return 0, false
}

// execute applies one decoded operation. PC was already advanced past
// the instruction; jumps, calls and skips overwrite or bump it.
func (c *CPU) execute(op Op) error {
	switch op.Kind {
	case Sys: // 0NNN: native machine routine, ignored.

	case Cls: // 00E0: clear the display.
		c.gfx = [ScreenWidth * ScreenHeight]byte{}
		c.dirty = true

	case Ret: // 00EE: return from subroutine.
		if c.sp == 0 {
			return ErrStackUnderflow
		}
		c.sp--
		c.pc = c.stack[c.sp]

	case Jp: // 1NNN: jump.
		c.pc = op.NNN

	case Call: // 2NNN: call subroutine.
		if c.sp == stackDepth {
			return ErrStackOverflow
		}
		c.stack[c.sp] = c.pc
		c.sp++
		c.pc = op.NNN

	case SeByte: // 3XNN: skip next if Vx == NN.
		if c.v[op.X] == op.NN {
			c.pc += 2
		}

	case SneByte: // 4XNN: skip next if Vx != NN.
		if c.v[op.X] != op.NN {
			c.pc += 2
		}

	case SeReg: // 5XY0: skip next if Vx == Vy.
		if c.v[op.X] == c.v[op.Y] {
			c.pc += 2
		}

	case LdByte: // 6XNN: Vx = NN.
		c.v[op.X] = op.NN

	case AddByte: // 7XNN: Vx += NN, no carry flag.
		c.v[op.X] += op.NN

	case LdReg: // 8XY0: Vx = Vy.
		c.v[op.X] = c.v[op.Y]

	case Or: // 8XY1: Vx |= Vy.
		c.v[op.X] |= c.v[op.Y]

	case And: // 8XY2: Vx &= Vy.
		c.v[op.X] &= c.v[op.Y]

	case Xor: // 8XY3: Vx ^= Vy.
		c.v[op.X] ^= c.v[op.Y]

	case AddReg: // 8XY4: Vx += Vy, VF = carry.
		sum := uint16(c.v[op.X]) + uint16(c.v[op.Y])
		c.v[op.X] = uint8(sum)
		c.v[0xf] = boolFlag(sum > 0xff)

	case Sub: // 8XY5: Vx -= Vy, VF = 1 when no borrow.
		flag := boolFlag(c.v[op.X] >= c.v[op.Y])
		c.v[op.X] -= c.v[op.Y]
		c.v[0xf] = flag

	case Shr: // 8XY6: Vx >>= 1, VF = bit shifted out.
		flag := c.v[op.X] & 0x01
		c.v[op.X] >>= 1
		c.v[0xf] = flag

	case Subn: // 8XY7: Vx = Vy - Vx, VF = 1 when no borrow.
		flag := boolFlag(c.v[op.Y] >= c.v[op.X])
		c.v[op.X] = c.v[op.Y] - c.v[op.X]
		c.v[0xf] = flag

	case Shl: // 8XYE: Vx <<= 1, VF = bit shifted out.
		flag := c.v[op.X] >> 7
		c.v[op.X] <<= 1
		c.v[0xf] = flag

	case SneReg: // 9XY0: skip next if Vx != Vy.
		if c.v[op.X] != c.v[op.Y] {
			c.pc += 2
		}

	case LdI: // ANNN: I = NNN.
		c.i = op.NNN

	case JpV0: // BNNN: jump to NNN + V0.
		c.pc = op.NNN + uint16(c.v[0])

	case Rnd: // CXNN: Vx = random byte AND NN.
		c.v[op.X] = c.rand.Byte() & op.NN

	case Drw: // DXYN: XOR-blit an 8xN sprite from I, VF = collision.
		return c.draw(op.X, op.Y, op.N)

	case Skp: // EX9E: skip next if key Vx is down.
		if c.keys[c.v[op.X]&0xf] {
			c.pc += 2
		}

	case Sknp: // EXA1: skip next if key Vx is up.
		if !c.keys[c.v[op.X]&0xf] {
			c.pc += 2
		}

	case LdFromDelay: // FX07: Vx = delay timer.
		c.v[op.X] = c.delay

	case LdKey: // FX0A: block until a fresh key press lands in Vx.
		c.state = WaitingForKey
		c.waitReg = op.X
		c.waitKeys = c.keys

	case LdToDelay: // FX15: delay timer = Vx.
		c.delay = c.v[op.X]

	case LdToSound: // FX18: sound timer = Vx.
		c.sound = c.v[op.X]

	case AddI: // FX1E: I += Vx. No range check until I is dereferenced.
		c.i += uint16(c.v[op.X])

	case LdFont: // FX29: I = font sprite for the low nibble of Vx.
		c.i = fontStart + fontHeight*uint16(c.v[op.X]&0xf)

	case LdBCD: // FX33: hundreds/tens/units of Vx at I, I+1, I+2.
		if int(c.i)+2 >= MemorySize {
			return ErrMemoryOutOfBounds
		}
		c.mem[c.i] = c.v[op.X] / 100
		c.mem[c.i+1] = c.v[op.X] / 10 % 10
		c.mem[c.i+2] = c.v[op.X] % 10

	case Save: // FX55: store V0..Vx at I. I itself is not changed.
		if int(c.i)+int(op.X) >= MemorySize {
			return ErrMemoryOutOfBounds
		}
		copy(c.mem[c.i:], c.v[:op.X+1])

	case Restore: // FX65: load V0..Vx from I. I itself is not changed.
		if int(c.i)+int(op.X) >= MemorySize {
			return ErrMemoryOutOfBounds
		}
		copy(c.v[:op.X+1], c.mem[c.i:])
	}

	return nil
}

// draw XOR-blits an 8-wide, n-high sprite read from I onto the
// framebuffer at (Vx, Vy). Coordinates wrap modulo 64/32. VF is set to 1
// when any lit pixel is flipped off.
func (c *CPU) draw(x, y, n uint8) error {
	if int(c.i)+int(n) > MemorySize {
		return ErrMemoryOutOfBounds
	}

	collision := uint8(0)
	for row := 0; row < int(n); row++ {
		bits := c.mem[c.i+uint16(row)]
		py := (int(c.v[y]) + row) % ScreenHeight
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			px := (int(c.v[x]) + col) % ScreenWidth
			at := py*ScreenWidth + px
			if c.gfx[at] != 0 {
				collision = 1
			}
			c.gfx[at] ^= 1
		}
	}

	c.v[0xf] = collision
	c.dirty = true
	return nil
}

func boolFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
