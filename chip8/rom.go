package chip8

import "fmt"

// MaxRomSize is the largest program image that fits between ProgramStart
// and the end of memory: 3584 bytes.
const MaxRomSize = MemorySize - ProgramStart

// LoadROM copies a raw program image into memory at ProgramStart. There
// is no header and no checksum; the bytes are taken verbatim. Oversized
// images are rejected with ErrRomTooLarge before any cycle runs, never
// truncated.
func (c *CPU) LoadROM(data []byte) error {
	if len(data) > MaxRomSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrRomTooLarge, len(data), MaxRomSize)
	}
	copy(c.mem[ProgramStart:], data)
	c.romLen = len(data)
	return nil
}

// RomLen returns the size of the loaded program image in bytes.
func (c *CPU) RomLen() int {
	return c.romLen
}
