package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoadROM(t *testing.T) {
	rom := []byte{0x12, 0x00, 0xab}

	c := New()
	assert.NoError(t, c.LoadROM(rom))
	assert.Equal(t, 3, c.RomLen())
	assert.Equal(t, uint8(0x12), c.mem[ProgramStart])
	assert.Equal(t, uint8(0x00), c.mem[ProgramStart+1])
	assert.Equal(t, uint8(0xab), c.mem[ProgramStart+2])
}

func TestLoadROMSizeLimit(t *testing.T) {
	c := New()

	// Exactly filling the program area succeeds.
	full := make([]byte, MaxRomSize)
	full[MaxRomSize-1] = 0x42
	assert.NoError(t, c.LoadROM(full))
	assert.Equal(t, uint8(0x42), c.mem[MemorySize-1])

	// One byte more is rejected outright, never truncated.
	err := c.LoadROM(make([]byte, MaxRomSize+1))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrRomTooLarge))
}

func TestFontLoaded(t *testing.T) {
	c := New()

	// Digit 0 sprite sits at the start of the font area.
	assert.Equal(t, uint8(0xf0), c.mem[fontStart])
	assert.Equal(t, uint8(0x90), c.mem[fontStart+1])
	// Digit F sprite at the end.
	assert.Equal(t, uint8(0x80), c.mem[fontStart+16*fontHeight-1])
}
