package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeAllInstructions(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		op   Op
	}{
		{"sys", 0x0123, Op{Kind: Sys, X: 0x1, Y: 0x2, N: 0x3, NN: 0x23, NNN: 0x123}},
		{"cls", 0x00e0, Op{Kind: Cls, Y: 0xe, NN: 0xe0, NNN: 0x0e0}},
		{"ret", 0x00ee, Op{Kind: Ret, Y: 0xe, N: 0xe, NN: 0xee, NNN: 0x0ee}},
		{"jp", 0x1abc, Op{Kind: Jp, X: 0xa, Y: 0xb, N: 0xc, NN: 0xbc, NNN: 0xabc}},
		{"call", 0x2300, Op{Kind: Call, X: 0x3, NNN: 0x300}},
		{"se byte", 0x3144, Op{Kind: SeByte, X: 0x1, Y: 0x4, N: 0x4, NN: 0x44, NNN: 0x144}},
		{"sne byte", 0x4255, Op{Kind: SneByte, X: 0x2, Y: 0x5, N: 0x5, NN: 0x55, NNN: 0x255}},
		{"se reg", 0x5120, Op{Kind: SeReg, X: 0x1, Y: 0x2, NN: 0x20, NNN: 0x120}},
		{"ld byte", 0x6aff, Op{Kind: LdByte, X: 0xa, Y: 0xf, N: 0xf, NN: 0xff, NNN: 0xaff}},
		{"add byte", 0x7c01, Op{Kind: AddByte, X: 0xc, N: 0x1, NN: 0x01, NNN: 0xc01}},
		{"ld reg", 0x8120, Op{Kind: LdReg, X: 0x1, Y: 0x2, NN: 0x20, NNN: 0x120}},
		{"or", 0x8121, Op{Kind: Or, X: 0x1, Y: 0x2, N: 0x1, NN: 0x21, NNN: 0x121}},
		{"and", 0x8122, Op{Kind: And, X: 0x1, Y: 0x2, N: 0x2, NN: 0x22, NNN: 0x122}},
		{"xor", 0x8123, Op{Kind: Xor, X: 0x1, Y: 0x2, N: 0x3, NN: 0x23, NNN: 0x123}},
		{"add reg", 0x8124, Op{Kind: AddReg, X: 0x1, Y: 0x2, N: 0x4, NN: 0x24, NNN: 0x124}},
		{"sub", 0x8125, Op{Kind: Sub, X: 0x1, Y: 0x2, N: 0x5, NN: 0x25, NNN: 0x125}},
		{"shr", 0x8126, Op{Kind: Shr, X: 0x1, Y: 0x2, N: 0x6, NN: 0x26, NNN: 0x126}},
		{"subn", 0x8127, Op{Kind: Subn, X: 0x1, Y: 0x2, N: 0x7, NN: 0x27, NNN: 0x127}},
		{"shl", 0x812e, Op{Kind: Shl, X: 0x1, Y: 0x2, N: 0xe, NN: 0x2e, NNN: 0x12e}},
		{"sne reg", 0x9120, Op{Kind: SneReg, X: 0x1, Y: 0x2, NN: 0x20, NNN: 0x120}},
		{"ld i", 0xa123, Op{Kind: LdI, X: 0x1, Y: 0x2, N: 0x3, NN: 0x23, NNN: 0x123}},
		{"jp v0", 0xb123, Op{Kind: JpV0, X: 0x1, Y: 0x2, N: 0x3, NN: 0x23, NNN: 0x123}},
		{"rnd", 0xc10f, Op{Kind: Rnd, X: 0x1, N: 0xf, NN: 0x0f, NNN: 0x10f}},
		{"drw", 0xd125, Op{Kind: Drw, X: 0x1, Y: 0x2, N: 0x5, NN: 0x25, NNN: 0x125}},
		{"skp", 0xe19e, Op{Kind: Skp, X: 0x1, Y: 0x9, N: 0xe, NN: 0x9e, NNN: 0x19e}},
		{"sknp", 0xe1a1, Op{Kind: Sknp, X: 0x1, Y: 0xa, N: 0x1, NN: 0xa1, NNN: 0x1a1}},
		{"ld from delay", 0xf107, Op{Kind: LdFromDelay, X: 0x1, N: 0x7, NN: 0x07, NNN: 0x107}},
		{"ld key", 0xf10a, Op{Kind: LdKey, X: 0x1, N: 0xa, NN: 0x0a, NNN: 0x10a}},
		{"ld to delay", 0xf115, Op{Kind: LdToDelay, X: 0x1, Y: 0x1, N: 0x5, NN: 0x15, NNN: 0x115}},
		{"ld to sound", 0xf118, Op{Kind: LdToSound, X: 0x1, Y: 0x1, N: 0x8, NN: 0x18, NNN: 0x118}},
		{"add i", 0xf11e, Op{Kind: AddI, X: 0x1, Y: 0x1, N: 0xe, NN: 0x1e, NNN: 0x11e}},
		{"ld font", 0xf129, Op{Kind: LdFont, X: 0x1, Y: 0x2, N: 0x9, NN: 0x29, NNN: 0x129}},
		{"ld bcd", 0xf133, Op{Kind: LdBCD, X: 0x1, Y: 0x3, N: 0x3, NN: 0x33, NNN: 0x133}},
		{"save", 0xf155, Op{Kind: Save, X: 0x1, Y: 0x5, N: 0x5, NN: 0x55, NNN: 0x155}},
		{"restore", 0xf165, Op{Kind: Restore, X: 0x1, Y: 0x6, N: 0x5, NN: 0x65, NNN: 0x165}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.op, op)
		})
	}
}

func TestDecodeUnknownWords(t *testing.T) {
	words := []uint16{
		0x5121, // 5XYN with N != 0
		0x8128, // 8XY8 gap
		0x812f,
		0x9121, // 9XYN with N != 0
		0xe100, // EX00
		0xe1ff,
		0xf100, // FX00
		0xf10b,
		0xf1ff,
	}

	for _, word := range words {
		op, err := Decode(word)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownOpcode))
		assert.Equal(t, Op{}, op)
	}
}

// Every possible word either decodes to exactly one operation or fails
// with ErrUnknownOpcode.
func TestDecodeTotality(t *testing.T) {
	for w := 0; w <= 0xffff; w++ {
		_, err := Decode(uint16(w))
		if err != nil {
			assert.True(t, errors.Is(err, ErrUnknownOpcode))
		}
	}
}

// Decoding is pure: identical words decode identically.
func TestDecodeDeterministic(t *testing.T) {
	first, err := Decode(0xd125)
	assert.NoError(t, err)
	second, err := Decode(0xd125)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
