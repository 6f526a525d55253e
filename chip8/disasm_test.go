package chip8

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMnemonics(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x0123, "SYS 123"},
		{0x1abc, "JP ABC"},
		{0x2300, "CALL 300"},
		{0x3144, "SE V1, 44"},
		{0x4255, "SNE V2, 55"},
		{0x5120, "SE V1, V2"},
		{0x6aff, "LD VA, FF"},
		{0x7c01, "ADD VC, 01"},
		{0x8120, "LD V1, V2"},
		{0x8121, "OR V1, V2"},
		{0x8122, "AND V1, V2"},
		{0x8123, "XOR V1, V2"},
		{0x8124, "ADD V1, V2"},
		{0x8125, "SUB V1, V2"},
		{0x8126, "SHR V1"},
		{0x8127, "SUBN V1, V2"},
		{0x812e, "SHL V1"},
		{0x9120, "SNE V1, V2"},
		{0xa123, "LD I, 123"},
		{0xb123, "JP V0, 123"},
		{0xc10f, "RND V1, 0F"},
		{0xd125, "DRW V1, V2, 5"},
		{0xe19e, "SKP V1"},
		{0xe1a1, "SKNP V1"},
		{0xf107, "LD V1, DT"},
		{0xf10a, "LD V1, K"},
		{0xf115, "LD DT, V1"},
		{0xf118, "LD ST, V1"},
		{0xf11e, "ADD I, V1"},
		{0xf129, "LD F, V1"},
		{0xf133, "LD B, V1"},
		{0xf155, "LD [I], V1"},
		{0xf165, "LD V1, [I]"},
	}

	for _, tt := range tests {
		op, err := Decode(tt.word)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, op.String())
	}
}

func TestDisassembleOp(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0x00, 0xe0, 0xff, 0xff}))

	assert.Equal(t, "200: 00E0  CLS", c.DisassembleOp(0x200))
	// Undecodable words render as data instead of failing the listing.
	assert.Equal(t, "202: FFFF  .dw FFFF", c.DisassembleOp(0x202))
}

func TestDisassembleListing(t *testing.T) {
	c := New()
	assert.NoError(t, c.LoadROM([]byte{0x61, 0x23, 0xa3, 0x00, 0xd1, 0x25}))

	var b strings.Builder
	c.Disassemble(&b)

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "200: 6123  LD V1, 23", lines[0])
	assert.Equal(t, "202: A300  LD I, 300", lines[1])
	assert.Equal(t, "204: D125  DRW V1, V2, 5", lines[2])
}
