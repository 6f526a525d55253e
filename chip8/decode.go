package chip8

import "fmt"

// Kind identifies one of the 35 canonical CHIP-8 instructions.
type Kind uint8

const (
	Sys         Kind = iota // 0NNN
	Cls                     // 00E0
	Ret                     // 00EE
	Jp                      // 1NNN
	Call                    // 2NNN
	SeByte                  // 3XNN
	SneByte                 // 4XNN
	SeReg                   // 5XY0
	LdByte                  // 6XNN
	AddByte                 // 7XNN
	LdReg                   // 8XY0
	Or                      // 8XY1
	And                     // 8XY2
	Xor                     // 8XY3
	AddReg                  // 8XY4
	Sub                     // 8XY5
	Shr                     // 8XY6
	Subn                    // 8XY7
	Shl                     // 8XYE
	SneReg                  // 9XY0
	LdI                     // ANNN
	JpV0                    // BNNN
	Rnd                     // CXNN
	Drw                     // DXYN
	Skp                     // EX9E
	Sknp                    // EXA1
	LdFromDelay             // FX07
	LdKey                   // FX0A
	LdToDelay               // FX15
	LdToSound               // FX18
	AddI                    // FX1E
	LdFont                  // FX29
	LdBCD                   // FX33
	Save                    // FX55
	Restore                 // FX65
)

// Op is a decoded instruction: its identity plus the operand fields
// extracted verbatim from the raw word. Fields an instruction doesn't use
// are still populated; the executor just ignores them.
type Op struct {
	Kind Kind
	X    uint8  // Second nibble, a register index.
	Y    uint8  // Third nibble, a register index.
	N    uint8  // Low nibble.
	NN   uint8  // Low byte.
	NNN  uint16 // Low 12 bits, an address.
}

// Decode maps a raw 16-bit instruction word to its tagged operation, or
// fails with ErrUnknownOpcode. Decoding depends only on the word itself,
// never on machine state, so the disassembler shares this table.
func Decode(word uint16) (Op, error) {
	op := Op{
		X:   uint8(word >> 8 & 0xf),
		Y:   uint8(word >> 4 & 0xf),
		N:   uint8(word & 0xf),
		NN:  uint8(word & 0xff),
		NNN: word & 0xfff,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			op.Kind = Cls
		case 0x00ee:
			op.Kind = Ret
		default: // Jump to native routine, ignored by interpreters.
			op.Kind = Sys
		}
	case 0x1:
		op.Kind = Jp
	case 0x2:
		op.Kind = Call
	case 0x3:
		op.Kind = SeByte
	case 0x4:
		op.Kind = SneByte
	case 0x5:
		if op.N != 0 {
			return Op{}, unknownWord(word)
		}
		op.Kind = SeReg
	case 0x6:
		op.Kind = LdByte
	case 0x7:
		op.Kind = AddByte
	case 0x8:
		switch op.N {
		case 0x0:
			op.Kind = LdReg
		case 0x1:
			op.Kind = Or
		case 0x2:
			op.Kind = And
		case 0x3:
			op.Kind = Xor
		case 0x4:
			op.Kind = AddReg
		case 0x5:
			op.Kind = Sub
		case 0x6:
			op.Kind = Shr
		case 0x7:
			op.Kind = Subn
		case 0xe:
			op.Kind = Shl
		default:
			return Op{}, unknownWord(word)
		}
	case 0x9:
		if op.N != 0 {
			return Op{}, unknownWord(word)
		}
		op.Kind = SneReg
	case 0xa:
		op.Kind = LdI
	case 0xb:
		op.Kind = JpV0
	case 0xc:
		op.Kind = Rnd
	case 0xd:
		op.Kind = Drw
	case 0xe:
		switch op.NN {
		case 0x9e:
			op.Kind = Skp
		case 0xa1:
			op.Kind = Sknp
		default:
			return Op{}, unknownWord(word)
		}
	case 0xf:
		switch op.NN {
		case 0x07:
			op.Kind = LdFromDelay
		case 0x0a:
			op.Kind = LdKey
		case 0x15:
			op.Kind = LdToDelay
		case 0x18:
			op.Kind = LdToSound
		case 0x1e:
			op.Kind = AddI
		case 0x29:
			op.Kind = LdFont
		case 0x33:
			op.Kind = LdBCD
		case 0x55:
			op.Kind = Save
		case 0x65:
			op.Kind = Restore
		default:
			return Op{}, unknownWord(word)
		}
	}

	return op, nil
}

func unknownWord(word uint16) error {
	return fmt.Errorf("%w: %04x", ErrUnknownOpcode, word)
}
