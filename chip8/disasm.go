package chip8

import (
	"fmt"
	"io"
)

// Disassembler. Shares the decode table with the executor, so anything
// the machine can run it can also print. The listing format is:
// ADDR: WORD  mnemonic

// String renders the operation as a conventional mnemonic.
func (op Op) String() string {
	switch op.Kind {
	case Sys:
		return fmt.Sprintf("SYS %03X", op.NNN)
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jp:
		return fmt.Sprintf("JP %03X", op.NNN)
	case Call:
		return fmt.Sprintf("CALL %03X", op.NNN)
	case SeByte:
		return fmt.Sprintf("SE V%X, %02X", op.X, op.NN)
	case SneByte:
		return fmt.Sprintf("SNE V%X, %02X", op.X, op.NN)
	case SeReg:
		return fmt.Sprintf("SE V%X, V%X", op.X, op.Y)
	case LdByte:
		return fmt.Sprintf("LD V%X, %02X", op.X, op.NN)
	case AddByte:
		return fmt.Sprintf("ADD V%X, %02X", op.X, op.NN)
	case LdReg:
		return fmt.Sprintf("LD V%X, V%X", op.X, op.Y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", op.X, op.Y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", op.X, op.Y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", op.X, op.Y)
	case AddReg:
		return fmt.Sprintf("ADD V%X, V%X", op.X, op.Y)
	case Sub:
		return fmt.Sprintf("SUB V%X, V%X", op.X, op.Y)
	case Shr:
		return fmt.Sprintf("SHR V%X", op.X)
	case Subn:
		return fmt.Sprintf("SUBN V%X, V%X", op.X, op.Y)
	case Shl:
		return fmt.Sprintf("SHL V%X", op.X)
	case SneReg:
		return fmt.Sprintf("SNE V%X, V%X", op.X, op.Y)
	case LdI:
		return fmt.Sprintf("LD I, %03X", op.NNN)
	case JpV0:
		return fmt.Sprintf("JP V0, %03X", op.NNN)
	case Rnd:
		return fmt.Sprintf("RND V%X, %02X", op.X, op.NN)
	case Drw:
		return fmt.Sprintf("DRW V%X, V%X, %X", op.X, op.Y, op.N)
	case Skp:
		return fmt.Sprintf("SKP V%X", op.X)
	case Sknp:
		return fmt.Sprintf("SKNP V%X", op.X)
	case LdFromDelay:
		return fmt.Sprintf("LD V%X, DT", op.X)
	case LdKey:
		return fmt.Sprintf("LD V%X, K", op.X)
	case LdToDelay:
		return fmt.Sprintf("LD DT, V%X", op.X)
	case LdToSound:
		return fmt.Sprintf("LD ST, V%X", op.X)
	case AddI:
		return fmt.Sprintf("ADD I, V%X", op.X)
	case LdFont:
		return fmt.Sprintf("LD F, V%X", op.X)
	case LdBCD:
		return fmt.Sprintf("LD B, V%X", op.X)
	case Save:
		return fmt.Sprintf("LD [I], V%X", op.X)
	case Restore:
		return fmt.Sprintf("LD V%X, [I]", op.X)
	}
	return fmt.Sprintf("??? kind %d", op.Kind)
}

// DisassembleOp renders the instruction at addr as one listing line.
// Words that don't decode are emitted as raw data instead of aborting
// the listing; ROMs mix sprite data freely into the code stream.
func (c *CPU) DisassembleOp(addr uint16) string {
	if int(addr)+1 >= MemorySize {
		return fmt.Sprintf("%03X: out of range", addr)
	}
	word := uint16(c.mem[addr])<<8 | uint16(c.mem[addr+1])

	op, err := Decode(word)
	if err != nil {
		return fmt.Sprintf("%03X: %04X  .dw %04X", addr, word, word)
	}
	return fmt.Sprintf("%03X: %04X  %s", addr, word, op)
}

// Disassemble writes a listing of the loaded program image to w.
func (c *CPU) Disassemble(w io.Writer) {
	end := ProgramStart + c.romLen
	for addr := ProgramStart; addr < end; addr += 2 {
		fmt.Fprintln(w, c.DisassembleOp(uint16(addr)))
	}
}
