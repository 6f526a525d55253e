package chip8

import (
	"fmt"
	"strings"
)

// DebugPrompt prints the console prompt with the current PC.
func (c *CPU) DebugPrompt() {
	fmt.Printf("%03x debug> ", c.pc)
}

var regNames = map[string]uint8{
	"v0": 0x0, "v1": 0x1, "v2": 0x2, "v3": 0x3,
	"v4": 0x4, "v5": 0x5, "v6": 0x6, "v7": 0x7,
	"v8": 0x8, "v9": 0x9, "va": 0xa, "vb": 0xb,
	"vc": 0xc, "vd": 0xd, "ve": 0xe, "vf": 0xf,
}

var registers = []string{
	"V0", "V1", "V2", "V3", "V4", "V5", "V6", "V7",
	"V8", "V9", "VA", "VB", "VC", "VD", "VE", "VF",
	"I", "PC", "SP", "DT", "ST",
}

// Registers lists the register names the debug console can show.
func (c *CPU) Registers() []string {
	return registers
}

// RegByName looks up a register value for the debug console. The wide
// registers (I, PC, SP) come back in the same uint16 as the 8-bit ones.
func (c *CPU) RegByName(name string) (uint16, string, bool) {
	lower := strings.ToLower(name)
	if r, ok := regNames[lower]; ok {
		return uint16(c.v[r]), strings.ToUpper(name), true
	}

	switch lower {
	case "i":
		return c.i, "I", true
	case "pc":
		return c.pc, "PC", true
	case "sp":
		return uint16(c.sp), "SP", true
	case "dt":
		return uint16(c.delay), "DT", true
	case "st":
		return uint16(c.sound), "ST", true
	}
	return 0, "", false
}

// RegisterWidth returns the width in bits of the named register, for
// formatting register dumps.
func (c *CPU) RegisterWidth(name string) int {
	switch strings.ToLower(name) {
	case "i", "pc", "sp":
		return 16
	}
	return 8
}
