// CHIT8 is a CHIP-8 emulator and disassembler.
package main

import "chit8/cmd"

func main() {
	cmd.Execute()
}
