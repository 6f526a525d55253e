package frontend

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"chit8/chip8"
	"chit8/common"
)

// Script runner: a plain-text command file drives the machine without a
// window or keyboard, for reproducible runs. One command per line.

type scriptCommand func(m common.Machine, args []string) error

var scriptCommands = map[string]scriptCommand{
	"press":   cmdPress,
	"release": cmdRelease,
	"step":    cmdStep,
	"tick":    cmdTick,
	"dump":    cmdDump,
	"disasm":  cmdDisasm,
}

func cmdPress(m common.Machine, args []string) error {
	key, err := scriptKey(args)
	if err != nil {
		return err
	}
	m.SetKey(key, true)
	return nil
}

func cmdRelease(m common.Machine, args []string) error {
	key, err := scriptKey(args)
	if err != nil {
		return err
	}
	m.SetKey(key, false)
	return nil
}

func cmdStep(m common.Machine, args []string) error {
	count, err := scriptCount(args)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

func cmdTick(m common.Machine, args []string) error {
	count, err := scriptCount(args)
	if err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		m.TickTimers()
	}
	return nil
}

// cmdDump prints the framebuffer as ASCII art, one character per pixel.
func cmdDump(m common.Machine, args []string) error {
	fb := m.Pixels()
	var b strings.Builder
	for y := 0; y < chip8.ScreenHeight; y++ {
		for x := 0; x < chip8.ScreenWidth; x++ {
			if fb[y*chip8.ScreenWidth+x] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
	return nil
}

func cmdDisasm(m common.Machine, args []string) error {
	m.Disassemble(os.Stdout)
	return nil
}

func scriptKey(args []string) (uint8, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("key command requires a hex key argument")
	}
	key, err := strconv.ParseUint(args[0], 16, 8)
	if err != nil || key > 0xf {
		return 0, fmt.Errorf("bad key %q: want 0-f", args[0])
	}
	return uint8(key), nil
}

func scriptCount(args []string) (int, error) {
	if len(args) < 1 {
		return 1, nil
	}
	count, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad count %q: %w", args[0], err)
	}
	return int(count), nil
}

// RunScript executes the script file against the machine, stopping at
// the first failing command.
func RunScript(m common.Machine, file string) error {
	contents, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	for n, line := range strings.Split(string(contents), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		args := strings.Split(line, " ")
		cmd, ok := scriptCommands[args[0]]
		if !ok {
			return fmt.Errorf("%s:%d: unknown command %q", file, n+1, args[0])
		}
		if err := cmd(m, args[1:]); err != nil {
			return fmt.Errorf("%s:%d: %w", file, n+1, err)
		}
	}
	return nil
}
