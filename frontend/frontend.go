// Package frontend drives the interpreter: an SDL2 window for the
// framebuffer, keyboard input, 60Hz pacing of steps against timer
// ticks, and the interactive debug console.
package frontend

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/retroenv/retrogolib/log"

	"chit8/chip8"
	"chit8/common"
)

var _ common.Machine = (*chip8.CPU)(nil)

// Config is the pacing and presentation policy. The machine itself has
// no notion of wall-clock time; this is where it gets one.
type Config struct {
	// Scale is the window size multiplier over the 64x32 framebuffer.
	Scale int
	// Speed is how many instructions run per 1/60s frame.
	Speed int
	// Turbo removes frame pacing entirely.
	Turbo bool
}

// Frontend owns the display and the run loop around a machine.
type Frontend struct {
	machine common.Machine
	display *Display
	logger  *log.Logger

	speed int
	turbo bool
	quit  bool
}

// New opens the display and wires the front end to the machine.
func New(m common.Machine, logger *log.Logger, cfg Config) (*Frontend, error) {
	display, err := NewDisplay(cfg.Scale)
	if err != nil {
		return nil, err
	}

	if common.InputReader == nil {
		common.InputReader = bufio.NewReader(os.Stdin)
	}

	return &Frontend{
		machine: m,
		display: display,
		logger:  logger,
		speed:   cfg.Speed,
		turbo:   cfg.Turbo,
	}, nil
}

// Run paces the machine until the window closes, the context is
// cancelled, or the machine faults. Each frame: poll input, run Speed
// instructions, tick the timers once, present if dirty. A frame spent
// waiting for a key costs the same as any other; the wait is the
// machine's, never this loop's.
func (f *Frontend) Run(ctx context.Context) error {
	defer f.display.Close()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	tone := false
	for !f.quit {
		if f.turbo {
			if err := ctx.Err(); err != nil {
				return err
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}

		f.pollInput(f.machine)

		for i := 0; i < f.speed && !*f.machine.Debugging(); i++ {
			if err := f.machine.Step(); err != nil {
				f.logger.Error("Machine fault", log.Err(err))
				return err
			}
			if f.machine.BreakpointAt(f.machine.PC()) {
				*f.machine.Debugging() = true
			}
		}

		f.machine.TickTimers()

		if active := f.machine.ToneActive(); active != tone {
			tone = active
			if active {
				f.logger.Debug("Tone on")
			} else {
				f.logger.Debug("Tone off")
			}
		}

		if f.machine.Dirty() {
			if err := f.display.Draw(f.machine.Pixels()); err != nil {
				return err
			}
			f.machine.ClearDirty()
		}

		for *f.machine.Debugging() && !f.quit {
			f.debugConsole()
		}
	}

	return nil
}

// debugConsole prints the prompt and handles one command line.
func (f *Frontend) debugConsole() {
	f.machine.DebugPrompt()
	in, err := common.InputReader.ReadString('\n')
	if err != nil {
		fmt.Printf("error while reading input: %v\n", err)
		f.quit = true
		return
	}

	args := strings.Split(strings.TrimSpace(in), " ")
	if cmd, ok := common.DebugCommands[args[0]]; ok {
		cmd.Run(f.machine, args)
	} else {
		fmt.Printf("Unknown command '%s'\n", args[0])
		fmt.Printf("Commands:\n")
		for key, dbg := range common.DebugCommands {
			fmt.Printf("%s\t%s\n", key, dbg.Describe())
		}
	}
}

func (f *Frontend) printHelp() {
	fmt.Println("=== Emulator commands ===")
	fmt.Println("F1\tShow this help")
	fmt.Println("F2\tStart debugging")
	fmt.Println("F3\tResume running")
	fmt.Println("F4\tTurbo speed toggle")
	fmt.Println("Esc\tQuit")
}
