package frontend

import (
	"github.com/veandco/go-sdl2/sdl"

	"chit8/common"
)

// The 4x4 hex pad maps onto the left side of a modern keyboard:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keypad = map[sdl.Keycode]uint8{
	sdl.K_1: 0x1, sdl.K_2: 0x2, sdl.K_3: 0x3, sdl.K_4: 0xc,
	sdl.K_q: 0x4, sdl.K_w: 0x5, sdl.K_e: 0x6, sdl.K_r: 0xd,
	sdl.K_a: 0x7, sdl.K_s: 0x8, sdl.K_d: 0x9, sdl.K_f: 0xe,
	sdl.K_z: 0xa, sdl.K_x: 0x0, sdl.K_c: 0xb, sdl.K_v: 0xf,
}

// pollInput drains the SDL event queue, forwarding keypad presses to the
// machine and emulator controls (Escape, F-keys) to the front end. This
// runs between frames, so the machine only ever sees key flags change at
// cycle boundaries.
func (f *Frontend) pollInput(m common.Machine) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			f.quit = true

		case *sdl.KeyboardEvent:
			down := t.Type == sdl.KEYDOWN
			if key, ok := keypad[t.Keysym.Sym]; ok {
				m.SetKey(key, down)
				continue
			}
			if down {
				f.controlKey(m, t.Keysym.Sym)
			}
		}
	}
}

func (f *Frontend) controlKey(m common.Machine, sym sdl.Keycode) {
	switch sym {
	case sdl.K_ESCAPE:
		f.quit = true

	case sdl.K_F1:
		f.printHelp()

	case sdl.K_F2:
		*m.Debugging() = true

	case sdl.K_F3:
		*m.Debugging() = false

	case sdl.K_F4:
		f.turbo = !f.turbo
		if f.turbo {
			f.logger.Info("turbo enabled: speed unlimited")
		} else {
			f.logger.Info("turbo disabled: paced at 60Hz frames")
		}
	}
}
