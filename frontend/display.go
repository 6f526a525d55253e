package frontend

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"chit8/chip8"
)

const bytesPerPixel = 4 // ARGB8888

// Display renders the machine's 64x32 framebuffer into an SDL window
// through a streaming texture, scaled up by an integer factor.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// Staging buffer for the texture upload, one ARGB pixel per
	// framebuffer cell.
	buf [chip8.ScreenWidth * chip8.ScreenHeight * bytesPerPixel]byte

	scale int
}

// NewDisplay opens the window. SDL requires all calls from the same OS
// thread, so the caller's goroutine gets latched to one.
func NewDisplay(scale int) (*Display, error) {
	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to init SDL: %w", err)
	}

	window, err := sdl.CreateWindow("CHIT8", sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, int32(chip8.ScreenWidth*scale),
		int32(chip8.ScreenHeight*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, chip8.ScreenWidth, chip8.ScreenHeight)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}

	return &Display{
		window:   window,
		renderer: renderer,
		texture:  texture,
		scale:    scale,
	}, nil
}

// Draw paints the framebuffer snapshot and presents the frame.
func (d *Display) Draw(fb []byte) error {
	for i, px := range fb {
		// ARGB8888 is stored B, G, R, A in memory.
		v := byte(0x00)
		if px != 0 {
			v = 0xff
		}
		at := i * bytesPerPixel
		d.buf[at] = v
		d.buf[at+1] = v
		d.buf[at+2] = v
		d.buf[at+3] = 0xff
	}

	err := d.texture.Update(nil, d.buf[:], chip8.ScreenWidth*bytesPerPixel)
	if err != nil {
		return fmt.Errorf("failed to update texture: %w", err)
	}

	if err := d.renderer.Clear(); err != nil {
		return fmt.Errorf("failed to clear renderer: %w", err)
	}
	err = d.renderer.Copy(d.texture,
		&sdl.Rect{X: 0, Y: 0, W: chip8.ScreenWidth, H: chip8.ScreenHeight},
		&sdl.Rect{X: 0, Y: 0, W: int32(chip8.ScreenWidth * d.scale),
			H: int32(chip8.ScreenHeight * d.scale)})
	if err != nil {
		return fmt.Errorf("failed to copy texture: %w", err)
	}

	d.renderer.Present()
	return nil
}

// Close tears the SDL objects down in reverse order.
func (d *Display) Close() {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
	sdl.Quit()
}
