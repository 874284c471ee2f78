package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/user-none/chip8x/chip8"
)

// palette maps a composed 2-bit plane index (0-3) to an RGB color,
// kept at the host boundary since the core only ever deals in plane
// indices, never colors.
var palette = [4][3]byte{
	{17, 29, 43},    // 0: off
	{224, 224, 224}, // 1: plane 1 only
	{255, 176, 0},   // 2: plane 2 only
	{80, 200, 120},  // 3: both planes
}

// paletteColor returns the RGB color for a composed plane index,
// masking out any unexpected high bits.
func paletteColor(idx uint8) [3]byte {
	return palette[idx&0x3]
}

// video owns the SDL window, renderer, and the streaming texture the
// emulator's composed frame is blitted into each time the display is
// dirty.
type video struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

func newVideo(scale int32) (*video, error) {
	window, err := sdl.CreateWindow(
		"chip8x",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(chip8.ScreenWidth)*scale, int32(chip8.ScreenHeight)*scale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24,
		sdl.TEXTUREACCESS_STREAMING,
		int32(chip8.ScreenWidth), int32(chip8.ScreenHeight),
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}

	return &video{window: window, renderer: renderer, texture: texture}, nil
}

// blit composes frame (rows of 2-bit plane indices) through the
// palette and streams it into the texture, then presents it scaled to
// the window's current size.
func (v *video) blit(frame [][]uint8) {
	pixels := make([]byte, chip8.ScreenWidth*chip8.ScreenHeight*3)
	for y, row := range frame {
		for x, idx := range row {
			c := paletteColor(idx)
			o := (y*chip8.ScreenWidth + x) * 3
			pixels[o], pixels[o+1], pixels[o+2] = c[0], c[1], c[2]
		}
	}

	if err := v.texture.Update(nil, pixels, chip8.ScreenWidth*3); err != nil {
		return
	}

	v.renderer.Clear()
	v.renderer.Copy(v.texture, nil, nil)
	v.renderer.Present()
}

func (v *video) close() {
	v.texture.Destroy()
	v.renderer.Destroy()
	v.window.Destroy()
}
