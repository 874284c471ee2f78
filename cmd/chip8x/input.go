package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/user-none/chip8x/chip8"
)

// keyMap mirrors the teacher's layout: the left half of a QWERTY
// keyboard standing in for the CHIP-8's 4x4 hex keypad.
var keyMap = map[sdl.Scancode]int{
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_Z: 0xA,
	sdl.SCANCODE_C: 0xB,
	sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_V: 0xF,
}

// pumpEvents drains the SDL event queue, applying key transitions to
// emu synchronously (before the frame's process_frame call, per the
// single-threaded concurrency model) and reporting whether the host
// should keep running.
func pumpEvents(emu *chip8.Emulator, paused *bool) bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyDownEvent:
			if ev.Repeat == 0 {
				if key, ok := keyMap[ev.Keysym.Scancode]; ok {
					emu.SetKeyState(key, true)
				}
			}
		case *sdl.KeyUpEvent:
			if ev.Repeat == 0 {
				switch ev.Keysym.Scancode {
				case sdl.SCANCODE_ESCAPE:
					return false
				case sdl.SCANCODE_F9:
					*paused = !*paused
				default:
					if key, ok := keyMap[ev.Keysym.Scancode]; ok {
						emu.SetKeyState(key, false)
					}
				}
			}
		}
	}
	return true
}
