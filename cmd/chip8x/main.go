// Command chip8x is a minimal reference host for the chip8 package: a
// CLI entry point wiring SDL2 video/audio, a ROM file dialog, and a
// 60 Hz frame pump around chip8.Emulator.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/user-none/chip8x/chip8"
	"github.com/user-none/chip8x/internal/cli"
	"github.com/user-none/chip8x/internal/hostlog"
	"github.com/user-none/chip8x/internal/romdb"
)

const windowScale = 10

func init() {
	// SDL requires every call to originate from the thread that
	// initialized it.
	runtime.LockOSThread()
}

func main() {
	cli.Main(run)
}

func run(opts cli.Options) error {
	log := hostlog.New()

	rom, romPath, err := loadROM(opts.ROMPath)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	log.Log("loaded", romPath, fmt.Sprintf("(%d bytes)", len(rom)))

	platform := opts.Platform
	if detected, ok := romdb.Lookup(rom); ok {
		platform = detected
		log.Logf("romdb override", "platform", platform.String())
	}

	emu := chip8.New(platform, opts.Interpreter, 0, nil)
	emu.LoadROM(rom)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	vid, err := newVideo(windowScale)
	if err != nil {
		return fmt.Errorf("video init: %w", err)
	}
	defer vid.close()

	audio, err := newAudioOut()
	if err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	defer audio.close()

	emu.SetBlitCB(vid.blit)
	emu.SetSoundCB(func(pattern [16]byte, pitch byte) {
		frame := emu.GenerateAudioFrame(audioSampleRate, audioSamplesPerCB, 0.25)
		audio.queue(frame)
	})

	var paused bool
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for running := true; running; {
		running = pumpEvents(emu, &paused)
		if !paused {
			if err := emu.ProcessFrame(); err != nil {
				var exit chip8.ExitInterpreter
				if asExit(err, &exit) {
					log.Log("program exited", exit.Error())
					break
				}
				log.Log("fatal:", err.Error())
				break
			}
		}
		<-ticker.C
	}

	return nil
}

// asExit reports whether err is a chip8.ExitInterpreter, copying it
// into target — a thin errors.As wrapper kept local since it's the
// only type switch main needs.
func asExit(err error, target *chip8.ExitInterpreter) bool {
	return errors.As(err, target)
}

// loadROM reads romPath if given, otherwise prompts with a native file
// dialog filtered to the usual CHIP-8 ROM extensions.
func loadROM(romPath string) ([]byte, string, error) {
	if romPath == "" {
		path, err := dialog.File().Filter("CHIP-8 ROM", "ch8", "c8", "xo8").Load()
		if err != nil {
			return nil, "", err
		}
		romPath = path
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return nil, "", err
	}
	return rom, romPath, nil
}
