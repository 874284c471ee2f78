package chip8

// InterpreterKind selects between the basic-block caching engine and a
// plain single-step interpreter that never batches instructions.
type InterpreterKind int

const (
	Cached InterpreterKind = iota
	Pure
)

// ParseInterpreterKind maps a CLI -i value to an InterpreterKind.
func ParseInterpreterKind(tag string) (InterpreterKind, bool) {
	switch tag {
	case "cached":
		return Cached, true
	case "pure":
		return Pure, true
	}
	return Cached, false
}

// BlitFunc receives the composed 64-row-of-128 color-index frame
// whenever the display is dirty at the end of a frame.
type BlitFunc func(frame [][]uint8)

// SoundFunc receives the current audio pattern and pitch whenever the
// sound timer is active at the end of a frame.
type SoundFunc func(pattern [16]byte, pitch byte)

// Emulator wires every component together and drives the frame loop.
// It is the type a host program constructs, feeds ROM bytes and key
// events to, and steps once per video frame.
type Emulator struct {
	Platform Platform
	Tickrate int
	Quirks   Quirks
	cpu      *CPU
	blitCB   BlitFunc
	soundCB  SoundFunc
}

// New constructs an Emulator for platform. tickrate <= 0 means "use
// the platform default". A non-nil quirks overrides the platform's
// default quirk profile entirely (the caller is expected to have
// started from PlatformDefaults and adjusted it, not to pass a
// from-scratch zero value unless that's genuinely what's wanted).
func New(platform Platform, kind InterpreterKind, tickrate int, quirks *Quirks) *Emulator {
	defaultQuirks, defaultTickrate := PlatformDefaults(platform)
	if quirks != nil {
		defaultQuirks = *quirks
	}
	if tickrate <= 0 {
		tickrate = defaultTickrate
	}

	memory := NewMemory(MemorySize(platform))
	registers := NewRegisters()
	stack := &Stack{}
	timers := &Timers{}
	keys := &Keys{}
	display := NewDisplay()
	audio := &Audio{}

	cpu := NewCPU(registers, stack, memory, timers, keys, display, defaultQuirks, audio)
	cpu.Cached = kind == Cached

	return &Emulator{
		Platform: platform,
		Tickrate: tickrate,
		Quirks:   defaultQuirks,
		cpu:      cpu,
	}
}

// LoadROM copies program bytes into memory starting at 0x200.
func (e *Emulator) LoadROM(program []byte) {
	e.cpu.Memory.LoadROM(program)
}

// SetKeyState records whether key is currently pressed.
func (e *Emulator) SetKeyState(key int, down bool) {
	e.cpu.Keys.SetState(key, down)
}

// ClearKeys releases every key.
func (e *Emulator) ClearKeys() {
	e.cpu.Keys.Clear()
}

// SetBlitCB installs the callback invoked with the composed frame
// whenever the display changed during the frame just processed.
func (e *Emulator) SetBlitCB(fn BlitFunc) {
	e.blitCB = fn
}

// SetSoundCB installs the callback invoked with the audio pattern and
// pitch whenever the sound timer is active at the end of the frame.
func (e *Emulator) SetSoundCB(fn SoundFunc) {
	e.soundCB = fn
}

// ScreenBuffer returns the composed 64-row-of-128 color-index frame.
func (e *Emulator) ScreenBuffer() [][]uint8 {
	return e.cpu.Display.ScreenBuffer()
}

// ProcessFrame executes up to Tickrate operations (breaking early if
// quirks.vblank and a draw already occurred this frame), decrements
// timers, invokes the sound callback while the sound timer is active,
// and flushes the display through the blit callback if it changed.
// ExitInterpreter and UnknownOpcode (and any other op error) propagate
// to the caller; the host is expected to stop driving this Emulator.
func (e *Emulator) ProcessFrame() error {
	e.cpu.ResetDrawOccurred()

	for i := 0; i < e.Tickrate; i++ {
		if err := e.cpu.ExecuteNextOp(); err != nil {
			return err
		}
		if e.Quirks.Vblank && e.cpu.DrawOccurred() {
			break
		}
	}

	if e.cpu.Timers.Delay > 0 {
		e.cpu.Timers.Delay--
	}
	if e.cpu.Timers.Sound > 0 {
		if e.soundCB != nil {
			e.soundCB(e.cpu.Audio.Pattern, e.cpu.Audio.Pitch)
		}
		e.cpu.Timers.Sound--
	}

	if e.cpu.Display.TakeDirty() {
		if e.blitCB != nil {
			e.blitCB(e.cpu.Display.ScreenBuffer())
		}
	}

	return nil
}

// GenerateAudioFrame synthesizes a PCM frame from the emulator's
// current audio pattern/pitch, advancing its phase for the next call.
// The reference host calls it from its sound callback, once per
// processed frame while the sound timer is active, and queues the
// result to its audio device.
func (e *Emulator) GenerateAudioFrame(sampleRate, numSamples int, amplitude float64) []byte {
	return e.cpu.Audio.NextFrame(sampleRate, numSamples, amplitude)
}

// ExportRPL returns the current HP-RPL persistent flags.
func (e *Emulator) ExportRPL() [16]byte {
	return e.cpu.Registers.ExportRPL()
}

// ImportRPL overwrites the HP-RPL persistent flags; ok is false if
// data is not exactly 16 bytes.
func (e *Emulator) ImportRPL(data []byte) bool {
	return e.cpu.Registers.ImportRPL(data)
}

// Clone returns an independent deep copy for rewind: every mutable
// component is snapshotted except the CXNN random-number generator,
// which the clone gets freshly seeded, so random draws after cloning
// differ between the two. The decoder's stateless PIC cache is shared
// with the original.
func (e *Emulator) Clone() *Emulator {
	clonedCPU := NewCPU(
		e.cpu.Registers.Clone(),
		e.cpu.Stack.Clone(),
		e.cpu.Memory.Clone(),
		e.cpu.Timers.Clone(),
		e.cpu.Keys.Clone(),
		e.cpu.Display.Clone(),
		e.cpu.Quirks,
		e.cpu.Audio.Clone(),
	)
	clonedCPU.Cached = e.cpu.Cached
	clonedCPU.CopyState(e.cpu)

	return &Emulator{
		Platform: e.Platform,
		Tickrate: e.Tickrate,
		Quirks:   e.Quirks,
		cpu:      clonedCPU,
		blitCB:   e.blitCB,
		soundCB:  e.soundCB,
	}
}
