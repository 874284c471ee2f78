package chip8

// Platform identifies one of the CHIP-8 family machines the engine can
// emulate. Each maps to a quirks preset and a default tickrate via
// PlatformDefaults.
type Platform int

const (
	OriginalChip8 Platform = iota
	HybridVIP
	ModernChip8
	Chip8X
	Chip48
	SuperChip1
	SuperChip
	MegaChip8
	XOChip
)

// String names the platform, matching the CLI's -p flag values.
func (p Platform) String() string {
	switch p {
	case OriginalChip8:
		return "originalChip8"
	case HybridVIP:
		return "hybridVIP"
	case ModernChip8:
		return "modernChip8"
	case Chip8X:
		return "chip8x"
	case Chip48:
		return "chip48"
	case SuperChip1:
		return "superchip1"
	case SuperChip:
		return "superchip"
	case MegaChip8:
		return "megachip8"
	case XOChip:
		return "xochip"
	default:
		return "unknown"
	}
}

// ParsePlatform maps a CLI platform tag back to a Platform, matching
// String's spellings. ok is false for unrecognized tags.
func ParsePlatform(tag string) (p Platform, ok bool) {
	for _, candidate := range []Platform{
		OriginalChip8, HybridVIP, ModernChip8, Chip8X, Chip48,
		SuperChip1, SuperChip, MegaChip8, XOChip,
	} {
		if candidate.String() == tag {
			return candidate, true
		}
	}
	return OriginalChip8, false
}

// PlatformDefaults returns the quirks preset and ops-per-frame tickrate
// a fresh Emulator should use for platform, absent explicit overrides.
func PlatformDefaults(p Platform) (Quirks, int) {
	switch p {
	case OriginalChip8, HybridVIP, Chip8X:
		return Quirks{Vblank: true, Logic: true}, 15
	case ModernChip8:
		return Quirks{}, 12
	case Chip48:
		return Quirks{Shift: true, MemoryIncrementByX: true, Jump: true}, 30
	case SuperChip1, SuperChip:
		return Quirks{Shift: true, MemoryLeaveIUnchanged: true, Jump: true}, 30
	case MegaChip8:
		return Quirks{Shift: true, MemoryLeaveIUnchanged: true, Jump: true}, 1000
	case XOChip:
		return Quirks{Wrap: true}, 100
	default:
		return Quirks{}, 15
	}
}

// MemorySize returns the address space size for platform: 64 KiB for
// XO-CHIP, 4 KiB for everything else.
func MemorySize(p Platform) int {
	if p == XOChip {
		return ExtendedMemorySize
	}
	return StandardMemorySize
}
