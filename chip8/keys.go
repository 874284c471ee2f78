package chip8

// KeyCount is the number of keys on the CHIP-8 hex keypad.
const KeyCount = 16

// Keys holds the current up/down state of the 16-entry hex keypad. The
// host may call SetState at any time the core is not mid-frame; the
// CHIP-8 program observes the latest value at the next key-reading
// instruction.
type Keys struct {
	down [KeyCount]bool
}

// SetState records whether key is currently pressed. Indices outside
// 0..15 are rejected (ignored) at this boundary.
func (k *Keys) SetState(key int, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	k.down[key] = down
}

// IsDown reports whether key is currently pressed.
func (k *Keys) IsDown(key uint8) bool {
	return k.down[key]
}

// AnyDown returns the lowest-indexed pressed key and true, or (0,
// false) if no key is down. Used by the blocking FX0A implementation.
func (k *Keys) AnyDown() (uint8, bool) {
	for i, down := range k.down {
		if down {
			return uint8(i), true
		}
	}
	return 0, false
}

// Clear releases every key.
func (k *Keys) Clear() {
	k.down = [KeyCount]bool{}
}

// Clone returns an independent copy for snapshotting.
func (k *Keys) Clone() *Keys {
	c := *k
	return &c
}
