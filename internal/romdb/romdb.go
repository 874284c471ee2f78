// Package romdb is a tiny, in-memory ROM-quirk override table: a
// handful of widely distributed ROMs need a platform other than
// originalChip8 to run correctly, and this is the interface boundary
// a host consults before falling back to the -p flag. It is
// deliberately static — no network lookup, no persistence.
package romdb

import (
	"crypto/sha1"
	"encoding/hex"

	"github.com/user-none/chip8x/chip8"
)

// Hash returns the lookup key for rom's contents.
func Hash(rom []byte) string {
	sum := sha1.Sum(rom)
	return hex.EncodeToString(sum[:])
}

// table maps a ROM's content hash to the platform it's known to need.
// Entries are added here as specific ROMs are found to misbehave under
// the -p default; the hash alone doesn't document which ROM it is, so
// every entry carries a comment naming it.
var table = map[string]chip8.Platform{
	// Populate with chip48/superchip/xochip ROMs found in the wild to
	// need a platform the -p default gets wrong.
}

// Lookup returns the platform override for rom's contents, if any.
func Lookup(rom []byte) (chip8.Platform, bool) {
	p, ok := table[Hash(rom)]
	return p, ok
}
