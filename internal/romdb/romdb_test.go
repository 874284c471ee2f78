package romdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user-none/chip8x/chip8"
)

func TestLookupMissReturnsFalse(t *testing.T) {
	_, ok := Lookup([]byte{0x12, 0x34})
	assert.False(t, ok)
}

func TestLookupHitReturnsRegisteredPlatform(t *testing.T) {
	rom := []byte{0x00, 0xE0, 0x12, 0x00}
	table[Hash(rom)] = chip8.XOChip
	defer delete(table, Hash(rom))

	p, ok := Lookup(rom)
	assert.True(t, ok)
	assert.Equal(t, chip8.XOChip, p)
}

func TestHashIsStableForSameContent(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{1, 2, 3}
	assert.Equal(t, Hash(a), Hash(b))
}
