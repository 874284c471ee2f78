package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoadROM(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	program := []byte{0x12, 0x34, 0x56}

	mem.LoadROM(program)

	assert.Equal(t, byte(0x12), mem.ReadByte(RomStart))
	assert.Equal(t, byte(0x34), mem.ReadByte(RomStart+1))
	assert.Equal(t, byte(0x56), mem.ReadByte(RomStart+2))
	assert.Equal(t, uint16(RomStart+len(program)), mem.RamStart)
}

func TestMemoryFetchOpcodeBigEndian(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(RomStart, 0xAB)
	mem.WriteByte(RomStart+1, 0xCD)

	require.Equal(t, uint16(0xABCD), mem.FetchOpcode(RomStart))
}

func TestMemoryWrapsAddressing(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(uint16(mem.Size()), 0x42)

	assert.Equal(t, byte(0x42), mem.ReadByte(0))
}

func TestMemoryIsCodeRegion(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.LoadROM([]byte{0x00, 0x00})

	assert.True(t, mem.IsCodeRegion(RomStart))
	assert.False(t, mem.IsCodeRegion(mem.RamStart))
}

func TestMemoryCloneIsIndependent(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.LoadROM([]byte{0x01, 0x02})

	clone := mem.Clone()
	clone.WriteByte(RomStart, 0xFF)

	assert.Equal(t, byte(0x01), mem.ReadByte(RomStart))
	assert.Equal(t, byte(0xFF), clone.ReadByte(RomStart))
}

func TestFontAddressesDoNotOverlap(t *testing.T) {
	for digit := byte(0); digit < 16; digit++ {
		small := SmallFontAddress(digit)
		large := LargeFontAddress(digit)
		assert.Less(t, int(small)+5, int(largeFontBase))
		assert.GreaterOrEqual(t, int(large), int(largeFontBase))
	}
}
