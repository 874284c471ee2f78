package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassembleKnownForms(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.LoadROM([]byte{
		0x00, 0xE0, // CLS
		0x62, 0x0A, // LD V2, #0A
		0xD1, 0x25, // DRW V1, V2, 5
		0xF0, 0x00, // LD I, #1234 (double-wide)
		0x12, 0x34,
	})

	assert.Equal(t, "0200 - CLS", Disassemble(mem, 0x200))
	assert.Equal(t, "0202 - LD     V2, #0A", Disassemble(mem, 0x202))
	assert.Equal(t, "0204 - DRW    V1, V2, 5", Disassemble(mem, 0x204))
	assert.Equal(t, "0206 - LD     I, #1234", Disassemble(mem, 0x206))
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x200, 0x00)
	mem.WriteByte(0x201, 0x01)

	assert.Equal(t, "0200 - ??     #0001", Disassemble(mem, 0x200))
}
