package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegistersStartsAtROMStart(t *testing.T) {
	r := NewRegisters()
	assert.Equal(t, uint16(RomStart), r.PC)
}

func TestSetVRejectsOutOfRangeIndex(t *testing.T) {
	r := NewRegisters()
	assert.Panics(t, func() {
		r.SetV(0x10, 1)
	})
}

func TestRPLRoundTrip(t *testing.T) {
	r := NewRegisters()
	for i := range r.RPL {
		r.V[i] = byte(i * 3)
	}
	copy(r.RPL[:], r.V[:])

	exported := r.ExportRPL()

	r2 := NewRegisters()
	ok := r2.ImportRPL(exported[:])
	assert.True(t, ok)
	assert.Equal(t, exported, r2.ExportRPL())
}

func TestImportRPLRejectsWrongLength(t *testing.T) {
	r := NewRegisters()
	assert.False(t, r.ImportRPL([]byte{1, 2, 3}))
}

func TestRegistersCloneIsIndependent(t *testing.T) {
	r := NewRegisters()
	r.V[0] = 5

	clone := r.Clone()
	clone.V[0] = 9

	assert.Equal(t, byte(5), r.V[0])
	assert.Equal(t, byte(9), clone.V[0])
}
