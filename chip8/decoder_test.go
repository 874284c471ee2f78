package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNonPicClassification(t *testing.T) {
	nonPic := []uint16{0x2123, 0x3012, 0x4012, 0x5120, 0x9AB0, 0xE19E, 0xE2A1, 0xF000}
	for _, op := range nonPic {
		assert.True(t, isNonPic(op), "expected %#04x to be non-PIC", op)
	}

	pic := []uint16{0x1234, 0x6012, 0x8120, 0x5123, 0x5122, 0xA123, 0xD012, 0xF055, 0xF029}
	for _, op := range pic {
		assert.False(t, isNonPic(op), "expected %#04x to be PIC", op)
	}
}

func TestDecodeCachesPicByOpcodeAcrossDifferentPCs(t *testing.T) {
	d := NewDecoder(Quirks{})

	op1, err := d.Decode(0x200, 0x6012, 0)
	require.NoError(t, err)
	op2, err := d.Decode(0x400, 0x6012, 0)
	require.NoError(t, err)

	assert.Same(t, op1, op2)
}

func TestDecodeCachesNonPicByPCEvenForSameOpcode(t *testing.T) {
	d := NewDecoder(Quirks{})

	op1, err := d.Decode(0x200, 0x2300, 0)
	require.NoError(t, err)
	op2, err := d.Decode(0x400, 0x2300, 0)
	require.NoError(t, err)

	assert.NotSame(t, op1, op2)
}

func TestClearDropsNonPicButKeepsPic(t *testing.T) {
	d := NewDecoder(Quirks{})

	picBefore, err := d.Decode(0x200, 0x6012, 0)
	require.NoError(t, err)
	nonPicBefore, err := d.Decode(0x202, 0x2300, 0)
	require.NoError(t, err)

	d.Clear()

	picAfter, err := d.Decode(0x400, 0x6012, 0)
	require.NoError(t, err)
	nonPicAfter, err := d.Decode(0x202, 0x2300, 0)
	require.NoError(t, err)

	assert.Same(t, picBefore, picAfter)
	assert.NotSame(t, nonPicBefore, nonPicAfter)
}

func TestCloneSharingPICSharesPicButNotNonPic(t *testing.T) {
	d := NewDecoder(Quirks{})
	_, err := d.Decode(0x200, 0x6012, 0)
	require.NoError(t, err)
	_, err = d.Decode(0x202, 0x2300, 0)
	require.NoError(t, err)

	clone := d.CloneSharingPIC()

	picOrig, _ := d.Decode(0x400, 0x6012, 0)
	picClone, _ := clone.Decode(0x400, 0x6012, 0)
	assert.Same(t, picOrig, picClone)

	clone.Clear()
	assert.Len(t, clone.nonPic, 0)
	assert.Len(t, d.nonPic, 1) // clearing the clone must not affect the original
}

func TestUnknownOpcodeIsNotCached(t *testing.T) {
	d := NewDecoder(Quirks{})

	_, err := d.Decode(0x200, 0x00F1, 0)
	assert.IsType(t, UnknownOpcode{}, err)

	// a second attempt at the same bad opcode should fail the same way,
	// not panic on a stale nil cache entry.
	_, err = d.Decode(0x200, 0x00F1, 0)
	assert.IsType(t, UnknownOpcode{}, err)
}

func TestDoubleWidePrefixUsesNextOpcodeAsImmediate(t *testing.T) {
	d := NewDecoder(Quirks{})

	op, err := d.Decode(0x200, 0xF000, 0xABCD)
	require.NoError(t, err)
	assert.Equal(t, TagLoadILong, op.Tag)
	assert.Equal(t, DOUBLE_WIDE, op.Kind)
	assert.Equal(t, uint16(0xABCD), op.NNN)
}

func TestSkipSetWhenNextOpcodeIsDoubleWidePrefix(t *testing.T) {
	d := NewDecoder(Quirks{})

	op, err := d.Decode(0x200, 0x3012, 0xF000)
	require.NoError(t, err)
	assert.True(t, op.Skip)

	d2 := NewDecoder(Quirks{})
	op2, err := d2.Decode(0x200, 0x3012, 0x1234)
	require.NoError(t, err)
	assert.False(t, op2.Skip)
}
