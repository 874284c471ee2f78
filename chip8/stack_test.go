package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	var s Stack

	require.NoError(t, s.Push(0x300))
	require.NoError(t, s.Push(0x400))
	assert.Equal(t, 2, s.Len())

	addr, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x400), addr)

	addr, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x300), addr)
	assert.Equal(t, 0, s.Len())
}

func TestStackOverflow(t *testing.T) {
	var s Stack
	for i := 0; i < StackDepth; i++ {
		require.NoError(t, s.Push(uint16(i)))
	}

	err := s.Push(0xFFFF)
	assert.Error(t, err)
	assert.IsType(t, StackOverflow{}, err)
}

func TestStackUnderflow(t *testing.T) {
	var s Stack
	_, err := s.Pop()
	assert.Error(t, err)
	assert.IsType(t, StackUnderflow{}, err)
}

func TestStackCloneIsIndependent(t *testing.T) {
	var s Stack
	require.NoError(t, s.Push(0x250))

	clone := s.Clone()
	require.NoError(t, clone.Push(0x260))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, clone.Len())
}
