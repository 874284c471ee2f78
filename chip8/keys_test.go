package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysSetStateAndIsDown(t *testing.T) {
	var k Keys
	k.SetState(5, true)

	assert.True(t, k.IsDown(5))
	assert.False(t, k.IsDown(6))
}

func TestKeysSetStateRejectsOutOfRange(t *testing.T) {
	var k Keys
	k.SetState(-1, true)
	k.SetState(KeyCount, true)

	_, down := k.AnyDown()
	assert.False(t, down)
}

func TestKeysAnyDownReturnsLowestIndex(t *testing.T) {
	var k Keys
	k.SetState(7, true)
	k.SetState(2, true)

	key, down := k.AnyDown()
	assert.True(t, down)
	assert.Equal(t, uint8(2), key)
}

func TestKeysClear(t *testing.T) {
	var k Keys
	k.SetState(3, true)
	k.Clear()

	_, down := k.AnyDown()
	assert.False(t, down)
}
