package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newHiResDisplay() *Display {
	d := NewDisplay()
	d.SetResMode(HiRes)
	return d
}

func TestDrawSpriteSetsPixelsAndReportsNoCollision(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x300, 0xFF)
	mem.WriteByte(0x301, 0xFF)

	d := newHiResDisplay()
	collision := d.DrawSprite(mem, 0x300, 0, 0, 2, false)

	assert.False(t, collision)
	count := 0
	for x := 0; x < 8; x++ {
		for y := 0; y < 2; y++ {
			if d.ComposePixel(x, y) != 0 {
				count++
			}
		}
	}
	assert.Equal(t, 16, count)
}

func TestDrawSpriteTwiceClearsAndCollides(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x300, 0xFF)
	mem.WriteByte(0x301, 0xFF)

	d := newHiResDisplay()
	d.DrawSprite(mem, 0x300, 0, 0, 2, false)
	collision := d.DrawSprite(mem, 0x300, 0, 0, 2, false)

	assert.True(t, collision)
	for x := 0; x < 8; x++ {
		for y := 0; y < 2; y++ {
			assert.Equal(t, uint8(0), d.ComposePixel(x, y))
		}
	}
}

func TestDrawSpriteClipsWithoutWrap(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x300, 0xFF)

	d := newHiResDisplay()
	d.DrawSprite(mem, 0x300, ScreenWidth-4, 0, 1, false)

	// only the 4 in-bounds bits should have been drawn; nothing wraps
	// to column 0.
	assert.Equal(t, uint8(0), d.ComposePixel(0, 0))
}

func TestDrawSpriteWrapsOutOfRangeBaseBeforeClipping(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x300, 0xFF)

	d := newHiResDisplay()
	// vx=200 is way outside the 128-wide screen (V registers hold
	// 0-255); it should still wrap to column 72 and draw all 8 bits
	// there, not be dropped because the raw coordinate is out of range.
	collision := d.DrawSprite(mem, 0x300, 200, 0, 1, false)

	assert.False(t, collision)
	for x := 72; x < 80; x++ {
		assert.NotEqual(t, uint8(0), d.ComposePixel(x, 0), "column %d", x)
	}
}

func TestDrawSpriteWrapsAcrossEdge(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x300, 0xFF)

	d := newHiResDisplay()
	d.DrawSprite(mem, 0x300, ScreenWidth-4, 0, 1, true)

	assert.NotEqual(t, uint8(0), d.ComposePixel(0, 0))
}

func TestDrawSprite16x16(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	for i := 0; i < 32; i++ {
		mem.WriteByte(uint16(0x300+i), 0xFF)
	}

	d := newHiResDisplay()
	collision := d.DrawSprite(mem, 0x300, 0, 0, 0, false)
	assert.False(t, collision)

	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			assert.NotEqual(t, uint8(0), d.ComposePixel(x, y))
		}
	}
}

func TestLowResDrawsAsTwoByTwoBlock(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x300, 0x80) // single leftmost bit set

	d := NewDisplay() // defaults to lowres
	d.DrawSprite(mem, 0x300, 0, 0, 1, false)

	assert.NotEqual(t, uint8(0), d.ComposePixel(0, 0))
	assert.NotEqual(t, uint8(0), d.ComposePixel(1, 0))
	assert.NotEqual(t, uint8(0), d.ComposePixel(0, 1))
	assert.NotEqual(t, uint8(0), d.ComposePixel(1, 1))
}

func TestClearOnlyAffectsSelectedPlanes(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x300, 0xFF) // plane 1's row
	mem.WriteByte(0x301, 0xFF) // plane 2's row follows plane 1's

	d := newHiResDisplay()
	d.TargetPlane = Plane1 | Plane2
	d.DrawSprite(mem, 0x300, 0, 0, 1, false)

	d.TargetPlane = Plane1
	d.Clear()

	// plane 1 cleared, plane 2 still lit -> composed index is non-zero
	// (plane2 bit contributes 2).
	assert.Equal(t, uint8(2), d.ComposePixel(0, 0))
}

func TestScrollDownZeroesVacatedRows(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x300, 0xFF)

	d := newHiResDisplay()
	d.DrawSprite(mem, 0x300, 0, 0, 1, false)
	d.ScrollDown(4)

	assert.Equal(t, uint8(0), d.ComposePixel(0, 0))
	assert.NotEqual(t, uint8(0), d.ComposePixel(0, 4))
}

func TestScrollRightDoublesInLowRes(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x300, 0x80)

	d := NewDisplay() // lowres
	d.DrawSprite(mem, 0x300, 0, 0, 1, false)
	d.ScrollRight()

	// lowres scroll-right shifts by 8 physical columns (4 logical);
	// the original 2x2 block at (0,0)-(1,1) should now sit at (8,0).
	assert.NotEqual(t, uint8(0), d.ComposePixel(8, 0))
	assert.Equal(t, uint8(0), d.ComposePixel(0, 0))
}

func TestSetResModeClearsScreenOnChange(t *testing.T) {
	mem := NewMemory(StandardMemorySize)
	mem.WriteByte(0x300, 0xFF)

	d := newHiResDisplay()
	d.DrawSprite(mem, 0x300, 0, 0, 1, false)
	d.SetResMode(LoRes)

	assert.Equal(t, uint8(0), d.ComposePixel(0, 0))
}

func TestTakeDirtyResets(t *testing.T) {
	d := NewDisplay()
	d.Clear()
	assert.True(t, d.TakeDirty())
	assert.False(t, d.TakeDirty())
}
