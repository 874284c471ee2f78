package chip8

// ScreenWidth and ScreenHeight are the physical plane dimensions used
// for every resolution mode; lowres is emulated by writing logical
// pixels as 2x2 blocks into this same buffer, which keeps scroll and
// draw logic uniform across modes.
const (
	ScreenWidth  = 128
	ScreenHeight = 64
)

// ResMode selects the logical screen resolution.
type ResMode int

const (
	LoRes ResMode = iota
	HiRes
)

// Plane bitmask values for TargetPlane.
const (
	Plane1 uint8 = 1 << 0
	Plane2 uint8 = 1 << 1
)

// Display is the two-plane, four-color XO-CHIP framebuffer. Both
// planes are always physically 128x64; lowres mode addresses an
// effective 64x32 logical grid through 2x2 block writes.
type Display struct {
	planes      [2][ScreenWidth * ScreenHeight]byte
	Res         ResMode
	TargetPlane uint8
	Dirty       bool
}

// NewDisplay returns a blank, lowres display with plane 1 selected.
func NewDisplay() *Display {
	return &Display{Res: LoRes, TargetPlane: Plane1}
}

func (d *Display) planeSelected(p int) bool {
	return d.TargetPlane&(1<<uint(p)) != 0
}

// effectiveDims returns the logical coordinate space sprites and
// scroll-by-pixel-count reasoning should use.
func (d *Display) effectiveDims() (int, int) {
	if d.Res == LoRes {
		return ScreenWidth / 2, ScreenHeight / 2
	}
	return ScreenWidth, ScreenHeight
}

// Clear wipes the currently selected planes (00E0).
func (d *Display) Clear() {
	for p := 0; p < 2; p++ {
		if !d.planeSelected(p) {
			continue
		}
		for i := range d.planes[p] {
			d.planes[p][i] = 0
		}
	}
	d.Dirty = true
}

// SetResMode switches resolution, clearing the whole screen if the
// mode actually changed (00FE/00FF).
func (d *Display) SetResMode(mode ResMode) {
	if mode == d.Res {
		return
	}
	d.Res = mode
	for p := range d.planes {
		for i := range d.planes[p] {
			d.planes[p][i] = 0
		}
	}
	d.Dirty = true
}

func (d *Display) rawIndex(x, y int) int {
	return y*ScreenWidth + x
}

// scrollRows shifts the selected planes by delta rows; positive delta
// scrolls content downward, negative upward. Vacated rows are zeroed.
func (d *Display) scrollRows(delta int) {
	for p := 0; p < 2; p++ {
		if !d.planeSelected(p) {
			continue
		}
		plane := &d.planes[p]
		if delta > 0 {
			for y := ScreenHeight - 1; y >= 0; y-- {
				for x := 0; x < ScreenWidth; x++ {
					src := y - delta
					if src >= 0 {
						plane[d.rawIndex(x, y)] = plane[d.rawIndex(x, src)]
					} else {
						plane[d.rawIndex(x, y)] = 0
					}
				}
			}
		} else {
			for y := 0; y < ScreenHeight; y++ {
				for x := 0; x < ScreenWidth; x++ {
					src := y - delta
					if src < ScreenHeight {
						plane[d.rawIndex(x, y)] = plane[d.rawIndex(x, src)]
					} else {
						plane[d.rawIndex(x, y)] = 0
					}
				}
			}
		}
	}
	d.Dirty = true
}

// scrollCols shifts the selected planes by delta columns; positive
// scrolls right, negative left.
func (d *Display) scrollCols(delta int) {
	for p := 0; p < 2; p++ {
		if !d.planeSelected(p) {
			continue
		}
		plane := &d.planes[p]
		if delta > 0 {
			for y := 0; y < ScreenHeight; y++ {
				for x := ScreenWidth - 1; x >= 0; x-- {
					src := x - delta
					if src >= 0 {
						plane[d.rawIndex(x, y)] = plane[d.rawIndex(src, y)]
					} else {
						plane[d.rawIndex(x, y)] = 0
					}
				}
			}
		} else {
			for y := 0; y < ScreenHeight; y++ {
				for x := 0; x < ScreenWidth; x++ {
					src := x - delta
					if src < ScreenWidth {
						plane[d.rawIndex(x, y)] = plane[d.rawIndex(src, y)]
					} else {
						plane[d.rawIndex(x, y)] = 0
					}
				}
			}
		}
	}
	d.Dirty = true
}

// ScrollDown scrolls selected planes down n rows (00CN), doubled in
// lowres mode.
func (d *Display) ScrollDown(n int) {
	if d.Res == LoRes {
		n *= 2
	}
	d.scrollRows(n)
}

// ScrollUp scrolls selected planes up n rows (00DN, XO-CHIP),
// doubled in lowres mode.
func (d *Display) ScrollUp(n int) {
	if d.Res == LoRes {
		n *= 2
	}
	d.scrollRows(-n)
}

// ScrollRight scrolls selected planes right by 4 columns (8 in
// lowres), 00FB.
func (d *Display) ScrollRight() {
	cols := 4
	if d.Res == LoRes {
		cols = 8
	}
	d.scrollCols(cols)
}

// ScrollLeft scrolls selected planes left by 4 columns (8 in lowres), 00FC.
func (d *Display) ScrollLeft() {
	cols := 4
	if d.Res == LoRes {
		cols = 8
	}
	d.scrollCols(-cols)
}

// xorCell XORs a single physical pixel on plane p, reporting whether a
// previously-lit pixel was cleared (a collision).
func (d *Display) xorCell(p, x, y int) bool {
	i := d.rawIndex(x, y)
	before := d.planes[p][i]
	d.planes[p][i] ^= 1
	return before == 1 && d.planes[p][i] == 0
}

// drawLogicalPixel sets one logical pixel on plane p, expanding to a
// 2x2 physical block in lowres mode.
func (d *Display) drawLogicalPixel(p, x, y int) bool {
	if d.Res == HiRes {
		return d.xorCell(p, x, y)
	}
	collision := false
	bx, by := x*2, y*2
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 2; dx++ {
			if d.xorCell(p, bx+dx, by+dy) {
				collision = true
			}
		}
	}
	return collision
}

// wrapCoord reduces c into [0, n), matching sprite_will_wrap's use of
// Python's always-positive modulo for negative inputs.
func wrapCoord(c, n int) int {
	return ((c % n) + n) % n
}

// drawRow XORs one 8-bit sprite row at logical y (already reduced into
// range by the caller). x0 is the sprite's unwrapped base column: it is
// wrapped here, same as every other coordinate, since a lit pixel is
// always plotted at its wrapped position regardless of wrap. The wrap
// flag only controls whether an individual bit that crosses the right
// edge relative to the wrapped base is clipped (skipped) instead of
// wrapping around to the left edge.
func (d *Display) drawRow(p, x0, y int, row byte, wrap bool) bool {
	w, _ := d.effectiveDims()
	baseX := wrapCoord(x0, w)
	collision := false
	for bit := 0; bit < 8; bit++ {
		if row&(0x80>>uint(bit)) == 0 {
			continue
		}
		x := wrapCoord(x0+bit, w)
		if !wrap && x < baseX {
			continue
		}
		if d.drawLogicalPixel(p, x, y) {
			collision = true
		}
	}
	return collision
}

// DrawSprite draws an 8xN sprite (or a 16x16 sprite when n == 0) read
// from mem starting at addr, at logical coordinates (vx, vy), into
// every currently selected plane. It reports whether any previously
// lit pixel was cleared on any plane (the DXYN collision flag). addr
// (I) is never mutated; a local pointer starts at addr and each
// selected plane reads its rows where the previous selected plane's
// rows ended (N bytes per 8-wide plane, 32 bytes per 16x16 plane),
// matching the layout XO-CHIP multi-plane sprites use.
func (d *Display) DrawSprite(mem *Memory, addr uint16, vx, vy int, n byte, wrap bool) bool {
	collision := false
	wide16 := n == 0
	height := int(n)
	if wide16 {
		height = 16
	}

	_, h := d.effectiveDims()
	baseY := wrapCoord(vy, h)

	ptr := addr
	for p := 0; p < 2; p++ {
		if !d.planeSelected(p) {
			continue
		}
		if wide16 {
			for row := 0; row < height; row++ {
				left := mem.ReadByte(ptr)
				right := mem.ReadByte(ptr + 1)
				ptr += 2
				y := wrapCoord(vy+row, h)
				if !wrap && y < baseY {
					continue
				}
				if d.drawRow(p, vx, y, left, wrap) {
					collision = true
				}
				if d.drawRow(p, vx+8, y, right, wrap) {
					collision = true
				}
			}
		} else {
			for row := 0; row < height; row++ {
				b := mem.ReadByte(ptr)
				ptr++
				y := wrapCoord(vy+row, h)
				if !wrap && y < baseY {
					continue
				}
				if d.drawRow(p, vx, y, b, wrap) {
					collision = true
				}
			}
		}
	}

	d.Dirty = true
	return collision
}

// ComposePixel returns the 0-3 color index for physical pixel (x, y):
// (plane2_bit << 1) | plane1_bit.
func (d *Display) ComposePixel(x, y int) uint8 {
	i := d.rawIndex(x, y)
	return d.planes[1][i]<<1 | d.planes[0][i]
}

// ScreenBuffer composes both planes into a 64-row-of-128 grid of 0-3
// color indices, matching the Emulator.screen_buffer() interface.
func (d *Display) ScreenBuffer() [][]uint8 {
	buf := make([][]uint8, ScreenHeight)
	for y := 0; y < ScreenHeight; y++ {
		row := make([]uint8, ScreenWidth)
		for x := 0; x < ScreenWidth; x++ {
			row[x] = d.ComposePixel(x, y)
		}
		buf[y] = row
	}
	return buf
}

// TakeDirty reports and clears the dirty flag in one step, matching
// the Emulator frame loop's "if display dirty, blit, then clear" step.
func (d *Display) TakeDirty() bool {
	dirty := d.Dirty
	d.Dirty = false
	return dirty
}

// Clone returns an independent copy for snapshotting.
func (d *Display) Clone() *Display {
	c := *d
	return &c
}
