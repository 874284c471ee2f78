package chip8

// Decoder turns a fetched opcode into a bound Op, maintaining the two
// caches the block emitter relies on: an opcode-keyed cache for
// position-independent (PIC) ops, shared across every PC and ROM under
// a fixed quirk profile, and a PC-keyed cache for non-PIC ops, which
// must be invalidated whenever the program writes into code memory.
type Decoder struct {
	pic    map[uint16]*Op
	nonPic map[uint16]*Op
	quirks Quirks
}

// NewDecoder returns a Decoder bound to a fixed quirk profile. Quirks
// never change over a Decoder's lifetime; a platform switch requires a
// fresh Emulator.
func NewDecoder(quirks Quirks) *Decoder {
	return &Decoder{
		pic:    make(map[uint16]*Op),
		nonPic: make(map[uint16]*Op),
		quirks: quirks,
	}
}

// Clear drops the non-PIC cache. The PIC cache is left intact: its
// entries are stateless and correct regardless of what self-modifying
// write just occurred.
func (d *Decoder) Clear() {
	d.nonPic = make(map[uint16]*Op)
}

// CloneSharingPIC returns a Decoder for an independent snapshot. The
// PIC cache is shared with the original (its entries carry no PC- or
// ROM-specific state), while the non-PIC cache is deep-copied so the
// clone can diverge independently.
func (d *Decoder) CloneSharingPIC() *Decoder {
	nonPic := make(map[uint16]*Op, len(d.nonPic))
	for pc, op := range d.nonPic {
		nonPic[pc] = op
	}
	return &Decoder{pic: d.pic, nonPic: nonPic, quirks: d.quirks}
}

// isNonPic reports whether opcode's behavior depends on the PC it
// appears at (CALL pushes the address following its own) or on the
// instruction immediately following it (the XO-CHIP 0xF000-aware
// skip), and so must be cached per-PC rather than per-opcode.
func isNonPic(opcode uint16) bool {
	switch opcode & 0xF000 {
	case 0x2000:
		return true
	case 0x3000, 0x4000:
		return true
	case 0x5000:
		return opcode&0xF == 0x0
	case 0x9000:
		return true
	case 0xE000:
		nn := opcode & 0xFF
		return nn == 0x9E || nn == 0xA1
	case 0xF000:
		return opcode == 0xF000
	}
	return false
}

// Decode resolves opcode fetched at pc into a bound Op, consulting the
// per-PC cache first, then the opcode-keyed cache, and only calling
// into the raw matcher on a double miss. nextOpcode is the word
// immediately following opcode in memory; it feeds both the
// 0xF000-aware skip distance and the 16-bit immediate of the
// double-wide F000 prefix.
func (d *Decoder) Decode(pc, opcode, nextOpcode uint16) (*Op, error) {
	if op, ok := d.nonPic[pc]; ok {
		return op, nil
	}
	if op, ok := d.pic[opcode]; ok {
		return op, nil
	}

	op, err := d.decodeRaw(opcode, nextOpcode)
	if err != nil {
		return nil, err
	}

	if isNonPic(opcode) {
		d.nonPic[pc] = op
	} else {
		d.pic[opcode] = op
	}
	return op, nil
}

func (d *Decoder) decodeRaw(opcode, nextOpcode uint16) (*Op, error) {
	x := byte(opcode >> 8 & 0xF)
	y := byte(opcode >> 4 & 0xF)
	n := byte(opcode & 0xF)
	nn := byte(opcode & 0xFF)
	nnn := opcode & 0xFFF
	skip := nextOpcode == 0xF000

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			return &Op{Tag: TagClear, Kind: OPERATION, Opcode: opcode}, nil
		case 0x00EE:
			return &Op{Tag: TagReturn, Kind: JUMP, Opcode: opcode}, nil
		case 0x00FB:
			return &Op{Tag: TagScrollRight, Kind: OPERATION, Opcode: opcode}, nil
		case 0x00FC:
			return &Op{Tag: TagScrollLeft, Kind: OPERATION, Opcode: opcode}, nil
		case 0x00FD:
			return &Op{Tag: TagExit, Kind: EXIT, Opcode: opcode}, nil
		case 0x00FE:
			return &Op{Tag: TagLoRes, Kind: OPERATION, Opcode: opcode}, nil
		case 0x00FF:
			return &Op{Tag: TagHiRes, Kind: OPERATION, Opcode: opcode}, nil
		}
		switch opcode & 0xFFF0 {
		case 0x00C0:
			return &Op{Tag: TagScrollDown, Kind: OPERATION, Opcode: opcode, N: n}, nil
		case 0x00D0:
			return &Op{Tag: TagScrollUp, Kind: OPERATION, Opcode: opcode, N: n}, nil
		}
		return nil, UnknownOpcode{Opcode: opcode}

	case 0x1000:
		return &Op{Tag: TagJump, Kind: JUMP, Opcode: opcode, NNN: nnn}, nil

	case 0x2000:
		return &Op{Tag: TagCall, Kind: JUMP, Opcode: opcode, NNN: nnn}, nil

	case 0x3000:
		return &Op{Tag: TagSkipEq, Kind: COND_ADVANCE, Opcode: opcode, X: x, NN: nn, Skip: skip}, nil

	case 0x4000:
		return &Op{Tag: TagSkipNeq, Kind: COND_ADVANCE, Opcode: opcode, X: x, NN: nn, Skip: skip}, nil

	case 0x5000:
		switch n {
		case 0x0:
			return &Op{Tag: TagSkipRegEq, Kind: COND_ADVANCE, Opcode: opcode, X: x, Y: y, Skip: skip}, nil
		case 0x2:
			return &Op{Tag: TagSaveRange, Kind: OPERATION, Opcode: opcode, X: x, Y: y}, nil
		case 0x3:
			return &Op{Tag: TagLoadRange, Kind: OPERATION, Opcode: opcode, X: x, Y: y}, nil
		}
		return nil, UnknownOpcode{Opcode: opcode}

	case 0x6000:
		return &Op{Tag: TagLoadImm, Kind: OPERATION, Opcode: opcode, X: x, NN: nn}, nil

	case 0x7000:
		return &Op{Tag: TagAddImm, Kind: OPERATION, Opcode: opcode, X: x, NN: nn}, nil

	case 0x8000:
		switch n {
		case 0x0:
			return &Op{Tag: TagMove, Kind: OPERATION, Opcode: opcode, X: x, Y: y}, nil
		case 0x1:
			return &Op{Tag: TagOr, Kind: OPERATION, Opcode: opcode, X: x, Y: y, Quirks: d.quirks}, nil
		case 0x2:
			return &Op{Tag: TagAnd, Kind: OPERATION, Opcode: opcode, X: x, Y: y, Quirks: d.quirks}, nil
		case 0x3:
			return &Op{Tag: TagXor, Kind: OPERATION, Opcode: opcode, X: x, Y: y, Quirks: d.quirks}, nil
		case 0x4:
			return &Op{Tag: TagAdd, Kind: OPERATION, Opcode: opcode, X: x, Y: y}, nil
		case 0x5:
			return &Op{Tag: TagSub, Kind: OPERATION, Opcode: opcode, X: x, Y: y}, nil
		case 0x6:
			return &Op{Tag: TagShiftRight, Kind: OPERATION, Opcode: opcode, X: x, Y: y, Quirks: d.quirks}, nil
		case 0x7:
			return &Op{Tag: TagSubN, Kind: OPERATION, Opcode: opcode, X: x, Y: y}, nil
		case 0xE:
			return &Op{Tag: TagShiftLeft, Kind: OPERATION, Opcode: opcode, X: x, Y: y, Quirks: d.quirks}, nil
		}
		return nil, UnknownOpcode{Opcode: opcode}

	case 0x9000:
		if n != 0x0 {
			return nil, UnknownOpcode{Opcode: opcode}
		}
		return &Op{Tag: TagSkipRegNeq, Kind: COND_ADVANCE, Opcode: opcode, X: x, Y: y, Skip: skip}, nil

	case 0xA000:
		return &Op{Tag: TagLoadI, Kind: OPERATION, Opcode: opcode, NNN: nnn}, nil

	case 0xB000:
		return &Op{Tag: TagJumpOffset, Kind: JUMP, Opcode: opcode, X: x, NNN: nnn, Quirks: d.quirks}, nil

	case 0xC000:
		return &Op{Tag: TagRandom, Kind: OPERATION, Opcode: opcode, X: x, NN: nn}, nil

	case 0xD000:
		return &Op{Tag: TagDraw, Kind: DRAW, Opcode: opcode, X: x, Y: y, N: n, Quirks: d.quirks}, nil

	case 0xE000:
		switch nn {
		case 0x9E:
			return &Op{Tag: TagSkipKeyPressed, Kind: COND_ADVANCE, Opcode: opcode, X: x, Skip: skip}, nil
		case 0xA1:
			return &Op{Tag: TagSkipKeyNotPressed, Kind: COND_ADVANCE, Opcode: opcode, X: x, Skip: skip}, nil
		}
		return nil, UnknownOpcode{Opcode: opcode}

	case 0xF000:
		if opcode == 0xF000 {
			return &Op{Tag: TagLoadILong, Kind: DOUBLE_WIDE, Opcode: opcode, NNN: nextOpcode}, nil
		}
		switch nn {
		case 0x01:
			return &Op{Tag: TagSetPlane, Kind: OPERATION, Opcode: opcode, N: x}, nil
		case 0x02:
			return &Op{Tag: TagLoadPattern, Kind: OPERATION, Opcode: opcode}, nil
		case 0x07:
			return &Op{Tag: TagLoadDelay, Kind: OPERATION, Opcode: opcode, X: x}, nil
		case 0x0A:
			return &Op{Tag: TagWaitKey, Kind: BLOCKING, Opcode: opcode, X: x}, nil
		case 0x15:
			return &Op{Tag: TagSetDelay, Kind: OPERATION, Opcode: opcode, X: x}, nil
		case 0x18:
			return &Op{Tag: TagSetSound, Kind: OPERATION, Opcode: opcode, X: x}, nil
		case 0x1E:
			return &Op{Tag: TagAddI, Kind: OPERATION, Opcode: opcode, X: x}, nil
		case 0x29:
			return &Op{Tag: TagFontSmall, Kind: OPERATION, Opcode: opcode, X: x}, nil
		case 0x30:
			return &Op{Tag: TagFontLarge, Kind: OPERATION, Opcode: opcode, X: x}, nil
		case 0x33:
			return &Op{Tag: TagBCD, Kind: OPERATION, Opcode: opcode, X: x}, nil
		case 0x3A:
			return &Op{Tag: TagSetPitch, Kind: OPERATION, Opcode: opcode, X: x}, nil
		case 0x55:
			return &Op{Tag: TagStoreRegs, Kind: OPERATION, Opcode: opcode, X: x, Quirks: d.quirks}, nil
		case 0x65:
			return &Op{Tag: TagLoadRegs, Kind: OPERATION, Opcode: opcode, X: x, Quirks: d.quirks}, nil
		case 0x75:
			return &Op{Tag: TagStoreRPL, Kind: OPERATION, Opcode: opcode, X: x}, nil
		case 0x85:
			return &Op{Tag: TagLoadRPL, Kind: OPERATION, Opcode: opcode, X: x}, nil
		}
		return nil, UnknownOpcode{Opcode: opcode}
	}

	return nil, UnknownOpcode{Opcode: opcode}
}
