package chip8

// BlockKind classifies a decoded operation for block-boundary and
// cache-policy decisions. Only JUMP, COND_ADVANCE, EXIT, and
// DOUBLE_WIDE terminate a block; everything else (OPERATION, DRAW,
// BLOCKING) is a straight-line member.
type BlockKind int

const (
	OPERATION BlockKind = iota
	JUMP
	COND_ADVANCE
	DOUBLE_WIDE
	DRAW
	EXIT
	BLOCKING
)

// OpTag names the decoded instruction family, one per mnemonic.
type OpTag int

const (
	TagClear OpTag = iota
	TagScrollDown
	TagScrollUp
	TagScrollRight
	TagScrollLeft
	TagExit
	TagLoRes
	TagHiRes
	TagReturn
	TagJump
	TagCall
	TagSkipEq
	TagSkipNeq
	TagSkipRegEq
	TagSkipRegNeq
	TagSaveRange
	TagLoadRange
	TagLoadImm
	TagAddImm
	TagMove
	TagOr
	TagAnd
	TagXor
	TagAdd
	TagSub
	TagShiftRight
	TagSubN
	TagShiftLeft
	TagLoadI
	TagJumpOffset
	TagRandom
	TagDraw
	TagSkipKeyPressed
	TagSkipKeyNotPressed
	TagLoadILong
	TagSetPlane
	TagLoadPattern
	TagLoadDelay
	TagSetDelay
	TagSetSound
	TagWaitKey
	TagAddI
	TagFontSmall
	TagFontLarge
	TagBCD
	TagSetPitch
	TagStoreRegs
	TagLoadRegs
	TagStoreRPL
	TagLoadRPL
)

// Op is a decoded, bound operation: a flat variant carrying whatever
// operand fields its Tag needs, plus the quirk profile it was decoded
// under. Keeping this a flat struct (rather than one closure per
// opcode) avoids boxing in the hot path.
type Op struct {
	Tag    OpTag
	Kind   BlockKind
	Opcode uint16

	X, Y byte
	N    byte
	NN   byte
	NNN  uint16 // low 12 bits normally; full 16 bits for TagLoadILong

	// Skip records whether the instruction immediately following this
	// one is the 0xF000 double-wide prefix, so a taken skip advances
	// by 4 bytes instead of 2.
	Skip bool

	Quirks Quirks
}

// Width reports how many bytes this op occupies: 2 normally, 4 for the
// XO-CHIP double-wide F000 prefix.
func (o *Op) Width() uint16 {
	if o.Kind == DOUBLE_WIDE {
		return 4
	}
	return 2
}

// OpResult reports the outcome of executing one op, per the CPU core's
// execute_next_op contract.
type OpResult struct {
	// Advance is false only for a BLOCKING op (FX0A) that found no key
	// down; the CPU must re-queue it and return.
	Advance bool

	// SelfModified signals that this op wrote into the code region or
	// jumped across the code/RAM boundary, requiring a full block
	// cache clear.
	SelfModified bool

	// IsJump is true when Execute has already set Registers.PC itself;
	// the CPU must not apply its own "pc_at + width" resume logic.
	IsJump bool

	// Drew is true only for DXYN; it feeds the vblank quirk's early
	// frame exit.
	Drew bool
}

func (cpu *CPU) crossesCodeBoundary(addr uint16) bool {
	return addr < RomStart || addr >= cpu.Memory.RamStart
}

func (cpu *CPU) condAdvanceExtra(take bool, o *Op) {
	if !take {
		return
	}
	extra := uint16(2)
	if o.Skip {
		extra = 4
	}
	cpu.Registers.PC += extra
}

// Execute runs the op against live CPU state. pcAt is the address this
// op itself was fetched from (needed by CALL and the self-modification
// boundary checks); Registers.PC already holds "the instruction after
// the end of the current block" per the block-entry contract. JUMP
// kinds set it explicitly and a taken COND_ADVANCE adds its skip
// distance to it; a DOUBLE_WIDE op leaves it alone, since the block
// already ends past its 16-bit immediate.
func (o *Op) Execute(cpu *CPU, pcAt uint16) (OpResult, error) {
	switch o.Tag {

	case TagClear:
		cpu.Display.Clear()
		return OpResult{Advance: true}, nil

	case TagScrollDown:
		cpu.Display.ScrollDown(int(o.N))
		return OpResult{Advance: true}, nil

	case TagScrollUp:
		cpu.Display.ScrollUp(int(o.N))
		return OpResult{Advance: true}, nil

	case TagScrollRight:
		cpu.Display.ScrollRight()
		return OpResult{Advance: true}, nil

	case TagScrollLeft:
		cpu.Display.ScrollLeft()
		return OpResult{Advance: true}, nil

	case TagExit:
		return OpResult{}, ExitInterpreter{PC: pcAt}

	case TagLoRes:
		cpu.Display.SetResMode(LoRes)
		return OpResult{Advance: true}, nil

	case TagHiRes:
		cpu.Display.SetResMode(HiRes)
		return OpResult{Advance: true}, nil

	case TagReturn:
		addr, err := cpu.Stack.Pop()
		if err != nil {
			return OpResult{}, err
		}
		cpu.Registers.PC = addr
		return OpResult{Advance: true, IsJump: true, SelfModified: cpu.crossesCodeBoundary(addr)}, nil

	case TagJump:
		cpu.Registers.PC = o.NNN
		return OpResult{Advance: true, IsJump: true, SelfModified: cpu.crossesCodeBoundary(o.NNN)}, nil

	case TagCall:
		// Return address is the instruction following this CALL.
		if err := cpu.Stack.Push(pcAt + 2); err != nil {
			return OpResult{}, err
		}
		cpu.Registers.PC = o.NNN
		return OpResult{Advance: true, IsJump: true, SelfModified: cpu.crossesCodeBoundary(o.NNN)}, nil

	case TagSkipEq:
		cpu.condAdvanceExtra(cpu.Registers.V[o.X] == o.NN, o)
		return OpResult{Advance: true, IsJump: true}, nil

	case TagSkipNeq:
		cpu.condAdvanceExtra(cpu.Registers.V[o.X] != o.NN, o)
		return OpResult{Advance: true, IsJump: true}, nil

	case TagSkipRegEq:
		cpu.condAdvanceExtra(cpu.Registers.V[o.X] == cpu.Registers.V[o.Y], o)
		return OpResult{Advance: true, IsJump: true}, nil

	case TagSkipRegNeq:
		cpu.condAdvanceExtra(cpu.Registers.V[o.X] != cpu.Registers.V[o.Y], o)
		return OpResult{Advance: true, IsJump: true}, nil

	case TagSaveRange:
		addr := cpu.Registers.I
		selfMod := addr < cpu.Memory.RamStart
		step := 1
		if o.X > o.Y {
			step = -1
		}
		idx := int(o.X)
		for {
			cpu.Memory.WriteByte(addr, cpu.Registers.V[idx])
			addr++
			if idx == int(o.Y) {
				break
			}
			idx += step
		}
		return OpResult{Advance: true, SelfModified: selfMod}, nil

	case TagLoadRange:
		addr := cpu.Registers.I
		step := 1
		if o.X > o.Y {
			step = -1
		}
		idx := int(o.X)
		for {
			cpu.Registers.SetV(uint8(idx), cpu.Memory.ReadByte(addr))
			addr++
			if idx == int(o.Y) {
				break
			}
			idx += step
		}
		return OpResult{Advance: true}, nil

	case TagLoadImm:
		cpu.Registers.SetV(o.X, o.NN)
		return OpResult{Advance: true}, nil

	case TagAddImm:
		cpu.Registers.SetV(o.X, cpu.Registers.V[o.X]+o.NN)
		return OpResult{Advance: true}, nil

	case TagMove:
		cpu.Registers.SetV(o.X, cpu.Registers.V[o.Y])
		return OpResult{Advance: true}, nil

	case TagOr:
		cpu.Registers.SetV(o.X, cpu.Registers.V[o.X]|cpu.Registers.V[o.Y])
		if o.Quirks.Logic {
			cpu.Registers.SetV(0xF, 0)
		}
		return OpResult{Advance: true}, nil

	case TagAnd:
		cpu.Registers.SetV(o.X, cpu.Registers.V[o.X]&cpu.Registers.V[o.Y])
		if o.Quirks.Logic {
			cpu.Registers.SetV(0xF, 0)
		}
		return OpResult{Advance: true}, nil

	case TagXor:
		cpu.Registers.SetV(o.X, cpu.Registers.V[o.X]^cpu.Registers.V[o.Y])
		if o.Quirks.Logic {
			cpu.Registers.SetV(0xF, 0)
		}
		return OpResult{Advance: true}, nil

	case TagAdd:
		sum := int(cpu.Registers.V[o.X]) + int(cpu.Registers.V[o.Y])
		vf := byte(0)
		if sum > 0xFF {
			vf = 1
		}
		cpu.Registers.SetV(o.X, byte(sum))
		cpu.Registers.SetV(0xF, vf)
		return OpResult{Advance: true}, nil

	case TagSub:
		vx, vy := cpu.Registers.V[o.X], cpu.Registers.V[o.Y]
		vf := byte(0)
		if vx >= vy {
			vf = 1
		}
		cpu.Registers.SetV(o.X, vx-vy)
		cpu.Registers.SetV(0xF, vf)
		return OpResult{Advance: true}, nil

	case TagSubN:
		vx, vy := cpu.Registers.V[o.X], cpu.Registers.V[o.Y]
		vf := byte(0)
		if vy >= vx {
			vf = 1
		}
		cpu.Registers.SetV(o.X, vy-vx)
		cpu.Registers.SetV(0xF, vf)
		return OpResult{Advance: true}, nil

	case TagShiftRight:
		src := cpu.Registers.V[o.Y]
		if o.Quirks.Shift {
			src = cpu.Registers.V[o.X]
		}
		lost := src & 0x01
		cpu.Registers.SetV(o.X, src>>1)
		cpu.Registers.SetV(0xF, lost)
		return OpResult{Advance: true}, nil

	case TagShiftLeft:
		src := cpu.Registers.V[o.Y]
		if o.Quirks.Shift {
			src = cpu.Registers.V[o.X]
		}
		lost := (src & 0x80) >> 7
		cpu.Registers.SetV(o.X, src<<1)
		cpu.Registers.SetV(0xF, lost)
		return OpResult{Advance: true}, nil

	case TagLoadI:
		cpu.Registers.I = o.NNN
		return OpResult{Advance: true}, nil

	case TagJumpOffset:
		var target uint16
		if o.Quirks.Jump {
			target = uint16(o.NNN&0xFF) + uint16(cpu.Registers.V[o.X])
		} else {
			target = o.NNN + uint16(cpu.Registers.V[0])
		}
		cpu.Registers.PC = target
		return OpResult{Advance: true, IsJump: true, SelfModified: cpu.crossesCodeBoundary(target)}, nil

	case TagRandom:
		cpu.Registers.SetV(o.X, byte(cpu.rng.Intn(256))&o.NN)
		return OpResult{Advance: true}, nil

	case TagDraw:
		cpu.Registers.SetV(0xF, 0)
		vx := int(cpu.Registers.V[o.X])
		vy := int(cpu.Registers.V[o.Y])
		collision := cpu.Display.DrawSprite(cpu.Memory, cpu.Registers.I, vx, vy, o.N, o.Quirks.Wrap)
		if collision {
			cpu.Registers.SetV(0xF, 1)
		}
		return OpResult{Advance: true, Drew: true}, nil

	case TagSkipKeyPressed:
		cpu.condAdvanceExtra(cpu.Keys.IsDown(cpu.Registers.V[o.X]), o)
		return OpResult{Advance: true, IsJump: true}, nil

	case TagSkipKeyNotPressed:
		cpu.condAdvanceExtra(!cpu.Keys.IsDown(cpu.Registers.V[o.X]), o)
		return OpResult{Advance: true, IsJump: true}, nil

	case TagLoadILong:
		cpu.Registers.I = o.NNN
		return OpResult{Advance: true}, nil

	case TagSetPlane:
		if o.N != 0 {
			var mask uint8
			if o.N&0x1 != 0 {
				mask |= Plane1
			}
			if o.N&0x2 != 0 {
				mask |= Plane2
			}
			cpu.Display.TargetPlane = mask
		}
		return OpResult{Advance: true}, nil

	case TagLoadPattern:
		data := make([]byte, 16)
		for i := 0; i < 16; i++ {
			data[i] = cpu.Memory.ReadByte(cpu.Registers.I + uint16(i))
		}
		cpu.Audio.SetPattern(data)
		return OpResult{Advance: true}, nil

	case TagLoadDelay:
		cpu.Registers.SetV(o.X, cpu.Timers.Delay)
		return OpResult{Advance: true}, nil

	case TagSetDelay:
		cpu.Timers.Delay = cpu.Registers.V[o.X]
		return OpResult{Advance: true}, nil

	case TagSetSound:
		cpu.Timers.Sound = cpu.Registers.V[o.X]
		return OpResult{Advance: true}, nil

	case TagWaitKey:
		if key, down := cpu.Keys.AnyDown(); down {
			cpu.Registers.SetV(o.X, key)
			return OpResult{Advance: true}, nil
		}
		return OpResult{Advance: false}, nil

	case TagAddI:
		cpu.Registers.I += uint16(cpu.Registers.V[o.X])
		return OpResult{Advance: true}, nil

	case TagFontSmall:
		cpu.Registers.I = SmallFontAddress(cpu.Registers.V[o.X] & 0xF)
		return OpResult{Advance: true}, nil

	case TagFontLarge:
		cpu.Registers.I = LargeFontAddress(cpu.Registers.V[o.X] & 0xF)
		return OpResult{Advance: true}, nil

	case TagBCD:
		v := cpu.Registers.V[o.X]
		cpu.Memory.WriteByte(cpu.Registers.I, v/100)
		cpu.Memory.WriteByte(cpu.Registers.I+1, (v/10)%10)
		cpu.Memory.WriteByte(cpu.Registers.I+2, v%10)
		return OpResult{Advance: true, SelfModified: cpu.Registers.I < cpu.Memory.RamStart}, nil

	case TagSetPitch:
		cpu.Audio.Pitch = cpu.Registers.V[o.X]
		return OpResult{Advance: true}, nil

	case TagStoreRegs:
		selfMod := cpu.Registers.I < cpu.Memory.RamStart
		for i := 0; i <= int(o.X); i++ {
			cpu.Memory.WriteByte(cpu.Registers.I+uint16(i), cpu.Registers.V[i])
		}
		cpu.advanceIAfterTransfer(o)
		return OpResult{Advance: true, SelfModified: selfMod}, nil

	case TagLoadRegs:
		for i := 0; i <= int(o.X); i++ {
			cpu.Registers.SetV(uint8(i), cpu.Memory.ReadByte(cpu.Registers.I+uint16(i)))
		}
		cpu.advanceIAfterTransfer(o)
		return OpResult{Advance: true}, nil

	case TagStoreRPL:
		copy(cpu.Registers.RPL[:int(o.X)+1], cpu.Registers.V[:int(o.X)+1])
		return OpResult{Advance: true}, nil

	case TagLoadRPL:
		copy(cpu.Registers.V[:int(o.X)+1], cpu.Registers.RPL[:int(o.X)+1])
		return OpResult{Advance: true}, nil
	}

	return OpResult{}, UnknownOpcode{PC: pcAt, Opcode: o.Opcode}
}

// advanceIAfterTransfer applies the memoryIncrementByX/memoryLeaveIUnchanged
// quirks to I following FX55/FX65, per SPEC_FULL.md's quirk-honoring
// decision (open question #3).
func (cpu *CPU) advanceIAfterTransfer(o *Op) {
	switch {
	case o.Quirks.MemoryLeaveIUnchanged:
	case o.Quirks.MemoryIncrementByX:
		cpu.Registers.I += uint16(o.X)
	default:
		cpu.Registers.I += uint16(o.X) + 1
	}
}
