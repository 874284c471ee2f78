package chip8

import (
	"math/rand"
	"time"
)

// CPU wires the data-model components together and drives the
// fetch/execute loop described by the block-caching engine. It owns
// the instruction queue (the straight-line ops of the currently
// in-flight block) and the decoder/block caches that back it.
type CPU struct {
	Registers *Registers
	Stack     *Stack
	Memory    *Memory
	Timers    *Timers
	Keys      *Keys
	Display   *Display
	Audio     *Audio
	Quirks    Quirks

	decoder *Decoder
	blocks  *BlockCache
	queue   []blockEntry
	drew    bool
	rng     *rand.Rand

	// Cached selects the basic-block caching engine (the default) vs.
	// the "pure" interpreter kind, which decodes and executes exactly
	// one instruction at a time without ever batching or caching a
	// multi-op block. Both paths share the same Decoder op cache and
	// the same Execute contract; pure mode simply never builds blocks
	// longer than one instruction.
	Cached bool
}

// NewCPU assembles a CPU from its component parts, matching the
// Emulator's construction contract.
func NewCPU(registers *Registers, stack *Stack, memory *Memory, timers *Timers, keys *Keys, display *Display, quirks Quirks, audio *Audio) *CPU {
	return &CPU{
		Registers: registers,
		Stack:     stack,
		Memory:    memory,
		Timers:    timers,
		Keys:      keys,
		Display:   display,
		Audio:     audio,
		Quirks:    quirks,
		decoder:   NewDecoder(quirks),
		blocks:    NewBlockCache(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		Cached:    true,
	}
}

// nextBlock returns the sequence of (pc, op) entries to queue up next,
// either a full cached basic block or a single decoded instruction
// when running the pure (non-caching) interpreter kind.
func (cpu *CPU) nextBlock() ([]blockEntry, error) {
	if cpu.Cached {
		return cpu.blocks.GetBlock(cpu.Memory, cpu.decoder, cpu.Registers.PC)
	}

	pc := cpu.Registers.PC
	opcode := cpu.Memory.FetchOpcode(pc)
	nextOpcode := cpu.Memory.FetchOpcode(pc + 2)
	op, err := cpu.decoder.Decode(pc, opcode, nextOpcode)
	if err != nil {
		return nil, err
	}
	return []blockEntry{{PC: pc, Op: op}}, nil
}

// ExecuteNextOp advances one logical operation. If the queue is empty
// it first fetches (or builds) the block starting at the current PC
// and sets PC to the address past the block's last instruction, per
// the "PC advances inside the block" contract: JUMP/COND_ADVANCE/
// DOUBLE_WIDE ops then see the correct PC for their own semantics and
// don't need to advance it themselves.
func (cpu *CPU) ExecuteNextOp() error {
	if len(cpu.queue) == 0 {
		block, err := cpu.nextBlock()
		if err != nil {
			return err
		}
		cpu.queue = block
		last := block[len(block)-1]
		cpu.Registers.PC = last.PC + last.Op.Width()
	}

	entry := cpu.queue[0]
	cpu.queue = cpu.queue[1:]

	result, err := entry.Op.Execute(cpu, entry.PC)
	if err != nil {
		return err
	}

	if !result.Advance {
		// BLOCKING: re-enter this same op next call instead of
		// consuming it. The rest of the queue is dropped and PC rewound
		// to the op, so the next call rebuilds the block starting here
		// and PC again points past that block's end once it resumes.
		cpu.queue = nil
		cpu.Registers.PC = entry.PC
		return nil
	}

	if result.SelfModified {
		cpu.blocks.Clear()
		cpu.decoder.Clear()
		cpu.queue = nil
		if !result.IsJump {
			cpu.Registers.PC = entry.PC + entry.Op.Width()
		}
		return nil
	}

	if result.Drew {
		cpu.drew = true
	}
	return nil
}

// DrawOccurred reports whether a DXYN has executed since the last
// ResetDrawOccurred, feeding the vblank quirk's early frame exit.
func (cpu *CPU) DrawOccurred() bool {
	return cpu.drew
}

// ResetDrawOccurred clears the draw flag; the Emulator calls this once
// at the start of every frame.
func (cpu *CPU) ResetDrawOccurred() {
	cpu.drew = false
}

// CopyState makes cpu adopt other's caches and in-flight queue, used
// when cloning an Emulator for a rewind snapshot. The PIC decoder
// cache is shared (its entries are stateless); the non-PIC cache,
// block cache, and queue are deep-copied so the two CPUs can
// subsequently diverge independently.
func (cpu *CPU) CopyState(other *CPU) {
	cpu.decoder = other.decoder.CloneSharingPIC()
	cpu.blocks = other.blocks.Clone()
	cpu.queue = append([]blockEntry(nil), other.queue...)
	cpu.drew = other.drew
}
