package chip8

// blockEntry pairs a decoded Op with the address it was fetched from,
// the minimum bookkeeping the CPU queue needs to resume correctly
// after a blocking or self-modifying op.
type blockEntry struct {
	PC uint16
	Op *Op
}

// BlockCache is the PC-keyed store of pre-built basic blocks. Entries
// reference Ops owned by a Decoder; BlockCache itself only tracks
// block boundaries.
type BlockCache struct {
	blocks map[uint16][]blockEntry
}

// NewBlockCache returns an empty cache.
func NewBlockCache() *BlockCache {
	return &BlockCache{blocks: make(map[uint16][]blockEntry)}
}

// Clear drops every cached block. Called whenever self-modification is
// detected; over-invalidation (clearing more than strictly necessary)
// is acceptable, under-invalidation is not.
func (bc *BlockCache) Clear() {
	bc.blocks = make(map[uint16][]blockEntry)
}

// GetBlock returns the cached block starting at startPC, building and
// caching it first if necessary. Building stops at the first
// control-flow terminator (JUMP, COND_ADVANCE, EXIT, DOUBLE_WIDE) or
// at the last successfully decoded instruction if decode fails
// partway through — the caller resumes from whatever was decoded and
// will naturally retry the failing address on the next pass, which is
// how self-modified code that was speculatively pre-decoded recovers.
// A failure to decode even the first instruction propagates the
// original UnknownOpcode rather than masking it as NoInstructions.
func (bc *BlockCache) GetBlock(mem *Memory, decoder *Decoder, startPC uint16) ([]blockEntry, error) {
	if block, ok := bc.blocks[startPC]; ok {
		return block, nil
	}

	var block []blockEntry
	var firstErr error
	pc := startPC

	for {
		opcode := mem.FetchOpcode(pc)
		nextOpcode := mem.FetchOpcode(pc + 2)

		op, err := decoder.Decode(pc, opcode, nextOpcode)
		if err != nil {
			firstErr = err
			break
		}

		block = append(block, blockEntry{PC: pc, Op: op})
		pc += op.Width()

		if op.Kind == JUMP || op.Kind == COND_ADVANCE || op.Kind == EXIT || op.Kind == DOUBLE_WIDE {
			break
		}
	}

	if len(block) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, NoInstructions{PC: startPC}
	}

	bc.blocks[startPC] = block
	return block, nil
}

// Clone returns a deep copy suitable for an independent snapshot; no
// block entry is shared with the original (their Op pointers are
// shared since Ops are immutable once decoded, but the slices and map
// are not).
func (bc *BlockCache) Clone() *BlockCache {
	cloned := make(map[uint16][]blockEntry, len(bc.blocks))
	for pc, entries := range bc.blocks {
		cp := make([]blockEntry, len(entries))
		copy(cp, entries)
		cloned[pc] = cp
	}
	return &BlockCache{blocks: cloned}
}
