package chip8

// Quirks is the set of platform-specific behavioral switches for
// historically divergent instructions.
type Quirks struct {
	// Shift makes 8XY6/8XYE operate on VX instead of VY.
	Shift bool

	// MemoryIncrementByX makes FX55/FX65 advance I by X instead of X+1.
	MemoryIncrementByX bool

	// MemoryLeaveIUnchanged makes FX55/FX65 leave I untouched.
	MemoryLeaveIUnchanged bool

	// Wrap makes DXYN wrap sprite pixels across screen edges instead
	// of clipping them.
	Wrap bool

	// Jump switches BNNN to the BXNN form: target = NN + V[X], where X
	// is the opcode's second nibble (the high nibble of NNN).
	Jump bool

	// Vblank makes DXYN yield control back to the caller until the
	// next frame.
	Vblank bool

	// Logic resets VF to 0 after 8XY1/8XY2/8XY3.
	Logic bool
}
