package chip8

import "fmt"

// Disassemble formats the instruction at pc as a mnemonic string,
// purely for debug logging — there is no interactive disassembler
// here, just text. It never mutates mem or consults either decoder
// cache, so it is safe to call against live, running memory.
func Disassemble(mem *Memory, pc uint16) string {
	opcode := mem.FetchOpcode(pc)
	nextOpcode := mem.FetchOpcode(pc + 2)

	a := opcode & 0xFFF
	b := opcode & 0xFF
	n := opcode & 0xF
	x := opcode >> 8 & 0xF
	y := opcode >> 4 & 0xF

	switch opcode {
	case 0x00E0:
		return fmt.Sprintf("%04X - CLS", pc)
	case 0x00EE:
		return fmt.Sprintf("%04X - RET", pc)
	case 0x00FB:
		return fmt.Sprintf("%04X - SCR", pc)
	case 0x00FC:
		return fmt.Sprintf("%04X - SCL", pc)
	case 0x00FD:
		return fmt.Sprintf("%04X - EXIT", pc)
	case 0x00FE:
		return fmt.Sprintf("%04X - LOW", pc)
	case 0x00FF:
		return fmt.Sprintf("%04X - HIGH", pc)
	case 0xF000:
		return fmt.Sprintf("%04X - LD     I, #%04X", pc, nextOpcode)
	}

	switch opcode & 0xFFF0 {
	case 0x00C0:
		return fmt.Sprintf("%04X - SCD    %d", pc, n)
	case 0x00D0:
		return fmt.Sprintf("%04X - SCU    %d", pc, n)
	}

	switch opcode & 0xF000 {
	case 0x1000:
		return fmt.Sprintf("%04X - JP     #%04X", pc, a)
	case 0x2000:
		return fmt.Sprintf("%04X - CALL   #%04X", pc, a)
	case 0x3000:
		return fmt.Sprintf("%04X - SE     V%X, #%02X", pc, x, b)
	case 0x4000:
		return fmt.Sprintf("%04X - SNE    V%X, #%02X", pc, x, b)
	case 0x6000:
		return fmt.Sprintf("%04X - LD     V%X, #%02X", pc, x, b)
	case 0x7000:
		return fmt.Sprintf("%04X - ADD    V%X, #%02X", pc, x, b)
	case 0x9000:
		return fmt.Sprintf("%04X - SNE    V%X, V%X", pc, x, y)
	case 0xA000:
		return fmt.Sprintf("%04X - LD     I, #%04X", pc, a)
	case 0xB000:
		return fmt.Sprintf("%04X - JP     V0, #%04X", pc, a)
	case 0xC000:
		return fmt.Sprintf("%04X - RND    V%X, #%02X", pc, x, b)
	case 0xD000:
		return fmt.Sprintf("%04X - DRW    V%X, V%X, %d", pc, x, y, n)
	}

	switch opcode & 0xF00F {
	case 0x5000:
		return fmt.Sprintf("%04X - SE     V%X, V%X", pc, x, y)
	case 0x8000:
		return fmt.Sprintf("%04X - LD     V%X, V%X", pc, x, y)
	case 0x8001:
		return fmt.Sprintf("%04X - OR     V%X, V%X", pc, x, y)
	case 0x8002:
		return fmt.Sprintf("%04X - AND    V%X, V%X", pc, x, y)
	case 0x8003:
		return fmt.Sprintf("%04X - XOR    V%X, V%X", pc, x, y)
	case 0x8004:
		return fmt.Sprintf("%04X - ADD    V%X, V%X", pc, x, y)
	case 0x8005:
		return fmt.Sprintf("%04X - SUB    V%X, V%X", pc, x, y)
	case 0x8006:
		return fmt.Sprintf("%04X - SHR    V%X, V%X", pc, x, y)
	case 0x8007:
		return fmt.Sprintf("%04X - SUBN   V%X, V%X", pc, x, y)
	case 0x800E:
		return fmt.Sprintf("%04X - SHL    V%X, V%X", pc, x, y)
	}

	switch opcode & 0xF0F0 {
	case 0x5020:
		return fmt.Sprintf("%04X - LD     [I], V%X:V%X", pc, x, y)
	case 0x5030:
		return fmt.Sprintf("%04X - LD     V%X:V%X, [I]", pc, x, y)
	}

	switch opcode & 0xF0FF {
	case 0xE09E:
		return fmt.Sprintf("%04X - SKP    V%X", pc, x)
	case 0xE0A1:
		return fmt.Sprintf("%04X - SKNP   V%X", pc, x)
	case 0xF001:
		return fmt.Sprintf("%04X - PLANE  %d", pc, x)
	case 0xF002:
		return fmt.Sprintf("%04X - LD     AUDIO, [I]", pc)
	case 0xF007:
		return fmt.Sprintf("%04X - LD     V%X, DT", pc, x)
	case 0xF00A:
		return fmt.Sprintf("%04X - LD     V%X, K", pc, x)
	case 0xF015:
		return fmt.Sprintf("%04X - LD     DT, V%X", pc, x)
	case 0xF018:
		return fmt.Sprintf("%04X - LD     ST, V%X", pc, x)
	case 0xF01E:
		return fmt.Sprintf("%04X - ADD    I, V%X", pc, x)
	case 0xF029:
		return fmt.Sprintf("%04X - LD     F, V%X", pc, x)
	case 0xF030:
		return fmt.Sprintf("%04X - LD     HF, V%X", pc, x)
	case 0xF033:
		return fmt.Sprintf("%04X - LD     B, V%X", pc, x)
	case 0xF03A:
		return fmt.Sprintf("%04X - PITCH  V%X", pc, x)
	case 0xF055:
		return fmt.Sprintf("%04X - LD     [I], V%X", pc, x)
	case 0xF065:
		return fmt.Sprintf("%04X - LD     V%X, [I]", pc, x)
	case 0xF075:
		return fmt.Sprintf("%04X - LD     R, V%X", pc, x)
	case 0xF085:
		return fmt.Sprintf("%04X - LD     V%X, R", pc, x)
	}

	return fmt.Sprintf("%04X - ??     #%04X", pc, opcode)
}
