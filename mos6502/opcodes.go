package mos6502

// opcode describes one legal encoding of one instruction: which
// handler runs, which addressing mode it decodes operands with, how
// many bytes the encoding occupies (used by trace/disassembly, never
// by Step - handlers advance PC themselves via operandAddr), and the
// base cycle count before any page-cross or branch-taken penalty.
type opcode struct {
	name    string
	mode    uint8
	bytes   uint8
	cycles  uint8
	handler func(*CPU, uint8)
}

// opcodeTable holds every legal 6502 opcode. Byte values with no entry
// trap the CPU to Halted in Step - this core never executes
// undocumented opcodes.
var opcodeTable = map[uint8]opcode{
	// ADC
	0x69: {"ADC", modeImmediate, 2, 2, insADC},
	0x65: {"ADC", modeZeroPage, 2, 3, insADC},
	0x75: {"ADC", modeZeroPageX, 2, 4, insADC},
	0x6D: {"ADC", modeAbsolute, 3, 4, insADC},
	0x7D: {"ADC", modeAbsoluteX, 3, 4, insADC},
	0x79: {"ADC", modeAbsoluteY, 3, 4, insADC},
	0x61: {"ADC", modeIndirectX, 2, 6, insADC},
	0x71: {"ADC", modeIndirectY, 2, 5, insADC},

	// AND
	0x29: {"AND", modeImmediate, 2, 2, insAND},
	0x25: {"AND", modeZeroPage, 2, 3, insAND},
	0x35: {"AND", modeZeroPageX, 2, 4, insAND},
	0x2D: {"AND", modeAbsolute, 3, 4, insAND},
	0x3D: {"AND", modeAbsoluteX, 3, 4, insAND},
	0x39: {"AND", modeAbsoluteY, 3, 4, insAND},
	0x21: {"AND", modeIndirectX, 2, 6, insAND},
	0x31: {"AND", modeIndirectY, 2, 5, insAND},

	// ASL
	0x0A: {"ASL", modeAccumulator, 1, 2, insASL},
	0x06: {"ASL", modeZeroPage, 2, 5, insASL},
	0x16: {"ASL", modeZeroPageX, 2, 6, insASL},
	0x0E: {"ASL", modeAbsolute, 3, 6, insASL},
	0x1E: {"ASL", modeAbsoluteX, 3, 7, insASL},

	// branches
	0x90: {"BCC", modeRelative, 2, 2, insBCC},
	0xB0: {"BCS", modeRelative, 2, 2, insBCS},
	0xF0: {"BEQ", modeRelative, 2, 2, insBEQ},
	0x30: {"BMI", modeRelative, 2, 2, insBMI},
	0xD0: {"BNE", modeRelative, 2, 2, insBNE},
	0x10: {"BPL", modeRelative, 2, 2, insBPL},
	0x50: {"BVC", modeRelative, 2, 2, insBVC},
	0x70: {"BVS", modeRelative, 2, 2, insBVS},

	// BIT
	0x24: {"BIT", modeZeroPage, 2, 3, insBIT},
	0x2C: {"BIT", modeAbsolute, 3, 4, insBIT},

	// BRK
	0x00: {"BRK", modeImplicit, 1, 7, insBRK},

	// flag clear/set
	0x18: {"CLC", modeImplicit, 1, 2, insCLC},
	0xD8: {"CLD", modeImplicit, 1, 2, insCLD},
	0x58: {"CLI", modeImplicit, 1, 2, insCLI},
	0xB8: {"CLV", modeImplicit, 1, 2, insCLV},
	0x38: {"SEC", modeImplicit, 1, 2, insSEC},
	0xF8: {"SED", modeImplicit, 1, 2, insSED},
	0x78: {"SEI", modeImplicit, 1, 2, insSEI},

	// CMP
	0xC9: {"CMP", modeImmediate, 2, 2, insCMP},
	0xC5: {"CMP", modeZeroPage, 2, 3, insCMP},
	0xD5: {"CMP", modeZeroPageX, 2, 4, insCMP},
	0xCD: {"CMP", modeAbsolute, 3, 4, insCMP},
	0xDD: {"CMP", modeAbsoluteX, 3, 4, insCMP},
	0xD9: {"CMP", modeAbsoluteY, 3, 4, insCMP},
	0xC1: {"CMP", modeIndirectX, 2, 6, insCMP},
	0xD1: {"CMP", modeIndirectY, 2, 5, insCMP},

	// CPX / CPY
	0xE0: {"CPX", modeImmediate, 2, 2, insCPX},
	0xE4: {"CPX", modeZeroPage, 2, 3, insCPX},
	0xEC: {"CPX", modeAbsolute, 3, 4, insCPX},
	0xC0: {"CPY", modeImmediate, 2, 2, insCPY},
	0xC4: {"CPY", modeZeroPage, 2, 3, insCPY},
	0xCC: {"CPY", modeAbsolute, 3, 4, insCPY},

	// DEC / DEX / DEY
	0xC6: {"DEC", modeZeroPage, 2, 5, insDEC},
	0xD6: {"DEC", modeZeroPageX, 2, 6, insDEC},
	0xCE: {"DEC", modeAbsolute, 3, 6, insDEC},
	0xDE: {"DEC", modeAbsoluteX, 3, 7, insDEC},
	0xCA: {"DEX", modeImplicit, 1, 2, insDEX},
	0x88: {"DEY", modeImplicit, 1, 2, insDEY},

	// EOR
	0x49: {"EOR", modeImmediate, 2, 2, insEOR},
	0x45: {"EOR", modeZeroPage, 2, 3, insEOR},
	0x55: {"EOR", modeZeroPageX, 2, 4, insEOR},
	0x4D: {"EOR", modeAbsolute, 3, 4, insEOR},
	0x5D: {"EOR", modeAbsoluteX, 3, 4, insEOR},
	0x59: {"EOR", modeAbsoluteY, 3, 4, insEOR},
	0x41: {"EOR", modeIndirectX, 2, 6, insEOR},
	0x51: {"EOR", modeIndirectY, 2, 5, insEOR},

	// INC / INX / INY
	0xE6: {"INC", modeZeroPage, 2, 5, insINC},
	0xF6: {"INC", modeZeroPageX, 2, 6, insINC},
	0xEE: {"INC", modeAbsolute, 3, 6, insINC},
	0xFE: {"INC", modeAbsoluteX, 3, 7, insINC},
	0xE8: {"INX", modeImplicit, 1, 2, insINX},
	0xC8: {"INY", modeImplicit, 1, 2, insINY},

	// JMP / JSR
	0x4C: {"JMP", modeAbsolute, 3, 3, insJMP},
	0x6C: {"JMP", modeIndirect, 3, 5, insJMP},
	0x20: {"JSR", modeAbsolute, 3, 6, insJSR},

	// LDA / LDX / LDY
	0xA9: {"LDA", modeImmediate, 2, 2, insLDA},
	0xA5: {"LDA", modeZeroPage, 2, 3, insLDA},
	0xB5: {"LDA", modeZeroPageX, 2, 4, insLDA},
	0xAD: {"LDA", modeAbsolute, 3, 4, insLDA},
	0xBD: {"LDA", modeAbsoluteX, 3, 4, insLDA},
	0xB9: {"LDA", modeAbsoluteY, 3, 4, insLDA},
	0xA1: {"LDA", modeIndirectX, 2, 6, insLDA},
	0xB1: {"LDA", modeIndirectY, 2, 5, insLDA},

	0xA2: {"LDX", modeImmediate, 2, 2, insLDX},
	0xA6: {"LDX", modeZeroPage, 2, 3, insLDX},
	0xB6: {"LDX", modeZeroPageY, 2, 4, insLDX},
	0xAE: {"LDX", modeAbsolute, 3, 4, insLDX},
	0xBE: {"LDX", modeAbsoluteY, 3, 4, insLDX},

	0xA0: {"LDY", modeImmediate, 2, 2, insLDY},
	0xA4: {"LDY", modeZeroPage, 2, 3, insLDY},
	0xB4: {"LDY", modeZeroPageX, 2, 4, insLDY},
	0xAC: {"LDY", modeAbsolute, 3, 4, insLDY},
	0xBC: {"LDY", modeAbsoluteX, 3, 4, insLDY},

	// LSR
	0x4A: {"LSR", modeAccumulator, 1, 2, insLSR},
	0x46: {"LSR", modeZeroPage, 2, 5, insLSR},
	0x56: {"LSR", modeZeroPageX, 2, 6, insLSR},
	0x4E: {"LSR", modeAbsolute, 3, 6, insLSR},
	0x5E: {"LSR", modeAbsoluteX, 3, 7, insLSR},

	// NOP
	0xEA: {"NOP", modeImplicit, 1, 2, insNOP},

	// ORA
	0x09: {"ORA", modeImmediate, 2, 2, insORA},
	0x05: {"ORA", modeZeroPage, 2, 3, insORA},
	0x15: {"ORA", modeZeroPageX, 2, 4, insORA},
	0x0D: {"ORA", modeAbsolute, 3, 4, insORA},
	0x1D: {"ORA", modeAbsoluteX, 3, 4, insORA},
	0x19: {"ORA", modeAbsoluteY, 3, 4, insORA},
	0x01: {"ORA", modeIndirectX, 2, 6, insORA},
	0x11: {"ORA", modeIndirectY, 2, 5, insORA},

	// stack
	0x48: {"PHA", modeImplicit, 1, 3, insPHA},
	0x08: {"PHP", modeImplicit, 1, 3, insPHP},
	0x68: {"PLA", modeImplicit, 1, 4, insPLA},
	0x28: {"PLP", modeImplicit, 1, 4, insPLP},

	// ROL / ROR
	0x2A: {"ROL", modeAccumulator, 1, 2, insROL},
	0x26: {"ROL", modeZeroPage, 2, 5, insROL},
	0x36: {"ROL", modeZeroPageX, 2, 6, insROL},
	0x2E: {"ROL", modeAbsolute, 3, 6, insROL},
	0x3E: {"ROL", modeAbsoluteX, 3, 7, insROL},

	0x6A: {"ROR", modeAccumulator, 1, 2, insROR},
	0x66: {"ROR", modeZeroPage, 2, 5, insROR},
	0x76: {"ROR", modeZeroPageX, 2, 6, insROR},
	0x6E: {"ROR", modeAbsolute, 3, 6, insROR},
	0x7E: {"ROR", modeAbsoluteX, 3, 7, insROR},

	// RTI / RTS
	0x40: {"RTI", modeImplicit, 1, 6, insRTI},
	0x60: {"RTS", modeImplicit, 1, 6, insRTS},

	// SBC
	0xE9: {"SBC", modeImmediate, 2, 2, insSBC},
	0xE5: {"SBC", modeZeroPage, 2, 3, insSBC},
	0xF5: {"SBC", modeZeroPageX, 2, 4, insSBC},
	0xED: {"SBC", modeAbsolute, 3, 4, insSBC},
	0xFD: {"SBC", modeAbsoluteX, 3, 4, insSBC},
	0xF9: {"SBC", modeAbsoluteY, 3, 4, insSBC},
	0xE1: {"SBC", modeIndirectX, 2, 6, insSBC},
	0xF1: {"SBC", modeIndirectY, 2, 5, insSBC},

	// STA / STX / STY
	0x85: {"STA", modeZeroPage, 2, 3, insSTA},
	0x95: {"STA", modeZeroPageX, 2, 4, insSTA},
	0x8D: {"STA", modeAbsolute, 3, 4, insSTA},
	0x9D: {"STA", modeAbsoluteX, 3, 5, insSTA},
	0x99: {"STA", modeAbsoluteY, 3, 5, insSTA},
	0x81: {"STA", modeIndirectX, 2, 6, insSTA},
	0x91: {"STA", modeIndirectY, 2, 6, insSTA},

	0x86: {"STX", modeZeroPage, 2, 3, insSTX},
	0x96: {"STX", modeZeroPageY, 2, 4, insSTX},
	0x8E: {"STX", modeAbsolute, 3, 4, insSTX},

	0x84: {"STY", modeZeroPage, 2, 3, insSTY},
	0x94: {"STY", modeZeroPageX, 2, 4, insSTY},
	0x8C: {"STY", modeAbsolute, 3, 4, insSTY},

	// register transfers
	0xAA: {"TAX", modeImplicit, 1, 2, insTAX},
	0xA8: {"TAY", modeImplicit, 1, 2, insTAY},
	0xBA: {"TSX", modeImplicit, 1, 2, insTSX},
	0x8A: {"TXA", modeImplicit, 1, 2, insTXA},
	0x9A: {"TXS", modeImplicit, 1, 2, insTXS},
	0x98: {"TYA", modeImplicit, 1, 2, insTYA},
}
