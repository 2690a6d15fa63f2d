package mos6502

import (
	"fmt"
	"strings"
)

// Trace renders the instruction about to execute (the one at PC) in a
// Nintendulator-style single line: address, raw opcode bytes,
// disassembled mnemonic/operand, then the register snapshot as it
// stood BEFORE the instruction runs. It never mutates CPU state beyond
// whatever side effects the underlying bus has for a read - callers
// tracing a bus with read side effects (PPU registers, for example)
// should expect Trace to share those side effects with Step.
//
// Instruction length comes from the opcode table's bytes field, never
// from guessing at the addressing mode's shape, so an illegal opcode
// traces as a single unknown byte rather than walking off into whatever
// follows it.
func (c *CPU) Trace() string {
	opByte := c.read(c.PC)
	op, ok := opcodeTable[opByte]

	n := uint8(1)
	if ok {
		n = op.bytes
	}
	raw := make([]uint8, n)
	raw[0] = opByte
	for i := uint8(1); i < n; i++ {
		raw[i] = c.read(c.PC + uint16(i))
	}

	hexCol := make([]string, 3)
	for i := range hexCol {
		if int(i) < len(raw) {
			hexCol[i] = fmt.Sprintf("%02X", raw[i])
		}
	}
	hexField := strings.Join(hexCol, " ")

	var asm string
	if !ok {
		asm = "??? (illegal)"
	} else {
		asm = op.name + " " + formatOperand(op, raw)
	}

	return fmt.Sprintf("%04X  %-8s %-32s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.PC, hexField, strings.TrimRight(asm, " "), c.A, c.X, c.Y, c.Status, c.S, c.Cycles)
}

// formatOperand renders raw[1:] (the operand bytes, if any) per the
// addressing mode raw[0] decodes to. raw always has len == op.bytes.
func formatOperand(op opcode, raw []uint8) string {
	switch op.mode {
	case modeImplicit:
		return ""
	case modeAccumulator:
		return "A"
	case modeImmediate:
		return fmt.Sprintf("#$%02X", raw[1])
	case modeZeroPage:
		return fmt.Sprintf("$%02X", raw[1])
	case modeZeroPageX:
		return fmt.Sprintf("$%02X,X", raw[1])
	case modeZeroPageY:
		return fmt.Sprintf("$%02X,Y", raw[1])
	case modeRelative:
		return fmt.Sprintf("$%02X", raw[1])
	case modeAbsolute:
		return fmt.Sprintf("$%04X", uint16(raw[2])<<8|uint16(raw[1]))
	case modeAbsoluteX:
		return fmt.Sprintf("$%04X,X", uint16(raw[2])<<8|uint16(raw[1]))
	case modeAbsoluteY:
		return fmt.Sprintf("$%04X,Y", uint16(raw[2])<<8|uint16(raw[1]))
	case modeIndirect:
		return fmt.Sprintf("($%04X)", uint16(raw[2])<<8|uint16(raw[1]))
	case modeIndirectX:
		return fmt.Sprintf("($%02X,X)", raw[1])
	case modeIndirectY:
		return fmt.Sprintf("($%02X),Y", raw[1])
	}
	return ""
}
