package mos6502

// 6502 Addressing Modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	modeImplicit = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX // Indexed Indirect, (zp,X)
	modeIndirectY // Indirect Indexed, (zp),Y
)

// operandAddr computes the effective address for mode, advancing PC
// past whatever operand bytes that mode consumes. It must never be
// called for modeImplicit or modeAccumulator - those operate directly
// on A or touch no memory at all.
//
// Indexed and indirect-indexed modes set c.pageCrossed when the
// unindexed base and the final address fall in different pages; the
// calling instruction handler decides whether that earns an extra
// cycle (reads do, read-modify-write instructions don't).
func (c *CPU) operandAddr(mode uint8) uint16 {
	switch mode {
	case modeImmediate:
		addr := c.PC
		c.PC++
		return addr
	case modeZeroPage:
		addr := uint16(c.read(c.PC))
		c.PC++
		return addr
	case modeZeroPageX:
		addr := uint16(c.read(c.PC) + c.X) // wraps within zero page
		c.PC++
		return addr
	case modeZeroPageY:
		addr := uint16(c.read(c.PC) + c.Y) // wraps within zero page
		c.PC++
		return addr
	case modeAbsolute:
		addr := c.read16(c.PC)
		c.PC += 2
		return addr
	case modeAbsoluteX:
		base := c.read16(c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		c.pageCrossed = !samePage(base, addr)
		return addr
	case modeAbsoluteY:
		base := c.read16(c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		c.pageCrossed = !samePage(base, addr)
		return addr
	case modeIndirect:
		ptr := c.read16(c.PC)
		c.PC += 2
		return c.indirectWrap(ptr)
	case modeIndirectX:
		zp := uint16(c.read(c.PC) + c.X)
		c.PC++
		lo := uint16(c.read(zp & 0xFF))
		hi := uint16(c.read((zp + 1) & 0xFF))
		return hi<<8 | lo
	case modeIndirectY:
		zp := uint16(c.read(c.PC))
		c.PC++
		lo := uint16(c.read(zp & 0xFF))
		hi := uint16(c.read((zp + 1) & 0xFF))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		c.pageCrossed = !samePage(base, addr)
		return addr
	case modeRelative:
		off := int8(c.read(c.PC))
		c.PC++
		return uint16(int32(c.PC) + int32(off))
	}
	panic("mos6502: operandAddr called with non-memory addressing mode")
}

// indirectWrap resolves a JMP (indirect) target, reproducing the
// well-known 6502 bug: when ptr's low byte is 0xFF, the high byte of
// the target is fetched from the START of the same page instead of
// the next page.
func (c *CPU) indirectWrap(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}
