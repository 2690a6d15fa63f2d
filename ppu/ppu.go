// Package ppu implements the NES 2C02 Picture Processing Unit: a
// scanline-granular renderer driven by the Loopy v/t/fine_x/w scrolling
// model, with nametable mirroring, sprite evaluation, and the classic
// $2007 read-buffer quirk.
package ppu

// Mirroring selects how the PPU's 2 KiB of physical nametable storage
// is mapped onto the four logical 1 KiB nametables the hardware
// addresses.
type Mirroring uint8

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

// CHRBus is the narrow interface the PPU needs from the cartridge: its
// pattern-table storage. The PPU never sees the rest of the cartridge
// or the System that owns it, which breaks what would otherwise be a
// PPU <-> System reference cycle.
type CHRBus interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, v uint8)
}

// PPUCTRL ($2000) bits.
const (
	ctrlNametableMask  = 0x03
	ctrlIncrement32    = 0x04
	ctrlSpritePattern  = 0x08
	ctrlBgPattern      = 0x10
	ctrlSpriteHeight16 = 0x20
	ctrlNMIOutput      = 0x80
)

// PPUMASK ($2001) bits.
const (
	maskShowBgLeft  = 0x02
	maskShowSprLeft = 0x04
	maskShowBg      = 0x08
	maskShowSpr     = 0x10
)

// PPUSTATUS ($2002) bits.
const (
	statusSpriteOverflow = 0x20
	statusSprite0Hit     = 0x40
	statusVBlank         = 0x80
)

// PPU holds all architectural state for a 2C02.
type PPU struct {
	chr    CHRBus
	mirror Mirroring

	nametables [0x800]uint8
	paletteRAM [0x20]uint8
	oam        [256]uint8

	ctrl, mask uint8
	statusBits uint8 // only bits 5 (overflow) and 6 (sprite0) live here; bit7 is nmiOccurred
	oamAddr    uint8

	v, t  uint16
	fineX uint8
	w     bool

	readBuffer uint8

	scanline int16 // -1..260
	cycle    uint16 // 0..340
	frame    uint64

	nmiOccurred bool
	nmiOutput   bool

	// Framebuffer is the 256x240 ARGB8888 image produced by rendering.
	// Owned by the PPU, exposed read-only to callers.
	Framebuffer [256 * 240]uint32

	// per-scanline compositing scratch, reset each visible scanline
	bgOpaque   [256]bool
	bgPalette  [256]uint8
	bgPixel    [256]uint8
	sprOpaque  [256]bool
	sprPixel   [256]uint8
	sprPalette [256]uint8
	sprPriority [256]bool
	sprZero    [256]bool
}

// New creates a PPU wired to chr for pattern-table access, with the
// cartridge's fixed nametable mirroring mode.
func New(chr CHRBus, mirror Mirroring) *PPU {
	return &PPU{
		chr:      chr,
		mirror:   mirror,
		scanline: -1,
	}
}

// Frame returns the number of complete frames rendered so far.
func (p *PPU) Frame() uint64 { return p.frame }

// OAMDMAWrite stores v at OAM index i, used by the System during an
// OAM-DMA transfer. It bypasses OAMADDR entirely, matching real
// hardware DMA which writes OAM directly rather than through $2004.
func (p *PPU) OAMDMAWrite(i int, v uint8) { p.oam[i&0xFF] = v }

// OAMByte reads OAM index i directly, bypassing OAMADDR; used by
// tests and the interactive monitor to inspect sprite state.
func (p *PPU) OAMByte(i int) uint8 { return p.oam[i&0xFF] }

func (p *PPU) renderingEnabled() bool {
	return p.mask&(maskShowBg|maskShowSpr) != 0
}

// --- internal PPU bus (§4.7) ---

func (p *PPU) busRead(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.chr.ReadCHR(addr)
	case addr < 0x3F00:
		return p.nametables[p.nametableIndex(addr)]
	default:
		return p.readPaletteRAM(uint8(addr & 0x1F))
	}
}

func (p *PPU) busWrite(addr uint16, v uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.chr.WriteCHR(addr, v)
	case addr < 0x3F00:
		p.nametables[p.nametableIndex(addr)] = v
	default:
		p.writePaletteRAM(uint8(addr&0x1F), v)
	}
}

// nametableIndex folds a $2000-$3EFF address (mirrors of $2000-$2EFF
// above $3000) into the physical 2 KiB nametable array, according to
// the cartridge's mirroring mode.
func (p *PPU) nametableIndex(addr uint16) int {
	a := (addr - 0x2000) % 0x1000
	table := a / 0x400
	offset := a % 0x400
	var physical uint16
	if p.mirror == MirrorVertical {
		physical = (table & 1) * 0x400
	} else {
		physical = (table >> 1) * 0x400
	}
	return int(physical + offset)
}

func paletteAlias(addr uint8) uint8 {
	switch addr {
	case 0x10, 0x14, 0x18, 0x1C:
		return addr - 0x10
	}
	return addr
}

func (p *PPU) readPaletteRAM(addr uint8) uint8 {
	return p.paletteRAM[paletteAlias(addr&0x1F)] & 0x3F
}

func (p *PPU) writePaletteRAM(addr uint8, v uint8) {
	p.paletteRAM[paletteAlias(addr&0x1F)] = v & 0x3F
}

// Step advances the PPU by one pixel-clock tick and reports whether
// this tick should raise the CPU's NMI line.
func (p *PPU) Step() (fireNMI bool) {
	if p.scanline == -1 && p.cycle == 1 {
		p.nmiOccurred = false
		p.statusBits &^= statusSpriteOverflow | statusSprite0Hit
	}

	if p.scanline == -1 && p.cycle >= 280 && p.cycle <= 304 && p.renderingEnabled() {
		p.v = (p.v &^ 0x7BE0) | (p.t & 0x7BE0)
	}

	if p.scanline >= 0 && p.scanline <= 239 && p.cycle == 0 && p.renderingEnabled() {
		p.renderScanline(int(p.scanline))
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.nmiOccurred = true
		if p.nmiOutput {
			fireNMI = true
		}
	}

	p.cycle++
	if p.cycle == 341 {
		p.cycle = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
			p.frame++
		}
	}

	return fireNMI
}
