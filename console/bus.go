// Package console wires a CPU, PPU and Cartridge together into a
// complete NES: it owns the 2 KiB of internal RAM, the controller
// shift registers, and the OAM-DMA latch, and it routes every CPU
// address into the right subsystem.
package console

import (
	"github.com/nesdev-go/nesgo/cartridge"
	"github.com/nesdev-go/nesgo/mos6502"
	"github.com/nesdev-go/nesgo/ppu"
)

const (
	ramSize  = 0x0800
	regOAMDMA = 0x4014
	regCtrl1  = 0x4016
	regCtrl2  = 0x4017
)

// System owns the CPU, PPU, Cartridge, RAM and controller state for
// their full lifetime and implements mos6502.Bus so the CPU can drive
// it directly.
type System struct {
	cpu  *mos6502.CPU
	ppu  *ppu.PPU
	cart *cartridge.Cartridge

	ram [ramSize]uint8

	ctrlCurrent [2]uint8
	ctrlShift   [2]uint8
	ctrlStrobe  bool

	dmaPending bool
	dmaPage    uint8
}

// New builds a System around an already-loaded cartridge.
func New(cart *cartridge.Cartridge) *System {
	s := &System{cart: cart}
	s.ppu = ppu.New(cart, ppuMirroring(cart.Mirroring()))
	s.cpu = mos6502.New(s)
	return s
}

func ppuMirroring(m cartridge.Mirroring) ppu.Mirroring {
	if m == cartridge.MirrorVertical {
		return ppu.MirrorVertical
	}
	return ppu.MirrorHorizontal
}

// CPU and PPU expose the owned subsystems for tooling (trace, monitor,
// the framebuffer sink) that needs to reach past the bus abstraction.
func (s *System) CPU() *mos6502.CPU { return s.cpu }
func (s *System) PPU() *ppu.PPU     { return s.ppu }

// Framebuffer returns the PPU's current 256x240 ARGB8888 image,
// read-only for any consumer acting as a framebuffer sink.
func (s *System) Framebuffer() *[256 * 240]uint32 { return &s.ppu.Framebuffer }

// SetControllerState updates port's live button state (bit layout per
// the A/B/Select/Start/Up/Down/Left/Right convention). A framebuffer
// sink's input-polling code calls this once per frame; the console
// itself never polls a keyboard or gamepad directly.
func (s *System) SetControllerState(port int, state uint8) {
	s.ctrlCurrent[port] = state
	if s.ctrlStrobe {
		s.ctrlShift[port] = state
	}
}

// Read and Write implement mos6502.Bus: the CPU-visible address map
// from $0000 to $FFFF.
func (s *System) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x1FFF:
		return s.ram[addr&0x07FF]
	case addr <= 0x3FFF:
		return s.ppu.ReadRegister(uint8(addr & 7))
	case addr == regCtrl1:
		return s.readController(0)
	case addr == regCtrl2:
		return s.readController(1)
	case addr <= 0x401F:
		return 0 // APU/IO stub
	default:
		return s.cart.ReadPRG(addr)
	}
}

func (s *System) Write(addr uint16, v uint8) {
	switch {
	case addr <= 0x1FFF:
		s.ram[addr&0x07FF] = v
	case addr <= 0x3FFF:
		if s.ppu.WriteRegister(uint8(addr&7), v) {
			s.cpu.NMI()
		}
	case addr == regOAMDMA:
		s.dmaPending = true
		s.dmaPage = v
	case addr == regCtrl1:
		s.writeStrobe(v)
	case addr <= 0x401F:
		// APU/IO stub: writes discarded
	default:
		s.cart.WritePRG(addr, v)
	}
}
