package console

import (
	"bytes"
	"testing"

	"github.com/nesdev-go/nesgo/cartridge"
)

// nromImage builds a minimal one-bank NROM image with reset vector
// pointing at $8000, which is filled with NOPs ($EA).
func nromImage() []byte {
	var buf bytes.Buffer
	buf.Write([]byte{'N', 'E', 'S', 0x1A})
	buf.WriteByte(1) // 1 PRG bank
	buf.WriteByte(1) // 1 CHR bank
	buf.WriteByte(0x00)
	buf.WriteByte(0x00)
	buf.Write(make([]byte, 8))

	prg := bytes.Repeat([]byte{0xEA}, 16384)
	prg[0x3FFC] = 0x00 // reset vector low -> $8000 ($FFFC mirrors offset $3FFC)
	prg[0x3FFD] = 0x80 // reset vector high
	buf.Write(prg)
	buf.Write(make([]byte, 8192)) // CHR
	return buf.Bytes()
}

func newTestSystem(t *testing.T) *System {
	t.Helper()
	cart, err := cartridge.Load(bytes.NewReader(nromImage()))
	if err != nil {
		t.Fatalf("failed to load test cartridge: %v", err)
	}
	s := New(cart)
	s.Reset()
	return s
}

func TestRAMMirroring(t *testing.T) {
	s := newTestSystem(t)
	s.Write(0x0000, 0x42)
	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := s.Read(mirror); got != 0x42 {
			t.Fatalf("RAM at $0000 should mirror to $%04X, got %02X", mirror, got)
		}
	}
	s.Write(0x1FFF, 0x99)
	if got := s.Read(0x07FF); got != 0x99 {
		t.Fatalf("$1FFF should alias $07FF, got %02X", got)
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	s := newTestSystem(t)
	// $2002 (PPUSTATUS) and $200A both decode to register 2.
	s.ppu.Step() // advance state a little; harmless
	a := s.Read(0x2002)
	b := s.Read(0x200A)
	_ = a
	_ = b // both reads clear the write toggle; just confirm no panic on aliasing
}

func TestControllerSerialReadOrder(t *testing.T) {
	s := newTestSystem(t)
	s.SetControllerState(0, uint8(ButtonA|ButtonStart|ButtonRight))

	s.Write(0x4016, 1) // strobe high: continuous latch
	s.Write(0x4016, 0) // falling edge: latch shift register

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1} // A,B,Select,Start,Up,Down,Left,Right
	for i, w := range want {
		if got := s.Read(0x4016); got != w {
			t.Fatalf("bit %d: got %d, want %d", i, got, w)
		}
	}
}

func TestOAMDMA(t *testing.T) {
	s := newTestSystem(t)
	for i := 0; i < 256; i++ {
		s.Write(0x0300+uint16(i), uint8(i))
	}

	before := s.cpu.Cycles
	s.Write(0x4014, 0x03)
	if !s.dmaPending {
		t.Fatalf("writing $4014 should set dma_pending")
	}
	s.stepInstruction()

	if s.dmaPending {
		t.Fatalf("dma_pending should be cleared after the transfer runs")
	}
	if got := s.cpu.Cycles - before; got != oamDMACPUCycles {
		t.Fatalf("OAM DMA should charge %d CPU cycles, charged %d", oamDMACPUCycles, got)
	}
	for i := 0; i < 256; i++ {
		if got := s.ppu.OAMByte(i); got != uint8(i) {
			t.Fatalf("OAM[%d] = %02X, want %02X", i, got, uint8(i))
		}
	}
}

func TestStepFrameStopsOnHalt(t *testing.T) {
	s := newTestSystem(t)
	s.Write(0x0200, 0x02) // illegal opcode in RAM (PRG ROM ignores writes): halts the CPU
	s.cpu.PC = 0x0200

	s.StepFrame()
	if !s.cpu.Halted {
		t.Fatalf("executing an illegal opcode should halt the CPU")
	}
}
