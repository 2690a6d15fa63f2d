package mos6502

import "testing"

// flatMem is a bare 64k RAM image satisfying Bus, used the same way
// the bdwalton-gintendo test suite wires up a CPU against plain memory:
// no mapper, no mirroring, just bytes.
type flatMem struct {
	data [0x10000]uint8
}

func (m *flatMem) Read(addr uint16) uint8     { return m.data[addr] }
func (m *flatMem) Write(addr uint16, v uint8) { m.data[addr] = v }

func newTestCPU() (*CPU, *flatMem) {
	m := &flatMem{}
	m.data[0xFFFC] = 0x00
	m.data[0xFFFD] = 0x80 // reset vector -> $8000
	c := New(m)
	return c, m
}

func TestResetVector(t *testing.T) {
	c, _ := newTestCPU()
	if c.PC != 0x8000 {
		t.Fatalf("PC after reset = %04X, want 8000", c.PC)
	}
	if c.S != 0xFD {
		t.Fatalf("S after reset = %02X, want FD", c.S)
	}
	if !c.flagSet(FlagInterrupt) {
		t.Fatalf("I flag should be set at power-up")
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, m := newTestCPU()
	c.A = 0x42
	m.data[0x8000] = 0x48 // PHA
	m.data[0x8001] = 0xA9 // LDA #$00
	m.data[0x8002] = 0x00
	m.data[0x8003] = 0x68 // PLA

	c.Step() // PHA
	c.Step() // LDA #$00
	if c.A != 0 {
		t.Fatalf("A after LDA #$00 = %02X, want 00", c.A)
	}
	c.Step() // PLA
	if c.A != 0x42 {
		t.Fatalf("A after PLA = %02X, want 42", c.A)
	}
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c, m := newTestCPU()
	c.setFlag(FlagCarry, true)
	c.setFlag(FlagNegative, true)
	want := c.Status

	m.data[0x8000] = 0x08 // PHP
	m.data[0x8001] = 0x18 // CLC
	m.data[0x8002] = 0xD8 // CLD
	m.data[0x8003] = 0x28 // PLP

	c.Step()
	c.Step()
	c.Step()
	if c.flagSet(FlagCarry) {
		t.Fatalf("CLC should have cleared carry before PLP")
	}
	c.Step()
	if c.Status != want {
		t.Fatalf("status after PLP = %08b, want %08b", c.Status, want)
	}
}

func TestJSRRTS(t *testing.T) {
	c, m := newTestCPU()
	m.data[0x8000] = 0x20 // JSR $9000
	m.data[0x8001] = 0x00
	m.data[0x8002] = 0x90
	m.data[0x9000] = 0x60 // RTS

	startS := c.S
	c.Step() // JSR
	if c.PC != 0x9000 {
		t.Fatalf("PC after JSR = %04X, want 9000", c.PC)
	}
	if c.S != startS-2 {
		t.Fatalf("S after JSR = %02X, want %02X", c.S, startS-2)
	}
	c.Step() // RTS
	if c.PC != 0x8003 {
		t.Fatalf("PC after RTS = %04X, want 8003", c.PC)
	}
	if c.S != startS {
		t.Fatalf("S after RTS = %02X, want %02X", c.S, startS)
	}
}

func TestBRKRTI(t *testing.T) {
	c, m := newTestCPU()
	m.data[0xFFFE] = 0x00
	m.data[0xFFFF] = 0xA0 // IRQ/BRK vector -> $A000
	m.data[0x8000] = 0x00 // BRK
	m.data[0x8001] = 0xFF // padding byte, skipped
	m.data[0xA000] = 0x40 // RTI

	c.Step() // BRK
	if c.PC != 0xA000 {
		t.Fatalf("PC after BRK = %04X, want A000", c.PC)
	}
	if !c.flagSet(FlagInterrupt) {
		t.Fatalf("I flag should be set after BRK")
	}
	pushed := m.data[stackPage+uint16(c.S)+1]
	if pushed&FlagBreak == 0 || pushed&FlagUnused == 0 {
		t.Fatalf("status pushed by BRK = %08b, want B and U set", pushed)
	}

	c.Step() // RTI
	if c.PC != 0x8002 {
		t.Fatalf("PC after RTI = %04X, want 8002 (address after BRK+padding)", c.PC)
	}
}

func TestADCBinaryOverflow(t *testing.T) {
	c, m := newTestCPU()
	c.A = 0x7F
	m.data[0x8000] = 0x69 // ADC #$01
	m.data[0x8001] = 0x01

	c.Step()
	if c.A != 0x80 {
		t.Fatalf("A = %02X, want 80", c.A)
	}
	if !c.flagSet(FlagOverflow) {
		t.Fatalf("V flag should be set: 0x7F + 0x01 overflows into negative")
	}
	if !c.flagSet(FlagNegative) {
		t.Fatalf("N flag should be set for result 0x80")
	}
	if c.flagSet(FlagCarry) {
		t.Fatalf("C flag should be clear: no unsigned carry out")
	}
}

func TestADCCarryOut(t *testing.T) {
	c, m := newTestCPU()
	c.A = 0xFF
	m.data[0x8000] = 0x69 // ADC #$01
	m.data[0x8001] = 0x01

	c.Step()
	if c.A != 0x00 {
		t.Fatalf("A = %02X, want 00", c.A)
	}
	if !c.flagSet(FlagCarry) {
		t.Fatalf("C flag should be set: 0xFF + 0x01 carries out")
	}
	if !c.flagSet(FlagZero) {
		t.Fatalf("Z flag should be set for result 0")
	}
}

func TestSBCBorrow(t *testing.T) {
	c, m := newTestCPU()
	c.A = 0x00
	c.setFlag(FlagCarry, true) // carry set = no borrow going in
	m.data[0x8000] = 0xE9     // SBC #$01
	m.data[0x8001] = 0x01

	c.Step()
	if c.A != 0xFF {
		t.Fatalf("A = %02X, want FF", c.A)
	}
	if c.flagSet(FlagCarry) {
		t.Fatalf("C flag should be clear: result borrowed")
	}
}

func TestADCDecimalMode(t *testing.T) {
	c, m := newTestCPU()
	c.setFlag(FlagDecimal, true)
	c.A = 0x58 // BCD 58
	m.data[0x8000] = 0x69
	m.data[0x8001] = 0x46 // BCD 46

	c.Step()
	if c.A != 0x04 {
		t.Fatalf("BCD 58+46 = %02X, want 04 (with carry out)", c.A)
	}
	if !c.flagSet(FlagCarry) {
		t.Fatalf("BCD 58+46 = 104, should set carry")
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, m := newTestCPU()
	m.data[0x8000] = 0x6C // JMP ($30FF)
	m.data[0x8001] = 0xFF
	m.data[0x8002] = 0x30
	m.data[0x30FF] = 0x00
	m.data[0x3000] = 0x40 // high byte fetched from $3000, not $3100
	m.data[0x3100] = 0x99

	c.Step()
	if c.PC != 0x4000 {
		t.Fatalf("PC after bugged JMP indirect = %04X, want 4000", c.PC)
	}
}

func TestBranchPageCrossCycles(t *testing.T) {
	c, m := newTestCPU()
	m.data[0x81FC] = 0x90 // BCC +$10, taken and crosses into the next page
	m.data[0x81FD] = 0x10
	c.PC = 0x81FC

	before := c.Cycles
	cyc := c.Step()
	if cyc != 4 {
		t.Fatalf("BCC taken+page-crossed cost %d cycles, want 4", cyc)
	}
	if c.Cycles != before+4 {
		t.Fatalf("Cycles accumulator advanced by %d, want 4", c.Cycles-before)
	}
	if c.PC != 0x820E {
		t.Fatalf("PC after taken branch = %04X, want 820E", c.PC)
	}
}

func TestIllegalOpcodeHalts(t *testing.T) {
	c, m := newTestCPU()
	m.data[0x8000] = 0x02 // not a legal opcode
	c.Step()
	if !c.Halted {
		t.Fatalf("CPU should halt on illegal opcode")
	}
	cyc := c.Step()
	if cyc != 0 {
		t.Fatalf("Step on a halted CPU should be a no-op returning 0 cycles")
	}
}

func TestNMIPushesStatusWithBreakClear(t *testing.T) {
	c, m := newTestCPU()
	m.data[0xFFFA] = 0x00
	m.data[0xFFFB] = 0xB0 // NMI vector -> $B000
	c.setFlag(FlagCarry, true)

	c.NMI()
	if c.PC != 0xB000 {
		t.Fatalf("PC after NMI = %04X, want B000", c.PC)
	}
	pushed := m.data[stackPage+uint16(c.S)+1]
	if pushed&FlagBreak != 0 {
		t.Fatalf("status pushed by NMI should have B clear")
	}
	if pushed&FlagUnused == 0 {
		t.Fatalf("status pushed by NMI should have the unused bit set")
	}
}
