// Command mos6502 is a standalone driver for the CPU core: it loads a
// raw binary image onto a flat 64 KiB bus, sets the program counter,
// and runs the CPU to completion (halt on an illegal opcode), with
// optional instruction tracing and an interactive monitor.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/nesdev-go/nesgo/mos6502"
)

var (
	verbose = flag.Bool("v", false, "trace every instruction to stderr")
	monitor = flag.Bool("monitor", false, "drop into an interactive monitor instead of running freely")
)

// flatBus is a plain 64 KiB address space with no mirroring or
// memory-mapped devices: the whole point of the standalone driver is
// to exercise the CPU core in isolation from any NES-specific bus
// wiring.
type flatBus struct {
	mem [0x10000]uint8
}

func (b *flatBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mos6502 [-v] [-monitor] <binary> [base_addr] [start_addr]")
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	baseAddr := uint16(0x0600)
	if len(args) >= 2 {
		v, err := strconv.ParseUint(args[1], 16, 16)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mos6502: bad base_addr %q: %v\n", args[1], err)
			os.Exit(1)
		}
		baseAddr = uint16(v)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "mos6502: %v\n", err)
		os.Exit(1)
	}
	if int(baseAddr)+len(data) > 0x10000 {
		fmt.Fprintf(os.Stderr, "mos6502: binary of %d bytes at base %04X exceeds the 64 KiB address space\n", len(data), baseAddr)
		os.Exit(1)
	}

	bus := &flatBus{}
	copy(bus.mem[baseAddr:], data)

	cpu := mos6502.New(bus)
	if len(args) >= 3 {
		v, err := strconv.ParseUint(args[2], 16, 16)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mos6502: bad start_addr %q: %v\n", args[2], err)
			os.Exit(1)
		}
		cpu.PC = uint16(v)
	}

	if *monitor {
		runMonitor(cpu)
		return
	}

	for !cpu.Halted {
		if *verbose {
			fmt.Fprintln(os.Stderr, cpu.Trace())
		}
		cpu.Step()
	}
	os.Exit(0)
}

// runMonitor is a line-oriented REPL: set breakpoints, single-step,
// run to completion or to the next breakpoint, dump registers and
// memory, and reset the CPU.
func runMonitor(cpu *mos6502.CPU) {
	in := bufio.NewScanner(os.Stdin)
	breaks := make(map[uint16]struct{})

	for {
		fmt.Printf("%s\n\n", cpu)
		fmt.Println("(b)reak <addr>  (c)lear breakpoints  (s)tep  (r)un  r(e)set  (d)ump <addr>  (q)uit")
		fmt.Print("mos6502> ")
		if !in.Scan() {
			return
		}

		var cmd, arg string
		fmt.Sscanf(in.Text(), "%s %s", &cmd, &arg)

		switch cmd {
		case "b":
			addr, err := strconv.ParseUint(arg, 16, 16)
			if err != nil {
				fmt.Printf("bad address %q\n", arg)
				continue
			}
			breaks[uint16(addr)] = struct{}{}
		case "c":
			breaks = make(map[uint16]struct{})
		case "s":
			if cpu.Halted {
				fmt.Println("CPU is halted")
				continue
			}
			fmt.Println(cpu.Trace())
			cpu.Step()
		case "r":
			for !cpu.Halted {
				if _, hit := breaks[cpu.PC]; hit {
					fmt.Printf("breakpoint hit at %04X\n", cpu.PC)
					break
				}
				cpu.Step()
			}
		case "e":
			cpu.Reset()
		case "d":
			addr, err := strconv.ParseUint(arg, 16, 16)
			if err != nil {
				fmt.Printf("bad address %q\n", arg)
				continue
			}
			for i := uint16(0); i < 16; i++ {
				fmt.Printf("%02X ", cpu.Read(uint16(addr)+i))
			}
			fmt.Println()
		case "q":
			return
		}
	}
}
