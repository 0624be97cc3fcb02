// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jneufeld/legolOS/cpu"
	"github.com/jneufeld/legolOS/emulator"
	"github.com/jneufeld/legolOS/screen"
)

func main() {
	var compile string
	var output string
	var probes string
	var width int
	var height int
	var verbose bool

	flag.StringVar(&compile, "c", "-", ".crt file to assemble")
	flag.StringVar(&output, "o", "-", "Raster output")
	flag.StringVar(&probes, "p", "20,60,100,140,180,220", "Signal probe cycles")
	flag.IntVar(&width, "W", screen.DEFAULT_WIDTH, "Raster width")
	flag.IntVar(&height, "H", screen.DEFAULT_HEIGHT, "Raster height")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Width = width
	emu.Height = height
	emu.Reset()

	asm := &cpu.Assembler{Verbose: verbose}
	for attr, val := range emu.Defines() {
		asm.Predefine(attr, val)
	}

	var input io.Reader = os.Stdin
	if compile != "-" {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
		input = inf
	}

	prog, err := asm.Parse(input)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	emu.Program = prog

	var cycles []int
	for _, probe := range strings.Split(probes, ",") {
		probe = strings.TrimSpace(probe)
		if len(probe) == 0 {
			continue
		}
		cycle, err := strconv.Atoi(probe)
		if err != nil {
			log.Fatalf("probe '%v': %v", probe, err)
		}
		cycles = append(cycles, cycle)
	}

	total, err := emu.SignalStrength(cycles...)
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Refresh()
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	fmt.Fprintf(out, "signal: %v\n\n%v", total, emu.Screen)
}
