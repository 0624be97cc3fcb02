// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"

	"github.com/jneufeld/legolOS/cpu"
	"github.com/jneufeld/legolOS/internal"
	"github.com/jneufeld/legolOS/screen"
)

// Emulator state. Machine + raster + program listing.
type Emulator struct {
	Verbose bool           // If set, enables verbose logging.
	Machine *cpu.Machine   // Machine currently being driven.
	Program *cpu.Program   // Reference to the currently loaded program listing.
	Screen  *screen.Screen // Raster wrapping Machine.

	Width  int // Raster columns.
	Height int // Raster rows.
}

// NewEmulator creates a new emulator with the default raster geometry.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
		Width:   screen.DEFAULT_WIDTH,
		Height:  screen.DEFAULT_HEIGHT,
	}

	emu.Reset()

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Machine.Defines(),
		emu.Screen.Defines(),
	)
}

// Reset loads a fresh machine and raster for the current program.
func (emu *Emulator) Reset() {
	emu.Machine = cpu.NewMachine(emu.Program)
	emu.Machine.Verbose = emu.Verbose

	emu.Screen = screen.NewScreen(emu.Machine, emu.Width, emu.Height)
	emu.Screen.Verbose = emu.Verbose
}

// Ticks returns the total machine ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Machine.Ticks()
}

// LineNo returns the source line of the most recently fetched instruction.
func (emu *Emulator) LineNo() int {
	fetched := emu.Machine.Fetched()
	if fetched == 0 {
		return 0
	}

	return emu.Program.LineNo(fetched - 1)
}

// Tick performs a single machine cycle. done reports program completion.
func (emu *Emulator) Tick() (done bool, err error) {
	if !emu.Machine.IsExecuting() {
		done = true
		return
	}

	err = emu.Machine.Cycle()
	if err != nil {
		err = &ErrRuntime{LineNo: emu.LineNo(), Err: err}
	}

	return
}

// SignalStrength sums ticks x register, sampled as each probe cycle begins
// and before it executes. The program runs on a private machine; the raster
// and the emulator's own machine are untouched.
func (emu *Emulator) SignalStrength(cycles ...int) (total int, err error) {
	probe := map[int]bool{}
	for _, c := range cycles {
		probe[c] = true
	}

	vm := cpu.NewMachine(emu.Program)
	vm.Verbose = emu.Verbose

	for vm.IsExecuting() {
		if probe[vm.Ticks()] {
			total += vm.Ticks() * vm.ReadRegister()
		}

		err = vm.Cycle()
		if err != nil {
			err = &ErrRuntime{LineNo: emu.Program.LineNo(vm.Fetched() - 1), Err: err}
			return
		}
	}

	return
}

// Refresh resets the raster and redraws it from the current program.
func (emu *Emulator) Refresh() (err error) {
	emu.Reset()

	err = emu.Screen.Refresh()
	if err != nil {
		err = &ErrRuntime{LineNo: emu.LineNo(), Err: err}
	}

	return
}
