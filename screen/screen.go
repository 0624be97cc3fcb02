// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package screen implements the raster display driven by the CRT machine.
//
// The machine's register positions a three pixel wide sprite on the current
// row. One pixel is drawn per machine cycle, in row-major order; the pixel
// lights when the sprite overlaps its column at the moment the cycle begins.
package screen

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/jneufeld/legolOS/cpu"
)

// Pixel is the state of a single raster cell.
type Pixel int

//go:generate go tool stringer -linecomment -type=Pixel
const (
	PIXEL_DARK = Pixel(0) // .
	PIXEL_LIT  = Pixel(1) // #
)

// Rune returns the character the pixel displays as.
func (px Pixel) Rune() rune {
	if px == PIXEL_LIT {
		return '#'
	}
	return '.'
}

// Default raster geometry.
const (
	DEFAULT_WIDTH  = 40 // Columns in the raster.
	DEFAULT_HEIGHT = 6  // Rows in the raster.
)

// Sprite shape.
const (
	SPRITE_WIDTH = 3 // Lit span, centered on the sprite middle.
	SPRITE_INIT  = 1 // Sprite middle column at reset.
)

var _screen_defines = map[string]string{
	"SCREEN_WIDTH":  fmt.Sprintf("%v", DEFAULT_WIDTH),
	"SCREEN_HEIGHT": fmt.Sprintf("%v", DEFAULT_HEIGHT),
	"SPRITE_WIDTH":  fmt.Sprintf("%v", SPRITE_WIDTH),
}

// Screen is a raster display controlled by an underlying machine. The screen
// owns the machine and drives its cycles during Refresh.
type Screen struct {
	Verbose bool // Set to enable verbose logging.

	vm           *cpu.Machine
	width        int
	height       int
	spriteMiddle int
	pixels       []Pixel
}

// NewScreen creates a screen with explicit geometry, controlled by vm.
func NewScreen(vm *cpu.Machine, width int, height int) (scr *Screen) {
	scr = &Screen{
		vm:           vm,
		width:        width,
		height:       height,
		spriteMiddle: SPRITE_INIT,
		pixels:       make([]Pixel, width*height),
	}

	return
}

// NewDefaultScreen creates a 40x6 screen controlled by vm.
func NewDefaultScreen(vm *cpu.Machine) *Screen {
	return NewScreen(vm, DEFAULT_WIDTH, DEFAULT_HEIGHT)
}

// Defines for the screen
func (scr *Screen) Defines() iter.Seq2[string, string] {
	return maps.All(_screen_defines)
}

// Width returns the raster column count.
func (scr *Screen) Width() int {
	return scr.width
}

// Height returns the raster row count.
func (scr *Screen) Height() int {
	return scr.height
}

// At returns the pixel at the given column and row.
func (scr *Screen) At(column int, row int) Pixel {
	return scr.pixels[row*scr.width+column]
}

// Refresh drives the machine to completion, drawing one pixel per cycle.
// The sprite position is sampled before each cycle and updated after it, so
// every pixel reflects the register as it stood when its cycle began.
//
// Refresh after the machine has finished is a no-op; the raster is kept.
func (scr *Screen) Refresh() (err error) {
	for scr.vm.IsExecuting() {
		scr.light()
		err = scr.vm.Cycle()
		if err != nil {
			return
		}
		scr.spriteMiddle = scr.vm.ReadRegister()
	}

	return
}

// light draws the pixel for the cycle the machine is about to execute.
func (scr *Screen) light() {
	index := scr.vm.Ticks() - 1 // 1-based cycle to 0-based pixel.

	if index >= scr.width*scr.height {
		// Cycles past the last pixel are legal; keep the machine running.
		return
	}

	column := index % scr.width
	if column < scr.spriteMiddle-1 || column > scr.spriteMiddle+1 {
		return
	}

	scr.pixels[index] = PIXEL_LIT

	if scr.Verbose {
		log.Printf("screen: %v: light (%v,%v)", scr.vm.Ticks(), column, index/scr.width)
	}
}

// String renders the raster, one row per line, '#' lit and '.' dark.
func (scr *Screen) String() string {
	var sb strings.Builder

	for n, px := range scr.pixels {
		sb.WriteRune(px.Rune())
		if (n+1)%scr.width == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
