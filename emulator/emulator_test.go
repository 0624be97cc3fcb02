package emulator

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jneufeld/legolOS/cpu"
	"github.com/jneufeld/legolOS/screen"
)

// sampleRaster is the raster the reference program draws on a 40x6 screen.
const sampleRaster = "##..##..##..##..##..##..##..##..##..##..\n" +
	"###...###...###...###...###...###...###.\n" +
	"####....####....####....####....####....\n" +
	"#####.....#####.....#####.....#####.....\n" +
	"######......######......######......####\n" +
	"#######.......#######.......#######.....\n"

func doLoad(emu *Emulator, program []string, t *testing.T) {
	t.Helper()

	asm := &cpu.Assembler{}
	for attr, val := range emu.Defines() {
		asm.Predefine(attr, val)
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	emu.Program = prog
	emu.Reset()
}

func doLoadFile(emu *Emulator, path string, t *testing.T) {
	t.Helper()

	inf, err := os.Open(path)
	if err != nil {
		t.Fatalf("%v: %v", path, err)
	}
	defer inf.Close()

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(inf)
	if err != nil {
		t.Fatalf("%v: %v", path, err)
	}

	emu.Program = prog
	emu.Reset()
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.NotNil(emu.Screen)
	assert.Equal(screen.DEFAULT_WIDTH, emu.Screen.Width())
	assert.Equal(screen.DEFAULT_HEIGHT, emu.Screen.Height())
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, []string{"noop", "addx 3"}, t)

	lines := []int{1, 2, 2}
	for _, lineno := range lines {
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
		assert.Equal(lineno, emu.LineNo())
	}

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(4, emu.Ticks())

	// Ticking past completion stays done and error free.
	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulator_LineNoSkipsComments(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, []string{
		"; reference program header",
		"",
		"noop",
		".equ DELTA 3",
		"addx DELTA",
	}, t)

	_, err := emu.Tick()
	assert.NoError(err)
	assert.Equal(3, emu.LineNo())

	_, err = emu.Tick()
	assert.NoError(err)
	assert.Equal(5, emu.LineNo())
}

func TestEmulator_SignalStrengthSample(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoadFile(emu, "testdata/sample.crt", t)

	total, err := emu.SignalStrength(20, 60, 100, 140, 180, 220)
	assert.NoError(err)
	assert.Equal(13140, total)

	// The probe runs on its own machine; the emulator's is untouched.
	assert.Equal(1, emu.Ticks())
}

func TestEmulator_RefreshSample(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoadFile(emu, "testdata/sample.crt", t)

	assert.NoError(emu.Refresh())
	assert.Equal(sampleRaster, emu.Screen.String())

	// Refresh redraws from a fresh machine; the raster is identical.
	assert.NoError(emu.Refresh())
	assert.Equal(sampleRaster, emu.Screen.String())
}

func TestEmulator_SignalStrengthSmall(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, []string{"addx 3", "addx -5", "noop"}, t)

	// Register is 1 through cycle 2, 4 through cycle 4, -1 after.
	total, err := emu.SignalStrength(2, 4)
	assert.NoError(err)
	assert.Equal(2*1+4*4, total)
}

func TestEmulator_Defines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]string{}
	for attr, val := range emu.Defines() {
		defines[attr] = val
	}

	assert.Equal("40", defines["SCREEN_WIDTH"])
	assert.Equal("6", defines["SCREEN_HEIGHT"])
	assert.Equal("2", defines["ADDX_CYCLES"])
	assert.Equal("1", defines["REGISTER_INIT"])
}

func TestEmulator_Geometry(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Width = 4
	emu.Height = 2
	doLoad(emu, []string{
		"noop", "noop", "noop", "noop",
		"noop", "noop", "noop", "noop",
	}, t)

	assert.NoError(emu.Refresh())
	assert.Equal("###.\n###.\n", emu.Screen.String())
}
