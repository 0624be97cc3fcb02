package cpu

import (
	"fmt"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_NOOP = Op(0) // noop
	OP_ADDX = Op(1) // addx
)

// Instruction cycle latencies.
const (
	NOOP_CYCLES = 1 // noop retires on the cycle it is fetched.
	ADDX_CYCLES = 2 // addx retires one cycle after it is fetched.
)

// Instruction is a single decoded instruction. Instructions are immutable
// values; the operand is only meaningful for OP_ADDX.
type Instruction struct {
	Op      Op  // Operation.
	Operand int // Value added to the register when an addx retires.
}

// Cycles returns the fixed cycle latency of the instruction.
func (in Instruction) Cycles() (cycles int) {
	switch in.Op {
	case OP_ADDX:
		cycles = ADDX_CYCLES
	default:
		cycles = NOOP_CYCLES
	}

	return
}

// String returns the assembly form of the instruction.
func (in Instruction) String() (text string) {
	switch in.Op {
	case OP_ADDX:
		text = fmt.Sprintf("addx %v", in.Operand)
	default:
		text = "noop"
	}

	return
}
