package cpu

import (
	"iter"
)

// Opcode is a single assembled instruction with its source location.
type Opcode struct {
	LineNo      int // Source line the instruction was assembled from.
	Instruction Instruction
}

// Program is an assembled instruction listing, executed front to back.
type Program struct {
	Opcodes []Opcode
}

// Instructions yields the instruction sequence in program order.
func (prog *Program) Instructions() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Instruction) {
				return
			}
		}
	}
}

// LineNo returns the source line for the instruction at index n, or 0 when
// the index falls outside the listing.
func (prog *Program) LineNo(n int) int {
	if n < 0 || n >= len(prog.Opcodes) {
		return 0
	}

	return prog.Opcodes[n].LineNo
}

// Cycles returns the total number of cycles the program takes to execute.
func (prog *Program) Cycles() (total int) {
	for _, op := range prog.Opcodes {
		total += op.Instruction.Cycles()
	}

	return
}
