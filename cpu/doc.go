// Package cpu implements the register machine and assembler for the CRT system.
//
// The machine executes a two-instruction set: noop (one cycle, no effect) and
// addx (two cycles, adds its operand to the single register when it retires).
// Execution is cycle accurate; register writes become visible only after the
// owning instruction's full latency has elapsed.
//
// The assembler provides the textual form of the instruction set, supporting
// comments, equates, and compile-time expression evaluation.
package cpu
