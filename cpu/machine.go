package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"
)

// REGISTER_INIT is the register value at reset.
const REGISTER_INIT = 1

var _machine_defines = map[string]string{
	"NOOP_CYCLES":   fmt.Sprintf("%v", NOOP_CYCLES),
	"ADDX_CYCLES":   fmt.Sprintf("%v", ADDX_CYCLES),
	"REGISTER_INIT": fmt.Sprintf("%v", REGISTER_INIT),
}

// Machine is the simulation context for the register machine. It consumes a
// program one instruction at a time, holding at most one instruction in
// flight. A multi-cycle instruction occupies the in-flight slot until the
// cycle it retires on; its register write is invisible until then.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	pending  []Instruction // Instructions not yet fetched, front first.
	inFlight *Instruction  // Instruction fetched but not yet retired.
	register int           // The single register, REGISTER_INIT at reset.
	ticks    int           // Number of the cycle currently being executed, from 1.
	fetched  int           // Instructions fetched since reset.
}

// NewMachine creates a machine loaded with the given program.
func NewMachine(prog *Program) (vm *Machine) {
	vm = &Machine{
		pending:  slices.Collect(prog.Instructions()),
		register: REGISTER_INIT,
		ticks:    1,
	}

	return
}

// Defines for the machine
func (vm *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(_machine_defines)
}

// IsExecuting returns false once every instruction has retired.
func (vm *Machine) IsExecuting() bool {
	return len(vm.pending) != 0 || vm.inFlight != nil
}

// ReadRegister returns the value currently stored in the register. The value
// reflects every retired instruction and none that are still in flight.
func (vm *Machine) ReadRegister() int {
	return vm.register
}

// Ticks returns the number of the cycle the machine is about to execute.
// It starts at 1 and increases by exactly one per Cycle call.
func (vm *Machine) Ticks() int {
	return vm.ticks
}

// Fetched returns the count of instructions fetched since reset.
func (vm *Machine) Fetched() int {
	return vm.fetched
}

// Cycle advances the machine by exactly one cycle. When the in-flight slot is
// empty the next instruction is fetched; otherwise the in-flight instruction
// retires. The tick counter increments once per call, after either branch.
//
// Calling Cycle after IsExecuting has gone false returns ErrProgramExhausted
// and leaves the machine untouched.
func (vm *Machine) Cycle() (err error) {
	if vm.inFlight == nil {
		err = vm.schedule()
		if err != nil {
			return
		}
	} else {
		vm.execute()
	}

	vm.ticks += 1

	return
}

// schedule fetches the next pending instruction. A single-cycle instruction
// is fully realized on the fetch cycle and never occupies the in-flight slot;
// anything longer is parked there to retire on a later cycle.
func (vm *Machine) schedule() (err error) {
	if len(vm.pending) == 0 {
		err = ErrProgramExhausted
		return
	}

	in := vm.pending[0]
	vm.pending = vm.pending[1:]
	vm.fetched += 1

	if vm.Verbose {
		log.Printf("vm: %v: fetch %v", vm.ticks, in)
	}

	if in.Cycles() > 1 {
		vm.inFlight = &in
	}

	return
}

// execute retires the in-flight instruction, applying its effect. This is the
// first moment the effect is observable through ReadRegister.
func (vm *Machine) execute() {
	in := *vm.inFlight

	switch in.Op {
	case OP_ADDX:
		vm.register += in.Operand
	}

	vm.inFlight = nil

	if vm.Verbose {
		log.Printf("vm: %v: retire %v, x=%v", vm.ticks, in, vm.register)
	}
}

// String returns the current machine state as a string.
func (vm *Machine) String() (text string) {
	busy := "-"
	if vm.inFlight != nil {
		busy = vm.inFlight.String()
	}

	text += fmt.Sprintf("   tick: %v\n", vm.ticks)
	text += fmt.Sprintf("      x: %v\n", vm.register)
	text += fmt.Sprintf("   busy: %v\n", busy)
	text += fmt.Sprintf("pending: %v\n", len(vm.pending))

	return
}
