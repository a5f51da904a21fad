package vm

import "github.com/Urethramancer/octofold/linker"

// divModHandler implements the well-behaved div/mod idiom's run-time
// semantics: d == 0 yields (0, 0) rather than dividing by zero (the
// "well-behaved" in the name). The remainder lands at the head and the
// quotient one cell past it, while the divisor cell is rebuilt as
// d - remainder, a leftover of the scratch dance that computed them.
func divModHandler(vm *VM, op *linker.Op) error {
	n, err := vm.readCell(vm.cellI - 2)
	if err != nil {
		return err
	}
	d, err := vm.readCell(vm.cellI - 1)
	if err != nil {
		return err
	}

	var quotient, remainder byte
	if d != 0 {
		quotient, remainder = n/d, n%d
	}

	if err := vm.writeCell(vm.cellI+3, 0); err != nil {
		return err
	}

	vm.writeCellUnchecked(vm.cellI-2, 0)
	vm.writeCellUnchecked(vm.cellI-1, d-remainder)
	vm.writeCellUnchecked(vm.cellI+0, remainder)
	vm.writeCellUnchecked(vm.cellI+1, quotient)
	vm.writeCellUnchecked(vm.cellI+2, 0)

	vm.cellI += int(op.Compound.Shift)
	vm.instrI++
	return nil
}
