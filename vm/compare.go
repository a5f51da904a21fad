package vm

import "github.com/Urethramancer/octofold/linker"

// The Equals/NotEquals pair consumes the two cells at cellI, cellI+1
// and leaves the boolean result in cellI: the second operand cell is
// cleared and the head advances by one, onto that cleared cell.
func equalsHandler(vm *VM, op *linker.Op) error {
	return twoCellCompare(vm, func(a, b byte) bool { return a == b })
}

func notEqualsHandler(vm *VM, op *linker.Op) error {
	return twoCellCompare(vm, func(a, b byte) bool { return a != b })
}

func twoCellCompare(vm *VM, cmp func(a, b byte) bool) error {
	a, err := vm.readCell(vm.cellI)
	if err != nil {
		return err
	}
	b, err := vm.readCell(vm.cellI + 1)
	if err != nil {
		return err
	}
	vm.writeCellUnchecked(vm.cellI, boolByte(cmp(a, b)))
	vm.writeCellUnchecked(vm.cellI+1, 0)
	vm.cellI++
	vm.instrI++
	return nil
}

// The four ordered comparisons instead read the two cells behind the
// head (cellI-2, cellI-1) and leave the result in cellI-2 without
// moving the head, clearing cellI-1, cellI and cellI+1.
func lessThanHandler(vm *VM, op *linker.Op) error {
	return orderedCompare(vm, func(a, b byte) bool { return a < b })
}

func greaterThanHandler(vm *VM, op *linker.Op) error {
	return orderedCompare(vm, func(a, b byte) bool { return a > b })
}

func lessThanEqualHandler(vm *VM, op *linker.Op) error {
	return orderedCompare(vm, func(a, b byte) bool { return a <= b })
}

func greaterThanEqualHandler(vm *VM, op *linker.Op) error {
	return orderedCompare(vm, func(a, b byte) bool { return a >= b })
}

func orderedCompare(vm *VM, cmp func(a, b byte) bool) error {
	if err := vm.writeCell(vm.cellI+1, 0); err != nil {
		return err
	}
	a, err := vm.readCell(vm.cellI - 2)
	if err != nil {
		return err
	}
	b := vm.readCellUnchecked(vm.cellI - 1)

	vm.writeCellUnchecked(vm.cellI-2, boolByte(cmp(a, b)))
	vm.writeCellUnchecked(vm.cellI-1, 0)
	vm.writeCellUnchecked(vm.cellI, 0)
	vm.instrI++
	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
