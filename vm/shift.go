package vm

import "github.com/Urethramancer/octofold/linker"

func shiftLeftLogicalHandler(vm *VM, op *linker.Op) error {
	a, err := vm.readCell(vm.cellI - 2)
	if err != nil {
		return err
	}
	b := vm.readCellUnchecked(vm.cellI - 1)

	var result byte
	if b < 8 {
		result = a << b
	}
	vm.writeCellUnchecked(vm.cellI-2, result)
	vm.writeCellUnchecked(vm.cellI-1, 0)
	if err := vm.writeCell(vm.cellI, 0); err != nil {
		return err
	}
	vm.cellI--
	vm.instrI++
	return nil
}

func shiftRightLogicalHandler(vm *VM, op *linker.Op) error {
	if err := vm.writeCell(vm.cellI+3, 0); err != nil {
		return err
	}
	a, err := vm.readCell(vm.cellI - 2)
	if err != nil {
		return err
	}
	b := vm.readCellUnchecked(vm.cellI - 1)

	var result byte
	if b < 8 {
		result = a >> b
	}
	vm.writeCellUnchecked(vm.cellI-2, result)
	vm.writeCellUnchecked(vm.cellI-1, 0)
	vm.writeCellUnchecked(vm.cellI, 0)
	vm.writeCellUnchecked(vm.cellI+1, 0)
	vm.writeCellUnchecked(vm.cellI+2, 0)
	vm.cellI--
	vm.instrI++
	return nil
}
