package vm

import "github.com/Urethramancer/octofold/linker"

// bitAndHandler reads two cells seven and six positions behind the
// head; unchecked mode does not validate those indexes.
func bitAndHandler(vm *VM, op *linker.Op) error {
	a, err := vm.readCell(vm.cellI - 7)
	if err != nil {
		return err
	}
	b, err := vm.readCell(vm.cellI - 6)
	if err != nil {
		return err
	}
	vm.writeCellUnchecked(vm.cellI-7, a&b)
	vm.writeCellUnchecked(vm.cellI-6, 0)
	vm.cellI += 2
	vm.instrI++
	return nil
}

func bitNegHandler(vm *VM, op *linker.Op) error {
	v, err := vm.readCell(vm.cellI)
	if err != nil {
		return err
	}
	vm.writeCellUnchecked(vm.cellI, ^v)
	if err := vm.writeCell(vm.cellI+1, 0); err != nil {
		return err
	}
	vm.cellI++
	vm.instrI++
	return nil
}
