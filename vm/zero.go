package vm

import "github.com/Urethramancer/octofold/linker"

func zeroHandler(vm *VM, op *linker.Op) error {
	if err := vm.writeCell(vm.cellI, 0); err != nil {
		return err
	}
	vm.instrI++
	return nil
}

func zeroAdvanceHandler(vm *VM, op *linker.Op) error {
	for i := 0; i < op.Compound.Count; i++ {
		if err := vm.writeCell(vm.cellI, 0); err != nil {
			return err
		}
		vm.cellI++
	}
	vm.instrI++
	return nil
}

func zeroRetreatHandler(vm *VM, op *linker.Op) error {
	for i := 0; i < op.Compound.Count; i++ {
		if err := vm.writeCell(vm.cellI, 0); err != nil {
			return err
		}
		vm.cellI--
	}
	vm.instrI++
	return nil
}

func setHandler(vm *VM, op *linker.Op) error {
	if err := vm.writeCell(vm.cellI, op.Compound.Value); err != nil {
		return err
	}
	vm.instrI++
	return nil
}

func panicHandler(vm *VM, op *linker.Op) error {
	return &PanicError{Value: op.Compound.Value, InstrI: vm.instrI, CellI: vm.cellI}
}
