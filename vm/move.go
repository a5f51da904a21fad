package vm

import "github.com/Urethramancer/octofold/linker"

func moveAddHandler(vm *VM, op *linker.Op) error {
	current, err := vm.readCell(vm.cellI)
	if err != nil {
		return err
	}
	dest := vm.cellI + int(op.Compound.Offset)
	destValue, err := vm.readCell(dest)
	if err != nil {
		return err
	}
	if err := vm.writeCell(dest, destValue+current); err != nil {
		return err
	}
	vm.writeCellUnchecked(vm.cellI, 0)
	vm.instrI++
	return nil
}

func moveSetHandler(vm *VM, op *linker.Op) error {
	current, err := vm.readCell(vm.cellI)
	if err != nil {
		return err
	}
	if err := vm.writeCell(vm.cellI+int(op.Compound.Offset), current); err != nil {
		return err
	}
	vm.writeCellUnchecked(vm.cellI, 0)
	vm.instrI++
	return nil
}

func moveAdd2Handler(vm *VM, op *linker.Op) error {
	current, err := vm.readCell(vm.cellI)
	if err != nil {
		return err
	}
	for _, offset := range [2]int64{op.Compound.Offset, op.Compound.Offset2} {
		dest := vm.cellI + int(offset)
		destValue, err := vm.readCell(dest)
		if err != nil {
			return err
		}
		if err := vm.writeCell(dest, destValue+current); err != nil {
			return err
		}
	}
	vm.writeCellUnchecked(vm.cellI, 0)
	vm.instrI++
	return nil
}

// dupeHandler copies the cell at cellI+offset into the cell under the
// head, clears the cell ahead of it (the scratch cell that fanned the
// value out to both destinations), and advances the head onto that
// cleared scratch cell.
func dupeHandler(vm *VM, op *linker.Op) error {
	src, err := vm.readCell(vm.cellI + int(op.Compound.Offset))
	if err != nil {
		return err
	}
	if err := vm.writeCell(vm.cellI, src); err != nil {
		return err
	}
	if err := vm.writeCell(vm.cellI+1, 0); err != nil {
		return err
	}
	vm.cellI++
	vm.instrI++
	return nil
}
