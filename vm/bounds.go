package vm

import "fmt"

// readCell and writeCell are the checked/unchecked tape accessors. In
// unchecked mode these trust the index and let Go's own slice bounds
// check surface as a panic: not a security boundary, just a debug aid
// the caller opted out of.
func (vm *VM) readCell(i int) (byte, error) {
	if vm.Checked {
		if i < 0 || i >= len(vm.cells) {
			return 0, fmt.Errorf("cell index %d out of bounds (0..%d)", i, len(vm.cells))
		}
	}
	return vm.cells[i], nil
}

func (vm *VM) writeCell(i int, value byte) error {
	if vm.Checked {
		if i < 0 || i >= len(vm.cells) {
			return fmt.Errorf("cell index %d out of bounds (0..%d)", i, len(vm.cells))
		}
	}
	vm.cells[i] = value
	return nil
}

// writeCellUnchecked always writes without the Checked gate: several
// idioms zero scratch cells unconditionally regardless of mode.
func (vm *VM) writeCellUnchecked(i int, value byte) {
	vm.cells[i] = value
}

func (vm *VM) readCellUnchecked(i int) byte {
	return vm.cells[i]
}
