package vm

import "github.com/Urethramancer/octofold/linker"

// The dynamic-index family reads the cell(s) under the head as a
// runtime tape index rather than a compile-time offset. The operand
// cells are read through the checked accessors, and in checked mode
// the composed destination index is validated before the access;
// unchecked mode trusts whatever index the program computed.

func moveCellDynamicU8Handler(vm *VM, op *linker.Op) error {
	value, err := vm.readCell(vm.cellI - 2)
	if err != nil {
		return err
	}
	index, err := vm.readCell(vm.cellI - 1)
	if err != nil {
		return err
	}
	finalIndex := vm.cellI - 3 - int(op.Compound.Offset) + int(index)
	if err := vm.writeCell(finalIndex, value); err != nil {
		return err
	}
	if err := vm.writeCell(vm.cellI-2, index); err != nil {
		return err
	}
	vm.cellI -= 2
	vm.instrI++
	return nil
}

func moveCellDynamicU16Handler(vm *VM, op *linker.Op) error {
	lo, err := vm.readCell(vm.cellI - 2)
	if err != nil {
		return err
	}
	hi, err := vm.readCell(vm.cellI - 1)
	if err != nil {
		return err
	}
	value, err := vm.readCell(vm.cellI - 3)
	if err != nil {
		return err
	}
	index := int(lo) | int(hi)<<8

	finalIndex := vm.cellI - int(op.Compound.Offset) + index
	if err := vm.writeCell(finalIndex, value); err != nil {
		return err
	}
	if err := vm.writeCell(vm.cellI-3, lo); err != nil {
		return err
	}
	if err := vm.writeCell(vm.cellI-2, hi); err != nil {
		return err
	}
	vm.cellI -= 3
	vm.instrI++
	return nil
}

func moveCellDynamicU32Handler(vm *VM, op *linker.Op) error {
	var bytes [4]byte
	for i := 0; i < 4; i++ {
		b, err := vm.readCell(vm.cellI - 4 + i)
		if err != nil {
			return err
		}
		bytes[i] = b
	}
	value, err := vm.readCell(vm.cellI - 5)
	if err != nil {
		return err
	}
	index := int(bytes[0]) | int(bytes[1])<<8 | int(bytes[2])<<16 | int(bytes[3])<<24

	finalIndex := vm.cellI - int(op.Compound.Offset) + index
	if err := vm.writeCell(finalIndex, value); err != nil {
		return err
	}
	for i := 0; i < 4; i++ {
		if err := vm.writeCell(vm.cellI-5+i, bytes[i]); err != nil {
			return err
		}
	}
	vm.cellI -= 5
	vm.instrI++
	return nil
}

func copyCellDynamicU8Handler(vm *VM, op *linker.Op) error {
	index, err := vm.readCell(vm.cellI - 1)
	if err != nil {
		return err
	}
	finalIndex := vm.cellI - 1 - int(op.Compound.Offset) + int(index)
	src, err := vm.readCell(finalIndex)
	if err != nil {
		return err
	}
	if err := vm.writeCell(vm.cellI-1, src); err != nil {
		return err
	}
	vm.instrI++
	return nil
}

func copyCellDynamicU32Handler(vm *VM, op *linker.Op) error {
	var bytes [4]byte
	for i := 0; i < 4; i++ {
		b, err := vm.readCell(vm.cellI - 4 + i)
		if err != nil {
			return err
		}
		bytes[i] = b
	}
	index := int(bytes[0]) | int(bytes[1])<<8 | int(bytes[2])<<16 | int(bytes[3])<<24

	finalIndex := vm.cellI - int(op.Compound.Offset) + index
	src, err := vm.readCell(finalIndex)
	if err != nil {
		return err
	}
	if err := vm.writeCell(vm.cellI-4, src); err != nil {
		return err
	}
	vm.cellI -= 3
	vm.instrI++
	return nil
}

// moveCellsStaticReverseHandler bulk-relocates a run of count cells,
// zeroing the source range behind. Unlike the rest of this package it
// indexes vm.cells directly, with no readCell/writeCell gate: this
// idiom is always unchecked.
func moveCellsStaticReverseHandler(vm *VM, op *linker.Op) error {
	count := op.Compound.Count
	endSrc := vm.cellI + 1
	startSrc := vm.cellI - count + 1
	endDest := vm.cellI + int(op.Compound.Offset) + 1
	startDest := endDest - count

	copy(vm.cells[startDest:startDest+count], vm.cells[startSrc:endSrc])
	for i := startSrc; i < endSrc; i++ {
		vm.cells[i] = 0
	}
	vm.cellI -= count
	vm.instrI++
	return nil
}

// addU32Handler sums two little-endian 4-byte words in place under the
// head, wrapping on overflow.
func addU32Handler(vm *VM, op *linker.Op) error {
	var a, b [4]byte
	for i := 0; i < 4; i++ {
		v, err := vm.readCell(vm.cellI - 8 + i)
		if err != nil {
			return err
		}
		a[i] = v
	}
	for i := 0; i < 4; i++ {
		v, err := vm.readCell(vm.cellI - 4 + i)
		if err != nil {
			return err
		}
		b[i] = v
	}

	sum := (uint32(a[0]) | uint32(a[1])<<8 | uint32(a[2])<<16 | uint32(a[3])<<24) +
		(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)

	for i := 0; i < 4; i++ {
		if err := vm.writeCell(vm.cellI-8+i, byte(sum>>(8*i))); err != nil {
			return err
		}
	}
	vm.instrI++
	return nil
}
