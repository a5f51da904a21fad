package vm

import "github.com/Urethramancer/octofold/linker"

// printStaticHandler writes out the idiom's fixed byte sequence in one
// shot and leaves the cell at the head holding the last byte written.
func printStaticHandler(vm *VM, op *linker.Op) error {
	content := op.Compound.Bytes
	if _, err := vm.out.Write(content); err != nil {
		return err
	}
	if err := vm.out.Flush(); err != nil {
		return err
	}
	if err := vm.writeCell(vm.cellI, content[len(content)-1]); err != nil {
		return err
	}
	vm.instrI++
	return nil
}
