package vm

import (
	"fmt"

	"github.com/Urethramancer/octofold/lexer"
	"github.com/Urethramancer/octofold/linker"
	"github.com/Urethramancer/octofold/recognizer"
)

// basicHandler executes a raw basic op that matched no idiom: plain
// cell arithmetic, head movement, or I/O.
func basicHandler(c recognizer.Op) handler {
	b := c.Basic
	switch b.Kind {
	case lexer.ChangeBy:
		return func(vm *VM, op *linker.Op) error {
			v, err := vm.readCell(vm.cellI)
			if err != nil {
				return err
			}
			if err := vm.writeCell(vm.cellI, v+b.Delta); err != nil {
				return err
			}
			vm.instrI++
			return nil
		}
	case lexer.Shift:
		return func(vm *VM, op *linker.Op) error {
			vm.cellI += int(b.Dist)
			vm.instrI++
			return nil
		}
	case lexer.Input:
		return func(vm *VM, op *linker.Op) error {
			for i := uint64(0); i < b.Count; i++ {
				if err := vm.writeCell(vm.cellI, vm.readInputByte()); err != nil {
					return err
				}
			}
			vm.instrI++
			return nil
		}
	case lexer.Output:
		return func(vm *VM, op *linker.Op) error {
			for i := uint64(0); i < b.Count; i++ {
				v, err := vm.readCell(vm.cellI)
				if err != nil {
					return err
				}
				if err := vm.out.WriteByte(v); err != nil {
					return err
				}
			}
			// Flush per instruction so interactive programs stay
			// responsive.
			if err := vm.out.Flush(); err != nil {
				return err
			}
			vm.instrI++
			return nil
		}
	default:
		return func(vm *VM, op *linker.Op) error {
			return fmt.Errorf("cannot execute unprocessed loop instruction")
		}
	}
}

// readInputByte reads one byte of input, returning 0 at EOF or on a
// failed read.
func (vm *VM) readInputByte() byte {
	b, err := vm.in.ReadByte()
	if err != nil {
		return 0
	}
	return b
}
