package vm

import (
	"fmt"

	"github.com/Urethramancer/octofold/linker"
	"github.com/Urethramancer/octofold/recognizer"
)

// handlerFor picks the handler for one linearized op, the Decode step
// of this package's fetch-decode-execute shape. Loop brackets are
// already distance-resolved by the linker, so their handlers only need
// to branch, not search.
func handlerFor(op linker.Op) handler {
	switch op.Kind {
	case linker.LoopStart:
		return loopStartHandler
	case linker.LoopEnd:
		return loopEndHandler
	}

	c := op.Compound
	switch c.Kind {
	case recognizer.Basic:
		return basicHandler(c)
	case recognizer.Zero:
		return zeroHandler
	case recognizer.ZeroAdvance:
		return zeroAdvanceHandler
	case recognizer.ZeroRetreat:
		return zeroRetreatHandler
	case recognizer.Set:
		return setHandler
	case recognizer.Panic:
		return panicHandler
	case recognizer.MoveAdd:
		return moveAddHandler
	case recognizer.MoveAdd2:
		return moveAdd2Handler
	case recognizer.MoveSet:
		return moveSetHandler
	case recognizer.Dupe:
		return dupeHandler
	case recognizer.Equals:
		return equalsHandler
	case recognizer.NotEquals:
		return notEqualsHandler
	case recognizer.LessThan:
		return lessThanHandler
	case recognizer.GreaterThan:
		return greaterThanHandler
	case recognizer.LessThanEqual:
		return lessThanEqualHandler
	case recognizer.GreaterThanEqual:
		return greaterThanEqualHandler
	case recognizer.ShiftLeftLogical:
		return shiftLeftLogicalHandler
	case recognizer.ShiftRightLogical:
		return shiftRightLogicalHandler
	case recognizer.BitAnd:
		return bitAndHandler
	case recognizer.BitNeg:
		return bitNegHandler
	case recognizer.DivMod:
		return divModHandler
	case recognizer.PrintStatic:
		return printStaticHandler
	case recognizer.MoveCellDynamicU8:
		return moveCellDynamicU8Handler
	case recognizer.MoveCellDynamicU16:
		return moveCellDynamicU16Handler
	case recognizer.MoveCellDynamicU32:
		return moveCellDynamicU32Handler
	case recognizer.CopyCellDynamicU8:
		return copyCellDynamicU8Handler
	case recognizer.CopyCellDynamicU32:
		return copyCellDynamicU32Handler
	case recognizer.MoveCellsStaticReverse:
		return moveCellsStaticReverseHandler
	case recognizer.AddU32:
		return addU32Handler
	}

	return func(vm *VM, op *linker.Op) error {
		return fmt.Errorf("no handler for compound op kind %d", c.Kind)
	}
}

func loopStartHandler(vm *VM, op *linker.Op) error {
	v, err := vm.readCell(vm.cellI)
	if err != nil {
		return err
	}
	if v == 0 {
		vm.instrI += op.Distance
	} else {
		vm.instrI++
	}
	return nil
}

func loopEndHandler(vm *VM, op *linker.Op) error {
	v, err := vm.readCell(vm.cellI)
	if err != nil {
		return err
	}
	if v != 0 {
		vm.instrI -= op.Distance
	} else {
		vm.instrI++
	}
	return nil
}
