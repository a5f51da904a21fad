package transpile

import (
	"bufio"
	"fmt"

	"github.com/Urethramancer/octofold/lexer"
	"github.com/Urethramancer/octofold/linker"
	"github.com/Urethramancer/octofold/recognizer"
)

func emitterFor(op linker.Op) (emitter, error) {
	switch op.Kind {
	case linker.LoopStart:
		return emitLoopStart, nil
	case linker.LoopEnd:
		return emitLoopEnd, nil
	}

	c := op.Compound
	switch c.Kind {
	case recognizer.Basic:
		return emitBasic(c)
	case recognizer.Zero:
		return emitZero, nil
	case recognizer.ZeroAdvance:
		return emitZeroAdvance, nil
	case recognizer.ZeroRetreat:
		return emitZeroRetreat, nil
	case recognizer.Set:
		return emitSet, nil
	case recognizer.Panic:
		return emitPanic, nil
	case recognizer.MoveAdd:
		return emitMoveAdd, nil
	case recognizer.MoveAdd2:
		return emitMoveAdd2, nil
	case recognizer.MoveSet:
		return emitMoveSet, nil
	case recognizer.Dupe:
		return emitDupe, nil
	case recognizer.Equals:
		return emitEquals, nil
	case recognizer.NotEquals:
		return emitNotEquals, nil
	case recognizer.LessThan:
		return emitLessThan, nil
	case recognizer.GreaterThan:
		return emitGreaterThan, nil
	case recognizer.LessThanEqual:
		return emitLessThanEqual, nil
	case recognizer.GreaterThanEqual:
		return emitGreaterThanEqual, nil
	case recognizer.ShiftLeftLogical:
		return emitShiftLeftLogical, nil
	case recognizer.ShiftRightLogical:
		return emitShiftRightLogical, nil
	case recognizer.BitAnd:
		return emitBitAnd, nil
	case recognizer.BitNeg:
		return emitBitNeg, nil
	case recognizer.DivMod:
		return emitDivMod, nil
	case recognizer.PrintStatic:
		return emitPrintStatic, nil
	case recognizer.MoveCellDynamicU8:
		return emitMoveCellDynamicU8, nil
	case recognizer.MoveCellDynamicU16:
		return emitMoveCellDynamicU16, nil
	case recognizer.MoveCellDynamicU32:
		return emitMoveCellDynamicU32, nil
	case recognizer.CopyCellDynamicU8:
		return emitCopyCellDynamicU8, nil
	case recognizer.CopyCellDynamicU32:
		return emitCopyCellDynamicU32, nil
	case recognizer.MoveCellsStaticReverse:
		return emitMoveCellsStaticReverse, nil
	case recognizer.AddU32:
		return emitAddU32, nil
	}

	return nil, fmt.Errorf("cannot transpile compound op kind %d", c.Kind)
}

func emitLoopStart(w *bufio.Writer, op *linker.Op) error {
	_, err := w.WriteString("while(m[i]){\n")
	return err
}

func emitLoopEnd(w *bufio.Writer, op *linker.Op) error {
	_, err := w.WriteString("}\n")
	return err
}

func emitBasic(c recognizer.Op) (emitter, error) {
	b := c.Basic
	switch b.Kind {
	case lexer.ChangeBy:
		return func(w *bufio.Writer, op *linker.Op) error {
			_, err := fmt.Fprintf(w, "m[i] += %d;\n", b.Delta)
			return err
		}, nil
	case lexer.Shift:
		return func(w *bufio.Writer, op *linker.Op) error {
			if b.Dist >= 0 {
				_, err := fmt.Fprintf(w, "i += %d;\n", b.Dist)
				return err
			}
			_, err := fmt.Fprintf(w, "i -= %d;\n", -b.Dist)
			return err
		}, nil
	case lexer.Input:
		return func(w *bufio.Writer, op *linker.Op) error {
			for i := uint64(0); i < b.Count; i++ {
				if _, err := w.WriteString("m[i] = get();\n"); err != nil {
					return err
				}
			}
			return nil
		}, nil
	case lexer.Output:
		return func(w *bufio.Writer, op *linker.Op) error {
			for i := uint64(0); i < b.Count; i++ {
				if _, err := w.WriteString("put(m[i]);\n"); err != nil {
					return err
				}
			}
			_, err := w.WriteString("fflush(stdout);\n")
			return err
		}, nil
	}
	return nil, fmt.Errorf("cannot transpile unprocessed loop instruction")
}
