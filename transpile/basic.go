package transpile

import (
	"bufio"
	"fmt"

	"github.com/Urethramancer/octofold/linker"
)

func emitZero(w *bufio.Writer, op *linker.Op) error {
	_, err := w.WriteString("m[i] = 0;\n")
	return err
}

func emitZeroAdvance(w *bufio.Writer, op *linker.Op) error {
	count := op.Compound.Count
	if _, err := fmt.Fprintf(w, "memset(&m[i], 0, %d);\n", count); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "i += %d;\n", count)
	return err
}

func emitZeroRetreat(w *bufio.Writer, op *linker.Op) error {
	count := op.Compound.Count
	if _, err := fmt.Fprintf(w, "memset(&m[i - %d], 0, %d);\n", count-1, count); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "i -= %d;\n", count)
	return err
}

func emitSet(w *bufio.Writer, op *linker.Op) error {
	_, err := fmt.Fprintf(w, "m[i] = %d;\n", op.Compound.Value)
	return err
}

func emitPanic(w *bufio.Writer, op *linker.Op) error {
	if _, err := fmt.Fprintf(w, "m[i] = %d;\n", op.Compound.Value); err != nil {
		return err
	}
	_, err := w.WriteString("exit(0);\n")
	return err
}
