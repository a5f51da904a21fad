package transpile

import (
	"bufio"
	"fmt"

	"github.com/Urethramancer/octofold/linker"
)

func emitMoveAdd(w *bufio.Writer, op *linker.Op) error {
	if _, err := fmt.Fprintf(w, "m[i + %d] += m[i];\n", op.Compound.Offset); err != nil {
		return err
	}
	_, err := w.WriteString("m[i] = 0;\n")
	return err
}

func emitMoveSet(w *bufio.Writer, op *linker.Op) error {
	if _, err := fmt.Fprintf(w, "m[i + %d] = m[i];\n", op.Compound.Offset); err != nil {
		return err
	}
	_, err := w.WriteString("m[i] = 0;\n")
	return err
}

func emitMoveAdd2(w *bufio.Writer, op *linker.Op) error {
	if _, err := fmt.Fprintf(w, "m[i + %d] += m[i];\n", op.Compound.Offset); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "m[i + %d] += m[i];\n", op.Compound.Offset2); err != nil {
		return err
	}
	_, err := w.WriteString("m[i] = 0;\n")
	return err
}

func emitDupe(w *bufio.Writer, op *linker.Op) error {
	if _, err := fmt.Fprintf(w, "m[i] = m[i + %d];\n", op.Compound.Offset); err != nil {
		return err
	}
	_, err := w.WriteString("m[++i] = 0;\n")
	return err
}
