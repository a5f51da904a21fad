package transpile

import (
	"bufio"

	"github.com/Urethramancer/octofold/linker"
)

func emitEquals(w *bufio.Writer, op *linker.Op) error {
	return emitTwoCellCompare(w, "==")
}

func emitNotEquals(w *bufio.Writer, op *linker.Op) error {
	return emitTwoCellCompare(w, "!=")
}

func emitTwoCellCompare(w *bufio.Writer, cOp string) error {
	if _, err := w.WriteString("m[i] = (m[i] " + cOp + " m[i + 1]);\n"); err != nil {
		return err
	}
	_, err := w.WriteString("m[++i] = 0;\n")
	return err
}

func emitLessThan(w *bufio.Writer, op *linker.Op) error         { return emitOrderedCompare(w, "<") }
func emitGreaterThan(w *bufio.Writer, op *linker.Op) error      { return emitOrderedCompare(w, ">") }
func emitLessThanEqual(w *bufio.Writer, op *linker.Op) error    { return emitOrderedCompare(w, "<=") }
func emitGreaterThanEqual(w *bufio.Writer, op *linker.Op) error { return emitOrderedCompare(w, ">=") }

func emitOrderedCompare(w *bufio.Writer, cOp string) error {
	if _, err := w.WriteString("m[i - 2] = m[i - 2] " + cOp + " m[i - 1];\n"); err != nil {
		return err
	}
	_, err := w.WriteString("memset(&m[i - 1], 0, 3);\n")
	return err
}
