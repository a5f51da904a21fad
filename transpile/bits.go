package transpile

import (
	"bufio"

	"github.com/Urethramancer/octofold/linker"
)

func emitBitAnd(w *bufio.Writer, op *linker.Op) error {
	if _, err := w.WriteString("m[i - 7] &= m[i - 6];\n"); err != nil {
		return err
	}
	if _, err := w.WriteString("m[i - 6] = 0;\n"); err != nil {
		return err
	}
	_, err := w.WriteString("i += 2;\n")
	return err
}

func emitBitNeg(w *bufio.Writer, op *linker.Op) error {
	if _, err := w.WriteString("m[i] = ~m[i];\n"); err != nil {
		return err
	}
	_, err := w.WriteString("m[++i] = 0;\n")
	return err
}
