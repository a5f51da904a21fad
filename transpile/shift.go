package transpile

import (
	"bufio"

	"github.com/Urethramancer/octofold/linker"
)

func emitShiftLeftLogical(w *bufio.Writer, op *linker.Op) error {
	if _, err := w.WriteString("m[i - 2] = (m[i - 1] >= 8) ? 0 : m[i - 2] << m[i - 1];\n"); err != nil {
		return err
	}
	if _, err := w.WriteString("m[i - 1] = 0;\n"); err != nil {
		return err
	}
	_, err := w.WriteString("m[i--] = 0;\n")
	return err
}

func emitShiftRightLogical(w *bufio.Writer, op *linker.Op) error {
	if _, err := w.WriteString("m[i - 2] = (m[i - 1] >= 8) ? 0 : m[i - 2] >> m[i - 1];\n"); err != nil {
		return err
	}
	_, err := w.WriteString("memset(&m[--i], 0, 5);\n")
	return err
}
