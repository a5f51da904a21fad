package transpile

import (
	"bufio"
	"fmt"

	"github.com/Urethramancer/octofold/linker"
)

func emitPrintStatic(w *bufio.Writer, op *linker.Op) error {
	for _, b := range op.Compound.Bytes {
		if _, err := fmt.Fprintf(w, "put(%d);\n", b); err != nil {
			return err
		}
	}
	if _, err := w.WriteString("fflush(stdout);\n"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "m[i] = %d;\n", op.Compound.Bytes[len(op.Compound.Bytes)-1])
	return err
}
