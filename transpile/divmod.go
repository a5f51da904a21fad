package transpile

import (
	"bufio"
	"fmt"

	"github.com/Urethramancer/octofold/linker"
)

// The reconstructed divisor line subtracts the remainder (m[i], not
// m[i+1]/the quotient): head-1 ends up holding d - (n mod d), the
// same value the interpreter backend computes.
func emitDivMod(w *bufio.Writer, op *linker.Op) error {
	stmts := []string{
		"if(m[i - 1] == 0){\n",
		"m[i] = 0;\n",
		"m[i + 1] = 0;\n",
		"} else {\n",
		"m[i] = m[i - 2] % m[i - 1];\n",
		"m[i + 1] = m[i - 2] / m[i - 1];\n",
		"}\n",
		"m[i - 1] = m[i - 1] - m[i];\n",
		"m[i - 2] = 0;\n",
		"m[i + 2] = 0;\n",
		"m[i + 3] = 0;\n",
	}
	for _, s := range stmts {
		if _, err := w.WriteString(s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "i += %d;\n", op.Compound.Shift)
	return err
}
