package transpile

import (
	"bufio"
	"fmt"

	"github.com/Urethramancer/octofold/linker"
)

// The dynamic-index family is unsound with respect to tape bounds:
// the composed index is never checked, even though the interpreter
// backend rejects an out-of-range one in checked mode via
// readCell/writeCell. C has no such gate to reach for.

func emitMoveCellDynamicU8(w *bufio.Writer, op *linker.Op) error {
	offset := op.Compound.Offset
	if _, err := fmt.Fprintf(w, "m[i - %d + m[i - 1]] = m[i - 2];\n", 3+offset); err != nil {
		return err
	}
	if _, err := w.WriteString("m[i - 2] = m[i - 1];\n"); err != nil {
		return err
	}
	_, err := w.WriteString("i -= 2;\n")
	return err
}

func emitMoveCellDynamicU16(w *bufio.Writer, op *linker.Op) error {
	offset := op.Compound.Offset
	if _, err := fmt.Fprintf(w, "m[i - %d + (m[i - 2] | (m[i - 1] << 8))] = m[i - 3];\n", offset); err != nil {
		return err
	}
	if _, err := w.WriteString("m[i - 3] = m[i - 2];\n"); err != nil {
		return err
	}
	if _, err := w.WriteString("m[i - 2] = m[i - 1];\n"); err != nil {
		return err
	}
	_, err := w.WriteString("i -= 3;\n")
	return err
}

func emitMoveCellDynamicU32(w *bufio.Writer, op *linker.Op) error {
	offset := op.Compound.Offset
	if _, err := fmt.Fprintf(w, "m[i - %d + (m[i - 4] | (m[i - 3] << 8) | (m[i - 2] << 16) | (m[i - 1] << 24))] = m[i - 5];\n", offset); err != nil {
		return err
	}
	stmts := []string{
		"m[i - 5] = m[i - 4];\n",
		"m[i - 4] = m[i - 3];\n",
		"m[i - 3] = m[i - 2];\n",
		"m[i - 2] = m[i - 1];\n",
	}
	for _, s := range stmts {
		if _, err := w.WriteString(s); err != nil {
			return err
		}
	}
	_, err := w.WriteString("i -= 5;\n")
	return err
}

func emitCopyCellDynamicU8(w *bufio.Writer, op *linker.Op) error {
	offset := op.Compound.Offset
	_, err := fmt.Fprintf(w, "m[i - 1] = m[i - %d + m[i - 1]];\n", 1+offset)
	return err
}

func emitCopyCellDynamicU32(w *bufio.Writer, op *linker.Op) error {
	offset := op.Compound.Offset
	if _, err := fmt.Fprintf(w, "m[i - 4] = m[i - %d + (m[i - 4] | (m[i - 3] << 8) | (m[i - 2] << 16) | (m[i - 1] << 24))];\n", offset); err != nil {
		return err
	}
	_, err := w.WriteString("i -= 3;\n")
	return err
}

// emitMoveCellsStaticReverse relocates a run of count cells and zeroes
// the vacated source range, matching moveCellsStaticReverseHandler's
// copy-then-clear order.
func emitMoveCellsStaticReverse(w *bufio.Writer, op *linker.Op) error {
	count := op.Compound.Count
	offset := op.Compound.Offset
	if _, err := fmt.Fprintf(w, "memmove(&m[i + %d - %d], &m[i - %d], %d);\n", offset+1, count, count-1, count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "memset(&m[i - %d], 0, %d);\n", count-1, count); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "i -= %d;\n", count)
	return err
}

// emitAddU32 sums two little-endian 4-byte words under the head and
// writes the wrapped sum back into the first word's bytes, matching
// the interpreter's addU32Handler.
func emitAddU32(w *bufio.Writer, op *linker.Op) error {
	stmts := []string{
		"{\n",
		"unsigned int a = m[i - 8] | (m[i - 7] << 8) | (m[i - 6] << 16) | (m[i - 5] << 24);\n",
		"unsigned int b = m[i - 4] | (m[i - 3] << 8) | (m[i - 2] << 16) | (m[i - 1] << 24);\n",
		"unsigned int sum = a + b;\n",
		"m[i - 8] = sum & 0xff;\n",
		"m[i - 7] = (sum >> 8) & 0xff;\n",
		"m[i - 6] = (sum >> 16) & 0xff;\n",
		"m[i - 5] = (sum >> 24) & 0xff;\n",
		"}\n",
	}
	for _, s := range stmts {
		if _, err := w.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}
