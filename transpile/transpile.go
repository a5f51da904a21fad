// Package transpile is the C transpiler backend (T): it walks the same
// linearized op stream the vm package interprets and emits an
// equivalent, freestanding C program instead of executing it directly.
// Every emitted statement mirrors the vm package's handler for the same
// op one for one, so the two backends stay semantically identical.
package transpile

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Urethramancer/octofold/linker"
)

// CellCount matches vm.CellCount; duplicated here (rather than
// imported) because the constant belongs to the tape model both
// backends share conceptually, not to either backend's package.
const CellCount = 25_000_000

// emitter writes one linearized op's C statements.
type emitter func(w *bufio.Writer, op *linker.Op) error

// Program writes a complete, compilable C program implementing
// ops to w.
func Program(ops []linker.Op, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(preamble); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "unsigned char *m = malloc(%d);\n", CellCount); err != nil {
		return err
	}
	if _, err := bw.WriteString("size_t i = 0;\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "memset(m, 0, %d);\n", CellCount); err != nil {
		return err
	}

	for i := range ops {
		emit, err := emitterFor(ops[i])
		if err != nil {
			return err
		}
		if err := emit(bw, &ops[i]); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString(postamble); err != nil {
		return err
	}
	return bw.Flush()
}

const preamble = `#include <stdio.h>
#include <stdlib.h>
#include <string.h>
static inline void put(unsigned char c){ putchar((char) c); }
static inline unsigned char get(void){ int c = getc(stdin); return c != EOF ? (unsigned char) c : 0; }
int main(){
`

const postamble = `free(m);
return 0;
}
`
