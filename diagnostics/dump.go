package diagnostics

import (
	"fmt"
	"io"

	"github.com/kr/pretty"

	"github.com/Urethramancer/octofold/linker"
)

// DumpOps renders one linearized op per line in a human-readable debug
// form for --emit-ops, deferring struct formatting to kr/pretty rather
// than hand-rolling a %+v walk per compound-op kind.
func DumpOps(w io.Writer, ops []linker.Op) error {
	for i, op := range ops {
		var err error
		switch op.Kind {
		case linker.LoopStart:
			_, err = fmt.Fprintf(w, "%04d: LoopStart(%d)\n", i, op.Distance)
		case linker.LoopEnd:
			_, err = fmt.Fprintf(w, "%04d: LoopEnd(%d)\n", i, op.Distance)
		default:
			_, err = fmt.Fprintf(w, "%04d: %s %# v\n", i, op.Compound.Kind, pretty.Formatter(op.Compound))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
