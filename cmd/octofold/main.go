// Command octofold runs the lexer → recognizer → linker pipeline over a
// tape-machine source file, then either interprets the result, transpiles
// it to C, or dumps an intermediate stage for debugging.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/Urethramancer/octofold/diagnostics"
	"github.com/Urethramancer/octofold/lexer"
	"github.com/Urethramancer/octofold/linker"
	"github.com/Urethramancer/octofold/recognizer"
	"github.com/Urethramancer/octofold/transpile"
	"github.com/Urethramancer/octofold/vm"
)

var (
	emitOps        = flag.String("emit-ops", "", "Dump the compound-op stream to FILE and suppress execution.")
	emitSimplified = flag.String("emit-simplified", "", "Dump the post-coalesce basic-op stream to FILE and suppress execution.")
	boundsChecks   = flag.Bool("bounds-checks", false, "Run the interpreter in checked mode.")
	transpileC     = flag.String("transpile-c", "", "Emit a C program to OUT and suppress execution.")
)

func main() {
	os.Exit(run1())
}

// run1 parses flags and runs the pipeline, returning a process exit code.
// Split out from main so the testscript harness in main_test.go can invoke
// it as a registered subcommand without an extra process indirection.
func run1() int {
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: octofold [--emit-ops FILE] [--emit-simplified FILE] [--bounds-checks] [--transpile-c OUT] <program-file>")
		flag.PrintDefaults()
		return 1
	}

	if err := run(flag.Arg(0)); err != nil {
		glog.Errorf("octofold: %v", err)
		return 1
	}
	return 0
}

func run(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	glog.V(1).Infof("read %s bytes from %s", diagnostics.TapeSize(len(source)), path)

	simplified, compoundOps, err := pipeline(source, *emitSimplified != "")
	if err != nil {
		return err
	}

	if *emitSimplified != "" {
		return writeFile(*emitSimplified, func(w *bufio.Writer) error {
			for i, op := range simplified {
				if i > 0 {
					if _, err := w.WriteString(" "); err != nil {
						return err
					}
				}
				if _, err := w.WriteString(op.String()); err != nil {
					return err
				}
			}
			_, err := w.WriteString("\n")
			return err
		})
	}

	program, err := linearize(compoundOps)
	if err != nil {
		return err
	}
	glog.V(1).Infof("linearized %s ops", diagnostics.OpCount(len(program)))

	if *emitOps != "" {
		return writeFile(*emitOps, func(w *bufio.Writer) error {
			return diagnostics.DumpOps(w, program)
		})
	}

	if *transpileC != "" {
		return writeFile(*transpileC, func(w *bufio.Writer) error {
			return transpile.Program(program, w)
		})
	}

	machine := vm.New(program, *boundsChecks, os.Stdin, os.Stdout)
	if err := machine.Run(); err != nil {
		if panicErr, ok := err.(*vm.PanicError); ok {
			glog.Infof("program trapped: %v", panicErr)
			return nil
		}
		return err
	}
	return nil
}

// pipeline runs the source through the lexer and the recognizer. When
// keepSimplified is set it also records the coalesced basic-op stream,
// which --emit-simplified dumps; run returns after that dump, so the
// other output flags have no effect alongside it.
func pipeline(source []byte, keepSimplified bool) ([]lexer.Op, []recognizer.Op, error) {
	acc := lexer.NewAcc()
	r := recognizer.New()

	var simplified []lexer.Op
	var compound []recognizer.Op

	feedBasic := func(op lexer.Op) {
		if keepSimplified {
			simplified = append(simplified, op)
		}
		if cop, ok := r.Feed(op); ok {
			compound = append(compound, cop)
		}
	}

	for i := 0; i < len(source); i++ {
		op, ok, err := acc.FeedByte(source[i])
		if err != nil {
			return nil, nil, fmt.Errorf("lexing byte %d: %w", i, err)
		}
		if ok {
			feedBasic(op)
		}
		for {
			cont, ok := acc.Continued()
			if !ok {
				break
			}
			feedBasic(cont)
		}
	}
	if op, ok := acc.Finalize(); ok {
		feedBasic(op)
	}
	for {
		cont, ok := acc.Continued()
		if !ok {
			break
		}
		feedBasic(cont)
	}
	compound = append(compound, r.Drain()...)

	return simplified, compound, nil
}

func linearize(compoundOps []recognizer.Op) ([]linker.Op, error) {
	acc := linker.NewAcc()
	for _, op := range compoundOps {
		if err := acc.Feed(op); err != nil {
			return nil, err
		}
	}
	return acc.View()
}

func writeFile(path string, fn func(w *bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return err
	}
	return w.Flush()
}
