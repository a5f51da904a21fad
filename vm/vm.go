// Package vm is the interpreter backend (E): it walks the linker's
// resolved op stream and executes it directly against a tape of bytes,
// the same fetch-decode-execute shape the cpu package's Execute uses
// for M68k opcodes, adapted to a flat instruction stream instead of an
// in-memory byte-code image.
package vm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/Urethramancer/octofold/linker"
)

// CellCount is the fixed tape size.
const CellCount = 25_000_000

// handler executes one linearized op against vm, advancing vm.instrI
// itself: a branch handler is responsible for its own PC update
// rather than leaving it to a uniform fetch loop.
type handler func(vm *VM, op *linker.Op) error

// VM is the tape machine: a byte tape, a head position, and the
// resolved program it is executing.
type VM struct {
	Checked bool // enables bounds-checked cell access

	cells  []byte
	cellI  int
	instrI int

	program  []linker.Op
	handlers []handler

	in  *bufio.Reader
	out *bufio.Writer
}

// New builds a VM ready to run program. Checked enables the bounds-
// checked cell accessors; stdin/stdout are wrapped in buffered
// readers/writers so output instructions don't syscall per byte.
func New(program []linker.Op, checked bool, stdin io.Reader, stdout io.Writer) *VM {
	vm := &VM{
		Checked:  checked,
		cells:    make([]byte, CellCount),
		program:  program,
		handlers: make([]handler, len(program)),
		in:       bufio.NewReader(stdin),
		out:      bufio.NewWriter(stdout),
	}
	for i, op := range program {
		vm.handlers[i] = handlerFor(op)
	}
	return vm
}

// PanicError is returned when the program enters a panic-trap loop: a
// detectable infinite loop the recognizer folded at compile time
// rather than letting it spin at run time.
type PanicError struct {
	Value  byte
	InstrI int
	CellI  int
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("program entered panic loop with error code %d, instr_i = %d, cell_i = %d", e.Value, e.InstrI, e.CellI)
}

// Run executes the program to completion, flushing buffered output
// before returning. A *PanicError return means the program intentionally
// trapped; any other error is a bounds violation in checked mode or a
// failed write to the output.
func (vm *VM) Run() (err error) {
	defer func() {
		if ferr := vm.out.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	for vm.instrI < len(vm.program) {
		op := &vm.program[vm.instrI]
		if runErr := vm.handlers[vm.instrI](vm, op); runErr != nil {
			if panicErr, ok := runErr.(*PanicError); ok {
				vm.dumpPanic(panicErr)
			}
			return runErr
		}
	}
	return nil
}

func (vm *VM) dumpPanic(e *PanicError) {
	glog.Errorf("[PANIC] %v", e)
	glog.Error("memory before panic:")
	const forward, back = 20, 20
	start := 0
	if e.CellI >= back {
		start = e.CellI - back
	}
	end := e.CellI + forward
	if end > len(vm.cells) {
		end = len(vm.cells)
	}
	for i := start; i < end; i++ {
		glog.Errorf("cell %d is %d", i, vm.cells[i])
	}
}
