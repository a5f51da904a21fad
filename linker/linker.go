package linker

import (
	"fmt"

	"github.com/Urethramancer/octofold/lexer"
	"github.com/Urethramancer/octofold/recognizer"
)

// Acc accumulates a linearized program, resolving loop distances as
// matching brackets are fed in. A stack of pending loop-start indices
// is patched in place once its matching end is seen, so neither
// bracket ever needs to be revisited.
type Acc struct {
	ops              []Op
	loopStartIndices []int
}

func NewAcc() *Acc {
	return &Acc{}
}

// Feed appends one compound op, threading raw (unrecognized) loop
// brackets through to bracket resolution and wrapping everything else
// as a Compound op.
func (a *Acc) Feed(op recognizer.Op) error {
	if isBasic(op, lexer.LoopStart) {
		a.loopStartIndices = append(a.loopStartIndices, len(a.ops))
		a.ops = append(a.ops, Op{Kind: LoopStart})
		return nil
	}
	if isBasic(op, lexer.LoopEnd) {
		n := len(a.loopStartIndices)
		if n == 0 {
			return fmt.Errorf("instruction ']' is missing match")
		}
		startIndex := a.loopStartIndices[n-1]
		a.loopStartIndices = a.loopStartIndices[:n-1]
		endIndex := len(a.ops)
		distance := endIndex - startIndex
		a.ops = append(a.ops, Op{Kind: LoopEnd, Distance: distance})
		a.ops[startIndex] = Op{Kind: LoopStart, Distance: distance}
		return nil
	}

	a.ops = append(a.ops, Op{Kind: Compound, Compound: op})
	return nil
}

// View returns the linearized program, erroring if any loop start is
// still unmatched.
func (a *Acc) View() ([]Op, error) {
	if len(a.loopStartIndices) != 0 {
		return nil, fmt.Errorf("instruction '[' is missing match")
	}
	return a.ops, nil
}

func isBasic(op recognizer.Op, kind lexer.Kind) bool {
	return op.Kind == recognizer.Basic && op.Basic.Kind == kind
}
