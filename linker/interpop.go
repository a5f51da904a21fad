// Package linker is the Linearizer/Loop Linker (X): it flattens the
// recognizer's compound-op stream into a single indexable slice and
// resolves every loop bracket pair to a jump distance, so neither the
// interpreter backend nor the C transpiler needs a bracket-matching
// stack of its own at run time.
package linker

import "github.com/Urethramancer/octofold/recognizer"

// Kind distinguishes a linearized op from the two loop-bracket markers.
type Kind int

const (
	Compound Kind = iota
	LoopStart
	LoopEnd
)

// Op is one entry in the linearized program. Distance is the number of
// ops to jump, in the direction implied by Kind, when the branch is
// taken.
type Op struct {
	Kind     Kind
	Compound recognizer.Op
	Distance int
}
