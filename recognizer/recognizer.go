package recognizer

import "github.com/Urethramancer/octofold/lexer"

// pattern is one entry in the priority-ordered idiom table: try(w)
// attempts the match against the window's current tail, mutating it
// and returning true on success. Patterns are tried in table order and
// the first match wins.
type pattern struct {
	name string
	try  func(w *window) bool
}

// table holds the patterns in priority order: traps before
// the zero idiom they'd otherwise be mistaken for, zero-and-its-runs
// before anything that depends on a prior Zero, then the comparison
// and logical-shift idioms, the move-add family (with its own
// cascades), the bitwise idioms, divmod, print, and finally the
// dynamic-index family which only ever matches a literal marker loop
// nothing else produces.
var table = []pattern{
	{"panic", tryPanic},
	{"zero", tryZero},
	{"zero-advance-retreat", tryZeroAdvanceRetreat},
	{"set", trySet},
	{"equals", tryEquals},
	{"not-equals", tryNotEquals},
	{"less-than", tryLessThan},
	{"greater-than", tryGreaterThan},
	{"less-than-equal", tryLessThanEqual},
	{"greater-than-equal", tryGreaterThanEqual},
	{"shift-left-logical", tryShiftLeftLogical},
	{"shift-right-logical", tryShiftRightLogical},
	{"move-add", tryMoveAdd},
	{"move-add2", tryMoveAdd2},
	{"bit-and", tryBitAnd},
	{"bit-neg", tryBitNeg},
	{"divmod", tryWellBehavedDivMod},
	{"print-static", tryPrintStatic},
	{"move-cell-dynamic-u8", tryMoveCellDynamicU8},
	{"move-cell-dynamic-u16", tryMoveCellDynamicU16},
	{"move-cell-dynamic-u32", tryMoveCellDynamicU32},
	{"copy-cell-dynamic-u8", tryCopyCellDynamicU8},
	{"copy-cell-dynamic-u32", tryCopyCellDynamicU32},
	{"move-cells-static-reverse", tryMoveCellsStaticReverse},
	{"add-u32", tryAddU32},
}

// Recognizer is R: it consumes the lexer's basic-op stream and emits a
// stream of recognized compound ops, holding at most windowSize
// unresolved ops at a time.
type Recognizer struct {
	w window
}

func New() *Recognizer { return &Recognizer{} }

// Feed pushes one basic op into the window, runs the pattern table to
// a fixpoint (a match may enable another match on the rewritten
// suffix, e.g. MoveAdd's own cascades), and yields the oldest op once
// the window exceeds its bound.
func (r *Recognizer) Feed(op lexer.Op) (Op, bool) {
	r.w.pushBack(basicOp(op))
	r.settle()
	if r.w.len() > windowSize {
		out, _ := r.w.popFront()
		return out, true
	}
	return Op{}, false
}

// Drain flushes the remaining window, oldest first, once the basic-op
// stream has ended.
func (r *Recognizer) Drain() []Op {
	var out []Op
	for {
		op, ok := r.w.popFront()
		if !ok {
			break
		}
		out = append(out, op)
	}
	return out
}

// settle runs the pattern table against the window's tail until no
// pattern matches.
func (r *Recognizer) settle() {
	for {
		matched := false
		for _, p := range table {
			if p.try(&r.w) {
				matched = true
				break
			}
		}
		if !matched {
			return
		}
	}
}
