package recognizer

import "github.com/Urethramancer/octofold/lexer"

// divModPattern is the well-behaved-divmod idiom's fixed body as it
// looks after the earlier table entries have had their way with it:
// the four advancing zero clears arrive as ZeroAdvance(3) + Zero
// (handled as this pattern's leading wildcard so a longer surrounding
// zero run still matches), and the two inner `[-<+>]` loops arrive
// already folded to MoveAdd(-1). Only the final Shift carries a
// parameter (the net head movement, captured as the idiom's wildcard
// tail token). Everything in between is load-bearing and matched
// token for token.
var divModPattern = []rawTok{
	tZero(), tShift(-5),
	tLoopStart(),
	tChangeBy(255),
	tShift(1),
	tLoopStart(),
	tChangeBy(255),
	tShift(1), tChangeBy(1), tShift(2),
	tLoopEnd(),
	tShift(1),
	tLoopStart(),
	tShift(-2), tChangeBy(1), tShift(2),
	tMoveAdd(-1),
	tShift(1), tChangeBy(1), tShift(2),
	tLoopEnd(),
	tShift(-5),
	tLoopEnd(),
	tShift(1),
	tLoopStart(),
	tShift(3),
	tLoopEnd(),
	tShift(1),
	tLoopStart(),
	tMoveAdd(-1),
	tShift(1), tChangeBy(1), tShift(2),
	tLoopEnd(),
}

// tryWellBehavedDivMod matches ZeroAdvance(>=3), divModPattern, and
// one wildcard Shift carrying the idiom's net post-op head movement.
// A zero run longer than the idiom's own three advancing clears leaves
// its surplus behind as a residual ZeroAdvance.
func tryWellBehavedDivMod(w *window) bool {
	total := 1 + len(divModPattern) + 1
	tail := w.tail(total)
	if tail == nil {
		return false
	}
	if tail[0].Kind != ZeroAdvance || tail[0].Count < 3 {
		return false
	}
	if !matchSlice(tail[1:1+len(divModPattern)], divModPattern) {
		return false
	}
	trailingShift, ok := asBasic(tail[len(tail)-1], lexer.Shift)
	if !ok {
		return false
	}
	surplus := tail[0].Count - 3

	// The trailing wildcard and a constant net offset of 3 (5 for the
	// scratch unwind, -2 for the dance's own shift) fold into one
	// post-op head movement.
	w.truncateBack(w.len() - total)
	if surplus > 0 {
		w.pushBack(Op{Kind: ZeroAdvance, Count: surplus})
	}
	w.pushBack(Op{Kind: DivMod, Shift: trailingShift.Dist + 3})
	return true
}
