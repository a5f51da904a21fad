package recognizer

import "github.com/Urethramancer/octofold/lexer"

// tryPanic recognizes Set(v) [ ] with v != 0: the program entered a
// trap. A ChangeBy that opens the stream acts on a freshly zeroed
// cell, so ChangeBy(v) [ ] at the very start of the program folds the
// same way. Must be tried before tryZero, since an empty loop body
// here is not the zero-cell idiom.
func tryPanic(w *window) bool {
	tail := w.tail(3)
	if tail == nil {
		return false
	}
	if _, ok := asBasic(tail[1], lexer.LoopStart); !ok {
		return false
	}
	if _, ok := asBasic(tail[2], lexer.LoopEnd); !ok {
		return false
	}

	var value byte
	if tail[0].Kind == Set && tail[0].Value != 0 {
		value = tail[0].Value
	} else if cb, ok := asBasic(tail[0], lexer.ChangeBy); ok && cb.Delta != 0 && w.pristine() && w.len() == 3 {
		value = cb.Delta
	} else {
		return false
	}

	w.truncateBack(w.len() - 3)
	w.pushBack(Op{Kind: Panic, Value: value})
	return true
}

// tryZero recognizes [ ChangeBy(1|255) ] and collapses to Zero,
// dropping the new Zero entirely if the preceding op is already Zero.
func tryZero(w *window) bool {
	tail := w.tail(3)
	if tail == nil {
		return false
	}
	if _, ok := asBasic(tail[0], lexer.LoopStart); !ok {
		return false
	}
	cb, ok := asBasic(tail[1], lexer.ChangeBy)
	if !ok || (cb.Delta != 1 && cb.Delta != 255) {
		return false
	}
	if _, ok := asBasic(tail[2], lexer.LoopEnd); !ok {
		return false
	}
	w.truncateBack(w.len() - 3)
	if back, ok := w.back(); ok && back.Kind == Zero {
		return true
	}
	w.pushBack(Op{Kind: Zero})
	return true
}

// tryZeroAdvanceRetreat recognizes Zero, Shift(+-1) and merges into a
// run, incrementing an existing ZeroAdvance/ZeroRetreat in place.
func tryZeroAdvanceRetreat(w *window) bool {
	tail := w.tail(2)
	if tail == nil || tail[0].Kind != Zero {
		return false
	}
	sh, ok := asBasic(tail[1], lexer.Shift)
	if !ok || (sh.Dist != 1 && sh.Dist != -1) {
		return false
	}

	w.truncateBack(w.len() - 2)

	forward := sh.Dist == 1
	wantKind := ZeroRetreat
	if forward {
		wantKind = ZeroAdvance
	}
	if back, ok := w.back(); ok && back.Kind == wantKind {
		back.Count++
		return true
	}
	w.pushBack(Op{Kind: wantKind, Count: 1})
	return true
}

// trySet recognizes Zero, ChangeBy(v) -> Set(v), and collapses
// consecutive Sets to keep only the last.
func trySet(w *window) bool {
	tail := w.tail(2)
	if tail == nil {
		return false
	}

	if tail[0].Kind == Zero {
		if cb, ok := asBasic(tail[1], lexer.ChangeBy); ok {
			w.truncateBack(w.len() - 2)
			w.pushBack(Op{Kind: Set, Value: cb.Delta})
			return true
		}
	}

	if tail[0].Kind == Set && tail[1].Kind == Set {
		value := tail[1].Value
		w.truncateBack(w.len() - 2)
		w.pushBack(Op{Kind: Set, Value: value})
		return true
	}

	return false
}
