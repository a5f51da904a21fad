package recognizer

import "github.com/Urethramancer/octofold/lexer"

// tryMoveAdd recognizes the `[->+<]`-shaped move-add idiom in either
// token order ("shift-inc-shift-dec" or "dec-shift-inc-shift") and, on
// a match, immediately inspects the new suffix for the MoveSet and
// Dupe cascades. Cascades fire only here: MoveSet and Dupe are not
// entries in the pattern table, so settle never tries them on its own.
func tryMoveAdd(w *window) bool {
	if tryMoveAddFormA(w) || tryMoveAddFormB(w) {
		tryMoveSetCascade(w)
		tryDupeCascade(w)
		return true
	}
	return false
}

func tryMoveAddFormA(w *window) bool {
	tail := w.tail(6)
	if tail == nil {
		return false
	}
	if _, ok := asBasic(tail[0], lexer.LoopStart); !ok {
		return false
	}
	toward, ok := asBasic(tail[1], lexer.Shift)
	if !ok {
		return false
	}
	if inc, ok := asBasic(tail[2], lexer.ChangeBy); !ok || inc.Delta != 1 {
		return false
	}
	back, ok := asBasic(tail[3], lexer.Shift)
	if !ok {
		return false
	}
	if dec, ok := asBasic(tail[4], lexer.ChangeBy); !ok || dec.Delta != 255 {
		return false
	}
	if _, ok := asBasic(tail[5], lexer.LoopEnd); !ok {
		return false
	}
	if toward.Dist != -back.Dist {
		return false
	}
	offset := toward.Dist
	w.truncateBack(w.len() - 6)
	w.pushBack(Op{Kind: MoveAdd, Offset: offset})
	return true
}

func tryMoveAddFormB(w *window) bool {
	tail := w.tail(6)
	if tail == nil {
		return false
	}
	if _, ok := asBasic(tail[0], lexer.LoopStart); !ok {
		return false
	}
	if dec, ok := asBasic(tail[1], lexer.ChangeBy); !ok || dec.Delta != 255 {
		return false
	}
	toward, ok := asBasic(tail[2], lexer.Shift)
	if !ok {
		return false
	}
	if inc, ok := asBasic(tail[3], lexer.ChangeBy); !ok || inc.Delta != 1 {
		return false
	}
	back, ok := asBasic(tail[4], lexer.Shift)
	if !ok {
		return false
	}
	if _, ok := asBasic(tail[5], lexer.LoopEnd); !ok {
		return false
	}
	if toward.Dist != -back.Dist {
		return false
	}
	offset := toward.Dist
	w.truncateBack(w.len() - 6)
	w.pushBack(Op{Kind: MoveAdd, Offset: offset})
	return true
}

// tryMoveAdd2 recognizes the two-destination move-add idiom.
func tryMoveAdd2(w *window) bool {
	tail := w.tail(8)
	if tail == nil {
		return false
	}
	if _, ok := asBasic(tail[0], lexer.LoopStart); !ok {
		return false
	}
	t1, ok := asBasic(tail[1], lexer.Shift)
	if !ok {
		return false
	}
	if inc, ok := asBasic(tail[2], lexer.ChangeBy); !ok || inc.Delta != 1 {
		return false
	}
	t2, ok := asBasic(tail[3], lexer.Shift)
	if !ok {
		return false
	}
	if inc, ok := asBasic(tail[4], lexer.ChangeBy); !ok || inc.Delta != 1 {
		return false
	}
	back, ok := asBasic(tail[5], lexer.Shift)
	if !ok {
		return false
	}
	if dec, ok := asBasic(tail[6], lexer.ChangeBy); !ok || dec.Delta != 255 {
		return false
	}
	if _, ok := asBasic(tail[7], lexer.LoopEnd); !ok {
		return false
	}
	if t1.Dist+t2.Dist != -back.Dist {
		return false
	}
	w.truncateBack(w.len() - 8)
	w.pushBack(Op{Kind: MoveAdd2, Offset: t1.Dist, Offset2: t1.Dist + t2.Dist})
	return true
}

// tryMoveSetCascade recognizes Shift(T), Zero, Shift(B), MoveAdd(m)
// with T >= |B| and m == -B: the destination was zeroed first, so the
// add degenerates to a plain set. Leaves a residual Shift(T+B) when T
// overshoots the zeroed cell.
func tryMoveSetCascade(w *window) bool {
	tail := w.tail(4)
	if tail == nil {
		return false
	}
	toward, ok := asBasic(tail[0], lexer.Shift)
	if !ok {
		return false
	}
	if tail[1].Kind != Zero {
		return false
	}
	back, ok := asBasic(tail[2], lexer.Shift)
	if !ok {
		return false
	}
	if tail[3].Kind != MoveAdd {
		return false
	}
	m := tail[3].Offset
	absBack := back.Dist
	if absBack < 0 {
		absBack = -absBack
	}
	if toward.Dist < absBack || m != -back.Dist {
		return false
	}

	w.truncateBack(w.len() - 4)
	if residual := toward.Dist + back.Dist; residual != 0 {
		w.pushBack(basicOp(lexer.Op{Kind: lexer.Shift, Dist: residual}))
	}
	w.pushBack(Op{Kind: MoveSet, Offset: m})
	return true
}

// tryDupeCascade recognizes ZeroAdvance(a), Zero, Shift(-t),
// MoveAdd2(o1, o2), Shift(t), MoveAdd(t), a scratch-duplicated copy,
// and collapses it to (optional residual ZeroAdvance(a-1)) + Dupe(t).
func tryDupeCascade(w *window) bool {
	tail := w.tail(6)
	if tail == nil {
		return false
	}
	if tail[0].Kind != ZeroAdvance {
		return false
	}
	a := tail[0].Count
	if tail[1].Kind != Zero {
		return false
	}
	negT, ok := asBasic(tail[2], lexer.Shift)
	if !ok {
		return false
	}
	if tail[3].Kind != MoveAdd2 {
		return false
	}
	t, ok := asBasic(tail[4], lexer.Shift)
	if !ok {
		return false
	}
	if tail[5].Kind != MoveAdd {
		return false
	}

	moveAddT := tail[5].Offset
	if t.Dist != moveAddT || negT.Dist != -t.Dist {
		return false
	}
	if tail[3].Offset2 != moveAddT {
		return false
	}

	w.truncateBack(w.len() - 6)
	if a > 1 {
		w.pushBack(Op{Kind: ZeroAdvance, Count: a - 1})
	}
	w.pushBack(Op{Kind: Dupe, Offset: moveAddT})
	return true
}
