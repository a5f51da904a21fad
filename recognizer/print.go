package recognizer

import "github.com/Urethramancer/octofold/lexer"

// tryPrintStatic recognizes Set(c), Output(k) -> PrintStatic([c; k]),
// plus two continuation forms: a fresh
// PrintStatic immediately following an existing one merges into it
// instead of starting a new compound op, and a ChangeBy sandwiched
// between a PrintStatic and an Output extends it by the shifted byte.
func tryPrintStatic(w *window) bool {
	if tryPrintStaticChangeByContinuation(w) {
		return true
	}
	return tryPrintStaticBase(w)
}

// PrintStatic(s), ChangeBy(delta), Output(k) -> extend s by k copies of
// the last byte of s shifted by delta.
func tryPrintStaticChangeByContinuation(w *window) bool {
	tail := w.tail(3)
	if tail == nil || tail[0].Kind != PrintStatic {
		return false
	}
	cb, ok := asBasic(tail[1], lexer.ChangeBy)
	if !ok {
		return false
	}
	out, ok := asBasic(tail[2], lexer.Output)
	if !ok {
		return false
	}

	s := tail[0].Bytes
	last := s[len(s)-1] + cb.Delta
	extended := appendRepeat(s, last, out.Count)
	w.truncateBack(w.len() - 3)
	w.pushBack(Op{Kind: PrintStatic, Bytes: extended})
	return true
}

// Set(c), Output(k) -> PrintStatic([c; k]); if the op two back is
// already PrintStatic(s), merge into it instead, repeating s's last
// byte unchanged rather than starting a new run at c.
func tryPrintStaticBase(w *window) bool {
	tail := w.tail(2)
	if tail == nil || tail[0].Kind != Set {
		return false
	}
	out, ok := asBasic(tail[1], lexer.Output)
	if !ok {
		return false
	}
	c := tail[0].Value
	k := out.Count

	if prior := w.tail(3); prior != nil && prior[0].Kind == PrintStatic {
		s := prior[0].Bytes
		extended := appendRepeat(s, s[len(s)-1], k)
		w.truncateBack(w.len() - 3)
		w.pushBack(Op{Kind: PrintStatic, Bytes: extended})
		return true
	}

	w.truncateBack(w.len() - 2)
	w.pushBack(Op{Kind: PrintStatic, Bytes: appendRepeat(nil, c, k)})
	return true
}

func appendRepeat(base []byte, b byte, k uint64) []byte {
	out := make([]byte, 0, len(base)+int(k))
	out = append(out, base...)
	for i := uint64(0); i < k; i++ {
		out = append(out, b)
	}
	return out
}
