package recognizer

import "github.com/Urethramancer/octofold/lexer"

// rawTok is one fixed token in a literal (no-wildcard) idiom pattern:
// either a specific basic-op shape or an already-folded compound op.
// Long idioms contain sub-sequences that earlier patterns in the table
// fold on their own (zero runs, single-destination move-adds), so the
// literal patterns here describe the window as it actually looks by
// the time the idiom's last token arrives, folds included.
type rawTok struct {
	kind  lexer.Kind
	delta byte
	dist  int64
	fold  Kind // non-Basic: match a folded compound op of this kind
}

func tChangeBy(delta byte) rawTok { return rawTok{kind: lexer.ChangeBy, delta: delta} }
func tShift(dist int64) rawTok    { return rawTok{kind: lexer.Shift, dist: dist} }
func tLoopStart() rawTok          { return rawTok{kind: lexer.LoopStart} }
func tLoopEnd() rawTok            { return rawTok{kind: lexer.LoopEnd} }
func tZero() rawTok               { return rawTok{fold: Zero} }
func tMoveAdd(off int64) rawTok   { return rawTok{fold: MoveAdd, dist: off} }

// matchLiteral reports whether the window's tail matches toks exactly,
// token for token.
func matchLiteral(w *window, toks []rawTok) bool {
	tail := w.tail(len(toks))
	if tail == nil {
		return false
	}
	return matchSlice(tail, toks)
}

// matchSlice reports whether ops matches toks exactly, token for
// token. Used directly by idioms that need to match a literal run
// bracketed by their own wildcard tokens (e.g. divmod).
func matchSlice(ops []Op, toks []rawTok) bool {
	for i, tok := range toks {
		if tok.fold != Basic {
			if ops[i].Kind != tok.fold {
				return false
			}
			if tok.fold == MoveAdd && ops[i].Offset != tok.dist {
				return false
			}
			continue
		}
		switch tok.kind {
		case lexer.ChangeBy:
			cb, ok := asBasic(ops[i], lexer.ChangeBy)
			if !ok || cb.Delta != tok.delta {
				return false
			}
		case lexer.Shift:
			sh, ok := asBasic(ops[i], lexer.Shift)
			if !ok || sh.Dist != tok.dist {
				return false
			}
		case lexer.LoopStart:
			if _, ok := asBasic(ops[i], lexer.LoopStart); !ok {
				return false
			}
		case lexer.LoopEnd:
			if _, ok := asBasic(ops[i], lexer.LoopEnd); !ok {
				return false
			}
		}
	}
	return true
}

// eightBitDance is the shared scratch-cell shape used by the fixed,
// parameterless compare/shift/bitwise idioms (Equals, NotEquals, the
// four ordered comparisons, the two logical shifts, BitAnd, BitNeg).
// Each idiom is this same nine-token dance distinguished only by its
// marker delta, keeping every pattern in this family unambiguous and
// table-driven. The second half of the raw dance is a plain
// `[<<<+>>>-]` move-add, which folds to MoveAdd(-3) before this
// pattern's final Shift arrives, so that is what the literal expects.
func eightBitDance(marker byte) []rawTok {
	return []rawTok{
		tLoopStart(),
		tShift(2), tChangeBy(marker), tShift(-2),
		tChangeBy(255),
		tLoopEnd(),
		tShift(3),
		tMoveAdd(-3),
		tShift(-3),
	}
}
