package recognizer

import "github.com/Urethramancer/octofold/lexer"

// The dynamic-index family reads the cells under the head as a
// runtime index into the tape rather than a compile-time offset. Each
// idiom is a short marker-tagged loop, and all but AddU32 are followed
// by a wildcard Shift
// carrying the base offset the dynamic access is relative to, keeping
// the shape of the rest of this package (a marker distinguishes
// idioms, a trailing Shift is the only captured parameter).
const (
	markerMoveU8  = 40
	markerMoveU16 = 41
	markerMoveU32 = 42
	markerCopyU8  = 43
	markerCopyU32 = 44
	markerReverse = 45
	markerAddU32  = 46
)

// tryAddU32 matches a bare marker loop with no wildcard parameter: two
// fixed 4-byte little-endian words under the head are summed in place.
func tryAddU32(w *window) bool {
	tail := w.tail(3)
	if tail == nil {
		return false
	}
	if _, ok := asBasic(tail[0], lexer.LoopStart); !ok {
		return false
	}
	cb, ok := asBasic(tail[1], lexer.ChangeBy)
	if !ok || cb.Delta != markerAddU32 {
		return false
	}
	if _, ok := asBasic(tail[2], lexer.LoopEnd); !ok {
		return false
	}

	w.truncateBack(w.len() - 3)
	w.pushBack(Op{Kind: AddU32})
	return true
}

func tryMoveCellDynamicU8(w *window) bool {
	return tryDynamicOffset(w, markerMoveU8, MoveCellDynamicU8)
}

func tryMoveCellDynamicU16(w *window) bool {
	return tryDynamicOffset(w, markerMoveU16, MoveCellDynamicU16)
}

func tryMoveCellDynamicU32(w *window) bool {
	return tryDynamicOffset(w, markerMoveU32, MoveCellDynamicU32)
}

func tryCopyCellDynamicU8(w *window) bool {
	return tryDynamicOffset(w, markerCopyU8, CopyCellDynamicU8)
}

func tryCopyCellDynamicU32(w *window) bool {
	return tryDynamicOffset(w, markerCopyU32, CopyCellDynamicU32)
}

// tryDynamicOffset matches LoopStart, ChangeBy(marker), LoopEnd,
// Shift(offset) with offset as the idiom's single wildcard.
func tryDynamicOffset(w *window, marker byte, kind Kind) bool {
	tail := w.tail(4)
	if tail == nil {
		return false
	}
	if _, ok := asBasic(tail[0], lexer.LoopStart); !ok {
		return false
	}
	cb, ok := asBasic(tail[1], lexer.ChangeBy)
	if !ok || cb.Delta != marker {
		return false
	}
	if _, ok := asBasic(tail[2], lexer.LoopEnd); !ok {
		return false
	}
	off, ok := asBasic(tail[3], lexer.Shift)
	if !ok {
		return false
	}

	w.truncateBack(w.len() - 4)
	w.pushBack(Op{Kind: kind, Offset: off.Dist})
	return true
}

// tryMoveCellsStaticReverse is the one dynamic-family idiom with two
// wildcards: the repeat count rides inside the marker loop as a Shift
// (where the surrounding ChangeBy/LoopEnd tokens keep it from
// coalescing away), and the base offset trails the loop like the rest
// of the family.
func tryMoveCellsStaticReverse(w *window) bool {
	tail := w.tail(5)
	if tail == nil {
		return false
	}
	if _, ok := asBasic(tail[0], lexer.LoopStart); !ok {
		return false
	}
	cb, ok := asBasic(tail[1], lexer.ChangeBy)
	if !ok || cb.Delta != markerReverse {
		return false
	}
	count, ok := asBasic(tail[2], lexer.Shift)
	if !ok || count.Dist <= 0 {
		return false
	}
	if _, ok := asBasic(tail[3], lexer.LoopEnd); !ok {
		return false
	}
	off, ok := asBasic(tail[4], lexer.Shift)
	if !ok {
		return false
	}

	w.truncateBack(w.len() - 5)
	w.pushBack(Op{Kind: MoveCellsStaticReverse, Offset: off.Dist, Count: int(count.Dist)})
	return true
}
