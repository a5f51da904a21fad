package recognizer

// The six comparison idioms operate on two fixed, head-relative cells
// (no offset parameter survives to the compound op) and share the
// eightBitDance scratch-cell shape, distinguished only by marker
// delta. See the eightBitDance doc comment in literal.go.
var (
	equalsPattern           = eightBitDance(10)
	notEqualsPattern        = eightBitDance(11)
	lessThanPattern         = eightBitDance(12)
	greaterThanPattern      = eightBitDance(13)
	lessThanEqualPattern    = eightBitDance(14)
	greaterThanEqualPattern = eightBitDance(15)
)

func tryEquals(w *window) bool           { return tryCompare(w, equalsPattern, Equals) }
func tryNotEquals(w *window) bool        { return tryCompare(w, notEqualsPattern, NotEquals) }
func tryLessThan(w *window) bool         { return tryCompare(w, lessThanPattern, LessThan) }
func tryGreaterThan(w *window) bool      { return tryCompare(w, greaterThanPattern, GreaterThan) }
func tryLessThanEqual(w *window) bool    { return tryCompare(w, lessThanEqualPattern, LessThanEqual) }
func tryGreaterThanEqual(w *window) bool { return tryCompare(w, greaterThanEqualPattern, GreaterThanEqual) }

func tryCompare(w *window, pattern []rawTok, kind Kind) bool {
	if !matchLiteral(w, pattern) {
		return false
	}
	w.truncateBack(w.len() - len(pattern))
	w.pushBack(Op{Kind: kind})
	return true
}
