package recognizer

// BitAnd and BitNeg round out the parameterless scratch-cell idiom
// family started in compare.go and shift.go.
var (
	bitAndPattern = eightBitDance(30)
	bitNegPattern = eightBitDance(31)
)

func tryBitAnd(w *window) bool { return tryCompare(w, bitAndPattern, BitAnd) }
func tryBitNeg(w *window) bool { return tryCompare(w, bitNegPattern, BitNeg) }
