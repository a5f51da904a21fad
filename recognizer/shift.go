package recognizer

// ShiftLeftLogical and ShiftRightLogical are likewise parameterless,
// fixed-shape idioms over the eightBitDance scratch template.
var (
	shiftLeftPattern  = eightBitDance(20)
	shiftRightPattern = eightBitDance(21)
)

func tryShiftLeftLogical(w *window) bool {
	return tryCompare(w, shiftLeftPattern, ShiftLeftLogical)
}

func tryShiftRightLogical(w *window) bool {
	return tryCompare(w, shiftRightPattern, ShiftRightLogical)
}
