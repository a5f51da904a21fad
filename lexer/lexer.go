package lexer

import "fmt"

// Acc accumulates raw source bytes into basic ops, applying run-length
// decoding and coalescing adjacent same-kind ops. At most one
// "in-progress" op is held at a time, plus a pending count of duplicate
// loop tokens left over from a run-length-prefixed '[' or ']'.
type Acc struct {
	building    *Op
	haveBuild   bool
	trailingOp  Op
	trailingN   int
	haveTrail   bool
	number      int
	haveNumber  bool
}

// NewAcc creates an empty accumulator.
func NewAcc() *Acc {
	return &Acc{}
}

// FeedByte consumes one source byte. Space and newline are ignored.
// Digits accumulate into the pending run-length count. Any other
// operator synthesizes an op with the pending count (default 1) and
// feeds it to the coalescer. Any other byte is a parse error.
func (a *Acc) FeedByte(b byte) (Op, bool, error) {
	if b == ' ' || b == '\n' {
		return Op{}, false, nil
	}

	count := 1
	if a.haveNumber {
		count = a.number
	}

	var op Op
	switch b {
	case '+':
		op = changeBy(byte(count))
	case '-':
		op = changeBy(byte(0) - byte(count))
	case '<':
		op = shift(-int64(count))
	case '>':
		op = shift(int64(count))
	case ',':
		op = input(uint64(count))
	case '.':
		op = output(uint64(count))
	case '[':
		op = Op{Kind: LoopStart}
		if count > 1 {
			a.trailingOp, a.trailingN, a.haveTrail = op, count-1, true
		}
	case ']':
		op = Op{Kind: LoopEnd}
		if count > 1 {
			a.trailingOp, a.trailingN, a.haveTrail = op, count-1, true
		}
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		digit := int(b - '0')
		if a.haveNumber {
			a.number = a.number*10 + digit
		} else {
			a.number, a.haveNumber = digit, true
		}
		return Op{}, false, nil
	default:
		return Op{}, false, fmt.Errorf("invalid character %q", b)
	}

	a.haveNumber = false
	out, ok := a.feed(op)
	return out, ok, nil
}

// feed merges op into the in-progress op, or yields the previous
// in-progress op (filtered) if the kinds differ.
func (a *Acc) feed(op Op) (Op, bool) {
	if !a.haveBuild {
		a.building, a.haveBuild = &op, true
		return Op{}, false
	}

	if merged, ok := mergeSame(*a.building, op); ok {
		a.building = &merged
		return Op{}, false
	}

	prev := *a.building
	a.building = &op
	return filter(prev)
}

// Continued drains one pending duplicate loop token, if any.
func (a *Acc) Continued() (Op, bool) {
	if !a.haveTrail {
		return Op{}, false
	}
	switch a.trailingN {
	case 0:
		a.haveTrail = false
		return Op{}, false
	case 1:
		a.haveTrail = false
		return a.trailingOp, true
	default:
		a.trailingN--
		return a.trailingOp, true
	}
}

// Finalize flushes the in-progress op (filtered) or, failing that, the
// next pending trailing duplicate.
func (a *Acc) Finalize() (Op, bool) {
	if a.haveBuild {
		built := *a.building
		a.building, a.haveBuild = nil, false
		if out, ok := filter(built); ok {
			return out, true
		}
	}
	return a.Continued()
}

// mergeSame merges two ops of the same kind, wrapping on ChangeBy and
// summing on Shift/Input/Output. LoopStart and LoopEnd never merge.
func mergeSame(a, b Op) (Op, bool) {
	if a.Kind != b.Kind {
		return Op{}, false
	}
	switch a.Kind {
	case ChangeBy:
		return changeBy(a.Delta + b.Delta), true
	case Shift:
		return shift(a.Dist + b.Dist), true
	case Input:
		return input(a.Count + b.Count), true
	case Output:
		return output(a.Count + b.Count), true
	default:
		return Op{}, false
	}
}

// filter drops merged ops that cancelled out to a no-op.
func filter(op Op) (Op, bool) {
	if op.Kind == ChangeBy && op.Delta == 0 {
		return Op{}, false
	}
	if op.Kind == Shift && op.Dist == 0 {
		return Op{}, false
	}
	return op, true
}
