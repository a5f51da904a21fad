package recognizer_test

import (
	"testing"

	"github.com/Urethramancer/octofold/lexer"
	"github.com/Urethramancer/octofold/recognizer"
)

func feed(t *testing.T, ops []lexer.Op) []recognizer.Op {
	t.Helper()
	r := recognizer.New()
	var out []recognizer.Op
	for _, op := range ops {
		if cop, ok := r.Feed(op); ok {
			out = append(out, cop)
		}
	}
	out = append(out, r.Drain()...)
	return out
}

func lex(t *testing.T, src string) []lexer.Op {
	t.Helper()
	acc := lexer.NewAcc()
	var ops []lexer.Op
	for i := 0; i < len(src); i++ {
		op, ok, err := acc.FeedByte(src[i])
		if err != nil {
			t.Fatalf("FeedByte: %v", err)
		}
		if ok {
			ops = append(ops, op)
		}
		for {
			cont, ok := acc.Continued()
			if !ok {
				break
			}
			ops = append(ops, cont)
		}
	}
	if op, ok := acc.Finalize(); ok {
		ops = append(ops, op)
	}
	for {
		cont, ok := acc.Continued()
		if !ok {
			break
		}
		ops = append(ops, cont)
	}
	return ops
}

func TestZeroIdiom(t *testing.T) {
	out := feed(t, lex(t, "[-]"))
	if len(out) != 1 || out[0].Kind != recognizer.Zero {
		t.Fatalf("want single Zero, got %+v", out)
	}
}

func TestZeroIdempotent(t *testing.T) {
	out := feed(t, lex(t, "[-][+]"))
	if len(out) != 1 || out[0].Kind != recognizer.Zero {
		t.Fatalf("want single Zero (idempotent), got %+v", out)
	}
}

func TestPanicAfterSet(t *testing.T) {
	out := feed(t, lex(t, "[-]+++[]"))
	if len(out) != 1 || out[0].Kind != recognizer.Panic || out[0].Value != 3 {
		t.Fatalf("want Panic(3), got %+v", out)
	}
}

func TestPanicAtProgramStart(t *testing.T) {
	// A leading ChangeBy acts on a freshly zeroed cell, so it folds
	// into the trap the same way a Set would.
	out := feed(t, lex(t, "++++[]"))
	if len(out) != 1 || out[0].Kind != recognizer.Panic || out[0].Value != 4 {
		t.Fatalf("want Panic(4), got %+v", out)
	}
}

func TestChangeByMidStreamDoesNotTrap(t *testing.T) {
	// Away from the start of the stream the cell value is unknown, so
	// ChangeBy [ ] must stay raw.
	out := feed(t, lex(t, ">++++[]"))
	for _, op := range out {
		if op.Kind == recognizer.Panic {
			t.Fatalf("unexpected Panic in %+v", out)
		}
	}
}

func TestSetIdiom(t *testing.T) {
	out := feed(t, lex(t, "[-]+++"))
	if len(out) != 1 || out[0].Kind != recognizer.Set || out[0].Value != 3 {
		t.Fatalf("want Set(3), got %+v", out)
	}
}

func TestZeroAdvanceRun(t *testing.T) {
	out := feed(t, lex(t, "[-]>[-]>[-]>"))
	if len(out) != 1 || out[0].Kind != recognizer.ZeroAdvance || out[0].Count != 3 {
		t.Fatalf("want ZeroAdvance(3), got %+v", out)
	}
}

func TestMoveAddFormA(t *testing.T) {
	out := feed(t, lex(t, "[>+<-]"))
	if len(out) != 1 || out[0].Kind != recognizer.MoveAdd || out[0].Offset != 1 {
		t.Fatalf("want MoveAdd(1), got %+v", out)
	}
}

func TestMoveAddFormB(t *testing.T) {
	out := feed(t, lex(t, "[->+<]"))
	if len(out) != 1 || out[0].Kind != recognizer.MoveAdd || out[0].Offset != 1 {
		t.Fatalf("want MoveAdd(1), got %+v", out)
	}
}

func TestMoveSetCascade(t *testing.T) {
	// >>[-]<<[>>+<<-] : shift to dest (2 cells), zero it, shift back,
	// move-add into it from 2 cells away. T(2) >= |B|(2), so the add
	// degenerates into a plain set with no residual shift.
	out := feed(t, lex(t, ">>[-]<<[>>+<<-]"))
	if len(out) != 1 || out[0].Kind != recognizer.MoveSet || out[0].Offset != 2 {
		t.Fatalf("want MoveSet(2), got %+v", out)
	}
}

func TestPrintStaticBase(t *testing.T) {
	out := feed(t, lex(t, "[-]+++..."))
	if len(out) != 1 || out[0].Kind != recognizer.PrintStatic {
		t.Fatalf("want PrintStatic, got %+v", out)
	}
	want := []byte{3, 3, 3}
	if string(out[0].Bytes) != string(want) {
		t.Fatalf("want %v, got %v", want, out[0].Bytes)
	}
}

func TestPrintStaticChangeByContinuation(t *testing.T) {
	out := feed(t, lex(t, "[-]+++.+."))
	if len(out) != 1 || out[0].Kind != recognizer.PrintStatic {
		t.Fatalf("want PrintStatic, got %+v", out)
	}
	want := []byte{3, 4}
	if string(out[0].Bytes) != string(want) {
		t.Fatalf("want %v, got %v", want, out[0].Bytes)
	}
}

func TestEqualsIdiom(t *testing.T) {
	out := feed(t, lex(t, "[2>10+2<-]3>[3<+3>-]3<"))
	if len(out) != 1 || out[0].Kind != recognizer.Equals {
		t.Fatalf("want single Equals, got %+v", out)
	}
}

func TestShiftLeftLogicalIdiom(t *testing.T) {
	out := feed(t, lex(t, "[2>20+2<-]3>[3<+3>-]3<"))
	if len(out) != 1 || out[0].Kind != recognizer.ShiftLeftLogical {
		t.Fatalf("want single ShiftLeftLogical, got %+v", out)
	}
}

const divModSource = "[-]>[-]>[-]>[-]5<[->[->+2>]>[2<+2>[-<+>]>+2>]5<]>[3>]>[[-<+>]>+2>]2<"

func TestDivModIdiom(t *testing.T) {
	out := feed(t, lex(t, divModSource))
	if len(out) != 1 || out[0].Kind != recognizer.DivMod {
		t.Fatalf("want single DivMod, got %+v", out)
	}
	// Trailing Shift(-2) plus the idiom's constant net offset of 3.
	if out[0].Shift != 1 {
		t.Fatalf("want Shift 1, got %d", out[0].Shift)
	}
}

func TestBasicOpPassthrough(t *testing.T) {
	out := feed(t, lex(t, "+>"))
	if len(out) != 2 || out[0].Kind != recognizer.Basic || out[1].Kind != recognizer.Basic {
		t.Fatalf("want two Basic ops, got %+v", out)
	}
}
