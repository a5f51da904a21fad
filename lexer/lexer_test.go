package lexer_test

import (
	"testing"

	"github.com/Urethramancer/octofold/lexer"
)

func feedAll(t *testing.T, src string) []lexer.Op {
	t.Helper()
	acc := lexer.NewAcc()
	var ops []lexer.Op
	for i := 0; i < len(src); i++ {
		op, ok, err := acc.FeedByte(src[i])
		if err != nil {
			t.Fatalf("feed byte %q: %v", src[i], err)
		}
		if ok {
			ops = append(ops, op)
		}
		for {
			op, ok := acc.Continued()
			if !ok {
				break
			}
			ops = append(ops, op)
		}
	}
	for {
		op, ok := acc.Finalize()
		if !ok {
			break
		}
		ops = append(ops, op)
	}
	return ops
}

func TestRunLengthChangeBy(t *testing.T) {
	ops := feedAll(t, "7+.")
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d: %+v", len(ops), ops)
	}
	if ops[0].Kind != lexer.ChangeBy || ops[0].Delta != 7 {
		t.Fatalf("expected ChangeBy(7), got %+v", ops[0])
	}
	if ops[1].Kind != lexer.Output || ops[1].Count != 1 {
		t.Fatalf("expected Output(1), got %+v", ops[1])
	}
}

func TestCoalesceCancelsToZero(t *testing.T) {
	ops := feedAll(t, "+-")
	if len(ops) != 0 {
		t.Fatalf("expected cancellation to drop the op entirely, got %+v", ops)
	}
}

func TestWrappingNegative(t *testing.T) {
	ops := feedAll(t, "-")
	if len(ops) != 1 || ops[0].Kind != lexer.ChangeBy || ops[0].Delta != 255 {
		t.Fatalf("expected ChangeBy(255), got %+v", ops)
	}
}

func TestRunLengthLoopDuplication(t *testing.T) {
	ops := feedAll(t, "3[")
	if len(ops) != 3 {
		t.Fatalf("expected 3 LoopStart ops, got %d: %+v", len(ops), ops)
	}
	for _, op := range ops {
		if op.Kind != lexer.LoopStart {
			t.Fatalf("expected all LoopStart, got %+v", op)
		}
	}
}

func TestInvalidCharacter(t *testing.T) {
	acc := lexer.NewAcc()
	_, _, err := acc.FeedByte('a')
	if err == nil {
		t.Fatal("expected error for invalid character")
	}
}

func TestWhitespaceIgnored(t *testing.T) {
	ops := feedAll(t, "+ +\n+")
	if len(ops) != 1 || ops[0].Delta != 3 {
		t.Fatalf("expected ChangeBy(3) after merging across whitespace, got %+v", ops)
	}
}

func TestDisplayFormat(t *testing.T) {
	cases := []struct {
		op   lexer.Op
		want string
	}{
		{lexer.Op{Kind: lexer.ChangeBy, Delta: 1}, "+"},
		{lexer.Op{Kind: lexer.ChangeBy, Delta: 7}, "7+"},
		{lexer.Op{Kind: lexer.ChangeBy, Delta: 255}, "-"},
		{lexer.Op{Kind: lexer.ChangeBy, Delta: 250}, "6-"},
		{lexer.Op{Kind: lexer.Shift, Dist: -5}, "5<"},
		{lexer.Op{Kind: lexer.Shift, Dist: 1}, ">"},
		{lexer.Op{Kind: lexer.Input, Count: 7}, "7,"},
		{lexer.Op{Kind: lexer.Output, Count: 1}, "."},
		{lexer.Op{Kind: lexer.LoopStart}, "["},
		{lexer.Op{Kind: lexer.LoopEnd}, "]"},
	}
	for _, c := range cases {
		if got := c.op.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
