package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Urethramancer/octofold/lexer"
	"github.com/Urethramancer/octofold/linker"
	"github.com/Urethramancer/octofold/recognizer"
	"github.com/Urethramancer/octofold/vm"
)

func compile(t *testing.T, src string) []linker.Op {
	t.Helper()
	acc := lexer.NewAcc()
	r := recognizer.New()
	l := linker.NewAcc()

	feedCompound := func(op lexer.Op) {
		if cop, ok := r.Feed(op); ok {
			if err := l.Feed(cop); err != nil {
				t.Fatalf("linker.Feed: %v", err)
			}
		}
	}

	for i := 0; i < len(src); i++ {
		op, ok, err := acc.FeedByte(src[i])
		if err != nil {
			t.Fatalf("FeedByte: %v", err)
		}
		if ok {
			feedCompound(op)
		}
		for {
			cont, ok := acc.Continued()
			if !ok {
				break
			}
			feedCompound(cont)
		}
	}
	if op, ok := acc.Finalize(); ok {
		feedCompound(op)
	}
	for {
		cont, ok := acc.Continued()
		if !ok {
			break
		}
		feedCompound(cont)
	}
	for _, cop := range r.Drain() {
		if err := l.Feed(cop); err != nil {
			t.Fatalf("linker.Feed (drain): %v", err)
		}
	}

	program, err := l.View()
	if err != nil {
		t.Fatalf("linker.View: %v", err)
	}
	return program
}

func run(t *testing.T, src, stdin string) string {
	t.Helper()
	program := compile(t, src)
	var out bytes.Buffer
	machine := vm.New(program, true, strings.NewReader(stdin), &out)
	if err := machine.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestHelloWorld(t *testing.T) {
	src := "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."
	got := run(t, src, "")
	if got != "Hello World!\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEchoesInput(t *testing.T) {
	got := run(t, ",.", "x")
	if got != "x" {
		t.Fatalf("got %q", got)
	}
}

func TestCellZeroIdiom(t *testing.T) {
	program := compile(t, "+++[-].")
	var out bytes.Buffer
	machine := vm.New(program, true, &bytes.Reader{}, &out)
	if err := machine.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "\x00" {
		t.Fatalf("got %q", out.String())
	}
}

func TestRunLengthOutput(t *testing.T) {
	got := run(t, "7+.", "")
	if got != "\x07" {
		t.Fatalf("got %q", got)
	}
}

func TestMoveAddDoublesValue(t *testing.T) {
	// cell0 = 5, move-add into cell1 and cell2 via a two-destination add,
	// then print both.
	got := run(t, "+++++[>+>+<<-]>.>.", "")
	if got != "\x05\x05" {
		t.Fatalf("got %q", got)
	}
}

func TestPanicTrap(t *testing.T) {
	program := compile(t, "[-]+++[]")
	var out bytes.Buffer
	machine := vm.New(program, true, &bytes.Reader{}, &out)
	err := machine.Run()
	if err == nil {
		t.Fatal("want panic error")
	}
	if _, ok := err.(*vm.PanicError); !ok {
		t.Fatalf("want *vm.PanicError, got %T: %v", err, err)
	}
}

const divModIdiom = "[-]>[-]>[-]>[-]5<[->[->+2>]>[2<+2>[-<+>]>+2>]5<]>[3>]>[[-<+>]>+2>]2<"

func TestDivMod(t *testing.T) {
	// 17 at cell0, 5 at cell1, head at cell2 when the idiom fires.
	// Quotient 3 lands one past the head, remainder 2 at the head, the
	// divisor cell is rebuilt as 5 - 2 = 3, and the dividend cell is
	// cleared. The idiom's trailing shift leaves the head on the
	// quotient.
	got := run(t, "17+>5+>"+divModIdiom+".<.<.<.", "")
	if got != "\x03\x02\x03\x00" {
		t.Fatalf("got %q", got)
	}
}

func TestDivModByZeroDivisor(t *testing.T) {
	// Divisor 0 yields quotient and remainder both 0.
	got := run(t, "17+2>"+divModIdiom+".<.", "")
	if got != "\x00\x00" {
		t.Fatalf("got %q", got)
	}
}
