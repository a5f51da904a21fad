package transpile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Urethramancer/octofold/lexer"
	"github.com/Urethramancer/octofold/linker"
	"github.com/Urethramancer/octofold/recognizer"
	"github.com/Urethramancer/octofold/transpile"
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

func TestProgramEmitsCompilableShape(t *testing.T) {
	program := compile(t, "+++[-].")
	var out bytes.Buffer
	if err := transpile.Program(program, &out); err != nil {
		t.Fatalf("Program: %v", err)
	}
	got := out.String()
	for _, want := range []string{"#include <stdio.h>", "int main(){", "malloc(25000000)", "free(m);", "return 0;"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
}

func TestEmitsRunLengthOutput(t *testing.T) {
	program := compile(t, "7+.")
	var out bytes.Buffer
	if err := transpile.Program(program, &out); err != nil {
		t.Fatalf("Program: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "m[i] += 7;\n") {
		t.Fatalf("want run-length fold into a single ChangeBy, got:\n%s", got)
	}
	if !strings.Contains(got, "put(m[i]);\n") {
		t.Fatalf("want put(m[i]), got:\n%s", got)
	}
}

func TestEmitsZeroIdiom(t *testing.T) {
	program := compile(t, "+++[-].")
	var out bytes.Buffer
	if err := transpile.Program(program, &out); err != nil {
		t.Fatalf("Program: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "m[i] = 0;\n") {
		t.Fatalf("want m[i] = 0, got:\n%s", got)
	}
	if strings.Contains(got, "while(m[i]){") {
		t.Fatalf("zero idiom should fold away the loop, got:\n%s", got)
	}
}

func TestDivModEmitsRemainderSubtraction(t *testing.T) {
	// The reconstructed divisor must subtract the remainder (m[i]),
	// matching the interpreter backend, not the quotient (m[i + 1]).
	op := linker.Op{
		Kind: linker.Compound,
		Compound: recognizer.Op{
			Kind:  recognizer.DivMod,
			Shift: 2,
		},
	}
	var out bytes.Buffer
	if err := transpile.Program([]linker.Op{op}, &out); err != nil {
		t.Fatalf("Program: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "m[i - 1] = m[i - 1] - m[i];\n") {
		t.Fatalf("want remainder subtraction, got:\n%s", got)
	}
	if strings.Contains(got, "m[i - 1] = m[i - 1] - m[i + 1];\n") {
		t.Fatalf("quotient subtraction leaked through, got:\n%s", got)
	}
}
