package linker_test

import (
	"testing"

	"github.com/Urethramancer/octofold/lexer"
	"github.com/Urethramancer/octofold/linker"
	"github.com/Urethramancer/octofold/recognizer"
)

func raw(kind lexer.Kind) recognizer.Op {
	return recognizer.Op{Kind: recognizer.Basic, Basic: lexer.Op{Kind: kind}}
}

func TestResolvesMatchingLoop(t *testing.T) {
	acc := linker.NewAcc()
	ops := []recognizer.Op{
		raw(lexer.LoopStart),
		{Kind: recognizer.Zero},
		raw(lexer.LoopEnd),
	}
	for _, op := range ops {
		if err := acc.Feed(op); err != nil {
			t.Fatalf("Feed: %v", err)
		}
	}
	view, err := acc.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(view) != 3 {
		t.Fatalf("want 3 ops, got %d", len(view))
	}
	if view[0].Kind != linker.LoopStart || view[0].Distance != 2 {
		t.Fatalf("want LoopStart(2), got %+v", view[0])
	}
	if view[2].Kind != linker.LoopEnd || view[2].Distance != 2 {
		t.Fatalf("want LoopEnd(2), got %+v", view[2])
	}
}

func TestUnmatchedOpenErrors(t *testing.T) {
	acc := linker.NewAcc()
	if err := acc.Feed(raw(lexer.LoopStart)); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if _, err := acc.View(); err == nil {
		t.Fatal("want error for unmatched '['")
	}
}

func TestUnmatchedCloseErrors(t *testing.T) {
	acc := linker.NewAcc()
	if err := acc.Feed(raw(lexer.LoopEnd)); err == nil {
		t.Fatal("want error for unmatched ']'")
	}
}

func TestNestedLoops(t *testing.T) {
	acc := linker.NewAcc()
	ops := []recognizer.Op{
		raw(lexer.LoopStart),
		{Kind: recognizer.Zero},
		raw(lexer.LoopStart),
		{Kind: recognizer.Set, Value: 1},
		raw(lexer.LoopEnd),
		raw(lexer.LoopEnd),
	}
	for _, op := range ops {
		if err := acc.Feed(op); err != nil {
			t.Fatalf("Feed: %v", err)
		}
	}
	view, err := acc.View()
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view[2].Distance != 2 || view[4].Distance != 2 {
		t.Fatalf("inner loop distances wrong: %+v %+v", view[2], view[4])
	}
	if view[0].Distance != 5 || view[5].Distance != 5 {
		t.Fatalf("outer loop distances wrong: %+v %+v", view[0], view[5])
	}
}
