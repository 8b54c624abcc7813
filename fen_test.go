package xiangqi

import "testing"

func unsafeFEN(fen string) *Board {
	b, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

func TestStartingFENRoundTrip(t *testing.T) {
	b := unsafeFEN(StartingFEN)
	if got := b.FEN(); got != StartingFEN {
		t.Fatalf("expected %s, got %s", StartingFEN, got)
	}
	if b.BoardFEN() != StartingBoardFEN {
		t.Fatalf("board fen mismatch: %s", b.BoardFEN())
	}
	if NewBoard().FEN() != StartingFEN {
		t.Fatal("NewBoard should produce the starting FEN")
	}
	if b.Turn() != Red || b.FullmoveNumber() != 1 {
		t.Fatalf("expected red to move at move 1, got %s %d", b.Turn().Name(), b.FullmoveNumber())
	}
}

func TestFENRoundTripAfterMoves(t *testing.T) {
	b := NewBoard()
	for _, iccs := range []string{"h2e2", "h9g7", "h0g2", "i9h9"} {
		if err := b.PushICCS(iccs); err != nil {
			t.Fatal(err)
		}
	}
	reparsed := unsafeFEN(b.FEN())
	if reparsed.FEN() != b.FEN() {
		t.Fatalf("round trip mismatch: %s vs %s", reparsed.FEN(), b.FEN())
	}
	if b.FullmoveNumber() != 3 {
		t.Fatalf("expected fullmove 3, got %d", b.FullmoveNumber())
	}
}

func TestInvalidFENs(t *testing.T) {
	tests := []struct {
		desc string
		fen  string
	}{
		{"empty", ""},
		{"nine rows", "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/RNBAKABNR w - - 0 1"},
		{"short row", "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/8/RNBAKABNR w - - 0 1"},
		{"double digits", "rnbakabnr/45/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"},
		{"western queen", "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1Q5C1/9/RNBAKABNR w - - 0 1"},
		{"bad turn", "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR x - - 0 1"},
		{"negative fullmove", "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 -3"},
		{"fullmove not a number", "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 x"},
		{"extra fields", "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1 extra"},
	}
	for _, tt := range tests {
		if _, err := NewBoardFromFEN(tt.fen); err == nil {
			t.Fatalf("%s: expected error for %q", tt.desc, tt.fen)
		}
	}
}

func TestFENFullmoveClamp(t *testing.T) {
	b := unsafeFEN("rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 0")
	if b.FullmoveNumber() != 1 {
		t.Fatalf("fullmove 0 should clamp to 1, got %d", b.FullmoveNumber())
	}
}

func TestFENDefaults(t *testing.T) {
	b := unsafeFEN(StartingBoardFEN)
	if b.Turn() != Red || b.FullmoveNumber() != 1 {
		t.Fatal("board-only FEN should default to red at move 1")
	}
	if unsafeFEN(StartingBoardFEN+" b").Turn() != Black {
		t.Fatal("two-field FEN should honor the turn")
	}
}

func TestEmptyBoardFEN(t *testing.T) {
	b := NewEmptyBoard()
	if got := b.BoardFEN(); got != "9/9/9/9/9/9/9/9/9/9" {
		t.Fatalf("expected empty rows, got %s", got)
	}
}

func TestBoardTextMarshaling(t *testing.T) {
	b := NewBoard()
	text, err := b.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var c Board
	if err := c.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if !b.Eq(&c) {
		t.Fatalf("text round trip mismatch:\n%s\n%s", b.Draw(), c.Draw())
	}
}
