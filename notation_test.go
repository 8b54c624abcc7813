package xiangqi

import "testing"

func TestICCSRoundTrip(t *testing.T) {
	m, err := MoveFromICCS("h2e2")
	if err != nil || m.From != H2 || m.To != E2 {
		t.Fatalf("expected h2e2 to parse, got %v %v", m, err)
	}
	if m.ICCS() != "h2e2" {
		t.Fatalf("round trip mismatch: %s", m.ICCS())
	}
	null, err := MoveFromICCS("0000")
	if err != nil || !null.IsNull() {
		t.Fatalf("expected the null move, got %v %v", null, err)
	}
	if null.ICCS() != "0000" {
		t.Fatal("null move should render as 0000")
	}
	for _, bad := range []string{"", "h2", "h2e", "z2e2", "h2eX", "h2e2x"} {
		if _, err := MoveFromICCS(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

type wxfTest struct {
	move Move
	want string
}

func TestWXFStartingPosition(t *testing.T) {
	b := NewBoard()
	tests := []wxfTest{
		{Move{From: H2, To: E2}, "c2.5"},
		{Move{From: H0, To: G2}, "n2+3"},
		{Move{From: C0, To: E2}, "b7+5"},
		{Move{From: F0, To: E1}, "a4+5"},
		{Move{From: E0, To: E1}, "k5+1"},
		{Move{From: A0, To: A2}, "r9+2"},
		{Move{From: E3, To: E4}, "p5+1"},
	}
	for _, tt := range tests {
		got, err := b.WXF(tt.move)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Fatalf("wxf(%s): expected %s, got %s", tt.move, tt.want, got)
		}
	}
}

func TestWXFBlack(t *testing.T) {
	b := NewBoard()
	b.Push(Move{From: H2, To: E2})
	got, err := b.WXF(Move{From: H9, To: G7})
	if err != nil {
		t.Fatal(err)
	}
	if got != "n8+7" {
		t.Fatalf("expected n8+7, got %s", got)
	}
}

func TestWXFPawnDisambiguation(t *testing.T) {
	// Three pawns on one file: front +, middle ., rear -.
	b := unsafeFEN("3k5/9/9/4P4/4P4/4P4/9/9/9/4K4 w - - 0 1")
	tests := []wxfTest{
		{Move{From: E6, To: E7}, "p++1"},
		{Move{From: E5, To: D5}, "p..6"},
		{Move{From: E4, To: E5}, "p-+1"},
	}
	for _, tt := range tests {
		got, err := b.WXF(tt.move)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Fatalf("wxf(%s): expected %s, got %s", tt.move, tt.want, got)
		}
	}

	// Two pawns: front and rear only.
	b = unsafeFEN("3k5/9/9/9/4P4/4P4/9/9/9/4K4 w - - 0 1")
	if got, _ := b.WXF(Move{From: E5, To: E6}); got != "p++1" {
		t.Fatalf("expected p++1, got %s", got)
	}
	if got, _ := b.WXF(Move{From: E4, To: E5}); got != "p-+1" {
		t.Fatalf("expected p-+1, got %s", got)
	}

	// Five pawns over two files use the positional letters.
	b = unsafeFEN("3k5/9/9/4P4/4P1P2/4P1P2/9/9/9/4K4 w - - 0 1")
	tests = []wxfTest{
		{Move{From: G5, To: G6}, "pa+1"},
		{Move{From: G4, To: G5}, "pb+1"},
		{Move{From: E6, To: E7}, "pc+1"},
		{Move{From: E5, To: D5}, "pd.6"},
		{Move{From: E4, To: E5}, "pe+1"},
	}
	for _, tt := range tests {
		got, err := b.WXF(tt.move)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Fatalf("wxf(%s): expected %s, got %s", tt.move, tt.want, got)
		}
	}
}

func TestWXFBlackPawns(t *testing.T) {
	b := unsafeFEN("3k5/9/9/9/9/4p4/4p4/9/9/4K4 b - - 0 1")
	if got, _ := b.WXF(Move{From: E3, To: E2}); got != "p++1" {
		t.Fatalf("expected p++1, got %s", got)
	}
	if got, _ := b.WXF(Move{From: E4, To: E3}); got != "p-+1" {
		t.Fatalf("expected p-+1, got %s", got)
	}
}

func TestWXFSameFileDisambiguation(t *testing.T) {
	// Two rooks on one file: + is the front one from red's view.
	b := unsafeFEN("3k5/9/9/9/R8/9/9/9/R8/4K4 w - - 0 1")
	if got, _ := b.WXF(Move{From: A5, To: A6}); got != "r++1" {
		t.Fatalf("expected r++1, got %s", got)
	}
	if got, _ := b.WXF(Move{From: A1, To: B1}); got != "r-.8" {
		t.Fatalf("expected r-.8, got %s", got)
	}
}

func TestWXFErrors(t *testing.T) {
	b := NewBoard()
	if _, err := b.WXF(Move{From: E4, To: E5}); err == nil {
		t.Fatal("expected error for empty from-square")
	}
	if _, err := b.WXF(Move{From: H9, To: G7}); err == nil {
		t.Fatal("expected error for opponent piece")
	}
}

func TestChineseMove(t *testing.T) {
	b := NewBoard()
	got, err := b.ChineseMove(Move{From: H2, To: E2}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "炮二平五" {
		t.Fatalf("expected 炮二平五, got %s", got)
	}

	b.Push(Move{From: H2, To: E2})
	got, err = b.ChineseMove(Move{From: H9, To: G7}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "傌8进7" {
		t.Fatalf("expected 傌8进7, got %s", got)
	}
	got, err = b.ChineseMove(Move{From: H9, To: G7}, true)
	if err != nil {
		t.Fatal(err)
	}
	if got != "傌８进７" {
		t.Fatalf("expected full-width digits, got %s", got)
	}
}

func TestChineseMoveMiddlePawn(t *testing.T) {
	b := unsafeFEN("3k5/9/9/4P4/4P4/4P4/9/9/9/4K4 w - - 0 1")
	got, err := b.ChineseMove(Move{From: E5, To: D5}, false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "中兵平六" {
		t.Fatalf("expected 中兵平六, got %s", got)
	}
}

func TestDecodeWXF(t *testing.T) {
	b := NewBoard()
	m, err := b.DecodeWXF("c2.5")
	if err != nil {
		t.Fatal(err)
	}
	if m != (Move{From: H2, To: E2}) {
		t.Fatalf("expected h2e2, got %s", m)
	}
	if _, err := b.DecodeWXF("c2.9"); err == nil {
		t.Fatal("expected error for unplayable descriptor")
	}
}

func TestDecodeMove(t *testing.T) {
	b := NewBoard()
	for _, text := range []string{"h2e2", "c2.5"} {
		m, err := b.DecodeMove(text)
		if err != nil {
			t.Fatal(err)
		}
		if m != (Move{From: H2, To: E2}) {
			t.Fatalf("decode %q: expected h2e2, got %s", text, m)
		}
	}
	if _, err := b.DecodeMove("nonsense"); err == nil {
		t.Fatal("expected error for undecodable text")
	}
}
