package xiangqi

import "testing"

func TestPieceSymbols(t *testing.T) {
	for _, p := range allPieces {
		got, ok := PieceFromSymbol(p.Symbol()[0])
		if !ok || got != p {
			t.Fatalf("symbol round trip broken for %v: %q", p, p.Symbol())
		}
		if p.Chinese() == "" {
			t.Fatalf("missing chinese name for %v", p)
		}
		if GetPiece(p.Type(), p.Color()) != p {
			t.Fatalf("piece packing broken for %v", p)
		}
	}
	if _, ok := PieceFromSymbol('q'); ok {
		t.Fatal("q is not a xiangqi piece")
	}
	if RedKing.Symbol() != "K" || BlackKing.Symbol() != "k" {
		t.Fatal("red pieces are uppercase")
	}
	if Red.Other() != Black || Black.Other() != Red {
		t.Fatal("color other broken")
	}
	if Red.String() != "w" || Black.String() != "b" {
		t.Fatal("fen colors are w and b")
	}
}
