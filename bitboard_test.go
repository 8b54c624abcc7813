package xiangqi

import "testing"

func TestInBoardMask(t *testing.T) {
	if got := BBInBoard.OnesCount(); got != 90 {
		t.Fatalf("expected 90 in-board squares, got %d", got)
	}
	if got := BBInPalace.OnesCount(); got != 18 {
		t.Fatalf("expected 18 palace squares, got %d", got)
	}
	if got := BBBishopSquares.OnesCount(); got != 14 {
		t.Fatalf("expected 14 bishop squares, got %d", got)
	}
	if got := BBAdvisorSquares.OnesCount(); got != 10 {
		t.Fatalf("expected 10 advisor squares, got %d", got)
	}
	if BBRedSide.Or(BBBlackSide) != BBAll {
		t.Fatal("river sides should cover the grid")
	}
}

func TestSquareGeometry(t *testing.T) {
	if A0.Mirror() != A9 || E4.Mirror() != E5 {
		t.Fatalf("mirror broken: %s %s", A0.Mirror(), E4.Mirror())
	}
	if !E4.InBoard() || Square(0).InBoard() || Square(50).InBoard() {
		t.Fatal("in-board check broken")
	}
	if E0.Name() != "e0" || I9.Name() != "i9" {
		t.Fatalf("square names broken: %s %s", E0, I9)
	}
	sq, err := SquareFromName("h2")
	if err != nil || sq != H2 {
		t.Fatalf("expected h2 to parse to H2, got %v %v", sq, err)
	}
	if _, err := SquareFromName("j2"); err == nil {
		t.Fatal("expected error for file j")
	}
	if d := SquareDistance(A0, I0); d != 8 {
		t.Fatalf("expected distance 8, got %d", d)
	}
	if d := SquareDistance(E4, E5); d != 1 {
		t.Fatalf("expected distance 1, got %d", d)
	}
}

func TestBetweenAndLine(t *testing.T) {
	tests := []struct {
		a, b  Square
		count int
	}{
		{E0, E9, 8},
		{E9, E0, 8},
		{A0, C0, 1},
		{A0, B0, 0},
		{A0, B1, 0},
		{D4, D5, 0},
	}
	for _, tt := range tests {
		if got := Between(tt.a, tt.b).OnesCount(); got != tt.count {
			t.Fatalf("between(%s,%s): expected %d squares, got %d", tt.a, tt.b, tt.count, got)
		}
	}
	if !Between(E0, E9).Has(E5) || Between(E0, E9).Has(E0) || Between(E0, E9).Has(E9) {
		t.Fatal("between endpoints handling broken")
	}
	if Line(E0, E5) != BBFiles[E0.File()] {
		t.Fatal("line should return the shared file")
	}
	if Line(A2, I2) != BBRanks[A2.Rank()] {
		t.Fatal("line should return the shared rank")
	}
	if !Line(A0, B1).IsEmpty() {
		t.Fatal("line of unrelated squares should be empty")
	}
}

func TestBitboardOps(t *testing.T) {
	bb := BBEmpty.With(E0).With(E9)
	if bb.OnesCount() != 2 || !bb.Has(E0) || !bb.Has(E9) {
		t.Fatalf("with/has broken: %s", bb.Draw())
	}
	if bb.Msb() != E9 {
		t.Fatalf("expected msb E9, got %s", bb.Msb())
	}
	if got := bb.ClearLowestBit(); got.Has(E0) || !got.Has(E9) {
		t.Fatal("clear lowest bit should drop E0")
	}

	if BBSquares[A0].ShiftLeft(16) != BBSquares[A1] {
		t.Fatal("shifting by 16 should move one rank up")
	}
	if BBSquares[A5].ShiftLeft(1) != BBSquares[B5] {
		t.Fatal("shifting by 1 should move one file right")
	}

	var got []Square
	for sq := bb.PopMsb(); sq != NoSquare; sq = bb.PopMsb() {
		got = append(got, sq)
	}
	if len(got) != 2 || got[0] != E9 || got[1] != E0 {
		t.Fatalf("scan order should be high to low, got %v", got)
	}
}

func TestBitboardDraw(t *testing.T) {
	d := BBSquares[E0].Draw()
	if len(d) == 0 || d[0] != '9' {
		t.Fatalf("draw should start with rank 9 label:\n%s", d)
	}
}
