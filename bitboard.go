package xiangqi

import (
	"math/bits"
	"strings"
)

// A Bitboard is a 256-bit board mask with one bit per padded square.  It is
// stored as four 64-bit lanes, lane 0 holding bits 0..63.  Bitboards are
// comparable with == and the zero value is the empty board.
type Bitboard [4]uint64

// BBEmpty is the empty bitboard.
var BBEmpty = Bitboard{}

// BBAll has every bit of the padded grid set, including padding squares.
var BBAll = Bitboard{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}

var (
	// BBSquares holds the single-bit mask of every padded square.
	BBSquares [numOfSquares]Bitboard

	// BBFiles and BBRanks are indexed by the padded file and rank nibbles.
	BBFiles [16]Bitboard
	BBRanks [16]Bitboard

	// BBInBoard masks the 90 playable squares.
	BBInBoard Bitboard

	// BBRedSide and BBBlackSide split the grid at the river.
	BBRedSide   = Bitboard{^uint64(0), ^uint64(0), 0, 0}
	BBBlackSide = Bitboard{0, 0, ^uint64(0), ^uint64(0)}

	// BBInPalace masks both 3x3 palaces.
	BBInPalace Bitboard

	// BBBishopSquares and BBAdvisorSquares are the only squares those piece
	// kinds may ever occupy.
	BBBishopSquares  Bitboard
	BBAdvisorSquares Bitboard

	// BBCorners masks the four rook starting squares.
	BBCorners Bitboard

	bbRedPawnStarts   Bitboard
	bbBlackPawnStarts Bitboard
)

func initMasks() {
	for sq := Square(0); sq < numOfSquares; sq++ {
		var bb Bitboard
		bb[sq>>6] = 1 << (uint(sq) & 63)
		BBSquares[sq] = bb
		BBFiles[sq.File()] = BBFiles[sq.File()].Or(bb)
		BBRanks[sq.Rank()] = BBRanks[sq.Rank()].Or(bb)
		if sq.InBoard() {
			BBInBoard = BBInBoard.Or(bb)
		}
	}

	for _, sq := range []Square{D0, E0, F0, D1, E1, F1, D2, E2, F2, D7, E7, F7, D8, E8, F8, D9, E9, F9} {
		BBInPalace = BBInPalace.Or(BBSquares[sq])
	}
	for _, sq := range []Square{C0, G0, A2, E2, I2, C4, G4, C5, G5, A7, E7, I7, C9, G9} {
		BBBishopSquares = BBBishopSquares.Or(BBSquares[sq])
	}
	for _, sq := range []Square{D0, F0, E1, D2, F2, D7, F7, E8, D9, F9} {
		BBAdvisorSquares = BBAdvisorSquares.Or(BBSquares[sq])
	}
	BBCorners = BBSquares[A0].Or(BBSquares[I0]).Or(BBSquares[A9]).Or(BBSquares[I9])
	for _, sq := range []Square{A3, C3, E3, G3, I3} {
		bbRedPawnStarts = bbRedPawnStarts.Or(BBSquares[sq])
	}
	for _, sq := range []Square{A6, C6, E6, G6, I6} {
		bbBlackPawnStarts = bbBlackPawnStarts.Or(BBSquares[sq])
	}
}

// And returns the intersection of two bitboards.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b[0] & o[0], b[1] & o[1], b[2] & o[2], b[3] & o[3]}
}

// AndNot returns the squares of b not in o.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b[0] &^ o[0], b[1] &^ o[1], b[2] &^ o[2], b[3] &^ o[3]}
}

// Or returns the union of two bitboards.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b[0] | o[0], b[1] | o[1], b[2] | o[2], b[3] | o[3]}
}

// Xor returns the symmetric difference of two bitboards.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{b[0] ^ o[0], b[1] ^ o[1], b[2] ^ o[2], b[3] ^ o[3]}
}

// Not returns the complement of the bitboard over the full padded grid.
func (b Bitboard) Not() Bitboard {
	return Bitboard{^b[0], ^b[1], ^b[2], ^b[3]}
}

// IsEmpty reports whether no bit is set.
func (b Bitboard) IsEmpty() bool {
	return b == BBEmpty
}

// Intersects reports whether the two bitboards share any square.
func (b Bitboard) Intersects(o Bitboard) bool {
	return b[0]&o[0] != 0 || b[1]&o[1] != 0 || b[2]&o[2] != 0 || b[3]&o[3] != 0
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(sq Square) bool {
	if sq < 0 || sq >= numOfSquares {
		return false
	}
	return b[sq>>6]&(1<<(uint(sq)&63)) != 0
}

// With returns the bitboard with the square's bit set.
func (b Bitboard) With(sq Square) Bitboard {
	return b.Or(BBSquares[sq])
}

// Without returns the bitboard with the square's bit cleared.
func (b Bitboard) Without(sq Square) Bitboard {
	return b.AndNot(BBSquares[sq])
}

// OnesCount returns the number of set squares.
func (b Bitboard) OnesCount() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) +
		bits.OnesCount64(b[2]) + bits.OnesCount64(b[3])
}

// Msb returns the highest set square, or NoSquare if the bitboard is empty.
func (b Bitboard) Msb() Square {
	for i := 3; i >= 0; i-- {
		if b[i] != 0 {
			return Square(i<<6 + bits.Len64(b[i]) - 1)
		}
	}
	return NoSquare
}

// PopMsb removes and returns the highest set square.  Iteration over a
// bitboard walks from the highest square down:
//
//	for sq := t.PopMsb(); sq != NoSquare; sq = t.PopMsb() { ... }
func (b *Bitboard) PopMsb() Square {
	sq := b.Msb()
	if sq != NoSquare {
		b[sq>>6] &^= 1 << (uint(sq) & 63)
	}
	return sq
}

// ClearLowestBit returns the bitboard with its lowest set bit cleared, the
// 256-bit rendition of bb & (bb-1).
func (b Bitboard) ClearLowestBit() Bitboard {
	for i := 0; i < 4; i++ {
		if b[i] != 0 {
			b[i] &= b[i] - 1
			return b
		}
	}
	return b
}

// ShiftLeft shifts the whole 256-bit value left by n bits.
func (b Bitboard) ShiftLeft(n int) Bitboard {
	if n <= 0 {
		return b
	}
	if n >= 256 {
		return BBEmpty
	}
	var r Bitboard
	word, bit := n>>6, uint(n&63)
	for i := 3; i >= word; i-- {
		r[i] = b[i-word] << bit
		if bit > 0 && i-word-1 >= 0 {
			r[i] |= b[i-word-1] >> (64 - bit)
		}
	}
	return r
}

// Squares returns the set squares from the highest down.
func (b Bitboard) Squares() []Square {
	var out []Square
	for sq := b.PopMsb(); sq != NoSquare; sq = b.PopMsb() {
		out = append(out, sq)
	}
	return out
}

// String returns a 256 character string of 1s and 0s starting with the most
// significant bit.
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 3; i >= 0; i-- {
		for bit := 63; bit >= 0; bit-- {
			if b[i]&(1<<uint(bit)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}

// Draw returns a visual representation of the bitboard useful for debugging.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	for rank := 12; rank >= 3; rank-- {
		sb.WriteByte(rankNames[rank-3])
		for file := 3; file <= 11; file++ {
			sb.WriteByte(' ')
			if b.Has(NewSquare(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h i\n")
	return sb.String()
}

// Between returns the squares strictly between a and b when they share a file
// or a rank, and the empty bitboard otherwise.  Adjacent squares on a line
// have nothing between them.
func Between(a, b Square) Bitboard {
	var bb Bitboard
	switch {
	case a.File() == b.File():
		bb = BBFiles[a.File()].And(BBAll.ShiftLeft(int(a)).Xor(BBAll.ShiftLeft(int(b))))
	case a.Rank() == b.Rank():
		bb = BBRanks[a.Rank()].And(BBAll.ShiftLeft(int(a)).Xor(BBAll.ShiftLeft(int(b))))
	default:
		return BBEmpty
	}
	return bb.ClearLowestBit()
}

// Line returns the full file or rank containing both squares, or the empty
// bitboard when they share neither.
func Line(a, b Square) Bitboard {
	switch {
	case a.File() == b.File():
		return BBFiles[a.File()]
	case a.Rank() == b.Rank():
		return BBRanks[a.Rank()]
	default:
		return BBEmpty
	}
}
