package xiangqi

import "fmt"

// A Square is an index into the padded 16x16 grid that embeds the 9x10 board.
// The low nibble is the file and the high nibble is the rank, so adding 16
// moves one rank up the board and adding 1 moves one file to the right.  Files
// 3..11 and ranks 3..12 are on the board; everything else is padding.
type Square int

// NoSquare represents the absence of a square.
const NoSquare Square = -1

const (
	A0, B0, C0, D0, E0, F0, G0, H0, I0 Square = 51, 52, 53, 54, 55, 56, 57, 58, 59
	A1, B1, C1, D1, E1, F1, G1, H1, I1 Square = 67, 68, 69, 70, 71, 72, 73, 74, 75
	A2, B2, C2, D2, E2, F2, G2, H2, I2 Square = 83, 84, 85, 86, 87, 88, 89, 90, 91
	A3, B3, C3, D3, E3, F3, G3, H3, I3 Square = 99, 100, 101, 102, 103, 104, 105, 106, 107
	A4, B4, C4, D4, E4, F4, G4, H4, I4 Square = 115, 116, 117, 118, 119, 120, 121, 122, 123
	A5, B5, C5, D5, E5, F5, G5, H5, I5 Square = 131, 132, 133, 134, 135, 136, 137, 138, 139
	A6, B6, C6, D6, E6, F6, G6, H6, I6 Square = 147, 148, 149, 150, 151, 152, 153, 154, 155
	A7, B7, C7, D7, E7, F7, G7, H7, I7 Square = 163, 164, 165, 166, 167, 168, 169, 170, 171
	A8, B8, C8, D8, E8, F8, G8, H8, I8 Square = 179, 180, 181, 182, 183, 184, 185, 186, 187
	A9, B9, C9, D9, E9, F9, G9, H9, I9 Square = 195, 196, 197, 198, 199, 200, 201, 202, 203
)

const numOfSquares = 256

// NewSquare builds a square from padded file (3..11) and rank (3..12) indices.
func NewSquare(file, rank int) Square {
	return Square(rank<<4 | file)
}

// File returns the file nibble of the square.  On-board squares have files
// 3..11, shown as a..i.
func (sq Square) File() int {
	return int(sq) & 0xf
}

// Rank returns the rank nibble of the square.  On-board squares have ranks
// 3..12, shown as 0..9.
func (sq Square) Rank() int {
	return int(sq) >> 4
}

// InBoard reports whether the square is one of the 90 playable squares.
func (sq Square) InBoard() bool {
	if sq < 0 || sq >= numOfSquares {
		return false
	}
	f, r := sq.File(), sq.Rank()
	return f >= 3 && f <= 11 && r >= 3 && r <= 12
}

// Mirror reflects the square across the horizontal midline of the board.
func (sq Square) Mirror() Square {
	return sq ^ 0xf0
}

// Name returns the coordinate name of the square, e.g. "e2", or "-" for
// squares outside the board.
func (sq Square) Name() string {
	if !sq.InBoard() {
		return "-"
	}
	return string(fileNames[sq.File()-3]) + string(rankNames[sq.Rank()-3])
}

// String implements the fmt.Stringer interface.
func (sq Square) String() string {
	return sq.Name()
}

const (
	fileNames = "abcdefghi"
	rankNames = "0123456789"
)

// SquareFromName parses a coordinate name such as "h2".
func SquareFromName(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'i' || s[1] < '0' || s[1] > '9' {
		return NoSquare, fmt.Errorf("xiangqi: invalid square name %q", s)
	}
	return NewSquare(int(s[0]-'a')+3, int(s[1]-'0')+3), nil
}

// SquareDistance returns the Chebyshev distance between two squares.  Sliding
// generators use it to detect wraparound out of the padded grid: a step whose
// distance from the previous square exceeds 2 has wrapped.
func SquareDistance(a, b Square) int {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
