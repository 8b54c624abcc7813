package xiangqi

// Precomputed attack tables.  All of them are immutable after initAttacks and
// may be read concurrently.
//
// Bishop and knight attacks depend only on the occupancy of four neighboring
// squares (the elephant eyes, the horse legs), so each square carries sixteen
// attack sets indexed by a 4-bit occupancy subset.  The reverse knight tables
// answer "which squares could a knight jump FROM to hit this square"; they
// differ from the forward tables because the hobbling leg sits on the
// attacker's side.
var (
	bbPawnAttacks    [2][numOfSquares]Bitboard
	bbPawnRevAttacks [2][numOfSquares]Bitboard

	bbKingAttacks    [numOfSquares]Bitboard
	bbAdvisorAttacks [numOfSquares]Bitboard

	bbBishopAttacks [numOfSquares][16]Bitboard

	bbKnightAttacks    [numOfSquares][16]Bitboard
	bbKnightRevAttacks [numOfSquares][16]Bitboard
)

var rookDeltas = []int{16, -16, -1, 1}

var (
	knightDirections = [4]int{16, 1, -16, -1}
	knightLeaps      = [4][2]int{{33, 31}, {-14, 18}, {-33, -31}, {-18, 14}}

	knightRevDirections = [4]int{15, 17, -15, -17}
	knightRevLeaps      = [4][2]int{{14, 31}, {33, 18}, {-14, -31}, {-18, -33}}

	bishopDirections = [4]int{15, 17, -15, -17}
)

// slidingAttacks walks each delta until it runs off the padded grid, wraps
// around an edge (Chebyshev distance between consecutive squares above 2), or
// hits an occupied square, which is included.
func slidingAttacks(square Square, occupied Bitboard, deltas []int) Bitboard {
	attacks := BBEmpty
	for _, delta := range deltas {
		sq := square
		for {
			prev := sq
			sq += Square(delta)
			if sq < 0 || sq >= numOfSquares || SquareDistance(sq, prev) > 2 {
				break
			}
			attacks = attacks.Or(BBSquares[sq])
			if occupied.Has(sq) {
				break
			}
		}
	}
	return attacks
}

func stepAttacks(square Square, deltas []int) Bitboard {
	return slidingAttacks(square, BBAll, deltas)
}

func rookAttacks(square Square, occupied Bitboard) Bitboard {
	return slidingAttacks(square, occupied, rookDeltas)
}

// cannonAttacks returns capture targets only: the first occupied square on a
// ray is the screen, the second is the target.
func cannonAttacks(square Square, occupied Bitboard) Bitboard {
	attacks := BBEmpty
	for _, delta := range rookDeltas {
		hops := 0
		sq := square
		for {
			prev := sq
			sq += Square(delta)
			if sq < 0 || sq >= numOfSquares || SquareDistance(sq, prev) > 2 {
				break
			}
			if occupied.Has(sq) {
				if hops == 1 {
					attacks = attacks.Or(BBSquares[sq])
					break
				}
				hops++
			}
		}
	}
	return attacks
}

func initAttacks() {
	initPawnAttacks()
	initKingAttacks()
	initAdvisorAttacks()
	initBishopAttacks()
	initKnightAttacks(&bbKnightAttacks, knightLeaps)
	initKnightAttacks(&bbKnightRevAttacks, knightRevLeaps)
}

func initPawnAttacks() {
	for sq := Square(0); sq < numOfSquares; sq++ {
		// Red pawns gain the sideways steps past the river.
		if sq > I4 {
			bbPawnAttacks[Red][sq] = stepAttacks(sq, []int{-1, 16, 1})
			bbPawnRevAttacks[Red][sq] = stepAttacks(sq, []int{-1, -16, 1})
		} else {
			bbPawnAttacks[Red][sq] = stepAttacks(sq, []int{16})
			bbPawnRevAttacks[Red][sq] = stepAttacks(sq, []int{-16})
		}
		if sq < A5 {
			bbPawnAttacks[Black][sq] = stepAttacks(sq, []int{-1, -16, 1})
			bbPawnRevAttacks[Black][sq] = stepAttacks(sq, []int{-1, 16, 1})
		} else {
			bbPawnAttacks[Black][sq] = stepAttacks(sq, []int{-16})
			bbPawnRevAttacks[Black][sq] = stepAttacks(sq, []int{16})
		}
	}
}

func initKingAttacks() {
	for sq := Square(0); sq < numOfSquares; sq++ {
		if !BBInPalace.Has(sq) {
			continue
		}
		bbKingAttacks[sq] = stepAttacks(sq, []int{-16, 16, 1, -1}).And(BBInPalace)
	}
}

func initAdvisorAttacks() {
	for sq := Square(0); sq < numOfSquares; sq++ {
		if !BBAdvisorSquares.Has(sq) {
			continue
		}
		bbAdvisorAttacks[sq] = stepAttacks(sq, []int{15, 17, -15, -17}).And(BBInPalace)
	}
}

func initBishopAttacks() {
	for sq := Square(0); sq < numOfSquares; sq++ {
		if !BBBishopSquares.Has(sq) {
			continue
		}
		side := BBBlackSide
		if BBRedSide.Has(sq) {
			side = BBRedSide
		}
		for idx := 0; idx < 16; idx++ {
			var deltas []int
			for j, d := range bishopDirections {
				if idx>>uint(j)&1 == 0 {
					deltas = append(deltas, 2*d)
				}
			}
			bbBishopAttacks[sq][idx] = stepAttacks(sq, deltas).And(side)
		}
	}
}

func initKnightAttacks(attacks *[numOfSquares][16]Bitboard, leaps [4][2]int) {
	for sq := Square(0); sq < numOfSquares; sq++ {
		if !sq.InBoard() {
			continue
		}
		for idx := 0; idx < 16; idx++ {
			var deltas []int
			for j := range leaps {
				if idx>>uint(j)&1 == 0 {
					deltas = append(deltas, leaps[j][0], leaps[j][1])
				}
			}
			attacks[sq][idx] = stepAttacks(sq, deltas)
		}
	}
}

// occupancyIndex packs the occupancy of the four direction squares around sq
// into the 4-bit subscript the bishop and knight tables are indexed by.
func occupancyIndex(sq Square, directions [4]int, occupied Bitboard) int {
	idx := 0
	for j, d := range directions {
		if occupied.Has(sq + Square(d)) {
			idx |= 1 << uint(j)
		}
	}
	return idx
}

func bishopAttacksFrom(sq Square, occupied Bitboard) Bitboard {
	return bbBishopAttacks[sq][occupancyIndex(sq, bishopDirections, occupied)]
}

func knightAttacksFrom(sq Square, occupied Bitboard) Bitboard {
	return bbKnightAttacks[sq][occupancyIndex(sq, knightDirections, occupied)]
}

func knightRevAttacksFrom(sq Square, occupied Bitboard) Bitboard {
	return bbKnightRevAttacks[sq][occupancyIndex(sq, knightRevDirections, occupied)]
}

// knightBlocker returns the leg square whose occupant would shield the king
// from the given checking knight.
func knightBlocker(king, knight Square) Bitboard {
	for j, d := range knightRevDirections {
		idx := 0xf &^ (1 << uint(j))
		if bbKnightRevAttacks[king][idx].Has(knight) {
			return BBSquares[king+Square(d)]
		}
	}
	return BBEmpty
}
