package xiangqi

// AttacksMask returns the raw attack set of the piece on the square under the
// current occupancy.  Own-color squares are not subtracted, so the result
// serves both move generation and threat queries.  An empty square attacks
// nothing.
func (b *Board) AttacksMask(sq Square) Bitboard {
	mask := BBSquares[sq]

	switch {
	case b.pawns.Intersects(mask):
		color := Black
		if b.occupiedCo[Red].Intersects(mask) {
			color = Red
		}
		return bbPawnAttacks[color][sq]
	case b.kings.Intersects(mask):
		// The rook ray folds the flying generals rule into the king's
		// attack set: an enemy king on the same open file is "attacked".
		return bbKingAttacks[sq].Or(rookAttacks(sq, b.occupied).And(b.kings))
	case b.advisors.Intersects(mask):
		return bbAdvisorAttacks[sq]
	case b.knights.Intersects(mask):
		return knightAttacksFrom(sq, b.occupied)
	case b.bishops.Intersects(mask):
		return bishopAttacksFrom(sq, b.occupied)
	case b.rooks.Intersects(mask):
		return rookAttacks(sq, b.occupied)
	case b.cannons.Intersects(mask):
		// Cannons capture over a screen but slide like rooks onto empty
		// squares.
		return cannonAttacks(sq, b.occupied).
			Or(rookAttacks(sq, b.occupied).AndNot(b.occupied))
	}
	return BBEmpty
}

func (b *Board) attackersMask(c Color, sq Square, occupied Bitboard) Bitboard {
	cannon := cannonAttacks(sq, occupied)
	rook := rookAttacks(sq, occupied)

	attackers := cannon.And(b.cannons).
		Or(rook.And(b.rooks)).
		Or(knightRevAttacksFrom(sq, occupied).And(b.knights)).
		Or(bishopAttacksFrom(sq, occupied).And(b.bishops)).
		Or(bbPawnRevAttacks[c][sq].And(b.pawns)).
		Or(bbAdvisorAttacks[sq].And(b.advisors)).
		Or(bbKingAttacks[sq].Or(rook.And(b.kings)).And(b.kings))
	return attackers.And(b.occupiedCo[c])
}

// AttackersMask returns the squares of the given color's pieces that attack
// the square.  King-to-king "attacks" along an open file are included, which
// is how the flying generals rule enters every safety query.
func (b *Board) AttackersMask(c Color, sq Square) Bitboard {
	return b.attackersMask(c, sq, b.occupied)
}

// IsAttackedBy reports whether any piece of the given color attacks the
// square.
func (b *Board) IsAttackedBy(c Color, sq Square) bool {
	return !b.AttackersMask(c, sq).IsEmpty()
}

// CheckersMask returns the enemy pieces currently giving check.
func (b *Board) CheckersMask() Bitboard {
	king := b.King(b.turn)
	if king == NoSquare {
		return BBEmpty
	}
	return b.AttackersMask(b.turn.Other(), king)
}

// IsCheck reports whether the side to move is in check.
func (b *Board) IsCheck() bool {
	return !b.CheckersMask().IsEmpty()
}

// IsCheckmate reports whether the side to move is checkmated.  A board with
// no king is never checkmated.
func (b *Board) IsCheckmate() bool {
	return b.IsCheck() && !b.HasLegalMove()
}

// IsStalemate reports whether the side to move has no legal move while not in
// check.  In xiangqi this loses for the stalled side.
func (b *Board) IsStalemate() bool {
	return b.King(b.turn) != NoSquare && !b.IsCheck() && !b.HasLegalMove()
}

// sliderBlocker records a pin line toward the own king.  limit is the number
// of pieces that may remain strictly between king and sniper after a move
// touching the line: 0 for rook and king rays, 1 for cannon rays.  The cannon
// entry covers both the classic screened pin (two pieces between) and the
// empty-line pin (none between), since either collapses to a real check
// exactly when the post-move count hits 1.
type sliderBlocker struct {
	mask   Bitboard
	sniper Bitboard
	limit  int
}

// knightBlockerPin records an own piece standing on the leg of an enemy
// knight that would otherwise leap onto the king.  When exactly one knight
// exploits the leg its square is kept so the pinned piece may still capture
// it.
type knightBlockerPin struct {
	leg      Bitboard
	attacker Bitboard
}

func (b *Board) sliderBlockers(king Square) []sliderBlocker {
	rays := rookAttacks(king, BBEmpty)
	enemy := b.occupiedCo[b.turn.Other()]

	var blockers []sliderBlocker

	cannons := rays.And(b.cannons).And(enemy)
	for sniper := cannons.PopMsb(); sniper != NoSquare; sniper = cannons.PopMsb() {
		mask := Between(king, sniper)
		switch mask.And(b.occupied).OnesCount() {
		case 2:
			// Screen plus one blocker.
			blockers = append(blockers, sliderBlocker{mask, BBSquares[sniper], 1})
		case 0:
			// Empty-line cannon: any piece entering the line becomes a
			// screen while the king stays put.
			blockers = append(blockers, sliderBlocker{mask, BBSquares[sniper], 1})
		}
	}

	rooksAndKings := rays.And(b.rooks.Or(b.kings)).And(enemy)
	for sniper := rooksAndKings.PopMsb(); sniper != NoSquare; sniper = rooksAndKings.PopMsb() {
		mask := Between(king, sniper)
		if mask.And(b.occupied).OnesCount() == 1 {
			blockers = append(blockers, sliderBlocker{mask, BBSquares[sniper], 0})
		}
	}

	return blockers
}

func (b *Board) knightBlockers(king Square) []knightBlockerPin {
	knights := b.knights.And(b.occupiedCo[b.turn.Other()])
	if knights.IsEmpty() {
		return nil
	}
	own := b.occupiedCo[b.turn]

	var blockers []knightBlockerPin
	for j, d := range knightRevDirections {
		idx := 0xf &^ (1 << uint(j))
		attackKnights := bbKnightRevAttacks[king][idx].And(knights)
		leg := BBSquares[king+Square(d)].And(own)
		if attackKnights.IsEmpty() || leg.IsEmpty() {
			continue
		}
		if attackKnights.OnesCount() == 1 {
			blockers = append(blockers, knightBlockerPin{leg, attackKnights})
		} else {
			blockers = append(blockers, knightBlockerPin{leg, BBEmpty})
		}
	}
	return blockers
}

// isSafe is the pin predicate: it decides whether a pseudo-legal move leaves
// the own king unattacked, without materializing the post-move board.
func (b *Board) isSafe(king Square, sliders []sliderBlocker, knights []knightBlockerPin, m Move) bool {
	if m.From == king {
		// The king must be lifted off the occupancy so a rook or cannon
		// shadowing it keeps covering the squares behind it.
		occupied := b.occupied.AndNot(BBSquares[king])
		return b.attackersMask(b.turn.Other(), m.To, occupied).IsEmpty()
	}

	from := BBSquares[m.From]
	to := BBSquares[m.To]

	for _, kb := range knights {
		if kb.leg.Intersects(from) && !kb.attacker.Intersects(to) {
			return false
		}
	}

	for _, sb := range sliders {
		if !sb.mask.Intersects(from) && !sb.mask.Intersects(to) {
			continue
		}
		if sb.sniper.Intersects(to) {
			continue
		}
		onLine := b.occupied.And(sb.mask).AndNot(from).Or(to.And(sb.mask))
		if onLine.OnesCount() == sb.limit {
			return false
		}
	}

	return true
}

// generatePseudoLegal yields every move of the side to move whose from-square
// and to-square fall in the given masks, without any king-safety filtering.
// It returns false when the consumer stopped early.
func (b *Board) generatePseudoLegal(fromMask, toMask Bitboard, yield func(Move) bool) bool {
	fromSquares := b.occupiedCo[b.turn].And(fromMask)
	for from := fromSquares.PopMsb(); from != NoSquare; from = fromSquares.PopMsb() {
		moves := b.AttacksMask(from).AndNot(b.occupiedCo[b.turn]).And(toMask)
		for to := moves.PopMsb(); to != NoSquare; to = moves.PopMsb() {
			if !yield(Move{From: from, To: to}) {
				return false
			}
		}
	}
	return true
}

// generateEvasions yields candidate answers to a check: king steps off the
// attacked shadow, blocks, checker captures, screen dismantling for cannon
// checks and leg blocks for knight checks.  Candidates still pass through
// isSafe before being reported legal.
func (b *Board) generateEvasions(king Square, checkers, fromMask, toMask Bitboard, yield func(Move) bool) bool {
	// Squares the king may not flee to along a checking line.
	attacked := BBEmpty
	rookCheckers := checkers.And(b.rooks)
	for checker := rookCheckers.PopMsb(); checker != NoSquare; checker = rookCheckers.PopMsb() {
		attacked = attacked.Or(Line(king, checker).AndNot(BBSquares[checker]))
	}
	cannonCheckers := checkers.And(b.cannons)
	for checker := cannonCheckers.PopMsb(); checker != NoSquare; checker = cannonCheckers.PopMsb() {
		// Fleeing between screen and cannon breaks the screen geometry, so
		// those squares stay available.
		screen := Between(king, checker).And(b.occupied)
		shadow := BBSquares[checker].Or(screen)
		if screenSq := screen.Msb(); screenSq != NoSquare {
			shadow = shadow.Or(Between(screenSq, checker))
		}
		attacked = attacked.Or(Line(king, checker).AndNot(shadow).AndNot(BBSquares[checker]))
	}

	if fromMask.Has(king) {
		targets := bbKingAttacks[king].AndNot(b.occupiedCo[b.turn]).AndNot(attacked).And(toMask)
		for to := targets.PopMsb(); to != NoSquare; to = targets.PopMsb() {
			if !yield(Move{From: king, To: to}) {
				return false
			}
		}
	}

	switch checkers.OnesCount() {
	case 1:
		checker := checkers.Msb()
		switch {
		case checkers.Intersects(b.rooks.Or(b.kings)):
			target := Between(king, checker).Or(checkers)
			return b.generatePseudoLegal(fromMask.AndNot(b.kings), target.And(toMask), yield)
		case checkers.Intersects(b.cannons):
			span := Between(king, checker)
			screen := span.And(b.occupied)
			// Insert a second body onto the line, or capture the cannon.
			blockTarget := span.AndNot(b.occupied).Or(checkers)
			if !b.generatePseudoLegal(fromMask.AndNot(b.kings).AndNot(screen), blockTarget.And(toMask), yield) {
				return false
			}
			// Dismantle the screen: its piece may go anywhere off the span.
			return b.generatePseudoLegal(fromMask.AndNot(b.kings).And(screen), toMask.AndNot(span), yield)
		case checkers.Intersects(b.knights):
			return b.generatePseudoLegal(fromMask.AndNot(b.kings), knightBlocker(king, checker).And(toMask), yield)
		}
	case 2:
		// Rook and cannon on one line with the king on that line but
		// outside their span: the rook is the cannon's screen, so a piece
		// put between king and rook blocks the rook and gives the cannon a
		// second screen, answering both.  Every other double check allows
		// king moves only.
		cannonChecker := checkers.And(b.cannons).Msb()
		rookChecker := checkers.And(b.rooks).Msb()
		if cannonChecker != NoSquare && rookChecker != NoSquare &&
			Line(cannonChecker, rookChecker).Has(king) &&
			!Between(cannonChecker, rookChecker).Has(king) {
			return b.generatePseudoLegal(fromMask.AndNot(b.kings), Between(king, rookChecker).And(toMask), yield)
		}
	}
	return true
}

func (b *Board) generateLegal(fromMask, toMask Bitboard, yield func(Move) bool) bool {
	kingMask := b.kings.And(b.occupiedCo[b.turn])
	if kingMask.IsEmpty() {
		return b.generatePseudoLegal(fromMask, toMask, yield)
	}
	king := kingMask.Msb()
	sliders := b.sliderBlockers(king)
	knights := b.knightBlockers(king)
	checkers := b.AttackersMask(b.turn.Other(), king)

	filtered := func(m Move) bool {
		if !b.isSafe(king, sliders, knights, m) {
			return true
		}
		return yield(m)
	}
	if !checkers.IsEmpty() {
		return b.generateEvasions(king, checkers, fromMask, toMask, filtered)
	}
	return b.generatePseudoLegal(fromMask, toMask, filtered)
}

// GeneratePseudoLegalMoves returns the pseudo-legal moves whose endpoints lie
// in the given masks.
func (b *Board) GeneratePseudoLegalMoves(fromMask, toMask Bitboard) []Move {
	var moves []Move
	b.generatePseudoLegal(fromMask.And(BBInBoard), toMask.And(BBInBoard), func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// GenerateLegalMoves returns exactly the legal moves whose endpoints lie in
// the given masks.
func (b *Board) GenerateLegalMoves(fromMask, toMask Bitboard) []Move {
	var moves []Move
	b.generateLegal(fromMask.And(BBInBoard), toMask.And(BBInBoard), func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// PseudoLegalMoves returns every pseudo-legal move.
func (b *Board) PseudoLegalMoves() []Move {
	return b.GeneratePseudoLegalMoves(BBInBoard, BBInBoard)
}

// LegalMoves returns every legal move.
func (b *Board) LegalMoves() []Move {
	return b.GenerateLegalMoves(BBInBoard, BBInBoard)
}

// HasLegalMove reports whether any legal move exists, stopping at the first.
func (b *Board) HasLegalMove() bool {
	found := false
	b.generateLegal(BBInBoard, BBInBoard, func(Move) bool {
		found = true
		return false
	})
	return found
}

// IsPseudoLegal reports whether the move obeys piece movement under the
// current occupancy, ignoring king safety.
func (b *Board) IsPseudoLegal(m Move) bool {
	if m.IsNull() {
		return false
	}
	if b.PieceTypeAt(m.From) == NoPieceType {
		return false
	}
	fromMask := BBSquares[m.From]
	toMask := BBSquares[m.To]
	if !b.occupiedCo[b.turn].Intersects(fromMask) {
		return false
	}
	if b.occupiedCo[b.turn].Intersects(toMask) {
		return false
	}
	return b.AttacksMask(m.From).Intersects(toMask)
}

// IsLegal reports whether the move is fully legal for the side to move.
func (b *Board) IsLegal(m Move) bool {
	return b.IsPseudoLegal(m) && !b.IsIntoCheck(m)
}

// IsIntoCheck reports whether playing the move would leave the own king
// attacked, including by exposing the flying generals.
func (b *Board) IsIntoCheck(m Move) bool {
	king := b.King(b.turn)
	if king == NoSquare {
		return false
	}

	checkers := b.AttackersMask(b.turn.Other(), king)
	if !checkers.IsEmpty() && !b.evasionsContain(king, checkers, m) {
		return true
	}

	return !b.isSafe(king, b.sliderBlockers(king), b.knightBlockers(king), m)
}

func (b *Board) evasionsContain(king Square, checkers Bitboard, m Move) bool {
	found := false
	b.generateEvasions(king, checkers, BBSquares[m.From], BBSquares[m.To], func(got Move) bool {
		if got == m {
			found = true
			return false
		}
		return true
	})
	return found
}
