package xiangqi

import (
	"bytes"
	"crypto/md5"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// A Board holds a full game position: one bitboard per piece kind, per-color
// occupancy, the side to move, the fullmove counter and the move/undo stack.
// A Board is exclusively owned by its caller; no operation blocks and no
// internal locking exists.  Callers that want to search concurrently clone
// the board per worker with Copy.
type Board struct {
	pawns    Bitboard
	cannons  Bitboard
	rooks    Bitboard
	knights  Bitboard
	bishops  Bitboard
	advisors Bitboard
	kings    Bitboard

	occupiedCo [2]Bitboard
	occupied   Bitboard

	turn           Color
	fullmoveNumber int

	moveStack  []Move
	stateStack []boardState
}

// boardState is the undo record for one push: a bit-exact snapshot of every
// bitboard plus turn and fullmove, so Pop is O(1) with no branching on
// capture kinds.
type boardState struct {
	pawns    Bitboard
	cannons  Bitboard
	rooks    Bitboard
	knights  Bitboard
	bishops  Bitboard
	advisors Bitboard
	kings    Bitboard

	occupiedR Bitboard
	occupiedB Bitboard
	occupied  Bitboard

	turn           Color
	fullmoveNumber int
}

// NewBoard returns a board in the starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// NewEmptyBoard returns a board with no pieces, red to move.
func NewEmptyBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// NewBoardFromFEN returns a board loaded from a FEN string.
func NewBoardFromFEN(fen string) (*Board, error) {
	b := &Board{}
	if err := b.SetFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset restores the starting position and empties the move stack.
func (b *Board) Reset() {
	b.turn = Red
	b.fullmoveNumber = 1
	b.moveStack = b.moveStack[:0]
	b.stateStack = b.stateStack[:0]
	b.resetBoard()
}

// Clear removes every piece and empties the move stack.
func (b *Board) Clear() {
	b.turn = Red
	b.fullmoveNumber = 1
	b.moveStack = b.moveStack[:0]
	b.stateStack = b.stateStack[:0]
	b.clearBoard()
}

func (b *Board) resetBoard() {
	b.pawns = bbRedPawnStarts.Or(bbBlackPawnStarts)
	b.knights = BBSquares[B0].Or(BBSquares[H0]).Or(BBSquares[B9]).Or(BBSquares[H9])
	b.bishops = BBSquares[C0].Or(BBSquares[G0]).Or(BBSquares[C9]).Or(BBSquares[G9])
	b.rooks = BBCorners
	b.cannons = BBSquares[B2].Or(BBSquares[H2]).Or(BBSquares[B7]).Or(BBSquares[H7])
	b.advisors = BBSquares[D0].Or(BBSquares[F0]).Or(BBSquares[D9]).Or(BBSquares[F9])
	b.kings = BBSquares[E0].Or(BBSquares[E9])

	b.occupiedCo[Red] = BBRanks[3].And(BBInBoard).
		Or(BBSquares[B2]).Or(BBSquares[H2]).Or(bbRedPawnStarts)
	b.occupiedCo[Black] = BBRanks[12].And(BBInBoard).
		Or(BBSquares[B7]).Or(BBSquares[H7]).Or(bbBlackPawnStarts)
	b.occupied = b.occupiedCo[Red].Or(b.occupiedCo[Black])
}

func (b *Board) clearBoard() {
	b.pawns = BBEmpty
	b.knights = BBEmpty
	b.bishops = BBEmpty
	b.rooks = BBEmpty
	b.cannons = BBEmpty
	b.advisors = BBEmpty
	b.kings = BBEmpty
	b.occupiedCo[Red] = BBEmpty
	b.occupiedCo[Black] = BBEmpty
	b.occupied = BBEmpty
}

func (b *Board) bbForType(t PieceType) *Bitboard {
	switch t {
	case Pawn:
		return &b.pawns
	case Knight:
		return &b.knights
	case Bishop:
		return &b.bishops
	case Rook:
		return &b.rooks
	case Cannon:
		return &b.cannons
	case Advisor:
		return &b.advisors
	case King:
		return &b.kings
	}
	return nil
}

// Turn returns the color to move.
func (b *Board) Turn() Color {
	return b.turn
}

// FullmoveNumber returns the fullmove counter.  It starts at 1 and increments
// after every black move.
func (b *Board) FullmoveNumber() int {
	return b.fullmoveNumber
}

// Occupied returns the union occupancy of both sides.
func (b *Board) Occupied() Bitboard {
	return b.occupied
}

// OccupiedCo returns the occupancy of one side.
func (b *Board) OccupiedCo(c Color) Bitboard {
	return b.occupiedCo[c]
}

// PiecesMask returns the squares holding pieces of the given type and color.
func (b *Board) PiecesMask(t PieceType, c Color) Bitboard {
	bb := b.bbForType(t)
	if bb == nil {
		return BBEmpty
	}
	return bb.And(b.occupiedCo[c])
}

// PieceTypeAt returns the type of the piece on the square, or NoPieceType.
func (b *Board) PieceTypeAt(sq Square) PieceType {
	mask := BBSquares[sq]
	switch {
	case !b.occupied.Intersects(mask):
		return NoPieceType
	case b.pawns.Intersects(mask):
		return Pawn
	case b.knights.Intersects(mask):
		return Knight
	case b.bishops.Intersects(mask):
		return Bishop
	case b.rooks.Intersects(mask):
		return Rook
	case b.cannons.Intersects(mask):
		return Cannon
	case b.advisors.Intersects(mask):
		return Advisor
	default:
		return King
	}
}

// PieceAt returns the piece on the square, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	t := b.PieceTypeAt(sq)
	if t == NoPieceType {
		return NoPiece
	}
	return GetPiece(t, b.ColorAt(sq))
}

// ColorAt returns the color of the piece on the square, or NoColor.
func (b *Board) ColorAt(sq Square) Color {
	mask := BBSquares[sq]
	if b.occupiedCo[Red].Intersects(mask) {
		return Red
	}
	if b.occupiedCo[Black].Intersects(mask) {
		return Black
	}
	return NoColor
}

// King returns the square of the given color's king, or NoSquare.
func (b *Board) King(c Color) Square {
	return b.kings.And(b.occupiedCo[c]).Msb()
}

func (b *Board) removePieceAt(sq Square) PieceType {
	t := b.PieceTypeAt(sq)
	if t == NoPieceType {
		return NoPieceType
	}
	mask := BBSquares[sq]
	bb := b.bbForType(t)
	*bb = bb.Xor(mask)
	b.occupied = b.occupied.Xor(mask)
	b.occupiedCo[Red] = b.occupiedCo[Red].AndNot(mask)
	b.occupiedCo[Black] = b.occupiedCo[Black].AndNot(mask)
	return t
}

func (b *Board) setPieceAt(sq Square, t PieceType, c Color) {
	b.removePieceAt(sq)
	mask := BBSquares[sq]
	bb := b.bbForType(t)
	if bb == nil {
		return
	}
	*bb = bb.Or(mask)
	b.occupied = b.occupied.Or(mask)
	b.occupiedCo[c] = b.occupiedCo[c].Or(mask)
}

// RemovePieceAt removes and returns the piece on the square.  Removing from
// an empty square is a no-op and returns NoPiece.
func (b *Board) RemovePieceAt(sq Square) Piece {
	c := b.ColorAt(sq)
	t := b.removePieceAt(sq)
	if t == NoPieceType {
		return NoPiece
	}
	return GetPiece(t, c)
}

// SetPieceAt puts a piece on the square, first removing any occupant.
// Setting NoPiece removes.
func (b *Board) SetPieceAt(sq Square, p Piece) {
	if p == NoPiece {
		b.removePieceAt(sq)
		return
	}
	b.setPieceAt(sq, p.Type(), p.Color())
}

func (b *Board) boardState() boardState {
	return boardState{
		pawns:          b.pawns,
		cannons:        b.cannons,
		rooks:          b.rooks,
		knights:        b.knights,
		bishops:        b.bishops,
		advisors:       b.advisors,
		kings:          b.kings,
		occupiedR:      b.occupiedCo[Red],
		occupiedB:      b.occupiedCo[Black],
		occupied:       b.occupied,
		turn:           b.turn,
		fullmoveNumber: b.fullmoveNumber,
	}
}

func (s boardState) restore(b *Board) {
	b.pawns = s.pawns
	b.cannons = s.cannons
	b.rooks = s.rooks
	b.knights = s.knights
	b.bishops = s.bishops
	b.advisors = s.advisors
	b.kings = s.kings
	b.occupiedCo[Red] = s.occupiedR
	b.occupiedCo[Black] = s.occupiedB
	b.occupied = s.occupied
	b.turn = s.turn
	b.fullmoveNumber = s.fullmoveNumber
}

// Push plays a move.  Push expects the move to be pseudo-legal: passing a
// move with no piece on the from-square is a programming error and panics
// with the position and the move.  The null move only passes the turn.
func (b *Board) Push(m Move) {
	b.moveStack = append(b.moveStack, m)
	b.stateStack = append(b.stateStack, b.boardState())

	if b.turn == Black {
		b.fullmoveNumber++
	}

	if m.IsNull() {
		b.turn = b.turn.Other()
		return
	}

	t := b.removePieceAt(m.From)
	if t == NoPieceType {
		panic(fmt.Sprintf("xiangqi: push expects move to be pseudo-legal, but got %s in %s", m, b.BoardFEN()))
	}
	b.setPieceAt(m.To, t, b.turn)
	b.turn = b.turn.Other()
}

// Pop undoes the last move and returns it.  The board is restored bit-exact.
// Popping an empty history reports ok == false.
func (b *Board) Pop() (Move, bool) {
	if len(b.moveStack) == 0 {
		return Move{}, false
	}
	m := b.moveStack[len(b.moveStack)-1]
	b.moveStack = b.moveStack[:len(b.moveStack)-1]
	s := b.stateStack[len(b.stateStack)-1]
	b.stateStack = b.stateStack[:len(b.stateStack)-1]
	s.restore(b)
	return m, true
}

// Peek returns the last move without undoing it.
func (b *Board) Peek() (Move, bool) {
	if len(b.moveStack) == 0 {
		return Move{}, false
	}
	return b.moveStack[len(b.moveStack)-1], true
}

// Moves returns a copy of the move history, oldest first.
func (b *Board) Moves() []Move {
	return append([]Move(nil), b.moveStack...)
}

// PushICCS decodes coordinate notation and plays the move.  Undecodable or
// illegal input is reported as an error and leaves the board untouched.
func (b *Board) PushICCS(iccs string) error {
	m, err := MoveFromICCS(iccs)
	if err != nil {
		return err
	}
	if !b.IsLegal(m) {
		return fmt.Errorf("xiangqi: illegal move %s in %s", iccs, b.FEN())
	}
	b.Push(m)
	return nil
}

// Copy returns a deep copy of the position.  The move history is not carried
// over.
func (b *Board) Copy() *Board {
	c := &Board{}
	b.boardState().restore(c)
	return c
}

// Mirror returns the position reflected across the river with the colors
// swapped, so a legal position stays legal.
func (b *Board) Mirror() *Board {
	m := NewEmptyBoard()
	t := b.occupied
	for sq := t.PopMsb(); sq != NoSquare; sq = t.PopMsb() {
		p := b.PieceAt(sq)
		m.setPieceAt(sq.Mirror(), p.Type(), p.Color().Other())
	}
	m.turn = b.turn.Other()
	m.fullmoveNumber = b.fullmoveNumber
	return m
}

// Eq reports whether the two boards hold the same position.
func (b *Board) Eq(other *Board) bool {
	return b.pawns == other.pawns &&
		b.cannons == other.cannons &&
		b.rooks == other.rooks &&
		b.knights == other.knights &&
		b.bishops == other.bishops &&
		b.advisors == other.advisors &&
		b.kings == other.kings &&
		b.occupiedCo == other.occupiedCo &&
		b.turn == other.turn
}

// String implements the fmt.Stringer interface and returns an ASCII grid,
// black side on top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 12; rank >= 3; rank-- {
		for file := 3; file <= 11; file++ {
			if file > 3 {
				sb.WriteByte(' ')
			}
			p := b.PieceAt(NewSquare(file, rank))
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteString(p.Symbol())
			}
		}
		if rank > 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Draw returns a visual representation of the board useful for debugging.
func (b *Board) Draw() string {
	return "\n" + b.String() + "\n"
}

// Chinese returns the board rendered with Chinese piece characters, rank
// labels on the left and full-width file letters below.
func (b *Board) Chinese() string {
	var sb strings.Builder
	for rank := 12; rank >= 3; rank-- {
		sb.WriteByte(rankNames[rank-3])
		sb.WriteByte(' ')
		for file := 3; file <= 11; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p == NoPiece {
				sb.WriteString("．")
			} else {
				sb.WriteString(p.Chinese())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ａｂｃｄｅｆｇｈｉ")
	return sb.String()
}

// MarshalText implements the encoding.TextMarshaler interface and encodes the
// position's FEN.
func (b *Board) MarshalText() ([]byte, error) {
	return []byte(b.FEN()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface and assumes
// the data is in the FEN format.
func (b *Board) UnmarshalText(text []byte) error {
	return b.SetFEN(string(text))
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.  The seven
// piece bitboards, both occupancies, the union occupancy, the turn and the
// fullmove number are encoded big-endian.
func (b *Board) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	for _, bb := range []Bitboard{
		b.pawns, b.cannons, b.rooks, b.knights, b.bishops, b.advisors, b.kings,
		b.occupiedCo[Red], b.occupiedCo[Black], b.occupied,
	} {
		if err := binary.Write(buf, binary.BigEndian, bb); err != nil {
			return nil, err
		}
	}
	if err := binary.Write(buf, binary.BigEndian, uint8(b.turn)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.BigEndian, uint32(b.fullmoveNumber)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const boardBinaryLen = 10*32 + 1 + 4

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (b *Board) UnmarshalBinary(data []byte) error {
	if len(data) != boardBinaryLen {
		return errors.New("xiangqi: invalid number of bytes for board unmarshal binary")
	}
	buf := bytes.NewReader(data)
	for _, bb := range []*Bitboard{
		&b.pawns, &b.cannons, &b.rooks, &b.knights, &b.bishops, &b.advisors, &b.kings,
		&b.occupiedCo[Red], &b.occupiedCo[Black], &b.occupied,
	} {
		if err := binary.Read(buf, binary.BigEndian, bb); err != nil {
			return err
		}
	}
	var turn uint8
	if err := binary.Read(buf, binary.BigEndian, &turn); err != nil {
		return err
	}
	var fullmove uint32
	if err := binary.Read(buf, binary.BigEndian, &fullmove); err != nil {
		return err
	}
	b.turn = Color(turn)
	b.fullmoveNumber = int(fullmove)
	b.moveStack = b.moveStack[:0]
	b.stateStack = b.stateStack[:0]
	return nil
}

// Hash returns a digest of the position.
func (b *Board) Hash() [16]byte {
	data, _ := b.MarshalBinary()
	return md5.Sum(data)
}
