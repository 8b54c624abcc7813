package xiangqi

import (
	"fmt"
	"io"
)

// An Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress or ended without a result.
	NoOutcome Outcome = "*"
	// RedWon indicates that red won the game.
	RedWon Outcome = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-1"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// A Method is the method that generated the outcome.
type Method uint8

const (
	// NoMethod indicates that an outcome hasn't occurred or that the method
	// can't be determined.
	NoMethod Method = iota
	// MethodCheckmate indicates that the game was won by checkmate.
	MethodCheckmate
	// MethodStalemate indicates that the game was won by stalemating the
	// opponent, which loses in xiangqi.
	MethodStalemate
	// MethodResignation indicates that the game was won by resignation.
	MethodResignation
)

// TagPair represents metadata in a key value pairing used in game records.
type TagPair struct {
	Key   string
	Value string
}

// A Game represents a single game of xiangqi: a board plus its record
// metadata and outcome.
type Game struct {
	tagPairs map[string]string
	board    *Board
	outcome  Outcome
	method   Method
}

// NewGame returns a game in the starting position.
func NewGame() *Game {
	return &Game{
		board:   NewBoard(),
		outcome: NoOutcome,
		method:  NoMethod,
	}
}

// NewGameFromFEN returns a game starting from the given FEN.  Since FEN
// doesn't encode prior moves, the move list will be empty.
func NewGameFromFEN(fen string) (*Game, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		board:   board,
		outcome: NoOutcome,
		method:  NoMethod,
	}
	g.updateOutcome()
	return g, nil
}

// NewGameFromRecord parses a game record from the reader.
func NewGameFromRecord(r io.Reader) (*Game, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decodeRecord(string(data))
}

// Board returns the game's board.  Mutating it directly bypasses outcome
// tracking.
func (g *Game) Board() *Board {
	return g.board
}

// Move plays a move.  An error is returned if the move is illegal or the game
// has already been decided.
func (g *Game) Move(m Move) error {
	if g.outcome != NoOutcome {
		return fmt.Errorf("xiangqi: game already decided %s", g.outcome)
	}
	if !g.board.IsLegal(m) {
		return fmt.Errorf("xiangqi: invalid move %s in %s", m, g.board.FEN())
	}
	g.board.Push(m)
	g.updateOutcome()
	return nil
}

// MoveStr decodes the given ICCS or WXF text and plays it.
func (g *Game) MoveStr(s string) error {
	m, err := g.board.DecodeMove(s)
	if err != nil {
		return err
	}
	return g.Move(m)
}

// Moves returns the move history of the game.
func (g *Game) Moves() []Move {
	return g.board.Moves()
}

// Outcome returns the game outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Method returns the method in which the outcome occurred.
func (g *Game) Method() Method {
	return g.method
}

// FEN returns the FEN of the current position.
func (g *Game) FEN() string {
	return g.board.FEN()
}

// Resign resigns the game for the given color.  A decided game is not
// updated.
func (g *Game) Resign(c Color) {
	if g.outcome != NoOutcome || c == NoColor {
		return
	}
	if c == Red {
		g.outcome = BlackWon
	} else {
		g.outcome = RedWon
	}
	g.method = MethodResignation
}

// AddTagPair adds or updates a tag pair with the given key and value and
// returns true if the value is overwritten.
func (g *Game) AddTagPair(k, v string) bool {
	if g.tagPairs == nil {
		g.tagPairs = make(map[string]string)
	}
	_, ok := g.tagPairs[k]
	g.tagPairs[k] = v
	return ok
}

// GetTagPair returns the tag pair for the given key or nil if it is not
// present.
func (g *Game) GetTagPair(k string) *TagPair {
	if g.tagPairs == nil {
		return nil
	}
	v, ok := g.tagPairs[k]
	if !ok {
		return nil
	}
	return &TagPair{Key: k, Value: v}
}

// RemoveTagPair removes the tag pair for the given key and returns true if a
// tag pair was removed.
func (g *Game) RemoveTagPair(k string) bool {
	if g.tagPairs == nil {
		return false
	}
	_, ok := g.tagPairs[k]
	delete(g.tagPairs, k)
	return ok
}

// String implements the fmt.Stringer interface and returns the game's record.
func (g *Game) String() string {
	return encodeRecord(g)
}

// MarshalText implements the encoding.TextMarshaler interface and encodes the
// game's record.
func (g *Game) MarshalText() ([]byte, error) {
	return []byte(encodeRecord(g)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface and assumes
// the data is a game record.
func (g *Game) UnmarshalText(text []byte) error {
	game, err := decodeRecord(string(text))
	if err != nil {
		return err
	}
	*g = *game
	return nil
}

func (g *Game) updateOutcome() {
	if g.outcome != NoOutcome {
		return
	}
	loser := g.board.Turn()
	if g.board.King(loser) == NoSquare || g.board.HasLegalMove() {
		return
	}
	if g.board.IsCheck() {
		g.method = MethodCheckmate
	} else {
		g.method = MethodStalemate
	}
	if loser == Red {
		g.outcome = BlackWon
	} else {
		g.outcome = RedWon
	}
}
