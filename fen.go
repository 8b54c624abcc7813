package xiangqi

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// StartingFEN is the FEN of the standard starting position.
	StartingFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"
	// StartingBoardFEN is the position part of StartingFEN.
	StartingBoardFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR"
)

// SetBoardFEN loads the position part of a FEN: ten rows top to bottom
// separated by '/', files a..i, digits collapsing runs of empty squares.
func (b *Board) SetBoardFEN(fen string) error {
	fen = strings.TrimSpace(fen)
	if strings.Contains(fen, " ") {
		return fmt.Errorf("xiangqi: expected position part of fen, got multiple parts: %q", fen)
	}

	rows := strings.Split(fen, "/")
	if len(rows) != 10 {
		return fmt.Errorf("xiangqi: expected 10 rows in position part of fen: %q", fen)
	}

	for _, row := range rows {
		fieldSum := 0
		previousWasDigit := false
		for i := 0; i < len(row); i++ {
			c := row[i]
			switch {
			case c >= '1' && c <= '9':
				if previousWasDigit {
					return fmt.Errorf("xiangqi: two subsequent digits in position part of fen: %q", fen)
				}
				fieldSum += int(c - '0')
				previousWasDigit = true
			default:
				if _, ok := PieceFromSymbol(c); !ok {
					return fmt.Errorf("xiangqi: invalid character in position part of fen: %q", fen)
				}
				fieldSum++
				previousWasDigit = false
			}
		}
		if fieldSum != 9 {
			return fmt.Errorf("xiangqi: expected 9 columns per row in position part of fen: %q", fen)
		}
	}

	b.clearBoard()
	for i, row := range rows {
		rank := 12 - i
		file := 3
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '9' {
				file += int(c - '0')
				continue
			}
			p, _ := PieceFromSymbol(c)
			b.setPieceAt(NewSquare(file, rank), p.Type(), p.Color())
			file++
		}
	}
	return nil
}

// BoardFEN returns the position part of the FEN.
func (b *Board) BoardFEN() string {
	var sb strings.Builder
	for rank := 12; rank >= 3; rank-- {
		empty := 0
		for file := 3; file <= 11; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 3 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// SetFEN loads a full FEN record.  The board part is required; the turn
// defaults to red; the third, fourth and fifth fields are placeholders and
// ignored; the fullmove number is clamped to at least 1 and rejected when
// negative.  Records with more than six fields are rejected.
func (b *Board) SetFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return fmt.Errorf("xiangqi: empty fen")
	}
	if len(parts) > 6 {
		return fmt.Errorf("xiangqi: fen string has more parts than expected: %q", fen)
	}

	turn := Red
	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			turn = Red
		case "b":
			turn = Black
		default:
			return fmt.Errorf("xiangqi: expected 'w' or 'b' for turn part of fen: %q", fen)
		}
	}

	fullmoveNumber := 1
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil {
			return fmt.Errorf("xiangqi: invalid fullmove number in fen: %q", fen)
		}
		if n < 0 {
			return fmt.Errorf("xiangqi: fullmove number cannot be negative: %q", fen)
		}
		if n < 1 {
			n = 1
		}
		fullmoveNumber = n
	}

	if err := b.SetBoardFEN(parts[0]); err != nil {
		return err
	}
	b.turn = turn
	b.fullmoveNumber = fullmoveNumber
	return nil
}

// FEN returns the full FEN record of the position.  The unused halfmove and
// placeholder fields are emitted as the original notation expects them.
func (b *Board) FEN() string {
	return strings.Join([]string{
		b.BoardFEN(),
		b.turn.String(),
		"-",
		"-",
		"0",
		strconv.Itoa(b.fullmoveNumber),
	}, " ")
}
