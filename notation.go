package xiangqi

import (
	"fmt"
	"strconv"
	"strings"
)

// WXF move descriptors are <piece><origin><action><target>.  The origin is a
// file number seen from the mover's side, or a positional tag when several
// pieces of the kind share a file; the action is + for advance, - for retreat
// and . for a traverse; the target is a destination file for pieces that
// change file diagonally and a distance for straight advances.

var (
	actionChineseNames = map[byte]string{'.': "平", '+': "进", '-': "退"}

	positionChineseNames = map[byte]string{
		'.': "中", '+': "前", '-': "后",
		'a': "一", 'b': "二", 'c': "三", 'd': "四", 'e': "五",
	}

	chineseNumbers = [10]string{"", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

	fullWidthDigits = [10]string{"", "１", "２", "３", "４", "５", "６", "７", "８", "９"}
)

// squareFileWXF numbers the square's file 1..9 from the mover's right.
func squareFileWXF(sq Square, c Color) int {
	if c == Black {
		return sq.File() - 2
	}
	return 10 - (sq.File() - 2)
}

// WXF renders a move of the side to move in WXF notation.  The move must
// start from an own piece.
func (b *Board) WXF(m Move) (string, error) {
	piece := b.PieceTypeAt(m.From)
	if piece == NoPieceType || b.ColorAt(m.From) != b.turn {
		return "", fmt.Errorf("xiangqi: no %s piece on %s to describe move %s", b.turn.Name(), m.From, m)
	}

	fromFile := m.From.File()
	fromFileWXF := squareFileWXF(m.From, b.turn)
	toFileWXF := squareFileWXF(m.To, b.turn)

	plus, minus := "+", "-"
	if b.turn == Black {
		plus, minus = "-", "+"
	}

	var result string
	switch piece {
	case Advisor, Bishop:
		result = piece.String() + strconv.Itoa(fromFileWXF)

	case Pawn:
		other := b.PiecesMask(piece, b.turn).And(BBFiles[fromFile]).AndNot(BBSquares[m.From])
		if other.IsEmpty() {
			result = piece.String() + strconv.Itoa(fromFileWXF)
			break
		}
		// Collect every pawn that shares a file with a sibling, scanning
		// files right to left and each file front to rear from red's view.
		var pawns []Square
		for file := 15; file >= 0; file-- {
			filePawns := BBFiles[file].And(b.pawns).And(b.occupiedCo[b.turn])
			if filePawns.OnesCount() > 1 {
				for sq := filePawns.PopMsb(); sq != NoSquare; sq = filePawns.PopMsb() {
					pawns = append(pawns, sq)
				}
			}
		}
		idx := 0
		for i, sq := range pawns {
			if sq == m.From {
				idx = i
			}
		}
		switch len(pawns) {
		case 2:
			result = piece.String() + []string{plus, minus}[idx]
		case 3:
			result = piece.String() + []string{plus, ".", minus}[idx]
		default:
			const chars = "abcde"
			if b.turn == Red {
				result = piece.String() + string(chars[idx])
			} else {
				result = piece.String() + string(chars[len(pawns)-1-idx])
			}
		}

	default: // rook, knight, cannon, king
		other := b.PiecesMask(piece, b.turn).And(BBFiles[fromFile]).AndNot(BBSquares[m.From])
		if !other.IsEmpty() {
			if other.Msb() < m.From {
				result = piece.String() + plus
			} else {
				result = piece.String() + minus
			}
		} else {
			result = piece.String() + strconv.Itoa(fromFileWXF)
		}
	}

	if piece == Knight || piece == Bishop || piece == Advisor {
		if m.From < m.To {
			result += plus
		} else {
			result += minus
		}
		result += strconv.Itoa(toFileWXF)
	} else {
		diff := int(m.From) - int(m.To)
		if diff > 15 || diff < -15 {
			offset := Between(m.From, m.To).OnesCount() + 1
			if m.From > m.To {
				result += minus
			} else {
				result += plus
			}
			result += strconv.Itoa(offset)
		} else {
			result += "." + strconv.Itoa(toFileWXF)
		}
	}

	return result, nil
}

// ChineseMove renders a move of the side to move in Chinese notation.  Red
// numbers render as Chinese numerals and black ones as Arabic digits, or as
// full-width digits when fullWidth is set.
func (b *Board) ChineseMove(m Move, fullWidth bool) (string, error) {
	wxf, err := b.WXF(m)
	if err != nil {
		return "", err
	}

	symbol := wxf[:1]
	if b.turn == Red {
		symbol = strToUpper(symbol)
	}

	var build []string
	if pos, ok := positionChineseNames[wxf[1]]; ok {
		build = append(build, pos, pieceChineseNames[symbol])
	} else {
		build = append(build, pieceChineseNames[symbol])
		if b.turn == Red {
			build = append(build, chineseNumbers[wxf[1]-'0'])
		} else {
			build = append(build, string(wxf[1]))
		}
	}

	build = append(build, actionChineseNames[wxf[2]])

	if b.turn == Red {
		build = append(build, chineseNumbers[wxf[3]-'0'])
	} else {
		build = append(build, string(wxf[3]))
	}

	if fullWidth {
		for i, s := range build {
			if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				build[i] = fullWidthDigits[s[0]-'0']
			}
		}
	}

	return strings.Join(build, ""), nil
}

// DecodeWXF finds the legal move matching a WXF descriptor, in the manner of
// matching SAN against the generated move list.
func (b *Board) DecodeWXF(s string) (Move, error) {
	for _, m := range b.LegalMoves() {
		wxf, err := b.WXF(m)
		if err == nil && wxf == s {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("xiangqi: failed to decode wxf text %q for position %s", s, b.FEN())
}

// DecodeMove decodes a move given in ICCS or WXF notation against the current
// position.
func (b *Board) DecodeMove(s string) (Move, error) {
	if m, err := MoveFromICCS(s); err == nil {
		return m, nil
	}
	if m, err := b.DecodeWXF(s); err == nil {
		return m, nil
	}
	return Move{}, fmt.Errorf("xiangqi: failed to decode notation text %q for position %s", s, b.FEN())
}
