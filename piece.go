package xiangqi

// NOTE: Piece, PieceType and Color constant values are carefully chosen
// to allow for bit operations between them.
//
// A Piece has the upper 4 bits as Color and the lower 4 bits as PieceType.

// Color represents the color of a side.  Red moves first.
type Color uint8

const (
	// Red represents the red side.
	Red Color = 0
	// Black represents the black side.
	Black Color = 1
	// NoColor represents no color.
	NoColor Color = 15
)

// Other returns the opposite color of the receiver.
func (c Color) Other() Color {
	if c == Red {
		return Black
	}
	return Red
}

// String implements the fmt.Stringer interface and returns the color's FEN
// compatible notation.
func (c Color) String() string {
	switch c {
	case Red:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// Name returns a display friendly name.
func (c Color) Name() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	}
	return "No Color"
}

// PieceType is the type of a piece.
type PieceType uint8

const (
	// NoPieceType represents a lack of piece type.
	NoPieceType PieceType = 0
	// Pawn represents a pawn (bing/zu).
	Pawn PieceType = 1
	// Cannon represents a cannon (pao).
	Cannon PieceType = 2
	// Rook represents a rook (ju).
	Rook PieceType = 3
	// Knight represents a knight (ma).
	Knight PieceType = 4
	// Bishop represents an elephant (xiang).
	Bishop PieceType = 5
	// Advisor represents an advisor (shi).
	Advisor PieceType = 6
	// King represents a king (shuai/jiang).
	King PieceType = 7
)

var allPieceTypes = [7]PieceType{Pawn, Cannon, Rook, Knight, Bishop, Advisor, King}

// PieceTypes returns all seven piece types.
func PieceTypes() [7]PieceType {
	return allPieceTypes
}

func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "p"
	case Cannon:
		return "c"
	case Rook:
		return "r"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Advisor:
		return "a"
	case King:
		return "k"
	}
	return ""
}

func pieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'p':
		return Pawn
	case 'c':
		return Cannon
	case 'r':
		return Rook
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'a':
		return Advisor
	case 'k':
		return King
	}
	return NoPieceType
}

// Piece is a piece type with a color.
type Piece uint8

const (
	RedPawn      Piece = 1
	RedCannon    Piece = 2
	RedRook      Piece = 3
	RedKnight    Piece = 4
	RedBishop    Piece = 5
	RedAdvisor   Piece = 6
	RedKing      Piece = 7
	BlackPawn    Piece = 17
	BlackCannon  Piece = 18
	BlackRook    Piece = 19
	BlackKnight  Piece = 20
	BlackBishop  Piece = 21
	BlackAdvisor Piece = 22
	BlackKing    Piece = 23
	// NoPiece represents no piece.
	NoPiece Piece = 255
)

var allPieces = []Piece{
	RedPawn, RedCannon, RedRook, RedKnight, RedBishop, RedAdvisor, RedKing,
	BlackPawn, BlackCannon, BlackRook, BlackKnight, BlackBishop, BlackAdvisor, BlackKing,
}

// GetPiece builds a piece from a type and a color.
func GetPiece(t PieceType, c Color) Piece {
	return Piece(uint8(c)<<4 | uint8(t))
}

// Type returns the type of the piece.
func (p Piece) Type() PieceType {
	return PieceType(p & 0xf)
}

// Color returns the color of the piece.
func (p Piece) Color() Color {
	return Color(p >> 4)
}

// Symbol returns the piece's FEN letter, uppercase for red.
func (p Piece) Symbol() string {
	s := p.Type().String()
	if p.Color() == Red {
		return strToUpper(s)
	}
	return s
}

// String implements the fmt.Stringer interface.
func (p Piece) String() string {
	return p.Symbol()
}

// Chinese returns the piece's Chinese character.
func (p Piece) Chinese() string {
	return pieceChineseNames[p.Symbol()]
}

var pieceChineseNames = map[string]string{
	"R": "车", "r": "俥",
	"N": "马", "n": "傌",
	"B": "相", "b": "象",
	"A": "仕", "a": "士",
	"K": "帅", "k": "将",
	"P": "兵", "p": "卒",
	"C": "炮", "c": "砲",
}

func strToUpper(s string) string {
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0] - 'a' + 'A')
	}
	return s
}

// PieceFromSymbol parses a FEN piece letter.  Uppercase letters are red.
func PieceFromSymbol(c byte) (Piece, bool) {
	lower := c
	color := Black
	if c >= 'A' && c <= 'Z' {
		lower = c - 'A' + 'a'
		color = Red
	}
	t := pieceTypeFromChar(lower)
	if t == NoPieceType {
		return NoPiece, false
	}
	return GetPiece(t, color), true
}
