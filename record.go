package xiangqi

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Game records use PGN-style tag pairs followed by numbered movetext in ICCS
// coordinates, e.g.
//
//	[Event "casual"]
//	[FEN "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"]
//
//	1. h2e2 h9g7 2. h0g2 i9h9 1-0

var (
	tagPairRegex = regexp.MustCompile(`\[(.*)\s"(.*)"\]`)

	moveListTokenRe = regexp.MustCompile(`(?:\d+\.)|([a-i]\d[a-i]\d|0000)|(\*|0-1|1-0)`)
)

func decodeRecord(record string) (*Game, error) {
	tagPairs := getTagPairs(record)
	moves, outcome := moveList(record)

	var g *Game
	var err error
	for _, tp := range tagPairs {
		if strings.EqualFold(tp.Key, "fen") {
			g, err = NewGameFromFEN(tp.Value)
			if err != nil {
				return nil, fmt.Errorf("xiangqi: record decode error %s on tag %s", err, tp.Key)
			}
			break
		}
	}
	if g == nil {
		g = NewGame()
	}
	for _, tp := range tagPairs {
		g.AddTagPair(tp.Key, tp.Value)
	}
	for _, move := range moves {
		m, err := g.board.DecodeMove(move)
		if err != nil {
			return nil, fmt.Errorf("xiangqi: record decode error %s on move %d", err, g.board.FullmoveNumber())
		}
		if err := g.Move(m); err != nil {
			return nil, fmt.Errorf("xiangqi: record invalid move error %s on move %d", err, g.board.FullmoveNumber())
		}
	}
	if outcome != "" {
		g.outcome = outcome
	}
	return g, nil
}

func encodeRecord(g *Game) string {
	var sb strings.Builder
	for k, v := range g.tagPairs {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", k, v)
	}
	sb.WriteString("\n")
	for i, move := range g.Moves() {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. %s", i/2+1, move.ICCS())
		} else {
			fmt.Fprintf(&sb, " %s ", move.ICCS())
		}
	}
	sb.WriteString(" " + string(g.outcome))
	return sb.String()
}

func getTagPairs(record string) []TagPair {
	var tagPairs []TagPair
	for _, m := range tagPairRegex.FindAllString(record, -1) {
		results := tagPairRegex.FindStringSubmatch(m)
		if len(results) == 3 {
			tagPairs = append(tagPairs, TagPair{Key: results[1], Value: results[2]})
		}
	}
	return tagPairs
}

func moveList(record string) ([]string, Outcome) {
	record = stripTagPairs(record)
	outcome := NoOutcome
	var moves []string
	for _, match := range moveListTokenRe.FindAllStringSubmatch(record, -1) {
		move, outcomeText := match[1], match[2]
		if outcomeText != "" {
			outcome = Outcome(outcomeText)
			break
		}
		if move != "" {
			moves = append(moves, move)
		}
	}
	return moves, outcome
}

func stripTagPairs(record string) string {
	var cp []string
	for _, line := range strings.Split(record, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "[") {
			cp = append(cp, line)
		}
	}
	return strings.Join(cp, "\n")
}

// Scanner is modeled on the bufio.Scanner type but instead of reading lines,
// it reads games from concatenated record files.
type Scanner struct {
	scanr *bufio.Scanner
	game  *Game
	err   error
}

// NewScanner returns a new scanner.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{scanr: bufio.NewScanner(r)}
}

type scanState int

const (
	notInRecord scanState = iota
	inTagPairs
	inMoves
)

// Scan returns false if there was an error parsing a game or EOF was reached.
// Running scan populates data for Next() and Err().
func (s *Scanner) Scan() bool {
	if s.err == io.EOF {
		return false
	}
	s.err = nil
	var sb strings.Builder
	state := notInRecord
	setGame := func() bool {
		game, err := decodeRecord(sb.String())
		if err != nil {
			s.err = err
			return false
		}
		s.game = game
		return true
	}
	for {
		if !s.scanr.Scan() {
			s.err = s.scanr.Err()
			// err is nil if io.EOF
			if s.err == nil {
				s.err = io.EOF
			}
			return setGame()
		}
		line := strings.TrimSpace(s.scanr.Text())
		isTagPair := strings.HasPrefix(line, "[")
		isMoveSeq := strings.HasPrefix(line, "1. ")
		switch state {
		case notInRecord:
			if !isTagPair {
				break
			}
			state = inTagPairs
			sb.WriteString(line + "\n")
		case inTagPairs:
			if isMoveSeq {
				state = inMoves
			}
			sb.WriteString(line + "\n")
		case inMoves:
			if line == "" {
				return setGame()
			}
			sb.WriteString(line + "\n")
		}
	}
}

// Next returns the game from the most recent Scan.
func (s *Scanner) Next() *Game {
	return s.game
}

// Err returns an error encountered during scanning.  Typically this will be a
// record parsing error or an io.EOF.
func (s *Scanner) Err() error {
	return s.err
}
