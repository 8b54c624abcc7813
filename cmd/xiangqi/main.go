// Command xiangqi prints a position, plays ICCS moves against it and lists
// the legal replies.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/hongjun/xiangqi"
)

var (
	fenFlag     = flag.String("fen", xiangqi.StartingFEN, "position to load")
	chineseFlag = flag.Bool("chinese", false, "render the board with Chinese characters")
	plainFlag   = flag.Bool("plain", false, "disable ANSI colors")
	movesFlag   = flag.Bool("moves", false, "list the legal moves in WXF notation")
	svgFlag     = flag.String("svg", "", "also write the position as SVG to this file")
)

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(moves []string) error {
	board, err := xiangqi.NewBoardFromFEN(*fenFlag)
	if err != nil {
		return err
	}
	for _, iccs := range moves {
		if err := board.PushICCS(iccs); err != nil {
			return err
		}
	}

	switch {
	case *chineseFlag:
		fmt.Println(board.Chinese())
	case *plainFlag:
		fmt.Println(board)
	default:
		colorstring.Println(colorBoard(board))
	}
	fmt.Println(board.FEN())

	switch {
	case board.IsCheckmate():
		colorstring.Println(fmt.Sprintf("[red]%s is checkmated", board.Turn().Name()))
	case board.IsCheck():
		colorstring.Println(fmt.Sprintf("[yellow]%s is in check", board.Turn().Name()))
	}

	if *movesFlag {
		var list []string
		for _, m := range board.LegalMoves() {
			wxf, err := board.WXF(m)
			if err != nil {
				return err
			}
			list = append(list, fmt.Sprintf("%s(%s)", wxf, m.ICCS()))
		}
		fmt.Println(strings.Join(list, " "))
	}

	if *svgFlag != "" {
		f, err := os.Create(*svgFlag)
		if err != nil {
			return err
		}
		board.WriteSVG(f)
		return f.Close()
	}
	return nil
}

// colorBoard renders the ASCII board with colorstring tokens, red pieces in
// red and black pieces in cyan for dark terminals.
func colorBoard(b *xiangqi.Board) string {
	var sb strings.Builder
	for rank := 12; rank >= 3; rank-- {
		for file := 3; file <= 11; file++ {
			if file > 3 {
				sb.WriteByte(' ')
			}
			p := b.PieceAt(xiangqi.NewSquare(file, rank))
			switch {
			case p == xiangqi.NoPiece:
				sb.WriteByte('.')
			case p.Color() == xiangqi.Red:
				sb.WriteString("[red]" + p.Symbol() + "[reset]")
			default:
				sb.WriteString("[cyan]" + p.Symbol() + "[reset]")
			}
		}
		if rank > 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
