// Command xiangqi-perft walks the legal move tree and prints the node count,
// with per-root node counts under -divide, the standard way to pin down move
// generation bugs.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/hongjun/xiangqi"
)

var (
	fenFlag   = flag.String("fen", xiangqi.StartingFEN, "position to search from")
	depthFlag = flag.Int("depth", 4, "perft depth")
	divFlag   = flag.Bool("divide", false, "print per-root-move node counts")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	board, err := xiangqi.NewBoardFromFEN(*fenFlag)
	if err != nil {
		return err
	}

	roots := board.LegalMoves()
	bar := progressbar.Default(int64(len(roots)), fmt.Sprintf("perft %d", *depthFlag))

	start := time.Now()
	var total uint64
	divide := make([]string, 0, len(roots))
	for _, m := range roots {
		board.Push(m)
		nodes := xiangqi.Perft(board, *depthFlag-1)
		board.Pop()
		total += nodes
		divide = append(divide, fmt.Sprintf("%s: %d", m.ICCS(), nodes))
		bar.Add(1)
	}
	elapsed := time.Since(start)

	if *divFlag {
		for _, line := range divide {
			fmt.Println(line)
		}
	}
	fmt.Printf("perft(%d) = %d in %s\n", *depthFlag, total, elapsed)
	return nil
}
