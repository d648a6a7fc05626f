// Command perft runs the move generator's standard correctness
// benchmark: counting leaf nodes at a fixed search depth from a given
// position.
package main

import (
	"flag"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/navigill7/chess/internal/board"
	"github.com/navigill7/chess/internal/movegen"
)

var out = message.NewPrinter(language.English)

func main() {
	depth := flag.Int("depth", 5, "perft search depth")
	fen := flag.String("fen", board.StartFen, "FEN of the position to run perft on")
	divide := flag.Bool("divide", false, "print per-root-move leaf counts at the requested depth")
	flag.Parse()

	b, err := board.NewFromFEN(*fen)
	if err != nil {
		out.Printf("invalid fen: %v\n", err)
		return
	}

	if *divide {
		runDivide(b, *depth)
		return
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		n := movegen.Perft(b, d)
		elapsed := time.Since(start)
		out.Printf("perft(%d) = %d  (%s)\n", d, n, elapsed)
	}
}

func runDivide(b *board.Board, depth int) {
	if depth < 1 {
		out.Println("divide requires depth >= 1")
		return
	}
	var total uint64
	for _, m := range movegen.GenerateMoves(b, false) {
		b.MakeMove(m, true)
		n := movegen.Perft(b, depth-1)
		b.UnmakeMove(m, true)
		out.Printf("%s: %d\n", m.UCI(), n)
		total += n
	}
	out.Printf("total: %d\n", total)
}
