package movegen

import "github.com/navigill7/chess/internal/board"

// Perft counts leaf nodes reached by enumerating every legal move to
// depth plies - the standard move-generator correctness test. It is a
// debug/test entry point, not part of the search hot path.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range GenerateMoves(b, false) {
		b.MakeMove(m, true)
		nodes += Perft(b, depth-1)
		b.UnmakeMove(m, true)
	}
	return nodes
}
