// Package search implements iterative-deepening negamax with alpha-beta
// pruning, a transposition table, move ordering, late move reductions,
// check/passed-pawn extensions, quiescence search, mate-distance
// pruning, and repetition/fifty-move draw detection. A
// Searcher is single-use per call to Search and is not safe for
// concurrent use - the engine façade serializes calls with a semaphore.
package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/navigill7/chess/internal/board"
	"github.com/navigill7/chess/internal/config"
	"github.com/navigill7/chess/internal/evaluator"
	"github.com/navigill7/chess/internal/logging"
	"github.com/navigill7/chess/internal/movegen"
	"github.com/navigill7/chess/internal/ordering"
	"github.com/navigill7/chess/internal/repetition"
	"github.com/navigill7/chess/internal/transpositiontable"
	. "github.com/navigill7/chess/internal/types"
)

var searchLog = logging.GetSearchLog()

// out formats per-iteration statistics with thousands separators.
var out = message.NewPrinter(language.English)

// Search-wide constants, aliased from internal/types so the
// mate-score math here always matches the transposition table's.
const (
	immediateMateScore = ValueMate
	infinite           = ValueInfinite
)

// Result is what Search returns: the best move found, its evaluation
// from the side-to-move's perspective, and the number of nodes visited.
type Result struct {
	BestMove Move
	BestEval Value
	Nodes    uint64
}

// Searcher drives one iterative-deepening search over a Board. It owns
// its killer/history tables and repetition stack, and uses the
// transposition table it was given; the Board it searches is mutated
// and restored in place via make_move/unmake_move.
type Searcher struct {
	b   *board.Board
	tt  *transpositiontable.Table
	rt  *repetition.Table
	ord *ordering.Tables

	deadline  time.Time
	cancelled bool
	nodes     uint64

	rootBest     Move
	rootBestEval Value
}

// NewSearcher returns a Searcher for b, sharing tt across calls (so a
// transposition table survives between moves, as engines normally do).
func NewSearcher(b *board.Board, tt *transpositiontable.Table) *Searcher {
	return &Searcher{
		b:   b,
		tt:  tt,
		rt:  repetition.NewTable(b.RepetitionHistory()),
		ord: ordering.NewTables(config.Settings.Search.MaxPlyKillers),
	}
}

// Search runs iterative deepening for up to timeMs milliseconds and
// returns the best move found. If no root move has been searched in
// time it falls back to the first legal move.
func (s *Searcher) Search(timeMs int64) Result {
	s.deadline = time.Now().Add(time.Duration(timeMs) * time.Millisecond)
	s.cancelled = false
	s.nodes = 0

	legal := movegen.GenerateMoves(s.b, false)
	if len(legal) == 0 {
		return Result{BestMove: MoveNone, BestEval: 0, Nodes: 0}
	}
	best := legal[0]
	var bestEval Value

	maxDepth := config.Settings.Search.MaxDepth
	for depth := 1; depth <= maxDepth; depth++ {
		if s.timeUp() {
			break
		}
		s.rootBest = MoveNone
		value := s.negamax(depth, 0, -infinite, infinite, 0, MoveNone, false)

		if s.cancelled {
			if s.rootBest != MoveNone {
				best = s.rootBest
				bestEval = s.rootBestEval
			}
			break
		}
		if s.rootBest != MoveNone {
			best = s.rootBest
		}
		bestEval = value
		searchLog.Debug(out.Sprintf("depth %d: best=%s eval=%d nodes=%d", depth, best.UCI(), bestEval, s.nodes))

		if value >= immediateMateScore-Value(depth) || value <= -(immediateMateScore-Value(depth)) {
			break
		}
	}
	return Result{BestMove: best, BestEval: bestEval, Nodes: s.nodes}
}

func (s *Searcher) timeUp() bool {
	if time.Now().After(s.deadline) {
		s.cancelled = true
		return true
	}
	return false
}

// negamax is the recursive alpha-beta search.
func (s *Searcher) negamax(depth, plyFromRoot int, alpha, beta Value, extUsed int, prevMove Move, prevWasCapture bool) Value {
	if s.timeUp() {
		return 0
	}

	key := s.b.ZobristKey()

	if plyFromRoot > 0 {
		if s.b.FiftyMoveCounter() >= 100 {
			return 0
		}
		if s.rt.Contains(key) {
			return 0
		}
		if a := Value(-int(immediateMateScore) + plyFromRoot); a > alpha {
			alpha = a
		}
		if b := Value(int(immediateMateScore) - plyFromRoot); b < beta {
			beta = b
		}
		if alpha >= beta {
			return alpha
		}
	}

	ttHashMove := MoveNone
	if m, ok := s.tt.ProbeMove(key); ok {
		ttHashMove = m
	}
	if v := s.tt.Lookup(key, depth, plyFromRoot, alpha, beta); v != transpositiontable.FailedLookup {
		if plyFromRoot == 0 && ttHashMove != MoveNone {
			s.rootBest = ttHashMove
			s.rootBestEval = v
		}
		if plyFromRoot > 0 {
			return v
		}
	}

	if depth <= 0 {
		return s.quiescence(alpha, beta)
	}

	moves := movegen.GenerateMoves(s.b, false)
	if len(moves) == 0 {
		if movegen.IsInCheck(s.b) {
			return -(immediateMateScore - Value(plyFromRoot))
		}
		return 0
	}
	s.ord.Order(s.b, moves, ttHashMove, plyFromRoot)

	color := s.b.SideToMove()
	origAlpha := alpha
	bestMove := MoveNone

	for i, m := range moves {
		isCapture := !s.b.PieceAt(m.To()).IsNone() || m.IsEnPassant()

		s.b.MakeMove(m, true)
		s.nodes++

		extension := 0
		if config.Settings.Search.UseExtensions && extUsed < config.Settings.Search.MaxExtensions {
			if movegen.IsInCheck(s.b) {
				extension = 1
			} else if isPassedPawnPush(s.b, m) {
				extension = 1
			}
		}

		reset := isCapture || m.IsPromotion() || s.b.PieceAt(m.To()).TypeOf() == Pawn
		s.rt.Push(s.b.ZobristKey(), reset)

		var v Value
		if extension == 0 && config.Settings.Search.UseLMR &&
			depth >= config.Settings.Search.LmrMinDepth &&
			i >= config.Settings.Search.LmrMinMoveNo && !isCapture {
			v = -s.negamax(depth-2, plyFromRoot+1, -alpha-1, -alpha, extUsed, m, isCapture)
			if v > alpha {
				v = -s.negamax(depth-1+extension, plyFromRoot+1, -beta, -alpha, extUsed+extension, m, isCapture)
			}
		} else {
			v = -s.negamax(depth-1+extension, plyFromRoot+1, -beta, -alpha, extUsed+extension, m, isCapture)
		}

		s.rt.Pop()
		s.b.UnmakeMove(m, true)

		if s.cancelled {
			return 0
		}

		if v >= beta {
			s.tt.Store(key, depth, plyFromRoot, beta, transpositiontable.LowerBound, m)
			if !isCapture {
				s.ord.RecordKiller(plyFromRoot, m)
				s.ord.RecordHistory(color, m, depth)
			}
			return beta
		}
		if v > alpha {
			alpha = v
			bestMove = m
			if plyFromRoot == 0 {
				s.rootBest = m
				s.rootBestEval = v
			}
		}
	}

	bound := transpositiontable.UpperBound
	if alpha > origAlpha {
		bound = transpositiontable.Exact
	}
	s.tt.Store(key, depth, plyFromRoot, alpha, bound, bestMove)
	return alpha
}

// quiescence searches captures only, down to a quiet position, before
// evaluating statically.
func (s *Searcher) quiescence(alpha, beta Value) Value {
	s.nodes++
	if s.timeUp() {
		return 0
	}

	standPat := evaluateStatic(s.b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := movegen.GenerateMoves(s.b, true)
	s.ord.Order(s.b, captures, MoveNone, 0)

	for _, m := range captures {
		s.b.MakeMove(m, true)
		v := -s.quiescence(-beta, -alpha)
		s.b.UnmakeMove(m, true)

		if s.cancelled {
			return 0
		}
		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}
	return alpha
}

// isPassedPawnPush reports whether m is a pawn move that reaches the
// second or seventh rank, the passed-pawn extension heuristic. Called
// after MakeMove, so the moved pawn sits on m.To().
func isPassedPawnPush(b *board.Board, m Move) bool {
	if b.PieceAt(m.To()).TypeOf() != Pawn {
		return false
	}
	rank := m.To().RankOf()
	return rank == 1 || rank == 6
}

// evaluateStatic wraps the evaluator package under the name the
// negamax/quiescence code reads most naturally at a leaf node.
func evaluateStatic(b *board.Board) Value {
	return evaluator.Evaluate(b)
}
