// Package engine is the host-facing façade over the board, searcher,
// and opening book. It is the only package most
// callers need to import.
package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/navigill7/chess/internal/board"
	"github.com/navigill7/chess/internal/config"
	"github.com/navigill7/chess/internal/logging"
	"github.com/navigill7/chess/internal/movegen"
	"github.com/navigill7/chess/internal/openingbook"
	"github.com/navigill7/chess/internal/search"
	"github.com/navigill7/chess/internal/transpositiontable"
)

var log = logging.GetLog()

// SearchResult is the host-facing shape of a completed search.
type SearchResult struct {
	MoveUCI    string
	Evaluation int32
	Nodes      uint64
}

// Engine holds the current position, the shared transposition table,
// and an optional opening book. Search is serialized per engine
// instance by a run-guard semaphore.
type Engine struct {
	b    *board.Board
	tt   *transpositiontable.Table
	book *openingbook.Book

	isRunning *semaphore.Weighted
}

// NewEngine returns an Engine at the standard starting position. book
// may be nil to disable opening-book lookups.
func NewEngine(book *openingbook.Book) *Engine {
	return &Engine{
		b:         board.NewFromStart(),
		tt:        transpositiontable.NewTable(config.Settings.Search.TTSizeMB),
		book:      book,
		isRunning: semaphore.NewWeighted(1),
	}
}

// SetPosition replaces the current position, wrapping ErrInvalidFen on
// a malformed FEN string.
func (e *Engine) SetPosition(fen string) error {
	if !e.isRunning.TryAcquire(1) {
		return fmt.Errorf("engine is searching")
	}
	defer e.isRunning.Release(1)

	b, err := board.NewFromFEN(fen)
	if err != nil {
		return err
	}
	e.b = b
	e.tt.Clear()
	return nil
}

// PlayMove applies a UCI move string to the current position,
// returning ErrIllegalMove if it does not match a legal move.
func (e *Engine) PlayMove(uci string) error {
	if !e.isRunning.TryAcquire(1) {
		return fmt.Errorf("engine is searching")
	}
	defer e.isRunning.Release(1)

	for _, m := range movegen.GenerateMoves(e.b, false) {
		if m.UCI() == uci {
			e.b.MakeMove(m, false)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrIllegalMove, uci)
}

// Search runs the searcher (after an opening-book probe) for up to
// timeMs milliseconds. Returns ErrNoLegalMoves on a terminal
// position.
func (e *Engine) Search(timeMs int64) (SearchResult, error) {
	if err := e.isRunning.Acquire(context.Background(), 1); err != nil {
		return SearchResult{}, err
	}
	defer e.isRunning.Release(1)

	if len(movegen.GenerateMoves(e.b, false)) == 0 {
		return SearchResult{}, ErrNoLegalMoves
	}

	if uci, ok := e.book.Lookup(e.b); ok {
		log.Infof("opening book hit: %s", uci)
		return SearchResult{MoveUCI: uci, Evaluation: 0, Nodes: 0}, nil
	}

	s := search.NewSearcher(e.b, e.tt)
	result := s.Search(timeMs)
	return SearchResult{
		MoveUCI:    result.BestMove.UCI(),
		Evaluation: int32(result.BestEval),
		Nodes:      result.Nodes,
	}, nil
}

// Perft counts move-generation leaf nodes at the given depth from the
// current position. Debug/test entry point, wired straight to the move
// generator.
func (e *Engine) Perft(depth int) (uint64, error) {
	if !e.isRunning.TryAcquire(1) {
		return 0, fmt.Errorf("engine is searching")
	}
	defer e.isRunning.Release(1)
	return movegen.Perft(e.b, depth), nil
}

// CurrentFEN returns the FEN of the current position.
func (e *Engine) CurrentFEN() string {
	return e.b.ToFEN()
}

// ChooseThinkTime returns the per-move time allocation
// max(minFloorMs, budgetMs/40 + 0.8*incrementMs), clamped above by
// capMs when capMs > 0.
func ChooseThinkTime(budgetMs, incrementMs, minFloorMs, capMs int64) int64 {
	think := budgetMs/40 + (incrementMs*8)/10
	if think < minFloorMs {
		think = minFloorMs
	}
	if capMs > 0 && think > capMs {
		think = capMs
	}
	return think
}
