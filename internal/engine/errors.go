package engine

import (
	"errors"

	"github.com/navigill7/chess/internal/board"
)

// ErrInvalidFen is re-exported from board so callers only need to
// import engine to check every error the façade can return.
var ErrInvalidFen = board.ErrInvalidFen

// Sentinel errors returned by the Engine API.
var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoLegalMoves = errors.New("no legal moves")
)
