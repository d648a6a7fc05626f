package board

import (
	. "github.com/navigill7/chess/internal/types"
	"github.com/navigill7/chess/internal/zobrist"
)

// gameState captures everything needed to reverse one ply. The top of
// Board.history reflects the current position.
type gameState struct {
	capturedType   PieceType
	enPassantFile  int // 0 = none, 1..8 = files a..h
	castlingRights CastlingRights
	fiftyMoveCount int
	zobristKey     zobrist.Key

	// repSaved holds the repetition history that an irreversible
	// real-game move cleared, so UnmakeMove can restore it exactly. Nil
	// for reversible moves and for all search-time moves.
	repSaved []zobrist.Key
}
