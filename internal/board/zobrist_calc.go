package board

import (
	. "github.com/navigill7/chess/internal/types"
	"github.com/navigill7/chess/internal/zobrist"
)

// calculateZobrist computes the Zobrist key for the current board state
// from scratch. Used on construction and by tests to verify incremental
// maintenance stays consistent.
func (b *Board) calculateZobrist() zobrist.Key {
	var key zobrist.Key
	for sq := Square(0); sq < SqLength; sq++ {
		p := b.square[sq]
		if p != PieceNone {
			key ^= zobrist.Pieces[p][sq]
		}
	}
	key ^= zobrist.Castling[b.castlingRights]
	key ^= zobrist.EnPassant[b.enPassantFile]
	if !b.whiteToMove {
		key ^= zobrist.SideToMove
	}
	return key
}

// VerifyZobrist recomputes the key from scratch and compares it to the
// incrementally maintained one. Intended for tests, not hot paths.
func (b *Board) VerifyZobrist() bool {
	return b.calculateZobrist() == b.ZobristKey()
}
