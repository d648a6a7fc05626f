package board

import (
	"github.com/navigill7/chess/internal/assert"
	. "github.com/navigill7/chess/internal/types"
	"github.com/navigill7/chess/internal/zobrist"
)

// MakeMove applies m to the board, maintaining all state incrementally
// including the Zobrist key, and pushes a new game-state entry.
// inSearch selects whether the move touches the real-game repetition
// history (only non-search moves do).
//
// No legality check is performed here; callers are expected to only
// make moves produced by the move generator's legal move list.
func (b *Board) MakeMove(m Move, inSearch bool) {
	start := m.From()
	target := m.To()
	flag := m.Flag()

	if assert.DEBUG {
		assert.Assert(b.square[start] != PieceNone, "MakeMove: no piece on origin square %s", start)
		assert.Assert(start != target, "MakeMove: origin and target square are identical (%s)", start)
	}

	movedPiece := b.square[start]
	movedType := movedPiece.TypeOf()
	side := movedPiece.ColorOf()

	capturedPiece := b.square[target]
	capturedType := capturedPiece.TypeOf()

	epCaptureSq := SqNone
	if flag == FlagEnPassant {
		capturedType = Pawn
		capturedPiece = MakePiece(side.Flip(), Pawn)
		epCaptureSq = epCaptureSquare(side, target)
	}

	key := b.ZobristKey()
	key ^= zobrist.Pieces[movedPiece][start]

	b.square[target] = movedPiece
	b.square[start] = PieceNone

	key ^= zobrist.Pieces[movedPiece][target]

	newCastling := b.castlingRights
	if movedType == King {
		b.kingSquare[side] = target
		if side == White {
			newCastling &^= CastlingWK | CastlingWQ
		} else {
			newCastling &^= CastlingBK | CastlingBQ
		}
	}

	if capturedType != PtNone {
		if flag == FlagEnPassant {
			b.square[epCaptureSq] = PieceNone
			key ^= zobrist.Pieces[capturedPiece][epCaptureSq]
		} else {
			key ^= zobrist.Pieces[capturedPiece][target]
		}
	}

	if flag == FlagCastle {
		rFrom, rTo := castleRookSquares(target)
		rook := b.square[rFrom]
		key ^= zobrist.Pieces[rook][rFrom]
		b.square[rFrom] = PieceNone
		b.square[rTo] = rook
		key ^= zobrist.Pieces[rook][rTo]
	}

	if m.IsPromotion() {
		key ^= zobrist.Pieces[movedPiece][target] // undo the pawn XOR-in from above
		promoted := MakePiece(side, m.PromotionType())
		b.square[target] = promoted
		key ^= zobrist.Pieces[promoted][target]
	}

	newEpFile := 0
	if flag == FlagDoublePawnPush {
		newEpFile = start.FileOf() + 1
		key ^= zobrist.EnPassant[newEpFile]
	}

	newCastling = clearCastlingForCornerSquares(newCastling, start, target)

	key ^= zobrist.SideToMove
	key ^= zobrist.EnPassant[b.enPassantFile] // XOR-out old EP marker
	if newCastling != b.castlingRights {
		key ^= zobrist.Castling[b.castlingRights]
		key ^= zobrist.Castling[newCastling]
	}

	b.whiteToMove = !b.whiteToMove
	b.castlingRights = newCastling
	b.enPassantFile = newEpFile
	b.plyCount++

	newFifty := b.fiftyMoveCount + 1
	var repSaved []zobrist.Key
	if movedType == Pawn || capturedType != PtNone {
		newFifty = 0
		if !inSearch {
			// Hand the cleared history to the game-state entry instead of
			// reslicing it away, so UnmakeMove can restore it exactly.
			repSaved = b.repetitionHistory
			b.repetitionHistory = make([]zobrist.Key, 0, 8)
		}
	}
	b.fiftyMoveCount = newFifty

	if b.whiteToMove {
		b.moveCount++
	}

	b.history = append(b.history, gameState{
		capturedType:   capturedType,
		enPassantFile:  newEpFile,
		castlingRights: newCastling,
		fiftyMoveCount: newFifty,
		zobristKey:     key,
		repSaved:       repSaved,
	})

	if !inSearch {
		b.repetitionHistory = append(b.repetitionHistory, key)
	}
}

// UnmakeMove is the exact inverse of the preceding MakeMove call. m and
// inSearch must match the paired MakeMove.
func (b *Board) UnmakeMove(m Move, inSearch bool) {
	if assert.DEBUG {
		assert.Assert(len(b.history) > 1, "UnmakeMove: called with no move to undo")
	}
	st := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	prev := b.history[len(b.history)-1]

	// Currently (pre-undo) whiteToMove names the player who moves next;
	// the mover of the move being undone is the other color.
	mover := Black
	if !b.whiteToMove {
		mover = White
	}
	opponent := mover.Flip()

	start := m.From()
	target := m.To()
	flag := m.Flag()

	switch {
	case flag == FlagCastle:
		king := b.square[target]
		b.square[start] = king
		b.square[target] = PieceNone
		b.kingSquare[mover] = start
		rFrom, rTo := castleRookSquares(target)
		rook := b.square[rTo]
		b.square[rFrom] = rook
		b.square[rTo] = PieceNone
	case flag == FlagEnPassant:
		pawn := b.square[target]
		b.square[start] = pawn
		b.square[target] = PieceNone
		capSq := epCaptureSquare(mover, target)
		b.square[capSq] = MakePiece(opponent, Pawn)
	case m.IsPromotion():
		b.square[start] = MakePiece(mover, Pawn)
		if st.capturedType != PtNone {
			b.square[target] = MakePiece(opponent, st.capturedType)
		} else {
			b.square[target] = PieceNone
		}
	default: // quiet move or double pawn push, possibly a capture
		piece := b.square[target]
		b.square[start] = piece
		if piece.TypeOf() == King {
			b.kingSquare[mover] = start
		}
		if st.capturedType != PtNone {
			b.square[target] = MakePiece(opponent, st.capturedType)
		} else {
			b.square[target] = PieceNone
		}
	}

	b.castlingRights = prev.castlingRights
	b.enPassantFile = prev.enPassantFile
	b.fiftyMoveCount = prev.fiftyMoveCount
	// b.ZobristKey() now reads prev.zobristKey - nothing further to restore.

	b.whiteToMove = !b.whiteToMove
	b.plyCount--
	if mover == Black {
		b.moveCount--
	}

	if !inSearch {
		if st.repSaved != nil {
			b.repetitionHistory = st.repSaved
		} else if len(b.repetitionHistory) > 0 {
			b.repetitionHistory = b.repetitionHistory[:len(b.repetitionHistory)-1]
		}
	}
}

// epCaptureSquare returns the square of the pawn captured en passant,
// one rank behind the target square from the mover's perspective.
func epCaptureSquare(mover Color, target Square) Square {
	if mover == White {
		return target - 8
	}
	return target + 8
}

// castleRookSquares returns the rook's (from, to) squares given the
// king's target square.
func castleRookSquares(kingTarget Square) (from, to Square) {
	switch kingTarget {
	case 6: // g1
		return 7, 5
	case 62: // g8
		return 63, 61
	case 2: // c1
		return 0, 3
	case 58: // c8
		return 56, 59
	default:
		panic("castleRookSquares: invalid king target square")
	}
}

// clearCastlingForCornerSquares clears the castling right tied to a
// corner square whenever either endpoint of the move touches it - this
// covers both a rook moving away from its home square and a rook being
// captured on it while it still held the right.
func clearCastlingForCornerSquares(cr CastlingRights, start, target Square) CastlingRights {
	if start == SquareA1 || target == SquareA1 {
		cr &^= CastlingWQ
	}
	if start == SquareH1 || target == SquareH1 {
		cr &^= CastlingWK
	}
	if start == SquareA8 || target == SquareA8 {
		cr &^= CastlingBQ
	}
	if start == SquareH8 || target == SquareH8 {
		cr &^= CastlingBK
	}
	return cr
}
