// Package evaluator implements the engine's static position
// evaluation. It is intentionally material-only and stateless.
package evaluator

import (
	"github.com/navigill7/chess/internal/board"
	"github.com/navigill7/chess/internal/config"
	. "github.com/navigill7/chess/internal/types"
)

// Evaluate returns the static evaluation of b from the side-to-move's
// perspective (the negamax convention): White material minus Black
// material, negated when Black is to move.
func Evaluate(b *board.Board) Value {
	var white, black int
	for sq := Square(0); sq < SqLength; sq++ {
		p := b.PieceAt(sq)
		if p.IsNone() {
			continue
		}
		v := pieceValue(p.TypeOf())
		if p.ColorOf() == White {
			white += v
		} else {
			black += v
		}
	}
	score := white - black
	if !b.WhiteToMove() {
		score = -score
	}
	return Value(score)
}

func pieceValue(pt PieceType) int {
	switch pt {
	case Pawn:
		return config.Settings.Eval.PawnValue
	case Knight:
		return config.Settings.Eval.KnightValue
	case Bishop:
		return config.Settings.Eval.BishopValue
	case Rook:
		return config.Settings.Eval.RookValue
	case Queen:
		return config.Settings.Eval.QueenValue
	case King:
		return config.Settings.Eval.KingValue
	default:
		return 0
	}
}
