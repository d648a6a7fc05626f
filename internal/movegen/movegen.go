package movegen

import (
	"github.com/navigill7/chess/internal/board"
	. "github.com/navigill7/chess/internal/types"
)

var promotionFlags = [4]MoveFlag{FlagPromoteQueen, FlagPromoteKnight, FlagPromoteRook, FlagPromoteBishop}

// GenerateMoves returns the legal moves available in b. When
// capturesOnly is true, only captures (including en passant and
// capture-promotions) are returned - used by quiescence search.
func GenerateMoves(b *board.Board, capturesOnly bool) []Move {
	pseudo := generatePseudoLegal(b, capturesOnly)
	legal := make([]Move, 0, len(pseudo))
	side := b.SideToMove()
	for _, m := range pseudo {
		b.MakeMove(m, true)
		inCheck := IsSquareAttacked(b, b.KingSquare(side), isWhite(side.Flip()))
		b.UnmakeMove(m, true)
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}

func isWhite(c Color) bool { return c == White }

func generatePseudoLegal(b *board.Board, capturesOnly bool) []Move {
	moves := make([]Move, 0, 64)
	side := b.SideToMove()
	for sq := Square(0); sq < 64; sq++ {
		p := b.PieceAt(sq)
		if p.IsNone() || p.ColorOf() != side {
			continue
		}
		switch p.TypeOf() {
		case Pawn:
			genPawnMoves(b, sq, side, capturesOnly, &moves)
		case Knight:
			genKnightMoves(b, sq, side, capturesOnly, &moves)
		case Bishop:
			genSliderMoves(b, sq, side, capturesOnly, bishopDirIdx[:], &moves)
		case Rook:
			genSliderMoves(b, sq, side, capturesOnly, rookDirIdx[:], &moves)
		case Queen:
			genSliderMoves(b, sq, side, capturesOnly, []int{0, 1, 2, 3, 4, 5, 6, 7}, &moves)
		case King:
			genKingMoves(b, sq, side, capturesOnly, &moves)
		}
	}
	return moves
}

func genPawnMoves(b *board.Board, sq Square, side Color, capturesOnly bool, moves *[]Move) {
	forward := dirN
	startRank := 1
	promRank := 7
	if side == Black {
		forward = dirS
		startRank = 6
		promRank = 0
	}

	oneStep := Square(int(sq) + forward)
	if !capturesOnly && oneStep.IsValid() && b.PieceAt(oneStep).IsNone() {
		if oneStep.RankOf() == promRank {
			for _, f := range promotionFlags {
				*moves = append(*moves, NewMove(sq, oneStep, f))
			}
		} else {
			*moves = append(*moves, NewMove(sq, oneStep, FlagNone))
			if sq.RankOf() == startRank {
				twoStep := Square(int(sq) + 2*forward)
				if b.PieceAt(twoStep).IsNone() {
					*moves = append(*moves, NewMove(sq, twoStep, FlagDoublePawnPush))
				}
			}
		}
	}

	for _, df := range []int{-1, 1} {
		capSq := Square(int(sq) + forward + df)
		if !capSq.IsValid() || abs(capSq.FileOf()-sq.FileOf()) != 1 {
			continue
		}
		target := b.PieceAt(capSq)
		if !target.IsNone() && target.ColorOf() != side {
			if capSq.RankOf() == promRank {
				for _, f := range promotionFlags {
					*moves = append(*moves, NewMove(sq, capSq, f))
				}
			} else {
				*moves = append(*moves, NewMove(sq, capSq, FlagNone))
			}
			continue
		}
		if epSq := b.EnPassantSquare(); epSq != SqNone && capSq == epSq {
			*moves = append(*moves, NewMove(sq, capSq, FlagEnPassant))
		}
	}
}

func genKnightMoves(b *board.Board, sq Square, side Color, capturesOnly bool, moves *[]Move) {
	for _, off := range knightOffsets {
		target, ok := knightWrapOK(sq, off)
		if !ok {
			continue
		}
		p := b.PieceAt(target)
		if p.IsNone() {
			if !capturesOnly {
				*moves = append(*moves, NewMove(sq, target, FlagNone))
			}
			continue
		}
		if p.ColorOf() != side {
			*moves = append(*moves, NewMove(sq, target, FlagNone))
		}
	}
}

func genSliderMoves(b *board.Board, sq Square, side Color, capturesOnly bool, dirIdxs []int, moves *[]Move) {
	for _, dirIdx := range dirIdxs {
		d := slideDirections[dirIdx]
		steps := numSquaresToEdge[sq][dirIdx]
		cur := sq
		for s := 0; s < steps; s++ {
			cur = Square(int(cur) + d)
			p := b.PieceAt(cur)
			if p.IsNone() {
				if !capturesOnly {
					*moves = append(*moves, NewMove(sq, cur, FlagNone))
				}
				continue
			}
			if p.ColorOf() != side {
				*moves = append(*moves, NewMove(sq, cur, FlagNone))
			}
			break
		}
	}
}

func genKingMoves(b *board.Board, sq Square, side Color, capturesOnly bool, moves *[]Move) {
	for _, d := range slideDirections {
		target := int(sq) + d
		if target < 0 || target > 63 {
			continue
		}
		t := Square(target)
		if abs(t.FileOf()-sq.FileOf()) > 1 {
			continue
		}
		p := b.PieceAt(t)
		if p.IsNone() {
			if !capturesOnly {
				*moves = append(*moves, NewMove(sq, t, FlagNone))
			}
		} else if p.ColorOf() != side {
			*moves = append(*moves, NewMove(sq, t, FlagNone))
		}
	}

	if capturesOnly {
		return
	}
	genCastleMoves(b, sq, side, moves)
}

func genCastleMoves(b *board.Board, kingSq Square, side Color, moves *[]Move) {
	if IsInCheck(b) {
		return
	}
	cr := b.CastlingRights()
	opponentWhite := side.Flip() == White

	if side == White {
		if cr.Has(CastlingWK) &&
			b.PieceAt(5).IsNone() && b.PieceAt(6).IsNone() &&
			!IsSquareAttacked(b, 5, opponentWhite) && !IsSquareAttacked(b, 6, opponentWhite) {
			*moves = append(*moves, NewMove(kingSq, 6, FlagCastle))
		}
		if cr.Has(CastlingWQ) &&
			b.PieceAt(1).IsNone() && b.PieceAt(2).IsNone() && b.PieceAt(3).IsNone() &&
			!IsSquareAttacked(b, 3, opponentWhite) && !IsSquareAttacked(b, 2, opponentWhite) {
			*moves = append(*moves, NewMove(kingSq, 2, FlagCastle))
		}
	} else {
		if cr.Has(CastlingBK) &&
			b.PieceAt(61).IsNone() && b.PieceAt(62).IsNone() &&
			!IsSquareAttacked(b, 61, opponentWhite) && !IsSquareAttacked(b, 62, opponentWhite) {
			*moves = append(*moves, NewMove(kingSq, 62, FlagCastle))
		}
		if cr.Has(CastlingBQ) &&
			b.PieceAt(57).IsNone() && b.PieceAt(58).IsNone() && b.PieceAt(59).IsNone() &&
			!IsSquareAttacked(b, 59, opponentWhite) && !IsSquareAttacked(b, 58, opponentWhite) {
			*moves = append(*moves, NewMove(kingSq, 58, FlagCastle))
		}
	}
}
