package movegen

import (
	"github.com/navigill7/chess/internal/board"
	. "github.com/navigill7/chess/internal/types"
)

// IsSquareAttacked probes whether sq is attacked by a piece of color
// byWhite, checking pawns, knights, king and sliding pieces in turn and
// returning on the first hit. King-attack generation here uses plain
// offset enumeration rather than the king's own move generator, which
// would recurse back into attack detection through castling checks.
func IsSquareAttacked(b *board.Board, sq Square, byWhite bool) bool {
	attacker := Black
	if byWhite {
		attacker = White
	}

	if pawnAttacks(b, sq, attacker) {
		return true
	}
	if knightAttacks(b, sq, attacker) {
		return true
	}
	if kingAttacks(b, sq, attacker) {
		return true
	}
	return sliderAttacks(b, sq, attacker)
}

func pawnAttacks(b *board.Board, sq Square, attacker Color) bool {
	var candidates [2]int
	if attacker == White {
		candidates = [2]int{int(sq) - dirNW, int(sq) - dirNE}
	} else {
		candidates = [2]int{int(sq) + dirNW, int(sq) + dirNE}
	}
	for _, c := range candidates {
		if c < 0 || c > 63 {
			continue
		}
		cand := Square(c)
		if abs(cand.FileOf()-sq.FileOf()) != 1 {
			continue
		}
		p := b.PieceAt(cand)
		if p.TypeOf() == Pawn && p.ColorOf() == attacker {
			return true
		}
	}
	return false
}

func knightAttacks(b *board.Board, sq Square, attacker Color) bool {
	for _, off := range knightOffsets {
		cand, ok := knightWrapOK(sq, off)
		if !ok {
			continue
		}
		p := b.PieceAt(cand)
		if p.TypeOf() == Knight && p.ColorOf() == attacker {
			return true
		}
	}
	return false
}

func kingAttacks(b *board.Board, sq Square, attacker Color) bool {
	for _, d := range slideDirections {
		cand := int(sq) + d
		if cand < 0 || cand > 63 {
			continue
		}
		if abs(Square(cand).FileOf()-sq.FileOf()) > 1 {
			continue
		}
		p := b.PieceAt(Square(cand))
		if p.TypeOf() == King && p.ColorOf() == attacker {
			return true
		}
	}
	return false
}

func sliderAttacks(b *board.Board, sq Square, attacker Color) bool {
	for dirIdx, d := range slideDirections {
		steps := numSquaresToEdge[sq][dirIdx]
		cur := sq
		for s := 0; s < steps; s++ {
			cur = Square(int(cur) + d)
			p := b.PieceAt(cur)
			if p.IsNone() {
				continue
			}
			if p.ColorOf() != attacker {
				break
			}
			pt := p.TypeOf()
			isDiagonal := dirIdx >= 4
			if pt == Queen || (isDiagonal && pt == Bishop) || (!isDiagonal && pt == Rook) {
				return true
			}
			break
		}
	}
	return false
}

// IsInCheck reports whether the side to move's king is attacked.
func IsInCheck(b *board.Board) bool {
	side := b.SideToMove()
	return IsSquareAttacked(b, b.KingSquare(side), !boolWhite(side))
}

func boolWhite(c Color) bool {
	return c == White
}
