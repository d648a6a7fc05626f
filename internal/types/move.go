package types

import "strings"

// MoveFlag is the 4-bit special-move tag encoded in a Move.
type MoveFlag uint8

// MoveFlag constants.
const (
	FlagNone           MoveFlag = 0
	FlagEnPassant      MoveFlag = 1
	FlagCastle         MoveFlag = 2
	FlagDoublePawnPush MoveFlag = 3
	FlagPromoteQueen   MoveFlag = 4
	FlagPromoteKnight  MoveFlag = 5
	FlagPromoteRook    MoveFlag = 6
	FlagPromoteBishop  MoveFlag = 7
)

// promotionPieceType maps a promotion flag to its PieceType. Zero value
// (FlagNone etc.) is never looked up by callers that first check IsPromotion.
var promotionPieceType = map[MoveFlag]PieceType{
	FlagPromoteQueen:  Queen,
	FlagPromoteKnight: Knight,
	FlagPromoteRook:   Rook,
	FlagPromoteBishop: Bishop,
}

var promotionFlag = map[PieceType]MoveFlag{
	Queen:  FlagPromoteQueen,
	Knight: FlagPromoteKnight,
	Rook:   FlagPromoteRook,
	Bishop: FlagPromoteBishop,
}

// Move is a 16-bit encoded move: bits 0-5 start square, 6-11 target
// square, 12-15 flag. It is stored and passed by value.
type Move uint16

// MoveNone is the invalid/empty move sentinel.
const MoveNone Move = 0

const (
	moveSquareMask = 0x3F
	moveToShift    = 6
	moveFlagShift  = 12
)

// NewMove encodes a move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(from)&moveSquareMask |
		(Move(to)&moveSquareMask)<<moveToShift |
		Move(flag)<<moveFlagShift
}

// From returns the start square.
func (m Move) From() Square {
	return Square(m & moveSquareMask)
}

// To returns the target square.
func (m Move) To() Square {
	return Square((m >> moveToShift) & moveSquareMask)
}

// Flag returns the special-move flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag(m >> moveFlagShift)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= FlagPromoteQueen
}

// PromotionType returns the promoted-to piece type. Only valid when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return promotionPieceType[m.Flag()]
}

// PromotionFlag returns the MoveFlag for promoting to pt (Queen/Knight/Rook/Bishop).
func PromotionFlag(pt PieceType) MoveFlag {
	return promotionFlag[pt]
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flag() == FlagCastle
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == FlagDoublePawnPush
}

// IsValid reports whether m is not MoveNone and encodes valid squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid()
}

// UCI returns the UCI move string: <file><rank><file><rank>[qnrb].
func (m Move) UCI() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(m.PromotionType().Char())
	}
	return b.String()
}

// String implements fmt.Stringer and equals UCI().
func (m Move) String() string {
	return m.UCI()
}
