package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/navigill7/chess/internal/types"
)

func mustMove(from, to string, flag MoveFlag) Move {
	f, _ := SquareFromString(from)
	t, _ := SquareFromString(to)
	return NewMove(f, t, flag)
}

func TestStartPositionFEN(t *testing.T) {
	b := NewFromStart()
	assert.Equal(t, StartFen, b.ToFEN())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}
	for _, fen := range fens {
		b, err := NewFromFEN(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, b.ToFEN())
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := NewFromStart()
	before := b.ToFEN()
	beforeKey := b.ZobristKey()

	m := mustMove("e2", "e4", FlagDoublePawnPush)
	b.MakeMove(m, true)
	assert.NotEqual(t, before, b.ToFEN())
	b.UnmakeMove(m, true)

	assert.Equal(t, before, b.ToFEN())
	assert.Equal(t, beforeKey, b.ZobristKey())
	assert.True(t, b.VerifyZobrist())
}

func TestMakeMoveUpdatesFiftyMoveAndFen(t *testing.T) {
	b := NewFromStart()
	m := mustMove("e2", "e4", FlagDoublePawnPush)
	b.MakeMove(m, false)
	assert.Equal(t, 0, b.FiftyMoveCounter())
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", b.ToFEN())
}

func TestCastlingKingSide(t *testing.T) {
	b, err := NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := b.ToFEN()
	beforeKey := b.ZobristKey()

	m := mustMove("e1", "g1", FlagCastle)
	b.MakeMove(m, true)
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1", b.ToFEN())
	assert.True(t, b.VerifyZobrist())

	b.UnmakeMove(m, true)
	assert.Equal(t, before, b.ToFEN())
	assert.Equal(t, beforeKey, b.ZobristKey())
}

func TestEnPassantCapture(t *testing.T) {
	b := NewFromStart()
	moves := []Move{
		mustMove("e2", "e4", FlagDoublePawnPush),
		mustMove("d7", "d5", FlagDoublePawnPush),
		mustMove("e4", "e5", FlagNone),
		mustMove("f7", "f5", FlagDoublePawnPush),
	}
	for _, m := range moves {
		b.MakeMove(m, true)
	}
	before := b.ToFEN()

	epMove := mustMove("e5", "f6", FlagEnPassant)
	f5, _ := SquareFromString("f5")
	assert.NotEqual(t, PieceNone, b.PieceAt(f5))

	b.MakeMove(epMove, true)
	assert.Equal(t, PieceNone, b.PieceAt(f5))

	b.UnmakeMove(epMove, true)
	assert.Equal(t, before, b.ToFEN())
	assert.NotEqual(t, PieceNone, b.PieceAt(f5))
}

func TestPromotion(t *testing.T) {
	b, err := NewFromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.NoError(t, err)
	m := mustMove("a7", "a8", PromotionFlag(Queen))
	b.MakeMove(m, true)
	a8, _ := SquareFromString("a8")
	assert.Equal(t, MakePiece(White, Queen), b.PieceAt(a8))
	b.UnmakeMove(m, true)
	assert.Equal(t, Pawn, b.PieceAt(mustSquare("a7")).TypeOf())
}

func mustSquare(s string) Square {
	sq, _ := SquareFromString(s)
	return sq
}

func TestCaptureRookLosesCastlingRights(t *testing.T) {
	// Black rook on a8 still has its right; White's rook captures it.
	b, err := NewFromFEN("r3k3/8/8/8/8/8/8/R3K3 w Qq - 0 1")
	require.NoError(t, err)
	m := mustMove("a1", "a8", FlagNone)
	b.MakeMove(m, true)
	assert.False(t, b.CastlingRights().Has(CastlingBQ))
}

func TestZobristStaysConsistentThroughGame(t *testing.T) {
	b := NewFromStart()
	// 1. e4 e5 2. Nf3 Nc6 3. Bb5 Nf6 4. O-O
	moves := []Move{
		mustMove("e2", "e4", FlagDoublePawnPush),
		mustMove("e7", "e5", FlagDoublePawnPush),
		mustMove("g1", "f3", FlagNone),
		mustMove("b8", "c6", FlagNone),
		mustMove("f1", "b5", FlagNone),
		mustMove("g8", "f6", FlagNone),
		mustMove("e1", "g1", FlagCastle),
	}
	for _, m := range moves {
		b.MakeMove(m, false)
		assert.True(t, b.VerifyZobrist(), "incremental key diverged after %s", m.UCI())
	}
	for i := len(moves) - 1; i >= 0; i-- {
		b.UnmakeMove(moves[i], false)
		assert.True(t, b.VerifyZobrist(), "incremental key diverged unmaking %s", moves[i].UCI())
	}
	assert.Equal(t, StartFen, b.ToFEN())
	assert.Len(t, b.RepetitionHistory(), 1)
}

func TestRepetitionKeyMatchesAfterKnightDance(t *testing.T) {
	b := NewFromStart()
	startKey := b.ZobristKey()
	moves := []Move{
		mustMove("g1", "f3", FlagNone),
		mustMove("g8", "f6", FlagNone),
		mustMove("f3", "g1", FlagNone),
		mustMove("f6", "g8", FlagNone),
	}
	for _, m := range moves {
		b.MakeMove(m, false)
	}
	assert.Equal(t, startKey, b.ZobristKey())
}
