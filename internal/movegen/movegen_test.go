package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navigill7/chess/internal/board"
)

func TestStartPositionMoveCount(t *testing.T) {
	b := board.NewFromStart()
	moves := GenerateMoves(b, false)
	assert.Len(t, moves, 20)
}

func TestGeneratedMovesLeaveMoverNotInCheck(t *testing.T) {
	b := board.NewFromStart()
	for _, m := range GenerateMoves(b, false) {
		mover := b.SideToMove()
		b.MakeMove(m, true)
		assert.False(t, IsSquareAttacked(b, b.KingSquare(mover), mover != 0))
		b.UnmakeMove(m, true)
	}
}

func TestPerftStartPosition(t *testing.T) {
	b := board.NewFromStart()
	assert.Equal(t, uint64(20), Perft(b, 1))
	assert.Equal(t, uint64(400), Perft(b, 2))
	assert.Equal(t, uint64(8902), Perft(b, 3))
	assert.Equal(t, uint64(197281), Perft(b, 4))
}

func TestPerftKiwipete(t *testing.T) {
	b, err := board.NewFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, uint64(97862), Perft(b, 3))
}

func TestScholarsMateHasNoLegalMoves(t *testing.T) {
	b, err := board.NewFromFEN("r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	require.NoError(t, err)
	moves := GenerateMoves(b, false)
	assert.Empty(t, moves)
	assert.True(t, IsInCheck(b))
}
