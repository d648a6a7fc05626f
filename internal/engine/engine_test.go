package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPositionRejectsInvalidFen(t *testing.T) {
	e := NewEngine(nil)
	err := e.SetPosition("not a fen")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFen))
}

func TestPlayMoveRejectsIllegalMove(t *testing.T) {
	e := NewEngine(nil)
	err := e.PlayMove("e2e5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalMove))
}

func TestPlayMoveUpdatesCurrentFEN(t *testing.T) {
	e := NewEngine(nil)
	require.NoError(t, e.PlayMove("e2e4"))
	assert.Contains(t, e.CurrentFEN(), "4P3")
}

func TestSearchReturnsNoLegalMovesOnTerminalPosition(t *testing.T) {
	e := NewEngine(nil)
	require.NoError(t, e.SetPosition("r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4"))
	_, err := e.Search(100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoLegalMoves))
}

func TestSearchReturnsAMove(t *testing.T) {
	e := NewEngine(nil)
	result, err := e.Search(200)
	require.NoError(t, err)
	assert.NotEmpty(t, result.MoveUCI)
	assert.Greater(t, result.Nodes, uint64(0))
}

func TestPerftFromStartPosition(t *testing.T) {
	e := NewEngine(nil)
	n, err := e.Perft(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), n)
}

func TestChooseThinkTimeRespectsFloorAndCap(t *testing.T) {
	assert.Equal(t, int64(100), ChooseThinkTime(0, 0, 100, 0))
	assert.Equal(t, int64(500), ChooseThinkTime(100_000, 0, 100, 500))
}
