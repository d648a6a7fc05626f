package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navigill7/chess/internal/board"
	. "github.com/navigill7/chess/internal/types"
)

func TestHashMoveSortsFirst(t *testing.T) {
	b := board.NewFromStart()
	moves := []Move{
		NewMove(NewSquare(4, 1), NewSquare(4, 3), FlagDoublePawnPush), // e2e4
		NewMove(NewSquare(0, 1), NewSquare(0, 2), FlagNone),           // a2a3
	}
	hash := moves[1]
	tables := NewTables(64)
	tables.Order(b, moves, hash, 0)
	assert.Equal(t, hash, moves[0])
}

func TestCaptureOutscoresQuietMove(t *testing.T) {
	b, err := board.NewFromFEN("r3k3/8/8/8/8/8/8/R3K3 w Qq - 0 1")
	require.NoError(t, err)

	capture := NewMove(NewSquare(0, 0), NewSquare(0, 7), FlagNone) // Rxa8
	quiet := NewMove(NewSquare(4, 0), NewSquare(3, 0), FlagNone)   // Ke1-d1

	moves := []Move{quiet, capture}
	tables := NewTables(64)
	tables.Order(b, moves, MoveNone, 0)
	assert.Equal(t, capture, moves[0])
}

func TestKillerOutscoresPlainHistory(t *testing.T) {
	b := board.NewFromStart()
	killer := NewMove(NewSquare(1, 0), NewSquare(2, 2), FlagNone) // Nb1c3
	other := NewMove(NewSquare(6, 0), NewSquare(5, 2), FlagNone) // Ng1f3

	tables := NewTables(64)
	tables.RecordKiller(3, killer)

	moves := []Move{other, killer}
	tables.Order(b, moves, MoveNone, 3)
	assert.Equal(t, killer, moves[0])
}

func TestHistoryHeuristicAccumulatesDepthSquared(t *testing.T) {
	m := NewMove(NewSquare(4, 1), NewSquare(4, 3), FlagDoublePawnPush)
	tables := NewTables(64)
	tables.RecordHistory(White, m, 4)
	assert.Equal(t, 16, tables.history[White][m.From()][m.To()])
	tables.RecordHistory(White, m, 3)
	assert.Equal(t, 25, tables.history[White][m.From()][m.To()])
}
