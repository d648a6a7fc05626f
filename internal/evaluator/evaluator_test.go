package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navigill7/chess/internal/board"
)

func TestStartPositionIsBalanced(t *testing.T) {
	b := board.NewFromStart()
	assert.Equal(t, 0, int(Evaluate(b)))
}

func TestMaterialAdvantageFavorsSideToMove(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)
	assert.Greater(t, int(Evaluate(b)), 0)

	b2, err := board.NewFromFEN("4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	require.NoError(t, err)
	assert.Less(t, int(Evaluate(b2)), 0)
}
