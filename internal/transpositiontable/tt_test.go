package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/navigill7/chess/internal/types"
	"github.com/navigill7/chess/internal/zobrist"
)

func TestStoreAndExactLookup(t *testing.T) {
	tt := NewTable(1)
	key := zobrist.Key(12345)
	m := NewMove(NewSquare(4, 1), NewSquare(4, 3), FlagDoublePawnPush)
	tt.Store(key, 4, 0, 30, Exact, m)

	got := tt.Lookup(key, 4, 0, -100, 100)
	assert.Equal(t, Value(30), got)

	probed, ok := tt.ProbeMove(key)
	assert.True(t, ok)
	assert.Equal(t, m, probed)
}

func TestLookupMissOnKeyMismatch(t *testing.T) {
	tt := NewTable(1)
	tt.Store(zobrist.Key(1), 4, 0, 30, Exact, MoveNone)
	assert.Equal(t, FailedLookup, tt.Lookup(zobrist.Key(2), 4, 0, -100, 100))
}

func TestLookupMissOnShallowerDepth(t *testing.T) {
	tt := NewTable(1)
	key := zobrist.Key(7)
	tt.Store(key, 2, 0, 30, Exact, MoveNone)
	assert.Equal(t, FailedLookup, tt.Lookup(key, 4, 0, -100, 100))
}

func TestUpperBoundUsableOnlyBelowAlpha(t *testing.T) {
	tt := NewTable(1)
	key := zobrist.Key(9)
	tt.Store(key, 4, 0, 30, UpperBound, MoveNone)

	assert.Equal(t, Value(30), tt.Lookup(key, 4, 0, 40, 100))
	assert.Equal(t, FailedLookup, tt.Lookup(key, 4, 0, 20, 100))
}

func TestLowerBoundUsableOnlyAboveBeta(t *testing.T) {
	tt := NewTable(1)
	key := zobrist.Key(11)
	tt.Store(key, 4, 0, 30, LowerBound, MoveNone)

	assert.Equal(t, Value(30), tt.Lookup(key, 4, 0, -100, 20))
	assert.Equal(t, FailedLookup, tt.Lookup(key, 4, 0, -100, 40))
}

func TestMateScoreNormalizedAcrossDifferentPly(t *testing.T) {
	tt := NewTable(1)
	key := zobrist.Key(77)
	mateIn2FromRoot := ValueMate - 4
	tt.Store(key, 4, 2, mateIn2FromRoot, Exact, MoveNone)

	// Probed from a different ply-from-root, the mate distance is
	// re-expressed relative to the probing node: stored as value+2,
	// denormalized by subtracting the new ply 5.
	got := tt.Lookup(key, 4, 5, -ValueInfinite, ValueInfinite)
	assert.Equal(t, mateIn2FromRoot+2-5, got)
}

func TestAlwaysReplace(t *testing.T) {
	tt := NewTable(1)
	key := zobrist.Key(3)
	tt.Store(key, 8, 0, 100, Exact, MoveNone)
	tt.Store(key, 2, 0, -5, Exact, MoveNone)
	assert.Equal(t, Value(-5), tt.Lookup(key, 2, 0, -100, 100))
}
