package openingbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navigill7/chess/internal/board"
)

func TestLoadSkipsMalformedEntries(t *testing.T) {
	b, err := Load("testdata/sample.book")
	require.NoError(t, err)
	assert.Len(t, b.positions, 1)
}

func TestLookupHitsKnownPosition(t *testing.T) {
	book, err := Load("testdata/sample.book")
	require.NoError(t, err)

	b := board.NewFromStart()
	uci, ok := book.Lookup(b)
	assert.True(t, ok)
	assert.Contains(t, []string{"e2e4", "d2d4", "g1f3"}, uci)
}

func TestLookupMissesUnknownPosition(t *testing.T) {
	book, err := Load("testdata/sample.book")
	require.NoError(t, err)

	b, err := board.NewFromFEN("8/8/8/4k3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	_, ok := book.Lookup(b)
	assert.False(t, ok)
}

func TestLoadMissingFileReturnsErrBookLoad(t *testing.T) {
	_, err := Load("testdata/does-not-exist.book")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookLoad)
}

func TestNilBookAlwaysMisses(t *testing.T) {
	var book *Book
	b := board.NewFromStart()
	_, ok := book.Lookup(b)
	assert.False(t, ok)
}

func TestSampleIsDeterministicForSingleEntry(t *testing.T) {
	uci := sample([]entry{{uci: "e2e4", count: 10}}, 0.5)
	assert.Equal(t, "e2e4", uci)
}
