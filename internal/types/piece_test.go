package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePieceRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			assert.Equal(t, pt, p.TypeOf())
			assert.Equal(t, c, p.ColorOf())
		}
	}
}

func TestPieceNoneIsEmpty(t *testing.T) {
	assert.True(t, PieceNone.IsNone())
	assert.Equal(t, PtNone, PieceNone.TypeOf())
}
