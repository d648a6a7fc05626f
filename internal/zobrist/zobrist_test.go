package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablesArePopulated(t *testing.T) {
	assert.NotEqual(t, Key(0), Pieces[1][0])
	assert.NotEqual(t, Key(0), SideToMove)
}

func TestTablesAreDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	dupes := 0
	for p := range Pieces {
		for sq := range Pieces[p] {
			k := Pieces[p][sq]
			if seen[k] {
				dupes++
			}
			seen[k] = true
		}
	}
	assert.Equal(t, 0, dupes, "zobrist piece-square keys should not collide")
}
