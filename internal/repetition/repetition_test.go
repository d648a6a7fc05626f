package repetition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navigill7/chess/internal/zobrist"
)

func TestContainsExcludesCurrentPosition(t *testing.T) {
	rt := NewTable(nil)
	rt.Push(zobrist.Key(1), false)
	assert.False(t, rt.Contains(zobrist.Key(1)))
}

func TestContainsFindsPriorOccurrence(t *testing.T) {
	rt := NewTable(nil)
	rt.Push(zobrist.Key(1), false)
	rt.Push(zobrist.Key(2), false)
	rt.Push(zobrist.Key(1), false)
	assert.True(t, rt.Contains(zobrist.Key(1)))
}

func TestResetStartsNewBoundary(t *testing.T) {
	rt := NewTable(nil)
	rt.Push(zobrist.Key(1), false)
	rt.Push(zobrist.Key(2), true) // irreversible move, e.g. a capture
	rt.Push(zobrist.Key(1), false)
	assert.False(t, rt.Contains(zobrist.Key(1)), "key 1 is before the irreversible boundary")
}

func TestPushPopSymmetric(t *testing.T) {
	rt := NewTable([]zobrist.Key{10, 20})
	assert.Equal(t, 2, rt.Len())
	rt.Push(zobrist.Key(30), false)
	assert.Equal(t, 3, rt.Len())
	rt.Pop()
	assert.Equal(t, 2, rt.Len())
	assert.True(t, rt.Contains(zobrist.Key(10)))
}

func TestSeededHistoryShareStartIndexZero(t *testing.T) {
	rt := NewTable([]zobrist.Key{5, 6, 5})
	rt.Push(zobrist.Key(99), false)
	assert.True(t, rt.Contains(zobrist.Key(5)))
}
