// Package repetition implements the search-time repetition-draw
// stack. It is distinct from Board's own repetition history: this
// stack is owned by the Searcher and is pushed/popped in lockstep with
// make_move/unmake_move during the recursive search, never during a
// committed Engine.PlayMove.
package repetition

import "github.com/navigill7/chess/internal/zobrist"

// Table is a stack of Zobrist keys with irreversible-move boundaries.
type Table struct {
	keys         []zobrist.Key
	startIndices []int
}

// NewTable returns a Table seeded with history, the key sequence of
// the positions reachable from the engine's current position by
// reversible moves. history[0] is the oldest key.
func NewTable(history []zobrist.Key) *Table {
	t := &Table{
		keys:         make([]zobrist.Key, len(history)),
		startIndices: make([]int, len(history)),
	}
	copy(t.keys, history)
	// The seeded history is itself all-reversible by construction
	// (Board clears it on every irreversible move), so every entry
	// shares start index 0.
	for i := range t.startIndices {
		t.startIndices[i] = 0
	}
	return t
}

// Push records key as the new top of stack. reset marks the move that
// produced this position as irreversible (capture or pawn move), which
// starts a fresh repetition boundary.
func (t *Table) Push(key zobrist.Key, reset bool) {
	start := 0
	if n := len(t.startIndices); n > 0 {
		start = t.startIndices[n-1]
	}
	if reset {
		start = len(t.keys)
	}
	t.keys = append(t.keys, key)
	t.startIndices = append(t.startIndices, start)
}

// Pop removes the top of stack. It must be paired with the Push that
// preceded it, mirroring unmake_move's pairing with make_move.
func (t *Table) Pop() {
	n := len(t.keys)
	t.keys = t.keys[:n-1]
	t.startIndices = t.startIndices[:n-1]
}

// Contains reports whether key occurred earlier in the current
// irreversible-move window, excluding the current position itself.
func (t *Table) Contains(key zobrist.Key) bool {
	n := len(t.keys)
	if n == 0 {
		return false
	}
	start := t.startIndices[n-1]
	for i := start; i < n-1; i++ {
		if t.keys[i] == key {
			return true
		}
	}
	return false
}

// Len returns the number of keys currently on the stack.
func (t *Table) Len() int {
	return len(t.keys)
}
