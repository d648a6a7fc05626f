// Package transpositiontable implements a fixed-size hash table
// caching search results by Zobrist key. It is used by one search at a
// time and is not safe for concurrent use.
package transpositiontable

import (
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/navigill7/chess/internal/logging"
	. "github.com/navigill7/chess/internal/types"
	"github.com/navigill7/chess/internal/zobrist"
)

var log = logging.GetLog()

// out formats the entry count with thousands separators in log output.
var out = message.NewPrinter(language.English)

// NodeType classifies the search bound an Entry records.
type NodeType uint8

// NodeType constants.
const (
	Exact NodeType = iota
	LowerBound
	UpperBound
)

// Entry is one transposition-table record.
type Entry struct {
	Key      zobrist.Key
	Value    Value
	Depth    int
	NodeType NodeType
	Move     Move
}

const entrySize = int(unsafe.Sizeof(Entry{}))

// mateCeiling and mateBand are used to decide whether a stored value
// needs mate-distance normalization.
const (
	mateCeiling = int(ValueMate)
	mateBand    = 1000
)

// Table is the transposition table. Create with NewTable.
type Table struct {
	entries []Entry
	count   uint64
}

// NewTable creates a table sized to hold roughly sizeMB megabytes of
// entries.
func NewTable(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize clears the table and resizes it to sizeMB megabytes.
func (t *Table) Resize(sizeMB int) {
	count := uint64(sizeMB) * (1 << 20) / uint64(entrySize)
	if count == 0 {
		count = 1
	}
	t.count = count
	t.entries = make([]Entry, count)
	log.Info(out.Sprintf("transposition table resized to %d MB, %d entries (%d bytes each)", sizeMB, count, entrySize))
}

// Clear zeroes every entry without reallocating.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) % t.count
}

// Store records a search result, always replacing whatever previously
// occupied the slot. Mate scores are normalized to be independent of
// the current search root's ply.
func (t *Table) Store(key zobrist.Key, depth int, plyFromRoot int, value Value, nodeType NodeType, move Move) {
	t.entries[t.index(key)] = Entry{
		Key:      key,
		Value:    normalizeMateForStorage(value, plyFromRoot),
		Depth:    depth,
		NodeType: nodeType,
		Move:     move,
	}
}

// FailedLookup is returned by Lookup when no usable value is cached.
const FailedLookup = Value(1<<31 - 1)

// Lookup returns a usable value for (key, depth, alpha, beta), or
// FailedLookup if the entry is absent, too shallow, or does not satisfy
// its bound relative to alpha/beta.
func (t *Table) Lookup(key zobrist.Key, depth int, plyFromRoot int, alpha, beta Value) Value {
	e := t.entries[t.index(key)]
	if e.Key != key || e.Depth < depth {
		return FailedLookup
	}
	value := denormalizeMateForLookup(e.Value, plyFromRoot)
	switch e.NodeType {
	case Exact:
		return value
	case UpperBound:
		if value <= alpha {
			return value
		}
	case LowerBound:
		if value >= beta {
			return value
		}
	}
	return FailedLookup
}

// ProbeMove returns the move stored for key regardless of depth or
// bound type, for use as a move-ordering hint only.
func (t *Table) ProbeMove(key zobrist.Key) (Move, bool) {
	e := t.entries[t.index(key)]
	if e.Key != key {
		return MoveNone, false
	}
	return e.Move, true
}

func normalizeMateForStorage(v Value, plyFromRoot int) Value {
	abs := v
	sign := Value(1)
	if abs < 0 {
		abs = -abs
		sign = -1
	}
	if int(mateCeiling)-int(abs) <= mateBand {
		return sign * (abs + Value(plyFromRoot))
	}
	return v
}

func denormalizeMateForLookup(v Value, plyFromRoot int) Value {
	abs := v
	sign := Value(1)
	if abs < 0 {
		abs = -abs
		sign = -1
	}
	if int(mateCeiling)-int(abs) <= mateBand {
		return sign * (abs - Value(plyFromRoot))
	}
	return v
}
