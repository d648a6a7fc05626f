// Package ordering implements move scoring and sorting for the search
// tree: hash-move priority, MVV-LVA capture scoring, killer
// moves and the history heuristic. A Tables value is owned by one
// Searcher for the lifetime of a single search call.
package ordering

import (
	"sort"

	"github.com/navigill7/chess/internal/board"
	"github.com/navigill7/chess/internal/config"
	. "github.com/navigill7/chess/internal/types"
)

// Scoring constants.
const (
	hashMoveScore   = 1_000_000
	killerBase      = 900
	killerStep      = 100
	captureScoreMul = 10
)

// pieceValueForOrdering gives MVV-LVA its victim/attacker weights. It
// intentionally mirrors config.Settings.Eval rather than a separate
// table, since the same material scale makes sense for both purposes.
func pieceValueForOrdering(pt PieceType) int {
	switch pt {
	case Pawn:
		return config.Settings.Eval.PawnValue
	case Knight:
		return config.Settings.Eval.KnightValue
	case Bishop:
		return config.Settings.Eval.BishopValue
	case Rook:
		return config.Settings.Eval.RookValue
	case Queen:
		return config.Settings.Eval.QueenValue
	case King:
		return config.Settings.Eval.KingValue
	default:
		return 0
	}
}

// Tables holds the killer-move and history-heuristic state
// accumulated over one search call.
type Tables struct {
	killers [][]Move // killers[ply][slot]
	history [2][SqLength][SqLength]int
}

// NewTables returns an empty ordering state sized for maxPly plies.
func NewTables(maxPly int) *Tables {
	t := &Tables{killers: make([][]Move, maxPly)}
	slots := config.Settings.Search.KillerSlots
	for i := range t.killers {
		t.killers[i] = make([]Move, slots)
		for s := range t.killers[i] {
			t.killers[i][s] = MoveNone
		}
	}
	return t
}

// RecordKiller registers m as a killer move at plyFromRoot after a
// non-capture beta-cutoff: shift slot 0 into slot 1, place
// m in slot 0, unless it already occupies slot 0.
func (t *Tables) RecordKiller(plyFromRoot int, m Move) {
	if plyFromRoot >= len(t.killers) {
		return
	}
	slots := t.killers[plyFromRoot]
	if len(slots) == 0 || slots[0] == m {
		return
	}
	for i := len(slots) - 1; i > 0; i-- {
		slots[i] = slots[i-1]
	}
	slots[0] = m
}

// RecordHistory accumulates depth^2 for a non-capture beta-cutoff at
// (color, from, to).
func (t *Tables) RecordHistory(c Color, m Move, depth int) {
	t.history[c][m.From()][m.To()] += depth * depth
}

// isKiller reports whether m occupies any killer slot at plyFromRoot.
func (t *Tables) isKiller(plyFromRoot int, m Move) (bool, int) {
	if plyFromRoot >= len(t.killers) {
		return false, 0
	}
	for slot, km := range t.killers[plyFromRoot] {
		if km == m {
			return true, slot
		}
	}
	return false, 0
}

// Order scores and sorts moves in place, descending by score. hashMove
// (the move recorded in the transposition table for this position, or
// MoveNone) is given overriding priority.
func (t *Tables) Order(b *board.Board, moves []Move, hashMove Move, plyFromRoot int) {
	color := b.SideToMove()
	type scored struct {
		m     Move
		score int
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		ranked[i] = scored{m, t.score(b, m, hashMove, plyFromRoot, color)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	for i, r := range ranked {
		moves[i] = r.m
	}
}

func (t *Tables) score(b *board.Board, m Move, hashMove Move, plyFromRoot int, color Color) int {
	if hashMove != MoveNone && m == hashMove {
		return hashMoveScore
	}
	victim := b.PieceAt(m.To())
	if !victim.IsNone() || m.IsEnPassant() {
		attacker := b.PieceAt(m.From())
		victimValue := pieceValueForOrdering(victim.TypeOf())
		if m.IsEnPassant() {
			victimValue = pieceValueForOrdering(Pawn)
		}
		return captureScoreMul*victimValue - pieceValueForOrdering(attacker.TypeOf())
	}
	if isKiller, slot := t.isKiller(plyFromRoot, m); isKiller {
		return killerBase - slot*killerStep
	}
	return t.history[color][m.From()][m.To()]
}
