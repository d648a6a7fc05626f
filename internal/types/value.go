package types

// Value is a centipawn evaluation or search score, from the
// side-to-move's perspective (negamax convention).
type Value int32

// Search score constants.
const (
	ValueDraw          Value = 0
	ValueInfinite      Value = 9_999_999
	ValueMate          Value = 100_000
	ValueMateThreshold Value = ValueMate - 1000
	ValueNA            Value = -ValueInfinite - 1
)

// IsMateScore reports whether v represents a forced mate in either direction.
func (v Value) IsMateScore() bool {
	return v >= ValueMateThreshold || v <= -ValueMateThreshold
}
