package config

// searchConfiguration holds the tunable knobs for the searcher.
type searchConfiguration struct {
	// Transposition table
	TTSizeMB int

	// Late move reduction
	UseLMR       bool
	LmrMinDepth  int
	LmrMinMoveNo int

	// Check / passed-pawn extensions
	UseExtensions bool
	MaxExtensions int

	// Killer move slots tracked per ply
	KillerSlots   int
	MaxPlyKillers int

	// Iterative deepening ceiling
	MaxDepth int
}

func defaultSearchConfiguration() searchConfiguration {
	return searchConfiguration{
		TTSizeMB:      64,
		UseLMR:        true,
		LmrMinDepth:   3,
		LmrMinMoveNo:  3,
		UseExtensions: true,
		MaxExtensions: 16,
		KillerSlots:   2,
		MaxPlyKillers: 64,
		MaxDepth:      256,
	}
}
