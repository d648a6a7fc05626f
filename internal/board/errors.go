package board

import "errors"

// ErrInvalidFen is returned when a FEN string cannot be parsed into a
// legal board setup.
var ErrInvalidFen = errors.New("invalid fen")
