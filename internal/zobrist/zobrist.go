// Package zobrist holds the process-wide, immutable random tables used
// to hash a chess position into a 64-bit key. The tables are
// built once, from a fixed seed, at package init and are safe to share
// by reference across every Board instance - no mutation happens after
// init, so no synchronization is needed.
package zobrist

import "math/rand"

// Seed is the fixed seed the tables are generated from so that a given
// position always hashes to the same key across runs and processes.
const Seed = 29426028

// Key is a 64-bit Zobrist hash.
type Key uint64

// Table dimensions: piece encoding (types.Piece, 0..14) x square
// (0..63).
const (
	pieceSlots  = 15
	squareSlots = 64
)

var (
	// Pieces holds a key per (piece encoding, square) pair.
	Pieces [pieceSlots][squareSlots]Key

	// Castling holds a key for each of the 16 possible 4-bit rights masks.
	Castling [16]Key

	// EnPassant holds a key per en-passant file marker: index 0 = none,
	// 1..8 = files a..h.
	EnPassant [9]Key

	// SideToMove is XORed into the key whenever it is Black to move.
	SideToMove Key
)

func init() {
	r := rand.New(rand.NewSource(Seed))
	for p := 0; p < pieceSlots; p++ {
		for sq := 0; sq < squareSlots; sq++ {
			Pieces[p][sq] = Key(r.Uint64())
		}
	}
	for i := range Castling {
		Castling[i] = Key(r.Uint64())
	}
	// EnPassant[0] (no en passant possible) stays zero so that positions
	// without an en-passant file carry no marker term in their key, which
	// keeps the incremental make/unmake XOR arithmetic symmetric with the
	// from-scratch calculation.
	for i := 1; i < len(EnPassant); i++ {
		EnPassant[i] = Key(r.Uint64())
	}
	SideToMove = Key(r.Uint64())
}
