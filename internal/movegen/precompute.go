// Package movegen implements pseudo-legal and legal move generation,
// check detection and attacked-square queries for the mailbox board.
package movegen

import (
	. "github.com/navigill7/chess/internal/types"
)

// Direction offsets in mailbox index terms, ordered N, S, W, E, NW, SE, NE, SW.
const (
	dirN  = 8
	dirS  = -8
	dirW  = -1
	dirE  = 1
	dirNW = 7
	dirSE = -7
	dirNE = 9
	dirSW = -9
)

var slideDirections = [8]int{dirN, dirS, dirW, dirE, dirNW, dirSE, dirNE, dirSW}

// rookDirIdx/bishopDirIdx index into slideDirections for Rook/Bishop rays.
var rookDirIdx = [4]int{0, 1, 2, 3}
var bishopDirIdx = [4]int{4, 5, 6, 7}

var knightOffsets = [8]int{15, 17, -17, -15, 10, -6, 6, -10}

// numSquaresToEdge[sq][dirIndex] is the number of squares to the edge
// of the board in that direction, precomputed once at package init.
var numSquaresToEdge [64][8]int

func init() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		north := 7 - rank
		south := rank
		west := file
		east := 7 - file
		numSquaresToEdge[sq] = [8]int{
			north,
			south,
			west,
			east,
			min(north, west),
			min(south, east),
			min(north, east),
			min(south, west),
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// knightWrapOK reports whether a knight jump from sq by offset stays
// on the board without wrapping around a file edge (|delta file| <= 2
// and |delta rank| <= 2).
func knightWrapOK(sq Square, offset int) (Square, bool) {
	target := int(sq) + offset
	if target < 0 || target > 63 {
		return SqNone, false
	}
	fileDelta := abs(target%8 - int(sq)%8)
	rankDelta := abs(target/8 - int(sq)/8)
	if fileDelta > 2 || rankDelta > 2 {
		return SqNone, false
	}
	return Square(target), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
