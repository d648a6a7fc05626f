// Package board implements the mailbox chess board: piece placement,
// FEN (de)serialization, and a reversible make/unmake protocol with an
// incrementally maintained Zobrist key and game-state history stack.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/navigill7/chess/internal/logging"
	. "github.com/navigill7/chess/internal/types"
	"github.com/navigill7/chess/internal/zobrist"
)

var log = logging.GetLog()

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is the mutable mailbox position.
type Board struct {
	square [SqLength]Piece

	whiteToMove bool

	castlingRights CastlingRights
	enPassantFile  int // 0 = none, 1..8 = files a..h
	fiftyMoveCount int
	moveCount      int
	plyCount       int

	kingSquare [ColorLength]Square

	history []gameState

	// repetitionHistory is only maintained for actual game play
	// (inSearch == false); it is cleared on every irreversible move.
	repetitionHistory []zobrist.Key
}

// NewFromStart creates a Board at the standard starting position.
func NewFromStart() *Board {
	b, err := NewFromFEN(StartFen)
	if err != nil {
		panic(err) // StartFen is a compile-time constant, must always parse
	}
	return b
}

// NewFromFEN parses fen and returns a fully initialized Board, or
// ErrInvalidFen if the string is malformed.
func NewFromFEN(fen string) (*Board, error) {
	b := &Board{}
	if err := b.setupFromFEN(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// ZobristKey returns the current position's Zobrist key in O(1) - the
// top of the game-state history stack.
func (b *Board) ZobristKey() zobrist.Key {
	return b.history[len(b.history)-1].zobristKey
}

// WhiteToMove reports whether it is White's turn.
func (b *Board) WhiteToMove() bool {
	return b.whiteToMove
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color {
	if b.whiteToMove {
		return White
	}
	return Black
}

// PieceAt returns the piece on sq, or PieceNone if empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.square[sq]
}

// KingSquare returns the king square for color c.
func (b *Board) KingSquare(c Color) Square {
	return b.kingSquare[c]
}

// CastlingRights returns the current castling rights mask.
func (b *Board) CastlingRights() CastlingRights {
	return b.castlingRights
}

// EnPassantFile returns 0 (none) or 1..8 for files a..h.
func (b *Board) EnPassantFile() int {
	return b.enPassantFile
}

// EnPassantSquare returns the en passant target square, or SqNone.
func (b *Board) EnPassantSquare() Square {
	if b.enPassantFile == 0 {
		return SqNone
	}
	file := b.enPassantFile - 1
	if b.whiteToMove {
		return NewSquare(file, 5) // rank 6, target for Black's double push
	}
	return NewSquare(file, 2) // rank 3, target for White's double push
}

// FiftyMoveCounter returns the half-move clock used for the 50-move rule.
func (b *Board) FiftyMoveCounter() int {
	return b.fiftyMoveCount
}

// PlyCount returns the number of plies played since the root position.
func (b *Board) PlyCount() int {
	return b.plyCount
}

// MoveCount returns the full-move number.
func (b *Board) MoveCount() int {
	return b.moveCount
}

// RepetitionHistory returns the Zobrist keys reachable from the
// current position by reversible real-game moves. Used to seed the
// search's repetition table at the root.
func (b *Board) RepetitionHistory() []zobrist.Key {
	return b.repetitionHistory
}

func (b *Board) setupFromFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("%w: expected at least 4 fields, got %d", ErrInvalidFen, len(fields))
	}

	b.square = [SqLength]Piece{}
	b.kingSquare = [ColorLength]Square{SqNone, SqNone}

	if err := b.parsePlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		b.whiteToMove = true
	case "b":
		b.whiteToMove = false
	default:
		return fmt.Errorf("%w: bad side to move %q", ErrInvalidFen, fields[1])
	}

	cr, err := parseCastling(fields[2])
	if err != nil {
		return err
	}
	b.castlingRights = cr

	epFile, err := parseEnPassant(fields[3], b.whiteToMove)
	if err != nil {
		return err
	}
	b.enPassantFile = epFile

	b.fiftyMoveCount = 0
	if len(fields) > 4 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			b.fiftyMoveCount = v
		}
	}
	b.moveCount = 1
	if len(fields) > 5 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			b.moveCount = v
		}
	}
	b.plyCount = 0

	if b.kingSquare[White] == SqNone || b.kingSquare[Black] == SqNone {
		return fmt.Errorf("%w: missing king(s)", ErrInvalidFen)
	}

	key := b.calculateZobrist()
	b.history = []gameState{{
		capturedType:   PtNone,
		enPassantFile:  b.enPassantFile,
		castlingRights: b.castlingRights,
		fiftyMoveCount: b.fiftyMoveCount,
		zobristKey:     key,
	}}
	b.repetitionHistory = []zobrist.Key{key}

	return nil
}

func (b *Board) parsePlacement(placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return fmt.Errorf("%w: placement needs 8 ranks, got %d", ErrInvalidFen, len(rows))
	}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pt, color, ok := pieceFromChar(ch)
			if !ok {
				return fmt.Errorf("%w: bad piece char %q", ErrInvalidFen, ch)
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %d overflows", ErrInvalidFen, rank+1)
			}
			sq := NewSquare(file, rank)
			piece := MakePiece(color, pt)
			b.square[sq] = piece
			if pt == King {
				b.kingSquare[color] = sq
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d files, want 8", ErrInvalidFen, rank+1, file)
		}
	}
	return nil
}

func pieceFromChar(ch rune) (PieceType, Color, bool) {
	color := White
	c := ch
	if ch >= 'a' && ch <= 'z' {
		color = Black
		c = ch - 'a' + 'A'
	}
	var pt PieceType
	switch c {
	case 'P':
		pt = Pawn
	case 'N':
		pt = Knight
	case 'B':
		pt = Bishop
	case 'R':
		pt = Rook
	case 'Q':
		pt = Queen
	case 'K':
		pt = King
	default:
		return PtNone, White, false
	}
	return pt, color, true
}

func parseCastling(s string) (CastlingRights, error) {
	if s == "-" {
		return CastlingNone, nil
	}
	var cr CastlingRights
	for _, ch := range s {
		switch ch {
		case 'K':
			cr |= CastlingWK
		case 'Q':
			cr |= CastlingWQ
		case 'k':
			cr |= CastlingBK
		case 'q':
			cr |= CastlingBQ
		default:
			return 0, fmt.Errorf("%w: bad castling char %q", ErrInvalidFen, ch)
		}
	}
	return cr, nil
}

func parseEnPassant(s string, whiteToMove bool) (int, error) {
	if s == "-" {
		return 0, nil
	}
	sq, ok := SquareFromString(s)
	if !ok {
		return 0, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFen, s)
	}
	wantRank := 5 // rank 6 (index 5), target after Black's double push
	if !whiteToMove {
		wantRank = 2 // rank 3 (index 2), target after White's double push
	}
	if sq.RankOf() != wantRank {
		return 0, fmt.Errorf("%w: en passant square %q inconsistent with side to move", ErrInvalidFen, s)
	}
	return sq.FileOf() + 1, nil
}

// ToFEN serializes the current position.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.square[NewSquare(file, rank)]
			if p == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pieceFenChar(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	if b.whiteToMove {
		sb.WriteString("w")
	} else {
		sb.WriteString("b")
	}
	sb.WriteString(" ")
	sb.WriteString(b.castlingRights.String())
	sb.WriteString(" ")
	if ep := b.EnPassantSquare(); ep != SqNone {
		sb.WriteString(ep.String())
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(fmt.Sprintf(" %d %d", b.fiftyMoveCount, b.moveCount))
	return sb.String()
}

func pieceFenChar(p Piece) string {
	ch := p.TypeOf().Char()
	if p.ColorOf() == White {
		return strings.ToUpper(ch)
	}
	return ch
}
