// Package openingbook implements a weighted, simplified-FEN-keyed
// opening move lookup. It is read-only after Load and safe to share
// across engine instances.
package openingbook

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/navigill7/chess/internal/board"
	"github.com/navigill7/chess/internal/config"
	"github.com/navigill7/chess/internal/logging"
)

var log = logging.GetBookLog()

// ErrBookLoad wraps any failure reading or parsing a book file. Loading
// a book is never fatal to the engine - callers degrade to an empty,
// always-miss Book on error.
var ErrBookLoad = errors.New("opening book load failed")

// entry is one recorded move and its play count under a position.
type entry struct {
	uci   string
	count int
}

// Book maps a simplified FEN (position, side, castling, en passant -
// the first four space-separated FEN fields) to its recorded moves.
type Book struct {
	positions map[string][]entry
}

// Load reads a line-oriented book file: a "pos <fen>" header followed
// by "<uci> <count>" pairs until the next header or EOF. Malformed
// lines are skipped silently.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookLoad, err)
	}
	defer f.Close()

	b := &Book{positions: make(map[string][]entry)}
	var currentKey string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "pos ") {
			currentKey = simplifiedFEN(strings.TrimPrefix(line, "pos "))
			continue
		}
		if currentKey == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count <= 0 {
			continue
		}
		b.positions[currentKey] = append(b.positions[currentKey], entry{uci: fields[0], count: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookLoad, err)
	}
	log.Infof("opening book loaded: %d positions from %s", len(b.positions), path)
	return b, nil
}

// simplifiedFEN keeps only the first four FEN fields: piece placement,
// side to move, castling rights, en passant target.
func simplifiedFEN(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

// Lookup samples a weighted move for b's current position, or returns
// ok=false on a miss or once b.PlyCount() reaches config.Settings.Book.MaxPlies.
func (book *Book) Lookup(b *board.Board) (string, bool) {
	if book == nil {
		return "", false
	}
	if b.PlyCount() >= config.Settings.Book.MaxPlies {
		return "", false
	}
	entries, found := book.positions[simplifiedFEN(b.ToFEN())]
	if !found || len(entries) == 0 {
		return "", false
	}
	return sample(entries, config.Settings.Book.WeightExp), true
}

// sample performs weighted random selection: w_i = count_i^p / sum(count_j^p).
func sample(entries []entry, p float64) string {
	weights := make([]float64, len(entries))
	var total float64
	for i, e := range entries {
		w := math.Pow(float64(e.count), p)
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return entries[0].uci
	}
	r := rand.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return entries[i].uci
		}
	}
	return entries[len(entries)-1].uci
}
