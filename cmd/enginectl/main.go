// Command enginectl is a minimal line-oriented REPL over the engine
// façade: set a position, play moves, search, or run perft.
// It is not a UCI driver - it exists for manual interaction and
// profiling during development.
package main

import (
	"bufio"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/navigill7/chess/internal/board"
	"github.com/navigill7/chess/internal/config"
	"github.com/navigill7/chess/internal/engine"
	"github.com/navigill7/chess/internal/openingbook"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	bookFile := flag.String("book", "", "path to an opening book file (Simplified-FEN format)")
	doProfile := flag.Bool("profile", false, "enable CPU profiling for the session")
	flag.Parse()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	var book *openingbook.Book
	if *bookFile != "" {
		b, err := openingbook.Load(*bookFile)
		if err != nil {
			out.Printf("book not loaded: %v\n", err)
		} else {
			book = b
		}
	}

	e := engine.NewEngine(book)
	repl(e)
}

func repl(e *engine.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	out.Println("enginectl ready. commands: position, move, go, perft, quit")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "position":
			handlePosition(e, fields[1:])
		case "move":
			handleMove(e, fields[1:])
		case "go":
			handleGo(e, fields[1:])
		case "perft":
			handlePerft(e, fields[1:])
		default:
			out.Printf("unknown command: %s\n", fields[0])
		}
	}
}

func handlePosition(e *engine.Engine, args []string) {
	if len(args) == 0 {
		out.Println("usage: position startpos | position fen <fen...>")
		return
	}
	if args[0] == "startpos" {
		if err := e.SetPosition(board.StartFen); err != nil {
			out.Printf("error: %v\n", err)
		}
		return
	}
	if args[0] == "fen" {
		fen := strings.Join(args[1:], " ")
		if err := e.SetPosition(fen); err != nil {
			out.Printf("error: %v\n", err)
		}
		return
	}
	out.Println("usage: position startpos | position fen <fen...>")
}

func handleMove(e *engine.Engine, args []string) {
	if len(args) != 1 {
		out.Println("usage: move <uci>")
		return
	}
	if err := e.PlayMove(args[0]); err != nil {
		out.Printf("error: %v\n", err)
	}
}

func handleGo(e *engine.Engine, args []string) {
	timeMs := int64(1000)
	var movetimeSet bool
	var budget, increment int64
	var clockSet bool

	for i := 0; i+1 < len(args); i += 2 {
		v, err := strconv.ParseInt(args[i+1], 10, 64)
		if err != nil {
			continue
		}
		switch args[i] {
		case "movetime":
			timeMs = v
			movetimeSet = true
		case "wtime", "btime":
			budget = v
			clockSet = true
		case "winc", "binc":
			increment = v
		}
	}
	if !movetimeSet && clockSet {
		timeMs = engine.ChooseThinkTime(budget, increment, 50, 0)
	}
	result, err := e.Search(timeMs)
	if err != nil {
		out.Printf("error: %v\n", err)
		return
	}
	out.Printf("bestmove %s eval=%d nodes=%d\n", result.MoveUCI, result.Evaluation, result.Nodes)
}

func handlePerft(e *engine.Engine, args []string) {
	if len(args) != 1 {
		out.Println("usage: perft <depth>")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		out.Printf("error: %v\n", err)
		return
	}
	for d := 1; d <= depth; d++ {
		n, perr := e.Perft(d)
		if perr != nil {
			out.Printf("error: %v\n", perr)
			return
		}
		out.Printf("perft(%d) = %d\n", d, n)
	}
}
