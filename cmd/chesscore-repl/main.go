// Command chesscore-repl is a minimal interactive read-eval-move loop over
// the position engine. It gives internal/board and internal/storage a real
// caller outside of tests; it implements no search or evaluation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/mxkrl/chesscore/internal/board"
	"github.com/mxkrl/chesscore/internal/render"
	"github.com/mxkrl/chesscore/internal/storage"
)

var startFEN = flag.String("fen", "", "starting FEN (default: last-used FEN, or the standard opening position)")

func main() {
	flag.Parse()

	dbDir, err := storage.GetDatabaseDir()
	if err != nil {
		log.Fatalf("chesscore-repl: could not resolve data directory: %v", err)
	}
	store, err := storage.NewStore(dbDir)
	if err != nil {
		log.Fatalf("chesscore-repl: could not open preferences store: %v", err)
	}
	defer store.Close()

	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("chesscore-repl: could not load preferences, using defaults: %v", err)
		prefs = storage.DefaultPreferences()
	}

	fen := *startFEN
	if fen == "" {
		fen = prefs.LastFEN
	}
	if fen == "" {
		fen = board.StartFEN
	}

	pos, err := board.ParseFEN(fen)
	if err != nil {
		log.Fatalf("chesscore-repl: invalid FEN %q: %v", fen, err)
	}

	(&repl{
		pos:   pos,
		store: store,
		prefs: prefs,
	}).run()
}

type repl struct {
	pos   *board.Position
	store *storage.Store
	prefs *storage.Preferences
	undo  []board.MoveUndo
}

func (r *repl) run() {
	fmt.Println("chesscore REPL. Commands: move <uci>, moves, fen, undo, new [fen], image <path>, quit")
	fmt.Println(r.pos)

	scanner := bufio.NewScanner(os.Stdin)
	app := r
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "move":
			app.handleMove(args)
		case "moves":
			app.handleMoves()
		case "fen":
			fmt.Println(app.pos.ToFEN())
		case "undo":
			app.handleUndo()
		case "new":
			app.handleNew(args)
		case "image":
			app.handleImage(args)
		case "quit", "exit":
			app.persist()
			return
		default:
			fmt.Printf("unknown command: %s\n", cmd)
		}
	}
	app.persist()
}

func (r *repl) handleMove(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: move <uci, e.g. e2e4 or e7e8q>")
		return
	}
	m, err := board.ParseMove(args[0], r.pos)
	if err != nil {
		fmt.Printf("invalid move syntax: %v\n", err)
		return
	}
	if !r.pos.LegalMoves().Contains(m) {
		fmt.Println("invalid: not a legal move in this position")
		return
	}
	r.undo = append(r.undo, r.pos.Apply(m))
	fmt.Println(r.pos)
	if r.pos.IsCheckmate() {
		fmt.Println("checkmate")
	} else if r.pos.IsStalemate() {
		fmt.Println("stalemate")
	} else if r.pos.InCheck() {
		fmt.Println("check")
	}
}

func (r *repl) handleMoves() {
	moves := r.pos.LegalMoves()
	for i := 0; i < moves.Len(); i++ {
		fmt.Printf("%s ", moves.Get(i))
	}
	fmt.Println()
}

func (r *repl) handleUndo() {
	if len(r.undo) == 0 {
		fmt.Println("nothing to undo")
		return
	}
	last := r.undo[len(r.undo)-1]
	r.undo = r.undo[:len(r.undo)-1]
	r.pos.Unapply(last)
	fmt.Println(r.pos)
}

func (r *repl) handleNew(args []string) {
	fen := board.StartFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	pos, err := board.ParseFEN(fen)
	if err != nil {
		fmt.Printf("invalid FEN: %v\n", err)
		return
	}
	r.pos = pos
	r.undo = nil
	fmt.Println(r.pos)
}

func (r *repl) persist() {
	r.prefs.LastFEN = r.pos.ToFEN()
	if err := r.store.SavePreferences(r.prefs); err != nil {
		log.Printf("chesscore-repl: could not save preferences: %v", err)
	}
}

// handleImage writes a PNG snapshot of the current position using
// internal/render.
func (r *repl) handleImage(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: image <path.png>")
		return
	}
	f, err := os.Create(args[0])
	if err != nil {
		fmt.Printf("could not create %s: %v\n", args[0], err)
		return
	}
	defer f.Close()

	renderer := render.NewRenderer(80, render.DefaultTheme())
	img := renderer.Compose(r.pos)
	if err := png.Encode(f, img); err != nil {
		fmt.Printf("could not encode PNG: %v\n", err)
		return
	}
	fmt.Printf("wrote %s\n", args[0])
}
