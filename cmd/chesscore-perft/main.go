// Command chesscore-perft runs the perft ground-truth benchmark against a
// position, optionally memoizing sub-results in the on-disk BadgerDB store.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/mxkrl/chesscore/internal/board"
	"github.com/mxkrl/chesscore/internal/storage"
)

var (
	fen      = flag.String("fen", board.StartFEN, "FEN of the position to run perft on")
	depth    = flag.Int("depth", 5, "perft depth")
	divide   = flag.Bool("divide", false, "print a per-root-move leaf count breakdown")
	memoize  = flag.Bool("memoize", false, "cache sub-results in the on-disk perft store")
	cacheDir = flag.String("cachedir", "", "perft cache directory (default: platform data dir)")
)

func main() {
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("chesscore-perft: invalid FEN: %v", err)
	}

	if *divide {
		runDivide(pos)
		return
	}

	var nodes int64
	if *memoize {
		nodes = runMemoized(pos)
	} else {
		nodes = board.Perft(pos, *depth)
	}

	fmt.Printf("perft(%d) from %q = %d\n", *depth, *fen, nodes)
}

func runDivide(pos *board.Position) {
	results := board.PerftDivide(pos, *depth)
	var total int64
	for m, n := range results {
		fmt.Printf("%s: %d\n", m, n)
		total += n
	}
	fmt.Printf("\nTotal: %d\n", total)
}

func runMemoized(pos *board.Position) int64 {
	dir := *cacheDir
	if dir == "" {
		dbDir, err := storage.GetDatabaseDir()
		if err != nil {
			log.Fatalf("chesscore-perft: could not resolve cache directory: %v", err)
		}
		dir = dbDir
	}

	store, err := storage.NewStore(dir)
	if err != nil {
		log.Fatalf("chesscore-perft: could not open perft cache at %s: %v", dir, err)
	}
	defer store.Close()

	return board.PerftMemo(pos, *depth, store)
}
