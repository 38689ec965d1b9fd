package board

// Perft counts leaf nodes of the legal move tree rooted at pos at the given
// depth, the ground-truth test harness for move generator correctness.
func Perft(pos *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := pos.LegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.Apply(m)
		nodes += Perft(pos, depth-1)
		pos.Unapply(undo)
	}
	return nodes
}

// PerftCache is the interface internal/board/perft.go needs from a
// memoization backend; internal/storage.Store satisfies it against BadgerDB.
// A memoization entry is correct only when the hash it is keyed on includes
// castling rights and en-passant state, which Position.Hash folds in via
// CastleRooks and DoublePushPawns.
type PerftCache interface {
	PerftGet(hash uint64, whiteToMove bool, depth int) (nodes int64, ok bool, err error)
	PerftPut(hash uint64, whiteToMove bool, depth int, nodes int64) error
}

// PerftMemo counts leaf nodes the same way Perft does, but checks cache
// before recursing and stores every sub-result it computes. A cache error is
// treated as a miss: memoization is a performance optimization, not a
// correctness requirement, so a storage failure falls back to plain
// recursion for that subtree rather than aborting the count.
func PerftMemo(pos *Position, depth int, cache PerftCache) int64 {
	if depth == 0 {
		return 1
	}

	hash := pos.Hash()
	whiteToMove := pos.SideToMove == White

	if nodes, ok, err := cache.PerftGet(hash, whiteToMove, depth); err == nil && ok {
		return nodes
	}

	moves := pos.LegalMoves()
	var nodes int64
	if depth == 1 {
		nodes = int64(moves.Len())
	} else {
		for i := 0; i < moves.Len(); i++ {
			m := moves.Get(i)
			undo := pos.Apply(m)
			nodes += PerftMemo(pos, depth-1, cache)
			pos.Unapply(undo)
		}
	}

	cache.PerftPut(hash, whiteToMove, depth, nodes)
	return nodes
}

// PerftDivide returns the leaf count contributed by each legal move at the
// root, the standard per-move breakdown used to localize a move generator
// bug against a known-good perft table.
func PerftDivide(pos *Position, depth int) map[Move]int64 {
	results := make(map[Move]int64)
	if depth < 1 {
		return results
	}

	moves := pos.LegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		undo := pos.Apply(m)
		results[m] = Perft(pos, depth-1)
		pos.Unapply(undo)
	}
	return results
}
