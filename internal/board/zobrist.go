package board

// Zobrist hash keys, built once from a fixed-seed PRNG so hashes are
// reproducible across runs, which is what lets internal/storage use a
// position hash as a stable perft memoization key.
var (
	zobristPiece      [2][7][64]uint64 // [Color][PieceType][Square]; index 6 (NoPieceType) unused but keeps bounds simple
	zobristCastleRook [2][64]uint64    // [Color][Square] keyed per bit of CastleRooks
	zobristEnPassant  [2][64]uint64    // [Color][Square] keyed per bit of DoublePushPawns
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// prng is a fixed-seed xorshift64* generator, chosen purely for
// reproducibility: the same seed always produces the same key table, so a
// hash computed in one process run means the same thing in the next.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
		for sq := A1; sq <= H8; sq++ {
			zobristCastleRook[c][sq] = rng.next()
			zobristEnPassant[c][sq] = rng.next()
		}
	}

	zobristSideToMove = rng.next()
}

// ZobristPiece returns the key for a piece of kind pt and color c on sq.
func ZobristPiece(c Color, pt PieceType, sq Square) uint64 {
	return zobristPiece[c][pt][sq]
}

// ZobristCastleRook returns the key for a set bit in color c's CastleRooks
// bitboard at sq.
func ZobristCastleRook(c Color, sq Square) uint64 {
	return zobristCastleRook[c][sq]
}

// ZobristEnPassant returns the key for a set bit in color c's
// DoublePushPawns bitboard at sq.
func ZobristEnPassant(c Color, sq Square) uint64 {
	return zobristEnPassant[c][sq]
}

// ZobristSideToMove returns the key XORed in whenever it is Black to move.
func ZobristSideToMove() uint64 {
	return zobristSideToMove
}

// Hash computes the Zobrist hash for the position from scratch. It folds in
// castle_rooks and double_push_pawns bit by bit rather than through a small
// enum index, which is what keeps a perft memoization key built from this
// hash correct per the design note in perft.go.
func (p *Position) Hash() uint64 {
	var h uint64

	for c := White; c <= Black; c++ {
		ps := &p.Sets[c]
		kinds := [6]struct {
			pt PieceType
			bb Bitboard
		}{
			{Pawn, ps.Pawns}, {Knight, ps.Knights}, {Bishop, ps.Bishops},
			{Rook, ps.Rooks}, {Queen, ps.Queens}, {King, ps.Kings},
		}
		for _, k := range kinds {
			bb := k.bb
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= zobristPiece[c][k.pt][sq]
			}
		}

		rooks := ps.CastleRooks
		for rooks != 0 {
			sq := rooks.PopLSB()
			h ^= zobristCastleRook[c][sq]
		}

		ep := ps.DoublePushPawns
		for ep != 0 {
			sq := ep.PopLSB()
			h ^= zobristEnPassant[c][sq]
		}
	}

	if p.SideToMove == Black {
		h ^= zobristSideToMove
	}

	return h
}
