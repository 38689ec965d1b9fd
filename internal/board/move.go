package board

import "fmt"

// Move encodes a move in 16 bits:
//
//	bits 0-5:   source square (0-63)
//	bits 6-11:  destination square (0-63)
//	bits 12-15: tag
//
// Tag values:
//
//	0 normal, 1 promote-knight, 2 promote-bishop, 3 promote-rook,
//	4 promote-queen, 5 en passant, 6 castle kingside, 7 castle queenside,
//	8 double pawn push
type Move uint16

const (
	tagNormal         = 0
	tagPromoKnight    = 1
	tagPromoBishop    = 2
	tagPromoRook      = 3
	tagPromoQueen     = 4
	tagEnPassant      = 5
	tagCastleKingside = 6
	tagCastleQueen    = 7
	tagDoublePush     = 8
)

// NoMove is the null move sentinel. Its tag (15) never occurs in a real move.
const NoMove Move = 0xFFFF

func encode(from, to Square, tag Move) Move {
	return Move(from) | Move(to)<<6 | tag<<12
}

// NewMove creates a normal (non-special) move.
func NewMove(from, to Square) Move {
	return encode(from, to, tagNormal)
}

// NewPromotion creates a promotion move to the given piece type.
func NewPromotion(from, to Square, promo PieceType) Move {
	var tag Move
	switch promo {
	case Knight:
		tag = tagPromoKnight
	case Bishop:
		tag = tagPromoBishop
	case Rook:
		tag = tagPromoRook
	case Queen:
		tag = tagPromoQueen
	}
	return encode(from, to, tag)
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return encode(from, to, tagEnPassant)
}

// NewDoublePawnPush creates a two-square pawn push, the only move that can
// set a side's double_push_pawns marker.
func NewDoublePawnPush(from, to Square) Move {
	return encode(from, to, tagDoublePush)
}

// NewCastleKingside creates a kingside castling move (king's movement only).
func NewCastleKingside(from, to Square) Move {
	return encode(from, to, tagCastleKingside)
}

// NewCastleQueenside creates a queenside castling move (king's movement only).
func NewCastleQueenside(from, to Square) Move {
	return encode(from, to, tagCastleQueen)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

func (m Move) tag() Move {
	return (m >> 12) & 0xF
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	t := m.tag()
	return t >= tagPromoKnight && t <= tagPromoQueen
}

// Promotion returns the promoted piece type. Only valid when IsPromotion.
func (m Move) Promotion() PieceType {
	switch m.tag() {
	case tagPromoKnight:
		return Knight
	case tagPromoBishop:
		return Bishop
	case tagPromoRook:
		return Rook
	case tagPromoQueen:
		return Queen
	}
	return NoPieceType
}

// IsEnPassant reports whether this move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.tag() == tagEnPassant
}

// IsDoublePawnPush reports whether this move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.tag() == tagDoublePush
}

// IsCastleKingside reports whether this move castles kingside.
func (m Move) IsCastleKingside() bool {
	return m.tag() == tagCastleKingside
}

// IsCastleQueenside reports whether this move castles queenside.
func (m Move) IsCastleQueenside() bool {
	return m.tag() == tagCastleQueen
}

// IsCastle reports whether this move is either castling move.
func (m Move) IsCastle() bool {
	return m.IsCastleKingside() || m.IsCastleQueenside()
}

// IsCapture reports whether this move captures a piece, consulting pos for
// the non-en-passant case since the tag alone does not carry that.
func (m Move) IsCapture(pos *Position) bool {
	if m.IsEnPassant() {
		return true
	}
	return pos.PieceAt(m.To()) != NoPiece
}

// String returns UCI notation, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string("nbrq"[m.Promotion()-Knight])
	}
	return s
}

// ParseMove parses UCI notation into a Move, consulting pos to disambiguate
// castling, en passant and double pawn pushes from plain moves.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("no piece at %s", from)
	}
	pt := piece.Type()

	if pt == King {
		delta := int(to) - int(from)
		if delta == 2 {
			return NewCastleKingside(from, to), nil
		}
		if delta == -2 {
			return NewCastleQueenside(from, to), nil
		}
	}

	if pt == Pawn {
		fromRank, toRank := from.Rank(), to.Rank()
		if abs(toRank-fromRank) == 2 {
			return NewDoublePawnPush(from, to), nil
		}
		if from.File() != to.File() && pos.PieceAt(to) == NoPiece {
			return NewEnPassant(from, to), nil
		}
	}

	return NewMove(from, to), nil
}

// MoveList is a fixed-capacity move buffer, sized to exceed any reachable
// legal move count, avoiding per-position allocation.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList returns an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Set overwrites the move at index i.
func (ml *MoveList) Set(i int, m Move) {
	ml.moves[i] = m
}

// Swap exchanges the moves at indices i and j.
func (ml *MoveList) Swap(i, j int) {
	ml.moves[i], ml.moves[j] = ml.moves[j], ml.moves[i]
}

// Clear empties the list without releasing its backing array.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the populated moves as a slice backed by the list's array.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// MoveUndo carries exactly what Position.Unapply needs to reverse a move
// applied by Position.Apply: the captured piece kind (if any) and both
// sides' castle_rooks / double_push_pawns bitboards as they stood before
// the move, since both can change as a side effect of any move (a rook
// capture clears castle_rooks; any move clears the opponent's stale
// double-push marker).
type MoveUndo struct {
	Move                 Move
	CapturedType         PieceType
	PriorCastleRooks     [2]Bitboard
	PriorDoublePushPawns [2]Bitboard
	PriorHalfMoveClock   int
}
