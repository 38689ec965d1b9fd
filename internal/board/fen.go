package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := &Position{FullMoveNumber: 1}

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if err := parseEnPassant(pos, parts[3]); err != nil {
		return nil, err
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
		}
		pos.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
		}
		pos.FullMoveNumber = fmn
	}

	return pos, nil
}

func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0

		for _, ch := range rankStr {
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}

			piece := PieceFromChar(byte(ch))
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character: %c", ch)
			}
			pos.Sets[piece.Color()].Place(piece.Type(), NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights maps FEN's K/Q/k/q letters directly onto the rook
// squares they refer to (H1/A1/H8/A8), marking those bits in the
// corresponding side's CastleRooks bitboard.
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		return nil
	}

	for _, ch := range castling {
		switch ch {
		case 'K':
			pos.Sets[White].CastleRooks |= SquareBB(H1)
		case 'Q':
			pos.Sets[White].CastleRooks |= SquareBB(A1)
		case 'k':
			pos.Sets[Black].CastleRooks |= SquareBB(H8)
		case 'q':
			pos.Sets[Black].CastleRooks |= SquareBB(A8)
		default:
			return fmt.Errorf("invalid castling character: %c", ch)
		}
	}

	return nil
}

// parseEnPassant reads the FEN en-passant target square (the square
// behind the pawn that just double-pushed) and sets DoublePushPawns to
// mark the pawn's own square, on the side that made that push.
//
// A target on rank index 2 (FEN's "3" rank) can only result from a White
// double push, so the pawn itself sits one rank further north, on rank
// index 3; symmetrically a rank-index-5 target belongs to a Black push
// with the pawn on rank index 4. The marker always belongs to the side
// that just moved, consistent with what Apply writes for a double push it
// performs directly.
func parseEnPassant(pos *Position, field string) error {
	if field == "-" {
		return nil
	}

	sq, err := ParseSquare(field)
	if err != nil {
		return fmt.Errorf("invalid en passant square: %s", field)
	}

	switch sq.Rank() {
	case 2:
		pos.Sets[White].DoublePushPawns = SquareBB(NewSquare(sq.File(), 3))
	case 5:
		pos.Sets[Black].DoublePushPawns = SquareBB(NewSquare(sq.File(), 4))
	default:
		return fmt.Errorf("invalid en passant square: %s", field)
	}

	return nil
}

// ToFEN returns the FEN representation of the position.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castlingFEN())

	sb.WriteByte(' ')
	sb.WriteString(p.enPassantFEN())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}

func (p *Position) castlingFEN() string {
	var s string
	if p.Sets[White].CastleRooks&SquareBB(H1) != 0 {
		s += "K"
	}
	if p.Sets[White].CastleRooks&SquareBB(A1) != 0 {
		s += "Q"
	}
	if p.Sets[Black].CastleRooks&SquareBB(H8) != 0 {
		s += "k"
	}
	if p.Sets[Black].CastleRooks&SquareBB(A8) != 0 {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

func (p *Position) enPassantFEN() string {
	if p.Sets[White].DoublePushPawns != 0 {
		sq := p.Sets[White].DoublePushPawns.LSB()
		return NewSquare(sq.File(), sq.Rank()-1).String()
	}
	if p.Sets[Black].DoublePushPawns != 0 {
		sq := p.Sets[Black].DoublePushPawns.LSB()
		return NewSquare(sq.File(), sq.Rank()+1).String()
	}
	return "-"
}
