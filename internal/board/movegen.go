package board

import "errors"

// ErrIllegalMove is returned by Position.Move when the supplied move is not
// among the side to move's legal moves. The position is left unchanged.
var ErrIllegalMove = errors.New("board: illegal move")

// GeneratePseudoLegalMoves returns every move the side to move could play
// ignoring whether it leaves that side's own king in check. It refreshes
// both sides' attack maps first, since castling generation depends on the
// enemy's map being current for this ply.
func GeneratePseudoLegalMoves(pos *Position) *MoveList {
	pos.RefreshAttackMaps()

	list := NewMoveList()
	generatePawnMoves(pos, list)
	generateKnightMoves(pos, list)
	generateSliderMoves(pos, list, Bishop)
	generateSliderMoves(pos, list, Rook)
	generateSliderMoves(pos, list, Queen)
	generateKingMoves(pos, list)
	generateCastlingMoves(pos, list)
	return list
}

// LegalMoves filters GeneratePseudoLegalMoves down to moves that do not
// leave the mover's own king in check, applying and unapplying each
// candidate in turn.
func (p *Position) LegalMoves() *MoveList {
	us := p.SideToMove
	pseudo := GeneratePseudoLegalMoves(p)
	legal := NewMoveList()

	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		undo := p.Apply(m)
		if !p.KingInCheck(us) {
			legal.Add(m)
		}
		p.Unapply(undo)
	}

	return legal
}

// Move plays m if it is legal, returning ErrIllegalMove and leaving the
// position untouched otherwise.
func (p *Position) Move(m Move) error {
	if !p.LegalMoves().Contains(m) {
		return ErrIllegalMove
	}
	p.Apply(m)
	return nil
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	return p.LegalMoves().Len() > 0
}

// IsCheckmate reports whether the side to move is in check with no legal moves.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate reports whether the side to move has no legal moves but is not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}

func addPromotions(list *MoveList, from, to Square) {
	list.Add(NewPromotion(from, to, Queen))
	list.Add(NewPromotion(from, to, Rook))
	list.Add(NewPromotion(from, to, Bishop))
	list.Add(NewPromotion(from, to, Knight))
}

func generatePawnMoves(pos *Position, list *MoveList) {
	us := pos.SideToMove
	them := us.Other()
	own := &pos.Sets[us]
	enemy := &pos.Sets[them]
	empty := ^pos.Occupied()

	pawns := own.Pawns
	for pawns != 0 {
		from := pawns.PopLSB()

		push1 := pawnPushOne[us][from] & empty
		if push1 != 0 {
			to := push1.LSB()
			if to.RelativeRank(us) == 7 {
				addPromotions(list, from, to)
			} else {
				list.Add(NewMove(from, to))
			}
			if from.RelativeRank(us) == 1 {
				push2 := pawnPushOne[us][to] & empty
				if push2 != 0 {
					list.Add(NewDoublePawnPush(from, push2.LSB()))
				}
			}
		}

		captures := pawnCaptures[us][from] & enemy.Occupied()
		for captures != 0 {
			to := captures.PopLSB()
			if to.RelativeRank(us) == 7 {
				addPromotions(list, from, to)
			} else {
				list.Add(NewMove(from, to))
			}
		}
	}

	// En passant: the enemy's DoublePushPawns marks the pawn (if any) that
	// just advanced two squares. The capture target is one step further in
	// our own forward direction from that pawn's square. The set of our
	// pawns able to make that capture is exactly the diagonal-attack table
	// queried from the target square for the enemy color. That table
	// already excludes file wraparound, which is what resolves the file-
	// adjacency edge case a plain distance check misses.
	if enemy.DoublePushPawns != 0 {
		pawnSq := enemy.DoublePushPawns.LSB()
		targetBB := pawnPushOne[us][pawnSq]
		if targetBB != 0 {
			target := targetBB.LSB()
			attackers := pawnCaptures[them][target] & own.Pawns
			for attackers != 0 {
				from := attackers.PopLSB()
				list.Add(NewEnPassant(from, target))
			}
		}
	}
}

func generateKnightMoves(pos *Position, list *MoveList) {
	us := pos.SideToMove
	own := &pos.Sets[us]
	notOwn := ^own.Occupied()

	knights := own.Knights
	for knights != 0 {
		from := knights.PopLSB()
		targets := knightJumps[from] & notOwn
		for targets != 0 {
			list.Add(NewMove(from, targets.PopLSB()))
		}
	}
}

func generateSliderMoves(pos *Position, list *MoveList, pt PieceType) {
	us := pos.SideToMove
	own := &pos.Sets[us]
	occ := pos.Occupied()
	notOwn := ^own.Occupied()

	pieces := *own.bb(pt)
	for pieces != 0 {
		from := pieces.PopLSB()
		var attacks Bitboard
		switch pt {
		case Bishop:
			attacks = BishopAttacks(from, occ)
		case Rook:
			attacks = RookAttacks(from, occ)
		case Queen:
			attacks = QueenAttacks(from, occ)
		}
		targets := attacks & notOwn
		for targets != 0 {
			list.Add(NewMove(from, targets.PopLSB()))
		}
	}
}

func generateKingMoves(pos *Position, list *MoveList) {
	us := pos.SideToMove
	own := &pos.Sets[us]
	notOwn := ^own.Occupied()

	from := own.King()
	targets := kingSteps[from] & notOwn
	for targets != 0 {
		list.Add(NewMove(from, targets.PopLSB()))
	}
}

// generateCastlingMoves adds castling moves using each side's CastleRooks
// bitboard (a subset of Rooks rather than a rights flag) and the enemy's
// cached AttackMap to forbid the king from passing through or landing on
// an attacked square.
func generateCastlingMoves(pos *Position, list *MoveList) {
	us := pos.SideToMove
	own := &pos.Sets[us]
	enemyAttacks := pos.Sets[us.Other()].AttackMap
	occ := pos.Occupied()

	var kingFrom, kingsideRook, queensideRook, kingsideTo, queensideTo Square
	if us == White {
		kingFrom, kingsideRook, queensideRook = E1, H1, A1
		kingsideTo, queensideTo = G1, C1
	} else {
		kingFrom, kingsideRook, queensideRook = E8, H8, A8
		kingsideTo, queensideTo = G8, C8
	}

	if own.Kings&SquareBB(kingFrom) == 0 {
		return
	}

	if own.CastleRooks&SquareBB(kingsideRook) != 0 {
		var between Bitboard
		for sq := kingFrom + 1; sq < kingsideRook; sq++ {
			between |= SquareBB(sq)
		}
		passSquares := SquareBB(kingFrom) | SquareBB(kingFrom+1) | SquareBB(kingFrom+2)
		if occ&between == 0 && enemyAttacks&passSquares == 0 {
			list.Add(NewCastleKingside(kingFrom, kingsideTo))
		}
	}

	if own.CastleRooks&SquareBB(queensideRook) != 0 {
		var between Bitboard
		for sq := queensideRook + 1; sq < kingFrom; sq++ {
			between |= SquareBB(sq)
		}
		passSquares := SquareBB(kingFrom) | SquareBB(kingFrom-1) | SquareBB(kingFrom-2)
		if occ&between == 0 && enemyAttacks&passSquares == 0 {
			list.Add(NewCastleQueenside(kingFrom, queensideTo))
		}
	}
}

func castleRookSquares(c Color, kingside bool) (from, to Square) {
	switch {
	case c == White && kingside:
		return H1, F1
	case c == White && !kingside:
		return A1, D1
	case c == Black && kingside:
		return H8, F8
	default:
		return A8, D8
	}
}

// Apply plays m on the position and returns the information Unapply needs
// to reverse it exactly. Five variants: normal, double pawn push, en
// passant, promotion, and castle.
func (p *Position) Apply(m Move) MoveUndo {
	us := p.SideToMove
	them := us.Other()
	own := &p.Sets[us]
	enemy := &p.Sets[them]

	undo := MoveUndo{
		Move:                 m,
		CapturedType:         NoPieceType,
		PriorCastleRooks:     [2]Bitboard{p.Sets[White].CastleRooks, p.Sets[Black].CastleRooks},
		PriorDoublePushPawns: [2]Bitboard{p.Sets[White].DoublePushPawns, p.Sets[Black].DoublePushPawns},
		PriorHalfMoveClock:   p.HalfMoveClock,
	}

	from, to := m.From(), m.To()
	movingType, _ := own.Kind(from)
	pawnMove := movingType == Pawn

	switch {
	case m.IsCastleKingside():
		rookFrom, rookTo := castleRookSquares(us, true)
		own.Remove(Rook, rookFrom)
		own.Place(Rook, rookTo)
		own.Remove(King, from)
		own.Place(King, to)
		own.CastleRooks = 0

	case m.IsCastleQueenside():
		rookFrom, rookTo := castleRookSquares(us, false)
		own.Remove(Rook, rookFrom)
		own.Place(Rook, rookTo)
		own.Remove(King, from)
		own.Place(King, to)
		own.CastleRooks = 0

	case m.IsEnPassant():
		capturedSq := NewSquare(to.File(), from.Rank())
		enemy.Remove(Pawn, capturedSq)
		undo.CapturedType = Pawn
		own.Remove(Pawn, from)
		own.Place(Pawn, to)

	case m.IsPromotion():
		if capturedType, ok := enemy.Kind(to); ok {
			enemy.Remove(capturedType, to)
			undo.CapturedType = capturedType
			enemy.CastleRooks &^= SquareBB(to)
		}
		own.Remove(Pawn, from)
		own.Place(m.Promotion(), to)

	default: // normal move or double pawn push
		if capturedType, ok := enemy.Kind(to); ok {
			enemy.Remove(capturedType, to)
			undo.CapturedType = capturedType
			enemy.CastleRooks &^= SquareBB(to)
		}
		own.Remove(movingType, from)
		own.Place(movingType, to)
		if movingType == King {
			own.CastleRooks = 0
		} else if movingType == Rook {
			own.CastleRooks &^= SquareBB(from)
		}
	}

	captured := undo.CapturedType != NoPieceType

	enemy.DoublePushPawns = 0
	if m.IsDoublePawnPush() {
		own.DoublePushPawns = SquareBB(to)
	} else {
		own.DoublePushPawns = 0
	}

	if pawnMove || captured {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = them

	return undo
}

// Unapply reverses the move described by undo, which must be the most
// recent Apply call not yet undone (standard stack discipline).
func (p *Position) Unapply(undo MoveUndo) {
	m := undo.Move
	them := p.SideToMove
	us := them.Other()
	own := &p.Sets[us]
	enemy := &p.Sets[them]

	from, to := m.From(), m.To()

	switch {
	case m.IsCastleKingside():
		own.Remove(King, to)
		own.Place(King, from)
		rookFrom, rookTo := castleRookSquares(us, true)
		own.Remove(Rook, rookTo)
		own.Place(Rook, rookFrom)

	case m.IsCastleQueenside():
		own.Remove(King, to)
		own.Place(King, from)
		rookFrom, rookTo := castleRookSquares(us, false)
		own.Remove(Rook, rookTo)
		own.Place(Rook, rookFrom)

	case m.IsEnPassant():
		own.Remove(Pawn, to)
		own.Place(Pawn, from)
		capturedSq := NewSquare(to.File(), from.Rank())
		enemy.Place(Pawn, capturedSq)

	case m.IsPromotion():
		own.Remove(m.Promotion(), to)
		own.Place(Pawn, from)
		if undo.CapturedType != NoPieceType {
			enemy.Place(undo.CapturedType, to)
		}

	default:
		movingType, _ := own.Kind(to)
		own.Remove(movingType, to)
		own.Place(movingType, from)
		if undo.CapturedType != NoPieceType {
			enemy.Place(undo.CapturedType, to)
		}
	}

	p.Sets[White].CastleRooks = undo.PriorCastleRooks[White]
	p.Sets[Black].CastleRooks = undo.PriorCastleRooks[Black]
	p.Sets[White].DoublePushPawns = undo.PriorDoublePushPawns[White]
	p.Sets[Black].DoublePushPawns = undo.PriorDoublePushPawns[Black]
	p.HalfMoveClock = undo.PriorHalfMoveClock

	if us == Black {
		p.FullMoveNumber--
	}
	p.SideToMove = us
}
