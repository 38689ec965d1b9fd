package board

import "testing"

// TestSentinelTableEntriesAreZero: every attack table has a 65th entry so a
// NoSquare lookup is safe and yields the empty bitboard.
func TestSentinelTableEntriesAreZero(t *testing.T) {
	if knightJumps[NoSquare] != 0 || kingSteps[NoSquare] != 0 {
		t.Error("expected zero knight/king table entries at the sentinel index")
	}
	for c := White; c <= Black; c++ {
		if pawnCaptures[c][NoSquare] != 0 || pawnPushOne[c][NoSquare] != 0 {
			t.Errorf("expected zero pawn table entries at the sentinel index for %s", c)
		}
	}
	for d := 0; d < 4; d++ {
		if straightRays[d][NoSquare] != 0 || diagonalRays[d][NoSquare] != 0 {
			t.Errorf("expected zero ray table entries at the sentinel index, direction %d", d)
		}
	}
}

func TestKnightJumpsAtCorner(t *testing.T) {
	want := SquareBB(B3) | SquareBB(C2)
	if got := KnightAttacks(A1); got != want {
		t.Errorf("knight on a1 attacks\n%swant\n%s", got, want)
	}
}

func TestKingStepsAtEdge(t *testing.T) {
	want := SquareBB(D1) | SquareBB(F1) | SquareBB(D2) | SquareBB(E2) | SquareBB(F2)
	if got := KingAttacks(E1); got != want {
		t.Errorf("king on e1 attacks\n%swant\n%s", got, want)
	}
}

// TestRookAttacksBlockerSubtraction: the scan sees up to and including the
// first blocker in each direction, and the whole ray where nothing blocks.
func TestRookAttacksBlockerSubtraction(t *testing.T) {
	occ := SquareBB(D7) | SquareBB(G4) | SquareBB(D4)
	got := RookAttacks(D4, occ)

	want := Empty
	for _, sq := range []Square{D5, D6, D7} { // north, blocked at d7
		want |= SquareBB(sq)
	}
	for _, sq := range []Square{E4, F4, G4} { // east, blocked at g4
		want |= SquareBB(sq)
	}
	for _, sq := range []Square{D3, D2, D1} { // south, open to the edge
		want |= SquareBB(sq)
	}
	for _, sq := range []Square{C4, B4, A4} { // west, open to the edge
		want |= SquareBB(sq)
	}

	if got != want {
		t.Errorf("rook on d4 attacks\n%swant\n%s", got, want)
	}
}

func TestBishopAttacksBlockerSubtraction(t *testing.T) {
	occ := SquareBB(F6) | SquareBB(D4)
	got := BishopAttacks(D4, occ)

	want := Empty
	for _, sq := range []Square{E5, F6} { // northeast, blocked at f6
		want |= SquareBB(sq)
	}
	for _, sq := range []Square{C5, B6, A7} { // northwest, open
		want |= SquareBB(sq)
	}
	for _, sq := range []Square{E3, F2, G1} { // southeast, open
		want |= SquareBB(sq)
	}
	for _, sq := range []Square{C3, B2, A1} { // southwest, open
		want |= SquareBB(sq)
	}

	if got != want {
		t.Errorf("bishop on d4 attacks\n%swant\n%s", got, want)
	}
}

// TestAttackMapCountsDefendedSquares: a square occupied by one's own piece
// still counts as attacked, which is what denies the enemy king that square.
func TestAttackMapCountsDefendedSquares(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/3PP3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	pos.RefreshAttackMaps()

	atk := pos.Sets[White].AttackMap
	if !atk.IsSet(E2) {
		t.Error("expected e2 (own pawn, defended by the king) to be in white's attack map")
	}
	if !atk.IsSet(C3) || !atk.IsSet(E3) || !atk.IsSet(D3) || !atk.IsSet(F3) {
		t.Error("expected both pawns' capture squares in white's attack map")
	}
}

// TestAttackMapStopsSlidersAtFirstBlocker: the blocker's square is attacked,
// squares behind it are not.
func TestAttackMapStopsSlidersAtFirstBlocker(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/4p3/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	pos.RefreshAttackMaps()

	atk := pos.Sets[White].AttackMap
	if !atk.IsSet(E1) {
		t.Error("expected the rook to attack e1 even though the king occupies it")
	}
	if atk.IsSet(G1) || atk.IsSet(H1) {
		t.Error("expected no rook attacks past the king on e1")
	}
}

// TestCastlingBlockedByAttackedPassSquare: an enemy rook covering f1 denies
// white's kingside castle even though every between-square is empty.
func TestCastlingBlockedByAttackedPassSquare(t *testing.T) {
	pos, err := ParseFEN("4k2r/8/8/8/8/8/8/4K2R w Kk - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	// h8 rook covers nothing relevant; white may castle.
	if !pos.LegalMoves().Contains(NewCastleKingside(E1, G1)) {
		t.Fatal("expected white kingside castle to be legal")
	}

	pos, err = ParseFEN("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	// f8 rook covers f1, the square the king passes over.
	if pos.LegalMoves().Contains(NewCastleKingside(E1, G1)) {
		t.Error("expected white kingside castle to be denied with f1 attacked")
	}
}

func TestLSBOfEmptyBitboardIsSentinel(t *testing.T) {
	if Empty.LSB() != NoSquare {
		t.Errorf("LSB of empty bitboard = %d, want the NoSquare sentinel", Empty.LSB())
	}
	if Empty.MSB() != NoSquare {
		t.Errorf("MSB of empty bitboard = %d, want the NoSquare sentinel", Empty.MSB())
	}
}

func TestPopLSBIteratesAllSetBits(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(E4) | SquareBB(H8)
	var seen []Square
	for bb != 0 {
		seen = append(seen, bb.PopLSB())
	}
	want := []Square{A1, E4, H8}
	if len(seen) != len(want) {
		t.Fatalf("popped %d squares, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("pop %d = %s, want %s", i, seen[i], want[i])
		}
	}
}
