//go:build chesscore_debug

package board

// This file is only compiled with -tags chesscore_debug. It covers the
// invariants that are programmer errors, not user input errors: disjoint
// kind bitboards, occupancy consistency, and castle_rooks being a subset
// of rooks. Production builds never pay for these checks.

// AssertInvariants panics with position context if any structural
// invariant is violated. Call sites are expected only in tests and at
// the top of Apply/Unapply when built with this tag.
func (p *Position) AssertInvariants() {
	if err := p.CheckInvariants(); err != nil {
		panic("board: invariant violated: " + err.Error() + p.String())
	}
}
