package chess

import "testing"

func TestGeneratePseudoLegalStartingPositionCount(t *testing.T) {
	pos := StartingPosition()
	var list MoveList
	pos.GeneratePseudoLegal(&list)
	if list.Len != 20 {
		t.Fatalf("pseudo-legal move count = %d, want 20", list.Len)
	}
}

func TestGenPawnMovesDoublePush(t *testing.T) {
	pos := StartingPosition()
	var list MoveList
	pos.GeneratePseudoLegal(&list)

	var found bool
	for _, m := range list.Slice() {
		if m.From() == E2 && m.To() == E4 {
			found = true
			if !m.IsDoublePush() {
				t.Fatal("e2e4 should be flagged as a double push")
			}
		}
	}
	if !found {
		t.Fatal("expected e2e4 among pseudo-legal moves")
	}
}

func TestGenPawnMovesEnPassant(t *testing.T) {
	pos, err := ParsePosition("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	var list MoveList
	pos.GeneratePseudoLegal(&list)

	var found Move
	for _, m := range list.Slice() {
		if m.From() == E5 && m.To() == D6 {
			found = m
		}
	}
	if found == 0 {
		t.Fatal("expected an en-passant capture e5xd6")
	}
	if !found.IsEnPassant() || !found.IsCapture() {
		t.Fatal("e5xd6 should be flagged as both a capture and en passant")
	}
}

func TestGenPawnMovesPromotion(t *testing.T) {
	pos, err := ParsePosition("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var list MoveList
	pos.GeneratePseudoLegal(&list)

	promos := 0
	for _, m := range list.Slice() {
		if m.From() == A7 && m.To() == A8 {
			promos++
			if !m.IsPromotion() {
				t.Fatal("a7a8 should be a promotion")
			}
		}
	}
	if promos != 4 {
		t.Fatalf("a7a8 promotion count = %d, want 4", promos)
	}
}

func TestGenCastlesRequiresClearAndSafeSquares(t *testing.T) {
	pos, err := ParsePosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var list MoveList
	pos.GeneratePseudoLegal(&list)

	kingside, queenside := false, false
	for _, m := range list.Slice() {
		if side, ok := m.CastleSide(); ok {
			if side == KingSide {
				kingside = true
			} else {
				queenside = true
			}
		}
	}
	if !kingside || !queenside {
		t.Fatal("expected both castling moves to be available")
	}
}

func TestGenCastlesBlockedByAttackedTransitSquare(t *testing.T) {
	pos, err := ParsePosition("4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var list MoveList
	pos.GeneratePseudoLegal(&list)
	for _, m := range list.Slice() {
		if side, ok := m.CastleSide(); ok && side == KingSide {
			t.Fatal("kingside castle should be blocked: f2 rook attacks f1")
		}
	}
}
