package chess

import "testing"

func TestBestMoveFindsMateInOne(t *testing.T) {
	// White to move, mate in one with Qh5-f7#... use a simpler, well-known
	// back-rank mate in one instead.
	pos, err := ParsePosition("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, _, ok := pos.BestMove(2)
	if !ok {
		t.Fatal("expected a best move")
	}
	next := pos.Apply(m)
	if next.Status() != Checkmate {
		t.Fatalf("expected BestMove to deliver mate, got move %s leading to status %s", m, next.Status())
	}
}

func TestBestMoveNoLegalMoveOnCheckmate(t *testing.T) {
	pos, err := ParsePosition("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}
	_, _, ok := pos.BestMove(2)
	if ok {
		t.Fatal("checkmated side should have no best move")
	}
}

func TestBestMovePrefersCaptureOfHangingQueen(t *testing.T) {
	pos, err := ParsePosition("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, _, ok := pos.BestMove(2)
	if !ok {
		t.Fatal("expected a best move")
	}
	if m.From() != D1 || m.To() != D5 {
		t.Fatalf("best move = %s, want Rxd5 (d1d5) capturing the hanging queen", m)
	}
}
