package chess

import "testing"

func TestEncodeSANQuietAndCapture(t *testing.T) {
	pos := StartingPosition()
	if got := pos.EncodeSAN(NewMove(G1, F3, FlagQuiet)); got != "Nf3" {
		t.Fatalf("EncodeSAN(Ng1f3) = %q, want Nf3", got)
	}

	pos2, err := ParsePosition("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := pos2.EncodeSAN(NewCapture(E4, D5, specialNone)); got != "exd5" {
		t.Fatalf("EncodeSAN(pawn capture) = %q, want exd5", got)
	}
}

func TestEncodeSANCastle(t *testing.T) {
	pos, err := ParsePosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := pos.EncodeSAN(NewMove(E1, G1, FlagCastleKing)); got != "O-O" {
		t.Fatalf("EncodeSAN(kingside castle) = %q, want O-O", got)
	}
	if got := pos.EncodeSAN(NewMove(E1, C1, FlagCastleQueen)); got != "O-O-O" {
		t.Fatalf("EncodeSAN(queenside castle) = %q, want O-O-O", got)
	}
}

func TestEncodeSANCheckAndMateSuffix(t *testing.T) {
	pos, err := ParsePosition("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	got := pos.EncodeSAN(NewMove(A1, A8, FlagQuiet))
	if got != "Ra8#" {
		t.Fatalf("EncodeSAN(back rank mate) = %q, want Ra8#", got)
	}
}

func TestEncodeSANDisambiguatesByFile(t *testing.T) {
	pos, err := ParsePosition("4k3/8/8/8/8/8/4K3/R6R w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	got := pos.EncodeSAN(NewMove(A1, D1, FlagQuiet))
	if got != "Rad1" {
		t.Fatalf("EncodeSAN(ambiguous rook move) = %q, want Rad1", got)
	}
}

func TestDecodeSANRoundTrip(t *testing.T) {
	pos := StartingPosition()
	m := NewMove(G1, F3, FlagQuiet)
	san := pos.EncodeSAN(m)
	decoded, ok := pos.DecodeSAN(san)
	if !ok {
		t.Fatalf("DecodeSAN(%q) failed", san)
	}
	if decoded != m {
		t.Fatalf("DecodeSAN(%q) = %s, want %s", san, decoded, m)
	}
}

func TestDecodeSANCastle(t *testing.T) {
	pos, err := ParsePosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := pos.DecodeSAN("O-O")
	if !ok {
		t.Fatal("DecodeSAN(O-O) failed")
	}
	if side, isCastle := m.CastleSide(); !isCastle || side != KingSide {
		t.Fatalf("DecodeSAN(O-O) did not produce a kingside castle: %s", m)
	}
}

func TestDecodeSANUnknownMoveFails(t *testing.T) {
	pos := StartingPosition()
	if _, ok := pos.DecodeSAN("Qh5"); ok {
		t.Fatal("DecodeSAN should reject an illegal move")
	}
}
