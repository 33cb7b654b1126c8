package chess

import "testing"

func TestStartingPositionRoster(t *testing.T) {
	pos := StartingPosition()

	if pos.SideToMove() != White {
		t.Fatalf("side to move = %s, want white", pos.SideToMove())
	}
	if pos.CastlingRights() != AllCastlingRights {
		t.Fatalf("castling rights = %s, want all", pos.CastlingRights())
	}
	if _, ok := pos.EnPassantSquare(); ok {
		t.Fatal("starting position should have no en-passant target")
	}
	if got := pos.Occupied().Count(); got != 32 {
		t.Fatalf("occupied squares = %d, want 32", got)
	}
	if got := pos.pawns[White].Count(); got != 8 {
		t.Fatalf("white pawns = %d, want 8", got)
	}
	if got := pos.King(White); got != E1 {
		t.Fatalf("white king = %s, want e1", got)
	}
	if got := pos.King(Black); got != E8 {
		t.Fatalf("black king = %s, want e8", got)
	}
	if got := pos.PieceBitboard(White, Queen).Count(); got != 1 {
		t.Fatalf("white queens = %d, want 1", got)
	}
}

func TestPieceBitboardQueenIsIntersection(t *testing.T) {
	pos := StartingPosition()
	queenSq := D1
	if pos.Piece(queenSq) != WhiteQueen {
		t.Fatalf("d1 = %s, want white queen", pos.Piece(queenSq))
	}
	if !pos.Rooklike(White).Occupied(queenSq) {
		t.Fatal("queen square missing from rooklike board")
	}
	if !pos.Bishoplike(White).Occupied(queenSq) {
		t.Fatal("queen square missing from bishoplike board")
	}
	if pos.PieceBitboard(White, Rook).Occupied(queenSq) {
		t.Fatal("rook-only bitboard should exclude the queen square")
	}
	if pos.PieceBitboard(White, Bishop).Occupied(queenSq) {
		t.Fatal("bishop-only bitboard should exclude the queen square")
	}
}

func TestSetPieceClearPieceRoundTrip(t *testing.T) {
	var pos Position
	pos.setPiece(E4, WhiteKnight)
	if pos.Piece(E4) != WhiteKnight {
		t.Fatalf("e4 = %s, want white knight", pos.Piece(E4))
	}
	if !pos.knights[White].Occupied(E4) {
		t.Fatal("knight bitboard missing e4")
	}
	pos.clearPiece(E4)
	if pos.Piece(E4) != Empty {
		t.Fatalf("e4 = %s after clear, want empty", pos.Piece(E4))
	}
	if pos.knights[White] != 0 {
		t.Fatal("knight bitboard not cleared")
	}
}

func TestEqualIgnoresClocks(t *testing.T) {
	a, err := ParsePosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParsePosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 7 12")
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("positions differing only by move clocks should be Equal")
	}

	c, err := ParsePosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Fatal("positions with different side to move should not be Equal")
	}
}
