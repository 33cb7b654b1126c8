package chess

import "fmt"

// Position is the complete state of a game at one point in time (spec.md
// §3.2-§3.4): bitboards per color for pawns, knights, king, and the shared
// rooklike/bishoplike ray families (a queen is simply a square present in
// both a color's rooklike and bishoplike boards), a mailbox roster for O(1)
// "what's on this square" lookups, and a packed flags word. Position is a
// plain value: copying it with ordinary assignment is the whole of Clone,
// since every field is an array, never a slice or pointer.
type Position struct {
	pawns      [2]bitboard
	knights    [2]bitboard
	kings      [2]bitboard
	rooklike   [2]bitboard
	bishoplike [2]bitboard

	mailbox [numSquares]Piece

	flags flags
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() Position {
	var pos Position
	pos.flags = defaultFlags()

	backRank := [8]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		pos.setPiece(NewSquare(file, 0), NewPiece(backRank[file], White))
		pos.setPiece(NewSquare(file, 1), NewPiece(Pawn, White))
		pos.setPiece(NewSquare(file, 6), NewPiece(Pawn, Black))
		pos.setPiece(NewSquare(file, 7), NewPiece(backRank[file], Black))
	}
	return pos
}

// Piece returns the piece occupying sq, or Empty.
func (pos *Position) Piece(sq Square) Piece {
	if !pos.Occupied().Occupied(sq) {
		return Empty
	}
	return pos.mailbox[sq]
}

// setPiece places p on sq, updating both the mailbox and the relevant
// bitboards. sq must be vacant; callers that overwrite an occupied square
// must clearPiece first.
func (pos *Position) setPiece(sq Square, p Piece) {
	pos.mailbox[sq] = p
	bb := sq.Bitboard()
	c := p.Color()
	switch p.Kind() {
	case Pawn:
		pos.pawns[c] |= bb
	case Knight:
		pos.knights[c] |= bb
	case Bishop:
		pos.bishoplike[c] |= bb
	case Rook:
		pos.rooklike[c] |= bb
	case Queen:
		pos.rooklike[c] |= bb
		pos.bishoplike[c] |= bb
	case King:
		pos.kings[c] |= bb
	}
}

// clearPiece vacates sq, which must currently be occupied.
func (pos *Position) clearPiece(sq Square) {
	p := pos.mailbox[sq]
	if p == Empty {
		return
	}
	bb := ^sq.Bitboard()
	c := p.Color()
	switch p.Kind() {
	case Pawn:
		pos.pawns[c] &= bb
	case Knight:
		pos.knights[c] &= bb
	case Bishop:
		pos.bishoplike[c] &= bb
	case Rook:
		pos.rooklike[c] &= bb
	case Queen:
		pos.rooklike[c] &= bb
		pos.bishoplike[c] &= bb
	case King:
		pos.kings[c] &= bb
	}
	pos.mailbox[sq] = Empty
}

// PieceBitboard returns the bitboard of squares holding a piece of kind k
// and color c. Queens are the intersection of the rooklike and bishoplike
// boards, per spec.md §3.2.
func (pos *Position) PieceBitboard(c Color, k PieceKind) bitboard {
	switch k {
	case Pawn:
		return pos.pawns[c]
	case Knight:
		return pos.knights[c]
	case Bishop:
		return pos.bishoplike[c] &^ pos.rooklike[c]
	case Rook:
		return pos.rooklike[c] &^ pos.bishoplike[c]
	case Queen:
		return pos.rooklike[c] & pos.bishoplike[c]
	case King:
		return pos.kings[c]
	}
	return 0
}

// Rooklike returns every square a color's rooks and queens occupy.
func (pos *Position) Rooklike(c Color) bitboard { return pos.rooklike[c] }

// Bishoplike returns every square a color's bishops and queens occupy.
func (pos *Position) Bishoplike(c Color) bitboard { return pos.bishoplike[c] }

// OccupiedBy returns every square holding a piece of color c.
func (pos *Position) OccupiedBy(c Color) bitboard {
	return pos.pawns[c] | pos.knights[c] | pos.kings[c] | pos.rooklike[c] | pos.bishoplike[c]
}

// Occupied returns every occupied square on the board.
func (pos *Position) Occupied() bitboard {
	return pos.OccupiedBy(White) | pos.OccupiedBy(Black)
}

// King returns the square of a color's king, or NoSquare if it has none
// (only reachable via a malformed FEN the caller chose not to reject).
func (pos *Position) King(c Color) Square {
	return pos.kings[c].LSB()
}

// SideToMove returns the color to move.
func (pos *Position) SideToMove() Color { return pos.flags.SideToMove() }

// CastlingRights returns the position's castling rights.
func (pos *Position) CastlingRights() CastlingRights { return pos.flags.CastlingRights() }

// EnPassantSquare returns the en-passant target square and whether one is
// set. The target is the square a capturing pawn would move to, not the
// square of the pawn that just moved.
func (pos *Position) EnPassantSquare() (Square, bool) {
	file, ok := pos.flags.EnPassantFile()
	if !ok {
		return NoSquare, false
	}
	rank := 2 // rank 3, the target behind a white double push
	if pos.SideToMove() == White {
		rank = 5 // rank 6, the target behind a black double push
	}
	return NewSquare(file, rank), true
}

// HalfmoveClock returns the number of halfmoves since the last capture or
// pawn advance, per the fifty-move rule.
func (pos *Position) HalfmoveClock() int { return pos.flags.HalfmoveClock() }

// FullmoveNumber returns the current fullmove counter, starting at 1 and
// incrementing after Black's move.
func (pos *Position) FullmoveNumber() int { return pos.flags.FullmoveNumber() }

// Equal reports whether two positions have identical board state, side to
// move, castling rights, and en-passant target. Halfmove clock and fullmove
// number are excluded, matching FEN-level position identity.
func (pos Position) Equal(other Position) bool {
	if pos.pawns != other.pawns || pos.knights != other.knights || pos.kings != other.kings ||
		pos.rooklike != other.rooklike || pos.bishoplike != other.bishoplike {
		return false
	}
	if pos.SideToMove() != other.SideToMove() || pos.CastlingRights() != other.CastlingRights() {
		return false
	}
	aFile, aOK := pos.flags.EnPassantFile()
	bFile, bOK := other.flags.EnPassantFile()
	return aOK == bOK && (!aOK || aFile == bFile)
}

func (pos Position) String() string {
	return fmt.Sprintf("Position{%s to move, %d pieces}", pos.SideToMove(), pos.Occupied().Count())
}
