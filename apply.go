package chess

// Apply returns the position resulting from playing m, which must be
// pseudo-legal in pos. Apply is pure copy-then-mutate (spec.md §4.4): pos is
// never modified, grounded on the teacher's Board.update but operating on
// the value-typed Position instead of update-in-place on a pointer.
func (pos Position) Apply(m Move) Position {
	next := pos
	us := pos.SideToMove()
	them := us.Other()
	from, to := m.From(), m.To()

	moved := next.Piece(from)
	next.clearPiece(from)

	switch {
	case m.IsEnPassant():
		capturedSq := Square(int(to) - pawnForward(us))
		next.clearPiece(capturedSq)
	case next.Piece(to) != Empty:
		next.clearPiece(to)
	}

	if m.IsPromotion() {
		next.setPiece(to, NewPiece(m.PromotionKind().Kind(), us))
	} else {
		next.setPiece(to, moved)
	}

	if side, ok := m.CastleSide(); ok {
		rookFrom, rookTo := castleRookSquares(us, side)
		rook := next.Piece(rookFrom)
		next.clearPiece(rookFrom)
		next.setPiece(rookTo, rook)
	}

	next.flags = next.flags.withCastlingRights(updatedCastlingRights(pos.CastlingRights(), from, to))

	if m.IsDoublePush() {
		next.flags = next.flags.withEnPassantFile(from.File())
	} else {
		next.flags = next.flags.withEnPassantFile(-1)
	}

	halfmove := pos.HalfmoveClock() + 1
	if moved.Kind() == Pawn || m.IsCapture() {
		halfmove = 0
	}
	next.flags = next.flags.withHalfmoveClock(halfmove)

	fullmove := pos.FullmoveNumber()
	if us == Black {
		fullmove++
	}
	next.flags = next.flags.withFullmoveNumber(fullmove)

	next.flags = next.flags.withSideToMove(them)
	return next
}

// pawnForward is the mailbox index delta a color's pawns move forward by.
func pawnForward(c Color) int {
	if c == White {
		return 8
	}
	return -8
}

// castleRookSquares returns a castle's rook origin and destination.
func castleRookSquares(c Color, side Side) (from, to Square) {
	switch {
	case c == White && side == KingSide:
		return H1, F1
	case c == White && side == QueenSide:
		return A1, D1
	case c == Black && side == KingSide:
		return H8, F8
	default:
		return A8, D8
	}
}

// updatedCastlingRights clears the rights lost when a king or rook moves to
// or from its home square, per spec.md §4.4.
func updatedCastlingRights(cr CastlingRights, from, to Square) CastlingRights {
	clear := func(sq Square, right CastlingRights) {
		if from == sq || to == sq {
			cr &^= right
		}
	}
	clear(E1, WhiteKingSide|WhiteQueenSide)
	clear(H1, WhiteKingSide)
	clear(A1, WhiteQueenSide)
	clear(E8, BlackKingSide|BlackQueenSide)
	clear(H8, BlackKingSide)
	clear(A8, BlackQueenSide)
	return cr
}
