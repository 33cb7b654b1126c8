package chess

// MoveList is a fixed-capacity move buffer, grounded on treepeck-chego's
// types.MoveList: preallocating the maximum possible move count avoids any
// heap allocation on the hottest path the perft invariants exercise.
//
// 218 is the highest move count known for any legal chess position.
type MoveList struct {
	Moves [218]Move
	Len   int
}

func (l *MoveList) push(m Move) {
	l.Moves[l.Len] = m
	l.Len++
}

// Slice returns the generated moves as a slice sharing the list's backing
// array; callers that retain moves past the list's next reuse should copy.
func (l *MoveList) Slice() []Move {
	return l.Moves[:l.Len]
}

var promotionKinds = [4]PromoKind{PromoQueen, PromoRook, PromoBishop, PromoKnight}

// GeneratePseudoLegal appends every pseudo-legal move for the side to move
// to list: moves that obey each piece's movement rules but may leave the
// mover's own king in check (spec.md §4.3). Legal filters that check, and
// apply-then-test, live in legal.go.
func (pos *Position) GeneratePseudoLegal(list *MoveList) {
	us := pos.SideToMove()
	own := pos.OccupiedBy(us)
	occ := pos.Occupied()

	pos.genPawnMoves(list, us, occ)
	pos.genPieceMoves(list, us, Knight, own, occ)
	pos.genPieceMoves(list, us, Bishop, own, occ)
	pos.genPieceMoves(list, us, Rook, own, occ)
	pos.genPieceMoves(list, us, Queen, own, occ)
	pos.genPieceMoves(list, us, King, own, occ)
	pos.genCastles(list, us, occ)
}

// genPieceMoves generates moves for every non-pawn, non-castling piece of
// kind k: quiet moves onto empty squares and captures onto enemy ones.
func (pos *Position) genPieceMoves(list *MoveList, us Color, k PieceKind, own, occ bitboard) {
	them := us.Other()
	enemy := pos.OccupiedBy(them)
	for bb := pos.PieceBitboard(us, k); bb != 0; {
		var from Square
		from, bb = bb.PopLSB()
		targets := attacksFrom(occ, k, us, from) &^ own
		for t := targets; t != 0; {
			var to Square
			to, t = t.PopLSB()
			if enemy.Occupied(to) {
				list.push(NewCapture(from, to, specialNone))
			} else {
				list.push(NewMove(from, to, FlagQuiet))
			}
		}
	}
}

// genPawnMoves generates single/double pushes, diagonal captures
// (including en passant), and all four promotion kinds on the eighth rank.
func (pos *Position) genPawnMoves(list *MoveList, us Color, occ bitboard) {
	them := us.Other()
	enemy := pos.OccupiedBy(them)
	empty := ^occ

	var epTarget bitboard
	if sq, ok := pos.EnPassantSquare(); ok {
		epTarget = sq.Bitboard()
	}

	promoRank := rank8
	startRank := rank2
	forward := 8
	if us == Black {
		promoRank = rank1
		startRank = rank7
		forward = -8
	}

	for bb := pos.pawns[us]; bb != 0; {
		var from Square
		from, bb = bb.PopLSB()
		fromBB := from.Bitboard()

		to := Square(int(from) + forward)
		if to < numSquares && empty.Occupied(to) {
			pos.pushPawnMove(list, from, to, promoRank)
			if fromBB&startRank != 0 {
				to2 := Square(int(to) + forward)
				if empty.Occupied(to2) {
					list.push(NewMove(from, to2, FlagDoublePush))
				}
			}
		}

		for capBB := pawnAttackTargets[us][from]; capBB != 0; {
			var capSq Square
			capSq, capBB = capBB.PopLSB()
			switch {
			case enemy.Occupied(capSq):
				pos.pushPawnCapture(list, from, capSq, promoRank)
			case epTarget.Occupied(capSq):
				list.push(NewCapture(from, capSq, specialEnPassant))
			}
		}
	}
}

func (pos *Position) pushPawnMove(list *MoveList, from, to Square, promoRank bitboard) {
	if to.Bitboard()&promoRank != 0 {
		for _, pk := range promotionKinds {
			list.push(NewPromotion(from, to, pk))
		}
		return
	}
	list.push(NewMove(from, to, FlagQuiet))
}

func (pos *Position) pushPawnCapture(list *MoveList, from, to Square, promoRank bitboard) {
	if to.Bitboard()&promoRank != 0 {
		for _, pk := range promotionKinds {
			list.push(NewCapturePromotion(from, to, pk))
		}
		return
	}
	list.push(NewCapture(from, to, specialNone))
}

// castleClearance names, for one castling side, the squares that must be
// empty and the squares (the king's origin included) that must not be
// attacked for the castle to be legal.
type castleClearance struct {
	right       CastlingRights
	kingFrom    Square
	kingTo      Square
	emptySquares bitboard
	safeSquares []Square
}

var castleTable = [2][2]castleClearance{
	White: {
		KingSide - 1: {WhiteKingSide, E1, G1, F1.Bitboard() | G1.Bitboard(), []Square{E1, F1, G1}},
		QueenSide - 1: {WhiteQueenSide, E1, C1, B1.Bitboard() | C1.Bitboard() | D1.Bitboard(), []Square{E1, D1, C1}},
	},
	Black: {
		KingSide - 1: {BlackKingSide, E8, G8, F8.Bitboard() | G8.Bitboard(), []Square{E8, F8, G8}},
		QueenSide - 1: {BlackQueenSide, E8, C8, B8.Bitboard() | C8.Bitboard() | D8.Bitboard(), []Square{E8, D8, C8}},
	},
}

func (pos *Position) genCastles(list *MoveList, us Color, occ bitboard) {
	rights := pos.CastlingRights()
	for _, cc := range castleTable[us] {
		if !rights.Has(cc.right) {
			continue
		}
		if occ&cc.emptySquares != 0 {
			continue
		}
		attacked := false
		for _, sq := range cc.safeSquares {
			if pos.IsAttacked(sq, us.Other()) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		flag := FlagCastleKing
		if cc.kingTo.File() == 2 {
			flag = FlagCastleQueen
		}
		list.push(NewMove(cc.kingFrom, cc.kingTo, flag))
	}
}
