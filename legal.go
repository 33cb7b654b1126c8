package chess

// LegalMoves returns every legal move for the side to move: pseudo-legal
// moves that do not leave the mover's own king in check afterward (spec.md
// §4.5), found by the apply-then-test discipline the teacher's addTags uses
// (materialize the resulting position, then ask if the mover is in check).
func (pos *Position) LegalMoves() []Move {
	var pseudo MoveList
	pos.GeneratePseudoLegal(&pseudo)

	legal := make([]Move, 0, pseudo.Len)
	for _, m := range pseudo.Slice() {
		if pos.IsLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegal reports whether a pseudo-legal move m leaves the mover's own king
// safe. Castling's own-king-in-check and transit-square checks are already
// enforced during generation (movegen.go's genCastles), so this only needs
// the post-move king safety test common to every move kind.
func (pos *Position) IsLegal(m Move) bool {
	mover := pos.SideToMove()
	next := pos.Apply(m)
	return !next.IsInCheck(mover)
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without materializing the full list — used by checkmate/stalemate
// detection where only existence matters.
func (pos *Position) HasLegalMove() bool {
	var pseudo MoveList
	pos.GeneratePseudoLegal(&pseudo)
	for _, m := range pseudo.Slice() {
		if pos.IsLegal(m) {
			return true
		}
	}
	return false
}

// GameStatus classifies the position as ongoing, checkmate, or stalemate.
type GameStatus int

const (
	InProgress GameStatus = iota
	Checkmate
	Stalemate
)

func (s GameStatus) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in progress"
	}
}

// Status reports the position's game status.
func (pos *Position) Status() GameStatus {
	if pos.HasLegalMove() {
		return InProgress
	}
	if pos.IsInCheck(pos.SideToMove()) {
		return Checkmate
	}
	return Stalemate
}
