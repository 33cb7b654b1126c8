package chess

import (
	"regexp"
	"strings"
)

// EncodeSAN renders m in standard algebraic notation relative to pos (the
// position before m is played), disambiguating among the position's other
// legal moves the way the teacher's EncodeSAN/formS1 does, and appending a
// trailing "+"/"#" for check/checkmate.
func (pos *Position) EncodeSAN(m Move) string {
	if side, ok := m.CastleSide(); ok {
		s := "O-O"
		if side == QueenSide {
			s = "O-O-O"
		}
		return s + pos.checkSuffix(m)
	}

	p := pos.Piece(m.From())
	var sb strings.Builder
	sb.WriteString(pieceLetter(p.Kind()))
	sb.WriteString(pos.disambiguation(m))
	if m.IsCapture() {
		if p.Kind() == Pawn {
			sb.WriteString(m.From().String()[:1])
		}
		sb.WriteString("x")
	}
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteString("=")
		sb.WriteString(pieceLetter(m.PromotionKind().Kind()))
	}
	sb.WriteString(pos.checkSuffix(m))
	return sb.String()
}

func (pos *Position) checkSuffix(m Move) string {
	next := pos.Apply(m)
	if !next.IsInCheck(next.SideToMove()) {
		return ""
	}
	if next.Status() == Checkmate {
		return "#"
	}
	return "+"
}

// disambiguation returns the minimal file/rank/square prefix needed to tell
// m apart from the position's other legal moves by a same-kind piece
// landing on the same square, per standard SAN rules.
func (pos *Position) disambiguation(m Move) string {
	p := pos.Piece(m.From())
	if p.Kind() == Pawn || p.Kind() == King {
		return ""
	}

	var sameFile, sameRank, ambiguous bool
	for _, other := range pos.LegalMoves() {
		if other.From() == m.From() || other.To() != m.To() {
			continue
		}
		if pos.Piece(other.From()).Kind() != p.Kind() {
			continue
		}
		ambiguous = true
		if other.From().File() == m.From().File() {
			sameFile = true
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	if !ambiguous {
		return ""
	}

	s := ""
	if !sameFile {
		s = m.From().String()[:1]
	} else if !sameRank {
		s = m.From().String()[1:]
	} else {
		s = m.From().String()
	}
	return s
}

func pieceLetter(k PieceKind) string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

var sanPattern = regexp.MustCompile(`^(?:([RNBQKP]?)([a-h]?)([1-8]?)(x?)([a-h][1-8])(=[QRBN])?|(O-O(?:-O)?))[+#!?]*$`)

// DecodeSAN finds the legal move in pos matching SAN text s, per spec.md
// §6.2's supplemented notation surface. It is grounded on the teacher's
// DecodeSAN: parse the move's shape, then pick the unique legal move whose
// own SAN encoding matches once check/mate suffixes are ignored.
func (pos *Position) DecodeSAN(s string) (Move, bool) {
	trimmed := strings.TrimRight(s, "+#!?")
	for _, m := range pos.LegalMoves() {
		if strings.TrimRight(pos.EncodeSAN(m), "+#") == trimmed {
			return m, true
		}
	}

	match := sanPattern.FindStringSubmatch(s)
	if match == nil {
		return Move(0), false
	}
	if match[7] != "" {
		return pos.decodeCastle(match[7])
	}

	pieceCh, originFile, originRank, dest, promo := match[1], match[2], match[3], match[5], match[6]
	toSq, ok := ParseSquare(dest)
	if !ok {
		return Move(0), false
	}
	wantKind := Pawn
	if pieceCh != "" {
		wantKind = kindFromSANLetter(pieceCh)
	}
	var wantPromo PromoKind
	wantPromotion := promo != ""
	if wantPromotion {
		wantPromo, _ = promoKindFromChar(strings.ToLower(promo[1:2])[0])
	}

	var found Move
	matches := 0
	for _, m := range pos.LegalMoves() {
		if m.To() != toSq {
			continue
		}
		if pos.Piece(m.From()).Kind() != wantKind {
			continue
		}
		if originFile != "" && m.From().String()[:1] != originFile {
			continue
		}
		if originRank != "" && m.From().String()[1:] != originRank {
			continue
		}
		if wantPromotion && (!m.IsPromotion() || m.PromotionKind() != wantPromo) {
			continue
		}
		if !wantPromotion && m.IsPromotion() {
			continue
		}
		found = m
		matches++
	}
	if matches != 1 {
		return Move(0), false
	}
	return found, true
}

func (pos *Position) decodeCastle(castle string) (Move, bool) {
	side := KingSide
	if castle == "O-O-O" {
		side = QueenSide
	}
	for _, m := range pos.LegalMoves() {
		if s, ok := m.CastleSide(); ok && s == side {
			return m, true
		}
	}
	return Move(0), false
}

func kindFromSANLetter(s string) PieceKind {
	switch s {
	case "K":
		return King
	case "Q":
		return Queen
	case "R":
		return Rook
	case "B":
		return Bishop
	case "N":
		return Knight
	}
	return Pawn
}
