package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePosition parses Forsyth-Edwards Notation (spec.md §6.1), grounded on
// the teacher's Board.String encoder run in reverse and on
// original_source/src/fen.rs's field layout. Unlike the teacher's panicking
// Rust ancestor, malformed or insane input (wrong field count, a side with
// more than eight pawns, a side without exactly one king, a pawn on the
// first or last rank) is reported as an error rather than accepted.
func ParsePosition(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 && len(fields) != 5 && len(fields) != 4 {
		return Position{}, fmt.Errorf("chess: FEN needs 4, 5, or 6 fields, got %d", len(fields))
	}

	var pos Position
	if err := pos.parseBoard(fields[0]); err != nil {
		return Position{}, err
	}

	stm, err := parseSideToMove(fields[1])
	if err != nil {
		return Position{}, err
	}
	cr, err := parseCastlingRights(fields[2])
	if err != nil {
		return Position{}, err
	}
	epFile, err := parseEnPassantFile(fields[3])
	if err != nil {
		return Position{}, err
	}

	// The last two fields may be absent, defaulting to 0 and 1 (spec.md §6.1).
	halfmove := 0
	if len(fields) >= 5 {
		halfmove, err = strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return Position{}, fmt.Errorf("chess: invalid halfmove clock %q", fields[4])
		}
	}
	fullmove := 1
	if len(fields) >= 6 {
		fullmove, err = strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return Position{}, fmt.Errorf("chess: invalid fullmove number %q", fields[5])
		}
	}
	pos.flags = newFlags(stm, cr, epFile, halfmove, fullmove)

	if err := pos.sanityCheck(); err != nil {
		return Position{}, err
	}
	return pos, nil
}

var fenPieceKinds = map[byte]PieceKind{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

func (pos *Position) parseBoard(board string) error {
	rows := strings.Split(board, "/")
	if len(rows) != 8 {
		return fmt.Errorf("chess: FEN board needs 8 ranks, got %d", len(rows))
	}
	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(row) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			k, ok := fenPieceKinds[toLowerByte(ch)]
			if !ok {
				return fmt.Errorf("chess: invalid FEN piece letter %q", ch)
			}
			if file >= 8 {
				return fmt.Errorf("chess: FEN rank %d overflows the board", rank+1)
			}
			c := Black
			if ch >= 'A' && ch <= 'Z' {
				c = White
			}
			pos.setPiece(NewSquare(file, rank), NewPiece(k, c))
			file++
		}
		if file != 8 {
			return fmt.Errorf("chess: FEN rank %d has %d files, want 8", rank+1, file)
		}
	}
	return nil
}

func toLowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func parseSideToMove(s string) (Color, error) {
	switch s {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	}
	return White, fmt.Errorf("chess: invalid side to move %q", s)
}

func parseCastlingRights(s string) (CastlingRights, error) {
	if s == "-" {
		return NoCastlingRights, nil
	}
	var cr CastlingRights
	for _, ch := range []byte(s) {
		switch ch {
		case 'K':
			cr |= WhiteKingSide
		case 'Q':
			cr |= WhiteQueenSide
		case 'k':
			cr |= BlackKingSide
		case 'q':
			cr |= BlackQueenSide
		default:
			return 0, fmt.Errorf("chess: invalid castling rights %q", s)
		}
	}
	return cr, nil
}

func parseEnPassantFile(s string) (int, error) {
	if s == "-" {
		return -1, nil
	}
	sq, ok := ParseSquare(s)
	if !ok {
		return -1, fmt.Errorf("chess: invalid en-passant square %q", s)
	}
	return sq.File(), nil
}

// sanityCheck rejects positions no legal game could reach, per spec.md §6.1's
// edge cases: too many pawns, a missing or doubled king, or a pawn parked on
// the first or last rank.
func (pos *Position) sanityCheck() error {
	for _, c := range [2]Color{White, Black} {
		if n := pos.pawns[c].Count(); n > 8 {
			return fmt.Errorf("chess: %s has %d pawns, more than 8", c, n)
		}
		if n := pos.kings[c].Count(); n != 1 {
			return fmt.Errorf("chess: %s has %d kings, want exactly 1", c, n)
		}
	}
	if (pos.pawns[White]|pos.pawns[Black])&(rank1|rank8) != 0 {
		return fmt.Errorf("chess: a pawn cannot stand on rank 1 or rank 8")
	}
	return nil
}

// FEN renders the position as FEN.
func (pos Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := pos.Piece(NewSquare(file, rank))
			if p == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(pos.SideToMove().String())
	sb.WriteByte(' ')
	sb.WriteString(pos.CastlingRights().String())
	sb.WriteByte(' ')
	if sq, ok := pos.EnPassantSquare(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock(), pos.FullmoveNumber())
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler, matching the teacher's
// Position, by encoding the position as FEN.
func (pos Position) MarshalText() ([]byte, error) {
	return []byte(pos.FEN()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing FEN.
func (pos *Position) UnmarshalText(text []byte) error {
	p, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*pos = p
	return nil
}
