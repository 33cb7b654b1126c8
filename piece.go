package chess

// NOTE: Color, PieceKind, and Piece constant values are chosen deliberately
// to allow bit operations between them — a Piece packs Color into its upper
// nibble and PieceKind into its lower nibble, the same trick the teacher
// library uses for its own Piece type.

// Color is the side a piece or a position's mover belongs to.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the FEN-compatible notation for the color: "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceKind is a piece's class, independent of color.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceKind PieceKind = 15
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	}
	return ""
}

// allPieceKinds enumerates the six piece classes.
var allPieceKinds = [6]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// Piece is a roster entry: a PieceKind paired with a Color, or Empty for a
// vacant roster slot. It is spec.md §3.3's "one of 13 kinds" value.
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | blackPieceBit
	BlackKnight Piece = Piece(Knight) | blackPieceBit
	BlackBishop Piece = Piece(Bishop) | blackPieceBit
	BlackRook   Piece = Piece(Rook) | blackPieceBit
	BlackQueen  Piece = Piece(Queen) | blackPieceBit
	BlackKing   Piece = Piece(King) | blackPieceBit

	// Empty marks a vacant roster slot.
	Empty Piece = 0xFF

	blackPieceBit Piece = 1 << 4
)

// NewPiece packs a kind and color into a roster Piece value.
func NewPiece(k PieceKind, c Color) Piece {
	if c == Black {
		return Piece(k) | blackPieceBit
	}
	return Piece(k)
}

// Kind returns the piece's class, or NoPieceKind if the receiver is Empty.
func (p Piece) Kind() PieceKind {
	if p == Empty {
		return NoPieceKind
	}
	return PieceKind(p & 0xF)
}

// Color returns the piece's color. The result is meaningless for Empty.
func (p Piece) Color() Color {
	if p&blackPieceBit != 0 {
		return Black
	}
	return White
}

// String renders the piece as its FEN letter: uppercase for white, lowercase
// for black, empty string for Empty.
func (p Piece) String() string {
	if p == Empty {
		return ""
	}
	s := p.Kind().String()
	if p.Color() == White {
		return upper(s)
	}
	return s
}

func upper(s string) string {
	b := []byte(s)
	if len(b) == 1 && b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// PromoKind is the 2-bit promotion-piece field of an encoded Move (spec.md
// §3.5): 0=knight, 1=bishop, 2=rook, 3=queen.
type PromoKind uint8

const (
	PromoKnight PromoKind = iota
	PromoBishop
	PromoRook
	PromoQueen
)

// Kind returns the concrete piece kind a PromoKind denotes.
func (p PromoKind) Kind() PieceKind {
	switch p {
	case PromoKnight:
		return Knight
	case PromoBishop:
		return Bishop
	case PromoRook:
		return Rook
	case PromoQueen:
		return Queen
	}
	return NoPieceKind
}

// String renders the promotion letter used on the wire (spec.md §6.2: "k",
// "b", "r", or "q"). Knight promotes to "k", not PieceKind's "n", since the
// promotion-letter alphabet is spelled out separately from piece-letter FEN
// notation.
func (p PromoKind) String() string {
	if p == PromoKnight {
		return "k"
	}
	return p.Kind().String()
}

// promoKindFromChar maps a lower-cased SAN promotion letter (n, b, r, q) to
// a PromoKind. The wire-format knight letter "k" is not accepted.
func promoKindFromChar(c byte) (PromoKind, bool) {
	switch c {
	case 'n':
		return PromoKnight, true
	case 'b':
		return PromoBishop, true
	case 'r':
		return PromoRook, true
	case 'q':
		return PromoQueen, true
	}
	return 0, false
}
