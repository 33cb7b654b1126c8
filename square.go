package chess

import "fmt"

// Square is a board square index in little-endian rank-file order: index =
// rank*8+file, file A = 0 and rank 1 = 0.
type Square uint8

// NoSquare is the sentinel used for "no square" (e.g. a vacant roster slot
// or the absence of an en-passant target).
const NoSquare Square = 64

const numSquares = 64

// NewSquare builds a square from a zero-based file (0=A..7=H) and rank
// (0=rank1..7=rank8).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// File returns the square's file, 0 (A) through 7 (H).
func (s Square) File() int {
	return int(s) & 0x7
}

// Rank returns the square's rank, 0 (rank 1) through 7 (rank 8).
func (s Square) Rank() int {
	return int(s) >> 3
}

// Bitboard returns the singleton bitboard for the square.
func (s Square) Bitboard() bitboard {
	return bitboard(1) << uint(s)
}

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s >= numSquares {
		return "-"
	}
	return squareNames[s]
}

var squareNames [numSquares]string

func init() {
	const files = "abcdefgh"
	for sq := 0; sq < numSquares; sq++ {
		file := files[Square(sq).File()]
		rank := '1' + rune(Square(sq).Rank())
		squareNames[sq] = fmt.Sprintf("%c%c", file, rank)
	}
}

var squareByName map[string]Square

func init() {
	squareByName = make(map[string]Square, numSquares)
	for sq := 0; sq < numSquares; sq++ {
		squareByName[squareNames[sq]] = Square(sq)
	}
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, bool) {
	sq, ok := squareByName[s]
	return sq, ok
}

// Named squares used by castling and FEN sanity checks.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)
