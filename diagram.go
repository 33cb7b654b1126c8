package chess

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// Board diagram layout constants.
const (
	squarePixels = 60
	boardPixels  = squarePixels * 8
)

var (
	lightSquareFill = "#f0d9b5"
	darkSquareFill  = "#b58863"
	pieceFill       = map[Color]string{White: "#ffffff", Black: "#202020"}
	pieceStroke     = map[Color]string{White: "#202020", Black: "#ffffff"}
)

// pieceGlyph is the Unicode chess symbol for a piece, used as the SVG text
// glyph the same way a GUI front end would render a FEN-described position.
var pieceGlyph = map[PieceKind]map[Color]string{
	King:   {White: "♔", Black: "♚"},
	Queen:  {White: "♕", Black: "♛"},
	Rook:   {White: "♖", Black: "♜"},
	Bishop: {White: "♗", Black: "♝"},
	Knight: {White: "♘", Black: "♞"},
	Pawn:   {White: "♙", Black: "♟"},
}

// RenderSVG draws pos as an 8x8 SVG board diagram, white at the bottom, the
// graphical counterpart to the protocol's text-only UCI surface (spec.md's
// PURPOSE section names an external GUI as the engine's natural
// collaborator). Grounded on the teacher's declared but unused svgo
// dependency; ajstarks/svgo's Rect/Text primitives are enough for a flat
// board diagram, so nothing here depends on svgo's higher-level shapes.
func (pos *Position) RenderSVG(w io.Writer) error {
	canvas := svg.New(w)
	canvas.Start(boardPixels, boardPixels)
	defer canvas.End()

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			x := file * squarePixels
			y := (7 - rank) * squarePixels

			fill := lightSquareFill
			if (file+rank)%2 == 0 {
				fill = darkSquareFill
			}
			canvas.Rect(x, y, squarePixels, squarePixels, "fill:"+fill)

			p := pos.Piece(sq)
			if p == Empty {
				continue
			}
			glyph, ok := pieceGlyph[p.Kind()][p.Color()]
			if !ok {
				continue
			}
			style := "font-size:40px;text-anchor:middle;dominant-baseline:central;fill:" +
				pieceFill[p.Color()] + ";stroke:" + pieceStroke[p.Color()] + ";stroke-width:0.5"
			canvas.Text(x+squarePixels/2, y+squarePixels/2, glyph, style)
		}
	}
	return nil
}
