package chess

import (
	"strings"
	"testing"
)

func TestRenderSVGProducesWellFormedDocument(t *testing.T) {
	pos := StartingPosition()
	var sb strings.Builder
	if err := pos.RenderSVG(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "<svg") {
		t.Fatal("output should contain an <svg> root element")
	}
	if !strings.Contains(out, "</svg>") {
		t.Fatal("output should be closed with </svg>")
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Fatalf("rect count = %d, want 64 squares", got)
	}
}

func TestRenderSVGDrawsPieceGlyphs(t *testing.T) {
	pos := StartingPosition()
	var sb strings.Builder
	if err := pos.RenderSVG(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "♔") {
		t.Fatal("expected the white king glyph to appear in the output")
	}
	if !strings.Contains(out, "♟") {
		t.Fatal("expected the black pawn glyph to appear in the output")
	}
}

func TestRenderSVGSkipsEmptySquares(t *testing.T) {
	pos, err := ParsePosition("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := pos.RenderSVG(&sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if strings.Count(out, "<text") != 2 {
		t.Fatalf("text glyph count = %d, want 2 (just the two kings)", strings.Count(out, "<text"))
	}
}
