package chess

import "testing"

func TestMoveFromToRoundTrip(t *testing.T) {
	m := NewMove(E2, E4, FlagDoublePush)
	if m.From() != E2 {
		t.Fatalf("From() = %s, want e2", m.From())
	}
	if m.To() != E4 {
		t.Fatalf("To() = %s, want e4", m.To())
	}
}

func TestMoveStringPromotionLettersMatchWireFormat(t *testing.T) {
	tests := []struct {
		promo PromoKind
		want  string
	}{
		{PromoKnight, "e7e8k"},
		{PromoBishop, "e7e8b"},
		{PromoRook, "e7e8r"},
		{PromoQueen, "e7e8q"},
	}
	for _, test := range tests {
		m := NewPromotion(E7, E8, test.promo)
		if got := m.String(); got != test.want {
			t.Fatalf("NewPromotion(e7, e8, %v).String() = %q, want %q", test.promo, got, test.want)
		}
	}
}

func TestMoveIsCaptureAndIsPromotion(t *testing.T) {
	m := NewCapturePromotion(B7, A8, PromoQueen)
	if !m.IsCapture() {
		t.Fatal("capture-promotion should report IsCapture")
	}
	if !m.IsPromotion() {
		t.Fatal("capture-promotion should report IsPromotion")
	}
	if m.PromotionKind() != PromoQueen {
		t.Fatalf("PromotionKind() = %v, want PromoQueen", m.PromotionKind())
	}
}

func TestMoveCastleSide(t *testing.T) {
	king := NewMove(E1, G1, FlagCastleKing)
	if side, ok := king.CastleSide(); !ok || side != KingSide {
		t.Fatalf("CastleSide() = %v/%v, want KingSide/true", side, ok)
	}
	quiet := NewMove(E1, E2, FlagQuiet)
	if _, ok := quiet.CastleSide(); ok {
		t.Fatal("a quiet move should not report a castle side")
	}
}
