package common

import "testing"

func TestMoveAccessors(t *testing.T) {
	var quiet = makeMove(SquareE2, SquareE3, flagQuiet)
	if quiet.From() != SquareE2 || quiet.To() != SquareE3 {
		t.Error("from/to", quiet.From(), quiet.To())
	}
	if quiet.IsCapture() || quiet.IsPromotion() || quiet.IsEnPassant() || quiet.IsCastle() {
		t.Error("quiet move carries flags")
	}
	if quiet.Promotion() != Empty {
		t.Error("quiet move promotes")
	}

	var capture = makeMove(SquareE4, SquareD5, flagCapture)
	if !capture.IsCapture() || capture.IsPromotion() {
		t.Error("capture flags")
	}

	var ep = makeMove(SquareE5, SquareD6, flagEnPassant)
	if !ep.IsEnPassant() || !ep.IsCapture() {
		t.Error("en passant is a capture")
	}

	var castle = makeMove(SquareE1, SquareG1, flagKingCastle)
	if !castle.IsCastle() || castle.IsCapture() {
		t.Error("castle flags")
	}

	var promo = makePromotion(SquareB7, SquareB8, flagPromotion, Queen)
	if !promo.IsPromotion() || promo.Promotion() != Queen || promo.IsCapture() {
		t.Error("promotion flags")
	}
	var capPromo = makePromotion(SquareB7, SquareA8, flagCapturePromotion, Knight)
	if !capPromo.IsPromotion() || capPromo.Promotion() != Knight || !capPromo.IsCapture() {
		t.Error("capture promotion flags")
	}
}

func TestMoveString(t *testing.T) {
	if MoveEmpty.String() != "0000" {
		t.Error("empty move string", MoveEmpty.String())
	}
	if got := makeMove(SquareE2, SquareE4, flagDoublePush).String(); got != "e2e4" {
		t.Error(got)
	}
	if got := makePromotion(SquareE7, SquareE8, flagPromotion, Queen).String(); got != "e7e8q" {
		t.Error(got)
	}
	if got := makeMove(SquareE1, SquareG1, flagKingCastle).String(); got != "e1g1" {
		t.Error(got)
	}
}

func TestMakeMoveLAN(t *testing.T) {
	var p, _ = NewPositionFromFEN(InitialPositionFen)
	if !p.MakeMoveLAN("e2e4") {
		t.Fatal("e2e4 rejected")
	}
	if p.MakeMoveLAN("e7e5x") {
		t.Error("garbage accepted")
	}
	if p.MakeMoveLAN("e2e4") {
		t.Error("white move accepted for black")
	}
	if !p.MakeMoveLAN("E7E5") {
		t.Error("case-insensitive parse failed")
	}
}
