package common

import (
	"strings"
	"testing"
)

func legalMoveStrings(p *Position) map[string]bool {
	var result = make(map[string]bool)
	for _, mv := range p.GenerateLegalMoves() {
		result[mv.String()] = true
	}
	return result
}

func TestCastlingThroughCheck(t *testing.T) {
	var tests = []struct {
		fen     string
		move    string
		allowed bool
	}{
		// free board: both castles available
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", true},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", true},
		// castling out of check
		{"r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", "e1g1", false},
		// castling through an attacked square
		{"r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", "e1g1", false},
		// castling into check
		{"r3k2r/8/8/8/8/8/6r1/R3K2R w KQkq - 0 1", "e1g1", false},
		// queenside: b1 may be attacked, the king never crosses it
		{"r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1", "e1c1", true},
		{"r3k2r/8/8/8/8/8/3r4/R3K2R w KQkq - 0 1", "e1c1", false},
		// blocked by an intervening piece
		{"r3k2r/8/8/8/8/8/8/R2QK2R w KQkq - 0 1", "e1c1", false},
		// no right, no move
		{"r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", "e1g1", false},
		// black mirrors
		{"r3k2r/8/5R2/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", false},
		{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", true},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(test.fen, err)
		}
		var ml = legalMoveStrings(&p)
		if ml[test.move] != test.allowed {
			t.Error(test.fen, test.move, "allowed:", ml[test.move])
		}
	}
}

func TestCastleMoveCount(t *testing.T) {
	var p, _ = NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var kingSide, queenSide = 0, 0
	for _, mv := range p.GenerateLegalMoves() {
		if !mv.IsCastle() {
			continue
		}
		if File(mv.To()) == FileG {
			kingSide++
		} else {
			queenSide++
		}
	}
	if kingSide != 1 || queenSide != 1 {
		t.Error("castle move count", kingSide, queenSide)
	}
}

func TestEnPassantLifecycle(t *testing.T) {
	var p, _ = NewPositionFromFEN("4k3/8/8/8/4p3/8/3P4/4K3 w - - 0 1")
	p.MakeMoveLAN("d2d4")
	if p.EpSquare != SquareD3 {
		t.Fatal("double push did not set the en passant square")
	}
	var ml = legalMoveStrings(&p)
	if !ml["e4d3"] {
		t.Fatal("en passant capture missing")
	}
	p.MakeMoveLAN("e8e7")
	// the opportunity is gone one ply later
	p.MakeMoveLAN("e1e2")
	if legalMoveStrings(&p)["e4d3"] {
		t.Error("stale en passant capture generated")
	}
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	var p, _ = NewPositionFromFEN("4k3/8/8/8/4p3/8/3P4/4K3 w - - 0 1")
	p.MakeMoveLAN("d2d4")
	if !p.MakeMoveLAN("e4d3") {
		t.Fatal("en passant rejected")
	}
	if (p.Pawns & p.White) != 0 {
		t.Error("captured pawn still on the board")
	}
	if (p.Pawns & p.Black & SquareMask[SquareD3]) == 0 {
		t.Error("capturing pawn not on d3")
	}
	p.UnmakeMove()
	if (p.Pawns & p.White & SquareMask[SquareD4]) == 0 {
		t.Error("unmake did not restore the captured pawn")
	}
}

func TestPromotionMoveCount(t *testing.T) {
	// pawn on b7 can push to b8 and capture on a8
	var p, _ = NewPositionFromFEN("r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	var pushes, captures = 0, 0
	for _, mv := range p.GenerateLegalMoves() {
		if !mv.IsPromotion() {
			continue
		}
		if mv.IsCapture() {
			captures++
		} else {
			pushes++
		}
	}
	if pushes != 4 {
		t.Error("quiet promotions", pushes)
	}
	if captures != 4 {
		t.Error("capture promotions", captures)
	}
}

func TestPromotionPieces(t *testing.T) {
	var p, _ = NewPositionFromFEN("4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	var seen = make(map[int]bool)
	for _, mv := range p.GenerateLegalMoves() {
		if mv.IsPromotion() {
			seen[mv.Promotion()] = true
		}
	}
	for _, pieceType := range []int{Knight, Bishop, Rook, Queen} {
		if !seen[pieceType] {
			t.Error("missing promotion piece", pieceType)
		}
	}
	p.MakeMoveLAN("b7b8q")
	if (p.Queens & p.White & SquareMask[SquareB8]) == 0 {
		t.Error("promoted queen missing")
	}
	if (p.Pawns & p.White) != 0 {
		t.Error("promoting pawn still on the board")
	}
	p.UnmakeMove()
	if (p.Pawns & p.White & SquareMask[SquareB7]) == 0 {
		t.Error("unmake did not restore the pawn")
	}
}

func TestGenerateCapturesSubset(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		var all = make(map[Move]bool)
		var buffer [MaxMoves]Move
		for _, mv := range GenerateMoves(buffer[:], &p) {
			all[mv] = true
		}
		var buffer2 [MaxMoves]Move
		for _, mv := range GenerateCaptures(buffer2[:], &p) {
			if !all[mv] {
				t.Error(fen, mv.String(), "capture not in the pseudo-legal set")
			}
			if !mv.IsCapture() && !mv.IsPromotion() {
				t.Error(fen, mv.String(), "quiet move in the capture set")
			}
		}
		for mv := range all {
			if mv.IsCapture() || mv.IsPromotion() {
				var found = false
				for _, cm := range GenerateCaptures(buffer2[:], &p) {
					if cm == mv {
						found = true
						break
					}
				}
				if !found {
					t.Error(fen, mv.String(), "missing from the capture set")
				}
			}
		}
	}
}

func TestGeneratorEmitsOwnColorOnly(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		var buffer [MaxMoves]Move
		for _, mv := range GenerateMoves(buffer[:], &p) {
			var _, side = p.GetPieceTypeAndSide(mv.From())
			if p.WhatPiece(mv.From()) == Empty || side != p.WhiteMove {
				t.Error(fen, mv.String(), "moves a piece of the wrong color")
			}
		}
	}
}

func TestLegalMovesLeaveKingSafe(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		var mover = p.WhiteMove
		for _, mv := range p.GenerateLegalMoves() {
			if !p.MakeMove(mv) {
				t.Fatal(fen, mv.String(), "legal move rejected")
			}
			if p.InCheck(mover) {
				t.Error(fen, mv.String(), "leaves own king in check")
			}
			p.UnmakeMove()
		}
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, fen := range testFENs {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(fen, err)
		}
		for _, mv := range p.GenerateLegalMoves() {
			var lan = mv.String()
			var matches = 0
			for _, other := range p.GenerateLegalMoves() {
				if strings.EqualFold(other.String(), lan) {
					matches++
				}
			}
			if matches != 1 {
				t.Error(fen, lan, "ambiguous move string")
			}
		}
	}
}

func TestParseMoveSAN(t *testing.T) {
	var p, _ = NewPositionFromFEN(InitialPositionFen)
	var mv = ParseMoveSAN(&p, "Nf3")
	if mv == MoveEmpty || mv.String() != "g1f3" {
		t.Error("Nf3 parsed as", mv.String())
	}
	if ParseMoveSAN(&p, "Ke2") != MoveEmpty {
		t.Error("illegal SAN accepted")
	}
}
