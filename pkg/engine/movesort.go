package engine

import (
	"sort"

	. "github.com/ekovalev/ladoga/pkg/common"
)

var pieceValues = [King + 1]int{0, 100, 320, 330, 500, 900, 10000}

// mvvLva scores a capture as ten times the victim's value minus the
// attacker's value. The en passant victim is a pawn. With the king valued
// at 10000, a king capture scores below every capture by another piece.
func mvvLva(p *Position, move Move) int {
	var victim int
	if move.IsEnPassant() {
		victim = Pawn
	} else {
		victim = p.WhatPiece(move.To())
	}
	var attacker = p.WhatPiece(move.From())
	return pieceValues[victim]*10 - pieceValues[attacker]
}

// sortMoves orders ml in place: the table move first, captures by
// MVV-LVA, quiet moves in generation order.
func sortMoves(p *Position, ml []Move, ttMove Move) {
	sort.SliceStable(ml, func(i, j int) bool {
		return moveOrderKey(p, ml[i], ttMove) > moveOrderKey(p, ml[j], ttMove)
	})
}

func moveOrderKey(p *Position, move, ttMove Move) int {
	if move == ttMove && move != MoveEmpty {
		return 1 << 30
	}
	if move.IsCapture() {
		return (1 << 20) + mvvLva(p, move)
	}
	return 0
}

// sortCaptures orders a capture list by MVV-LVA alone.
func sortCaptures(p *Position, ml []Move) {
	sort.SliceStable(ml, func(i, j int) bool {
		return mvvLva(p, ml[i]) > mvvLva(p, ml[j])
	})
}
