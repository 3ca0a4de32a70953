package eval

import (
	. "github.com/ekovalev/ladoga/pkg/common"
)

const (
	pawnValue   = 100
	knightValue = 320
	bishopValue = 330
	rookValue   = 500
	queenValue  = 900
)

const mobilityWeight = 4

// endgameMaterial is the threshold under which the king walks to the
// center: less than a rook, a bishop, a knight and six pawns combined.
const endgameMaterial = rookValue + bishopValue + knightValue + 6*pawnValue

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate returns a centipawn score from the side to move's
// perspective: material, piece-square tables and a small mobility term.
func (e *EvaluationService) Evaluate(p *Position) int {
	var score = 0
	var whiteMaterial, blackMaterial = materialByColor(p)
	var endgame = whiteMaterial+blackMaterial < endgameMaterial

	score += whiteMaterial - blackMaterial

	for x := p.White; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		score += pieceSquareValue(p.WhatPiece(sq), FlipSquare(sq), endgame)
	}
	for x := p.Black; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		score -= pieceSquareValue(p.WhatPiece(sq), sq, endgame)
	}

	score += mobilityWeight * (mobility(p, true) - mobility(p, false))

	if !p.WhiteMove {
		score = -score
	}
	return score
}

func materialByColor(p *Position) (white, black int) {
	white = pawnValue*PopCount(p.Pawns&p.White) +
		knightValue*PopCount(p.Knights&p.White) +
		bishopValue*PopCount(p.Bishops&p.White) +
		rookValue*PopCount(p.Rooks&p.White) +
		queenValue*PopCount(p.Queens&p.White)
	black = pawnValue*PopCount(p.Pawns&p.Black) +
		knightValue*PopCount(p.Knights&p.Black) +
		bishopValue*PopCount(p.Bishops&p.Black) +
		rookValue*PopCount(p.Rooks&p.Black) +
		queenValue*PopCount(p.Queens&p.Black)
	return
}

// mobility counts the squares the minor and major pieces attack outside
// their own army.
func mobility(p *Position, side bool) int {
	var own = p.PiecesByColor(side)
	var occ = p.White | p.Black
	var result = 0
	for x := p.Knights & own; x != 0; x &= x - 1 {
		result += PopCount(KnightAttacks[FirstOne(x)] &^ own)
	}
	for x := p.Bishops & own; x != 0; x &= x - 1 {
		result += PopCount(BishopAttacks(FirstOne(x), occ) &^ own)
	}
	for x := p.Rooks & own; x != 0; x &= x - 1 {
		result += PopCount(RookAttacks(FirstOne(x), occ) &^ own)
	}
	for x := p.Queens & own; x != 0; x &= x - 1 {
		result += PopCount(QueenAttacks(FirstOne(x), occ) &^ own)
	}
	return result
}

// Tables are written rank 8 first, so white indexes with the flipped
// square and black with the square itself.
func pieceSquareValue(pieceType, sq int, endgame bool) int {
	switch pieceType {
	case Pawn:
		return pawnPST[sq]
	case Knight:
		return knightPST[sq]
	case Bishop:
		return bishopPST[sq]
	case Rook:
		return rookPST[sq]
	case Queen:
		return queenPST[sq]
	case King:
		if endgame {
			return kingEndgamePST[sq]
		}
		return kingPST[sq]
	}
	return 0
}

var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgamePST = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}
