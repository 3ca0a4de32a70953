package common

import "strings"

// Move packs from (bits 0..5), to (bits 6..11) and a flag nibble
// (bits 12..15) into 16 bits. The layout stays inside this file;
// everything else goes through the accessors.
type Move uint16

const MoveEmpty = Move(0)

const (
	flagQuiet = iota
	flagDoublePush
	flagKingCastle
	flagQueenCastle
	flagCapture
	flagEnPassant
)

// Promotions set bit 3 of the nibble, capture promotions bit 2 as well;
// the low two bits select the piece (Knight..Queen).
const (
	flagPromotion        = 8
	flagCapturePromotion = flagPromotion | flagCapture
)

func makeMove(from, to, flags int) Move {
	return Move(from ^ (to << 6) ^ (flags << 12))
}

func makePromotion(from, to, flags, promotion int) Move {
	return makeMove(from, to, flags^(promotion-Knight))
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

func (m Move) flags() int {
	return int(m >> 12)
}

func (m Move) IsCapture() bool {
	return m.flags()&flagCapture != 0
}

func (m Move) IsPromotion() bool {
	return m.flags()&flagPromotion != 0
}

// Promotion returns the promoted piece type, or Empty for non-promotions.
func (m Move) Promotion() int {
	if !m.IsPromotion() {
		return Empty
	}
	return Knight + m.flags()&3
}

func (m Move) IsEnPassant() bool {
	return m.flags() == flagEnPassant
}

func (m Move) IsCastle() bool {
	var f = m.flags()
	return f == flagKingCastle || f == flagQueenCastle
}

func (m Move) IsDoublePush() bool {
	return m.flags() == flagDoublePush
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	var sPromotion = ""
	if m.IsPromotion() {
		sPromotion = string("nbrq"[m.Promotion()-Knight])
	}
	return SquareName(m.From()) + SquareName(m.To()) + sPromotion
}

// MakeMoveLAN plays the long-algebraic move if it is legal here.
// Unknown or illegal move strings are reported via ok=false.
func (p *Position) MakeMoveLAN(lan string) bool {
	for _, mv := range p.GenerateLegalMoves() {
		if strings.EqualFold(mv.String(), lan) {
			return p.MakeMove(mv)
		}
	}
	return false
}

func moveToSAN(pos *Position, ml []Move, mv Move) string {
	const PieceNames = "NBRQK"
	if mv.IsCastle() {
		if File(mv.To()) == FileG {
			return "O-O"
		}
		return "O-O-O"
	}
	var strPiece, strCapture, strFrom, strTo, strPromotion string
	var movingPiece = pos.WhatPiece(mv.From())
	if movingPiece != Pawn {
		strPiece = string(PieceNames[movingPiece-Knight])
	}
	strTo = SquareName(mv.To())
	if mv.IsCapture() {
		strCapture = "x"
		if movingPiece == Pawn {
			strFrom = SquareName(mv.From())[:1]
		}
	}
	if mv.IsPromotion() {
		strPromotion = "=" + string(PieceNames[mv.Promotion()-Knight])
	}
	var ambiguity = false
	var uniqCol = true
	var uniqRow = true
	for _, mv1 := range ml {
		if mv1.From() == mv.From() {
			continue
		}
		if mv1.To() != mv.To() {
			continue
		}
		if pos.WhatPiece(mv1.From()) != movingPiece {
			continue
		}
		ambiguity = true
		if File(mv1.From()) == File(mv.From()) {
			uniqCol = false
		}
		if Rank(mv1.From()) == Rank(mv.From()) {
			uniqRow = false
		}
	}
	if ambiguity {
		if uniqCol {
			strFrom = SquareName(mv.From())[:1]
		} else if uniqRow {
			strFrom = SquareName(mv.From())[1:2]
		} else {
			strFrom = SquareName(mv.From())
		}
	}
	return strPiece + strFrom + strCapture + strTo + strPromotion
}

func ParseMoveSAN(pos *Position, san string) Move {
	var index = strings.IndexAny(san, "+#?!")
	if index >= 0 {
		san = san[:index]
	}
	var ml = pos.GenerateLegalMoves()
	for _, mv := range ml {
		if san == moveToSAN(pos, ml, mv) {
			return mv
		}
	}
	return MoveEmpty
}
