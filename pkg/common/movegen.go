package common

const (
	f1g1Mask = (uint64(1) << SquareF1) | (uint64(1) << SquareG1)
	b1d1Mask = (uint64(1) << SquareB1) | (uint64(1) << SquareC1) | (uint64(1) << SquareD1)
	f8g8Mask = (uint64(1) << SquareF8) | (uint64(1) << SquareG8)
	b8d8Mask = (uint64(1) << SquareB8) | (uint64(1) << SquareC8) | (uint64(1) << SquareD8)
)

func addPromotions(ml []Move, from, to, flags int) (count int) {
	ml[0] = makePromotion(from, to, flags, Queen)
	ml[1] = makePromotion(from, to, flags, Rook)
	ml[2] = makePromotion(from, to, flags, Bishop)
	ml[3] = makePromotion(from, to, flags, Knight)
	return 4
}

func captureFlag(oppPieces uint64, to int) int {
	if (SquareMask[to] & oppPieces) != 0 {
		return flagCapture
	}
	return flagQuiet
}

// GenerateMoves fills ml with every pseudo-legal move: legal under piece
// movement rules, own-king safety not checked. Castling is the exception
// and is emitted fully legal (king not in check, crossing and destination
// squares unattacked, intervening squares empty).
func GenerateMoves(ml []Move, p *Position) []Move {
	var count = 0
	var fromBB, toBB, ownPieces, oppPieces uint64
	var from, to int

	if p.WhiteMove {
		ownPieces = p.White
		oppPieces = p.Black
	} else {
		ownPieces = p.Black
		oppPieces = p.White
	}

	var allPieces = p.White | p.Black
	var ownPawns = p.Pawns & ownPieces

	if p.EpSquare != SquareNone {
		for fromBB = PawnAttacks(p.EpSquare, !p.WhiteMove) & ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
			from = FirstOne(fromBB)
			ml[count] = makeMove(from, p.EpSquare, flagEnPassant)
			count++
		}
	}

	if p.WhiteMove {
		for fromBB = ownPawns & ^Rank7Mask; fromBB != 0; fromBB &= fromBB - 1 {
			from = FirstOne(fromBB)
			if (SquareMask[from+8] & allPieces) == 0 {
				ml[count] = makeMove(from, from+8, flagQuiet)
				count++
				if Rank(from) == Rank2 && (SquareMask[from+16]&allPieces) == 0 {
					ml[count] = makeMove(from, from+16, flagDoublePush)
					count++
				}
			}
			if File(from) > FileA && (SquareMask[from+7]&oppPieces) != 0 {
				ml[count] = makeMove(from, from+7, flagCapture)
				count++
			}
			if File(from) < FileH && (SquareMask[from+9]&oppPieces) != 0 {
				ml[count] = makeMove(from, from+9, flagCapture)
				count++
			}
		}
		for fromBB = ownPawns & Rank7Mask; fromBB != 0; fromBB &= fromBB - 1 {
			from = FirstOne(fromBB)
			if (SquareMask[from+8] & allPieces) == 0 {
				count += addPromotions(ml[count:], from, from+8, flagPromotion)
			}
			if File(from) > FileA && (SquareMask[from+7]&oppPieces) != 0 {
				count += addPromotions(ml[count:], from, from+7, flagCapturePromotion)
			}
			if File(from) < FileH && (SquareMask[from+9]&oppPieces) != 0 {
				count += addPromotions(ml[count:], from, from+9, flagCapturePromotion)
			}
		}
	} else {
		for fromBB = ownPawns & ^Rank2Mask; fromBB != 0; fromBB &= fromBB - 1 {
			from = FirstOne(fromBB)
			if (SquareMask[from-8] & allPieces) == 0 {
				ml[count] = makeMove(from, from-8, flagQuiet)
				count++
				if Rank(from) == Rank7 && (SquareMask[from-16]&allPieces) == 0 {
					ml[count] = makeMove(from, from-16, flagDoublePush)
					count++
				}
			}
			if File(from) > FileA && (SquareMask[from-9]&oppPieces) != 0 {
				ml[count] = makeMove(from, from-9, flagCapture)
				count++
			}
			if File(from) < FileH && (SquareMask[from-7]&oppPieces) != 0 {
				ml[count] = makeMove(from, from-7, flagCapture)
				count++
			}
		}
		for fromBB = ownPawns & Rank2Mask; fromBB != 0; fromBB &= fromBB - 1 {
			from = FirstOne(fromBB)
			if (SquareMask[from-8] & allPieces) == 0 {
				count += addPromotions(ml[count:], from, from-8, flagPromotion)
			}
			if File(from) > FileA && (SquareMask[from-9]&oppPieces) != 0 {
				count += addPromotions(ml[count:], from, from-9, flagCapturePromotion)
			}
			if File(from) < FileH && (SquareMask[from-7]&oppPieces) != 0 {
				count += addPromotions(ml[count:], from, from-7, flagCapturePromotion)
			}
		}
	}

	for fromBB = p.Knights & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = KnightAttacks[from] &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			ml[count] = makeMove(from, to, captureFlag(oppPieces, to))
			count++
		}
	}

	for fromBB = p.Bishops & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = BishopAttacks(from, allPieces) &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			ml[count] = makeMove(from, to, captureFlag(oppPieces, to))
			count++
		}
	}

	for fromBB = p.Rooks & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = RookAttacks(from, allPieces) &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			ml[count] = makeMove(from, to, captureFlag(oppPieces, to))
			count++
		}
	}

	for fromBB = p.Queens & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = QueenAttacks(from, allPieces) &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			ml[count] = makeMove(from, to, captureFlag(oppPieces, to))
			count++
		}
	}

	{
		from = p.KingSq(p.WhiteMove)
		for toBB = KingAttacks[from] &^ ownPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			ml[count] = makeMove(from, to, captureFlag(oppPieces, to))
			count++
		}

		if p.WhiteMove {
			if (p.CastleRights&WhiteKingSide) != 0 &&
				(allPieces&f1g1Mask) == 0 &&
				!p.isAttackedBySide(SquareE1, false) &&
				!p.isAttackedBySide(SquareF1, false) &&
				!p.isAttackedBySide(SquareG1, false) {
				ml[count] = makeMove(SquareE1, SquareG1, flagKingCastle)
				count++
			}
			if (p.CastleRights&WhiteQueenSide) != 0 &&
				(allPieces&b1d1Mask) == 0 &&
				!p.isAttackedBySide(SquareE1, false) &&
				!p.isAttackedBySide(SquareD1, false) &&
				!p.isAttackedBySide(SquareC1, false) {
				ml[count] = makeMove(SquareE1, SquareC1, flagQueenCastle)
				count++
			}
		} else {
			if (p.CastleRights&BlackKingSide) != 0 &&
				(allPieces&f8g8Mask) == 0 &&
				!p.isAttackedBySide(SquareE8, true) &&
				!p.isAttackedBySide(SquareF8, true) &&
				!p.isAttackedBySide(SquareG8, true) {
				ml[count] = makeMove(SquareE8, SquareG8, flagKingCastle)
				count++
			}
			if (p.CastleRights&BlackQueenSide) != 0 &&
				(allPieces&b8d8Mask) == 0 &&
				!p.isAttackedBySide(SquareE8, true) &&
				!p.isAttackedBySide(SquareD8, true) &&
				!p.isAttackedBySide(SquareC8, true) {
				ml[count] = makeMove(SquareE8, SquareC8, flagQueenCastle)
				count++
			}
		}
	}

	return ml[:count]
}

// GenerateCaptures fills ml with captures, en passant, and promotions.
// Non-capturing promotions are included: a promotion is forcing either way.
func GenerateCaptures(ml []Move, p *Position) []Move {
	var count = 0
	var fromBB, toBB, ownPieces, oppPieces uint64
	var from, to int

	if p.WhiteMove {
		ownPieces = p.White
		oppPieces = p.Black
	} else {
		ownPieces = p.Black
		oppPieces = p.White
	}

	var allPieces = p.White | p.Black
	var ownPawns = p.Pawns & ownPieces

	if p.EpSquare != SquareNone {
		for fromBB = PawnAttacks(p.EpSquare, !p.WhiteMove) & ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
			from = FirstOne(fromBB)
			ml[count] = makeMove(from, p.EpSquare, flagEnPassant)
			count++
		}
	}

	if p.WhiteMove {
		for fromBB = (AllBlackPawnAttacks(oppPieces) | Rank7Mask) & ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
			from = FirstOne(fromBB)
			if Rank(from) == Rank7 {
				if (SquareMask[from+8] & allPieces) == 0 {
					count += addPromotions(ml[count:], from, from+8, flagPromotion)
				}
				if File(from) > FileA && (SquareMask[from+7]&oppPieces) != 0 {
					count += addPromotions(ml[count:], from, from+7, flagCapturePromotion)
				}
				if File(from) < FileH && (SquareMask[from+9]&oppPieces) != 0 {
					count += addPromotions(ml[count:], from, from+9, flagCapturePromotion)
				}
			} else {
				if File(from) > FileA && (SquareMask[from+7]&oppPieces) != 0 {
					ml[count] = makeMove(from, from+7, flagCapture)
					count++
				}
				if File(from) < FileH && (SquareMask[from+9]&oppPieces) != 0 {
					ml[count] = makeMove(from, from+9, flagCapture)
					count++
				}
			}
		}
	} else {
		for fromBB = (AllWhitePawnAttacks(oppPieces) | Rank2Mask) & ownPawns; fromBB != 0; fromBB &= fromBB - 1 {
			from = FirstOne(fromBB)
			if Rank(from) == Rank2 {
				if (SquareMask[from-8] & allPieces) == 0 {
					count += addPromotions(ml[count:], from, from-8, flagPromotion)
				}
				if File(from) > FileA && (SquareMask[from-9]&oppPieces) != 0 {
					count += addPromotions(ml[count:], from, from-9, flagCapturePromotion)
				}
				if File(from) < FileH && (SquareMask[from-7]&oppPieces) != 0 {
					count += addPromotions(ml[count:], from, from-7, flagCapturePromotion)
				}
			} else {
				if File(from) > FileA && (SquareMask[from-9]&oppPieces) != 0 {
					ml[count] = makeMove(from, from-9, flagCapture)
					count++
				}
				if File(from) < FileH && (SquareMask[from-7]&oppPieces) != 0 {
					ml[count] = makeMove(from, from-7, flagCapture)
					count++
				}
			}
		}
	}

	for fromBB = p.Knights & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = KnightAttacks[from] & oppPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			ml[count] = makeMove(from, to, flagCapture)
			count++
		}
	}

	for fromBB = p.Bishops & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = BishopAttacks(from, allPieces) & oppPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			ml[count] = makeMove(from, to, flagCapture)
			count++
		}
	}

	for fromBB = p.Rooks & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = RookAttacks(from, allPieces) & oppPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			ml[count] = makeMove(from, to, flagCapture)
			count++
		}
	}

	for fromBB = p.Queens & ownPieces; fromBB != 0; fromBB &= fromBB - 1 {
		from = FirstOne(fromBB)
		for toBB = QueenAttacks(from, allPieces) & oppPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			ml[count] = makeMove(from, to, flagCapture)
			count++
		}
	}

	{
		from = p.KingSq(p.WhiteMove)
		for toBB = KingAttacks[from] & oppPieces; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			ml[count] = makeMove(from, to, flagCapture)
			count++
		}
	}

	return ml[:count]
}

// GenerateLegalMoves filters the pseudo-legal set by make/unmake on the
// position itself.
func (p *Position) GenerateLegalMoves() (ml []Move) {
	var buffer [MaxMoves]Move
	for _, m := range GenerateMoves(buffer[:], p) {
		if p.MakeMove(m) {
			p.UnmakeMove()
			ml = append(ml, m)
		}
	}
	return ml
}
