package common

import "math/rand"

// Zobrist keys. Filled once at startup and read-only afterwards.
var (
	sideKey        uint64
	enpassantKey   [8]uint64
	castlingKey    [16]uint64
	pieceSquareKey [7 * 2 * 64]uint64
)

func PieceSquareKey(piece int, side bool, square int) uint64 {
	return pieceSquareKey[MakePiece(piece, side)*64+square]
}

func (p *Position) computeKey() uint64 {
	var result = uint64(0)
	if !p.WhiteMove {
		result ^= sideKey
	}
	result ^= castlingKey[p.CastleRights]
	if p.EpSquare != SquareNone {
		result ^= enpassantKey[File(p.EpSquare)]
	}
	for sq := 0; sq < 64; sq++ {
		var piece = p.board[sq]
		if piece != Empty {
			result ^= pieceSquareKey[piece*64+sq]
		}
	}
	return result
}

func initKeys() {
	var r = rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for i := range enpassantKey {
		enpassantKey[i] = r.Uint64()
	}
	for i := range pieceSquareKey {
		pieceSquareKey[i] = r.Uint64()
	}

	// Compose the 16 mask keys from one key per castling bit so that
	// incremental right updates XOR cleanly.
	var castle [4]uint64
	for i := range castle {
		castle[i] = r.Uint64()
	}
	for i := range castlingKey {
		for j := 0; j < 4; j++ {
			if (i & (1 << uint(j))) != 0 {
				castlingKey[i] ^= castle[j]
			}
		}
	}
}

func init() {
	initKeys()
}
