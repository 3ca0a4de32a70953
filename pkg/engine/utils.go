package engine

import (
	. "github.com/ekovalev/ladoga/pkg/common"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	valueDraw     = 0
	valueMate     = 30000
	valueInfinity = valueMate + 1
	valueWin      = valueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return valueMate - height
}

func lossIn(height int) int {
	return -valueMate + height
}

// Mate scores are stored relative to the node and read back relative to
// the root, so shorter mates keep winning through the table.
func valueToTT(v, height int) int {
	if v >= valueWin {
		return v + height
	}
	if v <= valueLoss {
		return v - height
	}
	return v
}

func valueFromTT(v, height int) int {
	if v >= valueWin {
		return v - height
	}
	if v <= valueLoss {
		return v + height
	}
	return v
}

func newUciScore(v int) UciScore {
	if v >= valueWin {
		return UciScore{Centipawns: v, Mate: (valueMate - v + 1) / 2}
	} else if v <= valueLoss {
		return UciScore{Centipawns: v, Mate: (-valueMate - v) / 2}
	} else {
		return UciScore{Centipawns: v}
	}
}

func isInsufficientMaterial(p *Position) bool {
	return (p.Pawns|p.Rooks|p.Queens) == 0 &&
		!MoreThanOne(p.Knights|p.Bishops)
}
