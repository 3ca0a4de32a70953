package engine

import (
	. "github.com/ekovalev/ladoga/pkg/common"
)

const (
	boundExact = iota + 1
	boundLower
	boundUpper
)

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

type transEntry struct {
	key   uint64
	move  Move
	score int16
	depth int8
	bound uint8
}

// transTable is a fixed-capacity always-replace table owned by a single
// search. An entry answers a probe only on a full 64-bit key match.
type transTable struct {
	megabytes int
	entries   []transEntry
	mask      uint64
}

func newTransTable(megabytes int) *transTable {
	var size = roundPowerOfTwo(1024 * 1024 * megabytes / 16)
	return &transTable{
		megabytes: megabytes,
		entries:   make([]transEntry, size),
		mask:      uint64(size - 1),
	}
}

func (tt *transTable) Size() int {
	return tt.megabytes
}

func (tt *transTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

func (tt *transTable) Read(key uint64) (depth, score, bound int, move Move, ok bool) {
	var entry = &tt.entries[key&tt.mask]
	if entry.key == key && entry.bound != 0 {
		return int(entry.depth), int(entry.score), int(entry.bound), entry.move, true
	}
	return
}

func (tt *transTable) Update(key uint64, depth, score, bound int, move Move) {
	tt.entries[key&tt.mask] = transEntry{
		key:   key,
		move:  move,
		score: int16(score),
		depth: int8(depth),
		bound: uint8(bound),
	}
}
