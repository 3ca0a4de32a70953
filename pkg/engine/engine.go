package engine

import (
	"context"
	"time"

	. "github.com/ekovalev/ladoga/pkg/common"
)

// Engine runs one single-threaded search at a time. The transposition
// table and the search stack belong to it for the whole search.
type Engine struct {
	Hash             int
	ProgressMinNodes int
	evaluator        Evaluator
	transTable       *transTable
	timeManager      *timeManager
	ctx              context.Context
	progress         func(SearchInfo)
	mainLine         mainLine
	start            time.Time
	nodes            int64
	seldepth         int
	stack            [stackSize]struct {
		moveList [MaxMoves]Move
		pv       pv
	}
}

type pv struct {
	items [stackSize]Move
	size  int
}

type mainLine struct {
	moves []Move
	score int
	depth int
}

type Evaluator interface {
	Evaluate(p *Position) int
}

func NewEngine(evaluator Evaluator) *Engine {
	return &Engine{
		Hash:             16,
		ProgressMinNodes: 0,
		evaluator:        evaluator,
	}
}

func (e *Engine) Prepare() {
	if e.transTable == nil || e.transTable.Size() != e.Hash {
		e.transTable = newTransTable(e.Hash)
	}
}

// Clear wipes the transposition table; called on ucinewgame.
func (e *Engine) Clear() {
	if e.transTable != nil {
		e.transTable.Clear()
	}
}

// Search runs iterative deepening on searchParams.Position and returns
// the best line of the last completed iteration. Cancelling ctx stops
// the search within one node-poll interval.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	e.start = time.Now()
	e.Prepare()
	var p = searchParams.Position
	e.ctx = ctx
	e.timeManager = newTimeManager(e.start, searchParams.Limits, p.WhiteMove)
	if ctx != nil && ctx.Err() != nil {
		e.timeManager.Stop()
	}
	e.progress = searchParams.Progress
	e.nodes = 0
	e.seldepth = 0
	e.mainLine = mainLine{}
	e.iterativeDeepening(p, searchParams.Limits)
	return e.currentSearchResult()
}

func (e *Engine) currentSearchResult() SearchInfo {
	return SearchInfo{
		Depth:    e.mainLine.depth,
		Seldepth: e.seldepth,
		MainLine: e.mainLine.moves,
		Score:    newUciScore(e.mainLine.score),
		Nodes:    e.nodes,
		Time:     time.Since(e.start),
	}
}

func (e *Engine) incNodes() {
	e.nodes++
	if e.nodes&2047 == 0 {
		e.timeManager.OnNodesChanged(int(e.nodes))
		if e.ctx != nil && e.ctx.Err() != nil {
			e.timeManager.Stop()
		}
	}
}

func (e *Engine) clearPV(height int) {
	e.stack[height].pv.size = 0
}

func (e *Engine) assignPV(height int, move Move) {
	if height+1 < stackSize {
		e.stack[height].pv.assign(move, &e.stack[height+1].pv)
	}
}

func (pv *pv) assign(m Move, child *pv) {
	pv.size = 1
	pv.items[0] = m
	if child.size > 0 {
		pv.size += child.size
		copy(pv.items[1:], child.items[:child.size])
	}
}

func (pv *pv) toSlice() []Move {
	var result = make([]Move, pv.size)
	copy(result, pv.items[:pv.size])
	return result
}
