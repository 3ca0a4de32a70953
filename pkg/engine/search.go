package engine

import (
	. "github.com/ekovalev/ladoga/pkg/common"
)

// iterativeDeepening runs the root search at depths 1, 2, ... and keeps
// the best line of the last iteration that ran to completion. An
// iteration interrupted by the stop flag is discarded.
func (e *Engine) iterativeDeepening(p *Position, limits LimitsType) {
	var maxDepth = maxHeight
	if limits.Depth > 0 {
		maxDepth = Min(limits.Depth, maxHeight)
	}
	for depth := 1; depth <= maxDepth; depth++ {
		var score = e.alphaBeta(p, -valueInfinity, valueInfinity, depth, 0)
		if e.timeManager.IsStopped() {
			break
		}
		e.mainLine = mainLine{
			depth: depth,
			score: score,
			moves: e.stack[0].pv.toSlice(),
		}
		if len(e.mainLine.moves) == 0 {
			// no legal moves at the root
			break
		}
		if e.progress != nil && e.nodes >= int64(e.ProgressMinNodes) {
			e.progress(e.currentSearchResult())
		}
		if e.timeManager.SoftTimeUp() {
			break
		}
		if score >= winIn(depth) || score <= lossIn(depth) {
			// the shortest mate at this depth is proven
			break
		}
	}
}

// alphaBeta is a negamax principal variation search. The score it
// returns is from the side to move's perspective; once the stop flag is
// set every in-flight call returns the sentinel 0, which callers above
// discard.
func (e *Engine) alphaBeta(p *Position, alpha, beta, depth, height int) int {
	if depth <= 0 {
		return e.quiescence(p, alpha, beta, height)
	}
	e.clearPV(height)
	e.incNodes()
	if e.timeManager.IsStopped() {
		return 0
	}
	if height > e.seldepth {
		e.seldepth = height
	}

	var rootNode = height == 0
	if !rootNode {
		if height >= maxHeight {
			return e.evaluator.Evaluate(p)
		}
		if p.IsDrawByFiftyMoves() || isInsufficientMaterial(p) {
			return valueDraw
		}
		// the second occurrence already scores as a draw, cutting
		// cycles inside the tree short
		if p.RepetitionCount() >= 2 {
			return valueDraw
		}
	}

	var ttDepth, ttScore, ttBound, ttMove, ttHit = e.transTable.Read(p.Key)
	if ttHit && ttDepth >= depth && !rootNode {
		ttScore = valueFromTT(ttScore, height)
		switch ttBound {
		case boundExact:
			return ttScore
		case boundLower:
			if ttScore > alpha {
				alpha = ttScore
			}
		case boundUpper:
			if ttScore < beta {
				beta = ttScore
			}
		}
		if alpha >= beta {
			return ttScore
		}
	}

	var ml = GenerateMoves(e.stack[height].moveList[:], p)
	sortMoves(p, ml, ttMove)

	var alphaIn = alpha
	var best = -valueInfinity
	var bestMove = MoveEmpty
	var movesSearched = 0

	for _, move := range ml {
		if !p.MakeMove(move) {
			continue
		}
		var score int
		if movesSearched == 0 {
			score = -e.alphaBeta(p, -beta, -alpha, depth-1, height+1)
		} else {
			score = -e.alphaBeta(p, -(alpha + 1), -alpha, depth-1, height+1)
			if score > alpha && score < beta {
				score = -e.alphaBeta(p, -beta, -alpha, depth-1, height+1)
			}
		}
		p.UnmakeMove()
		movesSearched++
		if e.timeManager.IsStopped() {
			return 0
		}
		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			e.assignPV(height, move)
			if alpha >= beta {
				e.transTable.Update(p.Key, depth, valueToTT(best, height), boundLower, bestMove)
				return best
			}
		}
	}

	if movesSearched == 0 {
		if p.IsCheck() {
			return lossIn(height)
		}
		return valueDraw
	}

	var bound = boundUpper
	if best > alphaIn {
		bound = boundExact
	}
	e.transTable.Update(p.Key, depth, valueToTT(best, height), bound, bestMove)
	return best
}

// quiescence resolves captures below the horizon. Stand pat with the
// static evaluation, then captures and promotions only, MVV-LVA ordered.
// Every recursion removes a piece or promotes a pawn, so the material
// ends each line; the search stack's height limit (maxHeight) also stops it.
func (e *Engine) quiescence(p *Position, alpha, beta, height int) int {
	e.clearPV(height)
	e.incNodes()
	if e.timeManager.IsStopped() {
		return 0
	}
	if height > e.seldepth {
		e.seldepth = height
	}

	var standPat = e.evaluator.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if height >= maxHeight {
		return alpha
	}

	var ml = GenerateCaptures(e.stack[height].moveList[:], p)
	sortCaptures(p, ml)

	for _, move := range ml {
		if !p.MakeMove(move) {
			continue
		}
		var score = -e.quiescence(p, -beta, -alpha, height+1)
		p.UnmakeMove()
		if e.timeManager.IsStopped() {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			e.assignPV(height, move)
		}
	}

	return alpha
}
