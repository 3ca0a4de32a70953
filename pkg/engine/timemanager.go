package engine

import (
	"sync/atomic"
	"time"

	. "github.com/ekovalev/ladoga/pkg/common"
)

// timeManager owns the search budget and the stop flag. The search sets
// the flag when the time or node budget is spent or when it finds its
// context cancelled at a node poll, and reads it at every node.
type timeManager struct {
	start     time.Time
	softLimit time.Duration
	hardLimit time.Duration
	infinite  bool
	nodeLimit int
	stop      int32
}

func newTimeManager(start time.Time, limits LimitsType, whiteMove bool) *timeManager {
	var tm = &timeManager{
		start:     start,
		infinite:  limits.Infinite,
		nodeLimit: limits.Nodes,
	}

	if limits.MoveTime > 0 {
		tm.hardLimit = time.Duration(limits.MoveTime) * time.Millisecond
		tm.softLimit = tm.hardLimit
	} else if limits.WhiteTime > 0 || limits.BlackTime > 0 {
		var main, inc time.Duration
		if whiteMove {
			main = time.Duration(limits.WhiteTime) * time.Millisecond
			inc = time.Duration(limits.WhiteIncrement) * time.Millisecond
		} else {
			main = time.Duration(limits.BlackTime) * time.Millisecond
			inc = time.Duration(limits.BlackIncrement) * time.Millisecond
		}
		tm.softLimit, tm.hardLimit = calcLimits(main, inc, limits.MovesToGo)
	}

	return tm
}

// TimeUp reports whether the hard budget is spent. Not an error: the
// search terminates cooperatively on it.
func (tm *timeManager) TimeUp() bool {
	if tm.infinite || tm.hardLimit == 0 {
		return false
	}
	return time.Since(tm.start) >= tm.hardLimit
}

// SoftTimeUp gates the next iteration: starting one past the soft limit
// would almost surely be thrown away.
func (tm *timeManager) SoftTimeUp() bool {
	if tm.infinite || tm.softLimit == 0 {
		return false
	}
	return time.Since(tm.start) >= tm.softLimit
}

func (tm *timeManager) OnNodesChanged(nodes int) {
	if tm.nodeLimit > 0 && nodes >= tm.nodeLimit {
		tm.Stop()
	}
	if tm.TimeUp() {
		tm.Stop()
	}
}

func (tm *timeManager) Stop() {
	atomic.StoreInt32(&tm.stop, 1)
}

func (tm *timeManager) IsStopped() bool {
	return atomic.LoadInt32(&tm.stop) != 0
}

func calcLimits(main, inc time.Duration, moves int) (soft, hard time.Duration) {
	const (
		DefaultMovesToGo = 40
		MoveOverhead     = 50 * time.Millisecond
		MinTimeLimit     = 1 * time.Millisecond
	)

	main -= MoveOverhead
	if main < MinTimeLimit {
		main = MinTimeLimit
	}

	if moves == 0 {
		moves = DefaultMovesToGo
	} else {
		moves = Min(moves, DefaultMovesToGo)
	}
	var ideal = main/time.Duration(moves+1) + inc
	soft = ideal * 7 / 10
	hard = ideal * 21 / 10

	hard = limitDuration(hard, MinTimeLimit, main)
	soft = limitDuration(soft, MinTimeLimit, main)

	return
}

func limitDuration(v, min, max time.Duration) time.Duration {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
