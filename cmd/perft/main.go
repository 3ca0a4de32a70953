package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/ekovalev/ladoga/pkg/common"
	"golang.org/x/sync/errgroup"
)

func main() {
	var fen string
	var depth int
	var divide bool
	var threads int
	flag.StringVar(&fen, "fen", common.InitialPositionFen, "position to count from")
	flag.IntVar(&depth, "depth", 6, "perft depth")
	flag.BoolVar(&divide, "divide", false, "print per-move subtotals")
	flag.IntVar(&threads, "threads", runtime.NumCPU(), "worker count")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags)

	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		logger.Fatal(err)
	}

	var start = time.Now()
	var nodes, err2 = parallelPerft(context.Background(), &p, depth, threads, divide)
	if err2 != nil {
		logger.Fatal(err2)
	}
	var elapsed = time.Since(start)
	fmt.Printf("nodes %v time %v nps %v\n",
		nodes, elapsed.Milliseconds(), int64(float64(nodes)/(elapsed.Seconds()+0.001)))
}

type moveCount struct {
	move  common.Move
	nodes int
}

// parallelPerft splits the root moves across a worker group; each worker
// walks its subtrees on an independent copy of the position.
func parallelPerft(ctx context.Context, p *common.Position, depth, threads int, divide bool) (int, error) {
	var rootMoves = p.GenerateLegalMoves()
	if depth <= 1 {
		if divide {
			for _, move := range rootMoves {
				fmt.Printf("%v: 1\n", move)
			}
		}
		return len(rootMoves), nil
	}

	var g, _ = errgroup.WithContext(ctx)
	g.SetLimit(threads)

	var mu sync.Mutex
	var counts []moveCount

	for _, move := range rootMoves {
		var move = move
		var child = p.Clone()
		g.Go(func() error {
			if !child.MakeMove(move) {
				return fmt.Errorf("root move %v rejected", move)
			}
			var nodes = common.Perft(&child, depth-1)
			mu.Lock()
			counts = append(counts, moveCount{move: move, nodes: nodes})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].move.String() < counts[j].move.String()
	})
	var total = 0
	for _, mc := range counts {
		if divide {
			fmt.Printf("%v: %v\n", mc.move, mc.nodes)
		}
		total += mc.nodes
	}
	return total, nil
}
