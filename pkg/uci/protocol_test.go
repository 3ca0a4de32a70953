package uci

import (
	"strings"
	"testing"
	"time"

	"github.com/ekovalev/ladoga/pkg/common"
)

func TestParseLimits(t *testing.T) {
	var limits = parseLimits(strings.Fields(
		"wtime 60000 btime 55000 winc 1000 binc 900 movestogo 30"))
	if limits.WhiteTime != 60000 || limits.BlackTime != 55000 ||
		limits.WhiteIncrement != 1000 || limits.BlackIncrement != 900 ||
		limits.MovesToGo != 30 {
		t.Error("clock fields", limits)
	}
	limits = parseLimits(strings.Fields("depth 8"))
	if limits.Depth != 8 || limits.Infinite {
		t.Error("depth", limits)
	}
	limits = parseLimits(strings.Fields("movetime 2000"))
	if limits.MoveTime != 2000 {
		t.Error("movetime", limits)
	}
	limits = parseLimits(strings.Fields("infinite"))
	if !limits.Infinite {
		t.Error("infinite", limits)
	}
}

func TestSearchInfoToUci(t *testing.T) {
	var p, _ = common.NewPositionFromFEN(common.InitialPositionFen)
	var moves = p.GenerateLegalMoves()
	var si = common.SearchInfo{
		Depth:    7,
		Seldepth: 12,
		Score:    common.UciScore{Centipawns: 35},
		Nodes:    100000,
		Time:     250 * time.Millisecond,
		MainLine: moves[:1],
	}
	var line = searchInfoToUci(si)
	if !strings.HasPrefix(line, "info depth 7 seldepth 12 score cp 35 nodes 100000 time 250") {
		t.Error(line)
	}
	if !strings.Contains(line, " pv "+moves[0].String()) {
		t.Error("pv missing:", line)
	}
}

func TestPositionCommand(t *testing.T) {
	var uci = New("test", "test", "dev", nil, nil)

	if err := uci.positionCommand(strings.Fields("startpos moves e2e4 e7e5 g1f3")); err != nil {
		t.Fatal(err)
	}
	if got := uci.position.String(); !strings.HasPrefix(got, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq -") {
		t.Error(got)
	}

	// malformed fen leaves the prior position untouched
	var before = uci.position.String()
	if err := uci.positionCommand(strings.Fields("fen not a position")); err == nil {
		t.Error("malformed fen accepted")
	}
	if uci.position.String() != before {
		t.Error("malformed fen modified the position")
	}

	// illegal moves are ignored silently, the prefix is applied
	if err := uci.positionCommand(strings.Fields("startpos moves e2e4 e2e4 e7e5")); err != nil {
		t.Fatal(err)
	}
	if got := uci.position.String(); !strings.HasPrefix(got, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3") {
		t.Error(got)
	}

	var fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	if err := uci.positionCommand(strings.Fields("fen " + fen)); err != nil {
		t.Fatal(err)
	}
	if uci.position.String() != fen {
		t.Error(uci.position.String())
	}
}
