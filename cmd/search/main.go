// search runs the engine's depth-limited iterative-deepening search on a
// single position and prints the principal variation of the deepest
// completed depth (spec §5, §6). It speaks no board-game protocol (UCI, console chat) --
// SPEC_FULL.md's Non-goals exclude protocol framing -- it is a one-shot CLI
// over a FEN position and a wire move-token PV.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Steven141/ChessProject-sub000/pkg/board"
	"github.com/Steven141/ChessProject-sub000/pkg/board/fen"
	"github.com/Steven141/ChessProject-sub000/pkg/eval"
	"github.com/Steven141/ChessProject-sub000/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(1, 0, 0)

var (
	position = flag.String("fen", "", "Start position (default to standard)")
	depth    = flag.Int("depth", 6, "Iterative-deepening depth limit")
	movetime = flag.Duration("movetime", 0, "Wall-clock soft budget, checked between completed depths (0 = unlimited)")
	hashSize = flag.Int("hash", 64, "Transposition table size, in MB")
	showVer  = flag.Bool("version", false, "Print version and exit")
	noiseMP  = flag.Int("noise", 0, "Evaluation noise in centipawns, to break ties (0 = deterministic)")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	if *showVer {
		fmt.Println(version)
		return
	}

	if *position == "" {
		*position = fen.Initial
	}

	pos, _, _, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	tt := search.NewTranspositionTable(ctx, uint64(*hashSize)<<20)

	var ev eval.Evaluator = eval.Standard{}
	if *noiseMP > 0 {
		ev = noisyEvaluator{base: eval.Standard{}, noise: eval.NewRandom(*noiseMP, time.Now().UnixNano())}
	}

	opt := search.Options{DepthLimit: *depth, SoftBudget: *movetime}
	pv, err := search.Search(ctx, pos, ev, tt, opt, nil)
	if err != nil {
		logw.Exitf(ctx, "Search failed: %v", err)
	}

	fmt.Println(pv)
	if result := board.Adjudicate(pos); result != board.Undecided {
		fmt.Println(result)
	}
	os.Exit(0)
}

// noisyEvaluator adds a small amount of random noise to Standard's score to
// avoid deterministic, easily-refuted play (see eval.Random).
type noisyEvaluator struct {
	base  eval.Evaluator
	noise eval.Random
}

func (n noisyEvaluator) Evaluate(pos *board.Position) board.Score {
	return n.base.Evaluate(pos) + n.noise.Evaluate(pos)
}
