package eval

import (
	"math/rand"

	"github.com/Steven141/ChessProject-sub000/pkg/board"
)

// Random adds a small amount of noise to an evaluation, in the half-open
// range [-limit/2, limit-limit/2) centipawns (integer division). Used to
// break ties between otherwise-equal moves so the engine does not play a
// deterministic, easily-refuted line every game. limit <= 0 disables it.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{limit: limit, rand: rand.New(rand.NewSource(seed))}
}

func (n Random) Evaluate(pos *board.Position) board.Score {
	if n.limit <= 0 {
		return 0
	}
	return board.Score(n.rand.Intn(n.limit) - n.limit/2)
}
