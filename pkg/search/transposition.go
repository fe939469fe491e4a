package search

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/Steven141/ChessProject-sub000/pkg/board"
	"github.com/seekerror/logw"
)

// Bound represents the bound of a -- possibly inexact -- search score (spec
// §4.G): Exact is the true minimax value, Alpha is an upper bound (the node
// failed low: every move was worse than alpha), Beta is a lower bound (the
// node failed high: some move caused a beta cutoff).
type Bound uint8

const (
	ExactBound Bound = iota
	AlphaBound
	BetaBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case AlphaBound:
		return "Alpha"
	case BetaBound:
		return "Beta"
	default:
		return "?"
	}
}

// entry is one transposition table slot.
type entry struct {
	hash  board.ZobristHash
	score board.Score
	from  board.Square
	to    board.Square
	promo board.Piece
	bound Bound
	depth uint16
}

func (e entry) move() board.Move {
	return board.Move{From: e.from, To: e.to, Promotion: e.promo}
}

// TranspositionTable caches search results keyed by position hash (spec
// §4.G). Search is single-threaded by construction (spec §5), so unlike most
// engines in the wild this table needs neither atomics nor locking: a plain
// slice of value entries is simpler and just as correct here.
type TranspositionTable interface {
	// Read returns the bound, depth, score and best move stored for hash, if any.
	Read(hash board.ZobristHash) (Bound, int, board.Score, board.Move, bool)
	// Write stores an entry, subject to the table's replacement policy.
	Write(hash board.ZobristHash, bound Bound, depth int, score board.Score, move board.Move)
	// Clear empties the table, keeping its allocated size.
	Clear()
	// Size returns the capacity of the table, in entries.
	Size() int
	// Used returns the table's utilization as a fraction in [0;1].
	Used() float64
}

type table struct {
	entries []entry
	mask    uint64
	used    int
}

// NewTranspositionTable allocates a table sized to approximately size bytes,
// rounded down to the nearest power-of-two entry count.
func NewTranspositionTable(ctx context.Context, size uint64) TranspositionTable {
	const entrySize = 32
	count := size / entrySize
	if count == 0 {
		count = 1
	}
	n := uint64(1) << uint(bits.Len64(count)-1)

	logw.Infof(ctx, "Allocating %vMB transposition table with %v entries", size>>20, n)

	return &table{
		entries: make([]entry, n),
		mask:    n - 1,
	}
}

func (t *table) Size() int {
	return len(t.entries)
}

func (t *table) Used() float64 {
	return float64(t.used) / float64(len(t.entries))
}

func (t *table) Clear() {
	t.entries = make([]entry, len(t.entries))
	t.used = 0
}

func (t *table) Read(hash board.ZobristHash) (Bound, int, board.Score, board.Move, bool) {
	e := t.entries[uint64(hash)&t.mask]
	if e.hash != hash {
		return 0, 0, 0, board.Move{}, false
	}
	return e.bound, int(e.depth), e.score, e.move(), true
}

// Write stores the entry. Replacement is always-replace-if-deeper: a
// shallower search never evicts a deeper one occupying the same slot (spec
// §4.G), which would otherwise happily happen on a hash collision.
func (t *table) Write(hash board.ZobristHash, bound Bound, depth int, score board.Score, move board.Move) {
	key := uint64(hash) & t.mask
	old := t.entries[key]
	switch {
	case old.hash == 0:
		t.used++
	case int(old.depth) > depth:
		return
	}
	t.entries[key] = entry{
		hash:  hash,
		score: score,
		from:  move.From,
		to:    move.To,
		promo: move.Promotion,
		bound: bound,
		depth: uint16(depth),
	}
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v entries @ %v%%]", t.Size(), int(100*t.Used()))
}

// NoTranspositionTable is a Nop implementation, useful for perft-style
// move-generator benchmarking or A/B-testing search heuristics without a
// cache in the way.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Read(hash board.ZobristHash) (Bound, int, board.Score, board.Move, bool) {
	return 0, 0, 0, board.Move{}, false
}

func (NoTranspositionTable) Write(hash board.ZobristHash, bound Bound, depth int, score board.Score, move board.Move) {
}

func (NoTranspositionTable) Clear() {}

func (NoTranspositionTable) Size() int { return 0 }

func (NoTranspositionTable) Used() float64 { return 0 }

// toTT converts a root-relative score into the ply-independent form stored
// in the table; fromTT converts it back when read. A mate score's distance
// is measured from the node while stored and from the root once read back
// into the live search, so a cached result found at one ply is still
// correct when re-used at a different distance from the root (spec §4.G).
func toTT(score board.Score, ply int) board.Score {
	switch {
	case score > board.MateThreshold:
		return score + board.Score(ply)
	case score < -board.MateThreshold:
		return score - board.Score(ply)
	default:
		return score
	}
}

func fromTT(score board.Score, ply int) board.Score {
	switch {
	case score > board.MateThreshold:
		return score - board.Score(ply)
	case score < -board.MateThreshold:
		return score + board.Score(ply)
	default:
		return score
	}
}
