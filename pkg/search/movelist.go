package search

import (
	"container/heap"
	"fmt"

	"github.com/Steven141/ChessProject-sub000/pkg/board"
	"github.com/Steven141/ChessProject-sub000/pkg/eval"
)

// Priority represents the move order priority.
type Priority int16

// MoveList is move priority queue for move ordering.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with the given priorities.
func NewMoveList(moves []board.Move, fn func(move board.Move) Priority) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next move. It is the highest priority move in the list.
func (ml *MoveList) Next() (board.Move, bool) {
	if ml.Size() == 0 {
		return board.Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   board.Move
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}

// Priority bands, highest first: the transposition table's best move, then
// captures/promotions by MVV-LVA, then the ply's killer moves, then quiet
// moves by history score (spec §4.H). captureBase keeps every capture or
// promotion above the killer band regardless of its MVV-LVA adjustment, and
// ttMovePriority stays clear above the richest possible capture so the
// transposition move is never displaced by one.
const (
	ttMovePriority          Priority = 20000
	captureBase             Priority = 1000
	killerPrimaryPriority   Priority = 900
	killerSecondaryPriority Priority = 890
)

// MVVLVA returns the MVV-LVA priority: most valuable victim first, least
// valuable attacker breaking ties. eval.NominalValue/NominalValueGain
// already live on the centipawn scale (spec §4.F), so unlike the pawn-unit
// scale this was adapted from, the attacker term is scaled back down by the
// same factor rather than the gain term being scaled up -- inflating an
// already-centipawn gain by another 100x would overflow Priority.
func MVVLVA(m board.Move) Priority {
	if gain := Priority(eval.NominalValueGain(m)); gain > 0 {
		return captureBase + gain - Priority(eval.NominalValue(m.Piece)/100)
	}
	return 0
}

// orderingFn returns the move ordering priority function for one search
// node (spec §4.H): the transposition table's best move first, then
// captures/promotions by MVV-LVA, then the ply's killer moves, then quiet
// moves by history score.
func orderingFn(ttMove board.Move, hasTTMove bool, killers [2]board.Move, hist *historyTable, side board.Color) func(board.Move) Priority {
	return func(m board.Move) Priority {
		if hasTTMove && m.Equals(ttMove) {
			return ttMovePriority
		}
		if !m.IsQuiet() {
			return MVVLVA(m)
		}
		if killers[0] != (board.Move{}) && m.Equals(killers[0]) {
			return killerPrimaryPriority
		}
		if killers[1] != (board.Move{}) && m.Equals(killers[1]) {
			return killerSecondaryPriority
		}
		return Priority(hist.get(side, m))
	}
}
