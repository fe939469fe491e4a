package search

import "github.com/Steven141/ChessProject-sub000/pkg/board"

// maxPly bounds the killer table: a ceiling well beyond any realistic
// iterative-deepening depth (spec §4.H). Killer lookups at or beyond it
// find no killers and additions there are dropped; it does not limit
// recursion depth or the repetition stack.
const maxPly = 128

// killerTable holds, for each ply, the two most recent quiet moves that
// caused a beta cutoff there (spec §4.H). Indexed by search-local ply, not
// game ply, and reset at the start of every top-level Search call.
type killerTable struct {
	moves [maxPly][2]board.Move
}

func newKillerTable() *killerTable {
	return &killerTable{}
}

func (k *killerTable) at(ply int) [2]board.Move {
	if ply < 0 || ply >= maxPly {
		return [2]board.Move{}
	}
	return k.moves[ply]
}

// add records m as the newest killer at ply, demoting the previous primary
// killer to secondary. A move already stored at ply is not duplicated.
func (k *killerTable) add(ply int, m board.Move) {
	if ply < 0 || ply >= maxPly || m.Equals(k.moves[ply][0]) {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}

// historyTable scores quiet moves by how often they have caused a beta
// cutoff anywhere in the tree, indexed by side to move and from/to square
// (spec §4.H). Unlike killers, it persists across the whole iterative-
// deepening run rather than being reset per ply, so earlier iterations bias
// move ordering in deeper ones.
type historyTable struct {
	score [board.NumColors][board.NumSquares][board.NumSquares]int32
}

func newHistoryTable() *historyTable {
	return &historyTable{}
}

// historyCeiling keeps history scores safely below the killer priority
// bands (killerSecondaryPriority=890) so a well-fed history entry never
// outranks an actual killer move, and within int16 range for Priority.
const historyCeiling = 800

func (h *historyTable) get(c board.Color, m board.Move) int32 {
	return h.score[c][m.From][m.To]
}

// bump rewards a cutoff-causing quiet move proportional to depth^2, the
// usual history heuristic weighting that favors cutoffs found deep in the
// tree over shallow ones.
func (h *historyTable) bump(c board.Color, m board.Move, depth int) {
	d := int32(depth)
	s := &h.score[c][m.From][m.To]
	*s += d * d
	if *s > historyCeiling {
		*s = historyCeiling
	}
}

func (h *historyTable) clear() {
	*h = historyTable{}
}
