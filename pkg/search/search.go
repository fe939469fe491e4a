// Package search implements depth-limited iterative-deepening negamax
// search with alpha-beta pruning, quiescence, a transposition table, killer
// moves, history-ordered quiet moves and late move reductions (spec §4.H,
// §5). Search is a single synchronous call: it never suspends mid-tree and
// never runs concurrently with itself, unlike the teacher's goroutine-and-
// channel Launcher/Handle harness, which this package deliberately replaces
// (see DESIGN.md).
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Steven141/ChessProject-sub000/pkg/board"
	"github.com/Steven141/ChessProject-sub000/pkg/eval"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// ErrHalted is returned when the search is cancelled via ctx before
// producing a single completed iteration.
var ErrHalted = errors.New("search halted")

// PV is the principal variation found at a given iterative-deepening depth.
type PV struct {
	Depth int
	Moves []board.Move
	Score board.Score
	Nodes uint64
	Time  time.Duration
	Hash  float64 // transposition table utilization [0;1]
}

func (p PV) String() string {
	tokens := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		tokens[i] = m.String()
	}
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v", p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), strings.Join(tokens, " "))
}

// Options holds the caller-tunable limits of a single Search call (spec §5).
type Options struct {
	// DepthLimit bounds iterative deepening. Must be > 0.
	DepthLimit int
	// SoftBudget is a wall-clock allowance checked only between completed
	// iterations (spec §5); zero means unlimited (DepthLimit-bound only).
	SoftBudget time.Duration
	// FullDepthMoves is how many moves at a node are searched at full depth
	// before late move reductions apply to the rest (spec §4.H). Zero uses
	// the engine default of 4.
	FullDepthMoves int
	// ReductionLimit is the minimum remaining depth for late move reductions
	// to apply (spec §4.H). Zero uses the engine default of 3.
	ReductionLimit int
}

func (o Options) fullDepthMoves() int {
	if o.FullDepthMoves > 0 {
		return o.FullDepthMoves
	}
	return 4
}

func (o Options) reductionLimit() int {
	if o.ReductionLimit > 0 {
		return o.ReductionLimit
	}
	return 3
}

// searcher holds the mutable state of one Search call: node counter,
// transposition table, killer/history heuristics and the repetition stack
// (spec §4.H). It is single-use -- created fresh by Search every call --
// and never shared across goroutines.
type searcher struct {
	eval eval.Evaluator
	tt   TranspositionTable
	opt  Options

	killers *killerTable
	history *historyTable

	// rep is the stack of position hashes visited on the current search
	// path, cleared at the start of every top-level Search call (spec
	// §4.H): repetitions are only detected within the tree being searched
	// right now, not against prior game history, unless the caller seeds
	// it via the history parameter to Search.
	rep   []board.ZobristHash
	nodes uint64
}

// Search runs iterative deepening from pos up to opt.DepthLimit, returning
// the principal variation of the deepest completed iteration (spec §5);
// when the root has exactly one legal move, the PV holds only that move.
// history, if non-nil, is the sequence of position hashes already reached
// earlier in the game, oldest first; it seeds the repetition stack so a
// threefold repetition that started before this search call is still
// recognized as a draw.
func Search(ctx context.Context, pos *board.Position, ev eval.Evaluator, tt TranspositionTable, opt Options, history []board.ZobristHash) (PV, error) {
	if opt.DepthLimit <= 0 {
		return PV{}, fmt.Errorf("invalid depth limit: %v", opt.DepthLimit)
	}

	budget := NewBudget(opt.SoftBudget)
	s := &searcher{
		eval:    ev,
		tt:      tt,
		opt:     opt,
		killers: newKillerTable(),
		history: newHistoryTable(),
	}

	var best PV
	for depth := 1; depth <= opt.DepthLimit; depth++ {
		if contextx.IsCancelled(ctx) {
			if depth == 1 {
				return PV{}, ErrHalted
			}
			break
		}

		s.nodes = 0
		s.rep = append(append([]board.ZobristHash{}, history...), pos.Hash())

		start := time.Now()
		score, pv := s.negamax(ctx, pos, depth, 0, -board.Window, board.Window)

		best = PV{
			Depth: depth,
			Moves: pv,
			Score: score,
			Nodes: s.nodes,
			Time:  time.Since(start),
			Hash:  s.tt.Used(),
		}
		logw.Debugf(ctx, "Searched %v: %v", pos, best)

		if score.IsMate() || budget.Expired() {
			break
		}
	}
	// With a single legal move at the root, the PV is just that move.
	if len(best.Moves) > 1 && len(legalMoves(pos)) == 1 {
		best.Moves = best.Moves[:1]
	}
	return best, nil
}

// negamax returns the score of pos from the side-to-move's perspective, and
// the principal variation from this node down (spec §4.H). ply is the
// distance from the search root, used for mate-distance scoring, killer
// indexing and repetition lookups.
func (s *searcher) negamax(ctx context.Context, pos *board.Position, depth, ply int, alpha, beta board.Score) (board.Score, []board.Move) {
	s.nodes++

	if ply > 0 {
		// s.rep holds only ancestors at this point -- the current node's own
		// hash is pushed below, after this check, and popped on return -- so
		// a match here means pos was already on the path to the root, not
		// that pos matches itself.
		if s.isRepeated(pos.Hash()) {
			return board.DrawScore, nil
		}
		s.rep = append(s.rep, pos.Hash())
		defer func() { s.rep = s.rep[:len(s.rep)-1] }()
	}
	if pos.IsInsufficientMaterial() {
		return board.DrawScore, nil
	}

	moves := legalMoves(pos)
	if len(moves) == 0 {
		if pos.InCheck() {
			return -(board.Mate - board.Score(ply)), nil
		}
		return board.DrawScore, nil
	}

	if depth <= 0 {
		return s.quiescence(ctx, pos, ply, alpha, beta), nil
	}

	alphaOrig := alpha
	nonPV := beta-alpha == 1 // zero-width scout window (spec §4.H)

	var ttMove board.Move
	hasTTMove := false
	if bound, d, score, move, ok := s.tt.Read(pos.Hash()); ok {
		ttMove, hasTTMove = move, true
		if d >= depth && nonPV {
			adj := fromTT(score, ply)
			switch bound {
			case ExactBound:
				return adj, nil
			case AlphaBound:
				if adj <= alpha {
					return adj, nil
				}
			case BetaBound:
				if adj >= beta {
					return adj, nil
				}
			}
		}
	}

	ordered := NewMoveList(moves, orderingFn(ttMove, hasTTMove, s.killers.at(ply), s.history, pos.Turn()))

	var bestScore board.Score = -board.Window - 1
	var bestMove board.Move
	var bestPV []board.Move
	reductionsAllowed := depth >= s.opt.reductionLimit()

	for i := 0; ; i++ {
		m, ok := ordered.Next()
		if !ok {
			break
		}
		next, legal := pos.Move(m)
		if !legal {
			continue
		}

		childDepth := depth - 1
		reduced := reductionsAllowed && i >= s.opt.fullDepthMoves() && m.IsQuiet() && !pos.InCheck()
		if reduced {
			childDepth--
		}

		score, pv := s.negamax(ctx, next, childDepth, ply+1, -beta, -alpha)
		score = -score

		if reduced && score > alpha {
			// Late move reduction raised alpha: the move was not as quiet
			// as assumed, re-search at full depth (spec §4.H).
			score, pv = s.negamax(ctx, next, depth-1, ply+1, -beta, -alpha)
			score = -score
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			bestPV = append([]board.Move{m}, pv...)
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.IsQuiet() {
				s.killers.add(ply, m)
				s.history.bump(pos.Turn(), m, depth)
			}
			break
		}
	}

	bound := ExactBound
	switch {
	case bestScore <= alphaOrig:
		bound = AlphaBound
	case bestScore >= beta:
		bound = BetaBound
	}
	s.tt.Write(pos.Hash(), bound, depth, toTT(bestScore, ply), bestMove)

	return bestScore, bestPV
}

// quiescence extends search along capture/promotion lines only, to avoid
// the horizon effect at the leaves of the main search (spec §4.H).
func (s *searcher) quiescence(ctx context.Context, pos *board.Position, ply int, alpha, beta board.Score) board.Score {
	s.nodes++

	standPat := pos.Turn().Unit() * s.eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	alpha = board.Max(alpha, standPat)

	for _, m := range pos.PseudoMoves() {
		if !m.IsCapture() && !m.IsPromotion() {
			continue
		}
		next, legal := pos.Move(m)
		if !legal {
			continue
		}

		score := -s.quiescence(ctx, next, ply+1, -beta, -alpha)
		if score >= beta {
			return beta
		}
		alpha = board.Max(alpha, score)
	}
	return alpha
}

func (s *searcher) isRepeated(hash board.ZobristHash) bool {
	for _, h := range s.rep {
		if h == hash {
			return true
		}
	}
	return false
}

// legalMoves filters the pseudo-legal moves of pos down to the legal ones.
// Search needs the legal count up front (to detect checkmate/stalemate)
// rather than lazily as MoveList hands them out.
func legalMoves(pos *board.Position) []board.Move {
	var ret []board.Move
	for _, m := range pos.PseudoMoves() {
		if _, ok := pos.Move(m); ok {
			ret = append(ret, m)
		}
	}
	return ret
}
